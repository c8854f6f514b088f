// Package fonts provides font faces for raster label rendering.
//
// The Go Bold typeface is compiled into the binary via golang.org/x/image,
// making labels available without external font files or system lookups.
package fonts

import (
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
)

var (
	parseOnce sync.Once
	parsed    *opentype.Font
	parseErr  error
)

// Bold returns a bold face at the given pixel size.
// A fresh face is created per call: faces carry mutable glyph state and must
// not be shared between concurrent renders.
func Bold(pixels float64) (font.Face, error) {
	parseOnce.Do(func() {
		parsed, parseErr = opentype.Parse(gobold.TTF)
	})
	if parseErr != nil {
		return nil, parseErr
	}
	return opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    pixels,
		DPI:     72, // size is in pixels when DPI is 72
		Hinting: font.HintingFull,
	})
}
