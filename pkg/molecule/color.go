package molecule

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/Aouidate/CartoonBuilder/pkg/errors"
)

// ColorNone is the sentinel for an unfilled/transparent component.
const ColorNone = "none"

// ParseColor resolves a color value to a concrete color.
// Accepted forms are hex strings ("#228B22", "#f0c") and the SVG 1.1 named
// colors ("lime", "goldenrod", ...). The ColorNone sentinel is not a color;
// callers must check for it first.
func ParseColor(s string) (color.Color, error) {
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidColor, err,
				"invalid color value: %q", s)
		}
		return c, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidColor,
		"invalid color value: %q (use a hex value or a named color)", s)
}

// ValidateColor reports whether s is a usable component color:
// a parseable hex or named color, or the ColorNone sentinel.
func ValidateColor(s string) error {
	if s == ColorNone {
		return nil
	}
	_, err := ParseColor(s)
	return err
}
