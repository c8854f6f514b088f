package diagram

import (
	"bytes"

	"github.com/fogleman/gg"

	apperrors "github.com/Aouidate/CartoonBuilder/pkg/errors"
	"github.com/Aouidate/CartoonBuilder/pkg/fonts"
	"github.com/Aouidate/CartoonBuilder/pkg/molecule"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// Canvas matches the original 10x4 inch figure at 100 dpi.
	defaultWidth  = 1000
	defaultHeight = 400

	// The world window is a fixed [-7, 7] square on both axes, mapped with
	// equal aspect. Content outside the window is clipped, never auto-fitted.
	viewExtent = 7.0

	// Hexagon scaffolds are rounded boxes: a 0.1-unit core plus 0.6 padding
	// on each side, with zero corner rounding.
	hexCore     = 0.1
	hexPad      = 0.6
	hexRounding = 0.0

	circleRadius = 0.5

	outlineWidth = 2.0

	// Label sizes in points; rasterized at the canvas dpi.
	hexFontPt    = 13.0
	circleFontPt = 8.0
	fontDPI      = 100.0
)

// =============================================================================
// Options
// =============================================================================

// Option configures diagram rendering.
type Option func(*renderer)

// WithCanvasSize overrides the output pixel dimensions.
// The world window stays [-7, 7]; the vertical extent sets the scale.
func WithCanvasSize(width, height int) Option {
	return func(r *renderer) {
		r.width = width
		r.height = height
	}
}

// WithConnectors draws lines from each attachment point to its components,
// beneath the shapes. Off by default: the baseline diagram draws shapes only.
func WithConnectors() Option {
	return func(r *renderer) { r.connectors = true }
}

type renderer struct {
	width, height int
	connectors    bool
}

// =============================================================================
// Render
// =============================================================================

// Render draws the molecule to an in-memory PNG.
//
// The scaffold is drawn at the origin, then every attached sugar, then every
// attached substituent, each at the position resolved from its attachment
// point and direction. Rendering is a pure read: the same state always
// produces byte-identical output.
func Render(m *molecule.Molecule, opts ...Option) ([]byte, error) {
	r := renderer{width: defaultWidth, height: defaultHeight}
	for _, opt := range opts {
		opt(&r)
	}

	dc := gg.NewContext(r.width, r.height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if err := r.drawShape(dc, m.Scaffold(), molecule.Point{}); err != nil {
		return nil, err
	}

	// Sugars first, substituents second: draw order is the z-order, which
	// matters when overlapping placements collide.
	for _, group := range m.Sugars() {
		if err := r.drawGroup(dc, m, group); err != nil {
			return nil, err
		}
	}
	for _, group := range m.Substituents() {
		if err := r.drawGroup(dc, m, group); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

func (r *renderer) drawGroup(dc *gg.Context, m *molecule.Molecule, group molecule.PointAttachments) error {
	anchor, ok := m.Points().Get(group.Point)
	if !ok {
		// Unreachable while point removal is unsupported; attach validates.
		return apperrors.New(apperrors.ErrCodeUnknownAttachmentPoint,
			"invalid attachment point: %s", group.Point)
	}
	for i, item := range group.Items {
		pos := ResolvePosition(anchor.Position, item.Direction, i)
		if r.connectors {
			r.drawConnector(dc, anchor.Position, pos)
		}
		if err := r.drawShape(dc, item.Component, pos); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Shape Primitives
// =============================================================================

// unit returns pixels per world unit. The vertical window is fixed at
// 2*viewExtent, so scale follows canvas height; equal aspect means a wider
// canvas simply shows more of the x axis.
func (r *renderer) unit() float64 {
	return float64(r.height) / (2 * viewExtent)
}

// toPixels converts world coordinates (y up) to canvas pixels (y down).
func (r *renderer) toPixels(p molecule.Point) (float64, float64) {
	u := r.unit()
	return float64(r.width)/2 + p.X*u, float64(r.height)/2 - p.Y*u
}

func (r *renderer) drawShape(dc *gg.Context, c molecule.Component, pos molecule.Point) error {
	u := r.unit()
	px, py := r.toPixels(pos)

	switch c.Shape {
	case molecule.ShapeHexagon:
		side := (hexCore + 2*hexPad) * u
		dc.DrawRoundedRectangle(px-side/2, py-side/2, side, side, hexRounding*u)
	case molecule.ShapeCircle:
		dc.DrawCircle(px, py, circleRadius*u)
	default:
		return apperrors.New(apperrors.ErrCodeInvalidShape, "invalid shape: %s", c.Shape)
	}

	if c.Color != molecule.ColorNone {
		fill, err := molecule.ParseColor(c.Color)
		if err != nil {
			return err
		}
		dc.SetColor(fill)
		dc.FillPreserve()
	}
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(outlineWidth)
	dc.Stroke()

	return r.drawLabel(dc, c, px, py)
}

func (r *renderer) drawLabel(dc *gg.Context, c molecule.Component, px, py float64) error {
	pt := circleFontPt
	if c.Shape == molecule.ShapeHexagon {
		pt = hexFontPt
	}
	face, err := fonts.Bold(pt * fontDPI / 72)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "load label font")
	}
	dc.SetFontFace(face)
	dc.SetRGB(0, 0, 0)
	dc.DrawStringAnchored(c.Label, px, py, 0.5, 0.5)
	return nil
}

// drawConnector draws a line from the attachment point toward the component,
// trimmed by half a step on each end so it meets the shape edges.
func (r *renderer) drawConnector(dc *gg.Context, from, to molecule.Point) {
	const trim = 0.5
	dx, dy := to.X-from.X, to.Y-from.Y
	x1, y1 := r.toPixels(molecule.Point{X: from.X + dx*trim/2, Y: from.Y + dy*trim/2})
	x2, y2 := r.toPixels(molecule.Point{X: to.X - dx*trim/2, Y: to.Y - dy*trim/2})
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}
