package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/Aouidate/CartoonBuilder/pkg/molecule"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes anchor coordinates and direction tags in labels.
	// When false, only the display labels are shown.
	Detailed bool
}

// ToDOT converts a molecule to Graphviz DOT format for node-link
// visualization: the scaffold in the middle, one node per attachment point
// that carries attachments, and one node per attached component.
//
// Unlike the raster diagram, overlapping placements appear as distinct nodes
// here, which makes this view useful for inspecting stacked attachments.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(m *molecule.Molecule, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph M {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [style=filled, fontsize=14];\n")
	buf.WriteString("\n")

	scaffold := m.Scaffold()
	fmt.Fprintf(&buf, "  scaffold [label=%q, shape=box, fillcolor=%q];\n",
		scaffold.Label, dotColor(scaffold.Color))

	writeGroups(&buf, m, m.Sugars(), "sugar", opts)
	writeGroups(&buf, m, m.Substituents(), "subst", opts)

	buf.WriteString("}\n")
	return buf.String()
}

func writeGroups(buf *bytes.Buffer, m *molecule.Molecule, groups []molecule.PointAttachments, prefix string, opts Options) {
	for _, g := range groups {
		pointID := "point_" + g.Point
		anchor, ok := m.Points().Get(g.Point)
		if ok {
			fmt.Fprintf(buf, "  %q [label=%q, shape=ellipse, fillcolor=white];\n",
				pointID, pointLabel(g.Point, anchor, opts))
			fmt.Fprintf(buf, "  scaffold -- %q;\n", pointID)
		}
		for i, a := range g.Items {
			id := fmt.Sprintf("%s_%s_%d", prefix, g.Point, i)
			fmt.Fprintf(buf, "  %q [label=%q, shape=%s, fillcolor=%q];\n",
				id, itemLabel(a, opts), dotShape(a.Component.Shape), dotColor(a.Component.Color))
			fmt.Fprintf(buf, "  %q -- %q;\n", pointID, id)
		}
	}
}

func pointLabel(key string, p molecule.AttachmentPoint, opts Options) string {
	if !opts.Detailed {
		return key
	}
	return fmt.Sprintf("%s\n(%g, %g)", key, p.Position.X, p.Position.Y)
}

func itemLabel(a molecule.Attachment, opts Options) string {
	if !opts.Detailed {
		return a.Component.Label
	}
	return fmt.Sprintf("%s\n%s", a.Component.Label, a.Direction)
}

func dotShape(s molecule.Shape) string {
	if s == molecule.ShapeHexagon {
		return "box"
	}
	return "circle"
}

// dotColor maps a component color to a Graphviz fill. Hex values and the
// SVG color names pass through; the "none" sentinel becomes white since
// Graphviz treats none as fully transparent including the outline area.
func dotColor(c string) string {
	if c == molecule.ColorNone {
		return "white"
	}
	return c
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
