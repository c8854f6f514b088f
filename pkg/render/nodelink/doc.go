// Package nodelink renders a molecule as a traditional node-link graph:
// the scaffold connected to its attachment points, each point connected to
// the components attached there.
//
// This is a supplementary view next to the raster diagram in the [diagram]
// package. Because every attachment gets its own node, placements that
// overlap in the raster view are individually visible here.
//
//	dot := nodelink.ToDOT(m, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [diagram]: github.com/Aouidate/CartoonBuilder/pkg/render/diagram
package nodelink
