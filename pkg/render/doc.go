// Package render groups the visualization backends for molecule diagrams.
//
// # Raster Diagram
//
// The [diagram] subpackage is the primary renderer: it resolves attachment
// placements through a fixed direction-vector table and draws shape
// primitives with labels into a PNG buffer.
//
//	png, err := diagram.Render(builder.Molecule)
//
// # Node-Link View
//
// The [nodelink] subpackage renders the molecule graph structure itself as
// a Graphviz diagram, which keeps overlapping attachments distinguishable.
//
//	dot := nodelink.ToDOT(builder.Molecule, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(dot)
//
// [diagram]: github.com/Aouidate/CartoonBuilder/pkg/render/diagram
// [nodelink]: github.com/Aouidate/CartoonBuilder/pkg/render/nodelink
package render
