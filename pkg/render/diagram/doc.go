// Package diagram renders a molecule to a raster image.
//
// The package owns the two layout/rendering stages of the builder:
//
//   - [ResolvePosition] maps (attachment point, direction, index) to a world
//     coordinate using a fixed direction-vector table, with unrecognized
//     directions falling back to Right.
//   - [Render] draws the scaffold and every attached component as a shape
//     primitive with a centered bold label into a fixed [-7, 7] world window
//     and returns PNG bytes.
//
// Rendering is deterministic: identical molecule state yields byte-identical
// PNG output, which callers rely on for caching and tests rely on for
// round-trip checks.
package diagram
