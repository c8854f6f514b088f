package diagram

import (
	"github.com/Aouidate/CartoonBuilder/pkg/molecule"
)

// directionVectors maps recognized direction tags to unit offsets in world
// coordinates (y grows upward).
var directionVectors = map[molecule.Direction]molecule.Point{
	molecule.Up:    {X: 0, Y: 1},
	molecule.Down:  {X: 0, Y: -1},
	molecule.Left:  {X: -1, Y: 0},
	molecule.Right: {X: 1, Y: 0},
}

// stepLength is the offset from an attachment point to its components.
const stepLength = 1.0

// ResolvePosition maps an attachment to its draw position: the attachment
// point's registered coordinate plus the direction vector. The scaffold's
// own position plays no part.
//
// Any unrecognized direction tag (including the empty string) resolves as
// Right. This fallback is documented behavior, not an error path.
//
// The result is independent of index: components attached at the same point
// with the same direction land on the exact same coordinate and overlap in
// the rendered image, with draw order deciding which is visible.
func ResolvePosition(anchor molecule.Point, dir molecule.Direction, index int) molecule.Point {
	vec, ok := directionVectors[dir]
	if !ok {
		vec = directionVectors[molecule.Right]
	}
	_ = index
	return molecule.Point{
		X: anchor.X + vec.X*stepLength,
		Y: anchor.Y + vec.Y*stepLength,
	}
}
