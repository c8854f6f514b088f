package molecule

import (
	"github.com/Aouidate/CartoonBuilder/pkg/errors"
)

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Shape identifies the drawing primitive used for a component.
type Shape string

// Supported shapes.
const (
	ShapeHexagon Shape = "hexagon"
	ShapeCircle  Shape = "circle"
)

// ParseShape validates a shape tag.
// Anything outside the supported set fails with INVALID_SHAPE.
func ParseShape(s string) (Shape, error) {
	switch Shape(s) {
	case ShapeHexagon, ShapeCircle:
		return Shape(s), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidShape,
			"invalid shape: %s (valid options: %s, %s)", s, ShapeHexagon, ShapeCircle)
	}
}

// Category partitions components into disjoint namespaces.
// The same name may exist in two categories simultaneously without conflict.
type Category int

// The closed set of component categories.
const (
	Scaffold Category = iota
	Sugar
	Substituent
)

// Categories lists all categories in display order.
var Categories = []Category{Scaffold, Sugar, Substituent}

// String returns the display name of the category.
func (c Category) String() string {
	switch c {
	case Scaffold:
		return "Scaffold"
	case Sugar:
		return "Sugar"
	case Substituent:
		return "Substituent"
	default:
		return "Unknown"
	}
}

// ParseCategory converts a category name to its tagged value.
// Unknown names fail with INVALID_CATEGORY.
func ParseCategory(s string) (Category, error) {
	switch s {
	case "Scaffold":
		return Scaffold, nil
	case "Sugar":
		return Sugar, nil
	case "Substituent":
		return Substituent, nil
	default:
		return 0, errors.New(errors.ErrCodeInvalidCategory, "invalid category: %s", s)
	}
}

// Direction is a cardinal placement tag controlling the offset of an attached
// component from its attachment point.
//
// Direction is deliberately NOT validated anywhere in this package: any
// string is accepted at attach time, and unrecognized tags (including the
// empty string) silently resolve to the default direction during layout.
// See diagram.ResolvePosition.
type Direction string

// Recognized directions. Any other value falls back to Right at layout time.
const (
	Up    Direction = "Up"
	Down  Direction = "Down"
	Left  Direction = "Left"
	Right Direction = "Right"
)

// Directions lists the recognized directions for UI population.
var Directions = []Direction{Up, Down, Left, Right}

// =============================================================================
// Core Types
// =============================================================================

// Point is a 2D coordinate in world units.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Component is a named visual building block: a scaffold, sugar, or
// substituent. Components are immutable once created; Label is the display
// string and may differ from Name.
type Component struct {
	Name  string `json:"name"`
	Shape Shape  `json:"shape"`
	Color string `json:"color"` // validated color value, or "none" for unfilled
	Label string `json:"label"`
}

// AttachmentPoint is a named anchor location components can be attached to.
// Position is relative to the scaffold; it is retained for future
// offset-based placement even though the current layout uses only the
// registered coordinate plus the direction vector.
type AttachmentPoint struct {
	Name     string `json:"name"`
	Position Point  `json:"position"`
}
