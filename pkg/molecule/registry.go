package molecule

import (
	"slices"

	"github.com/Aouidate/CartoonBuilder/pkg/errors"
)

// =============================================================================
// ComponentRegistry - Categorized Component Catalog
// =============================================================================

// ComponentRegistry stores named component definitions, one namespace per
// category. Re-adding an existing name in the same category overwrites the
// entry; names never collide across categories.
type ComponentRegistry struct {
	entries map[Category]map[string]Component
}

// NewComponentRegistry creates an empty registry with all category
// namespaces initialized.
func NewComponentRegistry() *ComponentRegistry {
	entries := make(map[Category]map[string]Component, len(Categories))
	for _, c := range Categories {
		entries[c] = make(map[string]Component)
	}
	return &ComponentRegistry{entries: entries}
}

// Add validates and inserts a component definition under cat, keyed by name.
// It fails with INVALID_SHAPE for an unsupported shape and INVALID_COLOR for
// a color that is neither parseable nor the "none" sentinel. An existing
// entry with the same name is silently overwritten.
//
// The registry key and Component.Name usually coincide but are independent:
// the default catalog registers several variants under distinct keys that
// share a component name.
func (r *ComponentRegistry) Add(name string, shape Shape, color, label string, cat Category) error {
	if _, err := ParseShape(string(shape)); err != nil {
		return err
	}
	if err := ValidateColor(color); err != nil {
		return err
	}
	r.entries[cat][name] = Component{Name: name, Shape: shape, Color: color, Label: label}
	return nil
}

// put inserts a component under key without validation.
// Used by the default catalog, which predates validation and carries entries
// whose Name differs from their registry key.
func (r *ComponentRegistry) put(key string, c Component, cat Category) {
	r.entries[cat][key] = c
}

// Get looks up the component registered under key in cat's namespace.
func (r *ComponentRegistry) Get(cat Category, key string) (Component, bool) {
	c, ok := r.entries[cat][key]
	return c, ok
}

// Names returns a sorted snapshot of the registry keys in cat's namespace,
// for UI dropdown population.
func (r *ComponentRegistry) Names(cat Category) []string {
	names := make([]string, 0, len(r.entries[cat]))
	for k := range r.entries[cat] {
		names = append(names, k)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of entries in cat's namespace.
func (r *ComponentRegistry) Len(cat Category) int {
	return len(r.entries[cat])
}

// =============================================================================
// PointRegistry - Attachment Point Anchors
// =============================================================================

// PointRegistry stores named attachment points. The namespace is shared
// across the whole registry: adding a duplicate name fails, and no removal
// operation exists.
type PointRegistry struct {
	points map[string]AttachmentPoint
	order  []string // registration order, for deterministic enumeration
}

// NewPointRegistry creates an empty attachment point registry.
func NewPointRegistry() *PointRegistry {
	return &PointRegistry{points: make(map[string]AttachmentPoint)}
}

// Add registers a new attachment point at pos.
// It fails with DUPLICATE_ATTACHMENT_POINT if name is already present;
// the original entry is left unchanged.
func (r *PointRegistry) Add(name string, pos Point) error {
	if _, exists := r.points[name]; exists {
		return errors.New(errors.ErrCodeDuplicateAttachmentPoint,
			"attachment point %q already exists", name)
	}
	r.points[name] = AttachmentPoint{Name: name, Position: pos}
	r.order = append(r.order, name)
	return nil
}

// put inserts a point under key without uniqueness checks.
// Used by the default catalog, where a key may differ from the point's
// inner name (e.g. "FRight" registered as point "FR").
func (r *PointRegistry) put(key string, p AttachmentPoint) {
	if _, exists := r.points[key]; !exists {
		r.order = append(r.order, key)
	}
	r.points[key] = p
}

// Get looks up the attachment point registered under key.
func (r *PointRegistry) Get(key string) (AttachmentPoint, bool) {
	p, ok := r.points[key]
	return p, ok
}

// Names returns the registry keys in registration order.
func (r *PointRegistry) Names() []string {
	return slices.Clone(r.order)
}

// Len returns the number of registered points.
func (r *PointRegistry) Len() int {
	return len(r.points)
}
