package molecule

import (
	"github.com/Aouidate/CartoonBuilder/pkg/errors"
)

// Builder bundles one molecule with its registries. It is the mutable
// context object a host owns per user session; instances are independent and
// must not be shared between sessions.
//
// Builder methods are the external surface of the core: each corresponds to
// one user mutation, applied synchronously to in-memory state.
type Builder struct {
	Components *ComponentRegistry
	Points     *PointRegistry
	Molecule   *Molecule
}

// New creates a builder seeded with the default catalog and a molecule
// around the default scaffold, with empty attachment maps.
func New() *Builder {
	components := NewComponentRegistry()
	points := NewPointRegistry()
	seedDefaults(components, points)

	scaffold, _ := components.Get(Scaffold, DefaultScaffold)
	return &Builder{
		Components: components,
		Points:     points,
		Molecule:   NewMolecule(scaffold, points),
	}
}

// NewEmpty creates a builder with empty registries and a zero-value
// scaffold. Used when reconstructing a builder from a saved document.
func NewEmpty() *Builder {
	components := NewComponentRegistry()
	points := NewPointRegistry()
	return &Builder{
		Components: components,
		Points:     points,
		Molecule:   NewMolecule(Component{}, points),
	}
}

// AddComponent validates and registers a component definition.
func (b *Builder) AddComponent(name string, shape Shape, color, label string, cat Category) error {
	return b.Components.Add(name, shape, color, label, cat)
}

// AddAttachmentPoint registers a new attachment point at (x, y).
func (b *Builder) AddAttachmentPoint(name string, x, y float64) error {
	return b.Points.Add(name, Point{X: x, Y: y})
}

// SetScaffold looks name up in the Scaffold namespace and makes it the
// molecule's scaffold. It fails with UNKNOWN_COMPONENT if no scaffold is
// registered under name.
func (b *Builder) SetScaffold(name string) error {
	c, ok := b.Components.Get(Scaffold, name)
	if !ok {
		return errors.New(errors.ErrCodeUnknownComponent,
			"component %q does not exist in category %q", name, Scaffold)
	}
	b.Molecule.SetScaffold(c)
	return nil
}

// AttachComponent attaches the component registered under componentKey in
// cat's namespace to pointKey.
//
// It fails with UNKNOWN_ATTACHMENT_POINT for an unregistered point,
// UNKNOWN_COMPONENT for a missing component, and INVALID_CATEGORY when cat
// is not Sugar or Substituent. Direction is passed through unvalidated.
func (b *Builder) AttachComponent(pointKey, componentKey string, dir Direction, cat Category) error {
	if cat != Sugar && cat != Substituent {
		return errors.New(errors.ErrCodeInvalidCategory,
			"cannot attach a component of category %s", cat)
	}
	// Point existence is checked before the component lookup so that a call
	// with both references wrong reports the attachment point.
	if _, ok := b.Points.Get(pointKey); !ok {
		return errors.New(errors.ErrCodeUnknownAttachmentPoint,
			"invalid attachment point: %s", pointKey)
	}
	c, ok := b.Components.Get(cat, componentKey)
	if !ok {
		return errors.New(errors.ErrCodeUnknownComponent,
			"component %q does not exist in category %q", componentKey, cat)
	}
	return b.Molecule.Attach(pointKey, c, dir, cat)
}
