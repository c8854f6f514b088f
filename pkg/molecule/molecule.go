package molecule

import (
	"github.com/Aouidate/CartoonBuilder/pkg/errors"
)

// =============================================================================
// Molecule - Mutable Diagram Graph
// =============================================================================

// Attachment is one component placed at an attachment point, together with
// the direction controlling its offset.
type Attachment struct {
	Component Component `json:"component"`
	Direction Direction `json:"direction"`
}

// PointAttachments pairs an attachment point key with the ordered sequence
// of components attached there.
type PointAttachments struct {
	Point string       `json:"point"`
	Items []Attachment `json:"items"`
}

// Molecule is the aggregate root of a diagram: one scaffold plus ordered
// mappings from attachment point key to attached sugars and substituents.
//
// Attachment sequences grow only; insertion order is preserved both within a
// point's sequence and across points (first-attach order), so two renders of
// the same state are identical.
type Molecule struct {
	scaffold Component
	points   *PointRegistry

	sugars           map[string][]Attachment
	substituents     map[string][]Attachment
	sugarOrder       []string
	substituentOrder []string
}

// NewMolecule creates a molecule around scaffold, resolving attachment point
// keys against points. The registry is shared, not copied: points added
// later are immediately attachable.
func NewMolecule(scaffold Component, points *PointRegistry) *Molecule {
	return &Molecule{
		scaffold:     scaffold,
		points:       points,
		sugars:       make(map[string][]Attachment),
		substituents: make(map[string][]Attachment),
	}
}

// Scaffold returns the current scaffold component.
func (m *Molecule) Scaffold() Component {
	return m.scaffold
}

// SetScaffold replaces the scaffold unconditionally. The component is taken
// by value and is not checked against any registry; existing attachments are
// untouched.
func (m *Molecule) SetScaffold(c Component) {
	m.scaffold = c
}

// Points returns the attachment point registry the molecule resolves against.
func (m *Molecule) Points() *PointRegistry {
	return m.points
}

// Attach appends (c, dir) to the sequence for pointKey in the map selected
// by cat, creating the sequence if absent.
//
// It fails with UNKNOWN_ATTACHMENT_POINT if pointKey is not registered and
// with INVALID_CATEGORY if cat is not Sugar or Substituent. The direction is
// deliberately not validated: unrecognized tags are kept as-is and default
// to Right at layout time.
func (m *Molecule) Attach(pointKey string, c Component, dir Direction, cat Category) error {
	if _, ok := m.points.Get(pointKey); !ok {
		return errors.New(errors.ErrCodeUnknownAttachmentPoint,
			"invalid attachment point: %s", pointKey)
	}

	switch cat {
	case Sugar:
		if _, seen := m.sugars[pointKey]; !seen {
			m.sugarOrder = append(m.sugarOrder, pointKey)
		}
		m.sugars[pointKey] = append(m.sugars[pointKey], Attachment{Component: c, Direction: dir})
	case Substituent:
		if _, seen := m.substituents[pointKey]; !seen {
			m.substituentOrder = append(m.substituentOrder, pointKey)
		}
		m.substituents[pointKey] = append(m.substituents[pointKey], Attachment{Component: c, Direction: dir})
	default:
		return errors.New(errors.ErrCodeInvalidCategory,
			"cannot attach a component of category %s", cat)
	}
	return nil
}

// Sugars returns the attached sugars grouped by point, in first-attach order.
// The slices are snapshots; mutating them does not affect the molecule.
func (m *Molecule) Sugars() []PointAttachments {
	return snapshot(m.sugarOrder, m.sugars)
}

// Substituents returns the attached substituents grouped by point, in
// first-attach order.
func (m *Molecule) Substituents() []PointAttachments {
	return snapshot(m.substituentOrder, m.substituents)
}

// AttachmentCount returns the total number of attached components.
func (m *Molecule) AttachmentCount() int {
	n := 0
	for _, items := range m.sugars {
		n += len(items)
	}
	for _, items := range m.substituents {
		n += len(items)
	}
	return n
}

func snapshot(order []string, byPoint map[string][]Attachment) []PointAttachments {
	out := make([]PointAttachments, 0, len(order))
	for _, key := range order {
		items := make([]Attachment, len(byPoint[key]))
		copy(items, byPoint[key])
		out = append(out, PointAttachments{Point: key, Items: items})
	}
	return out
}
