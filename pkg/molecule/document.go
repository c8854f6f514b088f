package molecule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Document - Canonical Builder Serialization
// =============================================================================

// Document is the canonical serialization format for a builder's full state:
// the three component namespaces, the attachment point registry, and the
// molecule with its attachments.
//
// The format is human-readable and designed for round-trip fidelity:
// snapshot → build → snapshot produces identical documents, including the
// stock catalog's key/name aliases.
type Document struct {
	Scaffolds        []ComponentEntry `json:"scaffolds"`
	Sugars           []ComponentEntry `json:"sugars"`
	Substituents     []ComponentEntry `json:"substituents"`
	AttachmentPoints []PointEntry     `json:"attachment_points"`
	Molecule         MoleculeState    `json:"molecule"`
}

// ComponentEntry is one registry entry: the registry key plus the component
// stored under it. Key and Name coincide for user-added components but may
// differ for stock catalog entries.
type ComponentEntry struct {
	Key string `json:"key"`
	Component
}

// PointEntry is one attachment point registry entry.
type PointEntry struct {
	Key string `json:"key"`
	AttachmentPoint
}

// MoleculeState is the molecule portion of a document.
type MoleculeState struct {
	Scaffold     Component          `json:"scaffold"`
	Sugars       []PointAttachments `json:"attached_sugars,omitempty"`
	Substituents []PointAttachments `json:"attached_substituents,omitempty"`
}

// Snapshot captures the builder's full state as a document.
// Component entries are sorted by key for deterministic output; attachment
// points and attachments keep their insertion order.
func Snapshot(b *Builder) Document {
	return Document{
		Scaffolds:        componentEntries(b.Components, Scaffold),
		Sugars:           componentEntries(b.Components, Sugar),
		Substituents:     componentEntries(b.Components, Substituent),
		AttachmentPoints: pointEntries(b.Points),
		Molecule: MoleculeState{
			Scaffold:     b.Molecule.Scaffold(),
			Sugars:       b.Molecule.Sugars(),
			Substituents: b.Molecule.Substituents(),
		},
	}
}

// Build reconstructs a builder from a document.
// Registry entries are restored verbatim (no re-validation, preserving
// catalog aliases); attachments are replayed through the molecule and fail
// if they reference a point absent from the document.
func (d Document) Build() (*Builder, error) {
	b := NewEmpty()

	for _, e := range d.Scaffolds {
		b.Components.put(e.Key, e.Component, Scaffold)
	}
	for _, e := range d.Sugars {
		b.Components.put(e.Key, e.Component, Sugar)
	}
	for _, e := range d.Substituents {
		b.Components.put(e.Key, e.Component, Substituent)
	}
	for _, e := range d.AttachmentPoints {
		b.Points.put(e.Key, e.AttachmentPoint)
	}

	b.Molecule.SetScaffold(d.Molecule.Scaffold)
	if err := replay(b.Molecule, d.Molecule.Sugars, Sugar); err != nil {
		return nil, err
	}
	if err := replay(b.Molecule, d.Molecule.Substituents, Substituent); err != nil {
		return nil, err
	}
	return b, nil
}

func replay(m *Molecule, groups []PointAttachments, cat Category) error {
	for _, g := range groups {
		for _, a := range g.Items {
			if err := m.Attach(g.Point, a.Component, a.Direction, cat); err != nil {
				return fmt.Errorf("attach %s at %s: %w", a.Component.Name, g.Point, err)
			}
		}
	}
	return nil
}

// =============================================================================
// Serialization API
// =============================================================================

// MarshalDocument converts a builder to indented JSON bytes.
func MarshalDocument(b *Builder) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteDocument(b, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDocument writes a builder's document as JSON to an io.Writer.
func WriteDocument(b *Builder, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(Snapshot(b)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteDocumentFile writes a builder's document to a JSON file.
// The file is created with 0644 permissions.
func WriteDocumentFile(b *Builder, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteDocument(b, f)
}

// ReadDocument decodes a JSON document from an io.Reader and reconstructs
// the builder.
func ReadDocument(r io.Reader) (*Builder, error) {
	var d Document
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return d.Build()
}

// ReadDocumentFile reads a JSON file and reconstructs the builder.
func ReadDocumentFile(path string) (*Builder, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocument(f)
}

func componentEntries(r *ComponentRegistry, cat Category) []ComponentEntry {
	keys := r.Names(cat)
	out := make([]ComponentEntry, 0, len(keys))
	for _, k := range keys {
		c, _ := r.Get(cat, k)
		out = append(out, ComponentEntry{Key: k, Component: c})
	}
	return out
}

func pointEntries(r *PointRegistry) []PointEntry {
	keys := r.Names()
	out := make([]PointEntry, 0, len(keys))
	for _, k := range keys {
		p, _ := r.Get(k)
		out = append(out, PointEntry{Key: k, AttachmentPoint: p})
	}
	return out
}
