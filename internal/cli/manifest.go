package cli

import (
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/Aouidate/CartoonBuilder/pkg/molecule"
)

// manifest is the TOML input format for the render command: a declarative
// molecule description applied on top of the default catalog.
//
//	scaffold = "BA"
//
//	[[components]]
//	name = "MAL"
//	shape = "circle"
//	color = "#4682B4"
//	label = "Mal"
//	category = "Sugar"
//
//	[[points]]
//	name = "C3"
//	x = 0.0
//	y = -1.0
//
//	[[attachments]]
//	point = "C3"
//	component = "MAL"
//	direction = "Down"
//	category = "Sugar"
type manifest struct {
	Scaffold    string               `toml:"scaffold"`
	Components  []manifestComponent  `toml:"components"`
	Points      []manifestPoint      `toml:"points"`
	Attachments []manifestAttachment `toml:"attachments"`
}

type manifestComponent struct {
	Name     string `toml:"name"`
	Shape    string `toml:"shape"`
	Color    string `toml:"color"`
	Label    string `toml:"label"`
	Category string `toml:"category"`
}

type manifestPoint struct {
	Name string  `toml:"name"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

type manifestAttachment struct {
	Point     string `toml:"point"`
	Component string `toml:"component"`
	Direction string `toml:"direction"`
	Category  string `toml:"category"`
}

// loadInput loads a molecule builder from either a JSON document (full saved
// state) or a TOML manifest (declarative description over the defaults),
// chosen by file extension.
func loadInput(path string) (*molecule.Builder, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return loadManifest(path)
	}
	return molecule.ReadDocumentFile(path)
}

// loadManifest decodes a TOML manifest and replays it onto a default builder.
func loadManifest(path string) (*molecule.Builder, error) {
	var m manifest
	if _, err := toml.DecodeFile(path, &m); err != nil {
		return nil, err
	}

	b := molecule.New()
	for _, c := range m.Components {
		cat, err := molecule.ParseCategory(c.Category)
		if err != nil {
			return nil, err
		}
		if err := b.AddComponent(c.Name, molecule.Shape(c.Shape), c.Color, c.Label, cat); err != nil {
			return nil, err
		}
	}
	for _, p := range m.Points {
		if err := b.AddAttachmentPoint(p.Name, p.X, p.Y); err != nil {
			return nil, err
		}
	}
	if m.Scaffold != "" {
		if err := b.SetScaffold(m.Scaffold); err != nil {
			return nil, err
		}
	}
	for _, a := range m.Attachments {
		cat, err := molecule.ParseCategory(a.Category)
		if err != nil {
			return nil, err
		}
		if err := b.AttachComponent(a.Point, a.Component, molecule.Direction(a.Direction), cat); err != nil {
			return nil, err
		}
	}
	return b, nil
}
