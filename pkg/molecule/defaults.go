package molecule

// DefaultScaffold is the scaffold every new builder starts with.
const DefaultScaffold = "QA"

// seedDefaults populates the registries with the stock catalog.
//
// The catalog is inserted through the unchecked put path: several entries
// intentionally reuse a component name under a different registry key (the
// scaffold variants "QA-OH", "P", "P-Ac", "G", "E", "E-A" and the sugars
// "ARA"/"GAL" all alias a base component), and two attachment point keys
// carry a shorter inner name ("FRight" → "FR"). These aliases are part of
// the stock data, not constraints of the registries.
func seedDefaults(components *ComponentRegistry, points *PointRegistry) {
	scaffolds := []struct {
		key string
		c   Component
	}{
		{"QA", Component{Name: "QA", Shape: ShapeHexagon, Color: "lime", Label: "QA"}},
		{"QA-OH", Component{Name: "QA", Shape: ShapeHexagon, Color: "limegreen", Label: "QA-OH"}},
		{"BA", Component{Name: "BA", Shape: ShapeHexagon, Color: "red", Label: "BA"}},
		{"P", Component{Name: "BA", Shape: ShapeHexagon, Color: "gray", Label: "P"}},
		{"P-Ac", Component{Name: "BA", Shape: ShapeHexagon, Color: "gainsboro", Label: "P-Ac"}},
		{"G", Component{Name: "BA", Shape: ShapeHexagon, Color: "magenta", Label: "G"}},
		{"E", Component{Name: "BA", Shape: ShapeHexagon, Color: "goldenrod", Label: "E"}},
		{"E-A", Component{Name: "BA", Shape: ShapeHexagon, Color: "gold", Label: "E-A"}},
	}
	for _, s := range scaffolds {
		components.put(s.key, s.c, Scaffold)
	}

	sugars := []struct {
		key string
		c   Component
	}{
		{"XYL", Component{Name: "XYL", Shape: ShapeCircle, Color: "#228B22", Label: "Xyl"}},
		{"FUC", Component{Name: "FUC", Shape: ShapeCircle, Color: "#DC143C", Label: "Fuc"}},
		{"GLU", Component{Name: "GLU", Shape: ShapeCircle, Color: "#9370DB", Label: "Glu"}},
		{"RHA", Component{Name: "RHA", Shape: ShapeCircle, Color: "#FFD700", Label: "Rha"}},
		{"ARA", Component{Name: "RHA", Shape: ShapeCircle, Color: "cyan", Label: "Ara"}},
		{"GAL", Component{Name: "RHA", Shape: ShapeCircle, Color: "orange", Label: "Gal"}},
	}
	for _, s := range sugars {
		components.put(s.key, s.c, Sugar)
	}

	substituents := []struct {
		key string
		c   Component
	}{
		{"H", Component{Name: "H", Shape: ShapeCircle, Color: ColorNone, Label: "H"}},
		{"Acyl", Component{Name: "Acyl", Shape: ShapeCircle, Color: ColorNone, Label: "Ac"}},
		{"OH", Component{Name: "OH", Shape: ShapeCircle, Color: ColorNone, Label: "OH"}},
		{"OHMeHex", Component{Name: "OHMeHex", Shape: ShapeCircle, Color: ColorNone, Label: "OHMeHex"}},
	}
	for _, s := range substituents {
		components.put(s.key, s.c, Substituent)
	}

	defaultPoints := []struct {
		key string
		p   AttachmentPoint
	}{
		{"Zero", AttachmentPoint{Name: "Zero", Position: Point{X: 0, Y: 0}}},
		{"FRight", AttachmentPoint{Name: "FR", Position: Point{X: 1, Y: 0}}},
		{"FLeft", AttachmentPoint{Name: "FL", Position: Point{X: -1, Y: 0}}},
		{"SRight", AttachmentPoint{Name: "FR", Position: Point{X: 2, Y: 0}}},
		{"SLeft", AttachmentPoint{Name: "FL", Position: Point{X: -2, Y: 0}}},
	}
	for _, dp := range defaultPoints {
		points.put(dp.key, dp.p)
	}
}
