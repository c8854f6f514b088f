package molecule

import (
	"testing"

	"github.com/Aouidate/CartoonBuilder/pkg/errors"
)

func TestComponentRegistryAdd(t *testing.T) {
	tests := []struct {
		name     string
		shape    Shape
		color    string
		wantCode errors.Code
	}{
		{name: "hexagon with named color", shape: ShapeHexagon, color: "lime"},
		{name: "circle with hex color", shape: ShapeCircle, color: "#228B22"},
		{name: "circle with none", shape: ShapeCircle, color: ColorNone},
		{name: "unsupported shape", shape: "triangle", color: "lime", wantCode: errors.ErrCodeInvalidShape},
		{name: "empty shape", shape: "", color: "lime", wantCode: errors.ErrCodeInvalidShape},
		{name: "bad named color", shape: ShapeCircle, color: "blurple", wantCode: errors.ErrCodeInvalidColor},
		{name: "bad hex color", shape: ShapeCircle, color: "#22", wantCode: errors.ErrCodeInvalidColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewComponentRegistry()
			err := r.Add("X", tt.shape, tt.color, "x", Sugar)

			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Add() error = %v, want nil", err)
				}
				got, ok := r.Get(Sugar, "X")
				if !ok {
					t.Fatal("Get() after Add() = absent, want present")
				}
				want := Component{Name: "X", Shape: tt.shape, Color: tt.color, Label: "x"}
				if got != want {
					t.Errorf("Get() = %+v, want %+v", got, want)
				}
				return
			}

			if !errors.Is(err, tt.wantCode) {
				t.Fatalf("Add() error = %v, want code %s", err, tt.wantCode)
			}
			if _, ok := r.Get(Sugar, "X"); ok {
				t.Error("failed Add() inserted an entry; want no insertion")
			}
		})
	}
}

func TestComponentRegistryOverwrite(t *testing.T) {
	r := NewComponentRegistry()
	if err := r.Add("GLC", ShapeCircle, "cyan", "Glc", Sugar); err != nil {
		t.Fatal(err)
	}
	if err := r.Add("GLC", ShapeCircle, "orange", "Glc2", Sugar); err != nil {
		t.Fatalf("re-adding the same key should overwrite silently, got %v", err)
	}
	got, _ := r.Get(Sugar, "GLC")
	if got.Color != "orange" || got.Label != "Glc2" {
		t.Errorf("Get() after overwrite = %+v, want the second entry", got)
	}
}

func TestComponentRegistryDisjointNamespaces(t *testing.T) {
	r := NewComponentRegistry()
	if err := r.Add("OH", ShapeCircle, ColorNone, "OH", Sugar); err != nil {
		t.Fatal(err)
	}
	if err := r.Add("OH", ShapeHexagon, "gold", "OH", Scaffold); err != nil {
		t.Fatalf("same name in another category should not conflict, got %v", err)
	}

	asSugar, _ := r.Get(Sugar, "OH")
	asScaffold, _ := r.Get(Scaffold, "OH")
	if asSugar.Shape != ShapeCircle || asScaffold.Shape != ShapeHexagon {
		t.Errorf("namespaces leaked: sugar=%+v scaffold=%+v", asSugar, asScaffold)
	}
	if _, ok := r.Get(Substituent, "OH"); ok {
		t.Error("Get(Substituent) = present, want absent")
	}
}

func TestPointRegistryDuplicate(t *testing.T) {
	r := NewPointRegistry()
	if err := r.Add("C3", Point{X: 1, Y: 2}); err != nil {
		t.Fatal(err)
	}

	// Second call with the same name always fails and leaves the original.
	err := r.Add("C3", Point{X: 9, Y: 9})
	if !errors.Is(err, errors.ErrCodeDuplicateAttachmentPoint) {
		t.Fatalf("Add(dup) error = %v, want DUPLICATE_ATTACHMENT_POINT", err)
	}
	got, _ := r.Get("C3")
	if got.Position != (Point{X: 1, Y: 2}) {
		t.Errorf("original entry changed after rejected Add: %+v", got)
	}
}

func TestPointRegistryNamesOrder(t *testing.T) {
	r := NewPointRegistry()
	for _, n := range []string{"Zero", "C3", "C28"} {
		if err := r.Add(n, Point{}); err != nil {
			t.Fatal(err)
		}
	}
	got := r.Names()
	want := []string{"Zero", "C3", "C28"}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestParseCategory(t *testing.T) {
	for _, cat := range Categories {
		got, err := ParseCategory(cat.String())
		if err != nil || got != cat {
			t.Errorf("ParseCategory(%s) = %v, %v", cat, got, err)
		}
	}
	if _, err := ParseCategory("Linker"); !errors.Is(err, errors.ErrCodeInvalidCategory) {
		t.Errorf("ParseCategory(Linker) error = %v, want INVALID_CATEGORY", err)
	}
}
