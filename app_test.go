package main

import (
	"os"
	"strings"
	"testing"
)

// TestE2EBaseCabinetExample exercises the full pipeline: Lisp source →
// engine → config → build → preview meshes. This is the same path the Wails
// Evaluate binding takes, but without the Wails runtime.
func TestE2EBaseCabinetExample(t *testing.T) {
	app := NewApp()

	source, err := os.ReadFile("examples/base_cabinet.millwork")
	if err != nil {
		t.Fatalf("failed to read base_cabinet.millwork: %v", err)
	}

	result := app.Evaluate(string(source))

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			t.Errorf("eval error (line %d): %s", e.Line, e.Message)
		}
		t.FailNow()
	}

	// Carcass (4) + inset back + toe kick + 3 adjustable shelves.
	if len(result.Meshes) != 9 {
		t.Fatalf("expected 9 meshes, got %d", len(result.Meshes))
	}
	if len(result.Parts) != 9 {
		t.Fatalf("expected 9 cut-list parts, got %d", len(result.Parts))
	}

	for _, m := range result.Meshes {
		if len(m.Vertices) == 0 {
			t.Errorf("part %q: no vertices", m.PartName)
		}
		if len(m.Normals) == 0 {
			t.Errorf("part %q: no normals", m.PartName)
		}
		if len(m.Indices) == 0 {
			t.Errorf("part %q: no indices", m.PartName)
		}
		if m.Color == "" {
			t.Errorf("part %q: no color assigned", m.PartName)
		}
	}

	roles := make(map[string]int)
	for _, p := range result.Parts {
		roles[p.Role]++
		if p.Thickness <= 0 {
			t.Errorf("part %q: thickness not set", p.ID)
		}
	}
	if roles["side_panel_left"] != 1 || roles["side_panel_right"] != 1 {
		t.Error("expected one part per side panel role")
	}
	if roles["adjustable_shelf"] != 3 {
		t.Errorf("expected 3 adjustable shelves, got %d", roles["adjustable_shelf"])
	}
}

// TestE2EEmptySource ensures the pipeline handles empty input gracefully.
func TestE2EEmptySource(t *testing.T) {
	app := NewApp()
	result := app.Evaluate("")

	if len(result.Errors) != 0 {
		t.Errorf("unexpected errors for empty source: %v", result.Errors)
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes for empty source, got %d", len(result.Meshes))
	}
	// Slices must be non-nil so JSON serializes [] rather than null.
	if result.Meshes == nil || result.Parts == nil || result.Errors == nil || result.Warnings == nil {
		t.Error("result slices should be non-nil empty slices")
	}
}

// TestE2ESyntaxError ensures eval errors are reported, not fatal errors.
func TestE2ESyntaxError(t *testing.T) {
	app := NewApp()
	result := app.Evaluate("(cabinet :width 600")

	if len(result.Errors) == 0 {
		t.Fatal("expected eval errors for syntax error")
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes on error, got %d", len(result.Meshes))
	}
}

// TestE2EValidationError ensures an unbuildable configuration reports its
// validation findings and produces no geometry.
func TestE2EValidationError(t *testing.T) {
	app := NewApp()

	// Toe kick taller than the cabinet leaves no interior.
	result := app.Evaluate(`(cabinet :width 600 :height 130 :depth 560
		(toe-kick :height 120 :depth 70))`)

	if len(result.Errors) == 0 {
		t.Fatal("expected validation errors")
	}
	found := false
	for _, e := range result.Errors {
		if strings.Contains(e.Message, "interior height") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected an interior height finding, got %v", result.Errors)
	}
	if len(result.Meshes) != 0 {
		t.Errorf("expected 0 meshes for an invalid config, got %d", len(result.Meshes))
	}
}

// TestE2EWarningsDoNotBlock ensures advisory findings surface alongside a
// successful build.
func TestE2EWarningsDoNotBlock(t *testing.T) {
	app := NewApp()

	// Adjustable shelves and drawers together is legal but advisory.
	result := app.Evaluate(`(cabinet :width 600 :height 720 :depth 560
		(adjustable-shelves :count 2)
		(drawers :count 1 :slide-width 12.7))`)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}
	if len(result.Warnings) == 0 {
		t.Error("expected a warning about mixing shelves and drawers")
	}
	if len(result.Meshes) == 0 {
		t.Error("warnings should not block mesh generation")
	}
}

// TestE2EToeKickReliefs ensures the cut list carries dogbone reliefs for
// the toe kick notches on the side panels.
func TestE2EToeKickReliefs(t *testing.T) {
	app := NewApp()

	result := app.Evaluate(`(cabinet :width 600 :height 720 :depth 560
		(toe-kick :height 100 :depth 70))`)

	if len(result.Errors) != 0 {
		t.Fatalf("unexpected errors: %v", result.Errors)
	}

	for _, p := range result.Parts {
		if p.Role != "side_panel_left" && p.Role != "side_panel_right" {
			continue
		}
		if len(p.Reliefs) == 0 {
			t.Errorf("part %q: expected corner reliefs for the toe kick notch", p.ID)
			continue
		}
		for _, r := range p.Reliefs {
			if r.Radius != 6.35/2 {
				t.Errorf("part %q: relief radius %v, want half the bit diameter", p.ID, r.Radius)
			}
		}
	}
}
