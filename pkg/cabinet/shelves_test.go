package cabinet

import (
	"math"
	"testing"
)

// pinHoles extracts the shelf-pin holes from an injection list, keyed by
// target role.
func pinHoles(inj []injection) map[Role][]Hole {
	out := map[Role][]Hole{}
	for _, in := range inj {
		for _, f := range in.features {
			if h, ok := f.(Hole); ok && h.Purpose == PurposeShelfPin {
				out[in.target] = append(out[in.target], h)
			}
		}
	}
	return out
}

func TestAdjustableShelves_PinColumnsAlign(t *testing.T) {
	cfg := DefaultConfig()
	d := derive(&cfg)

	_, inj := generateShelves(&cfg, d)
	holes := pinHoles(inj)
	left, right := holes[RoleSidePanelLeft], holes[RoleSidePanelRight]
	if len(left) == 0 || len(left) != len(right) {
		t.Fatalf("got %d/%d pin holes, want matching non-zero counts", len(left), len(right))
	}

	for i := range left {
		if math.Abs(left[i].Pos.Y-right[i].Pos.Y) > 0.01 {
			t.Errorf("pin %d: y %.3f vs %.3f exceed the alignment tolerance",
				i, left[i].Pos.Y, right[i].Pos.Y)
		}
		mirrored := cfg.GlobalBounds.D - left[i].Pos.X
		if math.Abs(mirrored-right[i].Pos.X) > 0.01 {
			t.Errorf("pin %d: x %.1f not mirrored to %.1f", i, left[i].Pos.X, right[i].Pos.X)
		}
	}
}

func TestAdjustableShelves_System32(t *testing.T) {
	cfg := DefaultConfig()
	d := derive(&cfg)

	_, inj := generateShelves(&cfg, d)
	left := pinHoles(inj)[RoleSidePanelLeft]

	// Two columns at the standard setbacks.
	cols := map[float64][]float64{}
	for _, h := range left {
		if h.Diameter != PinDiameter || h.Depth != PinDepth {
			t.Errorf("pin hole %v/%v, want 5mm diameter, 10mm deep", h.Diameter, h.Depth)
		}
		if h.Layer() != LayerDrill5mm {
			t.Errorf("pin hole on layer %s, want %s", h.Layer(), LayerDrill5mm)
		}
		cols[h.Pos.X] = append(cols[h.Pos.X], h.Pos.Y)
	}
	if len(cols) != 2 {
		t.Fatalf("pin holes form %d columns, want 2", len(cols))
	}
	if _, ok := cols[37.0]; !ok {
		t.Error("no pin column 37mm from the front edge")
	}
	if _, ok := cols[523.0]; !ok {
		t.Error("no pin column 37mm from the rear edge")
	}

	// Holes within a column are exactly one pitch apart and stay inside
	// the interior margins.
	for x, ys := range cols {
		for i := 1; i < len(ys); i++ {
			if !almost(ys[i]-ys[i-1], PinSpacing) {
				t.Errorf("column %.0f: pitch %.2f between holes %d and %d, want 32",
					x, ys[i]-ys[i-1], i-1, i)
			}
		}
		if ys[0] < d.PinStartY-1e-9 || ys[len(ys)-1] > d.PinEndY+1e-9 {
			t.Errorf("column %.0f spans [%.1f, %.1f], outside [%.1f, %.1f]",
				x, ys[0], ys[len(ys)-1], d.PinStartY, d.PinEndY)
		}
	}
}

func TestAdjustableShelves_Panels(t *testing.T) {
	cfg := DefaultConfig()
	d := derive(&cfg)

	comps, _ := generateShelves(&cfg, d)
	if len(comps) != 3 {
		t.Fatalf("got %d shelf panels, want 3", len(comps))
	}

	for i, c := range comps {
		if c.Role != RoleAdjustableShelf {
			t.Errorf("shelf %d role %s, want %s", i, c.Role, RoleAdjustableShelf)
		}
		// Narrowed for drop-in fit, stopped short of the back occupation.
		if !almost(c.Dimensions[0], 563) {
			t.Errorf("shelf %d width %.1f, want 563", i, c.Dimensions[0])
		}
		if !almost(c.Dimensions[2], 539) {
			t.Errorf("shelf %d depth %.1f, want 539 (560 - 5 front - 16 back)", i, c.Dimensions[2])
		}
	}

	// Evenly distributed across the interior height.
	for i := 1; i < len(comps); i++ {
		gap := comps[i].Position.Y - comps[i-1].Position.Y
		if !almost(gap, d.Interior.H/4) {
			t.Errorf("shelf spacing %.2f, want %.2f", gap, d.Interior.H/4)
		}
	}
}

func TestFixedShelves_DadoPair(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Shelves.Adjustable.Enabled = false
	cfg.Features.Shelves.Fixed = FixedShelves{
		Enabled:   true,
		Heights:   []float64{200},
		DadoDepth: 8,
	}
	cfg.SecondaryMaterial.FixedShelfThickness = 12
	d := derive(&cfg)

	comps, inj := generateShelves(&cfg, d)
	if len(comps) != 1 {
		t.Fatalf("got %d shelf panels, want 1", len(comps))
	}
	if len(inj) != 2 {
		t.Fatalf("got %d injections, want one per side panel", len(inj))
	}

	shelf := comps[0]
	if shelf.Role != RoleFixedShelf {
		t.Errorf("role %s, want %s", shelf.Role, RoleFixedShelf)
	}
	// Widened by the dado depth on both ends so it seats in both sides.
	if !almost(shelf.Dimensions[0], 580) {
		t.Errorf("fixed shelf width %.1f, want 580 (564 interior + 2x8 dado)", shelf.Dimensions[0])
	}
	if !almost(shelf.Dimensions[1], 12) {
		t.Errorf("fixed shelf thickness %.1f, want the 12mm shelf stock", shelf.Dimensions[1])
	}
	if !almost(shelf.Position.X, 10) {
		t.Errorf("fixed shelf at x=%.1f, want 10 (18 - 8 dado)", shelf.Position.X)
	}

	for _, in := range inj {
		slot := in.features[0].(Slot)
		if slot.Width != 12 {
			t.Errorf("dado width %.1f into %s, want the 12mm shelf stock", slot.Width, in.target)
		}
		if slot.Depth != 8 {
			t.Errorf("dado depth %.1f, want 8", slot.Depth)
		}
		// Centerline through the middle of the seated shelf.
		wantY := d.InteriorBottom + 200 + 6
		if !almost(slot.Path[0].Y, wantY) {
			t.Errorf("dado centerline at y=%.1f, want %.1f", slot.Path[0].Y, wantY)
		}
	}
}

func TestRunnerStrips(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Shelves.Adjustable.Enabled = false
	cfg.Features.Shelves.Runners = Runners{
		Enabled:   true,
		Heights:   []float64{150, 350},
		HoleCount: 3,
	}
	d := derive(&cfg)

	comps, inj := generateShelves(&cfg, d)
	if len(comps) != 4 {
		t.Fatalf("got %d strips, want a pair per height", len(comps))
	}

	span := cfg.GlobalBounds.D - DefaultFrontSetback - DefaultRearSetback
	for _, c := range comps {
		if c.Role != RoleRunnerStrip {
			t.Errorf("%s role %s, want %s", c.ID, c.Role, RoleRunnerStrip)
		}
		if !almost(c.Dimensions[2], span) {
			t.Errorf("%s length %.1f, want %.1f", c.ID, c.Dimensions[2], span)
		}
		if !almost(c.Position.Z, DefaultFrontSetback) {
			t.Errorf("%s starts at z=%.1f, want %.1f", c.ID, c.Position.Z, DefaultFrontSetback)
		}
	}

	// Three evenly spaced through holes per strip, mirrored across panels.
	for _, in := range inj {
		if len(in.features) != 6 {
			t.Errorf("%s got %d mounting holes, want 3 per height", in.target, len(in.features))
		}
		for _, f := range in.features {
			h := f.(Hole)
			if h.Depth != 0 {
				t.Errorf("mounting hole depth %.1f, want through-cut", h.Depth)
			}
			if h.Purpose != PurposeRunner {
				t.Errorf("mounting hole purpose %s, want %s", h.Purpose, PurposeRunner)
			}
		}
	}
}

func TestRunnerHoleXs(t *testing.T) {
	xs := runnerHoleXs(37, 486, 3)
	want := []float64{37, 280, 523}
	if len(xs) != len(want) {
		t.Fatalf("got %d holes, want %d", len(xs), len(want))
	}
	for i := range xs {
		if !almost(xs[i], want[i]) {
			t.Errorf("hole %d at %.1f, want %.1f", i, xs[i], want[i])
		}
	}

	if xs := runnerHoleXs(37, 486, 1); len(xs) != 1 || !almost(xs[0], 280) {
		t.Errorf("single hole at %v, want centered at 280", xs)
	}
	if xs := runnerHoleXs(37, 486, 0); xs != nil {
		t.Errorf("zero holes yielded %v", xs)
	}
}
