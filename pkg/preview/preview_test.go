package preview

import (
	"testing"

	"github.com/chazu/millwork/pkg/cabinet"
	"github.com/chazu/millwork/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// inside reports whether the point is inside the solid.
func inside(t *testing.T, s sdf.SDF3, p v3.Vec) bool {
	t.Helper()
	return s.Evaluate(p) < 0
}

func sidePanel() *cabinet.Component {
	return &cabinet.Component{
		ID:                "side_panel_left",
		Label:             "Left Side",
		Role:              cabinet.RoleSidePanelLeft,
		Dimensions:        [3]float64{18, 720, 560},
		Position:          geom.Vec3{},
		Layer:             cabinet.LayerOutsideCut,
		MaterialThickness: 18,
	}
}

func TestSolidPlainBox(t *testing.T) {
	c := sidePanel()
	s, err := Solid(c)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}

	if !inside(t, s, v3.Vec{X: 9, Y: 360, Z: 280}) {
		t.Errorf("panel center should be inside the solid")
	}
	if inside(t, s, v3.Vec{X: 30, Y: 360, Z: 280}) {
		t.Errorf("point past the panel thickness should be outside")
	}

	bb := s.BoundingBox()
	if bb.Min.X > 0 || bb.Max.X < 18 || bb.Max.Y < 720 || bb.Max.Z < 560 {
		t.Errorf("bounding box %+v does not cover the panel", bb)
	}
}

func TestSolidStoppedBore(t *testing.T) {
	c := sidePanel()
	c.AddFeatures(cabinet.Hole{
		Diameter: 5,
		Depth:    10,
		Pos:      geom.Vec2{X: 100, Y: 300},
	})

	s, err := Solid(c)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}

	// The left panel is machined from its interior face at x=18; face x
	// runs along assembly z. A 10mm bore reaches down to x=8.
	if inside(t, s, v3.Vec{X: 14, Y: 300, Z: 100}) {
		t.Errorf("point inside the bore should be cut away")
	}
	if !inside(t, s, v3.Vec{X: 4, Y: 300, Z: 100}) {
		t.Errorf("material below the bore depth should remain")
	}
	if !inside(t, s, v3.Vec{X: 14, Y: 300, Z: 104}) {
		t.Errorf("material outside the bore radius should remain")
	}
}

func TestSolidThroughBore(t *testing.T) {
	c := sidePanel()
	c.AddFeatures(cabinet.Hole{
		Diameter: 5,
		Depth:    0, // through
		Pos:      geom.Vec2{X: 200, Y: 500},
	})

	s, err := Solid(c)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}

	for _, x := range []float64{2, 9, 16} {
		if inside(t, s, v3.Vec{X: x, Y: 500, Z: 200}) {
			t.Errorf("through bore should be empty at x=%v", x)
		}
	}
}

func TestSolidCountersink(t *testing.T) {
	c := sidePanel()
	c.AddFeatures(cabinet.Countersink{
		PilotDiameter:       3,
		CountersinkDiameter: 8,
		PilotDepth:          0, // through
		CountersinkDepth:    4,
		Pos:                 geom.Vec2{X: 50, Y: 50},
	})

	s, err := Solid(c)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}

	// Pilot goes all the way through on the centerline.
	if inside(t, s, v3.Vec{X: 2, Y: 50, Z: 50}) {
		t.Errorf("pilot bore should pass through the panel")
	}
	// The wider recess only exists near the entry face.
	if inside(t, s, v3.Vec{X: 16, Y: 50, Z: 53}) {
		t.Errorf("countersink recess should be cut near the entry face")
	}
	if !inside(t, s, v3.Vec{X: 4, Y: 50, Z: 53}) {
		t.Errorf("countersink recess should not reach the far face")
	}
}

func TestSolidDado(t *testing.T) {
	c := sidePanel()
	c.AddFeatures(cabinet.Slot{
		Width: 6,
		Depth: 6,
		Path: []geom.Vec2{
			{X: 547, Y: 112},
			{X: 547, Y: 708},
		},
		Purpose: cabinet.PurposeBackDado,
	})

	s, err := Solid(c)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}

	// 6mm deep from the interior face at x=18 leaves material below x=12.
	if inside(t, s, v3.Vec{X: 15, Y: 400, Z: 547}) {
		t.Errorf("dado groove should be cut on the centerline")
	}
	if !inside(t, s, v3.Vec{X: 9, Y: 400, Z: 547}) {
		t.Errorf("material below the dado depth should remain")
	}
	if !inside(t, s, v3.Vec{X: 15, Y: 400, Z: 552}) {
		t.Errorf("material beyond the dado width should remain")
	}
	if inside(t, s, v3.Vec{X: 15, Y: 700, Z: 547}) {
		t.Errorf("dado should run the full path span")
	}
}

func TestSolidNotch(t *testing.T) {
	c := sidePanel()
	c.AddFeatures(cabinet.Notch{
		Width:  70,
		Height: 100,
		Pos:    geom.Vec2{X: 0, Y: 0},
		Corner: cabinet.CornerBottomLeft,
	})

	s, err := Solid(c)
	if err != nil {
		t.Fatalf("Solid: %v", err)
	}

	if inside(t, s, v3.Vec{X: 9, Y: 50, Z: 30}) {
		t.Errorf("notch region should be cut through")
	}
	if !inside(t, s, v3.Vec{X: 9, Y: 150, Z: 30}) {
		t.Errorf("material above the notch should remain")
	}
	if !inside(t, s, v3.Vec{X: 9, Y: 50, Z: 90}) {
		t.Errorf("material beyond the notch width should remain")
	}
}

func TestFrameMirroring(t *testing.T) {
	// The right panel face is mirrored: face x=0 sits at the cabinet
	// front for both sides, so the same feature coordinates land at the
	// same assembly z.
	left := sidePanel()
	right := &cabinet.Component{
		ID:         "side_panel_right",
		Role:       cabinet.RoleSidePanelRight,
		Dimensions: [3]float64{18, 720, 560},
		Position:   geom.Vec3{X: 582},
	}

	lf, err := frameFor(left)
	if err != nil {
		t.Fatalf("frameFor(left): %v", err)
	}
	rf, err := frameFor(right)
	if err != nil {
		t.Fatalf("frameFor(right): %v", err)
	}

	lp := lf.at(37, 150)
	rp := rf.at(37, 150)
	if lp.Z != rp.Z {
		t.Errorf("mirrored faces disagree on z: left %v right %v", lp.Z, rp.Z)
	}
	if lp.Y != rp.Y {
		t.Errorf("mirrored faces disagree on y: left %v right %v", lp.Y, rp.Y)
	}
	if lf.normal.X != -1 || rf.normal.X != 1 {
		t.Errorf("normals should oppose: left %v right %v", lf.normal, rf.normal)
	}
}

func TestFrameForUnknownRole(t *testing.T) {
	c := &cabinet.Component{Role: cabinet.Role("mystery_panel")}
	if _, err := frameFor(c); err == nil {
		t.Fatal("expected an error for an unknown role")
	}
}

func TestSolidRejectsDiagonalSlot(t *testing.T) {
	c := sidePanel()
	c.AddFeatures(cabinet.Slot{
		Width: 6,
		Depth: 6,
		Path:  []geom.Vec2{{X: 10, Y: 10}, {X: 50, Y: 90}},
	})

	if _, err := Solid(c); err == nil {
		t.Fatal("expected an error for a non-axis-aligned slot segment")
	}
}

func TestMeshes(t *testing.T) {
	cfg := cabinet.DefaultConfig()
	asm, err := cabinet.Build(cfg, cabinet.Stamp{Version: "test"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	meshes, err := Meshes(asm)
	if err != nil {
		t.Fatalf("Meshes: %v", err)
	}
	if len(meshes) != len(asm.Components) {
		t.Fatalf("got %d meshes, want %d", len(meshes), len(asm.Components))
	}

	for i, m := range meshes {
		if m.IsEmpty() {
			t.Errorf("mesh %d (%s) is empty", i, m.ComponentID)
		}
		if m.ComponentID != asm.Components[i].ID {
			t.Errorf("mesh %d id %q, want %q", i, m.ComponentID, asm.Components[i].ID)
		}
		if len(m.Vertices) != len(m.Normals) {
			t.Errorf("mesh %d vertex and normal arrays differ in length", i)
		}
		if m.VertexCount()*3 != len(m.Vertices) {
			t.Errorf("mesh %d vertex count inconsistent with buffer", i)
		}
		if m.TriangleCount()*3 != len(m.Indices) {
			t.Errorf("mesh %d triangle count inconsistent with indices", i)
		}
	}
}

func TestMeshesNilAssembly(t *testing.T) {
	meshes, err := Meshes(nil)
	if err != nil {
		t.Fatalf("Meshes(nil): %v", err)
	}
	if meshes != nil {
		t.Errorf("expected no meshes for a nil assembly, got %d", len(meshes))
	}
}
