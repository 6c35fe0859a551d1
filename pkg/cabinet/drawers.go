package cabinet

import (
	"fmt"

	"github.com/chazu/millwork/pkg/geom"
)

// drawerBox holds the per-drawer quantities shared by all five panels of
// one drawer. Everything is derived from the configuration and the drawer
// index; no drawer depends on another drawer's output.
type drawerBox struct {
	slice     Slice   // vertical opening share from Derived
	boxY      float64 // assembly-space bottom of the box
	boxWidth  float64 // exterior, between the slides
	boxInner  float64 // interior, between the box sides
	boxHeight float64
	boxDepth  float64
	leftX     float64 // assembly-space X of the left box side
}

// boxGeometry computes the shared drawer-box quantities for drawer i.
func boxGeometry(cfg *Config, d Derived, i int) drawerBox {
	t := cfg.Material.Thickness
	dw := cfg.Features.Drawers

	g := drawerBox{slice: d.DrawerSlices[i]}
	g.boxWidth = d.Interior.W - 2*dw.SlideWidth
	g.boxInner = g.boxWidth - 2*t
	g.boxHeight = g.slice.H - DrawerBoxVerticalClearance
	g.boxDepth = cfg.GlobalBounds.D - DrawerRearClearance - d.BackOccupation
	g.boxY = g.slice.Y + DrawerBoxVerticalClearance/2
	g.leftX = t + dw.SlideWidth
	return g
}

// generateDrawers derives the drawer stack: per drawer an overlay front,
// two sides carrying the bottom dado, a back sitting above the dado, and a
// bottom seated in both side dados.
func generateDrawers(cfg *Config, d Derived) []Component {
	if !cfg.Features.Drawers.Enabled {
		return nil
	}

	var comps []Component
	for i := range d.DrawerSlices {
		g := boxGeometry(cfg, d, i)
		comps = append(comps, drawerFront(cfg, g, i))
		comps = append(comps, drawerSides(cfg, g, i)...)
		comps = append(comps, drawerBack(cfg, g, i))
		comps = append(comps, drawerBottom(cfg, g, i))
	}
	return comps
}

// drawerFront is the overlay face: it overlaps the carcass opening by the
// configured overlay amount on all sides and carries the pull holes.
func drawerFront(cfg *Config, g drawerBox, i int) Component {
	t := cfg.Material.Thickness
	ov := cfg.Features.Drawers.OverlayAmount

	w := cfg.GlobalBounds.W - 2*t + 2*ov
	h := g.slice.H + 2*ov

	front := Component{
		ID:                fmt.Sprintf("drawer-%d-front", i+1),
		Label:             fmt.Sprintf("Drawer %d Front", i+1),
		Role:              RoleDrawerFront,
		Dimensions:        [3]float64{w, h, t},
		Position:          geom.Vec3{X: t - ov, Y: g.slice.Y - ov, Z: -t},
		Layer:             LayerOutsideCut,
		MaterialThickness: t,
	}

	pulls := cfg.Features.Drawers.PullHoles
	if pulls.Count > 0 {
		y := h / 2
		if pulls.VerticalOffset > 0 {
			y = h - pulls.VerticalOffset
		}
		var xs []float64
		switch pulls.Count {
		case 1:
			xs = []float64{w / 2}
		case 2:
			xs = []float64{w/2 - pulls.Spacing/2, w/2 + pulls.Spacing/2}
		}
		for _, x := range xs {
			front.AddFeatures(Hole{
				Diameter: PullHoleDiameter,
				Depth:    0, // through, bolted from behind
				Pos:      geom.Vec2{X: x, Y: y},
				Purpose:  PurposePull,
			})
		}
	}

	return front
}

// drawerSides are the two box sides. Each carries the bottom dado whose
// width equals the drawer-bottom stock thickness.
func drawerSides(cfg *Config, g drawerBox, i int) []Component {
	t := cfg.Material.Thickness
	bt := cfg.DrawerBottomThickness()

	dado := Slot{
		Width:   bt,
		Depth:   DrawerDadoDepth,
		Purpose: PurposeBottomDado,
		Path: []geom.Vec2{
			{X: 0, Y: DrawerBottomInset + bt/2},
			{X: g.boxDepth, Y: DrawerBottomInset + bt/2},
		},
	}

	sides := make([]Component, 0, 2)
	for _, s := range []struct {
		name string
		x    float64
	}{{"left", g.leftX}, {"right", g.leftX + g.boxWidth - t}} {
		side := Component{
			ID:                fmt.Sprintf("drawer-%d-side-%s", i+1, s.name),
			Label:             fmt.Sprintf("Drawer %d Side (%s)", i+1, s.name),
			Role:              RoleDrawerSide,
			Dimensions:        [3]float64{t, g.boxHeight, g.boxDepth},
			Position:          geom.Vec3{X: s.x, Y: g.boxY, Z: 0},
			Layer:             LayerOutsideCut,
			MaterialThickness: t,
		}
		side.AddFeatures(dado)
		sides = append(sides, side)
	}
	return sides
}

// drawerBack is shorter than the sides so the bottom can slide in beneath
// it from the rear.
func drawerBack(cfg *Config, g drawerBox, i int) Component {
	t := cfg.Material.Thickness
	bt := cfg.DrawerBottomThickness()

	h := g.boxHeight - DrawerBottomInset - bt
	return Component{
		ID:         fmt.Sprintf("drawer-%d-back", i+1),
		Label:      fmt.Sprintf("Drawer %d Back", i+1),
		Role:       RoleDrawerBack,
		Dimensions: [3]float64{g.boxInner, h, t},
		Position: geom.Vec3{
			X: g.leftX + t,
			Y: g.boxY + DrawerBottomInset + bt,
			Z: g.boxDepth - t,
		},
		Layer:             LayerOutsideCut,
		MaterialThickness: t,
	}
}

// drawerBottom seats in both side dados, so it is wider than the box
// interior by the dado depth on each side. It runs short of the back panel
// by the back's thickness so it can be slid in during assembly.
func drawerBottom(cfg *Config, g drawerBox, i int) Component {
	t := cfg.Material.Thickness
	bt := cfg.DrawerBottomThickness()

	return Component{
		ID:         fmt.Sprintf("drawer-%d-bottom", i+1),
		Label:      fmt.Sprintf("Drawer %d Bottom", i+1),
		Role:       RoleDrawerBottom,
		Dimensions: [3]float64{g.boxInner + 2*DrawerDadoDepth, bt, g.boxDepth - t},
		Position: geom.Vec3{
			X: g.leftX + t - DrawerDadoDepth,
			Y: g.boxY + DrawerBottomInset,
			Z: 0,
		},
		Layer:             LayerOutsideCut,
		MaterialThickness: bt,
	}
}
