package cabinet

import "github.com/chazu/millwork/pkg/geom"

// generateBackPanel derives the rear closure per the configured style.
// "none" produces nothing; "applied" a full-size panel nailed onto the rear
// face; "inset" a panel seated in dados on all four surrounding panels,
// returning the four slot injections alongside the panel itself. Every
// injected dado shares one invariant: slot width equals the back panel
// stock thickness, never the carcass thickness.
func generateBackPanel(cfg *Config, d Derived) ([]Component, []injection) {
	switch cfg.BackPanel.Type {
	case BackPanelNone:
		return nil, nil
	case BackPanelApplied:
		return []Component{appliedBackPanel(cfg)}, nil
	case BackPanelInset:
		return insetBackPanel(cfg, d)
	default:
		// Unknown styles are rejected by the validator; generators are
		// total over validated input.
		return nil, nil
	}
}

// appliedBackPanel covers the full rear face and is fastened from behind.
func appliedBackPanel(cfg *Config) Component {
	b := cfg.GlobalBounds
	bt := cfg.BackPanelThickness()

	return Component{
		ID:                "back",
		Label:             "Back Panel (Applied)",
		Role:              RoleBackPanel,
		Dimensions:        [3]float64{b.W, b.H, bt},
		Position:          geom.Vec3{Z: b.D},
		Layer:             LayerOutsideCut,
		MaterialThickness: bt,
	}
}

// insetBackPanel seats inside a dado on all four surrounding panels. The
// panel is inflated by the dado depth on every edge so it protrudes into
// all four slots simultaneously.
func insetBackPanel(cfg *Config, d Derived) ([]Component, []injection) {
	b := cfg.GlobalBounds
	t := cfg.Material.Thickness
	bt := cfg.BackPanelThickness()
	dd := cfg.BackPanel.DadoDepth
	inset := cfg.BackPanel.InsetDistance

	panel := Component{
		ID:    "back",
		Label: "Back Panel (Inset)",
		Role:  RoleBackPanel,
		Dimensions: [3]float64{
			d.Interior.W + 2*dd,
			d.Interior.H + 2*dd,
			bt,
		},
		Position: geom.Vec3{
			X: t - dd,
			Y: d.InteriorBottom - dd,
			Z: b.D - inset - bt,
		},
		Layer:             LayerOutsideCut,
		MaterialThickness: bt,
	}

	// Slot centerline distance from the front edge on the side panel face.
	sideX := b.D - inset - bt/2
	// The same distance on the top/bottom panel face, where local Y is
	// depth from the front.
	flatY := sideX

	vertical := func(x float64) Slot {
		return Slot{
			Width:   bt,
			Depth:   dd,
			Purpose: PurposeBackDado,
			Path: []geom.Vec2{
				{X: x, Y: d.InteriorBottom - dd},
				{X: x, Y: d.InteriorTop + dd},
			},
		}
	}
	horizontal := Slot{
		Width:   bt,
		Depth:   dd,
		Purpose: PurposeBackDado,
		Path: []geom.Vec2{
			{X: 0, Y: flatY},
			{X: d.Interior.W, Y: flatY},
		},
	}

	injections := []injection{
		{target: RoleSidePanelLeft, features: []Feature{vertical(sideX)}},
		{target: RoleSidePanelRight, features: []Feature{vertical(b.D - sideX)}},
		{target: RoleTopPanel, features: []Feature{horizontal}},
		{target: RoleBottomPanel, features: []Feature{horizontal}},
	}

	return []Component{panel}, injections
}
