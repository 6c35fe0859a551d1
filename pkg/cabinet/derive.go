package cabinet

// Derived is the shared derived-geometry value. The orchestrator computes
// it exactly once per build and hands the same value to every generator, so
// quantities that several generators depend on (interior bounds, toe-kick
// offset, drawer stacking, pin column placement) cannot silently diverge
// between panels.
type Derived struct {
	// Interior is the usable interior volume after panel deductions:
	// w = W - 2t, h = H - 2t - toeKick, d = D.
	Interior Bounds

	// ToeKickHeight is 0 when the toe kick is disabled.
	ToeKickHeight float64

	// InteriorBottom is the assembly-space Y of the bottom panel's top
	// face; InteriorTop is the Y of the top panel's underside.
	InteriorBottom float64
	InteriorTop    float64

	// BackOccupation is the depth consumed at the rear by an inset back
	// panel assembly (inset distance + panel thickness); 0 for applied or
	// absent backs. Shelves and drawer boxes stop short of it.
	BackOccupation float64

	// Pin column geometry, identical for both side panels by construction.
	PinFrontX float64 // from the front edge
	PinRearX  float64
	PinStartY float64
	PinEndY   float64

	// DrawerSlices is the vertical split of the interior across the drawer
	// count, bottom-up, with DrawerFrontGap between slices.
	DrawerSlices []Slice
}

// Slice is one drawer's share of the interior height.
type Slice struct {
	Y float64 // assembly-space bottom of the slice
	H float64
}

// derive computes the shared geometry for a configuration. It is total over
// any validated configuration and performs no checks of its own.
func derive(cfg *Config) Derived {
	t := cfg.Material.Thickness
	tk := cfg.ToeKickHeight()

	d := Derived{
		Interior: Bounds{
			W: cfg.GlobalBounds.W - 2*t,
			H: cfg.GlobalBounds.H - 2*t - tk,
			D: cfg.GlobalBounds.D,
		},
		ToeKickHeight:  tk,
		InteriorBottom: tk + t,
		InteriorTop:    cfg.GlobalBounds.H - t,
	}

	if cfg.BackPanel.Type == BackPanelInset {
		d.BackOccupation = cfg.BackPanel.InsetDistance + cfg.BackPanelThickness()
	}

	adj := cfg.Features.Shelves.Adjustable
	front := adj.FrontSetback
	if front <= 0 {
		front = DefaultFrontSetback
	}
	rear := adj.RearSetback
	if rear <= 0 {
		rear = DefaultRearSetback
	}
	d.PinFrontX = front
	d.PinRearX = cfg.GlobalBounds.D - rear
	d.PinStartY = d.InteriorBottom + PinColumnMargin
	d.PinEndY = d.InteriorTop - PinColumnMargin

	if cfg.Features.Drawers.Enabled && cfg.Features.Drawers.Count > 0 {
		n := cfg.Features.Drawers.Count
		sliceH := (d.Interior.H - float64(n-1)*DrawerFrontGap) / float64(n)
		d.DrawerSlices = make([]Slice, n)
		for i := 0; i < n; i++ {
			d.DrawerSlices[i] = Slice{
				Y: d.InteriorBottom + float64(i)*(sliceH+DrawerFrontGap),
				H: sliceH,
			}
		}
	}

	return d
}
