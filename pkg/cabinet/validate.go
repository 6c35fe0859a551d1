package cabinet

import "fmt"

// Result bundles validation findings. Errors block a build; warnings are
// advisory and never do.
type Result struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether the configuration can be built.
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Validate checks a configuration for physical feasibility. It never
// panics; every finding is collected as a value. Each domain's checks run
// independently and unconditionally, so a single pass reports everything
// that is wrong, not just the first problem.
func Validate(cfg *Config) Result {
	var r Result

	r.collect(validateCarcass(cfg))
	r.collect(validateBackPanel(cfg))
	r.collect(validateShelves(cfg))
	r.collect(validateDrawers(cfg))

	// Geometrically legal but practically risky: shelf-pin holes can land
	// under drawer slide hardware. Advisory only.
	if cfg.Features.Shelves.Adjustable.Enabled && cfg.Features.Drawers.Enabled {
		r.Warnings = append(r.Warnings,
			"adjustable shelf-pin holes may conflict with drawer slide hardware")
	}

	return r
}

func (r *Result) collect(errs, warns []string) {
	r.Errors = append(r.Errors, errs...)
	r.Warnings = append(r.Warnings, warns...)
}

func validateCarcass(cfg *Config) (errs, warns []string) {
	b := cfg.GlobalBounds
	t := cfg.Material.Thickness

	if b.W < MinGlobalDimension || b.H < MinGlobalDimension || b.D < MinGlobalDimension {
		errs = append(errs, fmt.Sprintf(
			"global dimensions %.0fx%.0fx%.0fmm must each be at least %.0fmm",
			b.W, b.H, b.D, MinGlobalDimension))
	}
	if t <= 0 || t > MaxMaterialThickness {
		errs = append(errs, fmt.Sprintf(
			"material thickness %.1fmm must be in (0, %.0f]mm", t, MaxMaterialThickness))
	}

	d := derive(cfg)
	if d.Interior.W <= 0 {
		errs = append(errs, fmt.Sprintf(
			"interior width %.1fmm is not positive after side panel deduction", d.Interior.W))
	}
	if d.Interior.H <= 0 {
		errs = append(errs, fmt.Sprintf(
			"interior height %.1fmm is not positive after panel and toe-kick deductions", d.Interior.H))
	}

	tk := cfg.Features.ToeKick
	if tk.Enabled {
		if tk.Height <= 0 || tk.Depth <= 0 {
			errs = append(errs, "toe kick height and depth must be positive")
		}
		if tk.Depth >= b.D {
			errs = append(errs, fmt.Sprintf(
				"toe kick depth %.1fmm must be less than cabinet depth %.1fmm", tk.Depth, b.D))
		}
	}

	return errs, warns
}

func validateBackPanel(cfg *Config) (errs, warns []string) {
	bp := cfg.BackPanel

	switch bp.Type {
	case BackPanelNone:
		return nil, nil
	case BackPanelApplied, BackPanelInset:
	default:
		errs = append(errs, fmt.Sprintf("unknown back panel type %q", bp.Type))
		return errs, warns
	}

	if cfg.BackPanelThickness() <= 0 {
		errs = append(errs, "back panel thickness must be positive")
	}

	if bp.Type == BackPanelInset {
		if bp.DadoDepth <= 0 {
			errs = append(errs, "inset back panel requires a positive dado depth")
		}
		if bp.DadoDepth >= cfg.Material.Thickness {
			errs = append(errs, fmt.Sprintf(
				"back panel dado depth %.1fmm must be less than material thickness %.1fmm",
				bp.DadoDepth, cfg.Material.Thickness))
		}
		if bp.InsetDistance < 0 {
			errs = append(errs, "back panel inset distance must be non-negative")
		}
		if bp.InsetDistance+cfg.BackPanelThickness() >= cfg.GlobalBounds.D {
			errs = append(errs, fmt.Sprintf(
				"back panel inset %.1fmm plus thickness %.1fmm does not fit within depth %.1fmm",
				bp.InsetDistance, cfg.BackPanelThickness(), cfg.GlobalBounds.D))
		}
	}

	return errs, warns
}

func validateShelves(cfg *Config) (errs, warns []string) {
	d := derive(cfg)
	depth := cfg.GlobalBounds.D

	adj := cfg.Features.Shelves.Adjustable
	if adj.Enabled {
		if adj.FrontSetback < 0 || adj.RearSetback < 0 {
			errs = append(errs, "shelf pin setbacks must be non-negative")
		}
		if adj.FrontSetback+adj.RearSetback >= depth {
			errs = append(errs, fmt.Sprintf(
				"combined shelf pin setbacks %.1fmm must be less than depth %.1fmm",
				adj.FrontSetback+adj.RearSetback, depth))
		}
		if d.PinEndY < d.PinStartY {
			errs = append(errs, "interior height leaves no room for a row of shelf-pin holes")
		}
		if adj.Count < 0 {
			errs = append(errs, "adjustable shelf count must be non-negative")
		}
	}

	fixed := cfg.Features.Shelves.Fixed
	if fixed.Enabled {
		if fixed.DadoDepth <= 0 {
			errs = append(errs, "fixed shelves require a positive dado depth")
		}
		if fixed.DadoDepth >= cfg.Material.Thickness {
			errs = append(errs, fmt.Sprintf(
				"fixed shelf dado depth %.1fmm must be less than material thickness %.1fmm",
				fixed.DadoDepth, cfg.Material.Thickness))
		}
		for _, h := range fixed.Heights {
			if h <= 0 || h+cfg.FixedShelfThickness() >= d.Interior.H {
				errs = append(errs, fmt.Sprintf(
					"fixed shelf at %.1fmm does not fit within interior height %.1fmm",
					h, d.Interior.H))
			}
		}
	}

	run := cfg.Features.Shelves.Runners
	if run.Enabled {
		if run.HoleCount <= 0 {
			errs = append(errs, "runner strips require a positive mounting hole count")
		}
		if run.FrontSetback < 0 || run.RearSetback < 0 {
			errs = append(errs, "runner setbacks must be non-negative")
		}
		if run.FrontSetback+run.RearSetback >= depth {
			errs = append(errs, fmt.Sprintf(
				"combined runner setbacks %.1fmm must be less than depth %.1fmm",
				run.FrontSetback+run.RearSetback, depth))
		}
		for _, h := range run.Heights {
			if h <= 0 || h >= d.Interior.H {
				errs = append(errs, fmt.Sprintf(
					"runner at %.1fmm is outside interior height %.1fmm", h, d.Interior.H))
			}
		}
	}

	return errs, warns
}

func validateDrawers(cfg *Config) (errs, warns []string) {
	dw := cfg.Features.Drawers
	if !dw.Enabled {
		return nil, nil
	}

	d := derive(cfg)

	if dw.Count <= 0 {
		errs = append(errs, "drawers are enabled but count is not positive")
		return errs, warns
	}
	if dw.SlideWidth < 0 {
		errs = append(errs, "drawer slide width must be non-negative")
	}
	if dw.OverlayAmount < 0 {
		errs = append(errs, "drawer overlay amount must be non-negative")
	}

	boxWidth := d.Interior.W - 2*dw.SlideWidth
	if boxWidth < MinDrawerBoxWidth {
		errs = append(errs, fmt.Sprintf(
			"drawer slide clearance leaves %.1fmm box width, need at least %.0fmm",
			boxWidth, MinDrawerBoxWidth))
	}

	if len(d.DrawerSlices) > 0 {
		boxHeight := d.DrawerSlices[0].H - DrawerBoxVerticalClearance
		if boxHeight < MinDrawerBoxHeight {
			errs = append(errs, fmt.Sprintf(
				"drawer box height %.1fmm is below the %.0fmm minimum",
				boxHeight, MinDrawerBoxHeight))
		}
	}

	if dw.PullHoles.Count < 0 || dw.PullHoles.Count > 2 {
		errs = append(errs, fmt.Sprintf("pull hole count %d must be 0, 1 or 2", dw.PullHoles.Count))
	}
	if dw.PullHoles.Count == 2 && dw.PullHoles.Spacing <= 0 {
		errs = append(errs, "double pull holes require a positive spacing")
	}

	return errs, warns
}
