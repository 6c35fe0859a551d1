package cabinet

import (
	"fmt"

	"github.com/chazu/millwork/pkg/geom"
)

// generateShelves derives the three shelf feature families (adjustable
// System 32 pin columns, fixed-shelf dados, and runner strips) plus the
// shelf panels themselves. The families are independent; whatever subset
// the configuration enables is honored, including none or all three.
// UI-level exclusivity between adjustable and fixed is not this function's
// concern.
func generateShelves(cfg *Config, d Derived) ([]Component, []injection) {
	var comps []Component
	var injections []injection

	if cfg.Features.Shelves.Adjustable.Enabled {
		c, inj := adjustableShelves(cfg, d)
		comps = append(comps, c...)
		injections = append(injections, inj...)
	}
	if cfg.Features.Shelves.Fixed.Enabled {
		c, inj := fixedShelves(cfg, d)
		comps = append(comps, c...)
		injections = append(injections, inj...)
	}
	if cfg.Features.Shelves.Runners.Enabled {
		c, inj := runnerStrips(cfg, d)
		comps = append(comps, c...)
		injections = append(injections, inj...)
	}

	return comps, injections
}

// shelfDepth is the front-to-back size of any shelf panel: the cabinet
// depth minus the front clearance and whatever the back panel assembly
// occupies at the rear.
func shelfDepth(cfg *Config, d Derived) float64 {
	return cfg.GlobalBounds.D - ShelfFrontClearance - d.BackOccupation
}

// adjustableShelves drills two vertical pin columns per side panel and
// distributes the loose shelf panels evenly across the interior. Both side
// panels take their Y range and column setbacks from the shared derived
// geometry, so the columns align hole for hole.
func adjustableShelves(cfg *Config, d Derived) ([]Component, []injection) {
	depth := cfg.GlobalBounds.D

	var left, right []Feature
	for y := d.PinStartY; y <= d.PinEndY+1e-9; y += PinSpacing {
		for _, colX := range []float64{d.PinFrontX, d.PinRearX} {
			hole := Hole{
				Diameter: PinDiameter,
				Depth:    PinDepth,
				Purpose:  PurposeShelfPin,
			}

			hl := hole
			hl.Pos = geom.Vec2{X: colX, Y: y}
			left = append(left, hl)

			hr := hole
			hr.Pos = geom.Vec2{X: depth - colX, Y: y}
			right = append(right, hr)
		}
	}

	injections := []injection{
		{target: RoleSidePanelLeft, features: left},
		{target: RoleSidePanelRight, features: right},
	}

	var comps []Component
	count := cfg.Features.Shelves.Adjustable.Count
	for i := 0; i < count; i++ {
		y := d.InteriorBottom + float64(i+1)*d.Interior.H/float64(count+1)
		comps = append(comps, Component{
			ID:    fmt.Sprintf("shelf-adj-%d", i+1),
			Label: fmt.Sprintf("Adjustable Shelf %d", i+1),
			Role:  RoleAdjustableShelf,
			Dimensions: [3]float64{
				d.Interior.W - ShelfWidthClearance,
				cfg.Material.Thickness,
				shelfDepth(cfg, d),
			},
			Position: geom.Vec3{
				X: cfg.Material.Thickness + ShelfWidthClearance/2,
				Y: y,
				Z: ShelfFrontClearance,
			},
			Layer:             LayerOutsideCut,
			MaterialThickness: cfg.Material.Thickness,
		})
	}

	return comps, injections
}

// fixedShelves cuts one dado pair per configured height and widens each
// shelf by the dado depth on both ends so it seats in both side panels.
// The slot width is the shelf stock thickness, not the carcass thickness.
func fixedShelves(cfg *Config, d Derived) ([]Component, []injection) {
	t := cfg.Material.Thickness
	st := cfg.FixedShelfThickness()
	dd := cfg.Features.Shelves.Fixed.DadoDepth
	depth := cfg.GlobalBounds.D

	front := ShelfFrontClearance
	rear := depth - d.BackOccupation

	var comps []Component
	var left, right []Feature
	for i, h := range cfg.Features.Shelves.Fixed.Heights {
		y := d.InteriorBottom + h
		centerY := y + st/2

		slot := Slot{
			Width:   st,
			Depth:   dd,
			Purpose: PurposeShelfDado,
		}

		sl := slot
		sl.Path = []geom.Vec2{{X: front, Y: centerY}, {X: rear, Y: centerY}}
		left = append(left, sl)

		sr := slot
		sr.Path = []geom.Vec2{{X: depth - front, Y: centerY}, {X: depth - rear, Y: centerY}}
		right = append(right, sr)

		comps = append(comps, Component{
			ID:    fmt.Sprintf("shelf-fixed-%d", i+1),
			Label: fmt.Sprintf("Fixed Shelf %d", i+1),
			Role:  RoleFixedShelf,
			Dimensions: [3]float64{
				d.Interior.W + 2*dd,
				st,
				shelfDepth(cfg, d),
			},
			Position: geom.Vec3{
				X: t - dd,
				Y: y,
				Z: ShelfFrontClearance,
			},
			Layer:             LayerOutsideCut,
			MaterialThickness: st,
		})
	}

	injections := []injection{
		{target: RoleSidePanelLeft, features: left},
		{target: RoleSidePanelRight, features: right},
	}
	return comps, injections
}

// runnerStrips mounts a wooden strip pair per configured height, each with
// evenly spaced mounting holes drilled through the side panels. Runner
// geometry is independent of pin and dado placement.
func runnerStrips(cfg *Config, d Derived) ([]Component, []injection) {
	t := cfg.Material.Thickness
	b := cfg.GlobalBounds
	run := cfg.Features.Shelves.Runners

	front := run.FrontSetback
	if front <= 0 {
		front = DefaultFrontSetback
	}
	rear := run.RearSetback
	if rear <= 0 {
		rear = DefaultRearSetback
	}
	span := b.D - front - rear

	var comps []Component
	var left, right []Feature
	for i, h := range run.Heights {
		y := d.InteriorBottom + h

		for _, x := range runnerHoleXs(front, span, run.HoleCount) {
			hole := Hole{
				Diameter: PredrillPilotDiameter,
				Depth:    0, // through, screwed from outside into the strip
				Purpose:  PurposeRunner,
			}

			hl := hole
			hl.Pos = geom.Vec2{X: x, Y: y + RunnerStripHeight/2}
			left = append(left, hl)

			hr := hole
			hr.Pos = geom.Vec2{X: b.D - x, Y: y + RunnerStripHeight/2}
			right = append(right, hr)
		}

		for _, s := range []struct {
			side string
			x    float64
		}{{"left", t}, {"right", b.W - 2*t}} {
			comps = append(comps, Component{
				ID:                fmt.Sprintf("runner-%d-%s", i+1, s.side),
				Label:             fmt.Sprintf("Runner Strip %d (%s)", i+1, s.side),
				Role:              RoleRunnerStrip,
				Dimensions:        [3]float64{t, RunnerStripHeight, span},
				Position:          geom.Vec3{X: s.x, Y: y, Z: front},
				Layer:             LayerOutsideCut,
				MaterialThickness: t,
			})
		}
	}

	injections := []injection{
		{target: RoleSidePanelLeft, features: left},
		{target: RoleSidePanelRight, features: right},
	}
	return comps, injections
}

// runnerHoleXs spreads count holes evenly across the runner span, returning
// face X positions. A single hole sits at the span center.
func runnerHoleXs(front, span float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	if count == 1 {
		return []float64{front + span/2}
	}
	step := span / float64(count-1)
	xs := make([]float64, count)
	for i := range xs {
		xs[i] = front + float64(i)*step
	}
	return xs
}
