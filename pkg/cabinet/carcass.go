package cabinet

import (
	"math"

	"github.com/chazu/millwork/pkg/geom"
)

// carcass holds the structural panels. The orchestrator injects features
// from the other generators into these before assembling the component
// list.
type carcass struct {
	left, right, top, bottom Component
	toeKick                  *Component
}

// generateCarcass derives the two side panels, the top/bottom panels
// captured between them, and (when enabled) the toe-kick notches and board.
// It is a pure function over the configuration and shared derived geometry;
// infeasible input is the validator's concern, never rejected here.
func generateCarcass(cfg *Config, d Derived) carcass {
	t := cfg.Material.Thickness
	b := cfg.GlobalBounds

	c := carcass{
		left: Component{
			ID:                "side-left",
			Label:             "Side Panel (Left)",
			Role:              RoleSidePanelLeft,
			Dimensions:        [3]float64{t, b.H, b.D},
			Position:          geom.Vec3{},
			Layer:             LayerOutsideCut,
			MaterialThickness: t,
		},
		right: Component{
			ID:                "side-right",
			Label:             "Side Panel (Right)",
			Role:              RoleSidePanelRight,
			Dimensions:        [3]float64{t, b.H, b.D},
			Position:          geom.Vec3{X: b.W - t},
			Layer:             LayerOutsideCut,
			MaterialThickness: t,
		},
		top: Component{
			ID:                "top",
			Label:             "Top Panel",
			Role:              RoleTopPanel,
			Dimensions:        [3]float64{d.Interior.W, t, b.D},
			Position:          geom.Vec3{X: t, Y: b.H - t},
			Layer:             LayerOutsideCut,
			MaterialThickness: t,
		},
		bottom: Component{
			ID:                "bottom",
			Label:             "Bottom Panel",
			Role:              RoleBottomPanel,
			Dimensions:        [3]float64{d.Interior.W, t, b.D},
			Position:          geom.Vec3{X: t, Y: d.ToeKickHeight},
			Layer:             LayerOutsideCut,
			MaterialThickness: t,
		},
	}

	if cfg.Features.ToeKick.Enabled {
		addToeKickNotches(cfg, &c)
		kick := toeKickPanel(cfg, d)
		c.toeKick = &kick
	}

	if cfg.Predrills.Assembly {
		addAssemblyPredrills(cfg, d, &c)
	}
	if cfg.Predrills.Slides && cfg.Features.Drawers.Enabled {
		addSlidePredrills(cfg, d, &c)
	}

	return c
}

// addToeKickNotches cuts the mirrored bottom-front notches into both side
// panels. On the side panel cutting face, local X is distance from the
// front edge; the right panel face is mirrored, so its notch anchors at the
// opposite end of the X axis.
func addToeKickNotches(cfg *Config, c *carcass) {
	tk := cfg.Features.ToeKick
	depth := cfg.GlobalBounds.D

	c.left.AddFeatures(Notch{
		Width:  tk.Depth,
		Height: tk.Height,
		Pos:    geom.Vec2{X: 0, Y: 0},
		Corner: CornerBottomLeft,
	})
	c.right.AddFeatures(Notch{
		Width:  tk.Depth,
		Height: tk.Height,
		Pos:    geom.Vec2{X: depth - tk.Depth, Y: 0},
		Corner: CornerBottomRight,
	})
}

// toeKickPanel is the recessed board closing the notch. It spans between
// the side panels and sits flush with the back of the notch.
func toeKickPanel(cfg *Config, d Derived) Component {
	t := cfg.Material.Thickness
	tk := cfg.Features.ToeKick

	return Component{
		ID:                "toe-kick",
		Label:             "Toe Kick Board",
		Role:              RoleToeKickPanel,
		Dimensions:        [3]float64{d.Interior.W, tk.Height, t},
		Position:          geom.Vec3{X: t, Z: tk.Depth - t},
		Layer:             LayerOutsideCut,
		MaterialThickness: t,
	}
}

// addAssemblyPredrills drills countersunk screw pilots along the side
// panels' top and bottom edges, through into the captured panels.
func addAssemblyPredrills(cfg *Config, d Derived, c *carcass) {
	t := cfg.Material.Thickness
	b := cfg.GlobalBounds

	// Row centered on each captured panel's thickness.
	bottomY := d.ToeKickHeight + t/2
	topY := b.H - t/2

	// The bottom row must clear the toe-kick notch on its front end.
	bottomStart := 0.0
	if cfg.Features.ToeKick.Enabled && cfg.Features.ToeKick.Height >= bottomY {
		bottomStart = cfg.Features.ToeKick.Depth
	}

	predrillRow(c, b.D, bottomStart, bottomY)
	predrillRow(c, b.D, 0, topY)
}

// predrillRow drills one countersink row into both side panels at height y,
// spanning [start, depth] along the edge. Right panel X mirrors the left.
func predrillRow(c *carcass, depth, start, y float64) {
	for _, x := range edgePositions(depth-start, PredrillEdgeOffset, ScrewSpacing) {
		cs := Countersink{
			PilotDiameter:       PredrillPilotDiameter,
			CountersinkDiameter: CountersinkDiameter,
			PilotDepth:          0, // through
			CountersinkDepth:    CountersinkDepth,
			Purpose:             PurposeAssembly,
		}

		csLeft := cs
		csLeft.Pos = geom.Vec2{X: start + x, Y: y}
		c.left.AddFeatures(csLeft)

		csRight := cs
		csRight.Pos = geom.Vec2{X: depth - (start + x), Y: y}
		c.right.AddFeatures(csRight)
	}
}

// addSlidePredrills drills slide hardware pilots centered on each drawer
// opening, derived from the same drawer slices the drawer generator uses so
// the holes cannot drift from the boxes they mount.
func addSlidePredrills(cfg *Config, d Derived, c *carcass) {
	b := cfg.GlobalBounds
	rear := b.D - d.BackOccupation - PredrillEdgeOffset

	for _, slice := range d.DrawerSlices {
		y := slice.Y + slice.H/2
		span := rear - DefaultFrontSetback
		if span <= 0 {
			continue
		}
		for _, x := range edgePositions(span, 0, ScrewSpacing) {
			h := Hole{
				Diameter: SlideHoleDiameter,
				Depth:    SlideHoleDepth,
				Purpose:  PurposeSlide,
			}

			hl := h
			hl.Pos = geom.Vec2{X: DefaultFrontSetback + x, Y: y}
			c.left.AddFeatures(hl)

			hr := h
			hr.Pos = geom.Vec2{X: b.D - (DefaultFrontSetback + x), Y: y}
			c.right.AddFeatures(hr)
		}
	}
}

// edgePositions divides a span into intervals no larger than maxSpacing,
// anchoring the first and last position at offset from either end. Returned
// positions are relative to the start of the span. A span too small for two
// holes yields its midpoint.
func edgePositions(length, offset, maxSpacing float64) []float64 {
	span := length - 2*offset
	if span <= 0 {
		return []float64{length / 2}
	}

	intervals := int(math.Ceil(span / maxSpacing))
	if intervals < 1 {
		intervals = 1
	}
	step := span / float64(intervals)

	positions := make([]float64, 0, intervals+1)
	for i := 0; i <= intervals; i++ {
		positions = append(positions, offset+float64(i)*step)
	}
	return positions
}
