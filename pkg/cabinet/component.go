package cabinet

import "github.com/chazu/millwork/pkg/geom"

// Role identifies what a component is within the assembly. Downstream
// consumers key projection and grouping rules on it.
type Role string

const (
	RoleSidePanelLeft   Role = "side_panel_left"
	RoleSidePanelRight  Role = "side_panel_right"
	RoleTopPanel        Role = "top_panel"
	RoleBottomPanel     Role = "bottom_panel"
	RoleBackPanel       Role = "back_panel"
	RoleToeKickPanel    Role = "toe_kick_panel"
	RoleFixedShelf      Role = "fixed_shelf"
	RoleAdjustableShelf Role = "adjustable_shelf"
	RoleRunnerStrip     Role = "runner_strip"
	RoleDrawerFront     Role = "drawer_front"
	RoleDrawerSide      Role = "drawer_side"
	RoleDrawerBack      Role = "drawer_back"
	RoleDrawerBottom    Role = "drawer_bottom"
)

// Layer is the CNC output layer a cut belongs to. The export emitters key
// tool selection on these exact values.
type Layer string

const (
	LayerOutsideCut  Layer = "OUTSIDE_CUT"
	LayerDrill3mm    Layer = "DRILL_3MM"
	LayerDrill5mm    Layer = "DRILL_5MM"
	LayerDrill8mm    Layer = "DRILL_8MM"
	LayerDrill35mm   Layer = "DRILL_35MM"
	LayerCountersink Layer = "COUNTERSINK"
	LayerPocketDado  Layer = "POCKET_DADO"
)

// Component is one physical panel of the assembly. Dimensions are [w,h,d]
// in assembly orientation; Position is the panel's minimum corner in
// assembly space (origin at the cabinet's bottom-front-left corner).
// Features are expressed in the component's local 2D cutting-face
// coordinates, not world space.
type Component struct {
	ID                string      `json:"id"`
	Label             string      `json:"label"`
	Role              Role        `json:"role"`
	Dimensions        [3]float64  `json:"dimensions"` // w, h, d
	Position          geom.Vec3   `json:"position"`
	Rotation          [3]float64  `json:"rotation"` // always identity; reserved
	Features          FeatureList `json:"features"`
	Layer             Layer       `json:"layer"`
	MaterialThickness float64     `json:"materialThickness"`
}

// AddFeatures appends features to the component. Feature lists are
// additive; nothing in the pipeline ever replaces an existing list.
func (c *Component) AddFeatures(fs ...Feature) {
	c.Features = append(c.Features, fs...)
}

// FaceSize returns the width and height of the component's 2D cutting face,
// the fixed per-role projection of its 3D dimensions. Vertical panels
// project depth x height, horizontal panels width x depth, and frontal
// panels width x height.
func (c *Component) FaceSize() (w, h float64) {
	switch c.Role {
	case RoleSidePanelLeft, RoleSidePanelRight, RoleDrawerSide, RoleRunnerStrip:
		return c.Dimensions[2], c.Dimensions[1]
	case RoleTopPanel, RoleBottomPanel, RoleFixedShelf, RoleAdjustableShelf, RoleDrawerBottom:
		return c.Dimensions[0], c.Dimensions[2]
	default: // back panel, toe kick, drawer front/back
		return c.Dimensions[0], c.Dimensions[1]
	}
}
