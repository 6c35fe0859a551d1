package cabinet

// Config is the declarative cabinet specification. It is the sole input to
// the pipeline: every generator derives all geometry from this one value.
// Config is treated as immutable after construction; a change produces a
// full rebuild, never an incremental patch. All lengths are millimeters;
// imperial display is a presentation concern outside this package.
type Config struct {
	GlobalBounds      Bounds            `json:"globalBounds"`
	Material          Material          `json:"material"`
	SecondaryMaterial SecondaryMaterial `json:"secondaryMaterial"`
	Machining         Machining         `json:"machining"`
	BackPanel         BackPanel         `json:"backPanel"`
	Features          Features          `json:"features"`
	Predrills         Predrills         `json:"predrills"`
}

// Bounds is an axis-aligned size: width, height, depth.
type Bounds struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
	D float64 `json:"d"`
}

// Material describes the primary carcass sheet stock.
type Material struct {
	Thickness float64 `json:"thickness"`
	Kerf      float64 `json:"kerf"` // blade/bit width, distinct from compensation
}

// SecondaryMaterial carries thicknesses for panels cut from thinner stock.
// Zero values fall back: back panel to BackPanel.Thickness, fixed shelves
// to the primary thickness.
type SecondaryMaterial struct {
	BackPanelThickness    float64 `json:"backPanelThickness,omitempty"`
	DrawerBottomThickness float64 `json:"drawerBottomThickness,omitempty"`
	FixedShelfThickness   float64 `json:"fixedShelfThickness,omitempty"`
}

// Compensation selects how outline toolpaths are offset for the bit radius.
type Compensation string

const (
	CompensationNone    Compensation = "none"
	CompensationOutside Compensation = "outside"
	CompensationInside  Compensation = "inside"
)

// Machining holds tooling parameters shared by every subtractive feature.
type Machining struct {
	BitDiameter  float64      `json:"bitDiameter"`
	Compensation Compensation `json:"compensation"`
}

// BackPanelStyle is the terminal state machine over back panel treatment.
// It is selected by configuration; there are no transitions within a build.
type BackPanelStyle string

const (
	BackPanelApplied BackPanelStyle = "applied"
	BackPanelInset   BackPanelStyle = "inset"
	BackPanelNone    BackPanelStyle = "none"
)

// BackPanel configures the rear closure of the carcass.
type BackPanel struct {
	Type          BackPanelStyle `json:"type"`
	Thickness     float64        `json:"thickness"`
	DadoDepth     float64        `json:"dadoDepth,omitempty"`     // inset only
	InsetDistance float64        `json:"insetDistance,omitempty"` // inset only
}

// Features groups the optional feature families.
type Features struct {
	Shelves Shelves `json:"shelves"`
	Drawers Drawers `json:"drawers"`
	ToeKick ToeKick `json:"toeKick"`
}

// Shelves holds three independent feature families sharing the side panels
// as their injection target. Any subset may be enabled; the generators have
// no knowledge of UI-level exclusivity rules.
type Shelves struct {
	Adjustable AdjustableShelves `json:"adjustable"`
	Fixed      FixedShelves      `json:"fixed"`
	Runners    Runners           `json:"runners"`
}

// AdjustableShelves configures System 32 shelf-pin hole columns and the
// loose shelf panels.
type AdjustableShelves struct {
	Enabled      bool    `json:"enabled"`
	Count        int     `json:"count"` // shelf panels; columns are drilled regardless
	FrontSetback float64 `json:"frontSetback,omitempty"`
	RearSetback  float64 `json:"rearSetback,omitempty"`
}

// FixedShelves configures dadoed shelves at explicit heights measured from
// the interior bottom.
type FixedShelves struct {
	Enabled   bool      `json:"enabled"`
	Heights   []float64 `json:"heights,omitempty"`
	DadoDepth float64   `json:"dadoDepth,omitempty"`
}

// Runners configures wooden runner strips with evenly spaced mounting
// holes, independent of pin and dado geometry.
type Runners struct {
	Enabled      bool      `json:"enabled"`
	Heights      []float64 `json:"heights,omitempty"`
	HoleCount    int       `json:"holeCount,omitempty"`
	FrontSetback float64   `json:"frontSetback,omitempty"`
	RearSetback  float64   `json:"rearSetback,omitempty"`
}

// PullHoles configures drawer pull drilling. Count is 0 (none), 1
// (centered) or 2 (spaced Spacing apart, center to center).
type PullHoles struct {
	Count          int     `json:"count"`
	Spacing        float64 `json:"spacing,omitempty"`
	VerticalOffset float64 `json:"verticalOffset,omitempty"` // from face top; 0 = centered
}

// Drawers configures the drawer stack.
type Drawers struct {
	Enabled       bool      `json:"enabled"`
	Count         int       `json:"count"`
	SlideWidth    float64   `json:"slideWidth"`
	OverlayAmount float64   `json:"overlayAmount"`
	PullHoles     PullHoles `json:"pullHoles"`
}

// ToeKick configures the recessed notch at the base front.
type ToeKick struct {
	Enabled bool    `json:"enabled"`
	Height  float64 `json:"height"`
	Depth   float64 `json:"depth"`
}

// Predrills toggles the pre-drill hole families on the side panels.
type Predrills struct {
	Assembly bool `json:"assembly"`
	Slides   bool `json:"slides"`
}

// BackPanelThickness returns the effective back panel stock thickness,
// preferring the secondary-material override.
func (c *Config) BackPanelThickness() float64 {
	if c.SecondaryMaterial.BackPanelThickness > 0 {
		return c.SecondaryMaterial.BackPanelThickness
	}
	return c.BackPanel.Thickness
}

// FixedShelfThickness returns the fixed-shelf stock thickness, falling back
// to the primary material.
func (c *Config) FixedShelfThickness() float64 {
	if c.SecondaryMaterial.FixedShelfThickness > 0 {
		return c.SecondaryMaterial.FixedShelfThickness
	}
	return c.Material.Thickness
}

// DrawerBottomThickness returns the drawer bottom stock thickness, falling
// back to the default thin stock.
func (c *Config) DrawerBottomThickness() float64 {
	if c.SecondaryMaterial.DrawerBottomThickness > 0 {
		return c.SecondaryMaterial.DrawerBottomThickness
	}
	return DefaultDrawerBottomThickness
}

// ToeKickHeight returns the toe kick height, or 0 when disabled.
func (c *Config) ToeKickHeight() float64 {
	if !c.Features.ToeKick.Enabled {
		return 0
	}
	return c.Features.ToeKick.Height
}
