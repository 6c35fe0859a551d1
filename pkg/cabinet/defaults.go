package cabinet

// System 32 drilling constants. The European cabinet hardware standard
// fixes pin holes at 5mm diameter on a 32mm pitch, with the front column
// 37mm from the panel edge.
const (
	PinSpacing          = 32.0
	PinDiameter         = 5.0
	PinDepth            = 10.0
	DefaultFrontSetback = 37.0
	DefaultRearSetback  = 37.0

	// PinColumnMargin is the vertical clearance between a pin column's
	// first/last hole and the bottom/top panel faces.
	PinColumnMargin = 32.0
)

// Shelf sizing constants.
const (
	// ShelfWidthClearance narrows loose shelves so they drop in freely.
	ShelfWidthClearance = 1.0
	// ShelfFrontClearance recesses shelves behind the carcass front edge.
	ShelfFrontClearance = 5.0
	// RunnerStripHeight is the section height of a wooden runner strip.
	RunnerStripHeight = 30.0
)

// Drawer box constants. Slide hardware dictates the vertical clearance and
// the minimum workable box dimensions.
const (
	DrawerFrontGap               = 3.0
	DrawerRearClearance          = 25.0
	DrawerBoxVerticalClearance   = 20.0
	DrawerBottomInset            = 10.0
	DrawerDadoDepth              = 6.0
	DefaultDrawerBottomThickness = 6.0
	PullHoleDiameter             = 5.0
	MinDrawerBoxWidth            = 100.0
	MinDrawerBoxHeight           = 60.0
)

// Pre-drill constants for carcass assembly screws and slide hardware.
const (
	ScrewSpacing          = 160.0 // maximum interval between pre-drill holes
	PredrillEdgeOffset    = 20.0  // first/last hole inset from the edge
	PredrillPilotDiameter = 3.0
	CountersinkDiameter   = 8.0
	CountersinkDepth      = 4.0
	SlideHoleDiameter     = 5.0
	SlideHoleDepth        = 13.0
)

// Validation limits.
const (
	MinGlobalDimension   = 100.0
	MaxMaterialThickness = 50.0
)

// DefaultConfig returns a 600x720x560 base cabinet in 18mm stock with a
// toe kick, an inset 6mm back, and three adjustable shelves. This is the
// configuration the UI seeds new designs with.
func DefaultConfig() Config {
	return Config{
		GlobalBounds: Bounds{W: 600, H: 720, D: 560},
		Material:     Material{Thickness: 18, Kerf: 3},
		SecondaryMaterial: SecondaryMaterial{
			BackPanelThickness:    6,
			DrawerBottomThickness: 6,
		},
		Machining: Machining{BitDiameter: 6.35, Compensation: CompensationOutside},
		BackPanel: BackPanel{
			Type:          BackPanelInset,
			Thickness:     6,
			DadoDepth:     6,
			InsetDistance: 10,
		},
		Features: Features{
			Shelves: Shelves{
				Adjustable: AdjustableShelves{
					Enabled:      true,
					Count:        3,
					FrontSetback: DefaultFrontSetback,
					RearSetback:  DefaultRearSetback,
				},
			},
			ToeKick: ToeKick{Enabled: true, Height: 100, Depth: 70},
		},
		Predrills: Predrills{Assembly: true, Slides: true},
	}
}
