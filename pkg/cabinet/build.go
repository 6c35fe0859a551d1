package cabinet

import (
	"strings"
	"time"
)

// Metadata stamps a build. GeneratedAt and Version come from the caller so
// the pipeline itself stays deterministic.
type Metadata struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Version     string    `json:"version"`
}

// Stamp is the clock/version capability injected by the orchestrator's
// caller. Two builds of the same configuration differ only in this value.
type Stamp struct {
	At      time.Time
	Version string
}

// Assembly is the finished output: every component freshly constructed,
// never aliasing the input. Component order is deterministic: carcass
// panels, then back panel, toe-kick board, shelves, drawers. Within a group
// the order follows generation order; consumers may rely on the group
// sequence but not on anything finer.
type Assembly struct {
	Config         Config      `json:"config"`
	Components     []Component `json:"components"`
	InteriorBounds Bounds      `json:"interiorBounds"`
	Metadata       Metadata    `json:"metadata"`
}

// BuildError is the fatal error raised when Build is invoked on a
// configuration that fails validation. Its message is the newline-joined
// validation error list, so nothing is lost between the two reporting
// paths.
type BuildError struct {
	ValidationErrors []string
}

func (e *BuildError) Error() string {
	return strings.Join(e.ValidationErrors, "\n")
}

// injection targets features at a carcass panel. Generators other than the
// carcass generator express their side-panel (and top/bottom) machining
// through these; the orchestrator appends them, never overwrites.
type injection struct {
	target   Role
	features []Feature
}

// Build runs the full pipeline: validation, carcass, back panel, shelves,
// drawers, feature injection, assembly. It is synchronous, side-effect
// free and allocates all output fresh, so callers may cache the result
// keyed by the configuration without aliasing hazards.
//
// An invalid configuration fails fast with a *BuildError aggregating every
// validation error; no partial Assembly is ever returned.
func Build(cfg Config, stamp Stamp) (*Assembly, error) {
	if res := Validate(&cfg); !res.Valid() {
		return nil, &BuildError{ValidationErrors: res.Errors}
	}

	// The shared derived geometry is computed exactly once; every
	// generator reads the same value.
	d := derive(&cfg)

	car := generateCarcass(&cfg, d)
	backComps, backInj := generateBackPanel(&cfg, d)
	shelfComps, shelfInj := generateShelves(&cfg, d)
	drawerComps := generateDrawers(&cfg, d)

	panels := map[Role]*Component{
		RoleSidePanelLeft:  &car.left,
		RoleSidePanelRight: &car.right,
		RoleTopPanel:       &car.top,
		RoleBottomPanel:    &car.bottom,
	}
	for _, inj := range backInj {
		panels[inj.target].AddFeatures(inj.features...)
	}
	for _, inj := range shelfInj {
		panels[inj.target].AddFeatures(inj.features...)
	}

	components := make([]Component, 0,
		5+len(backComps)+len(shelfComps)+len(drawerComps))
	components = append(components, car.left, car.right, car.top, car.bottom)
	components = append(components, backComps...)
	if car.toeKick != nil {
		components = append(components, *car.toeKick)
	}
	components = append(components, shelfComps...)
	components = append(components, drawerComps...)

	return &Assembly{
		Config:         cfg,
		Components:     components,
		InteriorBounds: d.Interior,
		Metadata:       Metadata{GeneratedAt: stamp.At, Version: stamp.Version},
	}, nil
}
