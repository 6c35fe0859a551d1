package cabinet

import (
	"encoding/json"
	"fmt"

	"github.com/chazu/millwork/pkg/geom"
)

// Purpose records why a feature exists, for cut-list grouping and export
// layer assignment. Advisory; geometry is fully described by the feature.
type Purpose string

const (
	PurposeShelfPin   Purpose = "shelf_pin"
	PurposeAssembly   Purpose = "assembly"
	PurposeSlide      Purpose = "slide"
	PurposePull       Purpose = "pull"
	PurposeRunner     Purpose = "runner"
	PurposeBackDado   Purpose = "back_dado"
	PurposeShelfDado  Purpose = "shelf_dado"
	PurposeBottomDado Purpose = "bottom_dado"
	PurposeToeKick    Purpose = "toe_kick"
)

// FeatureKind is the explicit discriminant of the Feature union.
type FeatureKind string

const (
	KindHole        FeatureKind = "hole"
	KindCountersink FeatureKind = "countersink"
	KindSlot        FeatureKind = "slot"
	KindNotch       FeatureKind = "notch"
)

// Corner names a corner of a component's cutting face.
type Corner string

const (
	CornerBottomLeft  Corner = "bottom_left"
	CornerBottomRight Corner = "bottom_right"
	CornerTopLeft     Corner = "top_left"
	CornerTopRight    Corner = "top_right"
)

// Feature is a subtractive machining operation on a component, expressed in
// the component's local 2D cutting-face coordinates (millimeters). It is a
// closed sum type: the marker method restricts implementations to this
// package so switches over feature kinds are exhaustive.
type Feature interface {
	Kind() FeatureKind
	Layer() Layer
	feature()
}

// Hole is a round bore. Depth 0 means a through-cut.
type Hole struct {
	Diameter float64   `json:"diameter"`
	Depth    float64   `json:"depth"`
	Pos      geom.Vec2 `json:"pos"`
	Purpose  Purpose   `json:"purpose"`
}

func (Hole) Kind() FeatureKind { return KindHole }
func (Hole) feature()          {}

// Layer selects the drill layer closest to the hole diameter. The export
// emitters key tooling on these layers, so unusual diameters snap to the
// nearest standard drill.
func (h Hole) Layer() Layer {
	switch {
	case h.Diameter >= 20:
		return LayerDrill35mm
	case h.Diameter >= 6.5:
		return LayerDrill8mm
	case h.Diameter >= 4:
		return LayerDrill5mm
	default:
		return LayerDrill3mm
	}
}

// Countersink is a pilot hole with a conical recess for a screw head.
// PilotDepth 0 means the pilot is a through-cut.
type Countersink struct {
	PilotDiameter       float64   `json:"pilotDiameter"`
	CountersinkDiameter float64   `json:"countersinkDiameter"`
	PilotDepth          float64   `json:"pilotDepth"`
	CountersinkDepth    float64   `json:"countersinkDepth"`
	Pos                 geom.Vec2 `json:"pos"`
	Purpose             Purpose   `json:"purpose"`
}

func (Countersink) Kind() FeatureKind { return KindCountersink }
func (Countersink) Layer() Layer      { return LayerCountersink }
func (Countersink) feature()          {}

// Slot is a straight groove. Path is the centerline; Width is measured
// across the path. Depth 0 means a through-cut. Dado slots always have
// Width equal to the thickness of the panel seated in them, never the
// carcass thickness.
type Slot struct {
	Width   float64     `json:"width"`
	Depth   float64     `json:"depth"`
	Path    []geom.Vec2 `json:"path"`
	Purpose Purpose     `json:"purpose"`
}

func (Slot) Kind() FeatureKind { return KindSlot }
func (Slot) Layer() Layer      { return LayerPocketDado }
func (Slot) feature()          {}

// Notch is a rectangular cutout anchored at a face corner; Pos is the
// minimum corner of the notch rectangle. Width runs along local X, Height
// along local Y. Notches are always through-cuts.
type Notch struct {
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Pos    geom.Vec2 `json:"pos"`
	Corner Corner    `json:"corner"`
}

func (Notch) Kind() FeatureKind { return KindNotch }
func (Notch) Layer() Layer      { return LayerOutsideCut }
func (Notch) feature()          {}

// FeatureList is a JSON-round-trippable slice of features. Each element is
// encoded with its discriminant inline: {"kind":"hole","diameter":5,...}.
type FeatureList []Feature

// featureEnvelope carries the discriminant during decoding.
type featureEnvelope struct {
	Kind FeatureKind `json:"kind"`
}

// MarshalJSON encodes each feature with its kind field inline.
func (fl FeatureList) MarshalJSON() ([]byte, error) {
	out := make([]json.RawMessage, 0, len(fl))
	for _, f := range fl {
		body, err := json.Marshal(f)
		if err != nil {
			return nil, err
		}
		kind, err := json.Marshal(featureEnvelope{Kind: f.Kind()})
		if err != nil {
			return nil, err
		}
		// Splice {"kind":...} and the feature body into one object.
		merged := append(kind[:len(kind)-1], ',')
		merged = append(merged, body[1:]...)
		out = append(out, merged)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a heterogeneous feature array by discriminant.
func (fl *FeatureList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	list := make(FeatureList, 0, len(raw))
	for i, r := range raw {
		var env featureEnvelope
		if err := json.Unmarshal(r, &env); err != nil {
			return err
		}
		switch env.Kind {
		case KindHole:
			var h Hole
			if err := json.Unmarshal(r, &h); err != nil {
				return err
			}
			list = append(list, h)
		case KindCountersink:
			var c Countersink
			if err := json.Unmarshal(r, &c); err != nil {
				return err
			}
			list = append(list, c)
		case KindSlot:
			var s Slot
			if err := json.Unmarshal(r, &s); err != nil {
				return err
			}
			list = append(list, s)
		case KindNotch:
			var n Notch
			if err := json.Unmarshal(r, &n); err != nil {
				return err
			}
			list = append(list, n)
		default:
			return fmt.Errorf("feature %d: unknown kind %q", i, env.Kind)
		}
	}
	*fl = list
	return nil
}
