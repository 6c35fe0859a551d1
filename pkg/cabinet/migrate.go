package cabinet

import (
	"bytes"
	"encoding/json"
)

// Historical configurations stored shelf settings as one flat object:
//
//	{"mode":"adjustable","count":3,"positions":[200,400],"frontSetback":37}
//
// The canonical schema nests {adjustable, fixed, runners}. The migration
// lives entirely here, applied once while decoding; the generators only
// ever see the canonical shape.

// legacyShelves is the flat pre-canonical shelf configuration.
type legacyShelves struct {
	Mode         string    `json:"mode"` // "adjustable", "fixed", "runners", "none"
	Count        int       `json:"count"`
	Positions    []float64 `json:"positions"`
	DadoDepth    float64   `json:"dadoDepth"`
	HoleCount    int       `json:"holeCount"`
	FrontSetback float64   `json:"frontSetback"`
	RearSetback  float64   `json:"rearSetback"`
}

// migrate maps the flat shape onto the canonical one.
func (l legacyShelves) migrate() Shelves {
	var s Shelves
	switch l.Mode {
	case "adjustable":
		s.Adjustable = AdjustableShelves{
			Enabled:      true,
			Count:        l.Count,
			FrontSetback: l.FrontSetback,
			RearSetback:  l.RearSetback,
		}
	case "fixed":
		s.Fixed = FixedShelves{
			Enabled:   true,
			Heights:   l.Positions,
			DadoDepth: l.DadoDepth,
		}
	case "runners":
		s.Runners = Runners{
			Enabled:      true,
			Heights:      l.Positions,
			HoleCount:    l.HoleCount,
			FrontSetback: l.FrontSetback,
			RearSetback:  l.RearSetback,
		}
	}
	return s
}

// shelvesAlias avoids UnmarshalJSON recursion for the canonical shape.
type shelvesAlias Shelves

// UnmarshalJSON accepts both the canonical nested shape and the legacy flat
// shape. Presence of a "mode" key identifies the legacy form.
func (s *Shelves) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	if _, isLegacy := probe["mode"]; isLegacy {
		var l legacyShelves
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&l); err != nil {
			return err
		}
		*s = l.migrate()
		return nil
	}

	var a shelvesAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*s = Shelves(a)
	return nil
}
