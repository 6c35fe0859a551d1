package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/millwork/pkg/cabinet"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms Millwork Lisp source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: toe-kick -> toe_kick
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				// Keyword names use underscores internally, so kebab
				// keywords normalize here too.
				kwName := strings.ReplaceAll(string(b[i+1:j]), "-", "_")
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus
		// operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpSection wraps one configuration section produced by a section builtin
// (material, back-panel, toe-kick, ...) so the cabinet builtin can apply it.
type sexpSection struct {
	name  string
	apply func(*cabinet.Config)
}

func (s *sexpSection) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(%s ...)", s.name)
}
func (s *sexpSection) Type() *zygo.RegisteredType { return nil }

// sexpConfig wraps the finished cabinet configuration returned by the
// cabinet builtin.
type sexpConfig struct {
	cfg *cabinet.Config
}

func (c *sexpConfig) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(cabinet %.0fx%.0fx%.0f)",
		c.cfg.GlobalBounds.W, c.cfg.GlobalBounds.H, c.cfg.GlobalBounds.D)
}
func (c *sexpConfig) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// float sets *dst from the keyword kw when present.
func (a kwArgs) float(kw, builtin string, dst *float64) error {
	v, ok := a.kw[kw]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", builtin, kw, err)
	}
	*dst = f
	return nil
}

// integer sets *dst from the keyword kw when present.
func (a kwArgs) integer(kw, builtin string, dst *int) error {
	v, ok := a.kw[kw]
	if !ok {
		return nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", builtin, kw, err)
	}
	*dst = int(f)
	return nil
}

// boolean sets *dst from the keyword kw when present.
func (a kwArgs) boolean(kw, builtin string, dst *bool) error {
	v, ok := a.kw[kw]
	if !ok {
		return nil
	}
	b, err := toBool(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", builtin, kw, err)
	}
	*dst = b
	return nil
}

// floats sets *dst from a list-valued keyword when present.
func (a kwArgs) floats(kw, builtin string, dst *[]float64) error {
	v, ok := a.kw[kw]
	if !ok {
		return nil
	}
	items, err := sexpListToSlice(v)
	if err != nil {
		return fmt.Errorf("%s: %s: %w", builtin, kw, err)
	}
	out := make([]float64, 0, len(items))
	for i, item := range items {
		f, err := toFloat64(item)
		if err != nil {
			return fmt.Errorf("%s: %s[%d]: %w", builtin, kw, i, err)
		}
		out = append(out, f)
	}
	*dst = out
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toBool extracts a bool from a Sexp.
func toBool(s zygo.Sexp) (bool, error) {
	if b, ok := s.(*zygo.SexpBool); ok {
		return b.Val, nil
	}
	return false, fmt.Errorf("expected true or false, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_inset) and plain strings ("inset").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// sexpListToSlice converts a SexpPair (Lisp list) or SexpArray to a Go slice.
func sexpListToSlice(s zygo.Sexp) ([]zygo.Sexp, error) {
	switch v := s.(type) {
	case *zygo.SexpPair:
		return zygo.ListToArray(v)
	case *zygo.SexpArray:
		return v.Val, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected list or array, got %T", s)
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// baseConfig is the configuration a (cabinet ...) form starts from before
// its sections are applied: sensible stock and tooling, every optional
// feature off.
func baseConfig(w, h, d float64) cabinet.Config {
	return cabinet.Config{
		GlobalBounds: cabinet.Bounds{W: w, H: h, D: d},
		Material:     cabinet.Material{Thickness: 18, Kerf: 3},
		Machining: cabinet.Machining{
			BitDiameter:  6.35,
			Compensation: cabinet.CompensationOutside,
		},
		BackPanel: cabinet.BackPanel{Type: cabinet.BackPanelNone},
	}
}

// registerBuiltins installs all Millwork DSL builtins into a zygomys
// environment. The cabinet builtin assembles its section arguments into a
// cabinet.Config and stores it in *out; the last (cabinet ...) form wins.
//
// Source code must be preprocessed with preprocessSource() before evaluation
// so that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, out **cabinet.Config) {

	// -----------------------------------------------------------------------
	// (material :thickness 18 :kerf 3)
	// -----------------------------------------------------------------------
	env.AddFunction("material", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		m := cabinet.Material{}
		if err := pa.float("thickness", "material", &m.Thickness); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("kerf", "material", &m.Kerf); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpSection{name: "material", apply: func(c *cabinet.Config) {
			if m.Thickness > 0 {
				c.Material.Thickness = m.Thickness
			}
			if m.Kerf > 0 {
				c.Material.Kerf = m.Kerf
			}
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (machining :bit-diameter 6.35 :compensation :outside)
	// -----------------------------------------------------------------------
	env.AddFunction("machining", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		m := cabinet.Machining{}
		if err := pa.float("bit_diameter", "machining", &m.BitDiameter); err != nil {
			return zygo.SexpNull, err
		}
		if v, ok := pa.kw["compensation"]; ok {
			s, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("machining: compensation: %w", err)
			}
			switch s {
			case "none", "outside", "inside":
				m.Compensation = cabinet.Compensation(s)
			default:
				return zygo.SexpNull, fmt.Errorf(
					"machining: invalid compensation %q, expected none, outside, or inside", s)
			}
		}

		return &sexpSection{name: "machining", apply: func(c *cabinet.Config) {
			if m.BitDiameter > 0 {
				c.Machining.BitDiameter = m.BitDiameter
			}
			if m.Compensation != "" {
				c.Machining.Compensation = m.Compensation
			}
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (back-panel :style :inset :thickness 6 :dado-depth 6 :inset 10)
	//
	// Note: registered as "back_panel" because zygomys does not support
	// hyphens in identifiers. The preprocessor converts back-panel to
	// back_panel in the source.
	// -----------------------------------------------------------------------
	env.AddFunction("back_panel", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		bp := cabinet.BackPanel{Type: cabinet.BackPanelApplied}

		if v, ok := pa.kw["style"]; ok {
			s, err := toKeywordString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("back-panel: style: %w", err)
			}
			switch s {
			case "applied", "inset", "none":
				bp.Type = cabinet.BackPanelStyle(s)
			default:
				return zygo.SexpNull, fmt.Errorf(
					"back-panel: invalid style %q, expected applied, inset, or none", s)
			}
		}
		if err := pa.float("thickness", "back-panel", &bp.Thickness); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("dado_depth", "back-panel", &bp.DadoDepth); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("inset", "back-panel", &bp.InsetDistance); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpSection{name: "back-panel", apply: func(c *cabinet.Config) {
			c.BackPanel = bp
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (toe-kick :height 100 :depth 70)
	// -----------------------------------------------------------------------
	env.AddFunction("toe_kick", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		tk := cabinet.ToeKick{Enabled: true}
		if err := pa.float("height", "toe-kick", &tk.Height); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("depth", "toe-kick", &tk.Depth); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpSection{name: "toe-kick", apply: func(c *cabinet.Config) {
			c.Features.ToeKick = tk
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (adjustable-shelves :count 3 :front-setback 37 :rear-setback 37)
	// -----------------------------------------------------------------------
	env.AddFunction("adjustable_shelves", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		adj := cabinet.AdjustableShelves{Enabled: true}
		if err := pa.integer("count", "adjustable-shelves", &adj.Count); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("front_setback", "adjustable-shelves", &adj.FrontSetback); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("rear_setback", "adjustable-shelves", &adj.RearSetback); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpSection{name: "adjustable-shelves", apply: func(c *cabinet.Config) {
			c.Features.Shelves.Adjustable = adj
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (fixed-shelves :heights (list 200 450) :dado-depth 6 :thickness 12)
	// -----------------------------------------------------------------------
	env.AddFunction("fixed_shelves", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		fixed := cabinet.FixedShelves{Enabled: true}
		if err := pa.floats("heights", "fixed-shelves", &fixed.Heights); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("dado_depth", "fixed-shelves", &fixed.DadoDepth); err != nil {
			return zygo.SexpNull, err
		}
		var st float64
		if err := pa.float("thickness", "fixed-shelves", &st); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpSection{name: "fixed-shelves", apply: func(c *cabinet.Config) {
			c.Features.Shelves.Fixed = fixed
			if st > 0 {
				c.SecondaryMaterial.FixedShelfThickness = st
			}
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (runners :heights (list 300) :holes 3 :front-setback 37 :rear-setback 37)
	// -----------------------------------------------------------------------
	env.AddFunction("runners", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		run := cabinet.Runners{Enabled: true}
		if err := pa.floats("heights", "runners", &run.Heights); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.integer("holes", "runners", &run.HoleCount); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("front_setback", "runners", &run.FrontSetback); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("rear_setback", "runners", &run.RearSetback); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpSection{name: "runners", apply: func(c *cabinet.Config) {
			c.Features.Shelves.Runners = run
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (drawers :count 2 :slide-width 12.7 :overlay 8
	//          :pulls 2 :pull-spacing 128 :pull-offset 40
	//          :bottom-thickness 6)
	// -----------------------------------------------------------------------
	env.AddFunction("drawers", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		dw := cabinet.Drawers{Enabled: true}
		if err := pa.integer("count", "drawers", &dw.Count); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("slide_width", "drawers", &dw.SlideWidth); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("overlay", "drawers", &dw.OverlayAmount); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.integer("pulls", "drawers", &dw.PullHoles.Count); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("pull_spacing", "drawers", &dw.PullHoles.Spacing); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("pull_offset", "drawers", &dw.PullHoles.VerticalOffset); err != nil {
			return zygo.SexpNull, err
		}
		var bt float64
		if err := pa.float("bottom_thickness", "drawers", &bt); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpSection{name: "drawers", apply: func(c *cabinet.Config) {
			c.Features.Drawers = dw
			if bt > 0 {
				c.SecondaryMaterial.DrawerBottomThickness = bt
			}
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (predrills :assembly true :slides true)
	// -----------------------------------------------------------------------
	env.AddFunction("predrills", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		pd := cabinet.Predrills{}
		if err := pa.boolean("assembly", "predrills", &pd.Assembly); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.boolean("slides", "predrills", &pd.Slides); err != nil {
			return zygo.SexpNull, err
		}

		return &sexpSection{name: "predrills", apply: func(c *cabinet.Config) {
			c.Predrills = pd
		}}, nil
	})

	// -----------------------------------------------------------------------
	// (cabinet :width 600 :height 720 :depth 560
	//   (material ...) (back-panel ...) (toe-kick ...) ...)
	// -----------------------------------------------------------------------
	env.AddFunction("cabinet", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)

		var w, h, d float64
		if err := pa.float("width", "cabinet", &w); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("height", "cabinet", &h); err != nil {
			return zygo.SexpNull, err
		}
		if err := pa.float("depth", "cabinet", &d); err != nil {
			return zygo.SexpNull, err
		}

		cfg := baseConfig(w, h, d)
		for i, arg := range pa.positional {
			section, ok := arg.(*sexpSection)
			if !ok {
				return zygo.SexpNull, fmt.Errorf(
					"cabinet: argument %d: expected a section expression, got %T (%s)",
					i, arg, arg.SexpString(nil))
			}
			section.apply(&cfg)
		}

		*out = &cfg
		return &sexpConfig{cfg: &cfg}, nil
	})
}
