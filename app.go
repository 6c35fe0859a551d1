package main

import (
	"context"
	"log"
	"time"

	"github.com/chazu/millwork/pkg/cabinet"
	"github.com/chazu/millwork/pkg/dogbone"
	"github.com/chazu/millwork/pkg/engine"
	"github.com/chazu/millwork/pkg/preview"
)

const appVersion = "0.1.0"

// colorPalette is a default palette used to assign distinct colors to parts.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App is the Wails backend. It exposes methods to the frontend via bindings.
type App struct {
	ctx    context.Context
	engine *engine.Engine
	now    func() time.Time
}

// MeshData is the JSON-serializable mesh format sent to the frontend.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	PartName string    `json:"partName"`
	Color    string    `json:"color"`
}

// PartData is one cut-list entry for the frontend.
type PartData struct {
	ID         string           `json:"id"`
	Label      string           `json:"label"`
	Role       string           `json:"role"`
	Dimensions [3]float64       `json:"dimensions"`
	Thickness  float64          `json:"thickness"`
	Features   int              `json:"features"`
	Reliefs    []dogbone.Relief `json:"reliefs"`
}

// EvalErrorData is a JSON-serializable eval error for the frontend.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// EvalResult is the full result returned to the frontend.
type EvalResult struct {
	Meshes   []MeshData      `json:"meshes"`
	Parts    []PartData      `json:"parts"`
	Errors   []EvalErrorData `json:"errors"`
	Warnings []EvalErrorData `json:"warnings"`
}

// NewApp creates a new App with an evaluation engine.
func NewApp() *App {
	return &App{
		engine: engine.NewEngine(),
		now:    time.Now,
	}
}

// startup is called by Wails on app startup. The context is saved
// so we can call Wails runtime methods later if needed.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// Evaluate takes Lisp source and returns meshes, the cut list, and any
// errors or warnings. This is the primary binding called by the frontend
// editor.
func (a *App) Evaluate(source string) EvalResult {
	result := EvalResult{
		Meshes:   []MeshData{},
		Parts:    []PartData{},
		Errors:   []EvalErrorData{},
		Warnings: []EvalErrorData{},
	}

	cfg, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}
	if cfg == nil {
		// Source with no cabinet form; nothing to show.
		return result
	}

	// Surface warnings before building. Build only fails on errors, but
	// the editor should show advisories too.
	validation := cabinet.Validate(cfg)
	for _, w := range validation.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: w})
	}
	if !validation.Valid() {
		for _, e := range validation.Errors {
			result.Errors = append(result.Errors, EvalErrorData{Message: e})
		}
		return result
	}

	asm, err := cabinet.Build(*cfg, cabinet.Stamp{At: a.now(), Version: appVersion})
	if err != nil {
		log.Printf("Build error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}

	meshes, err := preview.Meshes(asm)
	if err != nil {
		log.Printf("Preview error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "preview failed: " + err.Error(),
		})
		return result
	}

	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			PartName: m.Label,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}

	bit := cfg.Machining.BitDiameter
	for i := range asm.Components {
		c := &asm.Components[i]
		result.Parts = append(result.Parts, PartData{
			ID:         c.ID,
			Label:      c.Label,
			Role:       string(c.Role),
			Dimensions: c.Dimensions,
			Thickness:  c.MaterialThickness,
			Features:   len(c.Features),
			Reliefs:    partReliefs(c, bit),
		})
	}

	return result
}

// partReliefs collects dogbone corner reliefs for the component's notch
// cutouts. Only reliefs whose centers land on the cutting face are kept;
// a corner notch shares edges with the panel outline, and reliefs there
// would cut into air.
func partReliefs(c *cabinet.Component, bitDiameter float64) []dogbone.Relief {
	faceW, faceH := c.FaceSize()
	var reliefs []dogbone.Relief

	for _, f := range c.Features {
		n, ok := f.(cabinet.Notch)
		if !ok {
			continue
		}

		open := dogbone.SideBottom
		switch n.Corner {
		case cabinet.CornerTopLeft, cabinet.CornerTopRight:
			open = dogbone.SideTop
		}

		for _, r := range dogbone.Notch(n.Pos, n.Width, n.Height, open, bitDiameter) {
			if r.Center.X <= 0 || r.Center.X >= faceW ||
				r.Center.Y <= 0 || r.Center.Y >= faceH {
				continue
			}
			reliefs = append(reliefs, r)
		}
	}
	return reliefs
}
