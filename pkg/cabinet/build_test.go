package cabinet

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"
)

func testStamp() Stamp {
	return Stamp{
		At:      time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC),
		Version: "test",
	}
}

// findByRole returns the components with the given role, in assembly order.
func findByRole(asm *Assembly, role Role) []Component {
	var out []Component
	for _, c := range asm.Components {
		if c.Role == role {
			out = append(out, c)
		}
	}
	return out
}

func TestBuild_DefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	asm, err := Build(cfg, testStamp())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	// 4 carcass panels, back, toe kick, 3 adjustable shelves.
	if len(asm.Components) != 9 {
		t.Fatalf("got %d components, want 9", len(asm.Components))
	}
	if asm.InteriorBounds != (Bounds{W: 564, H: 584, D: 560}) {
		t.Errorf("interior bounds %v, want {564 584 560}", asm.InteriorBounds)
	}
	if !asm.Metadata.GeneratedAt.Equal(testStamp().At) {
		t.Errorf("generated at %v, want the injected stamp", asm.Metadata.GeneratedAt)
	}
	if asm.Metadata.Version != "test" {
		t.Errorf("version %q, want the injected stamp", asm.Metadata.Version)
	}
}

func TestBuild_ComponentOrder(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Drawers = Drawers{Enabled: true, Count: 1, SlideWidth: 12.7}

	asm, err := Build(cfg, testStamp())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	wantPrefix := []Role{
		RoleSidePanelLeft,
		RoleSidePanelRight,
		RoleTopPanel,
		RoleBottomPanel,
		RoleBackPanel,
		RoleToeKickPanel,
	}
	for i, role := range wantPrefix {
		if asm.Components[i].Role != role {
			t.Errorf("component %d role %s, want %s", i, asm.Components[i].Role, role)
		}
	}
	// Shelves precede drawers.
	lastShelf, firstDrawer := -1, -1
	for i, c := range asm.Components {
		switch c.Role {
		case RoleAdjustableShelf:
			lastShelf = i
		case RoleDrawerFront, RoleDrawerSide, RoleDrawerBack, RoleDrawerBottom:
			if firstDrawer < 0 {
				firstDrawer = i
			}
		}
	}
	if lastShelf >= 0 && firstDrawer >= 0 && lastShelf > firstDrawer {
		t.Error("shelf components must precede drawer components")
	}
}

func TestBuild_Deterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Features.Drawers = Drawers{Enabled: true, Count: 2, SlideWidth: 12.7}
	cfg.Features.Shelves.Runners = Runners{Enabled: true, Heights: []float64{200}, HoleCount: 2}

	a, err := Build(cfg, testStamp())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	b, err := Build(cfg, testStamp())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("two builds of the same configuration differ")
	}
}

func TestBuild_InvalidConfigFails(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Material.Thickness = 0
	cfg.BackPanel.Type = "floating"

	asm, err := Build(cfg, testStamp())
	if asm != nil {
		t.Error("got a partial assembly from an invalid configuration")
	}

	var be *BuildError
	if !errors.As(err, &be) {
		t.Fatalf("got %T, want *BuildError", err)
	}
	if len(be.ValidationErrors) < 2 {
		t.Errorf("got %d validation errors, want every finding", len(be.ValidationErrors))
	}
	// The message carries the full newline-joined list.
	if got := strings.Count(err.Error(), "\n"); got != len(be.ValidationErrors)-1 {
		t.Errorf("message has %d newlines for %d errors", got, len(be.ValidationErrors))
	}
}

func TestBuild_InjectionsLandOnPanels(t *testing.T) {
	cfg := DefaultConfig()
	asm, err := Build(cfg, testStamp())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}

	left := findByRole(asm, RoleSidePanelLeft)[0]

	var pins, dados, notches int
	for _, f := range left.Features {
		switch f.Kind() {
		case KindHole:
			if f.(Hole).Purpose == PurposeShelfPin {
				pins++
			}
		case KindSlot:
			dados++
		case KindNotch:
			notches++
		}
	}
	if pins == 0 {
		t.Error("shelf-pin holes were not injected into the side panel")
	}
	if dados != 1 {
		t.Errorf("got %d back dados on the side panel, want 1", dados)
	}
	if notches != 1 {
		t.Errorf("got %d toe-kick notches on the side panel, want 1", notches)
	}

	// Top and bottom carry the horizontal back dado.
	for _, role := range []Role{RoleTopPanel, RoleBottomPanel} {
		p := findByRole(asm, role)[0]
		if len(featuresOfKind(p, KindSlot)) != 1 {
			t.Errorf("%s missing its back panel dado", role)
		}
	}
}

func TestBuild_DoesNotMutateInput(t *testing.T) {
	cfg := DefaultConfig()
	before := cfg

	if _, err := Build(cfg, testStamp()); err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if !reflect.DeepEqual(cfg, before) {
		t.Error("build mutated the input configuration")
	}
}

func TestBuild_NoBackNoToeKick(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BackPanel.Type = BackPanelNone
	cfg.Features.ToeKick.Enabled = false
	cfg.Features.Shelves.Adjustable.Enabled = false

	asm, err := Build(cfg, testStamp())
	if err != nil {
		t.Fatalf("unexpected build error: %v", err)
	}
	if len(asm.Components) != 4 {
		t.Errorf("got %d components, want the bare carcass", len(asm.Components))
	}
	if len(findByRole(asm, RoleBackPanel)) != 0 {
		t.Error("back panel generated for type none")
	}
	if len(findByRole(asm, RoleToeKickPanel)) != 0 {
		t.Error("toe kick board generated while disabled")
	}
}
