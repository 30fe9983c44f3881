package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/ghostflap/internal/core"
	"github.com/vovakirdan/ghostflap/internal/level"
	"github.com/vovakirdan/ghostflap/internal/sim"
)

func TestKeyMapperBindings(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      string
		action   core.Action
		wantQuit bool
	}{
		{" ", core.ActionFlap, false},
		{"w", core.ActionFlap, false},
		{"up", core.ActionFlap, false},
		{"enter", core.ActionStart, false},
		{"r", core.ActionStart, false},
		{"p", core.ActionPause, false},
		{"q", core.ActionQuit, true},
		{"x", core.ActionNone, false},
	}

	for _, tt := range tests {
		var msg tea.KeyMsg
		switch tt.key {
		case "up":
			msg = tea.KeyMsg{Type: tea.KeyUp}
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)}
		}

		action, isQuit := km.MapKey(msg)
		if action != tt.action || isQuit != tt.wantQuit {
			t.Errorf("MapKey(%q) = (%v, %v), expected (%v, %v)",
				tt.key, action, isQuit, tt.action, tt.wantQuit)
		}
	}
}

func renderParams() sim.Params {
	p := sim.DefaultParams()
	p.ViewportW = 40
	p.ViewportH = 12
	p.ActorX = 8
	return p
}

func TestDrawRunShowsActorAndHUD(t *testing.T) {
	p := renderParams()
	lvl := level.Level{Obstacles: []level.ObstacleSpec{{GapCenter: 0.5, GapHeight: 0.4}}}
	st := sim.NewRun(p, lvl, nil)

	s := core.NewScreen(40, 12)
	drawRun(s, p, st, 0, false)

	if s.Get(int(st.Actor.X), int(st.Actor.Y)) != actorRune {
		t.Errorf("actor not drawn at (%v, %v)", st.Actor.X, st.Actor.Y)
	}
	if !strings.Contains(s.Row(0), "SCORE 0") {
		t.Errorf("HUD missing from top row: %q", s.Row(0))
	}
}

func TestDrawRunSkipsFinishedGhosts(t *testing.T) {
	p := renderParams()
	lvl := level.Level{Obstacles: []level.ObstacleSpec{{GapCenter: 0.5, GapHeight: 0.4}}}
	st := sim.NewRun(p, lvl, []sim.GhostSeed{{StartY: 3, EndTick: 10}})
	st.Ghosts[0].Finished = true
	st.Actor.Y = 9 // Move the actor off the ghost's row

	s := core.NewScreen(40, 12)
	drawRun(s, p, st, 0, false)

	if s.Get(int(st.Actor.X), 3) == ghostRune {
		t.Error("finished ghost should not be drawn")
	}
}

func TestDrawRunGameOverOverlay(t *testing.T) {
	p := renderParams()
	lvl := level.Level{Obstacles: []level.ObstacleSpec{{GapCenter: 0.5, GapHeight: 0.4}}}
	st := sim.NewRun(p, lvl, nil)
	st.Over = true
	st.Won = true

	s := core.NewScreen(40, 12)
	drawRun(s, p, st, 0, false)

	if !strings.Contains(s.String(), "YOU WIN") {
		t.Error("win overlay not rendered")
	}
}

func TestRenderScreenPlainDimensions(t *testing.T) {
	s := core.NewScreen(10, 3)
	s.DrawText(0, 1, "hello")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderScreen produced %d lines, expected 3", len(lines))
	}
	if !strings.Contains(lines[1], "hello") {
		t.Errorf("row content missing: %q", lines[1])
	}
}
