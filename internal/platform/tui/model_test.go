package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyfall/internal/config"
	"github.com/vovakirdan/skyfall/internal/core"
	"github.com/vovakirdan/skyfall/internal/game"
	"github.com/vovakirdan/skyfall/internal/highscore"
	"github.com/vovakirdan/skyfall/internal/storage"
)

type recordingRuns struct {
	runs []storage.Run
}

func (r *recordingRuns) SaveRun(run storage.Run) (string, error) {
	r.runs = append(r.runs, run)
	return "id", nil
}

// doomedConfig ends every game on the first tick: the player spans the
// whole playfield and the first item is bad and falls onto it at once.
func doomedConfig() config.SkyfallConfig {
	cfg := config.DefaultSkyfallConfig()
	cfg.Lives = 1
	cfg.Player.X = 0
	cfg.Player.Width = cfg.Playfield.Width
	cfg.Difficulty.SpawnBase = 1
	cfg.Difficulty.SpawnCap = 1
	cfg.Difficulty.BadBase = 1
	cfg.Difficulty.BadCap = 1
	cfg.Difficulty.SpeedBase = 600
	return cfg
}

func newTestModel(t *testing.T, cfg config.SkyfallConfig) (Model, *highscore.Store, *recordingRuns) {
	t.Helper()
	logger := log.New(io.Discard)
	scores := highscore.New(highscore.NewMemoryPersister(), logger)
	scores.Load()
	runs := &recordingRuns{}

	m := NewModel(Options{
		Game:    cfg,
		Runtime: core.RuntimeConfig{ScreenW: 82, ScreenH: 24, TickRate: 60, Seed: 1},
		Scores:  scores,
		Runs:    runs,
		Logger:  logger,
	})
	return m, scores, runs
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update returned %T, want Model", next)
		}
	}
	return m
}

func TestModelCharacterSelect(t *testing.T) {
	m, _, _ := newTestModel(t, config.DefaultSkyfallConfig())

	if m.Phase() != game.PhaseIdle {
		t.Fatalf("new model phase = %v, want idle", m.Phase())
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown}, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("cursor should wrap to 0, got %d", m.cursor)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 2 {
		t.Errorf("cursor should wrap to 2, got %d", m.cursor)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)
	if m.Phase() != game.PhaseRunning {
		t.Fatalf("phase after enter = %v, want running", m.Phase())
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}
	if m.session.Player().Sprite != game.SpriteGhost {
		t.Errorf("sprite = %v, want ghost", m.session.Player().Sprite)
	}
	if !strings.Contains(m.View(), "SCORE 0") {
		t.Error("playing view should show the HUD")
	}
}

func TestModelMovesPlayer(t *testing.T) {
	m, _, _ := newTestModel(t, config.DefaultSkyfallConfig())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	x := m.session.Player().X
	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if got := m.session.Player().X; got != x+10 {
		t.Errorf("X after right = %v, want %v", got, x+10)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft}, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.session.Player().X; got != x-10 {
		t.Errorf("X after two lefts = %v, want %v", got, x-10)
	}

	m = send(t, m, runeKey("p"))
	if !m.session.Paused() {
		t.Error("p should pause")
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view should say PAUSED")
	}
}

func TestModelGameOverFlow(t *testing.T) {
	m, scores, runs := newTestModel(t, doomedConfig())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if m.Phase() != game.PhaseAwaitingInitials {
		t.Fatalf("phase after fatal tick = %v, want awaiting-initials", m.Phase())
	}
	if !m.input.Focused() {
		t.Error("initials input should be focused")
	}

	// q is typeable here, not a quit key
	m = send(t, m, runeKey("q"), runeKey("x"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Phase() != game.PhaseAwaitingInitials {
		t.Fatal("two initials should be rejected")
	}
	if m.notice == "" {
		t.Error("rejected initials should show a notice")
	}
	if m.input.Value() != "" {
		t.Errorf("input should be cleared, got %q", m.input.Value())
	}

	m = send(t, m, runeKey("Q"), runeKey("X"), runeKey("Z"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.Phase() != game.PhaseGameOver {
		t.Fatalf("phase after valid initials = %v, want game-over", m.Phase())
	}

	entries := scores.Entries()
	if len(entries) != 1 || entries[0].Initials != "QXZ" {
		t.Errorf("high scores = %v, want one QXZ entry", entries)
	}
	if len(runs.runs) != 1 || runs.runs[0].Initials != "QXZ" || runs.runs[0].Sprite != "robot" {
		t.Errorf("runs = %+v, want one robot run by QXZ", runs.runs)
	}
	if !strings.Contains(m.View(), "QXZ") {
		t.Error("results view should list the new entry")
	}

	m = send(t, m, runeKey("r"))
	if m.Phase() != game.PhaseIdle {
		t.Errorf("phase after restart = %v, want idle", m.Phase())
	}
}

func TestModelInitialsViewAnnouncesHighScore(t *testing.T) {
	m, _, _ := newTestModel(t, doomedConfig())
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if !strings.Contains(m.View(), "New high score!") {
		t.Error("a score that makes the table should be announced")
	}

	m, scores, _ := newTestModel(t, doomedConfig())
	for range highscore.MaxEntries {
		if err := scores.Record(highscore.Entry{Initials: "AAA", Score: 10}); err != nil {
			t.Fatalf("Record() failed: %v", err)
		}
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter}, TickMsg{})
	if m.Phase() != game.PhaseAwaitingInitials {
		t.Fatalf("phase = %v, want awaiting-initials", m.Phase())
	}
	if strings.Contains(m.View(), "New high score!") {
		t.Error("a score below a full table should not be announced")
	}
}

func TestModelTickOutsideRunning(t *testing.T) {
	m, _, _ := newTestModel(t, config.DefaultSkyfallConfig())

	next, cmd := m.Update(TickMsg{})
	if cmd != nil {
		t.Error("idle model should not keep ticking")
	}
	if next.(Model).ticking {
		t.Error("ticking flag should be cleared")
	}
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t, config.DefaultSkyfallConfig())

	next, cmd := m.Update(runeKey("q"))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelResize(t *testing.T) {
	m, _, _ := newTestModel(t, config.DefaultSkyfallConfig())
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if m.screen.Width() != 100 || m.screen.Height() != 29 {
		t.Errorf("screen = %dx%d, want 100x29", m.screen.Width(), m.screen.Height())
	}
}
