package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-minesweeper/internal/core"
	"github.com/vovakirdan/tui-minesweeper/internal/games/sweeper"
)

func newTestSession() SessionModel {
	cfg := core.RuntimeConfig{ScreenW: 100, ScreenH: 40, TickRate: 60, Seed: 1}
	return NewSessionModel(nil, nil, cfg, "tester")
}

func send(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, want SessionModel", next)
	}
	return sm
}

func TestSessionIDsAreUnique(t *testing.T) {
	a := newTestSession()
	b := newTestSession()
	if a.SessionID() == "" {
		t.Fatal("session ID should not be empty")
	}
	if a.SessionID() == b.SessionID() {
		t.Error("two sessions share an ID")
	}
}

func TestSessionMenuListsPresets(t *testing.T) {
	m := newTestSession()
	view := m.View()
	for _, title := range []string{"Easy", "Normal", "Hard"} {
		if !strings.Contains(view, title) {
			t.Errorf("menu view missing %q", title)
		}
	}
}

func TestSessionStartsGame(t *testing.T) {
	m := newTestSession()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.screen != screenGame {
		t.Fatalf("screen = %v, want game", m.screen)
	}
	if m.gameModel == nil {
		t.Fatal("game model should be created")
	}
	if m.gameModel.game.ID() != "normal" {
		t.Errorf("game = %q, want normal", m.gameModel.game.ID())
	}
	if m.quitting {
		t.Error("starting a game should not quit the session")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	m := newTestSession()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.screen != screenScoreboard {
		t.Fatalf("screen = %v, want scoreboard", m.screen)
	}
	if !strings.Contains(m.View(), "No wins recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	if m.quitting {
		t.Error("leaving the scoreboard should not quit the session")
	}
}

func TestSessionQuit(t *testing.T) {
	m := newTestSession()
	m = send(t, m, runeKey("q"))
	if !m.quitting {
		t.Error("q should quit the session")
	}
	if m.View() != "" {
		t.Error("quitting session should render nothing")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := newTestSession()
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})
	if m.config.ScreenW != 120 || m.config.ScreenH != 50 {
		t.Errorf("config size = %dx%d, want 120x50", m.config.ScreenW, m.config.ScreenH)
	}
}

func TestSessionDropsTicksOfPreviousGame(t *testing.T) {
	m := newTestSession()
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	first := m.gameModel.tickGen

	// Leave the game and pick a board again before the old tick arrives
	m = send(t, m, runeKey("p"))
	m = send(t, m, TickMsg{Gen: first})
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.screen != screenMenu {
		t.Fatalf("screen = %v, want menu", m.screen)
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	gen := m.gameModel.tickGen
	if gen == first {
		t.Fatal("new game should run its own tick loop")
	}
	game, ok := m.gameModel.game.(*sweeper.Game)
	if !ok {
		t.Fatalf("game is %T, want *sweeper.Game", m.gameModel.game)
	}

	next, cmd := m.Update(TickMsg{Gen: first})
	m = next.(SessionModel)
	if cmd != nil {
		t.Error("stale tick should not schedule another tick")
	}
	if tick := game.Snapshot().Tick; tick != 0 {
		t.Errorf("stale tick advanced the game to tick %d", tick)
	}

	_, cmd = m.Update(TickMsg{Gen: gen})
	if cmd == nil {
		t.Error("own tick should schedule the next one")
	}
	if tick := game.Snapshot().Tick; tick != 1 {
		t.Errorf("tick = %d, want 1", tick)
	}
}
