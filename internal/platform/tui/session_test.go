package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/merge-arcade/internal/core"
	"github.com/vovakirdan/merge-arcade/internal/registry"
	"github.com/vovakirdan/merge-arcade/internal/storage"
)

func init() {
	registry.Register("stub", func() registry.Game { return &stubGame{} })
}

func newTestSession(t *testing.T) (SessionModel, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
	return NewSessionModel(store, cfg, nil), store
}

func sessionUpdate(t *testing.T, s SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := s.Update(msg)
	ns, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update() returned %T", next)
	}
	return ns
}

func TestSessionMenuGameMenu(t *testing.T) {
	s, _ := newTestSession(t)

	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEnter})
	if s.view != viewGame {
		t.Fatalf("Expected game view after select, got %d", s.view)
	}

	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.view != viewMenu {
		t.Errorf("Expected menu view after back, got %d", s.view)
	}
	if s.menu.Selected() != nil {
		t.Error("Returning to the menu should start a fresh picker")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	s, store := newTestSession(t)
	if _, err := store.SaveRun("stub", core.RunSummary{Score: 42, Rounds: 3, Merges: 1, BestTier: "strawberry"}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyTab})
	if s.view != viewScores {
		t.Fatalf("Expected scoreboard view, got %d", s.view)
	}
	view := s.View()
	if !strings.Contains(view, "BEST RUNS") || !strings.Contains(view, "42") {
		t.Errorf("Scoreboard should list the saved run:\n%s", view)
	}

	s = sessionUpdate(t, s, tea.KeyMsg{Type: tea.KeyEsc})
	if s.view != viewMenu {
		t.Errorf("Expected menu view after leaving scoreboard, got %d", s.view)
	}
	if !strings.Contains(s.View(), "best 42 in 1 runs") {
		t.Errorf("Menu should show the stored record:\n%s", s.View())
	}
}

func TestSessionQuitFromMenu(t *testing.T) {
	s, _ := newTestSession(t)

	next, cmd := s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	s = next.(SessionModel)
	if !s.quitting || cmd == nil {
		t.Error("q in the menu should quit the session")
	}
	if s.View() != "" {
		t.Error("View should be empty after quitting")
	}
}
