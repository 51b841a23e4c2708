package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

func TestDifficultyModelSelect(t *testing.T) {
	m := NewDifficultyModel(80, 24)
	if _, ok := m.Selected(); ok {
		t.Fatal("Nothing should be selected yet")
	}
	if !strings.Contains(m.View(), "> normal") {
		t.Errorf("Normal should be highlighted first:\n%s", m.View())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Selecting should quit the picker")
	}

	preset, ok := next.(DifficultyModel).Selected()
	if !ok || preset != config.DifficultyHard {
		t.Errorf("Expected hard, got %q (ok=%v)", preset, ok)
	}
}

func TestDifficultyModelQuit(t *testing.T) {
	next, _ := NewDifficultyModel(80, 24).Update(runeKey('q'))
	if _, ok := next.(DifficultyModel).Selected(); ok {
		t.Error("Quitting must not select a preset")
	}
}

type fakeReplayStore struct {
	entries []storage.ReplayEntry
	deleted []string
}

func (f *fakeReplayStore) ListReplays(int) ([]storage.ReplayEntry, error) {
	return f.entries, nil
}

func (f *fakeReplayStore) DeleteReplay(id string) error {
	f.deleted = append(f.deleted, id)
	kept := f.entries[:0]
	for _, e := range f.entries {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	f.entries = kept
	return nil
}

func TestReplayBrowser(t *testing.T) {
	store := &fakeReplayStore{entries: []storage.ReplayEntry{
		{ID: "0a1b2c3d-1111", Seed: 7, Difficulty: "hard", Frames: 600, CreatedAt: time.Now()},
		{ID: "9f8e7d6c-2222", Seed: 9, Difficulty: "easy", Frames: 120, CreatedAt: time.Now()},
	}}
	m := NewReplayBrowserModel(store, 60, 100, 30)

	view := m.View()
	if !strings.Contains(view, "0a1b2c3d") || !strings.Contains(view, "10s") {
		t.Errorf("Expected first recording listed:\n%s", view)
	}

	next, _ := m.Update(runeKey('d'))
	if len(store.deleted) != 1 || store.deleted[0] != "0a1b2c3d-1111" {
		t.Fatalf("Expected first entry deleted, got %v", store.deleted)
	}

	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if got := next.(ReplayBrowserModel).Selected(); got != "9f8e7d6c-2222" {
		t.Errorf("Expected remaining entry selected, got %q", got)
	}
}

func TestReplayBrowserEmpty(t *testing.T) {
	m := NewReplayBrowserModel(&fakeReplayStore{}, 60, 100, 30)
	if !strings.Contains(m.View(), "No recordings yet") {
		t.Error("Expected empty message")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if next.(ReplayBrowserModel).Selected() != "" {
		t.Error("Nothing to select in an empty list")
	}
}
