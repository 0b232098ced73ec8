// ABOUTME: Tests for the workspaces screen model
// ABOUTME: Verifies cursor movement and the messages emitted to the app

package workspaces

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/liubkkkko/taskManager/internal/api"
)

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testItems() []api.Workspace {
	return []api.Workspace{
		{ID: 1, Name: "alpha", Status: "created"},
		{ID: 2, Name: "beta", Status: "active"},
	}
}

func TestCursorMovement(t *testing.T) {
	w := New()
	w.SetItems(testItems())

	w.Update(keyMsg("j"))
	if w.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", w.cursor)
	}

	// Cursor stops at the last item
	w.Update(keyMsg("j"))
	if w.cursor != 1 {
		t.Errorf("expected cursor capped at 1, got %d", w.cursor)
	}

	w.Update(keyMsg("k"))
	if w.cursor != 0 {
		t.Errorf("expected cursor 0 after k, got %d", w.cursor)
	}
}

func TestEnterEmitsOpenMsg(t *testing.T) {
	w := New()
	w.SetItems(testItems())
	w.Update(keyMsg("j"))

	_, cmd := w.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}

	msg, ok := cmd().(OpenMsg)
	if !ok {
		t.Fatalf("expected OpenMsg, got %T", cmd())
	}
	if msg.Workspace.ID != 2 {
		t.Errorf("expected the workspace under the cursor, got %d", msg.Workspace.ID)
	}
}

func TestRefreshKeyEmitsRefreshMsg(t *testing.T) {
	w := New()
	w.SetItems(testItems())

	_, cmd := w.Update(keyMsg("r"))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if _, ok := cmd().(RefreshMsg); !ok {
		t.Errorf("expected RefreshMsg, got %T", cmd())
	}
}

func TestNewKeyOpensCreateForm(t *testing.T) {
	w := New()
	w.SetItems(testItems())

	w.Update(keyMsg("n"))
	if !w.Creating() {
		t.Error("expected create form to be active")
	}

	// Esc backs out without creating
	w.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if w.Creating() {
		t.Error("expected create form to be dismissed")
	}
}

func TestPrependPutsNewWorkspaceFirst(t *testing.T) {
	w := New()
	w.SetItems(testItems())

	w.Prepend(api.Workspace{ID: 3, Name: "gamma"})

	if len(w.items) != 3 || w.items[0].ID != 3 {
		t.Errorf("expected new workspace first, got %+v", w.items)
	}
}
