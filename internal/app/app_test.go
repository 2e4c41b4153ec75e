package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestQuitBindingExitsFromList(t *testing.T) {
	m, _, _ := newTestApp(t)

	_, cmd := m.Update(keyMsg('q'))
	if !isQuit(cmd) {
		t.Error("q on the list view should quit")
	}

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !isQuit(cmd) {
		t.Error("ctrl+c on the list view should quit")
	}
}

func TestQuitBindingIgnoredOutsideList(t *testing.T) {
	m, _, _ := newTestApp(t)
	m.currentView = ViewCountdown

	_, cmd := m.Update(keyMsg('q'))
	if isQuit(cmd) {
		t.Error("q on the countdown view should not quit")
	}
}

func TestHelpBindingTogglesOverlay(t *testing.T) {
	m, _, _ := newTestApp(t)

	next, _ := m.Update(keyMsg('?'))
	opened := next.(Model)
	if opened.currentView != ViewHelp {
		t.Fatalf("currentView = %v, want ViewHelp", opened.currentView)
	}

	next, _ = opened.Update(keyMsg('?'))
	if closed := next.(Model); closed.currentView != ViewList {
		t.Errorf("currentView = %v, want ViewList after toggle", closed.currentView)
	}
}
