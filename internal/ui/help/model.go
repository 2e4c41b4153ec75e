package help

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anhle/countdown/internal/keys"
	"github.com/anhle/countdown/internal/theme"
)

// Model is the help overlay, grouping shortcuts by the screen they
// apply to.
type Model struct {
	keys   *keys.KeyMap
	width  int
	height int
}

// New creates a new help view model.
func New(k *keys.KeyMap, width, height int) Model {
	return Model{
		keys:   k,
		width:  width,
		height: height,
	}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// View renders the help overlay.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(theme.ColorWhite).
		MarginBottom(1)

	// Section order matches the KeyMap's FullHelp grouping.
	names := []string{"Events", "Countdown", "Global"}

	rows := []string{titleStyle.Render("Keyboard Shortcuts")}
	for i, group := range m.keys.FullHelp() {
		rows = append(rows, m.renderSection(names[i], group), "")
	}

	content := lipgloss.JoinVertical(lipgloss.Left, rows...)

	return theme.DetailPanelStyle.
		Width(m.width - 4).
		Height(m.height - 4).
		Render(content)
}

// renderSection renders one named group of bindings as aligned
// key/description rows.
func (m Model) renderSection(name string, bindings []key.Binding) string {
	headingStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorBlue)
	keyStyle := lipgloss.NewStyle().Foreground(theme.ColorYellow).Width(12)
	descStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)

	rows := []string{headingStyle.Render(name)}
	for _, b := range bindings {
		h := b.Help()
		rows = append(rows, keyStyle.Render(h.Key)+descStyle.Render(h.Desc))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// SetSize updates the help view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
