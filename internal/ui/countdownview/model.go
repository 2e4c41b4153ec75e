package countdownview

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anhle/countdown/internal/countdown"
	"github.com/anhle/countdown/internal/keys"
	"github.com/anhle/countdown/internal/theme"
)

// TickMsg advances the countdown view's clock. The view owns its own
// tick chain, armed on display and dropped on dismissal.
type TickMsg time.Time

// BackMsg signals the parent to navigate back to the list view.
type BackMsg struct{}

// Model is the single-event countdown view. It receives only the
// {name, date} projection of the event.
type Model struct {
	name      string
	occursAt  time.Time
	unit      countdown.Unit
	now       time.Time
	keys      *keys.KeyMap
	tickEvery time.Duration
	active    bool
	width     int
	height    int
}

// New creates a new countdown view model re-sampling the clock every
// tickEvery.
func New(k *keys.KeyMap, tickEvery time.Duration, width, height int) Model {
	if tickEvery <= 0 {
		tickEvery = time.Second
	}
	return Model{
		unit:      countdown.Days,
		keys:      k,
		tickEvery: tickEvery,
		width:     width,
		height:    height,
	}
}

// Show points the view at an event and starts its tick. The unit
// selection resets to days for each newly displayed event.
func (m *Model) Show(name string, occursAt time.Time) tea.Cmd {
	m.name = name
	m.occursAt = occursAt
	m.unit = countdown.Days
	m.now = time.Now()
	m.active = true
	return m.tick()
}

// tick schedules the next clock advance at the configured cadence.
func (m Model) tick() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Init returns the initial command for the countdown view.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages for the countdown view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		if !m.active {
			return m, nil
		}
		m.now = time.Time(msg)
		return m, m.tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Back):
			m.active = false
			return m, func() tea.Msg {
				return BackMsg{}
			}

		case key.Matches(msg, m.keys.CycleUnit):
			// Switching units does not reset the clock; the next tick
			// re-samples now either way.
			m.unit = m.unit.Next()
			return m, nil
		}
	}

	return m, nil
}

// View renders the countdown view.
func (m Model) View() string {
	if m.name == "" {
		emptyStyle := lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Foreground(theme.ColorGray)
		return emptyStyle.Render("No event selected")
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.ColorWhite)
	whenStyle := lipgloss.NewStyle().Foreground(theme.ColorGray)

	value, expired := countdown.DisplayRemaining(m.occursAt, m.now, m.unit)

	var figure string
	if expired {
		figure = theme.ExpiredStyle.Render("This event has passed")
	} else {
		figure = theme.CountdownValueStyle.Render(
			fmt.Sprintf("%d", value),
		) + " " + whenStyle.Render(m.unit.Label()+" remaining")
	}

	hint := theme.HelpStyle.Render("u: cycle unit  esc: back")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(m.name),
		whenStyle.Render(m.occursAt.Format("Monday, Jan 2 2006 at 15:04")),
		"",
		figure,
		"",
		hint,
	)

	panel := theme.DetailPanelStyle.Render(content)

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(panel)
}

// SetSize updates the countdown view dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
