package eventlist

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anhle/countdown/internal/keys"
	"github.com/anhle/countdown/internal/model"
	"github.com/anhle/countdown/internal/store"
	"github.com/anhle/countdown/internal/theme"
)

// TickMsg advances the list view's clock. The list owns its own tick
// chain; it is re-armed only while the view is displayed.
type TickMsg time.Time

// EventsLoadedMsg is sent when events have been loaded from the store.
type EventsLoadedMsg struct {
	Events []model.Event
}

// SelectedEventMsg is sent when a user opens an event's countdown.
// It carries the narrow {name, date} projection handed to the
// countdown view.
type SelectedEventMsg struct {
	Name string
	Date time.Time
}

// DeleteRequestMsg asks the parent to remove the event and reconcile
// reminders.
type DeleteRequestMsg struct {
	EventID string
}

// AddRequestMsg asks the parent to open the add-event form.
type AddRequestMsg struct{}

// Model is the event list view component.
type Model struct {
	list      list.Model
	store     *store.EventStore
	keys      *keys.KeyMap
	now       *time.Time
	tickEvery time.Duration
	width     int
	height    int
}

// New creates a new event list model re-sampling the clock every
// tickEvery.
func New(s *store.EventStore, k *keys.KeyMap, tickEvery time.Duration, width, height int) Model {
	if tickEvery <= 0 {
		tickEvery = time.Second
	}
	now := time.Now()
	delegate := ItemDelegate{now: &now}

	l := list.New([]list.Item{}, delegate, width, height-2)
	l.Title = "Events"
	l.SetShowStatusBar(true)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = theme.HeaderStyle

	return Model{
		list:      l,
		store:     s,
		keys:      k,
		now:       &now,
		tickEvery: tickEvery,
		width:     width,
		height:    height,
	}
}

// Init loads the stored events and starts the tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.LoadEvents(), m.Tick())
}

// Tick schedules the next clock advance at the configured cadence.
// The parent re-arms it when the list returns to the foreground after
// another view stopped the chain.
func (m Model) Tick() tea.Cmd {
	return tea.Tick(m.tickEvery, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update handles messages for the event list view.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case TickMsg:
		// Re-sample now and re-arm. The delegate sees the new value
		// through the shared pointer.
		*m.now = time.Time(msg)
		return m, m.Tick()

	case EventsLoadedMsg:
		items := make([]list.Item, len(msg.Events))
		for i, ev := range msg.Events {
			items[i] = EventItem{Event: ev}
		}
		cmd := m.list.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeys(msg)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleKeys processes key input for the list.
func (m Model) handleKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		item, ok := m.list.SelectedItem().(EventItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return SelectedEventMsg{
				Name: item.Event.Name,
				Date: item.Event.OccursAt,
			}
		}

	case key.Matches(msg, m.keys.Add):
		return m, func() tea.Msg {
			return AddRequestMsg{}
		}

	case key.Matches(msg, m.keys.Delete):
		item, ok := m.list.SelectedItem().(EventItem)
		if !ok {
			return m, nil
		}
		return m, func() tea.Msg {
			return DeleteRequestMsg{EventID: item.Event.ID}
		}
	}

	// Delegate to the list for navigation keys (up/down/pgup/pgdn)
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the event list view.
func (m Model) View() string {
	if len(m.list.Items()) == 0 {
		return m.renderEmptyState()
	}
	return m.list.View()
}

// renderEmptyState shows guidance text when no events are stored.
func (m Model) renderEmptyState() string {
	style := lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(theme.ColorGray)

	return style.Render(
		"No events yet.\n\nPress a to add your first event.",
	)
}

// LoadEvents returns a tea.Cmd that reads the stored event collection.
func (m Model) LoadEvents() tea.Cmd {
	s := m.store
	return func() tea.Msg {
		events, err := s.LoadAll(context.Background())
		if err != nil {
			return EventsLoadedMsg{Events: nil}
		}
		return EventsLoadedMsg{Events: events}
	}
}

// SetSize updates the list dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.list.SetSize(width, height-2)
}
