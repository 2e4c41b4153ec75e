package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anhle/countdown/internal/keys"
	"github.com/anhle/countdown/internal/reminder"
	"github.com/anhle/countdown/internal/store"
	"github.com/anhle/countdown/internal/ui"
	"github.com/anhle/countdown/internal/ui/countdownview"
	"github.com/anhle/countdown/internal/ui/eventform"
	"github.com/anhle/countdown/internal/ui/eventlist"
	helpview "github.com/anhle/countdown/internal/ui/help"
)

// ViewState represents the current active view in the application.
type ViewState int

const (
	ViewList ViewState = iota
	ViewForm
	ViewCountdown
	ViewHelp
)

// Model is the root Bubble Tea model that manages view routing,
// layout, and access to the store and reminder scheduler.
type Model struct {
	currentView   ViewState
	layout        ui.Layout
	store         *store.EventStore
	scheduler     *reminder.Scheduler
	keys          *keys.KeyMap
	eventList     eventlist.Model
	eventForm     eventform.Model
	countdownView countdownview.Model
	helpView      helpview.Model
	ready         bool
	statusMessage string

	// listTicking tracks whether the event list's tick chain is
	// alive. The chain dies when a tick arrives while another view
	// is on top; it is re-armed at most once on the way back.
	listTicking bool
}

// New creates a new root application model. tickEvery is the cadence
// at which the countdown views re-sample the clock.
func New(s *store.EventStore, sched *reminder.Scheduler, tickEvery time.Duration) Model {
	km := keys.DefaultKeyMap()

	return Model{
		currentView:   ViewList,
		store:         s,
		scheduler:     sched,
		keys:          km,
		eventList:     eventlist.New(s, km, tickEvery, 80, 24),
		eventForm:     eventform.New(80, 24),
		countdownView: countdownview.New(km, tickEvery, 80, 24),
		helpView:      helpview.New(km, 80, 24),
		listTicking:   true,
	}
}

// Init loads the event list and starts its tick.
func (m Model) Init() tea.Cmd {
	return m.eventList.Init()
}

// resumeListTick re-arms the list's tick chain if it has stopped.
func (m *Model) resumeListTick() tea.Cmd {
	if m.listTicking {
		return nil
	}
	m.listTicking = true
	return m.eventList.Tick()
}

// Update handles messages and dispatches to the active view.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.layout = ui.NewLayout(msg.Width, msg.Height)
		m.ready = true
		contentWidth := m.layout.ContentWidth()
		contentHeight := m.layout.ContentHeight()
		m.eventList.SetSize(contentWidth, contentHeight)
		m.eventForm.SetSize(contentWidth, contentHeight)
		m.countdownView.SetSize(contentWidth, contentHeight)
		m.helpView.SetSize(contentWidth, contentHeight)
		// Forward to the active view so huh forms can lay out.
		return m.updateActiveView(msg)

	case eventlist.TickMsg:
		// The list's tick chain stops while another view is on top;
		// it is re-armed on the way back.
		if m.currentView != ViewList {
			m.listTicking = false
			return m, nil
		}
		var cmd tea.Cmd
		m.eventList, cmd = m.eventList.Update(msg)
		return m, cmd

	case countdownview.TickMsg:
		var cmd tea.Cmd
		m.countdownView, cmd = m.countdownView.Update(msg)
		return m, cmd

	case eventlist.AddRequestMsg:
		m.currentView = ViewForm
		return m, m.eventForm.Start()

	case eventlist.SelectedEventMsg:
		m.currentView = ViewCountdown
		return m, m.countdownView.Show(msg.Name, msg.Date)

	case eventlist.DeleteRequestMsg:
		return m, m.removeEvent(msg.EventID)

	case eventform.EventSubmittedMsg:
		m.currentView = ViewList
		return m, tea.Batch(m.saveEvent(msg.Name, msg.OccursAt), m.resumeListTick())

	case eventform.CancelMsg:
		m.currentView = ViewList
		return m, m.resumeListTick()

	case eventSavedMsg:
		if msg.err != nil {
			// Write failures are logged to the status bar; the
			// process carries on.
			m.statusMessage = "save failed: " + msg.err.Error()
		} else {
			m.statusMessage = ""
		}
		return m, m.eventList.LoadEvents()

	case eventRemovedMsg:
		if msg.err != nil {
			m.statusMessage = "delete failed: " + msg.err.Error()
		} else {
			m.statusMessage = ""
		}
		return m, m.eventList.LoadEvents()

	case countdownview.BackMsg:
		m.currentView = ViewList
		return m, m.resumeListTick()

	case tea.KeyMsg:
		return m.handleGlobalKeys(msg)
	}

	return m.updateActiveView(msg)
}

// handleGlobalKeys processes keys that apply regardless of the active
// view, then falls through to the view.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The form owns all key input while it is open.
	if m.currentView == ViewForm {
		return m.updateActiveView(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.currentView == ViewList {
			return m, tea.Quit
		}
	case key.Matches(msg, m.keys.Help):
		if m.currentView == ViewList {
			m.currentView = ViewHelp
			return m, nil
		}
		if m.currentView == ViewHelp {
			m.currentView = ViewList
			return m, m.resumeListTick()
		}
	case key.Matches(msg, m.keys.Back):
		if m.currentView == ViewHelp {
			m.currentView = ViewList
			return m, m.resumeListTick()
		}
	}

	return m.updateActiveView(msg)
}

// updateActiveView forwards a message to the currently active view.
func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.currentView {
	case ViewList:
		m.eventList, cmd = m.eventList.Update(msg)
	case ViewForm:
		m.eventForm, cmd = m.eventForm.Update(msg)
	case ViewCountdown:
		m.countdownView, cmd = m.countdownView.Update(msg)
	case ViewHelp:
		m.helpView, cmd = m.helpView.Update(msg)
	}

	return m, cmd
}

// View renders the full application frame.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var content string
	switch m.currentView {
	case ViewList:
		content = m.eventList.View()
	case ViewForm:
		content = m.eventForm.View()
	case ViewCountdown:
		content = m.countdownView.View()
	case ViewHelp:
		content = m.helpView.View()
	}

	header := m.layout.RenderHeader("countdown", m.statusMessage)
	statusBar := m.layout.RenderStatusBar(m.hints())

	return m.layout.RenderWithFrame(header, content, statusBar)
}

// hints returns the status bar hint line for the active view.
func (m Model) hints() string {
	switch m.currentView {
	case ViewForm:
		return "enter: next field  esc: cancel"
	case ViewCountdown:
		return "u: cycle unit  esc: back"
	case ViewHelp:
		return "esc: close"
	default:
		parts := make([]string, 0, len(m.keys.ShortHelp()))
		for _, b := range m.keys.ShortHelp() {
			h := b.Help()
			parts = append(parts, h.Key+": "+h.Desc)
		}
		return strings.Join(parts, "  ")
	}
}
