package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/anhle/countdown/internal/model"
)

// eventSavedMsg is sent after an event is persisted and its reminders
// scheduled.
type eventSavedMsg struct{ err error }

// eventRemovedMsg is sent after an event is removed and the reminder
// schedule reconciled.
type eventRemovedMsg struct{ err error }

// saveEvent persists a new event and schedules its reminders.
func (m *Model) saveEvent(name string, occursAt time.Time) tea.Cmd {
	s := m.store
	sched := m.scheduler
	return func() tea.Msg {
		ctx := context.Background()

		ev, err := model.NewEvent(name, occursAt)
		if err != nil {
			// The form blocks empty names before submit, so nothing
			// has been written when this trips.
			return eventSavedMsg{err: err}
		}

		if err := s.Save(ctx, ev); err != nil {
			return eventSavedMsg{err: err}
		}

		if _, err := sched.Schedule(ctx, ev, time.Now()); err != nil {
			return eventSavedMsg{err: err}
		}
		return eventSavedMsg{err: nil}
	}
}

// removeEvent removes an event from the store, then rebuilds the full
// reminder schedule from the remaining events so no notification for
// the removed event survives.
func (m *Model) removeEvent(id string) tea.Cmd {
	s := m.store
	sched := m.scheduler
	return func() tea.Msg {
		ctx := context.Background()

		if err := s.Remove(ctx, id); err != nil {
			return eventRemovedMsg{err: err}
		}

		remaining, err := s.LoadAll(ctx)
		if err != nil {
			return eventRemovedMsg{err: err}
		}

		if err := sched.Reconcile(ctx, remaining, time.Now()); err != nil {
			return eventRemovedMsg{err: err}
		}
		return eventRemovedMsg{err: nil}
	}
}
