package eventlist

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/anhle/countdown/internal/countdown"
	"github.com/anhle/countdown/internal/model"
	"github.com/anhle/countdown/internal/theme"
)

// EventItem wraps a model.Event so it can be used in a bubbles/list.
type EventItem struct {
	Event model.Event
}

// FilterValue returns the string used for fuzzy filtering.
func (i EventItem) FilterValue() string { return i.Event.Name }

// ItemDelegate implements list.ItemDelegate for rendering event rows
// with a live compact countdown.
type ItemDelegate struct {
	// now is shared by reference with the eventlist Model so each
	// 1-second tick is visible to the renderer.
	now *time.Time
}

// Height returns the number of lines each item takes.
func (d ItemDelegate) Height() int { return 1 }

// Spacing returns the number of blank lines between items.
func (d ItemDelegate) Spacing() int { return 0 }

// Update handles per-item messages (unused).
func (d ItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render draws a single event row: name, occurrence time, and the
// compact remaining-time figure in its auto-selected unit.
func (d ItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(EventItem)
	if !ok {
		return
	}

	ev := it.Event
	now := *d.now

	value, unit, expired := countdown.Compact(ev.OccursAt, now)

	var remaining string
	if expired {
		remaining = "expired"
	} else {
		remaining = fmt.Sprintf("%d %s", value, unit.Label())
	}

	urgent := !expired && unit == countdown.Seconds
	remaining = theme.CountdownStyle(expired, urgent).Render(remaining)

	when := lipgloss.NewStyle().
		Foreground(theme.ColorGray).
		Render(ev.OccursAt.Format("Mon Jan 02 15:04"))

	line := fmt.Sprintf("%s  %s  %s", ev.Name, when, remaining)

	if index == m.Index() {
		fmt.Fprint(w, theme.SelectedItemStyle.Render(line))
		return
	}
	fmt.Fprint(w, theme.ListItemStyle.Render(line))
}
