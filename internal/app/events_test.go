package app

import (
	"context"
	"testing"
	"time"

	"github.com/anhle/countdown/internal/reminder"
	"github.com/anhle/countdown/internal/store"
	"github.com/anhle/countdown/tests/testutil"
)

// recordingNotifier tracks scheduled requests and cancel calls through
// the public Notifier interface.
type recordingNotifier struct {
	scheduled  []reminder.Request
	cancelAlls int
	nextID     int
}

func (r *recordingNotifier) Schedule(ctx context.Context, req reminder.Request, delay time.Duration) (string, error) {
	r.nextID++
	r.scheduled = append(r.scheduled, req)
	return "n", nil
}

func (r *recordingNotifier) CancelAll(ctx context.Context) error {
	r.cancelAlls++
	r.scheduled = nil
	return nil
}

func (r *recordingNotifier) Permission(ctx context.Context) reminder.PermissionStatus {
	return reminder.PermissionGranted
}

func newTestApp(t *testing.T) (Model, *store.EventStore, *recordingNotifier) {
	t.Helper()
	events := store.NewEventStore(testutil.NewTestKV(t))
	notifier := &recordingNotifier{}
	return New(events, reminder.NewScheduler(notifier), time.Second), events, notifier
}

func TestSaveEventPersistsAndSchedules(t *testing.T) {
	m, events, notifier := newTestApp(t)

	occursAt := time.Now().Add(48 * time.Hour)
	msg := m.saveEvent("dentist", occursAt)()

	result, ok := msg.(eventSavedMsg)
	if !ok {
		t.Fatalf("got %T, want eventSavedMsg", msg)
	}
	if result.err != nil {
		t.Fatalf("saveEvent: %v", result.err)
	}

	stored, err := events.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(stored) != 1 || stored[0].Name != "dentist" {
		t.Fatalf("stored = %+v", stored)
	}

	// 48h out: every offset except the 7-day and 3-day leads is ahead.
	if len(notifier.scheduled) != 7 {
		t.Errorf("scheduled %d reminders, want 7", len(notifier.scheduled))
	}
	for _, req := range notifier.scheduled {
		if req.EventID != stored[0].ID {
			t.Errorf("reminder tagged %q, want %q", req.EventID, stored[0].ID)
		}
	}
}

func TestSaveEventRejectsBlankName(t *testing.T) {
	m, events, notifier := newTestApp(t)

	msg := m.saveEvent("   ", time.Now().Add(time.Hour))()

	result := msg.(eventSavedMsg)
	if result.err == nil {
		t.Fatal("expected a validation error")
	}

	// No partial state: nothing stored, nothing scheduled.
	stored, err := events.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(stored) != 0 || len(notifier.scheduled) != 0 {
		t.Errorf("partial state after failed validation: %d stored, %d scheduled",
			len(stored), len(notifier.scheduled))
	}
}

func TestRemoveEventReconcilesReminders(t *testing.T) {
	m, events, notifier := newTestApp(t)
	ctx := context.Background()

	now := time.Now()
	if msg := m.saveEvent("keep", now.Add(45*time.Minute))(); msg.(eventSavedMsg).err != nil {
		t.Fatal("saving keep")
	}
	if msg := m.saveEvent("drop", now.Add(2*time.Hour))(); msg.(eventSavedMsg).err != nil {
		t.Fatal("saving drop")
	}

	stored, err := events.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	var keepID, dropID string
	for _, ev := range stored {
		if ev.Name == "keep" {
			keepID = ev.ID
		} else {
			dropID = ev.ID
		}
	}

	notifier.cancelAlls = 0
	msg := m.removeEvent(dropID)()
	if result := msg.(eventRemovedMsg); result.err != nil {
		t.Fatalf("removeEvent: %v", result.err)
	}

	if notifier.cancelAlls != 1 {
		t.Errorf("cancelAlls = %d, want exactly 1", notifier.cancelAlls)
	}
	for _, req := range notifier.scheduled {
		if req.EventID == dropID {
			t.Errorf("stale reminder for removed event")
		}
		if req.EventID != keepID {
			t.Errorf("reminder for unknown event %q", req.EventID)
		}
	}

	remaining, err := events.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(remaining) != 1 || remaining[0].ID != keepID {
		t.Errorf("remaining = %+v", remaining)
	}
}
