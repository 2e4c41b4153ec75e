// Package reminder computes and issues pre-event reminder
// notifications from a fixed table of lead-time offsets.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/anhle/countdown/internal/model"
)

// Scheduled describes one notification request that was actually
// issued. It is derived state: fully reconstructible from the event
// and the offset table, never persisted.
type Scheduled struct {
	NotificationID string
	EventID        string
	Label          string
	FireAt         time.Time
}

// Scheduler issues reminder notifications for events through the
// notification collaborator.
type Scheduler struct {
	notifier Notifier
}

// NewScheduler creates a scheduler over the given notifier.
func NewScheduler(n Notifier) *Scheduler {
	return &Scheduler{notifier: n}
}

// Schedule issues one notification per offset whose fire time is still
// in the future, and returns the set actually issued. Offsets already
// in the past are skipped silently. Calling Schedule twice for the
// same event doubles the outstanding notifications; callers must
// cancel before re-scheduling.
func (s *Scheduler) Schedule(ctx context.Context, ev model.Event, now time.Time) ([]Scheduled, error) {
	if s.notifier.Permission(ctx) != PermissionGranted {
		return nil, nil
	}

	var issued []Scheduled
	for _, off := range Offsets {
		fireAt := ev.OccursAt.Add(-off.Lead)
		if !fireAt.After(now) {
			continue
		}

		req := Request{
			Title:   "Upcoming: " + ev.Name,
			Body:    fmt.Sprintf("%s starts in %s", ev.Name, off.Label),
			EventID: ev.ID,
		}

		// The collaborator's trigger is a relative delay.
		id, err := s.notifier.Schedule(ctx, req, fireAt.Sub(now))
		if err != nil {
			return issued, fmt.Errorf("scheduling %s reminder for event %s: %w", off.Label, ev.ID, err)
		}

		issued = append(issued, Scheduled{
			NotificationID: id,
			EventID:        ev.ID,
			Label:          off.Label,
			FireAt:         fireAt,
		})
	}

	return issued, nil
}

// Reconcile rebuilds the full notification schedule for the remaining
// events after a mutation. The global cancel completes before any
// re-schedule begins so a fresh notification cannot be wiped by an
// in-flight cancel.
func (s *Scheduler) Reconcile(ctx context.Context, remaining []model.Event, now time.Time) error {
	if err := s.notifier.CancelAll(ctx); err != nil {
		return fmt.Errorf("canceling outstanding notifications: %w", err)
	}

	for _, ev := range remaining {
		if _, err := s.Schedule(ctx, ev, now); err != nil {
			return err
		}
	}
	return nil
}
