package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/anhle/countdown/internal/model"
)

// eventsKey is the single key-value entry holding the JSON-encoded
// event collection.
const eventsKey = "events"

// EventStore persists the event collection as one JSON blob under a
// single key. Every operation is a whole-collection read-modify-write;
// the store keeps no in-memory cache, so callers own their working
// copy for a screen's lifetime.
type EventStore struct {
	kv KeyValue
}

// NewEventStore creates an event store over the given key-value backend.
func NewEventStore(kv KeyValue) *EventStore {
	return &EventStore{kv: kv}
}

// LoadAll reads the persisted event collection. A missing entry or an
// unparseable payload yields an empty collection, not an error.
func (s *EventStore) LoadAll(ctx context.Context) ([]model.Event, error) {
	raw, err := s.kv.Get(ctx, eventsKey)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading events: %w", err)
	}

	var events []model.Event
	if err := json.Unmarshal(raw, &events); err != nil {
		// A corrupt payload is treated as "no events".
		return nil, nil
	}
	return events, nil
}

// Save appends the event to the collection and writes the whole
// collection back.
func (s *EventStore) Save(ctx context.Context, ev model.Event) error {
	events, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	events = append(events, ev)
	return s.writeAll(ctx, events)
}

// Remove filters the collection to exclude the matching ID and writes
// the whole collection back. Removing an absent ID is a no-op.
func (s *EventStore) Remove(ctx context.Context, id string) error {
	events, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := events[:0]
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	return s.writeAll(ctx, kept)
}

// writeAll serializes and persists the full collection.
func (s *EventStore) writeAll(ctx context.Context, events []model.Event) error {
	if events == nil {
		events = []model.Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("encoding events: %w", err)
	}
	if err := s.kv.Set(ctx, eventsKey, raw); err != nil {
		return fmt.Errorf("saving events: %w", err)
	}
	return nil
}
