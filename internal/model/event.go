package model

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyName is returned when an event is created with a blank name.
var ErrEmptyName = errors.New("event name must not be empty")

// Event is a single scheduled occasion the user is counting down to.
// Events are immutable once stored; an edit is modeled as remove + add.
type Event struct {
	// ID is the unique identifier for this event.
	ID string `json:"id"`

	// Name is the trimmed, non-empty display name.
	Name string `json:"name"`

	// OccursAt is the absolute instant the event takes place.
	// Past instants are representable and render as expired.
	OccursAt time.Time `json:"date"`
}

// NewEvent creates an event with a fresh UUID, trimming the name.
// The name must be non-empty after trimming. occursAt is not required
// to be in the future.
func NewEvent(name string, occursAt time.Time) (Event, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Event{}, ErrEmptyName
	}
	return Event{
		ID:       uuid.New().String(),
		Name:     name,
		OccursAt: occursAt,
	}, nil
}

// eventJSON is the persisted wire form: {id, name, date} with the date
// as an RFC 3339 string.
type eventJSON struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Date string `json:"date"`
}

// MarshalJSON encodes the event in the persisted {id, name, date} layout.
func (e Event) MarshalJSON() ([]byte, error) {
	return json.Marshal(eventJSON{
		ID:   e.ID,
		Name: e.Name,
		Date: e.OccursAt.Format(time.RFC3339Nano),
	})
}

// UnmarshalJSON decodes the persisted {id, name, date} layout.
func (e *Event) UnmarshalJSON(data []byte) error {
	var raw eventJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	occursAt, err := time.Parse(time.RFC3339Nano, raw.Date)
	if err != nil {
		return err
	}
	e.ID = raw.ID
	e.Name = raw.Name
	e.OccursAt = occursAt
	return nil
}
