package eventlist

import (
	"testing"
	"time"

	"github.com/anhle/countdown/internal/keys"
	"github.com/anhle/countdown/internal/store"
	"github.com/anhle/countdown/tests/testutil"
)

func TestNewUsesConfiguredTickInterval(t *testing.T) {
	events := store.NewEventStore(testutil.NewTestKV(t))

	m := New(events, keys.DefaultKeyMap(), 3*time.Second, 80, 24)
	if m.tickEvery != 3*time.Second {
		t.Errorf("tickEvery = %v, want 3s", m.tickEvery)
	}
}

func TestNewFallsBackToOneSecondTick(t *testing.T) {
	events := store.NewEventStore(testutil.NewTestKV(t))

	m := New(events, keys.DefaultKeyMap(), 0, 80, 24)
	if m.tickEvery != time.Second {
		t.Errorf("tickEvery = %v, want 1s fallback", m.tickEvery)
	}
}
