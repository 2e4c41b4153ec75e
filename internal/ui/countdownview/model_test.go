package countdownview

import (
	"testing"
	"time"

	"github.com/anhle/countdown/internal/keys"
)

func TestNewUsesConfiguredTickInterval(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 5*time.Second, 80, 24)
	if m.tickEvery != 5*time.Second {
		t.Errorf("tickEvery = %v, want 5s", m.tickEvery)
	}
}

func TestNewFallsBackToOneSecondTick(t *testing.T) {
	m := New(keys.DefaultKeyMap(), 0, 80, 24)
	if m.tickEvery != time.Second {
		t.Errorf("tickEvery = %v, want 1s fallback", m.tickEvery)
	}
}
