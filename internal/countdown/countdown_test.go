package countdown

import (
	"testing"
	"time"
)

var base = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestRemainingTruncatesTowardZero(t *testing.T) {
	tests := []struct {
		name   string
		target time.Time
		unit   Unit
		want   int64
	}{
		{"90 minutes in hours floors to 1", base.Add(90 * time.Minute), Hours, 1},
		{"23 hours in days floors to 0", base.Add(23 * time.Hour), Days, 0},
		{"25 hours in days floors to 1", base.Add(25 * time.Hour), Days, 1},
		{"90 seconds in minutes floors to 1", base.Add(90 * time.Second), Minutes, 1},
		{"exact boundary", base.Add(2 * time.Hour), Hours, 2},
		{"past target is negative", base.Add(-90 * time.Minute), Hours, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Remaining(tt.target, base, tt.unit); got != tt.want {
				t.Errorf("Remaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRemainingDecreasesAsNowAdvances(t *testing.T) {
	target := base.Add(48 * time.Hour)

	prev := Remaining(target, base, Seconds)
	for i := 1; i <= 10; i++ {
		now := base.Add(time.Duration(i) * 3 * time.Hour)
		got := Remaining(target, now, Seconds)
		if got >= prev {
			t.Fatalf("Remaining did not strictly decrease: step %d got %d, prev %d", i, got, prev)
		}
		prev = got
	}
}

func TestDisplayRemainingClampsPastEvents(t *testing.T) {
	tests := []struct {
		name        string
		target      time.Time
		wantValue   int64
		wantExpired bool
	}{
		{"future event", base.Add(3 * time.Hour), 3, false},
		{"exactly now is expired", base, 0, true},
		{"past event is expired, never negative", base.Add(-time.Hour), 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, expired := DisplayRemaining(tt.target, base, Hours)
			if value != tt.wantValue || expired != tt.wantExpired {
				t.Errorf("DisplayRemaining() = (%d, %v), want (%d, %v)",
					value, expired, tt.wantValue, tt.wantExpired)
			}
		})
	}
}

func TestCompactUnitSelection(t *testing.T) {
	tests := []struct {
		name        string
		target      time.Time
		wantValue   int64
		wantUnit    Unit
		wantExpired bool
	}{
		{"8 days out uses days", base.Add(8 * 24 * time.Hour), 8, Days, false},
		{"3 days out uses hours", base.Add(3 * 24 * time.Hour), 72, Hours, false},
		{"exactly 1 day out uses hours", base.Add(24 * time.Hour), 24, Hours, false},
		{"13 hours out uses minutes", base.Add(13 * time.Hour), 13 * 60, Minutes, false},
		{"11 hours out uses seconds", base.Add(11 * time.Hour), 11 * 3600, Seconds, false},
		{"5 minutes out uses seconds", base.Add(5 * time.Minute), 300, Seconds, false},
		{"1 second ago is expired", base.Add(-time.Second), 0, Seconds, true},
		{"exactly 7 days out uses hours, not days", base.Add(7 * 24 * time.Hour), 7 * 24, Hours, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, unit, expired := Compact(tt.target, base)
			if value != tt.wantValue || unit != tt.wantUnit || expired != tt.wantExpired {
				t.Errorf("Compact() = (%d, %s, %v), want (%d, %s, %v)",
					value, unit.Label(), expired, tt.wantValue, tt.wantUnit.Label(), tt.wantExpired)
			}
		})
	}
}

func TestUnitCycle(t *testing.T) {
	order := []Unit{Days, Hours, Minutes, Seconds, Days}
	for i := 0; i < len(order)-1; i++ {
		if got := order[i].Next(); got != order[i+1] {
			t.Errorf("%s.Next() = %s, want %s", order[i].Label(), got.Label(), order[i+1].Label())
		}
	}
}
