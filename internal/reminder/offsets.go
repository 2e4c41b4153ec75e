package reminder

import "time"

// Offset is a fixed lead time before an event at which a reminder
// should fire, with its human label.
type Offset struct {
	Lead  time.Duration
	Label string
}

// Offsets is the canonical pre-event reminder table, ordered from the
// longest lead time to the shortest. It is process-wide static
// configuration shared by the add flow and reconciliation.
var Offsets = []Offset{
	{7 * 24 * time.Hour, "7 days"},
	{3 * 24 * time.Hour, "3 days"},
	{24 * time.Hour, "1 day"},
	{12 * time.Hour, "12 hours"},
	{6 * time.Hour, "6 hours"},
	{time.Hour, "1 hour"},
	{30 * time.Minute, "30 minutes"},
	{10 * time.Minute, "10 minutes"},
	{time.Minute, "1 minute"},
}
