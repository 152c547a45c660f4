package calendar

import (
	"context"
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
)

// RawEvent is one calendar event as returned by a gateway, before
// classification into a busy interval.
type RawEvent struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Attendees   int
}

// Gateway lists raw events from one external calendar for a time window.
type Gateway interface {
	ListEvents(ctx context.Context, calendarID string, start, end time.Time) ([]RawEvent, error)
}

// BusyInterval is a classified external commitment subtracted from the
// schedulable day.
type BusyInterval struct {
	Start   time.Time
	End     time.Time
	Summary string
	Energy  domain.EnergyLevel
}
