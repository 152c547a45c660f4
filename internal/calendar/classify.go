package calendar

import (
	"strings"

	"github.com/alexanderramin/focusday/internal/domain"
)

var highEnergyHints = []string{"focus", "deep work", "coding", "development"}
var lowEnergyHints = []string{"all hands", "town hall", "large meeting", "presentation"}

// InferEnergy guesses how demanding a commitment is from its attendee count
// and wording. Solo or deep-work events demand high energy; big ceremonies
// drain little.
func InferEnergy(e RawEvent) domain.EnergyLevel {
	text := strings.ToLower(e.Summary + " " + e.Description)

	if e.Attendees == 0 {
		return domain.EnergyHigh
	}
	for _, hint := range highEnergyHints {
		if strings.Contains(text, hint) {
			return domain.EnergyHigh
		}
	}
	if e.Attendees > 8 {
		return domain.EnergyLow
	}
	for _, hint := range lowEnergyHints {
		if strings.Contains(text, hint) {
			return domain.EnergyLow
		}
	}
	return domain.EnergyMedium
}

// ToBusyIntervals converts raw events into classified busy intervals,
// skipping malformed ones with a warning instead of failing the batch.
func ToBusyIntervals(events []RawEvent, observer Observer) []BusyInterval {
	if observer == nil {
		observer = NoopObserver{}
	}
	intervals := make([]BusyInterval, 0, len(events))
	for _, e := range events {
		if e.Start.IsZero() || e.End.IsZero() {
			observer.OnEventSkipped(e.Summary, "missing start or end time")
			continue
		}
		if !e.Start.Before(e.End) {
			observer.OnEventSkipped(e.Summary, "end not after start")
			continue
		}
		intervals = append(intervals, BusyInterval{
			Start:   e.Start,
			End:     e.End,
			Summary: e.Summary,
			Energy:  InferEnergy(e),
		})
	}
	return intervals
}
