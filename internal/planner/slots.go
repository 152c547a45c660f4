package planner

import (
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
)

// TimeSlot is a candidate block of the work day. Generated fresh per planning
// run, never persisted.
type TimeSlot struct {
	Start          time.Time
	End            time.Time
	Energy         domain.EnergyLevel
	PreferredFocus []domain.FocusType
	Available      bool
}

// Minutes returns the slot length in minutes.
func (s TimeSlot) Minutes() int {
	return int(s.End.Sub(s.Start).Minutes())
}

// Interval is a half-open [Start, End) busy range subtracted from the day.
type Interval struct {
	Start time.Time
	End   time.Time
}

// Overlaps uses the half-open interval test: two ranges conflict when each
// starts before the other ends.
func (iv Interval) Overlaps(start, end time.Time) bool {
	return start.Before(iv.End) && end.After(iv.Start)
}

// WorkWindow is the parsed work-hour range for the target day. Defaulted is
// set when malformed preferences forced the 09:00-17:00 fallback, so callers
// can surface the degradation instead of swallowing it.
type WorkWindow struct {
	Start     time.Time
	End       time.Time
	Defaulted bool
}

// ParseWorkWindow resolves "HH:MM" preference strings against the target day.
// Malformed or inverted input falls back to 09:00-17:00: missing work hours
// should never block planning.
func ParseWorkWindow(date time.Time, startStr, endStr string) WorkWindow {
	start, okStart := parseClock(date, startStr)
	end, okEnd := parseClock(date, endStr)
	if !okStart || !okEnd || !start.Before(end) {
		return WorkWindow{
			Start:     date.Add(9 * time.Hour),
			End:       date.Add(17 * time.Hour),
			Defaulted: true,
		}
	}
	return WorkWindow{Start: start, End: end}
}

func parseClock(date time.Time, s string) (time.Time, bool) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0, date.Location()), true
}

// breakMin returns the recovery break between consecutive slots. Longer focus
// sessions earn longer breaks.
func breakMin(slotMin int) int {
	switch {
	case slotMin <= 60:
		return 10
	case slotMin <= 90:
		return 15
	case slotMin <= 120:
		return 20
	default:
		return 25
	}
}

// stepDown suppresses an energy level by one. LOW stays LOW.
func stepDown(level domain.EnergyLevel) domain.EnergyLevel {
	switch level {
	case domain.EnergyHigh:
		return domain.EnergyMedium
	case domain.EnergyMedium:
		return domain.EnergyLow
	default:
		return domain.EnergyLow
	}
}

// slotEnergy infers the energy a slot offers from its start time, applying a
// fixed circadian curve over the user's stated morning/afternoon baselines.
// minOfDay is minutes from midnight.
func slotEnergy(minOfDay int, prefs *domain.SchedulingPrefs) domain.EnergyLevel {
	switch {
	case minOfDay < 480: // before 08:00, still warming up
		return stepDown(prefs.MorningEnergy)
	case minOfDay < 660: // 08:00-10:59
		return prefs.MorningEnergy
	case minOfDay < 720: // 11:00-11:59, pre-lunch dip
		return stepDown(prefs.MorningEnergy)
	case minOfDay < 780: // 12:00-12:59, lunch
		return domain.EnergyLow
	case minOfDay < 840: // 13:00-13:59, post-lunch dip
		return stepDown(prefs.AfternoonEnergy)
	case minOfDay < 960: // 14:00-15:59
		return prefs.AfternoonEnergy
	case minOfDay < 1080: // 16:00-17:59, winding down
		return stepDown(prefs.AfternoonEnergy)
	default: // 18:00 onward
		return domain.EnergyLow
	}
}

// slotFocus maps a slot's energy and time of day to an ordered preferred
// focus list.
func slotFocus(energy domain.EnergyLevel, minOfDay int) []domain.FocusType {
	switch energy {
	case domain.EnergyHigh:
		if minOfDay < 660 { // creative work first thing
			return []domain.FocusType{domain.FocusCreative, domain.FocusTechnical}
		}
		return []domain.FocusType{domain.FocusTechnical, domain.FocusCreative}
	case domain.EnergyMedium:
		if minOfDay < 900 {
			return []domain.FocusType{domain.FocusTechnical, domain.FocusAdministrative}
		}
		return []domain.FocusType{domain.FocusAdministrative, domain.FocusTechnical}
	default:
		if minOfDay < 960 {
			return []domain.FocusType{domain.FocusAdministrative, domain.FocusSocial}
		}
		return []domain.FocusType{domain.FocusSocial, domain.FocusAdministrative}
	}
}

// GenerateSlots walks the work window in slot+break increments and returns
// the slots that do not collide with busy intervals, in chronological order.
// The returned WorkWindow reports whether the 09:00-17:00 fallback applied.
func GenerateSlots(date time.Time, prefs *domain.SchedulingPrefs, busy []Interval) ([]TimeSlot, WorkWindow) {
	window := ParseWorkWindow(date, prefs.WorkStart, prefs.WorkEnd)

	slotMin := prefs.FocusSessionMin
	if slotMin <= 0 {
		slotMin = domain.DefaultFocusSessionMin
	}
	step := time.Duration(slotMin+breakMin(slotMin)) * time.Minute
	slotLen := time.Duration(slotMin) * time.Minute

	var slots []TimeSlot
	for start := window.Start; !start.Add(slotLen).After(window.End); start = start.Add(step) {
		end := start.Add(slotLen)
		available := true
		for _, iv := range busy {
			if iv.Overlaps(start, end) {
				available = false
				break
			}
		}
		if !available {
			continue
		}

		minOfDay := start.Hour()*60 + start.Minute()
		energy := slotEnergy(minOfDay, prefs)
		slots = append(slots, TimeSlot{
			Start:          start,
			End:            end,
			Energy:         energy,
			PreferredFocus: slotFocus(energy, minOfDay),
			Available:      true,
		})
	}
	return slots, window
}
