package planner

import (
	"testing"
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDate() time.Time {
	return time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
}

func TestParseWorkWindow(t *testing.T) {
	date := testDate()

	w := ParseWorkWindow(date, "08:30", "16:00")
	assert.False(t, w.Defaulted)
	assert.Equal(t, date.Add(8*time.Hour+30*time.Minute), w.Start)
	assert.Equal(t, date.Add(16*time.Hour), w.End)
}

func TestParseWorkWindow_FallsBackOnMalformedInput(t *testing.T) {
	date := testDate()

	tests := []struct {
		name       string
		start, end string
	}{
		{"garbage start", "nine", "17:00"},
		{"garbage end", "09:00", "5pm"},
		{"empty", "", ""},
		{"inverted", "17:00", "09:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ParseWorkWindow(date, tt.start, tt.end)
			assert.True(t, w.Defaulted, "fallback must be reported, not swallowed")
			assert.Equal(t, date.Add(9*time.Hour), w.Start)
			assert.Equal(t, date.Add(17*time.Hour), w.End)
		})
	}
}

func TestBreakMin(t *testing.T) {
	assert.Equal(t, 10, breakMin(45))
	assert.Equal(t, 10, breakMin(60))
	assert.Equal(t, 15, breakMin(90))
	assert.Equal(t, 20, breakMin(120))
	assert.Equal(t, 25, breakMin(180))
}

func TestSlotEnergy_CircadianCurve(t *testing.T) {
	prefs := &domain.SchedulingPrefs{
		MorningEnergy:   domain.EnergyHigh,
		AfternoonEnergy: domain.EnergyMedium,
	}

	tests := []struct {
		minOfDay int
		want     domain.EnergyLevel
	}{
		{420, domain.EnergyMedium}, // 07:00 early morning, morning - 1
		{480, domain.EnergyHigh},   // 08:00 configured morning
		{659, domain.EnergyHigh},   // 10:59 still morning
		{660, domain.EnergyMedium}, // 11:00 pre-lunch dip
		{720, domain.EnergyLow},    // 12:00 lunch
		{780, domain.EnergyLow},    // 13:00 post-lunch, afternoon - 1
		{840, domain.EnergyMedium}, // 14:00 configured afternoon
		{960, domain.EnergyLow},    // 16:00 winding down
		{1080, domain.EnergyLow},   // 18:00 evening
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slotEnergy(tt.minOfDay, prefs), "minute %d", tt.minOfDay)
	}
}

func TestSlotFocus_Ordering(t *testing.T) {
	assert.Equal(t,
		[]domain.FocusType{domain.FocusCreative, domain.FocusTechnical},
		slotFocus(domain.EnergyHigh, 540), "high energy mornings lead with creative work")
	assert.Equal(t,
		[]domain.FocusType{domain.FocusTechnical, domain.FocusCreative},
		slotFocus(domain.EnergyHigh, 700))
	assert.Equal(t,
		[]domain.FocusType{domain.FocusTechnical, domain.FocusAdministrative},
		slotFocus(domain.EnergyMedium, 840))
	assert.Equal(t,
		[]domain.FocusType{domain.FocusAdministrative, domain.FocusTechnical},
		slotFocus(domain.EnergyMedium, 930))
	assert.Equal(t,
		[]domain.FocusType{domain.FocusAdministrative, domain.FocusSocial},
		slotFocus(domain.EnergyLow, 750))
	assert.Equal(t,
		[]domain.FocusType{domain.FocusSocial, domain.FocusAdministrative},
		slotFocus(domain.EnergyLow, 1000))
}

func TestGenerateSlots_DefaultDay(t *testing.T) {
	prefs := domain.DefaultSchedulingPrefs()

	slots, window := GenerateSlots(testDate(), prefs, nil)
	assert.False(t, window.Defaulted)

	// 90-minute sessions with 15-minute breaks across 09:00-17:00:
	// 09:00, 10:45, 12:30, 14:15. A 16:00 slot would run past 17:00.
	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
	assert.Equal(t, "10:30", slots[0].End.Format("15:04"))
	assert.Equal(t, "10:45", slots[1].Start.Format("15:04"))
	assert.Equal(t, "12:30", slots[2].Start.Format("15:04"))
	assert.Equal(t, "14:15", slots[3].Start.Format("15:04"))

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start), "chronological order")
	}
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, 90, s.Minutes())
	}
}

func TestGenerateSlots_BusyIntervalsRemoveSlots(t *testing.T) {
	date := testDate()
	prefs := domain.DefaultSchedulingPrefs()

	// A meeting 11:00-12:00 overlaps the 10:45-12:15 slot only.
	busy := []Interval{{
		Start: date.Add(11 * time.Hour),
		End:   date.Add(12 * time.Hour),
	}}

	slots, _ := GenerateSlots(date, prefs, busy)
	require.Len(t, slots, 3)
	for _, s := range slots {
		assert.NotEqual(t, "10:45", s.Start.Format("15:04"))
	}
}

func TestGenerateSlots_AdjacentIntervalDoesNotConflict(t *testing.T) {
	date := testDate()
	prefs := domain.DefaultSchedulingPrefs()

	// Meeting ends exactly when the first slot starts: half-open intervals
	// do not overlap at the boundary.
	busy := []Interval{{
		Start: date.Add(8 * time.Hour),
		End:   date.Add(9 * time.Hour),
	}}

	slots, _ := GenerateSlots(date, prefs, busy)
	require.Len(t, slots, 4)
	assert.Equal(t, "09:00", slots[0].Start.Format("15:04"))
}

func TestGenerateSlots_ShortSessions(t *testing.T) {
	prefs := domain.DefaultSchedulingPrefs()
	prefs.FocusSessionMin = 60 // 10-minute breaks, 70-minute step

	slots, _ := GenerateSlots(testDate(), prefs, nil)
	// 09:00, 10:10, 11:20, 12:30, 13:40, 14:50, 16:00 all fit before 17:00.
	require.Len(t, slots, 7)
	assert.Equal(t, "16:00", slots[6].Start.Format("15:04"))
}
