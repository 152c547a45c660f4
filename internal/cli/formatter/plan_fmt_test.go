package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/stretchr/testify/assert"
)

func samplePlan() *contract.PlanResponse {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	return &contract.PlanResponse{
		GeneratedAt: date,
		Date:        date,
		Blocks: []contract.ScheduledBlock{
			{
				TaskID:       "39f351b6-2b6e-4f0e-a1d2-b8e3a40b1f07",
				Title:        "Design review notes",
				Start:        date.Add(9 * time.Hour),
				End:          date.Add(10*time.Hour + 30*time.Minute),
				EstimatedMin: 90,
				Energy:       "HIGH",
				Focus:        "CREATIVE",
				EnergyMatch:  1.0,
				FocusMatch:   1.0,
				Reasoning:    "Energy level matches your HIGH energy window",
			},
		},
		Unscheduled: []contract.UnscheduledTask{
			{TaskID: "u1", Title: "Leftover chore", Score: 24, EstimatedMin: 30},
		},
		TotalEstimatedMin:  90,
		EnergyOptimization: 1.0,
		FocusOptimization:  1.0,
		DeadlineRisk:       0,
	}
}

func TestFormatPlan_RendersBlocksAndMetrics(t *testing.T) {
	out := FormatPlan(samplePlan())

	assert.Contains(t, out, "Design review notes")
	assert.Contains(t, out, "09:00–10:30")
	assert.Contains(t, out, "HIGH")
	assert.Contains(t, out, "Energy level matches")
	assert.Contains(t, out, "Leftover chore")
	assert.Contains(t, out, "Total planned: 1h 30m")
	assert.Contains(t, out, "100%")
}

func TestFormatPlan_EmptyPlan(t *testing.T) {
	resp := &contract.PlanResponse{Date: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)}
	out := FormatPlan(resp)

	assert.Contains(t, out, "Nothing to schedule.")
	assert.Contains(t, out, "0%")
}

func TestFormatPlan_DegradedCalendarWarning(t *testing.T) {
	resp := samplePlan()
	resp.CalendarDegraded = true
	resp.Warnings = []string{"calendar unavailable; plan may conflict with existing commitments"}

	out := FormatPlan(resp)
	assert.Contains(t, out, "calendar data may be incomplete")
	assert.Contains(t, out, "calendar unavailable")
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "0m", FormatMinutes(0))
	assert.Equal(t, "45m", FormatMinutes(45))
	assert.Equal(t, "1h", FormatMinutes(60))
	assert.Equal(t, "1h 30m", FormatMinutes(90))
}

func TestRenderMetric_Bounds(t *testing.T) {
	assert.Contains(t, RenderMetric(-0.5, 8), "  0%")
	assert.Contains(t, RenderMetric(1.5, 8), "100%")
}
