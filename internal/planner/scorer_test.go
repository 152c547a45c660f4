package planner

import (
	"testing"
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int                            { return &v }
func energyPtr(v domain.EnergyLevel) *domain.EnergyLevel { return &v }
func focusPtr(v domain.FocusType) *domain.FocusType      { return &v }

func TestScoreTasks_Breakdown(t *testing.T) {
	planDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	deadline := planDate.AddDate(0, 0, 2)

	scored := ScoreTasks([]*domain.Task{{
		ID:           "t1",
		Status:       domain.TaskPending,
		Priority:     intPtr(5),
		Energy:       energyPtr(domain.EnergyHigh),
		Focus:        focusPtr(domain.FocusSocial),
		HardDeadline: &deadline,
	}}, planDate)

	require.Len(t, scored, 1)
	s := scored[0]
	assert.Equal(t, 40.0, s.PriorityScore)
	assert.Equal(t, 20.0, s.DeadlineScore, "30 - 2 days * 5")
	assert.Equal(t, 20.0, s.EnergyScore)
	assert.Equal(t, 10.0, s.FocusScore)
	assert.Equal(t, 90.0, s.Score)
}

func TestScoreTasks_Defaults(t *testing.T) {
	planDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	scored := ScoreTasks([]*domain.Task{{ID: "bare", Status: domain.TaskPending}}, planDate)

	require.Len(t, scored, 1)
	s := scored[0]
	assert.Equal(t, 0.0, s.PriorityScore, "no priority scores zero")
	assert.Equal(t, 0.0, s.DeadlineScore, "no deadline scores zero")
	assert.Equal(t, 15.0, s.EnergyScore, "defaults to MEDIUM")
	assert.Equal(t, 6.0, s.FocusScore, "defaults to ADMINISTRATIVE")
}

func TestScoreTasks_DeadlineClamping(t *testing.T) {
	planDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     float64
	}{
		{"same day", planDate.Add(10 * time.Hour), 30},
		{"past due", planDate.AddDate(0, 0, -3), 30},
		{"five days out", planDate.AddDate(0, 0, 5), 5},
		{"far future", planDate.AddDate(0, 1, 0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.deadline
			scored := ScoreTasks([]*domain.Task{{
				ID: "t", Status: domain.TaskPending, HardDeadline: &d,
			}}, planDate)
			assert.Equal(t, tt.want, scored[0].DeadlineScore)
		})
	}
}

func TestScoreTasks_DescendingAndStable(t *testing.T) {
	planDate := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	// "low" sorts below; "first" and "second" tie and must keep input order.
	tasks := []*domain.Task{
		{ID: "low", Status: domain.TaskPending, Energy: energyPtr(domain.EnergyLow)},
		{ID: "first", Status: domain.TaskPending, Energy: energyPtr(domain.EnergyHigh)},
		{ID: "second", Status: domain.TaskPending, Energy: energyPtr(domain.EnergyHigh)},
	}

	scored := ScoreTasks(tasks, planDate)
	require.Len(t, scored, 3)
	assert.Equal(t, "first", scored[0].Task.ID)
	assert.Equal(t, "second", scored[1].Task.ID)
	assert.Equal(t, "low", scored[2].Task.ID)

	for i := 1; i < len(scored); i++ {
		assert.GreaterOrEqual(t, scored[i-1].Score, scored[i].Score)
	}
}
