package planner

import (
	"sort"
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
)

// ScoredTask is a ready task with its derived priority breakdown.
type ScoredTask struct {
	Task          *domain.Task
	Score         float64
	PriorityScore float64
	DeadlineScore float64
	EnergyScore   float64
	FocusScore    float64
}

const priorityWeight = 8.0

func energyScore(level domain.EnergyLevel) float64 {
	switch level {
	case domain.EnergyHigh:
		return 20
	case domain.EnergyMedium:
		return 15
	case domain.EnergyLow:
		return 10
	}
	return 15
}

func focusScore(focus domain.FocusType) float64 {
	switch focus {
	case domain.FocusCreative:
		return 8
	case domain.FocusTechnical:
		return 8
	case domain.FocusAdministrative:
		return 6
	case domain.FocusSocial:
		return 10
	}
	return 6
}

// deadlineScore rewards near deadlines: 30 points at zero days out, dropping by
// 5 per day until it reaches zero at six days.
func deadlineScore(deadline *time.Time, planDate time.Time) float64 {
	if deadline == nil {
		return 0
	}
	days := int(deadline.Sub(planDate).Hours() / 24)
	if days < 0 {
		days = 0
	}
	score := 30 - float64(days)*5
	if score < 0 {
		return 0
	}
	return score
}

// ScoreTasks computes the four sub-scores for each ready task and returns
// the result sorted by descending total. The sort is stable: equal-score
// tasks keep their relative input order.
func ScoreTasks(tasks []*domain.Task, planDate time.Time) []ScoredTask {
	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		s := ScoredTask{Task: t}
		if t.Priority != nil {
			s.PriorityScore = float64(*t.Priority) * priorityWeight
		}
		s.DeadlineScore = deadlineScore(t.HardDeadline, planDate)
		s.EnergyScore = energyScore(domain.EnergyFromPtrWithDefault(domain.EnergyMedium, t.Energy))
		s.FocusScore = focusScore(domain.FocusFromPtrWithDefault(domain.FocusAdministrative, t.Focus))
		s.Score = s.PriorityScore + s.DeadlineScore + s.EnergyScore + s.FocusScore
		scored = append(scored, s)
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	return scored
}
