package planner

import (
	"sort"

	"github.com/alexanderramin/focusday/internal/domain"
)

// PlanResult is the assembled outcome of one planning run.
type PlanResult struct {
	Blocks      []Assignment // sorted by start time
	Unscheduled []ScoredTask

	TotalEstimatedMin  int
	EnergyOptimization float64 // mean energy match, in [0,1]
	FocusOptimization  float64 // mean focus match, in [0,1]
	DeadlineRisk       float64 // share of urgent tasks left unscheduled, in [0,1]
}

// urgent tasks carry both a hard deadline and priority above 3.
func urgent(t *domain.Task) bool {
	return t.HardDeadline != nil && t.Priority != nil && *t.Priority > 3
}

// Assemble orders assignments into schedule blocks and computes the
// aggregate optimization metrics. All metrics default to zero when nothing
// was scheduled.
func Assemble(scored []ScoredTask, assignments []Assignment) PlanResult {
	blocks := make([]Assignment, len(assignments))
	copy(blocks, assignments)
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Slot.Start.Before(blocks[j].Slot.Start)
	})

	result := PlanResult{Blocks: blocks}

	scheduled := make(map[string]bool, len(blocks))
	var energySum, focusSum float64
	for _, b := range blocks {
		scheduled[b.Task.ID] = true
		result.TotalEstimatedMin += b.Task.EffectiveEstimatedMin()
		energySum += b.EnergyMatch
		focusSum += b.FocusMatch
	}
	if len(blocks) > 0 {
		result.EnergyOptimization = energySum / float64(len(blocks))
		result.FocusOptimization = focusSum / float64(len(blocks))
	}

	var urgentTotal, urgentScheduled int
	for _, st := range scored {
		if !scheduled[st.Task.ID] {
			result.Unscheduled = append(result.Unscheduled, st)
		}
		if urgent(st.Task) {
			urgentTotal++
			if scheduled[st.Task.ID] {
				urgentScheduled++
			}
		}
	}
	if urgentTotal > 0 {
		result.DeadlineRisk = 1 - float64(urgentScheduled)/float64(urgentTotal)
	}
	return result
}
