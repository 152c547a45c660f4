package planner

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/focusday/internal/domain"
)

// Assignment pairs one scored task with one slot, with the compatibility
// breakdown used for plan metrics and the human-readable reasoning shown to
// the user.
type Assignment struct {
	Task        *domain.Task
	Slot        TimeSlot
	EnergyMatch float64
	FocusMatch  float64
	DurationFit float64
	Reasoning   string
}

// Compatibility weights. Energy alignment matters most for ADHD scheduling;
// focus and duration fit split the remainder evenly.
const (
	weightEnergy   = 0.4
	weightFocus    = 0.3
	weightDuration = 0.3
)

func energyMatch(task *domain.Task, slot TimeSlot) float64 {
	if task.Energy == nil {
		return 0.5
	}
	if *task.Energy == slot.Energy {
		return 1.0
	}
	return 0.3
}

func focusMatch(task *domain.Task, slot TimeSlot) float64 {
	if task.Focus == nil {
		return 0.5
	}
	for _, f := range slot.PreferredFocus {
		if f == *task.Focus {
			return 1.0
		}
	}
	return 0.4
}

// durationFit is 1.0 when the task fits the slot, decaying linearly toward
// zero as the overflow approaches a full slot length.
func durationFit(task *domain.Task, slot TimeSlot) float64 {
	taskMin := task.EffectiveEstimatedMin()
	slotMin := slot.Minutes()
	if taskMin <= slotMin {
		return 1.0
	}
	fit := 1.0 - float64(taskMin-slotMin)/float64(slotMin)
	if fit < 0 {
		return 0
	}
	return fit
}

// AssignSlots greedily matches tasks, highest score first, to the best
// remaining slot. Ties keep the earliest slot. A task with no free slot is
// simply left out; the assembler reports it as unscheduled.
func AssignSlots(scored []ScoredTask, slots []TimeSlot) []Assignment {
	used := make([]bool, len(slots))
	var assignments []Assignment

	for _, st := range scored {
		bestIdx := -1
		bestScore := 0.0
		var bestEnergy, bestFocus, bestDuration float64

		for i, slot := range slots {
			if used[i] {
				continue
			}
			e := energyMatch(st.Task, slot)
			f := focusMatch(st.Task, slot)
			d := durationFit(st.Task, slot)
			combined := weightEnergy*e + weightFocus*f + weightDuration*d
			if bestIdx == -1 || combined > bestScore {
				bestIdx = i
				bestScore = combined
				bestEnergy, bestFocus, bestDuration = e, f, d
			}
		}
		if bestIdx == -1 {
			continue
		}

		used[bestIdx] = true
		slot := slots[bestIdx]
		assignments = append(assignments, Assignment{
			Task:        st.Task,
			Slot:        slot,
			EnergyMatch: bestEnergy,
			FocusMatch:  bestFocus,
			DurationFit: bestDuration,
			Reasoning:   buildReasoning(st.Task, slot, bestEnergy, bestFocus),
		})
	}
	return assignments
}

func buildReasoning(task *domain.Task, slot TimeSlot, energy, focus float64) string {
	var parts []string
	if energy > 0.8 {
		parts = append(parts, fmt.Sprintf("energy level matches (%s)", slot.Energy))
	}
	if focus > 0.8 && task.Focus != nil {
		parts = append(parts, fmt.Sprintf("focus type aligns (%s)", *task.Focus))
	}
	if task.HardDeadline != nil {
		parts = append(parts, "deadline consideration")
	}
	if task.Priority != nil && *task.Priority > 3 {
		parts = append(parts, "high priority")
	}
	if len(parts) == 0 {
		return "Best available slot"
	}
	return strings.Join(parts, ", ")
}
