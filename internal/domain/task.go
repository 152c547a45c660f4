package domain

import "time"

// DefaultEstimatedMin is assumed when a task has no duration estimate.
const DefaultEstimatedMin = 30

type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus

	// Scheduling attributes; nil means the user never set one.
	Priority     *int // 1-5
	Energy       *EnergyLevel
	Focus        *FocusType
	EstimatedMin int // 0 means unset
	HardDeadline *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EffectiveEstimatedMin returns the task's estimate, or the default when unset.
func (t *Task) EffectiveEstimatedMin() int {
	if t.EstimatedMin <= 0 {
		return DefaultEstimatedMin
	}
	return t.EstimatedMin
}

// Open reports whether the task still needs scheduling consideration.
// Blocked tasks are excluded from planning until unblocked by the user.
func (t *Task) Open() bool {
	return t.Status == TaskPending || t.Status == TaskInProgress
}

// Dependency is a directed edge from a task to one of its prerequisites.
type Dependency struct {
	TaskID          string
	DependsOnTaskID string
}
