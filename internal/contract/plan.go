package contract

import (
	"time"
)

// PlanRequest asks for a daily plan for a single local day.
type PlanRequest struct {
	Date       time.Time
	Now        *time.Time
	CalendarID string
}

// NewPlanRequest creates a PlanRequest with defaults for the given date.
func NewPlanRequest(date time.Time) PlanRequest {
	return PlanRequest{
		Date:       date,
		CalendarID: "primary",
	}
}

// ScheduledBlock is one task placed into a concrete time window.
type ScheduledBlock struct {
	TaskID       string
	Title        string
	Start        time.Time
	End          time.Time
	EstimatedMin int
	Energy       string
	Focus        string
	EnergyMatch  float64
	FocusMatch   float64
	DurationFit  float64
	Reasoning    string
}

// UnscheduledTask is a ready task that could not be placed into any slot.
type UnscheduledTask struct {
	TaskID       string
	Title        string
	Score        float64
	EstimatedMin int
}

// PlanResponse is the assembled daily plan. It is never persisted; each
// request recomputes from scratch.
type PlanResponse struct {
	GeneratedAt        time.Time
	Date               time.Time
	Blocks             []ScheduledBlock
	Unscheduled        []UnscheduledTask
	TotalEstimatedMin  int
	EnergyOptimization float64
	FocusOptimization  float64
	DeadlineRisk       float64
	CalendarDegraded   bool
	Warnings           []string
}

type PlanErrorCode string

const (
	PlanErrCircularDependency PlanErrorCode = "CIRCULAR_DEPENDENCY"
	PlanErrInvalidDate        PlanErrorCode = "INVALID_DATE"
	PlanErrInternal           PlanErrorCode = "INTERNAL_ERROR"
)

type PlanError struct {
	Code    PlanErrorCode
	Message string
}

func (e *PlanError) Error() string {
	return string(e.Code) + ": " + e.Message
}
