package contract

import (
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
)

// CreateTaskRequest carries the fields for a new task. Optional fields stay
// nil when the caller leaves them unset.
type CreateTaskRequest struct {
	Title        string
	Description  string
	Priority     *int
	Energy       *domain.EnergyLevel
	Focus        *domain.FocusType
	EstimatedMin int
	HardDeadline *time.Time
}

// UpdateTaskRequest carries a partial update; nil pointers leave the stored
// value unchanged, while ClearPriority and friends reset a field to unset.
type UpdateTaskRequest struct {
	ID            string
	Title         *string
	Description   *string
	Priority      *int
	ClearPriority bool
	Energy        *domain.EnergyLevel
	ClearEnergy   bool
	Focus         *domain.FocusType
	ClearFocus    bool
	EstimatedMin  *int
	HardDeadline  *time.Time
	ClearDeadline bool
}

type TaskErrorCode string

const (
	TaskErrNotFound        TaskErrorCode = "TASK_NOT_FOUND"
	TaskErrInvalidTitle    TaskErrorCode = "INVALID_TITLE"
	TaskErrInvalidPriority TaskErrorCode = "INVALID_PRIORITY"
	TaskErrInvalidStatus   TaskErrorCode = "INVALID_STATUS"
	TaskErrSelfDependency  TaskErrorCode = "SELF_DEPENDENCY"
	TaskErrDependencyCycle TaskErrorCode = "DEPENDENCY_CYCLE"
	TaskErrDuplicateEdge   TaskErrorCode = "DUPLICATE_DEPENDENCY"
	TaskErrInternal        TaskErrorCode = "INTERNAL_ERROR"
)

type TaskError struct {
	Code    TaskErrorCode
	Message string
}

func (e *TaskError) Error() string {
	return string(e.Code) + ": " + e.Message
}
