package service

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/alexanderramin/focusday/internal/db"
	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/alexanderramin/focusday/internal/planner"
	"github.com/alexanderramin/focusday/internal/repository"
	"github.com/google/uuid"
)

type taskService struct {
	tasks    repository.TaskRepo
	deps     repository.DependencyRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewTaskService(
	tasks repository.TaskRepo,
	deps repository.DependencyRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) TaskService {
	return &taskService{
		tasks:    tasks,
		deps:     deps,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *taskService) Create(ctx context.Context, req contract.CreateTaskRequest) (*domain.Task, error) {
	if req.Title == "" {
		return nil, &contract.TaskError{Code: contract.TaskErrInvalidTitle, Message: "title must not be empty"}
	}
	if err := validatePriority(req.Priority); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		ID:           uuid.New().String(),
		Title:        req.Title,
		Description:  req.Description,
		Status:       domain.TaskPending,
		Priority:     req.Priority,
		Energy:       req.Energy,
		Focus:        req.Focus,
		EstimatedMin: req.EstimatedMin,
		HardDeadline: req.HardDeadline,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, id)
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) Update(ctx context.Context, req contract.UpdateTaskRequest) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, req.ID)
	if err != nil {
		return nil, mapNotFound(err, req.ID)
	}

	if req.Title != nil {
		if *req.Title == "" {
			return nil, &contract.TaskError{Code: contract.TaskErrInvalidTitle, Message: "title must not be empty"}
		}
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.ClearPriority {
		task.Priority = nil
	} else if req.Priority != nil {
		if err := validatePriority(req.Priority); err != nil {
			return nil, err
		}
		task.Priority = req.Priority
	}
	if req.ClearEnergy {
		task.Energy = nil
	} else if req.Energy != nil {
		task.Energy = req.Energy
	}
	if req.ClearFocus {
		task.Focus = nil
	} else if req.Focus != nil {
		task.Focus = req.Focus
	}
	if req.EstimatedMin != nil {
		task.EstimatedMin = *req.EstimatedMin
	}
	if req.ClearDeadline {
		task.HardDeadline = nil
	} else if req.HardDeadline != nil {
		task.HardDeadline = req.HardDeadline
	}

	task.UpdatedAt = time.Now().UTC()
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) MarkDone(ctx context.Context, id string) error {
	return s.SetStatus(ctx, id, domain.TaskDone)
}

func (s *taskService) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	if _, err := domain.ParseTaskStatus(string(status)); err != nil {
		return &contract.TaskError{Code: contract.TaskErrInvalidStatus, Message: err.Error()}
	}
	if err := s.tasks.SetStatus(ctx, id, status); err != nil {
		return mapNotFound(err, id)
	}
	return nil
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	if _, err := s.tasks.GetByID(ctx, id); err != nil {
		return mapNotFound(err, id)
	}
	// Dependency edges cascade with the task row.
	return s.tasks.Delete(ctx, id)
}

// AddDependency inserts a task->prerequisite edge. The existence checks, the
// cycle check, and the insert run in one transaction so a concurrent edit
// cannot slip a cycle into the store between check and insert.
func (s *taskService) AddDependency(ctx context.Context, taskID, dependsOnTaskID string) error {
	if taskID == dependsOnTaskID {
		return &contract.TaskError{Code: contract.TaskErrSelfDependency, Message: "a task cannot depend on itself"}
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTasks := repository.NewSQLiteTaskRepo(tx)
		txDeps := repository.NewSQLiteDependencyRepo(tx)

		for _, id := range []string{taskID, dependsOnTaskID} {
			if _, err := txTasks.GetByID(ctx, id); err != nil {
				return mapNotFound(err, id)
			}
		}

		edges, err := txDeps.ListAll(ctx)
		if err != nil {
			return err
		}
		for _, e := range edges {
			if e.TaskID == taskID && e.DependsOnTaskID == dependsOnTaskID {
				return &contract.TaskError{Code: contract.TaskErrDuplicateEdge, Message: "dependency already exists"}
			}
		}

		tasks, err := txTasks.List(ctx)
		if err != nil {
			return err
		}
		candidate := append(edges, domain.Dependency{TaskID: taskID, DependsOnTaskID: dependsOnTaskID})
		if _, err := planner.Resolve(tasks, candidate); err != nil {
			var cycleErr *planner.CircularDependencyError
			if errors.As(err, &cycleErr) {
				return &contract.TaskError{Code: contract.TaskErrDependencyCycle, Message: cycleErr.Error()}
			}
			return err
		}

		return txDeps.Create(ctx, &domain.Dependency{TaskID: taskID, DependsOnTaskID: dependsOnTaskID})
	})
}

func (s *taskService) RemoveDependency(ctx context.Context, taskID, dependsOnTaskID string) error {
	return s.deps.Delete(ctx, taskID, dependsOnTaskID)
}

func (s *taskService) ListDependencies(ctx context.Context) ([]domain.Dependency, error) {
	return s.deps.ListAll(ctx)
}

func validatePriority(p *int) error {
	if p != nil && (*p < 1 || *p > 5) {
		return &contract.TaskError{Code: contract.TaskErrInvalidPriority, Message: "priority must be between 1 and 5"}
	}
	return nil
}

func mapNotFound(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &contract.TaskError{Code: contract.TaskErrNotFound, Message: "no task with id " + id}
	}
	return err
}
