package service

import (
	"context"

	"github.com/alexanderramin/focusday/internal/contract"
	"github.com/alexanderramin/focusday/internal/domain"
)

type PlanService interface {
	Generate(ctx context.Context, req contract.PlanRequest) (*contract.PlanResponse, error)
}

type TaskService interface {
	Create(ctx context.Context, req contract.CreateTaskRequest) (*domain.Task, error)
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	Update(ctx context.Context, req contract.UpdateTaskRequest) (*domain.Task, error)
	MarkDone(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
	AddDependency(ctx context.Context, taskID, dependsOnTaskID string) error
	RemoveDependency(ctx context.Context, taskID, dependsOnTaskID string) error
	ListDependencies(ctx context.Context) ([]domain.Dependency, error)
}

type PrefsService interface {
	Get(ctx context.Context) (*domain.SchedulingPrefs, error)
	Update(ctx context.Context, req contract.UpdatePrefsRequest) (*domain.SchedulingPrefs, error)
}
