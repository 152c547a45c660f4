package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/focusday/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	SetStatus(ctx context.Context, id string, status domain.TaskStatus) error
	Delete(ctx context.Context, id string) error
}

type DependencyRepo interface {
	Create(ctx context.Context, d *domain.Dependency) error
	Delete(ctx context.Context, taskID, dependsOnTaskID string) error
	ListAll(ctx context.Context) ([]domain.Dependency, error)
	ListPrerequisites(ctx context.Context, taskID string) ([]domain.Dependency, error)
	ListDependents(ctx context.Context, taskID string) ([]domain.Dependency, error)
}

type PrefsRepo interface {
	GetOrCreate(ctx context.Context) (*domain.SchedulingPrefs, error)
	Upsert(ctx context.Context, p *domain.SchedulingPrefs) error
}
