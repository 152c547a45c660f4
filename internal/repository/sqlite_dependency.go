package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/alexanderramin/focusday/internal/db"
	"github.com/alexanderramin/focusday/internal/domain"
)

// SQLiteDependencyRepo implements DependencyRepo using a SQLite database.
type SQLiteDependencyRepo struct {
	db db.DBTX
}

// NewSQLiteDependencyRepo creates a new SQLiteDependencyRepo.
func NewSQLiteDependencyRepo(conn db.DBTX) *SQLiteDependencyRepo {
	return &SQLiteDependencyRepo{db: conn}
}

func (r *SQLiteDependencyRepo) Create(ctx context.Context, d *domain.Dependency) error {
	query := `INSERT INTO dependencies (task_id, depends_on_task_id) VALUES (?, ?)`
	_, err := r.db.ExecContext(ctx, query, d.TaskID, d.DependsOnTaskID)
	if err != nil {
		return fmt.Errorf("inserting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) Delete(ctx context.Context, taskID, dependsOnTaskID string) error {
	query := `DELETE FROM dependencies WHERE task_id = ? AND depends_on_task_id = ?`
	_, err := r.db.ExecContext(ctx, query, taskID, dependsOnTaskID)
	if err != nil {
		return fmt.Errorf("deleting dependency: %w", err)
	}
	return nil
}

func (r *SQLiteDependencyRepo) ListAll(ctx context.Context) ([]domain.Dependency, error) {
	query := `SELECT task_id, depends_on_task_id FROM dependencies ORDER BY task_id, depends_on_task_id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing dependencies: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListPrerequisites(ctx context.Context, taskID string) ([]domain.Dependency, error) {
	query := `SELECT task_id, depends_on_task_id FROM dependencies WHERE task_id = ?`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing prerequisites: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

func (r *SQLiteDependencyRepo) ListDependents(ctx context.Context, taskID string) ([]domain.Dependency, error) {
	query := `SELECT task_id, depends_on_task_id FROM dependencies WHERE depends_on_task_id = ?`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing dependents: %w", err)
	}
	defer rows.Close()
	return r.scanDependencies(rows)
}

// scanDependencies scans multiple dependency rows from *sql.Rows.
func (r *SQLiteDependencyRepo) scanDependencies(rows *sql.Rows) ([]domain.Dependency, error) {
	var deps []domain.Dependency
	for rows.Next() {
		var d domain.Dependency
		if err := rows.Scan(&d.TaskID, &d.DependsOnTaskID); err != nil {
			return nil, fmt.Errorf("scanning dependency: %w", err)
		}
		deps = append(deps, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dependencies: %w", err)
	}
	return deps, nil
}
