package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/focusday/internal/db"
	"github.com/alexanderramin/focusday/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, title, description, status, priority, energy, focus,
		estimated_min, hard_deadline, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(conn db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: conn}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, title, description, status, priority, energy, focus,
		estimated_min, hard_deadline, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.Title,
		t.Description,
		string(t.Status),
		nullableIntToValue(t.Priority),
		nullableEnergyToValue(t.Energy),
		nullableFocusToValue(t.Focus),
		t.EstimatedMin,
		nullableTimeToString(t.HardDeadline, time.RFC3339),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) List(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE status = ? ORDER BY created_at, id`
	rows, err := r.db.QueryContext(ctx, query, string(status))
	if err != nil {
		return nil, fmt.Errorf("listing tasks by status: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, status = ?, priority = ?,
		energy = ?, focus = ?, estimated_min = ?, hard_deadline = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		string(t.Status),
		nullableIntToValue(t.Priority),
		nullableEnergyToValue(t.Energy),
		nullableFocusToValue(t.Focus),
		t.EstimatedMin,
		nullableTimeToString(t.HardDeadline, time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) SetStatus(ctx context.Context, id string, status domain.TaskStatus) error {
	query := `UPDATE tasks SET status = ?, updated_at = ? WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("setting task status: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("setting task status: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("task: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM tasks WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return nil
}

// scanTask scans a single task from a *sql.Row.
func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var statusStr string
	var priority sql.NullInt64
	var energyStr, focusStr, deadlineStr sql.NullString
	var createdAtStr, updatedAtStr string

	err := row.Scan(
		&t.ID, &t.Title, &t.Description, &statusStr, &priority, &energyStr, &focusStr,
		&t.EstimatedMin, &deadlineStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("task: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}

	return r.populateTask(&t, statusStr, priority, energyStr, focusStr, deadlineStr, createdAtStr, updatedAtStr)
}

// scanTasks scans multiple tasks from *sql.Rows.
func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var statusStr string
		var priority sql.NullInt64
		var energyStr, focusStr, deadlineStr sql.NullString
		var createdAtStr, updatedAtStr string

		err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &statusStr, &priority, &energyStr, &focusStr,
			&t.EstimatedMin, &deadlineStr, &createdAtStr, &updatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}

		task, err := r.populateTask(&t, statusStr, priority, energyStr, focusStr, deadlineStr, createdAtStr, updatedAtStr)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// populateTask fills in parsed fields on a Task after scanning raw values.
func (r *SQLiteTaskRepo) populateTask(
	t *domain.Task,
	statusStr string,
	priority sql.NullInt64,
	energyStr, focusStr, deadlineStr sql.NullString,
	createdAtStr, updatedAtStr string,
) (*domain.Task, error) {
	t.Status = domain.TaskStatus(statusStr)
	t.Priority = nullableIntFromScan(priority)
	if energyStr.Valid && energyStr.String != "" {
		e := domain.EnergyLevel(energyStr.String)
		t.Energy = &e
	}
	if focusStr.Valid && focusStr.String != "" {
		f := domain.FocusType(focusStr.String)
		t.Focus = &f
	}
	t.HardDeadline = parseNullableTime(deadlineStr, time.RFC3339)

	var parseErr error
	t.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	t.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}

	return t, nil
}

// nullableEnergyToValue converts a *domain.EnergyLevel for SQLite storage.
func nullableEnergyToValue(e *domain.EnergyLevel) interface{} {
	if e == nil {
		return nil
	}
	return string(*e)
}

// nullableFocusToValue converts a *domain.FocusType for SQLite storage.
func nullableFocusToValue(f *domain.FocusType) interface{} {
	if f == nil {
		return nil
	}
	return string(*f)
}
