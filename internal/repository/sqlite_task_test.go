package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alexanderramin/focusday/internal/domain"
	"github.com/alexanderramin/focusday/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGet_RoundTrip(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	deadline := time.Date(2026, 3, 6, 17, 0, 0, 0, time.UTC)
	task := testutil.NewTestTask("Write report",
		testutil.WithPriority(4),
		testutil.WithEnergy(domain.EnergyHigh),
		testutil.WithFocus(domain.FocusCreative),
		testutil.WithEstimatedMin(60),
		testutil.WithHardDeadline(deadline),
		testutil.WithDescription("quarterly summary"),
	)
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)

	assert.Equal(t, task.ID, got.ID)
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "quarterly summary", got.Description)
	assert.Equal(t, domain.TaskPending, got.Status)
	require.NotNil(t, got.Priority)
	assert.Equal(t, 4, *got.Priority)
	require.NotNil(t, got.Energy)
	assert.Equal(t, domain.EnergyHigh, *got.Energy)
	require.NotNil(t, got.Focus)
	assert.Equal(t, domain.FocusCreative, *got.Focus)
	assert.Equal(t, 60, got.EstimatedMin)
	require.NotNil(t, got.HardDeadline)
	assert.True(t, got.HardDeadline.Equal(deadline))
}

func TestTaskRepo_Get_PreservesNilOptionalFields(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Bare task")
	require.NoError(t, repo.Create(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Priority)
	assert.Nil(t, got.Energy)
	assert.Nil(t, got.Focus)
	assert.Nil(t, got.HardDeadline)
}

func TestTaskRepo_Get_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_List_OrdersByCreation(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		task := testutil.NewTestTask(title)
		task.CreatedAt = base.Add(time.Duration(i) * time.Minute)
		task.UpdatedAt = task.CreatedAt
		require.NoError(t, repo.Create(ctx, task))
	}

	tasks, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
	assert.Equal(t, "third", tasks[2].Title)
}

func TestTaskRepo_ListByStatus_Filters(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("open one")))
	require.NoError(t, repo.Create(ctx, testutil.NewTestTask("done one", testutil.WithStatus(domain.TaskDone))))

	pending, err := repo.ListByStatus(ctx, domain.TaskPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "open one", pending[0].Title)
}

func TestTaskRepo_Update_PersistsChanges(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Draft", testutil.WithPriority(2))
	require.NoError(t, repo.Create(ctx, task))

	task.Title = "Final draft"
	task.Priority = nil
	energy := domain.EnergyLow
	task.Energy = &energy
	task.UpdatedAt = task.UpdatedAt.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, task))

	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Final draft", got.Title)
	assert.Nil(t, got.Priority)
	require.NotNil(t, got.Energy)
	assert.Equal(t, domain.EnergyLow, *got.Energy)
}

func TestTaskRepo_SetStatus(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Transition")
	require.NoError(t, repo.Create(ctx, task))

	require.NoError(t, repo.SetStatus(ctx, task.ID, domain.TaskInProgress))
	got, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskInProgress, got.Status)
}

func TestTaskRepo_SetStatus_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)

	err := repo.SetStatus(context.Background(), "missing", domain.TaskDone)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTaskRepo_Delete(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Gone soon")
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.Delete(ctx, task.ID))

	_, err := repo.GetByID(ctx, task.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
