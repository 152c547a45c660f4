package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, table := range []string{"tasks", "dependencies", "scheduling_prefs"} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	assert.NoError(t, Migrate(database), "re-running migrations must be safe")
}

func TestSchema_RejectsInvalidStatus(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO tasks (id, title, status, created_at, updated_at)
		VALUES ('t1', 'Task', 'paused', '2026-03-02T00:00:00Z', '2026-03-02T00:00:00Z')`)
	assert.Error(t, err, "status CHECK constraint should reject unknown values")
}

func TestSchema_RejectsSelfDependency(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(`INSERT INTO tasks (id, title, created_at, updated_at)
		VALUES ('t1', 'Task', '2026-03-02T00:00:00Z', '2026-03-02T00:00:00Z')`)
	require.NoError(t, err)

	_, err = database.Exec(`INSERT INTO dependencies (task_id, depends_on_task_id) VALUES ('t1', 't1')`)
	assert.Error(t, err)
}

func TestSchema_CascadesDependencyDeletes(t *testing.T) {
	database, err := OpenDB(":memory:")
	require.NoError(t, err)
	defer database.Close()

	for _, id := range []string{"a", "b"} {
		_, err = database.Exec(`INSERT INTO tasks (id, title, created_at, updated_at)
			VALUES (?, 'Task', '2026-03-02T00:00:00Z', '2026-03-02T00:00:00Z')`, id)
		require.NoError(t, err)
	}
	_, err = database.Exec(`INSERT INTO dependencies (task_id, depends_on_task_id) VALUES ('a', 'b')`)
	require.NoError(t, err)

	_, err = database.Exec(`DELETE FROM tasks WHERE id = 'b'`)
	require.NoError(t, err)

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM dependencies`).Scan(&count))
	assert.Zero(t, count, "deleting a task removes its edges")
}
