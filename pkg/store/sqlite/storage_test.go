package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := NewDB(Settings{
		DbPath: dbPath,
	})
	require.NoError(t, err)
	require.NotNil(t, db)

	defer func() {
		err := db.Close()
		if err != nil {
			t.Errorf("failed to close database connection: %v", err)
		}
	}()

	_, err = db.Exec(
		`INSERT INTO opportunities (id, name, stage, created_at) VALUES (?, ?, ?, ?)`,
		"opp-001", "Acme", "NEW", "2024-01-01T00:00:00Z",
	)
	require.NoError(t, err)

	var count int
	err = db.QueryRow("SELECT COUNT(*) FROM opportunities WHERE id = ?", "opp-001").Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewDB_MissingPath(t *testing.T) {
	_, err := NewDB(Settings{})
	assert.Error(t, err)
}

func TestInTransaction(t *testing.T) {
	db, err := NewDB(Settings{DbPath: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	insert := func(ctx context.Context, id string) error {
		_, err := GetTransaction(ctx).ExecContext(ctx,
			`INSERT INTO opportunities (id, name, stage, created_at) VALUES (?, 'x', 'NEW', '2024-01-01')`, id)
		return err
	}

	t.Run("commit", func(t *testing.T) {
		err := InTransaction(context.Background(), db, func(ctx context.Context) error {
			require.NotNil(t, GetTransaction(ctx))
			return insert(ctx, "committed")
		})
		require.NoError(t, err)
	})

	t.Run("rollback", func(t *testing.T) {
		boom := errors.New("boom")
		err := InTransaction(context.Background(), db, func(ctx context.Context) error {
			require.NoError(t, insert(ctx, "rolled-back"))
			return boom
		})
		assert.ErrorIs(t, err, boom)
	})

	var ids []string
	rows, err := db.Query("SELECT id FROM opportunities ORDER BY id")
	require.NoError(t, err)
	defer rows.Close()
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"committed"}, ids)
}

func TestGetTransaction_Empty(t *testing.T) {
	assert.Nil(t, GetTransaction(context.Background()))
}
