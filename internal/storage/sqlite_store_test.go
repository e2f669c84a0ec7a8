package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/PixelDavon/SmartReminder/internal/model"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "smartreminder.db")
	store, err := OpenSQLite(path, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadWithoutSnapshot(t *testing.T) {
	store := openTestStore(t)
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2026, 3, 14, 8, 0, 0, 0, time.UTC)
	in := model.Snapshot{
		Tasks: []model.Task{{
			ID:           "t1",
			Title:        "pay rent",
			DueDate:      "2026-03-20",
			ReminderType: model.ReminderTypePriority,
			Priority:     model.PriorityHigh,
			CreatedAt:    created,
		}},
		Goals: []model.Goal{{
			ID:           "g1",
			Title:        "read books",
			Progress:     3,
			Target:       5,
			Unit:         "books",
			ReminderType: model.ReminderTypeNone,
			Priority:     model.PriorityMedium,
			CreatedAt:    created,
		}},
		Reminders: []model.Reminder{{
			ID:             "r1",
			Title:          "Reminder: pay rent",
			DateTimeISO:    "2026-03-14T09:00:00",
			Repeat:         model.RepeatNone,
			TaskID:         "t1",
			NotificationID: "n-abc",
			Priority:       model.PriorityHigh,
			CreatedAt:      created,
		}},
	}
	require.NoError(t, store.Save(ctx, in))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestSaveOverwritesPreviousSnapshot(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := model.Snapshot{Tasks: []model.Task{{ID: "t1", Title: "one", ReminderType: model.ReminderTypeNone, Priority: model.PriorityMedium, CreatedAt: time.Now().UTC()}}}
	require.NoError(t, store.Save(ctx, first))
	require.NoError(t, store.Save(ctx, model.Snapshot{}))

	out, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, out.Tasks)
	assert.NotNil(t, out.Goals)
}

func TestLoadMalformedPayloadStartsEmpty(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	_, err := store.db.ExecContext(ctx,
		`INSERT INTO snapshots (key, payload, updated_at) VALUES (?, ?, ?)`,
		SnapshotKey, []byte("{not json"), "2026-03-14T00:00:00Z")
	require.NoError(t, err)

	_, err = store.Load(ctx)
	assert.ErrorIs(t, err, ErrNoSnapshot)
}

func TestMigrateDown(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, MigrateDown(store.db))
	_, err := store.Load(context.Background())
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSnapshot)
}
