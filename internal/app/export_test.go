package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixelDavon/SmartReminder/internal/model"
)

func TestExportImportRoundTrip(t *testing.T) {
	a, _, _ := newTestApp(t)

	_, err := a.AddTask(TaskInput{Title: "keep me"})
	require.NoError(t, err)
	_, err = a.AddGoal(GoalInput{Title: "progress", Target: 10})
	require.NoError(t, err)
	blob, err := a.Export()
	require.NoError(t, err)

	b, _, _ := newTestApp(t)
	require.NoError(t, b.Import(context.Background(), blob))

	require.Len(t, b.Tasks(), 1)
	assert.Equal(t, "keep me", b.Tasks()[0].Title)
	require.Len(t, b.Goals(), 1)
	assert.Equal(t, 10, b.Goals()[0].Target)
}

func TestImportInvalidPayloadLeavesStateUntouched(t *testing.T) {
	a, _, _ := newTestApp(t)

	task, err := a.AddTask(TaskInput{Title: "survivor"})
	require.NoError(t, err)

	require.Error(t, a.Import(context.Background(), []byte("{not json")))

	require.Len(t, a.Tasks(), 1)
	assert.Equal(t, task.ID, a.Tasks()[0].ID)
}

func TestImportClearsUndoBuffer(t *testing.T) {
	a, _, _ := newTestApp(t)

	goal, err := a.AddGoal(GoalInput{Title: "read", Target: 5})
	require.NoError(t, err)
	_, err = a.UpdateGoalProgress(goal.ID, 1)
	require.NoError(t, err)
	require.True(t, a.CanUndo())

	blob, err := a.Export()
	require.NoError(t, err)
	require.NoError(t, a.Import(context.Background(), blob))

	assert.False(t, a.CanUndo())
	assert.ErrorIs(t, a.UndoLast(), ErrNothingToUndo)
}

func TestImportNormalizesMissingCollections(t *testing.T) {
	a, _, _ := newTestApp(t)
	require.NoError(t, a.Import(context.Background(), []byte(`{"tasks": null}`)))
	assert.NotNil(t, a.Tasks())
	assert.Empty(t, a.Tasks())
	assert.Empty(t, a.Reminders())
}

func TestExportShapeMatchesSnapshot(t *testing.T) {
	a, _, _ := newTestApp(t)
	blob, err := a.Export()
	require.NoError(t, err)

	var snap model.Snapshot
	require.NoError(t, json.Unmarshal(blob, &snap))
	assert.NotNil(t, snap.Tasks)
}
