package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/PixelDavon/SmartReminder/internal/model"
)

// Export serializes the current snapshot for backup.
func (a *App) Export() ([]byte, error) {
	a.mu.Lock()
	snap := a.snapshotLocked()
	a.mu.Unlock()
	return json.MarshalIndent(snap, "", "  ")
}

// Import replaces the full state with a previously exported blob. An invalid
// payload or a failed save leaves the current state untouched; on success the
// payload is persisted first and the collections reloaded from it.
func (a *App) Import(ctx context.Context, blob []byte) error {
	var snap model.Snapshot
	if err := json.Unmarshal(blob, &snap); err != nil {
		return fmt.Errorf("app: invalid import payload: %w", err)
	}
	snap.Normalize()

	if err := a.store.Save(ctx, snap); err != nil {
		return fmt.Errorf("app: import save failed: %w", err)
	}
	loaded, err := a.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("app: reload after import failed: %w", err)
	}

	a.mu.Lock()
	a.tasks = loaded.Tasks
	a.goals = loaded.Goals
	a.reminders = loaded.Reminders
	a.undo = nil
	a.mu.Unlock()
	return nil
}
