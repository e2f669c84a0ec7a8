// Package storage persists the full application snapshot. The rest of the
// app treats it as an opaque load/save pair: the in-memory state stays
// authoritative and save failures are logged, never surfaced.
package storage

import (
	"context"
	"errors"

	"github.com/PixelDavon/SmartReminder/internal/model"
)

// ErrNoSnapshot reports that no usable snapshot exists; the caller starts
// with empty collections.
var ErrNoSnapshot = errors.New("storage: no snapshot")

// SnapshotKey is versioned so a future layout change can live alongside old
// rows instead of rewriting them in place.
const SnapshotKey = "smartreminder:v1"

type Store interface {
	Load(ctx context.Context) (model.Snapshot, error)
	Save(ctx context.Context, snap model.Snapshot) error
}
