package storage

import (
	"context"
	"sync"

	"github.com/PixelDavon/SmartReminder/internal/model"
)

// MemoryStore is an in-process Store used by tests and as a fallback when no
// database path is configured.
type MemoryStore struct {
	mu   sync.Mutex
	snap model.Snapshot
	set  bool

	// Fail, when non-nil, is returned by Save. Lets tests exercise the
	// fire-and-forget persistence path.
	Fail error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(_ context.Context) (model.Snapshot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return model.Snapshot{}, ErrNoSnapshot
	}
	return m.snap, nil
}

func (m *MemoryStore) Save(_ context.Context, snap model.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	snap.Normalize()
	m.snap = snap
	m.set = true
	return nil
}
