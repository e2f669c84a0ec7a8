package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/PixelDavon/SmartReminder/internal/model"
	"github.com/PixelDavon/SmartReminder/internal/notify"
	"github.com/PixelDavon/SmartReminder/internal/storage"
)

// fakeGateway records schedule/cancel traffic and tracks which registrations
// are still live.
type fakeGateway struct {
	mu           sync.Mutex
	seq          int
	scheduled    []notify.Notification
	cancelled    []string
	live         map[string]notify.Notification
	failSchedule bool
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{live: make(map[string]notify.Notification)}
}

func (g *fakeGateway) Schedule(_ context.Context, n notify.Notification) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.scheduled = append(g.scheduled, n)
	if g.failSchedule {
		return "", errors.New("gateway down")
	}
	g.seq++
	id := fmt.Sprintf("n-%d", g.seq)
	g.live[id] = n
	return id, nil
}

func (g *fakeGateway) Cancel(_ context.Context, id string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelled = append(g.cancelled, id)
	delete(g.live, id)
	return nil
}

func (g *fakeGateway) liveCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.live)
}

func (g *fakeGateway) cancelledIDs() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]string, len(g.cancelled))
	copy(out, g.cancelled)
	return out
}

func (g *fakeGateway) scheduleCount() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.scheduled)
}

func (g *fakeGateway) lastScheduled() notify.Notification {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.scheduled[len(g.scheduled)-1]
}

// gatedStore records every saved snapshot in completion order. The first
// Save blocks until gate is closed, to force saves to pile up.
type gatedStore struct {
	mu    sync.Mutex
	saved []model.Snapshot
	gate  chan struct{}
	held  bool
}

func (s *gatedStore) Load(_ context.Context) (model.Snapshot, error) {
	return model.Snapshot{}, storage.ErrNoSnapshot
}

func (s *gatedStore) Save(_ context.Context, snap model.Snapshot) error {
	s.mu.Lock()
	first := !s.held
	s.held = true
	s.mu.Unlock()
	if first && s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, snap)
	return nil
}

func (s *gatedStore) snapshots() []model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Snapshot, len(s.saved))
	copy(out, s.saved)
	return out
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sequentialIDs(prefix string) func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}
