// Package app owns the in-memory state: tasks, goals and reminders, the
// reconciliation of reminders against their parents, and the single-slot undo
// buffer. All mutating operations run under one mutex; in-memory state is the
// source of truth and the storage collaborator is a best-effort durability
// layer behind it.
package app

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/PixelDavon/SmartReminder/internal/model"
	"github.com/PixelDavon/SmartReminder/internal/notify"
	"github.com/PixelDavon/SmartReminder/internal/policy"
	"github.com/PixelDavon/SmartReminder/internal/storage"
)

var ErrNotFound = errors.New("app: not found")

type App struct {
	mu        sync.Mutex
	tasks     []model.Task
	goals     []model.Goal
	reminders []model.Reminder
	undo      *undoEntry

	store   storage.Store
	gateway notify.Gateway
	policy  policy.Policy
	log     *zap.Logger
	now     func() time.Time
	newID   func() string

	saves     sync.WaitGroup
	pending   model.Snapshot
	saveDirty bool
	saving    bool
}

type Option func(*App)

func WithLogger(log *zap.Logger) Option {
	return func(a *App) { a.log = log }
}

func WithPolicy(p policy.Policy) Option {
	return func(a *App) { a.policy = p }
}

// WithClock replaces the wall clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithIDGenerator replaces identity minting, for tests.
func WithIDGenerator(gen func() string) Option {
	return func(a *App) { a.newID = gen }
}

// New constructs the app context and loads the last persisted snapshot.
// A missing snapshot starts the collections empty.
func New(ctx context.Context, store storage.Store, gateway notify.Gateway, opts ...Option) (*App, error) {
	a := &App{
		store:   store,
		gateway: gateway,
		policy:  policy.Default(),
		log:     zap.NewNop(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}

	snap, err := store.Load(ctx)
	if err != nil {
		if !errors.Is(err, storage.ErrNoSnapshot) {
			return nil, err
		}
		snap = model.Snapshot{}
	}
	snap.Normalize()
	a.tasks = snap.Tasks
	a.goals = snap.Goals
	a.reminders = snap.Reminders
	return a, nil
}

// Close waits for in-flight detached saves and writes a final snapshot.
func (a *App) Close(ctx context.Context) error {
	a.saves.Wait()
	a.mu.Lock()
	snap := a.snapshotLocked()
	a.mu.Unlock()
	return a.store.Save(ctx, snap)
}

func (a *App) Tasks() []model.Task {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Task, len(a.tasks))
	copy(out, a.tasks)
	return out
}

func (a *App) Goals() []model.Goal {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Goal, len(a.goals))
	copy(out, a.goals)
	return out
}

func (a *App) Reminders() []model.Reminder {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]model.Reminder, len(a.reminders))
	copy(out, a.reminders)
	return out
}

func (a *App) snapshotLocked() model.Snapshot {
	snap := model.Snapshot{
		Tasks:     make([]model.Task, len(a.tasks)),
		Goals:     make([]model.Goal, len(a.goals)),
		Reminders: make([]model.Reminder, len(a.reminders)),
	}
	copy(snap.Tasks, a.tasks)
	copy(snap.Goals, a.goals)
	copy(snap.Reminders, a.reminders)
	return snap
}

// persistLocked hands the current state to a single detached writer.
// Failures are logged and never surfaced: the user-visible operation has
// already succeeded against the in-memory state. One writer drains a
// coalesced pending snapshot, so saves land in mutation order and the last
// write always wins.
func (a *App) persistLocked() {
	a.pending = a.snapshotLocked()
	a.saveDirty = true
	if a.saving {
		return
	}
	a.saving = true
	a.saves.Add(1)
	go a.drainSaves()
}

func (a *App) drainSaves() {
	defer a.saves.Done()
	for {
		a.mu.Lock()
		if !a.saveDirty {
			a.saving = false
			a.mu.Unlock()
			return
		}
		snap := a.pending
		a.saveDirty = false
		a.mu.Unlock()

		if err := a.store.Save(context.Background(), snap); err != nil {
			a.log.Error("snapshot save failed", zap.Error(err))
		}
	}
}

// cancelRegistration is the absorb-at-the-boundary wrapper for gateway
// cancels. Registrations are never left dangling silently, but a cancel
// failure is not fatal either.
func (a *App) cancelRegistration(id string) {
	if id == "" {
		return
	}
	if err := a.gateway.Cancel(context.Background(), id); err != nil {
		a.log.Warn("cancel registration failed", zap.String("notification_id", id), zap.Error(err))
	}
}

// scheduleRegistration asks the gateway for a registration and absorbs
// failure into an empty id: logically scheduled, no live registration.
func (a *App) scheduleRegistration(n notify.Notification) string {
	id, err := a.gateway.Schedule(context.Background(), n)
	if err != nil {
		a.log.Warn("schedule registration failed", zap.String("title", n.Title), zap.Error(err))
		return ""
	}
	return id
}
