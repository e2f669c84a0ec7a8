package app

import (
	"errors"

	"github.com/PixelDavon/SmartReminder/internal/model"
)

var ErrNothingToUndo = errors.New("app: nothing to undo")

type undoKind int

const (
	undoDelete undoKind = iota
	undoProgress
)

// undoEntry is the single-slot reversible operation: either a delete (parent
// snapshot plus cascaded reminder snapshots) or a goal progress change.
// Last write wins; undo consumes the slot.
type undoEntry struct {
	kind      undoKind
	task      *model.Task
	goal      *model.Goal
	reminders []model.Reminder
	goalID    string
	before    int
	after     int
}

// CanUndo reports whether an operation is pending in the buffer.
func (a *App) CanUndo() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.undo != nil
}

// UndoLast reverses the most recent recorded operation and clears the
// buffer. Restored reminders are re-registered with the gateway best-effort:
// their old registrations were cancelled at delete time, and a scheduling
// failure still re-inserts the record with no live registration.
func (a *App) UndoLast() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	entry := a.undo
	if entry == nil {
		return ErrNothingToUndo
	}
	a.undo = nil

	switch entry.kind {
	case undoDelete:
		if entry.task != nil {
			a.tasks = append([]model.Task{*entry.task}, a.tasks...)
		}
		if entry.goal != nil {
			a.goals = append([]model.Goal{*entry.goal}, a.goals...)
		}
		for _, r := range entry.reminders {
			r.NotificationID = a.scheduleRegistration(notificationFor(r))
			a.reminders = append([]model.Reminder{r}, a.reminders...)
		}
	case undoProgress:
		idx := a.findGoalLocked(entry.goalID)
		if idx < 0 {
			return ErrNotFound
		}
		updated := make([]model.Goal, len(a.goals))
		copy(updated, a.goals)
		updated[idx].Progress = entry.before
		a.goals = updated
	}

	a.persistLocked()
	return nil
}
