package app

import (
	"github.com/PixelDavon/SmartReminder/internal/model"
	"github.com/PixelDavon/SmartReminder/internal/policy"
)

// ReminderInput is a free-standing reminder add. The instant is passed to
// the gateway as given; unlike task and goal reminder times it is not
// checked against the clock, so a past instant is still scheduled.
type ReminderInput struct {
	Title       string
	Message     string
	DateTimeISO string
	Repeat      model.RepeatRule
	TaskID      string
	GoalID      string
	Note        string
}

func (a *App) AddReminder(in ReminderInput) (model.Reminder, error) {
	if in.Repeat == "" {
		in.Repeat = model.RepeatNone
	}
	if err := policy.ValidateReminderInput(in.Title, in.DateTimeISO); err != nil {
		return model.Reminder{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	reminder := model.Reminder{
		ID:          a.newID(),
		Title:       in.Title,
		Message:     in.Message,
		DateTimeISO: in.DateTimeISO,
		Repeat:      in.Repeat,
		TaskID:      in.TaskID,
		GoalID:      in.GoalID,
		Note:        in.Note,
		Priority:    a.parentPriorityLocked(in.TaskID, in.GoalID),
		CreatedAt:   a.now(),
	}

	// A parent holds at most one reminder: an add against a linked task or
	// goal replaces the existing one, cancelling before rescheduling and
	// keeping the prior identity.
	priorIdx := a.findReminderForParentLocked(in.TaskID, in.GoalID)
	if priorIdx >= 0 {
		prior := a.reminders[priorIdx]
		a.cancelRegistration(prior.NotificationID)
		reminder.ID = prior.ID
		reminder.Interacted = prior.Interacted
		reminder.CreatedAt = prior.CreatedAt
	}

	reminder.NotificationID = a.scheduleRegistration(notificationFor(reminder))

	if priorIdx >= 0 {
		updated := make([]model.Reminder, len(a.reminders))
		copy(updated, a.reminders)
		updated[priorIdx] = reminder
		a.reminders = updated
	} else {
		a.reminders = append([]model.Reminder{reminder}, a.reminders...)
	}
	a.persistLocked()
	return reminder, nil
}

// RemoveReminder cancels the registration, removes the record and records an
// undo entry with the reminder snapshot.
func (a *App) RemoveReminder(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := -1
	for i, r := range a.reminders {
		if r.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	removed := a.reminders[idx]
	a.cancelRegistration(removed.NotificationID)
	a.reminders = append(a.reminders[:idx:idx], a.reminders[idx+1:]...)

	a.undo = &undoEntry{kind: undoDelete, reminders: []model.Reminder{removed}}
	a.persistLocked()
	return nil
}

// parentPriorityLocked inherits the display priority from a linked parent,
// defaulting to medium for free-standing reminders.
func (a *App) parentPriorityLocked(taskID, goalID string) model.Priority {
	if taskID != "" {
		if idx := a.findTaskLocked(taskID); idx >= 0 {
			return a.tasks[idx].Priority
		}
	}
	if goalID != "" {
		if idx := a.findGoalLocked(goalID); idx >= 0 {
			return a.goals[idx].Priority
		}
	}
	return model.PriorityMedium
}
