package app

import (
	"github.com/PixelDavon/SmartReminder/internal/localtime"
	"github.com/PixelDavon/SmartReminder/internal/model"
	"github.com/PixelDavon/SmartReminder/internal/notify"
	"github.com/PixelDavon/SmartReminder/internal/policy"
	"go.uber.org/zap"
)

// parentRef carries what reconciliation needs to know about a task or goal.
// Exactly one of taskID/goalID is set.
type parentRef struct {
	taskID       string
	goalID       string
	title        string
	description  string
	reminderType model.ReminderType
	explicitISO  string
	priority     model.Priority
}

func taskRef(t model.Task) parentRef {
	return parentRef{
		taskID:       t.ID,
		title:        t.Title,
		description:  t.Description,
		reminderType: t.ReminderType,
		explicitISO:  t.ReminderTimeISO,
		priority:     t.Priority,
	}
}

func goalRef(g model.Goal) parentRef {
	return parentRef{
		goalID:       g.ID,
		title:        g.Title,
		description:  g.Description,
		reminderType: g.ReminderType,
		explicitISO:  g.ReminderTimeISO,
		priority:     g.Priority,
	}
}

// reconcileLocked aligns the parent's reminder with its current requested
// configuration. Invariants: at most one reminder per parent, and a replaced
// or removed registration is always cancelled before anything else happens.
// Must be called with the mutex held; the mutex is the per-parent
// serialization that keeps concurrent reconciles from duplicating
// registrations.
func (a *App) reconcileLocked(ref parentRef) {
	priorIdx := a.findReminderForParentLocked(ref.taskID, ref.goalID)

	triggerISO, ok := a.policy.Derive(ref.reminderType, ref.explicitISO, ref.priority, a.now())
	if !ok {
		// No reminder wanted. Unscheduled is a no-op; Scheduled gets its
		// registration cancelled and the record removed.
		if priorIdx < 0 {
			return
		}
		prior := a.reminders[priorIdx]
		a.cancelRegistration(prior.NotificationID)
		a.reminders = append(a.reminders[:priorIdx:priorIdx], a.reminders[priorIdx+1:]...)
		return
	}

	repeat := policy.RepeatFor(ref.reminderType)
	next := model.Reminder{
		ID:          a.newID(),
		Title:       "Reminder: " + ref.title,
		Message:     ref.description,
		DateTimeISO: triggerISO,
		Repeat:      repeat,
		TaskID:      ref.taskID,
		GoalID:      ref.goalID,
		Priority:    ref.priority,
		CreatedAt:   a.now(),
	}
	if priorIdx >= 0 {
		prior := a.reminders[priorIdx]
		// Replace always cancels before rescheduling, and keeps the prior
		// identity so interaction history survives the edit.
		a.cancelRegistration(prior.NotificationID)
		next.ID = prior.ID
		next.Interacted = prior.Interacted
		next.Note = prior.Note
		next.CreatedAt = prior.CreatedAt
	}

	next.NotificationID = a.scheduleRegistration(notificationFor(next))

	if priorIdx >= 0 {
		updated := make([]model.Reminder, len(a.reminders))
		copy(updated, a.reminders)
		updated[priorIdx] = next
		a.reminders = updated
	} else {
		a.reminders = append([]model.Reminder{next}, a.reminders...)
	}
	a.log.Debug("reminder reconciled",
		zap.String("reminder_id", next.ID),
		zap.String("trigger", next.DateTimeISO),
		zap.Bool("registered", next.NotificationID != ""))
}

// dropRemindersForParentLocked is the deletion cascade: cancel every linked
// registration, remove the records, and return their snapshots for the undo
// buffer.
func (a *App) dropRemindersForParentLocked(taskID, goalID string) []model.Reminder {
	kept := make([]model.Reminder, 0, len(a.reminders))
	removed := make([]model.Reminder, 0, 1)
	for _, r := range a.reminders {
		if (taskID != "" && r.TaskID == taskID) || (goalID != "" && r.GoalID == goalID) {
			a.cancelRegistration(r.NotificationID)
			removed = append(removed, r)
			continue
		}
		kept = append(kept, r)
	}
	a.reminders = kept
	return removed
}

func (a *App) findReminderForParentLocked(taskID, goalID string) int {
	for i, r := range a.reminders {
		if taskID != "" && r.TaskID == taskID {
			return i
		}
		if goalID != "" && r.GoalID == goalID {
			return i
		}
	}
	return -1
}

// notificationFor maps a reminder record onto a gateway request. Daily
// reminders become repeating clock triggers; everything else is single-shot
// at the stored instant.
func notificationFor(r model.Reminder) notify.Notification {
	n := notify.Notification{Title: r.Title, Body: r.Message}
	at, err := localtime.ParseLocal(r.DateTimeISO)
	if err != nil {
		return n
	}
	if r.Repeat == model.RepeatDaily {
		n.Trigger = notify.Trigger{Hour: at.Hour(), Minute: at.Minute(), Repeats: true}
	} else {
		n.Trigger = notify.Trigger{At: at}
	}
	return n
}
