package app

import (
	"github.com/PixelDavon/SmartReminder/internal/model"
	"github.com/PixelDavon/SmartReminder/internal/policy"
)

// TaskInput is an add/edit payload. Zero values for Priority and
// ReminderType default to medium/none.
type TaskInput struct {
	Title           string
	Description     string
	DueDate         string
	ReminderTimeISO string
	ReminderType    model.ReminderType
	Priority        model.Priority
}

func (in *TaskInput) applyDefaults() {
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if in.ReminderType == "" {
		in.ReminderType = model.ReminderTypeNone
	}
}

func (a *App) AddTask(in TaskInput) (model.Task, error) {
	in.applyDefaults()
	if err := policy.ValidateTaskInput(in.Title, in.DueDate, in.ReminderTimeISO, a.now()); err != nil {
		return model.Task{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	task := model.Task{
		ID:              a.newID(),
		Title:           in.Title,
		Description:     in.Description,
		DueDate:         in.DueDate,
		ReminderTimeISO: in.ReminderTimeISO,
		ReminderType:    in.ReminderType,
		Priority:        in.Priority,
		CreatedAt:       a.now(),
	}
	a.tasks = append([]model.Task{task}, a.tasks...)
	a.reconcileLocked(taskRef(task))
	a.persistLocked()
	return task, nil
}

func (a *App) EditTask(id string, in TaskInput) (model.Task, error) {
	in.applyDefaults()

	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.findTaskLocked(id)
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}
	prior := a.tasks[idx]
	// Only changed times are checked against the clock: a stored reminder
	// time that has passed must not block an unrelated edit.
	if err := policy.ValidateTaskEdit(in.Title, in.DueDate, in.ReminderTimeISO,
		prior.DueDate, prior.ReminderTimeISO, a.now()); err != nil {
		return model.Task{}, err
	}

	updated := make([]model.Task, len(a.tasks))
	copy(updated, a.tasks)
	task := updated[idx]
	task.Title = in.Title
	task.Description = in.Description
	task.DueDate = in.DueDate
	task.ReminderTimeISO = in.ReminderTimeISO
	task.ReminderType = in.ReminderType
	task.Priority = in.Priority
	updated[idx] = task
	a.tasks = updated

	a.reconcileLocked(taskRef(task))
	a.persistLocked()
	return task, nil
}

// RemoveTask deletes a task, cascades to its linked reminder and records an
// undo entry holding everything needed to put both back.
func (a *App) RemoveTask(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.findTaskLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	removed := a.tasks[idx]
	a.tasks = append(a.tasks[:idx:idx], a.tasks[idx+1:]...)
	cascaded := a.dropRemindersForParentLocked(id, "")

	a.undo = &undoEntry{kind: undoDelete, task: &removed, reminders: cascaded}
	a.persistLocked()
	return nil
}

// ToggleTaskCompletion flips the completed flag and marks linked reminders
// as interacted.
func (a *App) ToggleTaskCompletion(id string) (model.Task, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.findTaskLocked(id)
	if idx < 0 {
		return model.Task{}, ErrNotFound
	}

	updated := make([]model.Task, len(a.tasks))
	copy(updated, a.tasks)
	updated[idx].Completed = !updated[idx].Completed
	a.tasks = updated

	reminders := make([]model.Reminder, len(a.reminders))
	copy(reminders, a.reminders)
	for i := range reminders {
		if reminders[i].TaskID == id {
			reminders[i].Interacted = true
		}
	}
	a.reminders = reminders

	a.persistLocked()
	return a.tasks[idx], nil
}

func (a *App) findTaskLocked(id string) int {
	for i, t := range a.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
