package app

import (
	"github.com/PixelDavon/SmartReminder/internal/model"
	"github.com/PixelDavon/SmartReminder/internal/policy"
)

type GoalInput struct {
	Title           string
	Description     string
	Target          int
	Unit            string
	TargetDate      string
	ReminderTimeISO string
	ReminderType    model.ReminderType
	Priority        model.Priority
}

func (in *GoalInput) applyDefaults() {
	if in.Target == 0 {
		in.Target = 1
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if in.ReminderType == "" {
		in.ReminderType = model.ReminderTypeNone
	}
}

func (a *App) AddGoal(in GoalInput) (model.Goal, error) {
	in.applyDefaults()
	if err := policy.ValidateGoalInput(in.Title, in.Target, in.TargetDate, in.ReminderTimeISO, a.now()); err != nil {
		return model.Goal{}, err
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	goal := model.Goal{
		ID:              a.newID(),
		Title:           in.Title,
		Description:     in.Description,
		Target:          in.Target,
		Unit:            in.Unit,
		TargetDate:      in.TargetDate,
		ReminderTimeISO: in.ReminderTimeISO,
		ReminderType:    in.ReminderType,
		Priority:        in.Priority,
		CreatedAt:       a.now(),
	}
	a.goals = append([]model.Goal{goal}, a.goals...)
	a.reconcileLocked(goalRef(goal))
	a.persistLocked()
	return goal, nil
}

func (a *App) EditGoal(id string, in GoalInput) (model.Goal, error) {
	in.applyDefaults()

	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.findGoalLocked(id)
	if idx < 0 {
		return model.Goal{}, ErrNotFound
	}
	prior := a.goals[idx]
	if err := policy.ValidateGoalEdit(in.Title, in.Target, in.TargetDate,
		in.ReminderTimeISO, prior.ReminderTimeISO, a.now()); err != nil {
		return model.Goal{}, err
	}

	updated := make([]model.Goal, len(a.goals))
	copy(updated, a.goals)
	goal := updated[idx]
	goal.Title = in.Title
	goal.Description = in.Description
	goal.Target = in.Target
	goal.Unit = in.Unit
	goal.TargetDate = in.TargetDate
	goal.ReminderTimeISO = in.ReminderTimeISO
	goal.ReminderType = in.ReminderType
	goal.Priority = in.Priority
	goal.Progress = goal.ClampProgress(goal.Progress)
	updated[idx] = goal
	a.goals = updated

	a.reconcileLocked(goalRef(goal))
	a.persistLocked()
	return goal, nil
}

func (a *App) RemoveGoal(id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.findGoalLocked(id)
	if idx < 0 {
		return ErrNotFound
	}
	removed := a.goals[idx]
	a.goals = append(a.goals[:idx:idx], a.goals[idx+1:]...)
	cascaded := a.dropRemindersForParentLocked("", id)

	a.undo = &undoEntry{kind: undoDelete, goal: &removed, reminders: cascaded}
	a.persistLocked()
	return nil
}

// UpdateGoalProgress applies a delta, clamped into [0, target]. The undo
// entry is recorded even when the clamped result equals the prior value, so
// a fully-clamped update still overwrites the buffer.
func (a *App) UpdateGoalProgress(id string, delta int) (model.Goal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	idx := a.findGoalLocked(id)
	if idx < 0 {
		return model.Goal{}, ErrNotFound
	}

	updated := make([]model.Goal, len(a.goals))
	copy(updated, a.goals)
	goal := updated[idx]
	before := goal.Progress
	goal.Progress = goal.ClampProgress(goal.Progress + delta)
	updated[idx] = goal
	a.goals = updated

	a.undo = &undoEntry{kind: undoProgress, goalID: id, before: before, after: goal.Progress}
	a.persistLocked()
	return goal, nil
}

func (a *App) findGoalLocked(id string) int {
	for i, g := range a.goals {
		if g.ID == id {
			return i
		}
	}
	return -1
}
