package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidTarget = errors.New("model: goal target must be at least 1")

// Goal tracks measurable progress toward a target. Progress is always kept
// inside [0, Target]; updates that would leave the range are clamped.
type Goal struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	Progress        int          `json:"progress"`
	Target          int          `json:"target"`
	Unit            string       `json:"unit,omitempty"`
	TargetDate      string       `json:"targetDate,omitempty"`
	ReminderTimeISO string       `json:"reminderTimeISO,omitempty"`
	ReminderType    ReminderType `json:"reminderType"`
	Priority        Priority     `json:"priority"`
	CreatedAt       time.Time    `json:"createdAt"`
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.ID) == "" {
		return errors.New("model: goal id is required")
	}
	if strings.TrimSpace(g.Title) == "" {
		return errors.New("model: goal title is required")
	}
	if g.Target < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidTarget, g.Target)
	}
	if g.Progress < 0 || g.Progress > g.Target {
		return fmt.Errorf("model: goal progress %d out of range [0, %d]", g.Progress, g.Target)
	}
	if !g.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, g.Priority)
	}
	if !g.ReminderType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidReminderType, g.ReminderType)
	}
	if g.CreatedAt.IsZero() {
		return errors.New("model: goal created_at is required")
	}
	return nil
}

func (g Goal) Achieved() bool {
	return g.Target > 0 && g.Progress >= g.Target
}

// ClampProgress returns v forced into the goal's valid progress range.
func (g Goal) ClampProgress(v int) int {
	if v < 0 {
		return 0
	}
	if v > g.Target {
		return g.Target
	}
	return v
}
