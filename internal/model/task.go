package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidPriority     = errors.New("model: invalid priority")
	ErrInvalidReminderType = errors.New("model: invalid reminder type")
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

type ReminderType string

const (
	ReminderTypeNone     ReminderType = "none"
	ReminderTypeDaily    ReminderType = "daily"
	ReminderTypePriority ReminderType = "priority"
)

func (r ReminderType) IsValid() bool {
	switch r {
	case ReminderTypeNone, ReminderTypeDaily, ReminderTypePriority:
		return true
	default:
		return false
	}
}

// Task is a single actionable item. DueDate is a local calendar date
// (YYYY-MM-DD) and ReminderTimeISO a local wall-clock instant; neither is ever
// converted to UTC.
type Task struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description,omitempty"`
	DueDate         string       `json:"dueDate,omitempty"`
	ReminderTimeISO string       `json:"reminderTimeISO,omitempty"`
	ReminderType    ReminderType `json:"reminderType"`
	Priority        Priority     `json:"priority"`
	Completed       bool         `json:"completed"`
	CreatedAt       time.Time    `json:"createdAt"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, t.Priority)
	}
	if !t.ReminderType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidReminderType, t.ReminderType)
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	return nil
}
