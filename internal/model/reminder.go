package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrInvalidRepeatRule = errors.New("model: invalid repeat rule")

type RepeatRule string

const (
	RepeatNone  RepeatRule = "none"
	RepeatDaily RepeatRule = "daily"
)

func (r RepeatRule) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily:
		return true
	default:
		return false
	}
}

// Reminder is a pending time-triggered notification. TaskID and GoalID are
// back-references, not ownership: at most one of them is set, and a reminder
// survives its parent only if the parent is deleted without cascading.
// NotificationID is the opaque gateway registration handle; empty means the
// reminder is logically scheduled but has no live external registration.
type Reminder struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Message            string     `json:"message,omitempty"`
	DateTimeISO        string     `json:"dateTimeISO"`
	Repeat             RepeatRule `json:"repeat"`
	RepeatIntervalDays int        `json:"repeatIntervalDays,omitempty"` // reserved, unused by the current policy
	TaskID             string     `json:"taskId,omitempty"`
	GoalID             string     `json:"goalId,omitempty"`
	Interacted         bool       `json:"interacted"`
	NotificationID     string     `json:"notificationId,omitempty"`
	Priority           Priority   `json:"priority"`
	Note               string     `json:"note,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: reminder id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("model: reminder title is required")
	}
	if strings.TrimSpace(r.DateTimeISO) == "" {
		return errors.New("model: reminder dateTimeISO is required")
	}
	if !r.Repeat.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidRepeatRule, r.Repeat)
	}
	if r.TaskID != "" && r.GoalID != "" {
		return errors.New("model: reminder cannot reference both a task and a goal")
	}
	if !r.Priority.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, r.Priority)
	}
	return nil
}

// ParentID returns the linked parent id, if any.
func (r Reminder) ParentID() string {
	if r.TaskID != "" {
		return r.TaskID
	}
	return r.GoalID
}
