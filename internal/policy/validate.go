package policy

import (
	"fmt"
	"strings"
	"time"

	"github.com/PixelDavon/SmartReminder/internal/localtime"
)

// ValidationError is a rejected user input. It blocks the operation before
// any state mutation and carries a human-readable reason.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func reject(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ValidateTaskInput checks a task add payload. An explicit reminder time
// must parse and must not be in the past; a due date must not be before today.
func ValidateTaskInput(title, dueDate, reminderTimeISO string, now time.Time) error {
	if strings.TrimSpace(title) == "" {
		return reject("title", "title is required")
	}
	if err := validateDueDate(dueDate, now); err != nil {
		return err
	}
	return validateReminderTime(reminderTimeISO, now)
}

// ValidateTaskEdit checks a task edit payload. Clock checks apply only to
// values that differ from the stored ones: a stored time that has meanwhile
// passed is not new input and must not block an unrelated edit.
func ValidateTaskEdit(title, dueDate, reminderTimeISO, priorDueDate, priorReminderISO string, now time.Time) error {
	if strings.TrimSpace(title) == "" {
		return reject("title", "title is required")
	}
	if dueDate != priorDueDate {
		if err := validateDueDate(dueDate, now); err != nil {
			return err
		}
	}
	if reminderTimeISO != priorReminderISO {
		return validateReminderTime(reminderTimeISO, now)
	}
	return nil
}

// ValidateGoalInput checks a goal add payload.
func ValidateGoalInput(title string, target int, targetDate, reminderTimeISO string, now time.Time) error {
	if strings.TrimSpace(title) == "" {
		return reject("title", "title is required")
	}
	if target < 1 {
		return reject("target", "target must be at least 1")
	}
	if err := validateTargetDate(targetDate, now); err != nil {
		return err
	}
	return validateReminderTime(reminderTimeISO, now)
}

// ValidateGoalEdit checks a goal edit payload, with the same changed-values-
// only clock rule as ValidateTaskEdit.
func ValidateGoalEdit(title string, target int, targetDate, reminderTimeISO, priorReminderISO string, now time.Time) error {
	if strings.TrimSpace(title) == "" {
		return reject("title", "title is required")
	}
	if target < 1 {
		return reject("target", "target must be at least 1")
	}
	if err := validateTargetDate(targetDate, now); err != nil {
		return err
	}
	if reminderTimeISO != priorReminderISO {
		return validateReminderTime(reminderTimeISO, now)
	}
	return nil
}

func validateDueDate(dueDate string, now time.Time) error {
	if dueDate == "" {
		return nil
	}
	due, err := time.ParseInLocation(localtime.DateLayout, dueDate, now.Location())
	if err != nil {
		return reject("dueDate", fmt.Sprintf("%q is not a valid date", dueDate))
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if due.Before(today) {
		return reject("dueDate", "due date is in the past")
	}
	return nil
}

func validateTargetDate(targetDate string, now time.Time) error {
	if targetDate == "" {
		return nil
	}
	if _, err := time.ParseInLocation(localtime.DateLayout, targetDate, now.Location()); err != nil {
		return reject("targetDate", fmt.Sprintf("%q is not a valid date", targetDate))
	}
	return nil
}

// ValidateReminderInput checks a free-standing reminder add. Past instants
// are deliberately allowed here: the engine re-validates task and goal
// reminder times, but a direct reminder add is passed through to the gateway
// as-is.
func ValidateReminderInput(title, dateTimeISO string) error {
	if strings.TrimSpace(title) == "" {
		return reject("title", "title is required")
	}
	if strings.TrimSpace(dateTimeISO) == "" {
		return reject("dateTime", "a date and time are required")
	}
	if _, err := localtime.ParseLocal(dateTimeISO); err != nil {
		return reject("dateTime", fmt.Sprintf("%q is not a valid date/time", dateTimeISO))
	}
	return nil
}

func validateReminderTime(iso string, now time.Time) error {
	if iso == "" {
		return nil
	}
	at, err := localtime.ParseLocal(iso)
	if err != nil {
		return reject("reminderTime", fmt.Sprintf("%q is not a valid date/time", iso))
	}
	if at.Before(now) {
		return reject("reminderTime", "reminder time is in the past")
	}
	return nil
}
