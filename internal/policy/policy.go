// Package policy decides when a reminder should fire for a task or goal, and
// validates user input before any state mutates.
package policy

import (
	"time"

	"github.com/PixelDavon/SmartReminder/internal/localtime"
	"github.com/PixelDavon/SmartReminder/internal/model"
)

// Policy holds the derivation hours. Tasks and goals share the same
// derivation rules.
type Policy struct {
	DailyHour     int
	PriorityHours map[model.Priority]int
}

func Default() Policy {
	return Policy{
		DailyHour: 9,
		PriorityHours: map[model.Priority]int{
			model.PriorityHigh:   9,
			model.PriorityMedium: 13,
			model.PriorityLow:    18,
		},
	}
}

// Derive computes the concrete trigger instant for a parent entity, or
// reports that no reminder is needed. An explicit parseable time always wins
// over the derived one, regardless of reminder type.
func (p Policy) Derive(rt model.ReminderType, explicitISO string, prio model.Priority, now time.Time) (string, bool) {
	if rt == model.ReminderTypeNone {
		return "", false
	}
	if explicitISO != "" {
		if _, err := localtime.ParseLocal(explicitISO); err == nil {
			return explicitISO, true
		}
	}

	switch rt {
	case model.ReminderTypeDaily:
		next := time.Date(now.Year(), now.Month(), now.Day(), p.DailyHour, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return localtime.FormatLocal(next), true
	case model.ReminderTypePriority:
		hour, ok := p.PriorityHours[prio]
		if !ok {
			hour = p.PriorityHours[model.PriorityMedium]
		}
		at := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
		if !at.After(now) {
			// Already past for today: roll forward exactly one day, never more.
			at = at.AddDate(0, 0, 1)
		}
		return localtime.FormatLocal(at), true
	default:
		return "", false
	}
}

// RepeatFor maps a reminder type onto the repeat rule the gateway is asked
// for. Only daily reminders repeat; priority reminders are single-shot.
func RepeatFor(rt model.ReminderType) model.RepeatRule {
	if rt == model.ReminderTypeDaily {
		return model.RepeatDaily
	}
	return model.RepeatNone
}
