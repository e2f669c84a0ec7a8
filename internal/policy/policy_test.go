package policy

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixelDavon/SmartReminder/internal/model"
)

func localDate(hour, min int) time.Time {
	return time.Date(2026, 3, 14, hour, min, 0, 0, time.Local)
}

func TestDeriveNone(t *testing.T) {
	_, ok := Default().Derive(model.ReminderTypeNone, "", model.PriorityHigh, localDate(8, 0))
	assert.False(t, ok)
}

func TestDeriveExplicitWins(t *testing.T) {
	got, ok := Default().Derive(model.ReminderTypePriority, "2026-06-01T17:45:00", model.PriorityHigh, localDate(8, 0))
	require.True(t, ok)
	assert.Equal(t, "2026-06-01T17:45:00", got)

	// Unparseable explicit time falls back to the derived instant.
	got, ok = Default().Derive(model.ReminderTypePriority, "whenever", model.PriorityHigh, localDate(8, 0))
	require.True(t, ok)
	assert.Equal(t, "2026-03-14T09:00:00", got)
}

func TestDeriveDailyIsTomorrowMorning(t *testing.T) {
	got, ok := Default().Derive(model.ReminderTypeDaily, "", model.PriorityMedium, localDate(8, 0))
	require.True(t, ok)
	assert.Equal(t, "2026-03-15T09:00:00", got)

	// Same derivation regardless of how late in the day it is.
	got, ok = Default().Derive(model.ReminderTypeDaily, "", model.PriorityMedium, localDate(23, 30))
	require.True(t, ok)
	assert.Equal(t, "2026-03-15T09:00:00", got)
}

func TestDerivePriorityHours(t *testing.T) {
	cases := []struct {
		name string
		prio model.Priority
		now  time.Time
		want string
	}{
		{name: "high before 9 stays today", prio: model.PriorityHigh, now: localDate(8, 0), want: "2026-03-14T09:00:00"},
		{name: "high after 9 rolls one day", prio: model.PriorityHigh, now: localDate(10, 0), want: "2026-03-15T09:00:00"},
		{name: "medium before 13", prio: model.PriorityMedium, now: localDate(12, 59), want: "2026-03-14T13:00:00"},
		{name: "medium at 13 rolls", prio: model.PriorityMedium, now: localDate(13, 0), want: "2026-03-15T13:00:00"},
		{name: "low before 18", prio: model.PriorityLow, now: localDate(9, 0), want: "2026-03-14T18:00:00"},
		{name: "low after 18 rolls", prio: model.PriorityLow, now: localDate(21, 0), want: "2026-03-15T18:00:00"},
	}

	p := Default()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := p.Derive(model.ReminderTypePriority, "", tc.prio, tc.now)
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRepeatFor(t *testing.T) {
	assert.Equal(t, model.RepeatDaily, RepeatFor(model.ReminderTypeDaily))
	assert.Equal(t, model.RepeatNone, RepeatFor(model.ReminderTypePriority))
	assert.Equal(t, model.RepeatNone, RepeatFor(model.ReminderTypeNone))
}

func TestValidateTaskInput(t *testing.T) {
	now := localDate(10, 0)

	require.NoError(t, ValidateTaskInput("pay rent", "2026-03-20", "2026-03-20T09:00:00", now))
	require.NoError(t, ValidateTaskInput("no extras", "", "", now))

	err := ValidateTaskInput("  ", "", "", now)
	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "title", ve.Field)

	err = ValidateTaskInput("t", "2026-03-01", "", now)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dueDate", ve.Field)

	err = ValidateTaskInput("t", "", "2026-03-14T09:00:00", now)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "reminderTime", ve.Field)

	err = ValidateTaskInput("t", "soonish", "", now)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dueDate", ve.Field)
}

func TestValidateTaskEditSkipsUnchangedTimes(t *testing.T) {
	now := localDate(11, 0)

	// The stored reminder time and due date have passed, but they are not
	// new input: resubmitting them unchanged is fine.
	require.NoError(t, ValidateTaskEdit("new title", "2026-03-01", "2026-03-14T09:00:00",
		"2026-03-01", "2026-03-14T09:00:00", now))

	// Changed values are still clock-checked.
	var ve *ValidationError
	err := ValidateTaskEdit("t", "2026-03-01", "2026-03-14T10:30:00",
		"2026-03-01", "2026-03-14T09:00:00", now)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "reminderTime", ve.Field)

	err = ValidateTaskEdit("t", "2026-03-13", "", "2026-03-20", "", now)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "dueDate", ve.Field)

	// Clearing a reminder time is a change to "" and always passes the
	// clock check.
	require.NoError(t, ValidateTaskEdit("t", "", "", "", "2026-03-14T09:00:00", now))

	require.ErrorAs(t, ValidateTaskEdit(" ", "", "", "", "", now), &ve)
	assert.Equal(t, "title", ve.Field)
}

func TestValidateGoalEditSkipsUnchangedReminderTime(t *testing.T) {
	now := localDate(11, 0)

	require.NoError(t, ValidateGoalEdit("read books", 5, "2026-12-31",
		"2026-03-14T09:00:00", "2026-03-14T09:00:00", now))

	var ve *ValidationError
	err := ValidateGoalEdit("read books", 5, "", "2026-03-14T10:30:00", "", now)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "reminderTime", ve.Field)

	require.ErrorAs(t, ValidateGoalEdit("g", 0, "", "", "", now), &ve)
	assert.Equal(t, "target", ve.Field)
}

func TestValidateGoalInput(t *testing.T) {
	now := localDate(10, 0)

	require.NoError(t, ValidateGoalInput("read books", 5, "2026-12-31", "", now))

	var ve *ValidationError
	require.ErrorAs(t, ValidateGoalInput("g", 0, "", "", now), &ve)
	assert.Equal(t, "target", ve.Field)
}

func TestValidateReminderInputAllowsPast(t *testing.T) {
	// Free-standing reminders are not re-validated against the clock.
	require.NoError(t, ValidateReminderInput("old news", "2020-01-01T08:00:00"))

	var ve *ValidationError
	require.ErrorAs(t, ValidateReminderInput("", "2026-01-01T08:00:00"), &ve)
	assert.Equal(t, "title", ve.Field)
	require.ErrorAs(t, ValidateReminderInput("r", "nope"), &ve)
	assert.Equal(t, "dateTime", ve.Field)
}
