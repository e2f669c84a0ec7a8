package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/PixelDavon/SmartReminder/internal/localtime"
	"github.com/PixelDavon/SmartReminder/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	idStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	doneStyle   = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8"))
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	mediumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	lowStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("8"))
)

func priorityBadge(p model.Priority) string {
	switch p {
	case model.PriorityHigh:
		return highStyle.Render("high")
	case model.PriorityLow:
		return lowStyle.Render("low")
	default:
		return mediumStyle.Render("med")
	}
}

func renderTasks(tasks []model.Task) string {
	if len(tasks) == 0 {
		return emptyStyle.Render("no tasks yet")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Tasks"))
	b.WriteString("\n")
	for _, t := range tasks {
		title := t.Title
		if t.Completed {
			title = doneStyle.Render(title)
		}
		line := fmt.Sprintf("%s %s [%s]", idStyle.Render(shortID(t.ID)), title, priorityBadge(t.Priority))
		if t.DueDate != "" {
			line += metaStyle.Render(" due " + localtime.DisplayDate(t.DueDate))
		}
		if t.ReminderType != model.ReminderTypeNone {
			line += metaStyle.Render(" reminder:" + string(t.ReminderType))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGoals(goals []model.Goal) string {
	if len(goals) == 0 {
		return emptyStyle.Render("no goals yet")
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render("Goals"))
	b.WriteString("\n")
	for _, g := range goals {
		pct := 0
		if g.Target > 0 {
			pct = g.Progress * 100 / g.Target
		}
		line := fmt.Sprintf("%s %s [%s] %s %d/%d %s (%d%%)",
			idStyle.Render(shortID(g.ID)), g.Title, priorityBadge(g.Priority),
			progressBar(pct), g.Progress, g.Target, g.Unit, pct)
		if g.Achieved() {
			line += lowStyle.Render(" achieved")
		}
		b.WriteString(strings.TrimRight(line, " "))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderReminders(reminders []model.Reminder) string {
	if len(reminders) == 0 {
		return emptyStyle.Render("no reminders yet")
	}
	sorted := make([]model.Reminder, len(reminders))
	copy(sorted, reminders)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].DateTimeISO < sorted[j].DateTimeISO })

	var b strings.Builder
	b.WriteString(headerStyle.Render("Reminders"))
	b.WriteString("\n")
	for _, r := range sorted {
		status := "not scheduled"
		if r.NotificationID != "" {
			status = "scheduled"
		}
		line := fmt.Sprintf("%s %s at %s", idStyle.Render(shortID(r.ID)), r.Title, localtime.DisplayDateTime(r.DateTimeISO))
		if r.Repeat == model.RepeatDaily {
			line += metaStyle.Render(" (daily)")
		}
		line += metaStyle.Render(" " + status)
		if r.ParentID() != "" {
			line += metaStyle.Render(" -> " + shortID(r.ParentID()))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func progressBar(pct int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := pct / 10
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", 10-filled) + "]"
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
