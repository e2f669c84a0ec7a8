package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PixelDavon/SmartReminder/internal/app"
	"github.com/PixelDavon/SmartReminder/internal/model"
)

func newReminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reminder",
		Aliases: []string{"rem"},
		Short:   "Manage free-standing reminders",
	}
	cmd.AddCommand(newReminderAddCmd())
	cmd.AddCommand(newReminderListCmd())
	cmd.AddCommand(newReminderRemoveCmd())
	return cmd
}

func newReminderAddCmd() *cobra.Command {
	var (
		at      string
		message string
		repeat  string
		taskRef string
		goalRef string
		note    string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a reminder at an explicit time",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				in := app.ReminderInput{
					Title:       strings.Join(args, " "),
					Message:     message,
					DateTimeISO: at,
					Repeat:      model.RepeatRule(repeat),
					Note:        note,
				}
				if taskRef != "" {
					task, err := resolveTask(rt, taskRef)
					if err != nil {
						return err
					}
					in.TaskID = task.ID
				}
				if goalRef != "" {
					goal, err := resolveGoal(rt, goalRef)
					if err != nil {
						return err
					}
					in.GoalID = goal.ID
				}
				reminder, err := rt.app.AddReminder(in)
				if err != nil {
					return err
				}
				status := "scheduled"
				if reminder.NotificationID == "" {
					status = "not scheduled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added reminder %s (%s)\n", shortID(reminder.ID), status)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&at, "at", "", "trigger time (YYYY-MM-DDTHH:MM), required")
	cmd.Flags().StringVarP(&message, "message", "m", "", "notification body")
	cmd.Flags().StringVar(&repeat, "repeat", "none", "repeat rule: none or daily")
	cmd.Flags().StringVar(&taskRef, "task", "", "link to a task id")
	cmd.Flags().StringVar(&goalRef, "goal", "", "link to a goal id")
	cmd.Flags().StringVar(&note, "note", "", "private note")
	_ = cmd.MarkFlagRequired("at")
	return cmd
}

func newReminderListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List reminders ordered by trigger time",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				fmt.Fprintln(cmd.OutOrStdout(), renderReminders(rt.app.Reminders()))
				return nil
			})
		},
	}
}

func newReminderRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a reminder and cancel its registration (undo available)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				for _, r := range rt.app.Reminders() {
					if r.ID == args[0] || strings.HasPrefix(r.ID, args[0]) {
						if err := rt.app.RemoveReminder(r.ID); err != nil {
							return err
						}
						fmt.Fprintf(cmd.OutOrStdout(), "removed reminder %s\n", shortID(r.ID))
						return nil
					}
				}
				return fmt.Errorf("no reminder matching %q", args[0])
			})
		},
	}
}
