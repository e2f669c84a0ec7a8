package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PixelDavon/SmartReminder/internal/app"
	"github.com/PixelDavon/SmartReminder/internal/model"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(newTaskAddCmd())
	cmd.AddCommand(newTaskEditCmd())
	cmd.AddCommand(newTaskListCmd())
	cmd.AddCommand(newTaskDoneCmd())
	cmd.AddCommand(newTaskRemoveCmd())
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var (
		description  string
		dueDate      string
		remindAt     string
		reminderType string
		priority     string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task, scheduling its reminder if one is requested",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				task, err := rt.app.AddTask(app.TaskInput{
					Title:           strings.Join(args, " "),
					Description:     description,
					DueDate:         dueDate,
					ReminderTimeISO: remindAt,
					ReminderType:    model.ReminderType(reminderType),
					Priority:        model.Priority(priority),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added task %s\n", shortID(task.ID))
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	cmd.Flags().StringVar(&dueDate, "due", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&remindAt, "remind-at", "", "explicit reminder time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&reminderType, "remind", "none", "reminder type: none, daily or priority")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "priority: low, medium or high")
	return cmd
}

func newTaskEditCmd() *cobra.Command {
	var (
		title        string
		description  string
		dueDate      string
		remindAt     string
		reminderType string
		priority     string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a task; its reminder is realigned with the new values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				task, err := resolveTask(rt, args[0])
				if err != nil {
					return err
				}
				// Unchanged flags keep the stored values.
				in := app.TaskInput{
					Title:           task.Title,
					Description:     task.Description,
					DueDate:         task.DueDate,
					ReminderTimeISO: task.ReminderTimeISO,
					ReminderType:    task.ReminderType,
					Priority:        task.Priority,
				}
				if cmd.Flags().Changed("title") {
					in.Title = title
				}
				if cmd.Flags().Changed("description") {
					in.Description = description
				}
				if cmd.Flags().Changed("due") {
					in.DueDate = dueDate
				}
				if cmd.Flags().Changed("remind-at") {
					in.ReminderTimeISO = remindAt
				}
				if cmd.Flags().Changed("remind") {
					in.ReminderType = model.ReminderType(reminderType)
				}
				if cmd.Flags().Changed("priority") {
					in.Priority = model.Priority(priority)
				}
				edited, err := rt.app.EditTask(task.ID, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated task %s\n", shortID(edited.ID))
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().StringVar(&dueDate, "due", "", "new due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&remindAt, "remind-at", "", "new explicit reminder time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&reminderType, "remind", "", "reminder type: none, daily or priority")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority: low, medium or high")
	return cmd
}

func newTaskListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				fmt.Fprintln(cmd.OutOrStdout(), renderTasks(rt.app.Tasks()))
				return nil
			})
		},
	}
}

func newTaskDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a task's completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				task, err := resolveTask(rt, args[0])
				if err != nil {
					return err
				}
				toggled, err := rt.app.ToggleTaskCompletion(task.ID)
				if err != nil {
					return err
				}
				state := "open"
				if toggled.Completed {
					state = "done"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "task %s is now %s\n", shortID(toggled.ID), state)
				return nil
			})
		},
	}
}

func newTaskRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a task and its linked reminder (undo available)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				task, err := resolveTask(rt, args[0])
				if err != nil {
					return err
				}
				if err := rt.app.RemoveTask(task.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed task %s (run 'smartreminder undo' to restore)\n", shortID(task.ID))
				return nil
			})
		},
	}
}

// resolveTask accepts either a full id or the short prefix shown in listings.
func resolveTask(rt *runtime, ref string) (model.Task, error) {
	for _, t := range rt.app.Tasks() {
		if t.ID == ref || strings.HasPrefix(t.ID, ref) {
			return t, nil
		}
	}
	return model.Task{}, fmt.Errorf("no task matching %q", ref)
}
