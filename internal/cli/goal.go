package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PixelDavon/SmartReminder/internal/app"
	"github.com/PixelDavon/SmartReminder/internal/model"
)

func newGoalCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage goals",
	}
	cmd.AddCommand(newGoalAddCmd())
	cmd.AddCommand(newGoalEditCmd())
	cmd.AddCommand(newGoalListCmd())
	cmd.AddCommand(newGoalProgressCmd())
	cmd.AddCommand(newGoalRemoveCmd())
	return cmd
}

func newGoalAddCmd() *cobra.Command {
	var (
		description  string
		target       int
		unit         string
		targetDate   string
		remindAt     string
		reminderType string
		priority     string
	)
	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a goal",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				goal, err := rt.app.AddGoal(app.GoalInput{
					Title:           strings.Join(args, " "),
					Description:     description,
					Target:          target,
					Unit:            unit,
					TargetDate:      targetDate,
					ReminderTimeISO: remindAt,
					ReminderType:    model.ReminderType(reminderType),
					Priority:        model.Priority(priority),
				})
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "added goal %s (0/%d %s)\n", shortID(goal.ID), goal.Target, goal.Unit)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "goal description")
	cmd.Flags().IntVarP(&target, "target", "t", 1, "target amount (at least 1)")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "unit label, e.g. km or books")
	cmd.Flags().StringVar(&targetDate, "date", "", "target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&remindAt, "remind-at", "", "explicit reminder time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&reminderType, "remind", "none", "reminder type: none, daily or priority")
	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "priority: low, medium or high")
	return cmd
}

func newGoalEditCmd() *cobra.Command {
	var (
		title        string
		description  string
		target       int
		unit         string
		targetDate   string
		remindAt     string
		reminderType string
		priority     string
	)
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a goal; progress is clamped if the target shrinks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				goal, err := resolveGoal(rt, args[0])
				if err != nil {
					return err
				}
				in := app.GoalInput{
					Title:           goal.Title,
					Description:     goal.Description,
					Target:          goal.Target,
					Unit:            goal.Unit,
					TargetDate:      goal.TargetDate,
					ReminderTimeISO: goal.ReminderTimeISO,
					ReminderType:    goal.ReminderType,
					Priority:        goal.Priority,
				}
				if cmd.Flags().Changed("title") {
					in.Title = title
				}
				if cmd.Flags().Changed("description") {
					in.Description = description
				}
				if cmd.Flags().Changed("target") {
					in.Target = target
				}
				if cmd.Flags().Changed("unit") {
					in.Unit = unit
				}
				if cmd.Flags().Changed("date") {
					in.TargetDate = targetDate
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
				edited, err := rt.app.EditGoal(goal.ID, in)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "updated goal %s (%d/%d)\n", shortID(edited.ID), edited.Progress, edited.Target)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().IntVarP(&target, "target", "t", 0, "new target amount")
	cmd.Flags().StringVarP(&unit, "unit", "u", "", "new unit label")
	cmd.Flags().StringVar(&targetDate, "date", "", "new target date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&remindAt, "remind-at", "", "new explicit reminder time (YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&reminderType, "remind", "", "reminder type: none, daily or priority")
	cmd.Flags().StringVarP(&priority, "priority", "p", "", "priority: low, medium or high")
	return cmd
}

func newGoalListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List goals with progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				fmt.Fprintln(cmd.OutOrStdout(), renderGoals(rt.app.Goals()))
				return nil
			})
		},
	}
}

func newGoalProgressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "progress <id> <delta>",
		Short: "Adjust a goal's progress (clamped into [0, target])",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("delta must be an integer: %q", args[1])
			}
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				goal, err := resolveGoal(rt, args[0])
				if err != nil {
					return err
				}
				updated, err := rt.app.UpdateGoalProgress(goal.ID, delta)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "goal %s at %d/%d\n", shortID(updated.ID), updated.Progress, updated.Target)
				if updated.Achieved() {
					fmt.Fprintln(cmd.OutOrStdout(), "goal achieved!")
				}
				return nil
			})
		},
	}
}

func newGoalRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a goal and its linked reminder (undo available)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				goal, err := resolveGoal(rt, args[0])
				if err != nil {
					return err
				}
				if err := rt.app.RemoveGoal(goal.ID); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "removed goal %s (run 'smartreminder undo' to restore)\n", shortID(goal.ID))
				return nil
			})
		},
	}
}

func resolveGoal(rt *runtime, ref string) (model.Goal, error) {
	for _, g := range rt.app.Goals() {
		if g.ID == ref || strings.HasPrefix(g.ID, ref) {
			return g, nil
		}
	}
	return model.Goal{}, fmt.Errorf("no goal matching %q", ref)
}
