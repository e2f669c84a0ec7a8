// Package cli is the command surface over the app context: thin cobra
// commands that parse arguments, call exactly one operation and render the
// result. No scheduling or storage semantics live here.
package cli

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	rootCmd    *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "smartreminder",
		Short: "Tasks, goals and reminders with local notifications",
		Long: `SmartReminder keeps tasks, goals and free-standing reminders in a local
snapshot database and derives notification times from priority and reminder
type. Reminders stay in sync with their parent task or goal as it is edited,
completed or deleted.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config.yml")

	rootCmd.AddCommand(newTaskCmd())
	rootCmd.AddCommand(newGoalCmd())
	rootCmd.AddCommand(newReminderCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newUndoCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newImportCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
