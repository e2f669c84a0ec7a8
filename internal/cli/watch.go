package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/PixelDavon/SmartReminder/internal/localtime"
	"github.com/PixelDavon/SmartReminder/internal/model"
	"github.com/PixelDavon/SmartReminder/internal/notify"
)

// newWatchCmd runs the notification engine in the foreground. Stored
// notification ids belong to earlier processes and are dead by now, so every
// reminder is re-registered into this process's engine before listening.
func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run in the foreground and print reminders as they fire",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return withRuntime(ctx, func(rt *runtime) error {
				reminders := rt.app.Reminders()
				registered := 0
				for _, r := range reminders {
					at, err := localtime.ParseLocal(r.DateTimeISO)
					if err != nil {
						continue
					}
					n := notify.Notification{Title: r.Title, Body: r.Message}
					if r.Repeat == model.RepeatDaily {
						n.Trigger = notify.Trigger{Hour: at.Hour(), Minute: at.Minute(), Repeats: true}
					} else {
						n.Trigger = notify.Trigger{At: at}
					}
					if _, err := rt.engine.Schedule(ctx, n); err != nil {
						rt.log.Warn("re-register reminder failed", zap.String("reminder_id", r.ID), zap.Error(err))
						continue
					}
					registered++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "watching %d reminder(s), ctrl-c to stop\n", registered)

				for {
					select {
					case <-ctx.Done():
						return nil
					case d, ok := <-rt.engine.C():
						if !ok {
							return nil
						}
						fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s", d.At.Format("15:04"), d.Title)
						if d.Body != "" {
							fmt.Fprintf(cmd.OutOrStdout(), ": %s", d.Body)
						}
						fmt.Fprintln(cmd.OutOrStdout())
					}
				}
			})
		},
	}
}
