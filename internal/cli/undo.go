package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/PixelDavon/SmartReminder/internal/app"
)

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Revert the most recent delete or progress change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				if err := rt.app.UndoLast(); err != nil {
					if errors.Is(err, app.ErrNothingToUndo) {
						fmt.Fprintln(cmd.OutOrStdout(), "nothing to undo")
						return nil
					}
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "undone")
				return nil
			})
		},
	}
}
