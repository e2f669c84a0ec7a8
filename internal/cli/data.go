package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the full snapshot as JSON to stdout or a file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				blob, err := rt.app.Export()
				if err != nil {
					return err
				}
				if out == "" {
					fmt.Fprintln(cmd.OutOrStdout(), string(blob))
					return nil
				}
				if err := os.WriteFile(out, blob, 0o644); err != nil {
					return fmt.Errorf("write export: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "exported snapshot to %s\n", out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "destination file (defaults to stdout)")
	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a previously exported snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withRuntime(cmd.Context(), func(rt *runtime) error {
				blob, err := os.ReadFile(args[0])
				if err != nil {
					return fmt.Errorf("read import: %w", err)
				}
				if err := rt.app.Import(cmd.Context(), blob); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "imported snapshot from %s\n", args[0])
				return nil
			})
		},
	}
}
