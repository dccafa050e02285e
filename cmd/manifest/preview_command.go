package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mediamanifest/internal/formatter"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "preview",
		Short: "Print the manifest as a markdown table without writing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig(cmd)
			if err != nil {
				return err
			}

			assembler, _, err := newAssembler(cfg)
			if err != nil {
				return err
			}

			result, err := assembler.Collect(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.RenderTable(result.Items))

			errOut := cmd.ErrOrStderr()
			fmt.Fprintf(errOut, "\n%d items", result.Items.Len())

			if len(result.Skipped) > 0 {
				fmt.Fprintf(errOut, ", %d skipped:", len(result.Skipped))

				for _, s := range result.Skipped {
					fmt.Fprintf(errOut, "\n  - %s: %s", s.Name, s.Reason)
				}
			}

			fmt.Fprintln(errOut)

			return nil
		},
	}
}
