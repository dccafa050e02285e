package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:   "manifest",
		Short: "Build the gallery media manifest from descriptor files",
		Long: `manifest scans the descriptor directory (JSON, key: value text or markdown),
normalizes every item and writes one sorted JSON manifest for the gallery page.
The manifest is regenerated from scratch on every run.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.loadConfig(cmd)
			if err != nil {
				return err
			}

			assembler, log, err := newAssembler(cfg)
			if err != nil {
				return err
			}

			log.Debug("configuration loaded", "config", cfg.String())

			result, err := assembler.Run(cmd.Context())
			if err != nil {
				return err
			}

			if len(result.Skipped) > 0 {
				log.Warn("some descriptors were skipped", "count", len(result.Skipped))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote manifest to %s (%d items)\n", result.OutputPath, result.Items.Len())

			return nil
		},
	}

	ctx.bindFlags(rootCmd)

	rootCmd.AddCommand(newPreviewCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
