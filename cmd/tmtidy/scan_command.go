package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tmtidy/internal/logging"
	"tmtidy/internal/renamer"
)

func newScanCommand(ctx *commandContext) *cobra.Command {
	flags := &matchingFlags{}

	cmd := &cobra.Command{
		Use:   "scan [directory]",
		Short: "Preview the rename plan without moving any file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := resolveRoot(args)
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts, err := flags.options(cmd, cfg)
			if err != nil {
				return err
			}
			opts.DryRun = true
			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return err
			}

			result, err := renamer.New(logger).Run(root, opts)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if result.Processed() == 0 {
				fmt.Fprintf(out, "No meeting spreadsheets found under %s\n", root)
				return nil
			}
			if plan := renderRenamePlan(result); plan != "" {
				fmt.Fprintln(out, plan)
			}
			fmt.Fprintln(out, renderBatchSummary(result))
			fmt.Fprintf(out, "Would rename %d files across %d meetings; %d skipped\n",
				result.Moves(), result.Renamed(), result.Skipped())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
