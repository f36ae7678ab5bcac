package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"tmtidy/internal/config"
	"tmtidy/internal/logging"
	"tmtidy/internal/match"
	"tmtidy/internal/renamer"
)

type matchingFlags struct {
	deltaMin int
	deltaMax int
	policy   string
}

func (f *matchingFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.deltaMin, "delta-min", 0, "Lowest signed second offset of the tolerance window")
	cmd.Flags().IntVar(&f.deltaMax, "delta-max", 0, "Highest signed second offset of the tolerance window")
	cmd.Flags().StringVar(&f.policy, "policy", "", `Admission policy: "strict" or "loose"`)
}

// options merges config defaults with any explicitly set flags.
func (f *matchingFlags) options(cmd *cobra.Command, cfg *config.Config) (renamer.Options, error) {
	opts := renamer.Options{
		Window: match.Window{Min: cfg.Matching.DeltaMin, Max: cfg.Matching.DeltaMax},
	}
	if cmd.Flags().Changed("delta-min") {
		opts.Window.Min = f.deltaMin
	}
	if cmd.Flags().Changed("delta-max") {
		opts.Window.Max = f.deltaMax
	}
	if opts.Window.Min > opts.Window.Max {
		return opts, fmt.Errorf("delta-min (%d) must not exceed delta-max (%d)", opts.Window.Min, opts.Window.Max)
	}

	policyValue := cfg.Matching.AdmissionPolicy
	if cmd.Flags().Changed("policy") {
		policyValue = f.policy
	}
	policy, err := renamer.ParsePolicy(policyValue)
	if err != nil {
		return opts, err
	}
	opts.Policy = policy
	return opts, nil
}

func resolveRoot(args []string) (string, error) {
	root := "."
	if len(args) == 1 {
		root = args[0]
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("resolve directory: %w", err)
	}
	return abs, nil
}

func newRunCommand(ctx *commandContext) *cobra.Command {
	flags := &matchingFlags{}

	cmd := &cobra.Command{
		Use:   "run [directory]",
		Short: "Match and rename all meeting artifacts under a directory",
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
			fmt.Fprintln(out, renderBatchSummary(result))
			fmt.Fprintf(out, "Processed %d, renamed %d (%d files), skipped %d\n",
				result.Processed(), result.Renamed(), result.Moves(), result.Skipped())
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
