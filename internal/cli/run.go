package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/textrail/pkg/config"
	"github.com/ib-77/textrail/pkg/pipeline"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Load the configuration, apply its operations and print the result",
		RunE:  runPipeline,
	}
}

// runPipeline backs both the bare root invocation and the run subcommand.
// The transformed text is the only thing written to stdout; diagnostics go
// to stderr.
func runPipeline(cmd *cobra.Command, _ []string) error {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return err
	}
	log := newLogger(cmd.ErrOrStderr(), verbose)

	ctx := cmd.Context()

	app, err := config.Load(ctx, configPath)
	if err != nil {
		return err
	}
	log.Debug("configuration loaded", "path", configPath, "operations", len(app.Operations))

	report, err := pipeline.Run(ctx, app)
	if err != nil {
		return err
	}
	log.Debug("pipeline complete",
		"run_id", report.ID,
		"steps", report.Steps,
		"duration", report.Duration)

	fmt.Fprintln(cmd.OutOrStdout(), report.Output)
	return nil
}
