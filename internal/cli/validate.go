package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ib-77/textrail/pkg/config"
	"github.com/ib-77/textrail/pkg/textop"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the configuration and its operations without running them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			app, err := config.Load(cmd.Context(), configPath)
			if err != nil {
				return err
			}

			reg := textop.Default()
			for _, spec := range app.Operations {
				if _, err := reg.Resolve(spec); err != nil {
					return err
				}
			}

			fmt.Fprintf(cmd.OutOrStdout(), "configuration OK: %d operation(s)\n", len(app.Operations))
			return nil
		},
	}
}
