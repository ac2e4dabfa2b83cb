package cli

import (
	"github.com/coininu/launchpad/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewArtifactsCmd creates the artifacts command
func NewArtifactsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "artifacts",
		Short: "List compiled contract artifacts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListArtifacts.Run(cmd.Context())
			if err != nil {
				return err
			}

			render.RenderArtifacts(cmd.OutOrStdout(), result)
			return nil
		},
	}
}
