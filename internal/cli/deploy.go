package cli

import (
	"time"

	"github.com/coininu/launchpad/internal/adapters/progress"
	"github.com/coininu/launchpad/internal/cli/render"
	"github.com/coininu/launchpad/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deploy <contract>",
		Short: "Deploy a compiled contract to a configured network",
		Long: `Deploy signs and broadcasts a contract-creation transaction for a
compiled artifact, waits for it to be mined, and prints the resulting
address.

The signing key comes from the PRIVATE_KEY environment variable (a .env
file next to launchpad.toml is loaded automatically). The workflow never
retries: a failed run needs a fresh invocation, and after a confirmation
timeout the transaction may still land, so check before resubmitting.

Examples:
  # Deploy the token to the Scroll testnet
  launchpad deploy CoinInu --network scrollL2

  # Deploy with a shorter confirmation wait
  launchpad deploy CoinInu --network local --timeout 30s`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			renderer := render.NewDeployRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr())

			var sink usecase.ProgressSink = usecase.NopProgress{}
			var spinnerSink *progress.SpinnerSink
			if !app.Config.NonInteractive {
				spinnerSink = progress.NewSpinnerSink()
				sink = spinnerSink
			}

			renderer.Deploying()
			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				ContractName: args[0],
				Progress:     sink,
			})
			if spinnerSink != nil {
				spinnerSink.Stop()
			}
			if err != nil {
				renderer.Failure(err, result)
				return ErrAlreadyRendered
			}

			renderer.Success(result)
			return nil
		},
	}

	cmd.Flags().Duration("timeout", 2*time.Minute, "Upper bound on the confirmation wait")
	cmd.Flags().Duration("poll-interval", 2*time.Second, "Receipt polling cadence")

	return cmd
}
