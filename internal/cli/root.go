package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/coininu/launchpad/internal/app"
	"github.com/coininu/launchpad/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrAlreadyRendered signals that a command printed its own diagnostics;
// main should only set the exit status.
var ErrAlreadyRendered = errors.New("already rendered")

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "launchpad",
		Short: "Smart contract deployment CLI for the CoinInu token",
		Long: `Launchpad deploys compiled smart contracts to the test networks
configured in launchpad.toml: load the artifact, sign and broadcast the
creation transaction, wait for inclusion, report the address.`,
		// main prints errors; commands that already rendered diagnostics
		// return ErrAlreadyRendered so only the exit status is set
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// An app already in the context wins over discovery; tests
			// inject a prebuilt container this way
			if cmd.Context().Value(appKey) != nil {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)
			bindGlobalFlags(v, cmd)

			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable spinners and prompts")
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (e.g., scrollL2, local)")

	rootCmd.AddCommand(NewDeployCmd())
	rootCmd.AddCommand(NewNetworksCmd())
	rootCmd.AddCommand(NewArtifactsCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// bindGlobalFlags binds command flags to viper
func bindGlobalFlags(v *viper.Viper, cmd *cobra.Command) {
	// Only bind flags that exist and have been changed
	if f := cmd.Flag("debug"); f != nil && f.Changed {
		v.Set("debug", f.Value.String())
	}
	if f := cmd.Flag("non-interactive"); f != nil && f.Changed {
		v.Set("non_interactive", f.Value.String())
	}
	if f := cmd.Flag("network"); f != nil && f.Changed {
		v.Set("network", f.Value.String())
	}
	if f := cmd.Flag("timeout"); f != nil && f.Changed {
		v.Set("timeout", f.Value.String())
	}
	if f := cmd.Flag("poll-interval"); f != nil && f.Changed {
		v.Set("poll_interval", f.Value.String())
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
