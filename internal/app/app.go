package app

import (
	"log/slog"

	"github.com/coininu/launchpad/internal/adapters/artifacts"
	"github.com/coininu/launchpad/internal/adapters/ethereum"
	"github.com/coininu/launchpad/internal/config"
	"github.com/coininu/launchpad/internal/logging"
	"github.com/coininu/launchpad/internal/usecase"
	"github.com/spf13/viper"
)

// App is the application container holding the configuration and use
// cases for one invocation.
type App struct {
	Config *config.RuntimeConfig
	Log    *slog.Logger

	DeployContract *usecase.DeployContract
	ListNetworks   *usecase.ListNetworks
	ListArtifacts  *usecase.ListArtifacts
}

// InitApp builds the container. The dependency graph is four
// constructors deep, so it is wired by hand.
func InitApp(v *viper.Viper) (*App, error) {
	cfg, err := config.Provider(v)
	if err != nil {
		return nil, err
	}

	log := logging.NewLogger(cfg)

	loader := artifacts.NewLoader(cfg.OutDir, log)
	deployer := ethereum.NewDeployer(ethereum.DialBackend, cfg.Timeout, cfg.PollInterval, log)
	networkResolver := config.NewNetworkResolver(cfg.Project)

	return &App{
		Config:         cfg,
		Log:            log,
		DeployContract: usecase.NewDeployContract(cfg, loader, deployer, deployer),
		ListNetworks:   usecase.NewListNetworks(networkResolver),
		ListArtifacts:  usecase.NewListArtifacts(loader),
	}, nil
}
