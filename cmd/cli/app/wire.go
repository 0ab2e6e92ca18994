//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/romnn/helm-deploy-action/internal/adapters/command_runner"
	"github.com/romnn/helm-deploy-action/internal/adapters/filesystem"
	"github.com/romnn/helm-deploy-action/internal/adapters/github"
	"github.com/romnn/helm-deploy-action/internal/adapters/helm"
	"github.com/romnn/helm-deploy-action/internal/adapters/templater"
	"github.com/romnn/helm-deploy-action/internal/core"
	"github.com/romnn/helm-deploy-action/internal/core/handler"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

var Adapter = wire.NewSet(
	command_runner.ProvideOsCommandRunner,
	wire.Bind(new(ports.CommandRunner), new(*command_runner.OsCommandRunner)),
	filesystem.ProvideOsFileSystem,
	wire.Bind(new(ports.FileSystem), new(*filesystem.OsFileSystem)),
	templater.ProvideTextTemplater,
	helm.ProvideHelmClient,
	wire.Bind(new(ports.HelmClient), new(*helm.HelmClient)),
	github.ProvideDeploymentReporter,
	wire.Bind(new(ports.StatusReporter), new(*github.DeploymentReporter)),
)

// CoreSet provides domain/core dependencies
var CoreSet = wire.NewSet(
	core.ProvideValuesRenderer,
)

func InjectDeployCommandHandler() (handler.DeployCommandHandler, error) {
	wire.Build(
		Adapter,
		CoreSet,
		handler.ProvideDeployCommandHandler,
	)
	return handler.DeployCommandHandler{}, nil
}
