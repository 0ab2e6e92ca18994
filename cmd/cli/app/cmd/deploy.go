package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/romnn/helm-deploy-action/cmd/cli/app"
	"github.com/romnn/helm-deploy-action/internal/adapters/filesystem"
	"github.com/romnn/helm-deploy-action/internal/core"
)

func init() {
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy",
	Short: "Runs the configured deployment action",
	Long:  `Reads the action inputs and event context and performs the selected command (upgrade, delete, or push).`,
	RunE:  runDeploy,
}

func runDeploy(cobraCmd *cobra.Command, args []string) error {
	handler, err := app.InjectDeployCommandHandler()
	if err != nil {
		return err
	}

	// The process environment is interpreted exactly once, here.
	env, err := core.ReadRunEnvironment(os.Environ(), filesystem.ProvideOsFileSystem())
	if err != nil {
		return err
	}

	cobraCmd.SilenceUsage = true
	return handler.Handle(cobraCmd.Context(), env)
}
