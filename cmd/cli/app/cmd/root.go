package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "helm-deploy",
	Short: "Deploys helm charts from CI",
	Long: `helm-deploy translates declarative action inputs into helm CLI
invocations to install, upgrade, remove, or publish a chart against a
Kubernetes cluster, and reports the deployment state back to GitHub.

Inputs arrive through the GitHub Actions input protocol (INPUT_* and
GITHUB_* environment variables); running the binary without a
subcommand performs the configured deployment.`,
	RunE: runDeploy,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
