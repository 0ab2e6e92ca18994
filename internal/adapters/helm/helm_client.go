package helm

import (
	"fmt"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

var _ ports.HelmClient = (*HelmClient)(nil)

// HelmClient implements ports.HelmClient using the helm CLI.
type HelmClient struct {
	commandRunner ports.CommandRunner
}

// ProvideHelmClient creates a HelmClient for Wire dependency injection.
func ProvideHelmClient(runner ports.CommandRunner) *HelmClient {
	return &HelmClient{
		commandRunner: runner,
	}
}

// credentialFlags threads the transient credential files into a
// repo-touching invocation so helm never falls back to its ambient
// config locations.
func credentialFlags(creds domain.CredentialArtifacts) []string {
	return []string{
		"--repository-config", creds.RepositoryConfigPath,
		"--registry-config", creds.RegistryConfigPath,
	}
}

// RepoUpdate refreshes the repository indexes listed in the transient
// repository config.
func (h *HelmClient) RepoUpdate(creds domain.CredentialArtifacts) error {
	cmdArgs := append([]string{"repo", "update"}, credentialFlags(creds)...)

	output, err := h.commandRunner.Run("helm", cmdArgs...)
	if err != nil {
		return fmt.Errorf("helm repo update failed: %w, output: %s", err, string(output))
	}
	return nil
}

// Upgrade installs or upgrades a release.
func (h *HelmClient) Upgrade(spec domain.UpgradeSpec, creds *domain.CredentialArtifacts) error {
	cmdArgs := []string{"upgrade", spec.Release, spec.Chart, "--install", "--wait"}
	if creds != nil {
		cmdArgs = append(cmdArgs, credentialFlags(*creds)...)
	}
	cmdArgs = append(cmdArgs, "-n", spec.Namespace)
	if spec.KubeconfigPath != "" {
		cmdArgs = append(cmdArgs, "--kubeconfig", spec.KubeconfigPath)
	}
	if spec.DryRun {
		cmdArgs = append(cmdArgs, "--dry-run")
	}
	if spec.ChartVersion != "" {
		cmdArgs = append(cmdArgs, "--version", spec.ChartVersion)
	}
	if spec.Timeout != "" {
		cmdArgs = append(cmdArgs, "--timeout", spec.Timeout)
	}
	if spec.Atomic {
		cmdArgs = append(cmdArgs, "--atomic")
	}
	for _, valueFile := range spec.ValueFiles {
		cmdArgs = append(cmdArgs, "--values", valueFile)
	}
	if spec.ValuesFilePath != "" {
		cmdArgs = append(cmdArgs, "--values", spec.ValuesFilePath)
	}

	output, err := h.commandRunner.Run("helm", cmdArgs...)
	if err != nil {
		return fmt.Errorf("helm upgrade failed: %w, output: %s", err, string(output))
	}
	return nil
}

// Delete removes a release.
func (h *HelmClient) Delete(release, namespace, kubeconfigPath string) error {
	cmdArgs := []string{"delete", "-n", namespace}
	if kubeconfigPath != "" {
		cmdArgs = append(cmdArgs, "--kubeconfig", kubeconfigPath)
	}
	cmdArgs = append(cmdArgs, release)

	output, err := h.commandRunner.Run("helm", cmdArgs...)
	if err != nil {
		return fmt.Errorf("helm delete failed: %w, output: %s", err, string(output))
	}
	return nil
}

// InspectChart prints the chart manifest, surfacing a broken chart
// before any packaging work happens.
func (h *HelmClient) InspectChart(chartPath string) error {
	output, err := h.commandRunner.Run("helm", "inspect", "chart", chartPath)
	if err != nil {
		return fmt.Errorf("helm inspect chart failed: %w, output: %s", err, string(output))
	}
	return nil
}

// DependencyUpdate resolves chart dependencies, authenticating against
// the repositories in the transient credential config.
func (h *HelmClient) DependencyUpdate(chartPath string, creds domain.CredentialArtifacts) error {
	cmdArgs := append([]string{"dependency", "update", chartPath}, credentialFlags(creds)...)

	output, err := h.commandRunner.Run("helm", cmdArgs...)
	if err != nil {
		return fmt.Errorf("helm dependency update failed: %w, output: %s", err, string(output))
	}
	return nil
}

// Package archives the chart. The working directory is the chart path
// so the .tgz lands at a deterministic location inside it.
func (h *HelmClient) Package(chartPath, version, appVersion string) error {
	cmdArgs := []string{"package", "."}
	if version != "" {
		cmdArgs = append(cmdArgs, "--version", version)
	}
	if appVersion != "" {
		cmdArgs = append(cmdArgs, "--app-version", appVersion)
	}

	output, err := h.commandRunner.RunInDir(chartPath, "helm", cmdArgs...)
	if err != nil {
		return fmt.Errorf("helm package failed: %w, output: %s", err, string(output))
	}
	return nil
}

// Push publishes a packaged chart archive to the remote registry.
func (h *HelmClient) Push(packagePath, remote string, force bool, creds domain.CredentialArtifacts) error {
	cmdArgs := append([]string{"push", packagePath, remote}, credentialFlags(creds)...)
	if force {
		cmdArgs = append(cmdArgs, "--force")
	}

	output, err := h.commandRunner.Run("helm", cmdArgs...)
	if err != nil {
		return fmt.Errorf("helm push failed: %w, output: %s", err, string(output))
	}
	return nil
}
