package ports

import (
	"github.com/romnn/helm-deploy-action/internal/core/domain"
)

// HelmClient defines the interface for driving the helm CLI. Every
// repo-touching operation takes the credential-artifact paths as
// explicit configuration overrides so runs never rely on ambient helm
// config locations.
type HelmClient interface {
	// RepoUpdate refreshes the repository indexes listed in the
	// repository-config artifact.
	RepoUpdate(creds domain.CredentialArtifacts) error
	// Upgrade installs or upgrades a release. Credential-artifact
	// flags are included only when creds is non-nil.
	Upgrade(spec domain.UpgradeSpec, creds *domain.CredentialArtifacts) error
	// Delete removes a release from the given namespace.
	Delete(release, namespace, kubeconfigPath string) error
	// InspectChart prints the manifest of a local chart directory.
	InspectChart(chartPath string) error
	// DependencyUpdate resolves chart dependencies for a local chart.
	DependencyUpdate(chartPath string, creds domain.CredentialArtifacts) error
	// Package archives a local chart directory, producing the .tgz
	// inside that directory.
	Package(chartPath, version, appVersion string) error
	// Push publishes a packaged chart archive to a remote registry.
	Push(packagePath, remote string, force bool, creds domain.CredentialArtifacts) error
}
