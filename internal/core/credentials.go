package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

// OCIScheme is the URL scheme of OCI-compliant artifact registries.
const OCIScheme = "oci"

// repositoryEntry is one repository in the helm repository-config
// document. Credentials are passed through on every request so
// authenticated manifest fetches work during install.
type repositoryEntry struct {
	Name                  string `yaml:"name"`
	URL                   string `yaml:"url"`
	Username              string `yaml:"username,omitempty"`
	Password              string `yaml:"password,omitempty"`
	CertFile              string `yaml:"certFile"`
	KeyFile               string `yaml:"keyFile"`
	CAFile                string `yaml:"caFile"`
	InsecureSkipTLSVerify bool   `yaml:"insecure_skip_tls_verify"`
	PassCredentialsAll    bool   `yaml:"pass_credentials_all"`
}

// repositoryConfig is the repository-list document consumed via helm's
// --repository-config flag.
type repositoryConfig struct {
	APIVersion   string            `yaml:"apiVersion"`
	Repositories []repositoryEntry `yaml:"repositories"`
}

// registryCredential is one entry of the registry-authentication
// document. Plain Username/Password fields, no base64 auth string.
type registryCredential struct {
	Username string `json:"Username"`
	Password string `json:"Password"`
}

// registryConfig is consumable as a container-registry auth config via
// helm's --registry-config flag.
type registryConfig struct {
	Auths map[string]registryCredential `json:"auths"`
}

// MaterializeCredentials derives the two transient credential files
// from the primary repo and the dependency list. The files are
// uniquely named per run and world-readable so the helm subprocess can
// read them regardless of uid; their short lifetime is the containment
// boundary. Half-supplied credential pairs fail before any file is
// written.
func MaterializeCredentials(fileSystem ports.FileSystem, intent domain.DeploymentIntent) (domain.CredentialArtifacts, error) {
	repos, err := collectRepositories(intent)
	if err != nil {
		return domain.CredentialArtifacts{}, err
	}

	repoDoc := repositoryConfig{APIVersion: "v1"}
	registryDoc := registryConfig{Auths: map[string]registryCredential{}}
	for _, repo := range repos {
		repoDoc.Repositories = append(repoDoc.Repositories, repositoryEntry{
			Name:               repo.Alias,
			URL:                repo.URL,
			Username:           repo.Username,
			Password:           repo.Password,
			PassCredentialsAll: true,
		})
		if repo.Username != "" {
			registryDoc.Auths[repo.URL] = registryCredential{
				Username: repo.Username,
				Password: repo.Password,
			}
		}
	}

	repoContent, err := yaml.Marshal(repoDoc)
	if err != nil {
		return domain.CredentialArtifacts{}, fmt.Errorf("failed to serialize repository config: %w", err)
	}
	registryContent, err := json.Marshal(registryDoc)
	if err != nil {
		return domain.CredentialArtifacts{}, fmt.Errorf("failed to serialize registry config: %w", err)
	}

	artifacts := domain.CredentialArtifacts{}
	artifacts.RepositoryConfigPath, err = fileSystem.CreateTempFile("helm-repositories-*.yaml", repoContent, ports.ReadWriteAll)
	if err != nil {
		return domain.CredentialArtifacts{}, fmt.Errorf("failed to write repository config: %w", err)
	}
	artifacts.RegistryConfigPath, err = fileSystem.CreateTempFile("helm-registry-*.json", registryContent, ports.ReadWriteAll)
	if err != nil {
		return domain.CredentialArtifacts{}, fmt.Errorf("failed to write registry config: %w", err)
	}

	return artifacts, nil
}

// collectRepositories gathers the primary repo and all dependencies
// with non-empty URLs, rewriting their schemes for OCI registries and
// re-enforcing the credential-pair invariant for dependency entries,
// which the top-level validator does not cover.
func collectRepositories(intent domain.DeploymentIntent) ([]domain.Repo, error) {
	entries := make([]domain.Repo, 0, len(intent.Dependencies)+1)

	appendEntry := func(repo domain.Repo, usernameField, passwordField string) error {
		if repo.URL == "" {
			return nil
		}
		if err := validateCredentialPair(repo.Username, repo.Password, usernameField, passwordField); err != nil {
			return err
		}
		if intent.UseOCI {
			rewritten, err := RewriteOCIScheme(repo.URL)
			if err != nil {
				return err
			}
			repo.URL = rewritten
		}
		entries = append(entries, repo)
		return nil
	}

	if err := appendEntry(intent.Repo, "repo-username", "repo-password"); err != nil {
		return nil, err
	}
	for i, dependency := range intent.Dependencies {
		if dependency.Alias == "" {
			dependency.Alias = fmt.Sprintf("dep-repo-%d", i)
		}
		usernameField := fmt.Sprintf("username for dependency %q", dependency.Alias)
		passwordField := fmt.Sprintf("password for dependency %q", dependency.Alias)
		if err := appendEntry(dependency, usernameField, passwordField); err != nil {
			return nil, err
		}
	}

	return entries, nil
}

// RewriteOCIScheme replaces the URL's scheme with the OCI scheme. The
// call exists only to perform that change, so a result equal to the
// input is an error.
func RewriteOCIScheme(rawURL string) (string, error) {
	rest := rawURL
	if _, after, found := strings.Cut(rawURL, "://"); found {
		rest = after
	}
	rewritten := OCIScheme + "://" + rest
	if rewritten == rawURL {
		return "", fmt.Errorf("url %q already uses the %s scheme", rawURL, OCIScheme)
	}
	return rewritten, nil
}
