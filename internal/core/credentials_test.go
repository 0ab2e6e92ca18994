package core

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/ports"
	"github.com/romnn/helm-deploy-action/internal/testutil"
)

func TestMaterializeCredentials_WritesBothArtifacts(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	intent := domain.DeploymentIntent{
		UseOCI: false,
		Repo: domain.Repo{
			URL:      "https://charts.example.com",
			Alias:    "source-chart-repo",
			Username: "user",
			Password: "secret",
		},
		Dependencies: []domain.Repo{
			{URL: "https://deps.example.com", Alias: "deps"},
		},
	}

	artifacts, err := MaterializeCredentials(fileSystem, intent)
	require.NoError(t, err)

	repoContent, err := os.ReadFile(artifacts.RepositoryConfigPath)
	require.NoError(t, err)
	var repoDoc struct {
		APIVersion   string `yaml:"apiVersion"`
		Repositories []struct {
			Name               string `yaml:"name"`
			URL                string `yaml:"url"`
			Username           string `yaml:"username"`
			Password           string `yaml:"password"`
			PassCredentialsAll bool   `yaml:"pass_credentials_all"`
		} `yaml:"repositories"`
	}
	require.NoError(t, yaml.Unmarshal(repoContent, &repoDoc))
	assert.Equal(t, "v1", repoDoc.APIVersion)
	require.Len(t, repoDoc.Repositories, 2)
	assert.Equal(t, "source-chart-repo", repoDoc.Repositories[0].Name)
	assert.Equal(t, "https://charts.example.com", repoDoc.Repositories[0].URL)
	assert.Equal(t, "user", repoDoc.Repositories[0].Username)
	assert.True(t, repoDoc.Repositories[0].PassCredentialsAll)
	assert.Equal(t, "deps", repoDoc.Repositories[1].Name)
	assert.True(t, repoDoc.Repositories[1].PassCredentialsAll)

	registryContent, err := os.ReadFile(artifacts.RegistryConfigPath)
	require.NoError(t, err)
	var registryDoc struct {
		Auths map[string]struct {
			Username string `json:"Username"`
			Password string `json:"Password"`
		} `json:"auths"`
	}
	require.NoError(t, json.Unmarshal(registryContent, &registryDoc))
	require.Contains(t, registryDoc.Auths, "https://charts.example.com")
	assert.Equal(t, "user", registryDoc.Auths["https://charts.example.com"].Username)
	assert.Equal(t, "secret", registryDoc.Auths["https://charts.example.com"].Password)
	// The uncredentialed dependency has no registry auth entry.
	assert.NotContains(t, registryDoc.Auths, "https://deps.example.com")
}

func TestMaterializeCredentials_RewritesOCIScheme(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	intent := domain.DeploymentIntent{
		UseOCI: true,
		Repo:   domain.Repo{URL: "https://registry.example.com/charts", Alias: "source-chart-repo"},
	}

	artifacts, err := MaterializeCredentials(fileSystem, intent)
	require.NoError(t, err)

	content, err := os.ReadFile(artifacts.RepositoryConfigPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "oci://registry.example.com/charts")
	assert.NotContains(t, string(content), "https://registry.example.com/charts")
}

func TestMaterializeCredentials_DependencyPairFailsBeforeAnyWrite(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	intent := domain.DeploymentIntent{
		Dependencies: []domain.Repo{
			{URL: "https://deps.example.com", Alias: "deps", Username: "user"},
		},
	}

	_, err := MaterializeCredentials(fileSystem, intent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing password")
	// No file writes happened.
	fileSystem.AssertNotCalled(t, "CreateTempFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestMaterializeCredentials_ArtifactsAreWorldReadWrite(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	fileSystem.On("CreateTempFile", "helm-repositories-*.yaml", mock.Anything, ports.AccessMode(ports.ReadWriteAll)).Return("/tmp/repos.yaml", nil)
	fileSystem.On("CreateTempFile", "helm-registry-*.json", mock.Anything, ports.AccessMode(ports.ReadWriteAll)).Return("/tmp/registry.json", nil)

	artifacts, err := MaterializeCredentials(fileSystem, domain.DeploymentIntent{
		Repo: domain.Repo{URL: "https://charts.example.com", Alias: "source-chart-repo"},
	})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/repos.yaml", artifacts.RepositoryConfigPath)
	assert.Equal(t, "/tmp/registry.json", artifacts.RegistryConfigPath)
	fileSystem.AssertExpectations(t)
}

func TestRewriteOCIScheme(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{"https", "https://registry.example.com/charts", "oci://registry.example.com/charts", false},
		{"http", "http://registry.example.com", "oci://registry.example.com", false},
		{"no scheme", "registry.example.com/charts", "oci://registry.example.com/charts", false},
		{"already oci", "oci://registry.example.com", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rewritten, err := RewriteOCIScheme(tt.url)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, rewritten)
			assert.NotEqual(t, tt.url, rewritten)
		})
	}
}
