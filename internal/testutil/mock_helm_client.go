package testutil

import (
	"github.com/stretchr/testify/mock"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
)

type MockHelmClient struct {
	mock.Mock
}

func (m *MockHelmClient) RepoUpdate(creds domain.CredentialArtifacts) error {
	args := m.Called(creds)
	return args.Error(0)
}

func (m *MockHelmClient) Upgrade(spec domain.UpgradeSpec, creds *domain.CredentialArtifacts) error {
	args := m.Called(spec, creds)
	return args.Error(0)
}

func (m *MockHelmClient) Delete(release, namespace, kubeconfigPath string) error {
	args := m.Called(release, namespace, kubeconfigPath)
	return args.Error(0)
}

func (m *MockHelmClient) InspectChart(chartPath string) error {
	args := m.Called(chartPath)
	return args.Error(0)
}

func (m *MockHelmClient) DependencyUpdate(chartPath string, creds domain.CredentialArtifacts) error {
	args := m.Called(chartPath, creds)
	return args.Error(0)
}

func (m *MockHelmClient) Package(chartPath, version, appVersion string) error {
	args := m.Called(chartPath, version, appVersion)
	return args.Error(0)
}

func (m *MockHelmClient) Push(packagePath, remote string, force bool, creds domain.CredentialArtifacts) error {
	args := m.Called(packagePath, remote, force, creds)
	return args.Error(0)
}
