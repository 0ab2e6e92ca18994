package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romnn/helm-deploy-action/internal/testutil"
)

const testKubeconfig = `apiVersion: v1
kind: Config
clusters:
- name: test
  cluster:
    server: https://kubernetes.example.com
contexts:
- name: test
  context:
    cluster: test
    user: test
current-context: test
users:
- name: test
  user:
    token: abc123
`

func TestMaterializeKubeconfig_WritesValidConfig(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)

	path, err := MaterializeKubeconfig(fileSystem, testKubeconfig)
	require.NoError(t, err)
	require.NotEmpty(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, testKubeconfig, string(content))
}

func TestMaterializeKubeconfig_RejectsMalformedConfig(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)

	_, err := MaterializeKubeconfig(fileSystem, "{{{ not a kubeconfig")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid inline kubeconfig")
}
