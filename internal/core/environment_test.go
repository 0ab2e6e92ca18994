package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/romnn/helm-deploy-action/internal/testutil"
)

func TestReadRunEnvironment_ParsesInputs(t *testing.T) {
	environ := []string{
		"INPUT_COMMAND=upgrade",
		"INPUT_REPO-USERNAME=user",
		"INPUT_GITHUB-TOKEN=token123",
		"PATH=/usr/bin",
		"MALFORMED",
	}

	env, err := ReadRunEnvironment(environ, testutil.NewTestFileSystem(t))
	require.NoError(t, err)

	assert.Equal(t, "upgrade", env.Inputs["command"])
	assert.Equal(t, "user", env.Inputs["repo-username"])
	assert.Equal(t, "token123", env.Inputs["github-token"])
	assert.NotContains(t, env.Inputs, "path")
	assert.Len(t, env.Inputs, 3)
}

func TestReadRunEnvironment_ReadsRunMetadata(t *testing.T) {
	environ := []string{
		"GITHUB_REPOSITORY=acme/widgets",
		"GITHUB_SERVER_URL=https://github.com",
		"GITHUB_RUN_ID=4242",
	}

	env, err := ReadRunEnvironment(environ, testutil.NewTestFileSystem(t))
	require.NoError(t, err)

	assert.Equal(t, "acme/widgets", env.Repository)
	assert.Equal(t, "https://github.com/acme/widgets/actions/runs/4242", env.LogURL())
}

func TestReadRunEnvironment_LoadsDeploymentFromEventPayload(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	eventPath := filepath.Join(fileSystem.BaseDir(), "event.json")
	payload := `{"deployment": {"id": 9000, "ref": "main", "environment": "production"}}`
	require.NoError(t, os.WriteFile(eventPath, []byte(payload), 0o600))

	env, err := ReadRunEnvironment([]string{"GITHUB_EVENT_PATH=" + eventPath}, fileSystem)
	require.NoError(t, err)

	assert.Equal(t, int64(9000), env.DeploymentID())
	assert.Equal(t, "main", env.Deployment["ref"])
}

func TestReadRunEnvironment_MissingEventPayloadIsTolerated(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)

	env, err := ReadRunEnvironment([]string{"GITHUB_EVENT_PATH=" + filepath.Join(fileSystem.BaseDir(), "absent.json")}, fileSystem)
	require.NoError(t, err)

	assert.Nil(t, env.Deployment)
	assert.Zero(t, env.DeploymentID())
}

func TestReadRunEnvironment_MalformedEventPayloadFails(t *testing.T) {
	fileSystem := testutil.NewTestFileSystem(t)
	eventPath := filepath.Join(fileSystem.BaseDir(), "event.json")
	require.NoError(t, os.WriteFile(eventPath, []byte("not json"), 0o600))

	_, err := ReadRunEnvironment([]string{"GITHUB_EVENT_PATH=" + eventPath}, fileSystem)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse event payload")
}

func TestStatusTarget_DerivedFromEnvironment(t *testing.T) {
	environ := []string{
		"GITHUB_REPOSITORY=acme/widgets",
		"GITHUB_SERVER_URL=https://github.com",
		"GITHUB_RUN_ID=7",
	}
	env, err := ReadRunEnvironment(environ, testutil.NewTestFileSystem(t))
	require.NoError(t, err)
	env.Deployment = map[string]interface{}{"id": float64(123)}

	target := env.StatusTarget("token123")
	assert.Equal(t, "token123", target.Token)
	assert.Equal(t, "acme/widgets", target.Repository)
	assert.Equal(t, int64(123), target.DeploymentID)
	assert.Equal(t, "https://github.com/acme/widgets/actions/runs/7", target.LogURL)
}
