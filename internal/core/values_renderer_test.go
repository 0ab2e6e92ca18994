package core

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/romnn/helm-deploy-action/internal/adapters/templater"
	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/testutil"
)

func newValuesRenderer(t *testing.T) (*ValuesRenderer, *testutil.TestFileSystem) {
	fileSystem := testutil.NewTestFileSystem(t)
	return ProvideValuesRenderer(fileSystem, templater.ProvideTextTemplater()), fileSystem
}

func TestWriteValuesFile_EmptyDocumentsProduceNoFile(t *testing.T) {
	renderer, _ := newValuesRenderer(t)

	for _, values := range []string{"", "  ", "{}", " {} "} {
		path, err := renderer.WriteValuesFile(values)
		require.NoError(t, err)
		assert.Empty(t, path)
	}
}

func TestWriteValuesFile_WritesContentVerbatim(t *testing.T) {
	renderer, _ := newValuesRenderer(t)

	path, err := renderer.WriteValuesFile("replicas: 3\n")
	require.NoError(t, err)
	require.NotEmpty(t, path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "replicas: 3\n", string(content))
}

func TestRenderFiles_SubstitutesSecretsAndDeployment(t *testing.T) {
	renderer, fileSystem := newValuesRenderer(t)

	path := filepath.Join(fileSystem.BaseDir(), "values.yml")
	require.NoError(t, os.WriteFile(path, []byte("password: ${{ secrets.DB_PASSWORD }}\nref: ${{ deployment.ref }}\n"), 0o600))

	intent := domain.DeploymentIntent{Secrets: map[string]string{"DB_PASSWORD": "hunter2"}}
	deployment := map[string]interface{}{"ref": "main"}
	require.NoError(t, renderer.RenderFiles([]string{path}, intent, deployment))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "password: hunter2\nref: main\n", string(content))
}

func TestRenderFiles_UnresolvedReferencesBecomeEmpty(t *testing.T) {
	renderer, fileSystem := newValuesRenderer(t)

	path := filepath.Join(fileSystem.BaseDir(), "values.yml")
	require.NoError(t, os.WriteFile(path, []byte("token: ${{ secrets.UNKNOWN }}\n"), 0o600))

	require.NoError(t, renderer.RenderFiles([]string{path}, domain.DeploymentIntent{}, nil))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "token: \n", string(content))
}

func TestRenderFiles_TemplateErrorLeavesFileUntouched(t *testing.T) {
	fileSystem := new(testutil.MockFileSystem)
	templaterMock := new(testutil.MockTemplater)
	fileSystem.On("ReadFile", "/tmp/values.yml").Return([]byte("broken"), nil)
	templaterMock.On("Render", "broken", "values.yml", mock.Anything).Return("", errors.New("template: values.yml: unexpected EOF"))

	renderer := ProvideValuesRenderer(fileSystem, templaterMock)

	err := renderer.RenderFiles([]string{"/tmp/values.yml"}, domain.DeploymentIntent{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to render value file")
	fileSystem.AssertNotCalled(t, "WriteFile", mock.Anything, mock.Anything, mock.Anything)
}

func TestRenderFiles_MissingFileFails(t *testing.T) {
	renderer, fileSystem := newValuesRenderer(t)

	err := renderer.RenderFiles([]string{filepath.Join(fileSystem.BaseDir(), "absent.yml")}, domain.DeploymentIntent{}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read value file")
}
