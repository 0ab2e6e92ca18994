package templater

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextTemplater_RendersSecretReferences(t *testing.T) {
	templater := ProvideTextTemplater()

	rendered, err := templater.Render("password: ${{ secrets.DB_PASSWORD }}", "values.yml", map[string]interface{}{
		"secrets": map[string]string{"DB_PASSWORD": "hunter2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "password: hunter2", rendered)
}

func TestTextTemplater_RendersDeploymentFields(t *testing.T) {
	templater := ProvideTextTemplater()

	rendered, err := templater.Render("ref: ${{ deployment.ref }}\nenv: ${{ deployment.environment }}", "values.yml", map[string]interface{}{
		"deployment": map[string]interface{}{"ref": "main", "environment": "production"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ref: main\nenv: production", rendered)
}

func TestTextTemplater_UnresolvedReferencesRenderEmpty(t *testing.T) {
	templater := ProvideTextTemplater()

	rendered, err := templater.Render("token: ${{ secrets.UNKNOWN }}", "values.yml", map[string]interface{}{
		"secrets": map[string]interface{}{},
	})
	require.NoError(t, err)
	assert.Equal(t, "token: ", rendered)
}

func TestTextTemplater_ToleratesVaryingWhitespace(t *testing.T) {
	templater := ProvideTextTemplater()

	rendered, err := templater.Render("a: ${{secrets.KEY}} b: ${{   secrets.KEY   }}", "values.yml", map[string]interface{}{
		"secrets": map[string]string{"KEY": "v"},
	})
	require.NoError(t, err)
	assert.Equal(t, "a: v b: v", rendered)
}

func TestTextTemplater_PlainContentPassesThrough(t *testing.T) {
	templater := ProvideTextTemplater()

	content := "replicas: 3\nimage: nginx:latest\n"
	rendered, err := templater.Render(content, "values.yml", nil)
	require.NoError(t, err)
	assert.Equal(t, content, rendered)
}
