package core

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

// ValuesRenderer materializes the inline values document and
// template-expands user-supplied value files with the deployment event
// context and the secrets mapping.
type ValuesRenderer struct {
	fileSystem ports.FileSystem
	templater  ports.Templater
}

func ProvideValuesRenderer(fileSystem ports.FileSystem, templater ports.Templater) *ValuesRenderer {
	return &ValuesRenderer{
		fileSystem: fileSystem,
		templater:  templater,
	}
}

// WriteValuesFile writes the inline values document to a uniquely
// named transient file and returns its path. No file is written for
// the canonical empty document: no values means no --values flag.
func (r *ValuesRenderer) WriteValuesFile(values string) (string, error) {
	if strings.TrimSpace(values) == "" || strings.TrimSpace(values) == EmptyValuesDocument {
		return "", nil
	}
	path, err := r.fileSystem.CreateTempFile("helm-values-*.yml", []byte(values), ports.ReadAllWriteOwner)
	if err != nil {
		return "", fmt.Errorf("failed to write values file: %w", err)
	}
	return path, nil
}

// RenderFiles rewrites each file in place, substituting
// ${{ secrets.<key> }} and ${{ deployment.<field> }} references. Files
// are processed independently and a path is only rewritten after its
// content rendered successfully, so one failing file never corrupts
// the others.
func (r *ValuesRenderer) RenderFiles(paths []string, intent domain.DeploymentIntent, deployment map[string]interface{}) error {
	context := map[string]interface{}{
		"secrets":    intent.Secrets,
		"deployment": deployment,
	}

	for _, path := range paths {
		content, err := r.fileSystem.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read value file %s: %w", path, err)
		}
		rendered, err := r.templater.Render(string(content), filepath.Base(path), context)
		if err != nil {
			return fmt.Errorf("failed to render value file %s: %w", path, err)
		}
		if err := r.fileSystem.WriteFile(path, []byte(rendered), ports.ReadAllWriteOwner); err != nil {
			return fmt.Errorf("failed to write value file %s: %w", path, err)
		}
	}
	return nil
}
