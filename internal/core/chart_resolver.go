package core

import (
	"fmt"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

// ChartManifestName is the manifest file every chart directory must
// contain.
const ChartManifestName = "Chart.yaml"

// shorthandPattern matches <repo-alias>/<chart-name> references.
var shorthandPattern = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// ResolveChart classifies the chart reference. A local path wins when
// it exists, regardless of whether the string would also be a valid
// shorthand or URL reference; in that case the returned chart is the
// cleaned chart directory and metadata is parsed from its manifest.
// Otherwise the reference must be a valid <repo-alias>/<name>
// shorthand or an absolute URL, returned verbatim with nil metadata.
func ResolveChart(fileSystem ports.FileSystem, chart string) (string, *domain.ChartMetadata, error) {
	exists, err := fileSystem.FileExists(chart)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve chart %q: %w", chart, err)
	}

	if !exists {
		if shorthandPattern.MatchString(chart) || isAbsoluteURL(chart) {
			return chart, nil, nil
		}
		return "", nil, fmt.Errorf("chart path %q does not exist and is not a valid repository reference", chart)
	}

	dir := filepath.Clean(chart)
	if filepath.Base(dir) == ChartManifestName {
		dir = filepath.Dir(dir)
	}

	isDir, err := fileSystem.IsDir(dir)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve chart %q: %w", chart, err)
	}
	if !isDir {
		return "", nil, fmt.Errorf("chart path %q is not a directory", dir)
	}

	manifestPath := filepath.Join(dir, ChartManifestName)
	manifestExists, err := fileSystem.FileExists(manifestPath)
	if err != nil {
		return "", nil, fmt.Errorf("failed to resolve chart %q: %w", chart, err)
	}
	if !manifestExists {
		return "", nil, fmt.Errorf("chart directory %q contains no %s", dir, ChartManifestName)
	}

	metadata, err := loadChartMetadata(fileSystem, manifestPath)
	if err != nil {
		return "", nil, err
	}

	return dir, metadata, nil
}

func loadChartMetadata(fileSystem ports.FileSystem, manifestPath string) (*domain.ChartMetadata, error) {
	content, err := fileSystem.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", manifestPath, err)
	}
	var metadata domain.ChartMetadata
	if err := yaml.Unmarshal(content, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", manifestPath, err)
	}
	return &metadata, nil
}

func isAbsoluteURL(reference string) bool {
	if !strings.Contains(reference, "://") {
		return false
	}
	parsed, err := url.Parse(reference)
	return err == nil && parsed.Scheme != "" && parsed.Host != ""
}
