package core

import (
	"fmt"

	"github.com/romnn/helm-deploy-action/internal/cli/output"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

// CleanupSet tracks the transient files of one run and guarantees
// their removal on every exit path. Removal failures are logged, never
// returned, so they cannot shadow the primary failure reason.
type CleanupSet struct {
	fileSystem ports.FileSystem
	paths      []string
}

func NewCleanupSet(fileSystem ports.FileSystem) *CleanupSet {
	return &CleanupSet{fileSystem: fileSystem}
}

// Add registers a path for removal. Empty paths are ignored.
func (c *CleanupSet) Add(path string) {
	if path == "" {
		return
	}
	c.paths = append(c.paths, path)
}

// Close removes every registered file. It is safe to call with no
// registered paths.
func (c *CleanupSet) Close() {
	for _, path := range c.paths {
		if err := c.fileSystem.Remove(path); err != nil {
			output.PrintWarning(fmt.Sprintf("failed to remove %s: %v", path, err))
		}
	}
	c.paths = nil
}
