package core

import (
	"fmt"

	"k8s.io/client-go/tools/clientcmd"

	"github.com/romnn/helm-deploy-action/internal/ports"
)

// MaterializeKubeconfig validates an inline kubeconfig document and
// writes it to a uniquely named transient file. Validation happens
// before anything touches the disk so a malformed kubeconfig fails
// here instead of surfacing as an opaque helm error.
func MaterializeKubeconfig(fileSystem ports.FileSystem, inline string) (string, error) {
	if _, err := clientcmd.Load([]byte(inline)); err != nil {
		return "", fmt.Errorf("invalid inline kubeconfig: %w", err)
	}
	path, err := fileSystem.CreateTempFile("kubeconfig-*.yaml", []byte(inline), ports.ReadWrite)
	if err != nil {
		return "", fmt.Errorf("failed to write kubeconfig: %w", err)
	}
	return path, nil
}
