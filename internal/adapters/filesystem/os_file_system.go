package filesystem

import (
	"fmt"
	"os"

	"github.com/romnn/helm-deploy-action/internal/ports"
)

type OsFileSystem struct{}

func ProvideOsFileSystem() *OsFileSystem {
	return &OsFileSystem{}
}

func (f *OsFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *OsFileSystem) WriteFile(path string, content []byte, accessMode ports.AccessMode) error {
	if err := os.WriteFile(path, content, getOsFileModeForAccessMode(accessMode)); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// CreateTempFile writes content to a uniquely named file in the system
// temp directory. The mode is set explicitly after creation because
// os.CreateTemp always creates files as 0600 and the process umask
// would mask a wider mode anyway.
func (f *OsFileSystem) CreateTempFile(pattern string, content []byte, accessMode ports.AccessMode) (string, error) {
	file, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	path := file.Name()
	if _, err := file.Write(content); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(path, getOsFileModeForAccessMode(accessMode)); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to chmod temp file: %w", err)
	}
	return path, nil
}

func (f *OsFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check if file exists: %w", err)
}

func (f *OsFileSystem) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, fmt.Errorf("failed to stat %s: %w", path, err)
	}
	return info.IsDir(), nil
}

func (f *OsFileSystem) Remove(path string) error {
	return os.Remove(path)
}

func getOsFileModeForAccessMode(accessMode ports.AccessMode) os.FileMode {
	switch accessMode {
	case ports.ReadWrite:
		return 0600
	case ports.ReadWriteExecute:
		return 0700
	case ports.ReadAllWriteOwner:
		return 0644
	case ports.ReadWriteAll:
		return 0666
	default:
		return 0600
	}
}

var _ ports.FileSystem = (*OsFileSystem)(nil)
