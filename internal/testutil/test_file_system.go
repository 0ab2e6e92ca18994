package testutil

import (
	"os"
	"testing"

	"github.com/romnn/helm-deploy-action/internal/ports"
)

// TestFileSystem provides real file system operations with transient
// files confined to a per-test temporary directory.
// Use this in tests that need to actually read/write files.
// For unit tests that mock file system calls, use MockFileSystem instead.
type TestFileSystem struct {
	baseDir string
}

// NewTestFileSystem creates a file system whose temp files live in a
// temporary directory that is cleaned up when the test completes.
func NewTestFileSystem(t *testing.T) *TestFileSystem {
	t.Helper()
	return &TestFileSystem{baseDir: t.TempDir()}
}

// BaseDir returns the directory temp files are created in.
// Use this when you need to construct paths or verify file locations.
func (f *TestFileSystem) BaseDir() string {
	return f.baseDir
}

func (f *TestFileSystem) ReadFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (f *TestFileSystem) WriteFile(path string, content []byte, _ ports.AccessMode) error {
	return os.WriteFile(path, content, 0600)
}

func (f *TestFileSystem) CreateTempFile(pattern string, content []byte, _ ports.AccessMode) (string, error) {
	file, err := os.CreateTemp(f.baseDir, pattern)
	if err != nil {
		return "", err
	}
	if _, err := file.Write(content); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (f *TestFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (f *TestFileSystem) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}

func (f *TestFileSystem) Remove(path string) error {
	return os.Remove(path)
}

var _ ports.FileSystem = (*TestFileSystem)(nil)
