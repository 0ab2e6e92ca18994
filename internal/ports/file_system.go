package ports

type AccessMode int

const (
	ReadWrite = iota
	ReadWriteExecute
	ReadAllWriteOwner
	// ReadWriteAll keeps credential artifacts readable by the helm
	// subprocess even when its effective uid differs from ours, which
	// happens in CI containers with uid mismatches. The file lifetime,
	// not the mode, is the containment boundary.
	ReadWriteAll
)

type FileSystem interface {
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, content []byte, accessMode AccessMode) error
	// CreateTempFile writes content to a uniquely named file in the
	// system temp directory so concurrent runs on a shared host never
	// collide. Returns the generated path.
	CreateTempFile(pattern string, content []byte, accessMode AccessMode) (string, error)
	FileExists(path string) (bool, error)
	IsDir(path string) (bool, error)
	Remove(path string) error
}
