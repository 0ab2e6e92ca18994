package ports

// CommandRunner executes shell commands and returns their output.
type CommandRunner interface {
	Run(name string, args ...string) ([]byte, error)
	RunInDir(dir, name string, args ...string) ([]byte, error)
	RunWithEnv(name string, env []string, args ...string) ([]byte, error)
}
