package domain

// Command selects the deployment action to perform.
type Command string

const (
	CommandUpgrade Command = "upgrade"
	CommandDelete  Command = "delete"
	CommandPush    Command = "push"
)

const (
	// DefaultNamespace is used when no namespace input is supplied.
	DefaultNamespace = "default"
	// DefaultRepoAlias names the primary chart repository when no alias
	// input is supplied.
	DefaultRepoAlias = "source-chart-repo"
)

// Repo describes one chart repository, optionally credentialed.
type Repo struct {
	URL      string `yaml:"url"`
	Alias    string `yaml:"alias"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ChartMetadata holds the fields parsed from a local chart manifest.
// Only Name and Version drive downstream logic; the rest is carried for
// logging.
type ChartMetadata struct {
	APIVersion  string `yaml:"apiVersion"`
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	AppVersion  string `yaml:"appVersion"`
	Description string `yaml:"description"`
}

// DeploymentIntent is the normalized, strongly-typed representation of
// one deployment action.
type DeploymentIntent struct {
	Command       Command
	Release       string
	Namespace     string
	Chart         string
	ChartMetadata *ChartMetadata
	ChartVersion  string
	AppVersion    string

	// Values is the inline override content as a single serialized
	// YAML document. The canonical empty document is "{}".
	Values     string
	ValueFiles []string
	Secrets    map[string]string

	Repo         Repo
	Dependencies []Repo

	DryRun bool
	Atomic bool
	UseOCI bool
	Force  bool

	Timeout string

	KubeconfigPath   string
	KubeconfigInline string

	Token string
}

// HasRepositories reports whether any chart repository is configured,
// which decides whether credential-artifact flags are threaded into
// repo-touching helm invocations.
func (i DeploymentIntent) HasRepositories() bool {
	return i.Repo.URL != "" || len(i.Dependencies) > 0
}

// CredentialArtifacts holds the paths of the two transient credential
// files handed to every repo-touching helm invocation. Ownership is
// exclusive to the run; both files are removed before the run ends.
type CredentialArtifacts struct {
	RepositoryConfigPath string
	RegistryConfigPath   string
}

// UpgradeSpec carries everything an upgrade invocation needs beyond the
// credential artifacts.
type UpgradeSpec struct {
	Release        string
	Chart          string
	Namespace      string
	KubeconfigPath string
	DryRun         bool
	Atomic         bool
	ChartVersion   string
	Timeout        string
	ValueFiles     []string
	// ValuesFilePath is the materialized inline values file, empty when
	// no inline values were supplied. It is always the last --values
	// argument so inline overrides win.
	ValuesFilePath string
}
