package domain

import "fmt"

// DeploymentState is one of the lifecycle states accepted by the
// GitHub deployment-status API.
type DeploymentState string

const (
	StatePending    DeploymentState = "pending"
	StateSuccess    DeploymentState = "success"
	StateFailure    DeploymentState = "failure"
	StateInactive   DeploymentState = "inactive"
	StateError      DeploymentState = "error"
	StateQueued     DeploymentState = "queued"
	StateInProgress DeploymentState = "in_progress"
)

// RunEnvironment is the explicit snapshot of the hosting CI context,
// constructed once at process entry and threaded by parameter. No
// component reads ambient environment state directly.
type RunEnvironment struct {
	// Inputs holds the action inputs keyed by their declared names
	// (lower-case, hyphenated).
	Inputs map[string]string

	// Repository is the "owner/name" slug of the repository the run
	// belongs to.
	Repository string
	ServerURL  string
	RunID      string

	// Deployment is the deployment object from the triggering event
	// payload, nil when the event carries none. It doubles as the
	// template-interpolation context for value files.
	Deployment map[string]interface{}
}

// DeploymentID returns the id of the triggering deployment, or 0 when
// the event payload carries no deployment.
func (e RunEnvironment) DeploymentID() int64 {
	if e.Deployment == nil {
		return 0
	}
	// encoding/json decodes numbers into float64.
	if id, ok := e.Deployment["id"].(float64); ok {
		return int64(id)
	}
	return 0
}

// LogURL points at the run's log page, used as the diagnostic URL on
// deployment statuses.
func (e RunEnvironment) LogURL() string {
	if e.ServerURL == "" || e.Repository == "" || e.RunID == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/actions/runs/%s", e.ServerURL, e.Repository, e.RunID)
}

// StatusTarget identifies the deployment a status update applies to.
type StatusTarget struct {
	Token        string
	Repository   string
	DeploymentID int64
	LogURL       string
}

// StatusTarget derives the status-update target for this run.
func (e RunEnvironment) StatusTarget(token string) StatusTarget {
	return StatusTarget{
		Token:        token,
		Repository:   e.Repository,
		DeploymentID: e.DeploymentID(),
		LogURL:       e.LogURL(),
	}
}
