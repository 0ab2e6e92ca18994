package core

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

const inputPrefix = "INPUT_"

// ReadRunEnvironment builds the explicit environment snapshot for one
// run from the process environment (as returned by os.Environ) and the
// event payload file. It is the only place the hosting platform's
// variable protocol is interpreted; every component downstream takes
// the snapshot by parameter.
func ReadRunEnvironment(environ []string, fileSystem ports.FileSystem) (domain.RunEnvironment, error) {
	env := domain.RunEnvironment{Inputs: map[string]string{}}

	vars := map[string]string{}
	for _, entry := range environ {
		key, value, found := strings.Cut(entry, "=")
		if !found {
			continue
		}
		vars[key] = value
		if strings.HasPrefix(key, inputPrefix) {
			// Action inputs arrive as INPUT_<NAME> with the name
			// uppercased; hyphens are preserved.
			name := strings.ToLower(strings.TrimPrefix(key, inputPrefix))
			env.Inputs[name] = value
		}
	}

	env.Repository = vars["GITHUB_REPOSITORY"]
	env.ServerURL = vars["GITHUB_SERVER_URL"]
	env.RunID = vars["GITHUB_RUN_ID"]

	eventPath := vars["GITHUB_EVENT_PATH"]
	if eventPath == "" {
		return env, nil
	}
	exists, err := fileSystem.FileExists(eventPath)
	if err != nil || !exists {
		return env, nil
	}
	payload, err := fileSystem.ReadFile(eventPath)
	if err != nil {
		return domain.RunEnvironment{}, fmt.Errorf("failed to read event payload %s: %w", eventPath, err)
	}
	var event struct {
		Deployment map[string]interface{} `json:"deployment"`
	}
	if err := json.Unmarshal(payload, &event); err != nil {
		return domain.RunEnvironment{}, fmt.Errorf("failed to parse event payload %s: %w", eventPath, err)
	}
	env.Deployment = event.Deployment

	return env, nil
}
