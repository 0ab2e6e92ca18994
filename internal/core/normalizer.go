package core

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
)

// EmptyValuesDocument is the canonical serialization of absent inline
// values.
const EmptyValuesDocument = "{}"

// NormalizeIntent coerces the raw, stringly-typed action inputs into a
// DeploymentIntent, applying defaults. Structured fields accept YAML or
// JSON; a non-empty payload that fails to parse is a hard error.
// Normalization is deterministic: the same inputs always produce the
// identical intent, and defaults are applied exactly once.
func NormalizeIntent(inputs map[string]string) (domain.DeploymentIntent, error) {
	intent := domain.DeploymentIntent{
		Command:          domain.Command(strings.TrimSpace(inputs["command"])),
		Release:          inputs["release"],
		Namespace:        stringOrDefault(inputs["namespace"], domain.DefaultNamespace),
		Chart:            inputs["chart"],
		ChartVersion:     inputs["chart-version"],
		AppVersion:       inputs["app-version"],
		Timeout:          inputs["timeout"],
		KubeconfigPath:   inputs["kubeconfig-path"],
		KubeconfigInline: inputs["kubeconfig-inline"],
		Token:            inputs["github-token"],
		Repo: domain.Repo{
			URL:      inputs["repo"],
			Alias:    stringOrDefault(inputs["repo-alias"], domain.DefaultRepoAlias),
			Username: inputs["repo-username"],
			Password: inputs["repo-password"],
		},
	}

	var err error
	if intent.Values, err = normalizeValues(inputs["values"]); err != nil {
		return domain.DeploymentIntent{}, err
	}
	if intent.ValueFiles, err = normalizeValueFiles(inputs["value-files"]); err != nil {
		return domain.DeploymentIntent{}, err
	}
	if intent.Secrets, err = normalizeSecrets(inputs["secrets"]); err != nil {
		return domain.DeploymentIntent{}, err
	}
	if intent.Dependencies, err = normalizeDependencies(inputs["dependencies"]); err != nil {
		return domain.DeploymentIntent{}, err
	}

	if intent.DryRun, err = normalizeBool("dry-run", inputs["dry-run"], false); err != nil {
		return domain.DeploymentIntent{}, err
	}
	if intent.Atomic, err = normalizeBool("atomic", inputs["atomic"], true); err != nil {
		return domain.DeploymentIntent{}, err
	}
	if intent.UseOCI, err = normalizeBool("use-oci", inputs["use-oci"], true); err != nil {
		return domain.DeploymentIntent{}, err
	}
	if intent.Force, err = normalizeBool("force", inputs["force"], false); err != nil {
		return domain.DeploymentIntent{}, err
	}

	return intent, nil
}

func stringOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func normalizeBool(field, raw string, fallback bool) (bool, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes":
		return true, nil
	case "false", "no":
		return false, nil
	}
	return false, &domain.TypeError{Field: field, Value: raw, Reason: "must be one of true, yes, false, no"}
}

// normalizeValues validates the inline values document and passes it
// through verbatim. Absent values normalize to the canonical empty
// document.
func normalizeValues(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return EmptyValuesDocument, nil
	}
	var probe interface{}
	if err := yaml.Unmarshal([]byte(raw), &probe); err != nil {
		return "", &domain.TypeError{Field: "values", Value: raw, Reason: "must be valid YAML or JSON"}
	}
	return raw, nil
}

// normalizeValueFiles accepts a JSON/YAML array of strings, a single
// bare string (treated as a one-element list), or nothing. Non-list
// results normalize to an empty list and empty entries are dropped.
func normalizeValueFiles(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []string{}, nil
	}

	var probe interface{}
	if err := yaml.Unmarshal([]byte(trimmed), &probe); err != nil {
		// Not parseable as a document: treat the raw value as a single
		// file path.
		return []string{trimmed}, nil
	}

	switch v := probe.(type) {
	case string:
		if v == "" {
			return []string{}, nil
		}
		return []string{v}, nil
	case []interface{}:
		files := []string{}
		for _, entry := range v {
			s, ok := entry.(string)
			if !ok || s == "" {
				continue
			}
			files = append(files, s)
		}
		return files, nil
	default:
		return []string{}, nil
	}
}

// normalizeSecrets parses the secrets mapping. Secret values are
// stringified because they exist solely for template interpolation.
func normalizeSecrets(raw string) (map[string]string, error) {
	secrets := map[string]string{}
	if strings.TrimSpace(raw) == "" {
		return secrets, nil
	}
	var parsed map[string]interface{}
	if err := yaml.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil, &domain.TypeError{Field: "secrets", Value: raw, Reason: "must be a valid YAML or JSON map"}
	}
	for key, value := range parsed {
		if value == nil {
			secrets[key] = ""
			continue
		}
		secrets[key] = fmt.Sprintf("%v", value)
	}
	return secrets, nil
}

// dependencyInput mirrors the accepted dependency entry shape. The
// repository URL may arrive under either "repository" or "url".
type dependencyInput struct {
	Repository string `yaml:"repository"`
	URL        string `yaml:"url"`
	Alias      string `yaml:"alias"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
}

func (d dependencyInput) toRepo() domain.Repo {
	url := d.URL
	if url == "" {
		url = d.Repository
	}
	return domain.Repo{
		URL:      url,
		Alias:    d.Alias,
		Username: d.Username,
		Password: d.Password,
	}
}

// normalizeDependencies accepts a JSON/YAML array of repository
// entries or a single object (wrapped into a one-element list).
// Anything else normalizes to an empty list.
func normalizeDependencies(raw string) ([]domain.Repo, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []domain.Repo{}, nil
	}

	var probe interface{}
	if err := yaml.Unmarshal([]byte(trimmed), &probe); err != nil {
		return nil, &domain.TypeError{Field: "dependencies", Value: raw, Reason: "must be valid YAML or JSON"}
	}

	switch probe.(type) {
	case []interface{}:
		var entries []dependencyInput
		if err := yaml.Unmarshal([]byte(trimmed), &entries); err != nil {
			return nil, &domain.TypeError{Field: "dependencies", Value: raw, Reason: "entries must be repository objects"}
		}
		deps := make([]domain.Repo, 0, len(entries))
		for _, entry := range entries {
			deps = append(deps, entry.toRepo())
		}
		return deps, nil
	case map[string]interface{}:
		var entry dependencyInput
		if err := yaml.Unmarshal([]byte(trimmed), &entry); err != nil {
			return nil, &domain.TypeError{Field: "dependencies", Value: raw, Reason: "must be a repository object"}
		}
		return []domain.Repo{entry.toRepo()}, nil
	default:
		return []domain.Repo{}, nil
	}
}
