package core

import (
	"github.com/romnn/helm-deploy-action/internal/core/domain"
)

// ValidateIntent enforces the cross-field invariants that per-field
// typing cannot express. It fails fast on the first violation, and the
// check order is fixed so error messages are reproducible:
// required-field checks run before paired-field checks.
func ValidateIntent(intent domain.DeploymentIntent) error {
	if intent.Command == "" {
		return domain.NewMissingFieldError("command")
	}

	switch intent.Command {
	case domain.CommandUpgrade, domain.CommandDelete:
		if intent.Release == "" {
			return domain.NewMissingFieldError("release")
		}
	}

	switch intent.Command {
	case domain.CommandUpgrade, domain.CommandPush:
		if intent.Chart == "" {
			return domain.NewMissingFieldError("chart")
		}
	}

	if intent.Command == domain.CommandPush && intent.Repo.URL == "" {
		return domain.NewMissingFieldError("repo")
	}

	if err := validateCredentialPair(intent.Repo.Username, intent.Repo.Password, "repo-username", "repo-password"); err != nil {
		return err
	}

	return nil
}

// validateCredentialPair enforces that username and password are
// both present or both absent.
func validateCredentialPair(username, password, usernameField, passwordField string) error {
	if username != "" && password == "" {
		return &domain.PairedFieldError{Supplied: usernameField, Missing: passwordField}
	}
	if password != "" && username == "" {
		return &domain.PairedFieldError{Supplied: passwordField, Missing: usernameField}
	}
	return nil
}
