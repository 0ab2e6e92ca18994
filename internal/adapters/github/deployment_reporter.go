package github

import (
	"context"
	"errors"
	"fmt"
	"strings"

	gogithub "github.com/google/go-github/v68/github"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

var _ ports.StatusReporter = (*DeploymentReporter)(nil)

// DeploymentReporter implements ports.StatusReporter against the
// GitHub deployment-status API.
type DeploymentReporter struct {
	// baseURL overrides the API endpoint, used by tests.
	baseURL string
}

func ProvideDeploymentReporter() *DeploymentReporter {
	return &DeploymentReporter{}
}

// ReportStatus creates one deployment status for the triggering
// deployment. Callers are expected to treat any returned error as a
// warning: a missing token or an event without a deployment is a
// normal condition for manually triggered runs.
func (r *DeploymentReporter) ReportStatus(ctx context.Context, target domain.StatusTarget, state domain.DeploymentState) error {
	if target.Token == "" {
		return errors.New("no github token supplied")
	}
	if target.DeploymentID == 0 {
		return errors.New("triggering event carries no deployment")
	}
	owner, repo, found := strings.Cut(target.Repository, "/")
	if !found {
		return fmt.Errorf("invalid repository slug %q", target.Repository)
	}

	client := gogithub.NewClient(nil).WithAuthToken(target.Token)
	if r.baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(r.baseURL, r.baseURL)
		if err != nil {
			return fmt.Errorf("failed to configure api endpoint: %w", err)
		}
	}

	request := &gogithub.DeploymentStatusRequest{
		State: gogithub.Ptr(string(state)),
	}
	if target.LogURL != "" {
		request.LogURL = gogithub.Ptr(target.LogURL)
	}

	_, _, err := client.Repositories.CreateDeploymentStatus(ctx, owner, repo, target.DeploymentID, request)
	if err != nil {
		return fmt.Errorf("failed to create deployment status: %w", err)
	}
	return nil
}
