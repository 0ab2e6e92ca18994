package ports

import (
	"context"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
)

// StatusReporter notifies the hosting platform of deployment lifecycle
// state. Callers treat failures as warnings; a notification failure
// must never mask the deployment outcome.
type StatusReporter interface {
	ReportStatus(ctx context.Context, target domain.StatusTarget, state domain.DeploymentState) error
}
