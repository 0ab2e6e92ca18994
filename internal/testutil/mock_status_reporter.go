package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/romnn/helm-deploy-action/internal/core/domain"
)

type MockStatusReporter struct {
	mock.Mock
}

func (m *MockStatusReporter) ReportStatus(ctx context.Context, target domain.StatusTarget, state domain.DeploymentState) error {
	args := m.Called(ctx, target, state)
	return args.Error(0)
}
