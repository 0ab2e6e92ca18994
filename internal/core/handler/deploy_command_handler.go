package handler

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/romnn/helm-deploy-action/internal/cli/output"
	"github.com/romnn/helm-deploy-action/internal/core"
	"github.com/romnn/helm-deploy-action/internal/core/domain"
	"github.com/romnn/helm-deploy-action/internal/ports"
)

// DeployCommandHandler turns one run's inputs into the ordered helm
// invocations that realize the deployment intent. Execution is
// strictly sequential: every invocation must succeed before the next
// starts, and the first failure aborts the remaining steps and falls
// through to cleanup.
type DeployCommandHandler struct {
	fileSystem     ports.FileSystem
	helmClient     ports.HelmClient
	statusReporter ports.StatusReporter
	valuesRenderer *core.ValuesRenderer
}

func ProvideDeployCommandHandler(
	fileSystem ports.FileSystem,
	helmClient ports.HelmClient,
	statusReporter ports.StatusReporter,
	valuesRenderer *core.ValuesRenderer,
) DeployCommandHandler {
	return DeployCommandHandler{
		fileSystem:     fileSystem,
		helmClient:     helmClient,
		statusReporter: statusReporter,
		valuesRenderer: valuesRenderer,
	}
}

func (h *DeployCommandHandler) Handle(ctx context.Context, env domain.RunEnvironment) error {
	if err := h.run(ctx, env); err != nil {
		output.PrintError(err.Error())
		h.report(ctx, env, domain.StateFailure)
		return err
	}
	return nil
}

func (h *DeployCommandHandler) run(ctx context.Context, env domain.RunEnvironment) error {
	intent, err := core.NormalizeIntent(env.Inputs)
	if err != nil {
		return err
	}
	if err := core.ValidateIntent(intent); err != nil {
		return err
	}

	output.PrintHeader(fmt.Sprintf("helm %s", intent.Command))
	defer output.PrintEndGroup()

	if intent.Chart != "" {
		chart, metadata, err := core.ResolveChart(h.fileSystem, intent.Chart)
		if err != nil {
			return err
		}
		intent.Chart = chart
		intent.ChartMetadata = metadata
	}

	h.report(ctx, env, domain.StatePending)

	cleanup := core.NewCleanupSet(h.fileSystem)
	defer cleanup.Close()

	creds, err := core.MaterializeCredentials(h.fileSystem, intent)
	if err != nil {
		return err
	}
	cleanup.Add(creds.RepositoryConfigPath)
	cleanup.Add(creds.RegistryConfigPath)

	output.PrintStep("updating repository indexes")
	if err := h.helmClient.RepoUpdate(creds); err != nil {
		return err
	}

	valuesFilePath, err := h.valuesRenderer.WriteValuesFile(intent.Values)
	if err != nil {
		return err
	}
	cleanup.Add(valuesFilePath)

	if intent.KubeconfigInline != "" {
		kubeconfigPath, err := core.MaterializeKubeconfig(h.fileSystem, intent.KubeconfigInline)
		if err != nil {
			return err
		}
		cleanup.Add(kubeconfigPath)
		intent.KubeconfigPath = kubeconfigPath
	}

	// The inline values file renders last, matching its
	// highest-precedence position at invocation time.
	renderTargets := append([]string{}, intent.ValueFiles...)
	if valuesFilePath != "" {
		renderTargets = append(renderTargets, valuesFilePath)
	}
	if err := h.valuesRenderer.RenderFiles(renderTargets, intent, env.Deployment); err != nil {
		return err
	}

	switch intent.Command {
	case domain.CommandDelete:
		return h.delete(ctx, env, intent)
	case domain.CommandPush:
		return h.push(ctx, env, intent, creds)
	case domain.CommandUpgrade:
		return h.upgrade(ctx, env, intent, creds, valuesFilePath)
	default:
		return fmt.Errorf("unknown command: %s", intent.Command)
	}
}

func (h *DeployCommandHandler) delete(ctx context.Context, env domain.RunEnvironment, intent domain.DeploymentIntent) error {
	if intent.Release == "" {
		return domain.NewMissingFieldError("release")
	}

	output.PrintStep(fmt.Sprintf("deleting release %s", intent.Release))
	if err := h.helmClient.Delete(intent.Release, intent.Namespace, intent.KubeconfigPath); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("deleted release %s", intent.Release))
	h.report(ctx, env, domain.StateInactive)
	return nil
}

func (h *DeployCommandHandler) upgrade(ctx context.Context, env domain.RunEnvironment, intent domain.DeploymentIntent, creds domain.CredentialArtifacts, valuesFilePath string) error {
	if intent.Release == "" {
		return domain.NewMissingFieldError("release")
	}
	if intent.Chart == "" {
		return domain.NewMissingFieldError("chart")
	}

	spec := domain.UpgradeSpec{
		Release:        intent.Release,
		Chart:          intent.Chart,
		Namespace:      intent.Namespace,
		KubeconfigPath: intent.KubeconfigPath,
		DryRun:         intent.DryRun,
		Atomic:         intent.Atomic,
		ChartVersion:   intent.ChartVersion,
		Timeout:        intent.Timeout,
		ValueFiles:     intent.ValueFiles,
		ValuesFilePath: valuesFilePath,
	}
	var credentialOverrides *domain.CredentialArtifacts
	if intent.HasRepositories() {
		credentialOverrides = &creds
	}

	output.PrintStep(fmt.Sprintf("upgrading release %s with chart %s", intent.Release, intent.Chart))
	if err := h.helmClient.Upgrade(spec, credentialOverrides); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("upgraded release %s", intent.Release))
	h.report(ctx, env, domain.StateSuccess)
	return nil
}

func (h *DeployCommandHandler) push(ctx context.Context, env domain.RunEnvironment, intent domain.DeploymentIntent, creds domain.CredentialArtifacts) error {
	exists, err := h.fileSystem.FileExists(intent.Chart)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("chart path %q does not exist", intent.Chart)
	}
	if intent.ChartMetadata == nil || intent.ChartMetadata.Name == "" || intent.ChartMetadata.Version == "" {
		return domain.NewMissingFieldError("chart metadata")
	}
	if intent.Repo.URL == "" {
		return domain.NewMissingFieldError("repo")
	}

	if err := h.helmClient.InspectChart(intent.Chart); err != nil {
		return err
	}
	if err := h.helmClient.DependencyUpdate(intent.Chart, creds); err != nil {
		return err
	}

	output.PrintStep(fmt.Sprintf("packaging chart %s", intent.Chart))
	if err := h.helmClient.Package(intent.Chart, intent.ChartVersion, intent.AppVersion); err != nil {
		return err
	}

	version := intent.ChartMetadata.Version
	if intent.ChartVersion != "" {
		version = intent.ChartVersion
	}
	packagePath := filepath.Join(intent.Chart, fmt.Sprintf("%s-%s.tgz", intent.ChartMetadata.Name, version))
	packaged, err := h.fileSystem.FileExists(packagePath)
	if err != nil {
		return err
	}
	if !packaged {
		return fmt.Errorf("expected chart package %s was not produced", packagePath)
	}

	remote := intent.Repo.URL
	if intent.UseOCI {
		remote, err = core.RewriteOCIScheme(remote)
		if err != nil {
			return err
		}
	}

	output.PrintStep(fmt.Sprintf("pushing %s to %s", packagePath, remote))
	if err := h.helmClient.Push(packagePath, remote, intent.Force, creds); err != nil {
		return err
	}

	output.PrintSuccess(fmt.Sprintf("pushed chart %s", intent.ChartMetadata.Name))
	h.report(ctx, env, domain.StateSuccess)
	return nil
}

// report notifies the hosting platform, best effort. Notification
// failures are warnings and never influence the run outcome.
func (h *DeployCommandHandler) report(ctx context.Context, env domain.RunEnvironment, state domain.DeploymentState) {
	target := env.StatusTarget(env.Inputs["github-token"])
	if err := h.statusReporter.ReportStatus(ctx, target, state); err != nil {
		output.PrintWarning(fmt.Sprintf("failed to report deployment status %q: %v", state, err))
	}
}
