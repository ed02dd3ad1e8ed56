package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/goozereport/internal/domain"
	domainmocks "gooze.dev/pkg/goozereport/internal/domain/mocks"
	m "gooze.dev/pkg/goozereport/internal/model"
)

func captureRunArgs(t *testing.T, cliArgs ...string) domain.RunArgs {
	t.Helper()

	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	var got domain.RunArgs

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).
		Run(func(_ context.Context, args domain.RunArgs) { got = args }).
		Return(nil)

	cmd, _ := newTestRootCmd(t, newRunCmd())
	cmd.SetArgs(append([]string{"run"}, cliArgs...))
	require.NoError(t, cmd.Execute())

	return got
}

func TestRunCmd_Defaults(t *testing.T) {
	got := captureRunArgs(t, "results.json", "./more/...")

	wantDir, err := filepath.Abs(defaultSharedDir)
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"results.json", "./more/..."}, got.Paths)
	assert.Equal(t, m.Path(wantDir), got.SharedDir)
	assert.Equal(t, m.Path(""), got.Coverage)
	assert.Equal(t, m.DisabledThresholds(), got.Thresholds)
	assert.Equal(t, "", got.Unit.ModulePath)
	assert.False(t, got.Unit.Last)
	assert.False(t, got.Spill)
	assert.Equal(t, domain.PublishArgs{}, got.Publish)
}

func TestRunCmd_ResolvesModulePath(t *testing.T) {
	got := captureRunArgs(t, "--module", "project/service/api", "--root-name", "project", "results.json")

	assert.Equal(t, "service/api", got.Unit.ModulePath)
}

func TestRunCmd_ThresholdAndCoverageFlags(t *testing.T) {
	got := captureRunArgs(t,
		"--mutation-score", "80", "--test-strength", "70", "--line-coverage", "60", "--max-surviving", "3",
		"--coverage", "coverage.json", "--spill", "results.json")

	assert.Equal(t, m.Thresholds{MutationScore: 80, TestStrength: 70, LineCoverage: 60, MaxSurviving: 3}, got.Thresholds)
	assert.Equal(t, m.Path("coverage.json"), got.Coverage)
	assert.True(t, got.Spill)
}

func TestRunCmd_BuildFlags(t *testing.T) {
	got := captureRunArgs(t,
		"--build-host", "ci.example.com", "--build-type-id", "Project_Mutations", "--build-id", "42",
		"--artifacts-path", "reports", "results.json")

	assert.Equal(t, "ci.example.com", got.Unit.Host)
	assert.Equal(t, "Project_Mutations", got.Unit.BuildTypeID)
	assert.Equal(t, "42", got.Unit.BuildID)
	assert.Equal(t, "reports", got.Unit.ArtifactsPath)
}

func TestRunCmd_LastUnitCarriesPublishArgs(t *testing.T) {
	t.Setenv("GOOZE_REPORT_GITHUB_TOKEN", "secret")

	got := captureRunArgs(t,
		"--last", "--repo", "acme/widgets", "--pr", "7",
		"--expected", "core", "--expected", "api",
		"--merge-timeout", "1m", "--poll-interval", "500ms", "--post-empty",
		"results.json")

	assert.True(t, got.Unit.Last)
	assert.Equal(t, "acme/widgets", got.Unit.Remote.Repo)
	assert.Equal(t, 7, got.Unit.Remote.PRNumber)
	assert.Equal(t, "secret", got.Unit.Remote.Token)

	publish := got.Publish
	assert.Equal(t, got.SharedDir, publish.Collect.SharedDir)
	assert.Equal(t, []string{"core", "api"}, publish.Collect.Expected)
	assert.Equal(t, time.Minute, publish.Collect.Timeout)
	assert.Equal(t, 500*time.Millisecond, publish.Collect.PollInterval)
	assert.True(t, publish.PostEmpty)
	assert.False(t, publish.DryRun)
	assert.Equal(t, domain.DefaultCommentHeader, publish.Header)
	assert.Equal(t, domain.DefaultCommentMarker, publish.Marker)
}

func TestRunCmd_ManifestFeedsExpectedModules(t *testing.T) {
	manifest := filepath.Join(t.TempDir(), "modules.yaml")
	require.NoError(t, os.WriteFile(manifest, []byte("modules:\n  - service/api\n  - core\n"), 0o644))

	got := captureRunArgs(t, "--last", "--manifest", manifest, "results.json")

	assert.Equal(t, []string{"core", "service/api"}, got.Publish.Collect.Expected)
}

func TestRunCmd_MissingManifestFails(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newRunCmd())
	cmd.SetArgs([]string{"run", "--last", "--manifest", filepath.Join(t.TempDir(), "absent.yaml"), "results.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrArtifactIO)
}

func TestRunCmd_ReturnsGateFailure(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).
		Return(&m.ThresholdError{Reasons: []string{"mutation score 75 is below the threshold 80"}})

	cmd, _ := newTestRootCmd(t, newRunCmd())
	cmd.SetArgs([]string{"run", "results.json"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.True(t, errors.Is(err, m.ErrThresholdViolation))
}

func TestRunCmd_RequiresResults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	cmd, _ := newTestRootCmd(t, newRunCmd())
	cmd.SetArgs([]string{"run"})

	require.Error(t, cmd.Execute())
}
