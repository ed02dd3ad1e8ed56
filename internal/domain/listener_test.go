package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/goozereport/internal/adapter"
	adaptermocks "gooze.dev/pkg/goozereport/internal/adapter/mocks"
	"gooze.dev/pkg/goozereport/internal/domain"
	domainmocks "gooze.dev/pkg/goozereport/internal/domain/mocks"
	m "gooze.dev/pkg/goozereport/internal/model"
)

func newUnitListener(t *testing.T, thresholds m.Thresholds) (*domain.UnitListener, *adaptermocks.MockRenderer, *adaptermocks.MockReportStore, *adaptermocks.MockMetricsExporter) {
	t.Helper()

	renderer := adaptermocks.NewMockRenderer(t)
	store := adaptermocks.NewMockReportStore(t)
	metrics := adaptermocks.NewMockMetricsExporter(t)

	listener := domain.NewUnitListener(domain.UnitListenerConfig{
		Unit:       m.BuildContext{ModulePath: "svc/api"},
		SharedDir:  "/shared",
		Thresholds: thresholds,
		Aggregator: domain.NewAggregator(domain.NewMemoryStore()),
		Renderer:   renderer,
		Store:      store,
		Metrics:    metrics,
	})

	return listener, renderer, store, metrics
}

func TestUnitListener_WritesFragmentBeforeGateFails(t *testing.T) {
	ctx := context.Background()
	thresholds := m.DisabledThresholds()
	thresholds.MutationScore = 90

	listener, renderer, store, metrics := newUnitListener(t, thresholds)

	fragment := m.Fragment{ModulePath: "svc/api", Body: "|row|"}
	renderer.EXPECT().Render(mock.Anything, mock.Anything, mock.Anything).Return(fragment, nil).Once()
	store.EXPECT().SaveFragment(mock.Anything, m.Path("/shared"), fragment).Return(m.Path("/shared/svc.api.md"), nil).Once()
	metrics.EXPECT().Export(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("push failed")).Once()

	require.NoError(t, listener.RunStart(ctx))
	require.NoError(t, listener.HandleMutationResult(ctx, fooClass()))

	err := listener.RunEnd(ctx)
	require.ErrorIs(t, err, m.ErrThresholdViolation)

	var thresholdErr *m.ThresholdError
	require.ErrorAs(t, err, &thresholdErr)
	assert.Len(t, thresholdErr.Reasons, 1)

	saved, path := listener.Fragment()
	assert.Equal(t, fragment, saved)
	assert.Equal(t, m.Path("/shared/svc.api.md"), path)
	assert.False(t, listener.Verdict().Passed())
	assert.Equal(t, "svc/api", listener.Summary().ModulePath)
}

func TestUnitListener_EmptyModuleWritesBlankFragment(t *testing.T) {
	ctx := context.Background()
	listener, _, store, metrics := newUnitListener(t, m.DisabledThresholds())

	blank := m.Fragment{ModulePath: "svc/api"}
	store.EXPECT().SaveFragment(mock.Anything, m.Path("/shared"), blank).Return(m.Path("/shared/svc.api.md"), nil).Once()
	metrics.EXPECT().Export(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, listener.RunStart(ctx))
	require.NoError(t, listener.RunEnd(ctx))

	saved, path := listener.Fragment()
	assert.Equal(t, blank, saved)
	assert.Equal(t, m.Path("/shared/svc.api.md"), path)
	assert.True(t, listener.Verdict().Passed())
}

func TestUnitListener_EmptyModuleCompletesMergeBarrier(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	saveFragment(t, dir, "core", "|core|")

	listener := domain.NewUnitListener(domain.UnitListenerConfig{
		Unit:       m.BuildContext{ModulePath: "empty"},
		SharedDir:  m.Path(dir),
		Thresholds: m.DisabledThresholds(),
		Aggregator: domain.NewAggregator(domain.NewMemoryStore()),
		Renderer:   newRenderer(t),
		Store:      adapter.NewReportStore(),
	})

	require.NoError(t, listener.RunStart(ctx))
	require.NoError(t, listener.RunEnd(ctx))

	start := time.Now()

	result, err := domain.NewMerger(adapter.NewReportStore()).Collect(ctx, domain.CollectArgs{
		SharedDir:    m.Path(dir),
		Expected:     []string{"core", "empty"},
		Timeout:      5 * time.Second,
		PollInterval: 5 * time.Millisecond,
	})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), time.Second)
	assert.Empty(t, result.Missing)
	assert.Equal(t, "|core|", result.Body)
	assert.Equal(t, []string{"core"}, result.Modules)
}

func TestUnitListener_HandleMutationResultHonorsContext(t *testing.T) {
	listener, _, _, _ := newUnitListener(t, m.DisabledThresholds())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, listener.HandleMutationResult(ctx, fooClass()), context.Canceled)
}

func failingFactory(t *testing.T) adapter.ReviewClientFactory {
	t.Helper()

	return func(m.RemoteTarget) (adapter.ReviewClient, error) {
		t.Fatal("review client must not be created")
		return nil, nil
	}
}

func TestPullRequestListener_EmptyMergePostsNothing(t *testing.T) {
	merger := domainmocks.NewMockMerger(t)
	merger.EXPECT().Collect(mock.Anything, mock.Anything).Return(m.MergeResult{}, nil).Once()

	listener := domain.NewPullRequestListener(domain.PublishArgs{
		Remote: m.RemoteTarget{Repo: "acme/widgets", PRNumber: 7},
	}, merger, failingFactory(t))

	require.NoError(t, listener.RunAfterWholeBuild(context.Background()))

	outcome := listener.Outcome()
	assert.Empty(t, outcome.Comment)
	assert.False(t, outcome.Posted)
}

func TestPullRequestListener_PostEmptyDryRun(t *testing.T) {
	merger := domainmocks.NewMockMerger(t)
	merger.EXPECT().Collect(mock.Anything, mock.Anything).Return(m.MergeResult{}, nil).Once()

	listener := domain.NewPullRequestListener(domain.PublishArgs{
		PostEmpty: true,
		DryRun:    true,
	}, merger, failingFactory(t))

	require.NoError(t, listener.RunAfterWholeBuild(context.Background()))

	outcome := listener.Outcome()
	assert.Contains(t, outcome.Comment, "report is empty")
	assert.False(t, outcome.Posted)
}

func TestPullRequestListener_UnconfiguredRemote(t *testing.T) {
	merger := domainmocks.NewMockMerger(t)
	merger.EXPECT().Collect(mock.Anything, mock.Anything).Return(m.MergeResult{Body: "|row|", Modules: []string{"api"}}, nil).Once()

	listener := domain.NewPullRequestListener(domain.PublishArgs{}, merger, failingFactory(t))

	require.NoError(t, listener.RunAfterWholeBuild(context.Background()))
	assert.NotEmpty(t, listener.Outcome().Comment)
	assert.False(t, listener.Outcome().Posted)
}

func TestPullRequestListener_Publishes(t *testing.T) {
	remote := m.RemoteTarget{Repo: "acme/widgets", PRNumber: 7}

	merger := domainmocks.NewMockMerger(t)
	merger.EXPECT().Collect(mock.Anything, mock.Anything).Return(m.MergeResult{Body: "|row|", Modules: []string{"api"}}, nil).Once()

	client := adaptermocks.NewMockReviewClient(t)
	client.EXPECT().Self(mock.Anything).Return(bot, nil).Once()
	client.EXPECT().ListComments(mock.Anything, remote.Thread()).Return(nil, nil).Once()
	client.EXPECT().CreateComment(mock.Anything, remote.Thread(), mock.Anything).Return(m.RemoteComment{ID: 11, Author: bot}, nil).Once()

	var target m.RemoteTarget

	listener := domain.NewPullRequestListener(domain.PublishArgs{Remote: remote}, merger,
		func(r m.RemoteTarget) (adapter.ReviewClient, error) {
			target = r
			return client, nil
		})

	require.NoError(t, listener.RunAfterWholeBuild(context.Background()))

	outcome := listener.Outcome()
	assert.Equal(t, remote, target)
	assert.True(t, outcome.Posted)
	require.NotNil(t, outcome.Reconcile)
	assert.Equal(t, int64(11), outcome.Reconcile.Created.ID)
	assert.Equal(t, domain.ComposeComment(domain.DefaultCommentHeader, domain.DefaultCommentMarker, "|row|"), outcome.Comment)
}

func TestPullRequestListener_MergeError(t *testing.T) {
	merger := domainmocks.NewMockMerger(t)
	merger.EXPECT().Collect(mock.Anything, mock.Anything).Return(m.MergeResult{}, m.ErrArtifactIO).Once()

	listener := domain.NewPullRequestListener(domain.PublishArgs{}, merger, failingFactory(t))

	assert.ErrorIs(t, listener.RunAfterWholeBuild(context.Background()), m.ErrArtifactIO)
}

type recordingListener struct {
	calls []string
	err   error
}

func (r *recordingListener) RunStart(context.Context) error {
	r.calls = append(r.calls, "start")
	return r.err
}

func (r *recordingListener) HandleMutationResult(context.Context, m.ClassResult) error {
	r.calls = append(r.calls, "result")
	return r.err
}

func (r *recordingListener) RunEnd(context.Context) error {
	r.calls = append(r.calls, "end")
	return r.err
}

func (r *recordingListener) RunAfterWholeBuild(context.Context) error {
	r.calls = append(r.calls, "build")
	return r.err
}

func TestCompoundListener_CallsEveryListener(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	first := &recordingListener{err: boom}
	second := &recordingListener{}

	listener := domain.NewCompoundListener(first, second)

	assert.ErrorIs(t, listener.RunStart(ctx), boom)
	assert.ErrorIs(t, listener.HandleMutationResult(ctx, fooClass()), boom)
	assert.ErrorIs(t, listener.RunEnd(ctx), boom)
	assert.ErrorIs(t, listener.RunAfterWholeBuild(ctx), boom)

	want := []string{"start", "result", "end", "build"}
	assert.Equal(t, want, first.calls)
	assert.Equal(t, want, second.calls)
}
