package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/goozereport/internal/adapter"
	"gooze.dev/pkg/goozereport/internal/controller"
	m "gooze.dev/pkg/goozereport/internal/model"
)

// RunArgs holds the inputs of one build unit.
type RunArgs struct {
	Paths      []m.Path
	Coverage   m.Path
	Unit       m.BuildContext
	SharedDir  m.Path
	Thresholds m.Thresholds
	// Spill keeps class results on disk instead of in memory.
	Spill    bool
	SpillDir string
	// Publish is used when Unit.Last is set.
	Publish PublishArgs
}

// MergeArgs holds the inputs of an explicit whole-build merge.
type MergeArgs struct {
	Publish PublishArgs
}

// ViewArgs holds the inputs of the summary view.
type ViewArgs struct {
	Paths      []m.Path
	Coverage   m.Path
	ModulePath string
	Thresholds m.Thresholds
}

// Workflow drives the report commands.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Merge(ctx context.Context, args MergeArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ResultSource
	adapter.ReportStore
	adapter.Renderer
	adapter.MetricsExporter
	controller.UI
	clients adapter.ReviewClientFactory
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	source adapter.ResultSource,
	reportStore adapter.ReportStore,
	renderer adapter.Renderer,
	metrics adapter.MetricsExporter,
	ui controller.UI,
	clients adapter.ReviewClientFactory,
) Workflow {
	return &workflow{
		ResultSource:    source,
		ReportStore:     reportStore,
		Renderer:        renderer,
		MetricsExporter: metrics,
		UI:              ui,
		clients:         clients,
	}
}

// Run replays the results of one unit through its listeners. The unit's
// fragment is written even when its gate fails, and the unit flagged last
// also runs the whole-build merge. Every failure is joined into the result.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	results, err := w.Load(ctx, args.Paths, args.Coverage)
	if err != nil {
		slog.Error("Failed to load results", "error", err)
		return fmt.Errorf("load results: %w", err)
	}

	store, err := newSummaryStore(args.Spill, args.SpillDir)
	if err != nil {
		return err
	}

	defer func() {
		if err := store.Close(); err != nil {
			slog.Warn("Failed to release summary store", "error", err)
		}
	}()

	unit := NewUnitListener(UnitListenerConfig{
		Unit:       args.Unit,
		SharedDir:  args.SharedDir,
		Thresholds: args.Thresholds,
		Aggregator: NewAggregator(store),
		Renderer:   w.Renderer,
		Store:      w.ReportStore,
		Metrics:    w.MetricsExporter,
	})

	listeners := []Listener{unit}

	var publisher *PullRequestListener

	if args.Unit.Last {
		publish := args.Publish
		publish.Remote = args.Unit.Remote

		if publish.Collect.SharedDir == "" {
			publish.Collect.SharedDir = args.SharedDir
		}

		publisher = NewPullRequestListener(publish, NewMerger(w.ReportStore), w.clients)
		listeners = append(listeners, publisher)
	}

	listener := NewCompoundListener(listeners...)

	if err := w.Start(ctx, controller.WithRunMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := listener.RunStart(ctx); err != nil {
		return fmt.Errorf("start run: %w", err)
	}

	for _, result := range results {
		if err := listener.HandleMutationResult(ctx, result); err != nil {
			return fmt.Errorf("handle result: %w", err)
		}
	}

	slog.Info("Replayed class results", "module", args.Unit.ModulePath, "classes", len(results))

	endErr := listener.RunEnd(ctx)

	if err := w.DisplaySummary(ctx, unit.Summary()); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return errors.Join(endErr, fmt.Errorf("display: %w", err))
	}

	w.DisplayVerdict(ctx, unit.Verdict())

	fragment, path := unit.Fragment()
	w.DisplayFragment(ctx, path, fragment)

	var buildErr error

	if publisher != nil {
		buildErr = listener.RunAfterWholeBuild(ctx)
		w.displayOutcome(ctx, publisher.Outcome())
	}

	w.Wait(ctx)

	return errors.Join(endErr, buildErr)
}

// Merge runs the whole-build step on its own.
func (w *workflow) Merge(ctx context.Context, args MergeArgs) error {
	publisher := NewPullRequestListener(args.Publish, NewMerger(w.ReportStore), w.clients)

	if err := w.Start(ctx, controller.WithMergeMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	err := publisher.RunAfterWholeBuild(ctx)

	w.displayOutcome(ctx, publisher.Outcome())
	w.Wait(ctx)

	return err
}

// View aggregates results and shows the summary and verdict without writing
// anything. A failed gate is displayed, not returned.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	results, err := w.Load(ctx, args.Paths, args.Coverage)
	if err != nil {
		slog.Error("Failed to load results", "error", err)
		return fmt.Errorf("load results: %w", err)
	}

	aggregator := NewAggregator(NewMemoryStore())

	for _, result := range results {
		if err := aggregator.Record(result); err != nil {
			return fmt.Errorf("handle result: %w", err)
		}
	}

	summary, err := aggregator.Summary(args.ModulePath)
	if err != nil {
		return fmt.Errorf("summarize: %w", err)
	}

	verdict := NewGate().Evaluate(summary.Totals(), args.Thresholds)

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := w.DisplaySummary(ctx, summary); err != nil {
		slog.Error("Failed to display summary", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	w.DisplayVerdict(ctx, verdict)
	w.Wait(ctx)

	return nil
}

func (w *workflow) displayOutcome(ctx context.Context, outcome PublishOutcome) {
	w.DisplayMergeResult(ctx, outcome.Merge)
	w.DisplayComment(ctx, outcome.Comment, outcome.Posted, outcome.Reconcile)
}

func newSummaryStore(spill bool, dir string) (SummaryStore, error) {
	if !spill {
		return NewMemoryStore(), nil
	}

	store, err := NewSpillStore(dir)
	if err != nil {
		slog.Error("Failed to create spill store", "dir", dir, "error", err)
		return nil, fmt.Errorf("create spill store: %w", err)
	}

	return store, nil
}
