package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"gooze.dev/pkg/goozereport/internal/adapter"
	m "gooze.dev/pkg/goozereport/internal/model"
)

// Listener receives the lifecycle callbacks of a mutation run. A unit sees
// RunStart, any number of HandleMutationResult calls and RunEnd. Once every
// unit of the build is done RunAfterWholeBuild is called on the last one.
type Listener interface {
	RunStart(ctx context.Context) error
	HandleMutationResult(ctx context.Context, result m.ClassResult) error
	RunEnd(ctx context.Context) error
	RunAfterWholeBuild(ctx context.Context) error
}

// UnitListenerConfig wires a unit listener.
type UnitListenerConfig struct {
	Unit       m.BuildContext
	SharedDir  m.Path
	Thresholds m.Thresholds
	Aggregator Aggregator
	Gate       Gate
	Renderer   adapter.Renderer
	Store      adapter.ReportStore
	Metrics    adapter.MetricsExporter
}

// UnitListener aggregates the results of one build unit, persists its
// fragment and applies the quality gate.
type UnitListener struct {
	cfg UnitListenerConfig

	summary  m.ModuleSummary
	verdict  m.GateVerdict
	fragment m.Fragment
	path     m.Path
}

// NewUnitListener creates a UnitListener. A nil Gate uses NewGate.
func NewUnitListener(cfg UnitListenerConfig) *UnitListener {
	if cfg.Gate == nil {
		cfg.Gate = NewGate()
	}

	return &UnitListener{cfg: cfg}
}

// RunStart clears anything recorded by a previous run.
func (l *UnitListener) RunStart(_ context.Context) error {
	l.summary = m.ModuleSummary{}
	l.verdict = m.GateVerdict{}
	l.fragment = m.Fragment{}
	l.path = ""

	return l.cfg.Aggregator.Reset()
}

// HandleMutationResult records one class result.
func (l *UnitListener) HandleMutationResult(ctx context.Context, result m.ClassResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return l.cfg.Aggregator.Record(result)
}

// RunEnd summarizes the unit, writes its fragment, exports metrics and finally
// evaluates the gate. A failed gate is returned as a *model.ThresholdError.
func (l *UnitListener) RunEnd(ctx context.Context) error {
	modulePath := l.cfg.Unit.ModulePath

	summary, err := l.cfg.Aggregator.Summary(modulePath)
	if err != nil {
		slog.Error("Failed to summarize module", "module", modulePath, "error", err)
		return fmt.Errorf("summarize %q: %w", modulePath, err)
	}

	l.summary = summary
	l.verdict = l.cfg.Gate.Evaluate(summary.Totals(), l.cfg.Thresholds)

	var errs []error

	if err := l.writeFragment(ctx, summary); err != nil {
		errs = append(errs, err)
	}

	if l.cfg.Metrics != nil {
		if err := l.cfg.Metrics.Export(ctx, l.cfg.Unit, summary, l.verdict); err != nil {
			slog.Warn("Failed to export metrics", "module", modulePath, "error", err)
		}
	}

	if l.verdict.Passed() {
		slog.Info("Quality gate passed", "module", modulePath)
	} else {
		slog.Warn("Quality gate failed", "module", modulePath, "reasons", l.verdict.Reasons)
		errs = append(errs, l.verdict.Err())
	}

	return errors.Join(errs...)
}

// writeFragment persists the rendered fragment. An empty module still writes
// a blank fragment so the whole-build merge does not wait for it.
func (l *UnitListener) writeFragment(ctx context.Context, summary m.ModuleSummary) error {
	fragment := m.Fragment{ModulePath: summary.ModulePath}

	if summary.Empty() {
		slog.Info("Module has no results, writing empty fragment", "module", summary.ModulePath)
	} else {
		var err error

		fragment, err = l.cfg.Renderer.Render(ctx, l.cfg.Unit, summary)
		if err != nil {
			slog.Error("Failed to render fragment", "module", summary.ModulePath, "error", err)
			return fmt.Errorf("render fragment: %w", err)
		}
	}

	path, err := l.cfg.Store.SaveFragment(ctx, l.cfg.SharedDir, fragment)
	if err != nil {
		return err
	}

	l.fragment = fragment
	l.path = path

	return nil
}

// RunAfterWholeBuild does nothing for a single unit.
func (l *UnitListener) RunAfterWholeBuild(_ context.Context) error {
	return nil
}

// Summary returns the module summary computed by RunEnd.
func (l *UnitListener) Summary() m.ModuleSummary { return l.summary }

// Verdict returns the gate verdict computed by RunEnd.
func (l *UnitListener) Verdict() m.GateVerdict { return l.verdict }

// Fragment returns the persisted fragment and its path, if any.
func (l *UnitListener) Fragment() (m.Fragment, m.Path) { return l.fragment, l.path }

// PublishArgs configures the whole-build merge and the comment it produces.
type PublishArgs struct {
	Collect CollectArgs
	Remote  m.RemoteTarget
	Header  string
	Marker  string
	// PostEmpty publishes a "report is empty" comment when no fragment
	// contributed. Otherwise an empty merge posts nothing.
	PostEmpty bool
	// DryRun composes the comment without contacting the review system.
	DryRun bool
}

// PublishOutcome records what the whole-build step did.
type PublishOutcome struct {
	Merge     m.MergeResult
	Comment   string
	Posted    bool
	Reconcile *m.ReconcileResult
}

// PullRequestListener merges every fragment of the build and publishes the
// combined report to the review thread once the whole build has finished.
type PullRequestListener struct {
	args    PublishArgs
	merger  Merger
	clients adapter.ReviewClientFactory
	outcome PublishOutcome
}

// NewPullRequestListener creates a PullRequestListener. Review clients are
// only built when a comment is actually posted.
func NewPullRequestListener(args PublishArgs, merger Merger, clients adapter.ReviewClientFactory) *PullRequestListener {
	return &PullRequestListener{args: args, merger: merger, clients: clients}
}

// RunStart does nothing.
func (l *PullRequestListener) RunStart(_ context.Context) error { return nil }

// HandleMutationResult does nothing.
func (l *PullRequestListener) HandleMutationResult(_ context.Context, _ m.ClassResult) error {
	return nil
}

// RunEnd does nothing.
func (l *PullRequestListener) RunEnd(_ context.Context) error { return nil }

// RunAfterWholeBuild merges the fragments and reconciles the review comment.
func (l *PullRequestListener) RunAfterWholeBuild(ctx context.Context) error {
	l.outcome = PublishOutcome{}

	merged, err := l.merger.Collect(ctx, l.args.Collect)
	if err != nil {
		slog.Error("Failed to merge fragments", "dir", l.args.Collect.SharedDir, "error", err)
		return fmt.Errorf("merge fragments: %w", err)
	}

	l.outcome.Merge = merged

	if merged.Empty() && !l.args.PostEmpty {
		slog.Info("Empty report, nothing to publish")
		return nil
	}

	marker := l.args.Marker
	if marker == "" {
		marker = DefaultCommentMarker
	}

	header := l.args.Header
	if header == "" {
		header = DefaultCommentHeader
	}

	l.outcome.Comment = ComposeComment(header, marker, merged.Body)

	if l.args.DryRun {
		slog.Info("Dry run, report comment not published")
		return nil
	}

	if !l.args.Remote.Configured() {
		slog.Warn("Review thread not configured, report comment not published")
		return nil
	}

	client, err := l.clients(l.args.Remote)
	if err != nil {
		slog.Error("Failed to create review client", "error", err)
		return fmt.Errorf("create review client: %w", err)
	}

	result, err := NewReconciler(client).Reconcile(ctx, ReconcileArgs{
		Thread: l.args.Remote.Thread(),
		Body:   merged.Body,
		Header: header,
		Marker: marker,
	})
	if err != nil {
		return err
	}

	l.outcome.Posted = true
	l.outcome.Reconcile = &result

	return nil
}

// Outcome returns what the last RunAfterWholeBuild did.
func (l *PullRequestListener) Outcome() PublishOutcome { return l.outcome }

type compoundListener []Listener

// NewCompoundListener fans every callback out to listeners in order. A failing
// listener does not stop the others; errors are joined.
func NewCompoundListener(listeners ...Listener) Listener {
	return compoundListener(listeners)
}

func (c compoundListener) RunStart(ctx context.Context) error {
	return c.each(func(l Listener) error { return l.RunStart(ctx) })
}

func (c compoundListener) HandleMutationResult(ctx context.Context, result m.ClassResult) error {
	return c.each(func(l Listener) error { return l.HandleMutationResult(ctx, result) })
}

func (c compoundListener) RunEnd(ctx context.Context) error {
	return c.each(func(l Listener) error { return l.RunEnd(ctx) })
}

func (c compoundListener) RunAfterWholeBuild(ctx context.Context) error {
	return c.each(func(l Listener) error { return l.RunAfterWholeBuild(ctx) })
}

func (c compoundListener) each(call func(Listener) error) error {
	var errs []error

	for _, l := range c {
		if err := call(l); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
