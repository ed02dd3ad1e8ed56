package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"

	m "gooze.dev/pkg/goozereport/internal/model"
)

const (
	metricsNamespace = "gooze_report"
	// pushGroupingLabel keys a unit's metric group on the Pushgateway. It must
	// differ from every gauge label.
	pushGroupingLabel = "unit"
	// DefaultMetricsJob is the Pushgateway job name used when none is set.
	DefaultMetricsJob = "gooze_report"
)

// MetricsExporter publishes the quality figures of one build unit.
type MetricsExporter interface {
	Export(ctx context.Context, unit m.BuildContext, summary m.ModuleSummary, verdict m.GateVerdict) error
}

// MetricsOptions selects where metrics go. With neither target set the
// exporter does nothing.
type MetricsOptions struct {
	Textfile    string // node_exporter textfile collector output
	Pushgateway string // Pushgateway URL
	Job         string
}

// PrometheusExporter writes module gauges to a textfile and/or a Pushgateway.
type PrometheusExporter struct {
	opts MetricsOptions

	registry  *prometheus.Registry
	score     *prometheus.GaugeVec
	strength  *prometheus.GaugeVec
	coverage  *prometheus.GaugeVec
	surviving *prometheus.GaugeVec
	mutations *prometheus.GaugeVec
	classes   *prometheus.GaugeVec
	passed    *prometheus.GaugeVec
}

// NewPrometheusExporter registers the module gauges on a private registry.
func NewPrometheusExporter(opts MetricsOptions) *PrometheusExporter {
	if opts.Job == "" {
		opts.Job = DefaultMetricsJob
	}

	gauge := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Name:      name,
			Help:      help,
		}, labels)
	}

	e := &PrometheusExporter{
		opts:      opts,
		registry:  prometheus.NewRegistry(),
		score:     gauge("mutation_score_percent", "Detected mutations over all mutations.", "module"),
		strength:  gauge("test_strength_percent", "Detected mutations over covered mutations.", "module"),
		coverage:  gauge("line_coverage_percent", "Covered lines over all lines.", "module"),
		surviving: gauge("surviving_mutations", "Mutations not detected by the tests.", "module"),
		mutations: gauge("mutations", "Mutations generated.", "module"),
		classes:   gauge("classes", "Classes reported by the unit.", "module"),
		passed:    gauge("gate_passed", "1 when every quality threshold held.", "module"),
	}

	e.registry.MustRegister(e.score, e.strength, e.coverage, e.surviving, e.mutations, e.classes, e.passed)

	return e
}

// Enabled reports whether any metrics target is configured.
func (e *PrometheusExporter) Enabled() bool {
	return e.opts.Textfile != "" || e.opts.Pushgateway != ""
}

// Gatherer exposes the registry holding the gauges.
func (e *PrometheusExporter) Gatherer() prometheus.Gatherer {
	return e.registry
}

// Export sets the gauges for the unit and flushes them to every target.
func (e *PrometheusExporter) Export(ctx context.Context, unit m.BuildContext, summary m.ModuleSummary, verdict m.GateVerdict) error {
	if !e.Enabled() {
		return nil
	}

	module := unit.ModulePath
	if module == "" {
		module = summary.ModulePath
	}

	totals := summary.Totals()

	e.score.WithLabelValues(module).Set(totals.MutationScore())
	e.strength.WithLabelValues(module).Set(totals.TestStrength())
	e.coverage.WithLabelValues(module).Set(totals.LineCoverage())
	e.surviving.WithLabelValues(module).Set(float64(totals.SurvivingMutations()))
	e.mutations.WithLabelValues(module).Set(float64(totals.MutationsTotal))
	e.classes.WithLabelValues(module).Set(float64(len(summary.Classes())))

	passed := 0.0
	if verdict.Passed() {
		passed = 1
	}

	e.passed.WithLabelValues(module).Set(passed)

	if e.opts.Textfile != "" {
		if err := os.MkdirAll(filepath.Dir(e.opts.Textfile), 0o750); err != nil {
			return fmt.Errorf("create metrics directory: %w", err)
		}

		if err := prometheus.WriteToTextfile(e.opts.Textfile, e.registry); err != nil {
			slog.Error("Failed to write metrics textfile", "path", e.opts.Textfile, "error", err)
			return fmt.Errorf("write metrics textfile: %w", err)
		}

		slog.Debug("Wrote metrics textfile", "path", e.opts.Textfile)
	}

	if e.opts.Pushgateway != "" {
		pusher := push.New(e.opts.Pushgateway, e.opts.Job).
			Gatherer(e.registry).
			Grouping(pushGroupingLabel, groupingValue(module))

		if err := pusher.PushContext(ctx); err != nil {
			slog.Error("Failed to push metrics", "url", e.opts.Pushgateway, "error", err)
			return fmt.Errorf("push metrics: %w", err)
		}

		slog.Debug("Pushed metrics", "url", e.opts.Pushgateway, "job", e.opts.Job, "module", module)
	}

	return nil
}

func groupingValue(module string) string {
	if module == "" {
		return rootFragmentName
	}

	return module
}
