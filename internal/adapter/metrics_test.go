package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/goozereport/internal/model"
)

func metricsSummary() m.ModuleSummary {
	pkg := "com.example"

	return m.ModuleSummary{
		ModulePath: "parent/child",
		Packages: []m.PackageSummary{{
			Name: pkg,
			Classes: []m.ClassResult{{
				Name:         "com.example.Foo",
				Package:      &pkg,
				LineCount:    10,
				CoveredLines: []int{1, 2, 3, 4, 5, 6, 7, 8},
				Mutations: []m.MutationOutcome{
					{Status: m.Killed}, {Status: m.Survived}, {Status: m.NoCoverage}, {Status: m.Timeout},
				},
			}},
		}},
	}
}

func TestPrometheusExporter_Export(t *testing.T) {
	ctx := context.Background()
	unit := m.BuildContext{ModulePath: "parent/child"}

	t.Run("disabled without targets", func(t *testing.T) {
		exporter := NewPrometheusExporter(MetricsOptions{})
		assert.False(t, exporter.Enabled())
		require.NoError(t, exporter.Export(ctx, unit, metricsSummary(), m.GateVerdict{}))

		families, err := exporter.Gatherer().Gather()
		require.NoError(t, err)
		assert.Empty(t, families)
	})

	t.Run("writes textfile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "metrics", "gooze.prom")
		exporter := NewPrometheusExporter(MetricsOptions{Textfile: path})

		verdict := m.GateVerdict{Reasons: []string{"too low"}}
		require.NoError(t, exporter.Export(ctx, unit, metricsSummary(), verdict))

		data, err := os.ReadFile(path)
		require.NoError(t, err)

		text := string(data)
		assert.Contains(t, text, `gooze_report_mutation_score_percent{module="parent/child"} 50`)
		assert.Contains(t, text, `gooze_report_line_coverage_percent{module="parent/child"} 80`)
		assert.Contains(t, text, `gooze_report_surviving_mutations{module="parent/child"} 2`)
		assert.Contains(t, text, `gooze_report_gate_passed{module="parent/child"} 0`)
		assert.Contains(t, text, `gooze_report_classes{module="parent/child"} 1`)
	})

	t.Run("pushes to gateway", func(t *testing.T) {
		var pushed atomic.Bool

		var body string

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.True(t, strings.HasPrefix(r.URL.Path, "/metrics/job/ci/unit@base64/"))

			data, _ := io.ReadAll(r.Body)
			body = string(data)

			pushed.Store(true)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		exporter := NewPrometheusExporter(MetricsOptions{Pushgateway: server.URL, Job: "ci"})
		require.NoError(t, exporter.Export(ctx, unit, metricsSummary(), m.GateVerdict{}))
		assert.True(t, pushed.Load())
		assert.Contains(t, body, "gooze_report_gate_passed")
		assert.Contains(t, body, "parent/child")
	})

	t.Run("push failure is reported", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		exporter := NewPrometheusExporter(MetricsOptions{Pushgateway: server.URL})
		err := exporter.Export(ctx, unit, metricsSummary(), m.GateVerdict{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "push metrics")
	})
}
