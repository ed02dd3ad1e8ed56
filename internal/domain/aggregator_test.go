package domain_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/goozereport/internal/domain"
	m "gooze.dev/pkg/goozereport/internal/model"
)

func summarize(t *testing.T, store domain.SummaryStore, classes []m.ClassResult) m.ModuleSummary {
	t.Helper()

	aggregator := domain.NewAggregator(store)
	for _, class := range classes {
		require.NoError(t, aggregator.Record(class))
	}

	summary, err := aggregator.Summary("parent/child")
	require.NoError(t, err)

	return summary
}

func TestAggregator_GroupsByPackage(t *testing.T) {
	summary := summarize(t, domain.NewMemoryStore(), sampleClasses())

	assert.Equal(t, "parent/child", summary.ModulePath)
	require.Len(t, summary.Packages, 3)
	assert.Equal(t, "", summary.Packages[0].Name)
	assert.Equal(t, "com.a", summary.Packages[1].Name)
	assert.Equal(t, "com.x", summary.Packages[2].Name)

	classes := summary.Packages[2].Classes
	require.Len(t, classes, 2)
	assert.Equal(t, "com.x.Foo", classes[0].Name)
	assert.Equal(t, "com.x.Bar", classes[1].Name)

	assert.Equal(t, []int{1, 3}, summary.Packages[1].Classes[0].CoveredLines, "covered lines are a sorted set")
}

func TestAggregator_OrderInvariant(t *testing.T) {
	classes := sampleClasses()
	expected := summarize(t, domain.NewMemoryStore(), classes).Totals()

	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		shuffled := append([]m.ClassResult(nil), classes...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		totals := summarize(t, domain.NewMemoryStore(), shuffled).Totals()
		assert.Equal(t, expected, totals)

		assert.LessOrEqual(t, totals.LinesCovered, totals.LinesTotal)
		assert.LessOrEqual(t, totals.MutationsDetected, totals.MutationsWithCoverage)
		assert.LessOrEqual(t, totals.MutationsWithCoverage, totals.MutationsTotal)
	}
}

func TestAggregator_RejectsMalformedResults(t *testing.T) {
	tests := []struct {
		name   string
		result m.ClassResult
	}{
		{name: "missing package", result: m.ClassResult{Name: "NoPkg"}},
		{name: "negative line count", result: m.ClassResult{Name: "Neg", Package: strPtr("p"), LineCount: -1}},
		{
			name:   "more covered lines than lines",
			result: m.ClassResult{Name: "Over", Package: strPtr("p"), LineCount: 1, CoveredLines: []int{1, 2}},
		},
		{
			name:   "unknown status",
			result: m.ClassResult{Name: "Odd", Package: strPtr("p"), Mutations: []m.MutationOutcome{{Status: m.TestStatus(99)}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aggregator := domain.NewAggregator(domain.NewMemoryStore())

			err := aggregator.Record(tt.result)
			require.ErrorIs(t, err, m.ErrInvalidResult)

			summary, err := aggregator.Summary("")
			require.NoError(t, err)
			assert.True(t, summary.Empty())
		})
	}
}

func TestAggregator_DoesNotAliasInput(t *testing.T) {
	class := fooClass()
	aggregator := domain.NewAggregator(domain.NewMemoryStore())
	require.NoError(t, aggregator.Record(class))

	*class.Package = "changed"
	class.Mutations[0].Status = m.Survived

	summary, err := aggregator.Summary("")
	require.NoError(t, err)
	require.Len(t, summary.Packages, 1)
	assert.Equal(t, "com.x", summary.Packages[0].Name)
	assert.Equal(t, "com.x", *summary.Packages[0].Classes[0].Package)
	assert.Equal(t, m.Killed, summary.Packages[0].Classes[0].Mutations[0].Status)
}

func TestAggregator_Reset(t *testing.T) {
	aggregator := domain.NewAggregator(domain.NewMemoryStore())
	require.NoError(t, aggregator.Record(fooClass()))
	require.NoError(t, aggregator.Reset())

	summary, err := aggregator.Summary("")
	require.NoError(t, err)
	assert.True(t, summary.Empty())
}

func TestSpillStore_MatchesMemoryStore(t *testing.T) {
	store, err := domain.NewSpillStore(t.TempDir())
	require.NoError(t, err)

	t.Cleanup(func() { _ = store.Close() })

	spilled := summarize(t, store, sampleClasses())
	inMemory := summarize(t, domain.NewMemoryStore(), sampleClasses())

	assert.Equal(t, inMemory.Totals(), spilled.Totals())
	require.Len(t, spilled.Packages, len(inMemory.Packages))

	for i := range inMemory.Packages {
		assert.Equal(t, inMemory.Packages[i].Name, spilled.Packages[i].Name)
		require.Len(t, spilled.Packages[i].Classes, len(inMemory.Packages[i].Classes))

		for j, class := range inMemory.Packages[i].Classes {
			got := spilled.Packages[i].Classes[j]
			assert.Equal(t, class.Name, got.Name)
			require.NotNil(t, got.Package)
			assert.Equal(t, *class.Package, *got.Package)
			assert.Equal(t, class.Totals(), got.Totals())
		}
	}

	require.NoError(t, store.Reset())
	assert.Empty(t, store.Packages())

	require.NoError(t, store.Append("p", fooClass()))
	classes, err := store.Classes("p")
	require.NoError(t, err)
	assert.Len(t, classes, 1)
}
