package domain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"gooze.dev/pkg/goozereport/internal/adapter"
	m "gooze.dev/pkg/goozereport/internal/model"
)

func newRenderer(t *testing.T) adapter.Renderer {
	t.Helper()

	renderer, err := adapter.NewMarkdownRenderer(adapter.RenderOptions{})
	require.NoError(t, err)

	return renderer
}

func strPtr(s string) *string { return &s }

func fooClass() m.ClassResult {
	return m.ClassResult{
		Name:         "com.x.Foo",
		Package:      strPtr("com.x"),
		File:         "Foo.java",
		LineCount:    10,
		CoveredLines: []int{1, 2, 3, 4, 5, 6, 7, 8},
		Mutations: []m.MutationOutcome{
			{ID: "1", Status: m.Killed},
			{ID: "2", Status: m.Killed},
			{ID: "3", Status: m.Timeout},
			{ID: "4", Status: m.Survived},
		},
	}
}

func sampleClasses() []m.ClassResult {
	return []m.ClassResult{
		fooClass(),
		{
			Name:         "com.x.Bar",
			Package:      strPtr("com.x"),
			File:         "Bar.java",
			LineCount:    4,
			CoveredLines: []int{1},
			Mutations:    []m.MutationOutcome{{Status: m.NoCoverage}, {Status: m.RunError}},
		},
		{
			Name:      "Main",
			Package:   strPtr(""),
			LineCount: 2,
			Mutations: []m.MutationOutcome{{Status: m.Survived}},
		},
		{
			Name:         "com.a.Baz",
			Package:      strPtr("com.a"),
			LineCount:    3,
			CoveredLines: []int{3, 1, 3},
		},
	}
}
