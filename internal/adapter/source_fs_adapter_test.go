package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/goozereport/internal/model"
)

const fooResults = `{
  "classes": [
    {
      "name": "com.example.Foo",
      "package": "com.example",
      "file": "Foo.java",
      "lines": 10,
      "covered_lines": [1, 2, 3, 4, 5, 6, 7, 8],
      "mutations": [
        {"id": "1", "mutator": "NegateConditionals", "line": 3, "status": "KILLED"},
        {"id": "2", "mutator": "MathMutator", "line": 4, "status": "survived"},
        {"id": "3", "mutator": "VoidMethodCall", "line": 9, "status": "no_coverage"},
        {"id": "4", "mutator": "ReturnVals", "line": 5, "status": "timed_out"}
      ]
    },
    {
      "name": "Bar",
      "package": null,
      "mutations": []
    }
  ]
}`

func TestLocalResultSource_Load(t *testing.T) {
	ctx := context.Background()

	t.Run("decodes classes and statuses", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTestFile(t, filepath.Join(dir, "results.json"), fooResults)

		source, err := NewLocalResultSource()
		require.NoError(t, err)

		results, err := source.Load(ctx, []m.Path{m.Path(path)}, "")
		require.NoError(t, err)
		require.Len(t, results, 2)

		foo := results[0]
		assert.Equal(t, "com.example.Foo", foo.Name)
		require.NotNil(t, foo.Package)
		assert.Equal(t, "com.example", *foo.Package)
		assert.Equal(t, 10, foo.LineCount)
		assert.Len(t, foo.CoveredLines, 8)
		require.Len(t, foo.Mutations, 4)
		assert.Equal(t, m.Killed, foo.Mutations[0].Status)
		assert.Equal(t, m.Survived, foo.Mutations[1].Status)
		assert.Equal(t, m.NoCoverage, foo.Mutations[2].Status)
		assert.Equal(t, m.Timeout, foo.Mutations[3].Status)

		assert.Nil(t, results[1].Package, "null package must stay missing")
	})

	t.Run("directory pattern is not recursive", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "a.json"), `{"classes":[{"name":"A","package":"p","mutations":[]}]}`)
		writeTestFile(t, filepath.Join(dir, "notes.txt"), "ignored")
		writeTestFile(t, filepath.Join(dir, "nested", "b.json"), `{"classes":[{"name":"B","package":"p","mutations":[]}]}`)

		source, err := NewLocalResultSource()
		require.NoError(t, err)

		results, err := source.Load(ctx, []m.Path{m.Path(dir)}, "")
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "A", results[0].Name)
	})

	t.Run("recursive pattern visits nested directories in order", func(t *testing.T) {
		dir := t.TempDir()
		writeTestFile(t, filepath.Join(dir, "b.json"), `{"classes":[{"name":"B","package":"p","mutations":[]}]}`)
		writeTestFile(t, filepath.Join(dir, "a", "a.json"), `{"classes":[{"name":"A","package":"p","mutations":[]}]}`)

		source, err := NewLocalResultSource()
		require.NoError(t, err)

		results, err := source.Load(ctx, []m.Path{m.Path(dir + "/...")}, "")
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "A", results[0].Name)
		assert.Equal(t, "B", results[1].Name)
	})

	t.Run("coverage index overrides line data", func(t *testing.T) {
		dir := t.TempDir()
		results := writeTestFile(t, filepath.Join(dir, "results.json"), fooResults)
		coverage := writeTestFile(t, filepath.Join(dir, "coverage.idx"),
			`{"classes":{"com.example.Foo":{"lines":20,"covered_lines":[5,1,3]}}}`)

		source, err := NewLocalResultSource()
		require.NoError(t, err)

		loaded, err := source.Load(ctx, []m.Path{m.Path(results)}, m.Path(coverage))
		require.NoError(t, err)
		assert.Equal(t, 20, loaded[0].LineCount)
		assert.Equal(t, []int{1, 3, 5}, loaded[0].CoveredLines)
		assert.Equal(t, 0, loaded[1].LineCount)
	})

	t.Run("schema violation is an invalid result", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTestFile(t, filepath.Join(dir, "bad.json"), `{"classes":[{"package":"p","mutations":[]}]}`)

		source, err := NewLocalResultSource()
		require.NoError(t, err)

		_, err = source.Load(ctx, []m.Path{m.Path(path)}, "")
		require.ErrorIs(t, err, m.ErrInvalidResult)
		assert.Contains(t, err.Error(), "name")
	})

	t.Run("unknown status is an invalid result", func(t *testing.T) {
		dir := t.TempDir()
		path := writeTestFile(t, filepath.Join(dir, "bad.json"),
			`{"classes":[{"name":"A","package":"p","mutations":[{"status":"exploded"}]}]}`)

		source, err := NewLocalResultSource()
		require.NoError(t, err)

		_, err = source.Load(ctx, []m.Path{m.Path(path)}, "")
		require.ErrorIs(t, err, m.ErrInvalidResult)
	})

	t.Run("missing path", func(t *testing.T) {
		source, err := NewLocalResultSource()
		require.NoError(t, err)

		_, err = source.Load(ctx, []m.Path{m.Path(filepath.Join(t.TempDir(), "nope.json"))}, "")
		require.Error(t, err)
	})
}

func TestLoadCoverageIndex(t *testing.T) {
	t.Run("rejects negative line count", func(t *testing.T) {
		path := writeTestFile(t, filepath.Join(t.TempDir(), "coverage.idx"),
			`{"classes":{"A":{"lines":-1}}}`)

		_, err := LoadCoverageIndex(m.Path(path))
		require.ErrorIs(t, err, m.ErrInvalidResult)
	})

	t.Run("lookup returns a copy", func(t *testing.T) {
		path := writeTestFile(t, filepath.Join(t.TempDir(), "coverage.idx"),
			`{"classes":{"A":{"lines":3,"covered_lines":[1,2]}}}`)

		index, err := LoadCoverageIndex(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, 1, index.Len())

		first, ok := index.Lookup("A")
		require.True(t, ok)
		first.CoveredLines[0] = 99

		second, _ := index.Lookup("A")
		assert.Equal(t, []int{1, 2}, second.CoveredLines)

		_, ok = index.Lookup("B")
		assert.False(t, ok)
	})
}

func writeTestFile(t *testing.T, path, content string) string {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
