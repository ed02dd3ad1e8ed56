package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/goozereport/internal/model"
)

func TestLoadManifest(t *testing.T) {
	t.Run("normalizes module paths", func(t *testing.T) {
		path := writeTestFile(t, filepath.Join(t.TempDir(), "manifest.yaml"),
			"modules:\n  - parent/other\n  - /parent/child/\n  - parent/other\n  - ''\n")

		modules, err := LoadManifest(m.Path(path))
		require.NoError(t, err)
		assert.Equal(t, []string{"", "parent/child", "parent/other"}, modules)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadManifest(m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
		require.ErrorIs(t, err, m.ErrArtifactIO)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeTestFile(t, filepath.Join(t.TempDir(), "manifest.yaml"), "modules: [unterminated")

		_, err := LoadManifest(m.Path(path))
		require.Error(t, err)
	})
}
