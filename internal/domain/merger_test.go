package domain_test

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

	"gooze.dev/pkg/goozereport/internal/adapter"
	adaptermocks "gooze.dev/pkg/goozereport/internal/adapter/mocks"
	"gooze.dev/pkg/goozereport/internal/domain"
	m "gooze.dev/pkg/goozereport/internal/model"
)

func saveFragment(t *testing.T, dir, modulePath, body string) {
	t.Helper()

	_, err := adapter.NewReportStore().SaveFragment(context.Background(), m.Path(dir),
		m.Fragment{ModulePath: modulePath, Body: body})
	require.NoError(t, err)
}

func TestMerger_Collect(t *testing.T) {
	ctx := context.Background()

	t.Run("zero fragments is an empty report", func(t *testing.T) {
		merger := domain.NewMerger(adapter.NewReportStore())

		result, err := merger.Collect(ctx, domain.CollectArgs{SharedDir: m.Path(filepath.Join(t.TempDir(), "none"))})
		require.NoError(t, err)
		assert.True(t, result.Empty())
		assert.Empty(t, result.Modules)
	})

	t.Run("concatenates in module path order", func(t *testing.T) {
		dir := t.TempDir()
		saveFragment(t, dir, "b/service", "|b|\n")
		saveFragment(t, dir, "a", "|a1|\n|a2|\n")
		saveFragment(t, dir, "", "|root|")
		saveFragment(t, dir, "c", "   \n")

		result, err := domain.NewMerger(adapter.NewReportStore()).Collect(ctx, domain.CollectArgs{SharedDir: m.Path(dir)})
		require.NoError(t, err)

		assert.Equal(t, "|root|\n|a1|\n|a2|\n|b|", result.Body)
		assert.Equal(t, []string{"", "a", "b/service"}, result.Modules)
	})

	t.Run("skips corrupt fragments", func(t *testing.T) {
		dir := t.TempDir()
		saveFragment(t, dir, "good", "|good|")
		require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.md"), []byte{0xff, 0xfe, 0xfd}, 0o600))

		result, err := domain.NewMerger(adapter.NewReportStore()).Collect(ctx, domain.CollectArgs{SharedDir: m.Path(dir)})
		require.NoError(t, err)

		assert.Equal(t, "|good|", result.Body)
		assert.Equal(t, []string{"bad"}, result.Skipped)
	})

	t.Run("skips unreadable fragments", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		store.EXPECT().ListFragments(mock.Anything, m.Path("shared")).Return([]m.FragmentFile{
			{ModulePath: "a", Path: "shared/a.md"},
			{ModulePath: "b", Path: "shared/b.md"},
		}, nil).Once()
		store.EXPECT().ReadFragment(mock.Anything, m.Path("shared/a.md")).Return(nil, errors.New("gone")).Once()
		store.EXPECT().ReadFragment(mock.Anything, m.Path("shared/b.md")).Return([]byte("|b|\n"), nil).Once()

		result, err := domain.NewMerger(store).Collect(ctx, domain.CollectArgs{SharedDir: "shared"})
		require.NoError(t, err)

		assert.Equal(t, "|b|", result.Body)
		assert.Equal(t, []string{"a"}, result.Skipped)
	})

	t.Run("list failure is returned", func(t *testing.T) {
		store := adaptermocks.NewMockReportStore(t)
		store.EXPECT().ListFragments(mock.Anything, m.Path("shared")).Return(nil, m.ErrArtifactIO).Once()

		_, err := domain.NewMerger(store).Collect(ctx, domain.CollectArgs{SharedDir: "shared"})
		require.ErrorIs(t, err, m.ErrArtifactIO)
	})
}

func TestMerger_CollectExpected(t *testing.T) {
	ctx := context.Background()

	t.Run("waits for late fragments", func(t *testing.T) {
		dir := t.TempDir()
		saveFragment(t, dir, "a", "|a|")

		go func() {
			time.Sleep(30 * time.Millisecond)

			_, _ = adapter.NewReportStore().SaveFragment(ctx, m.Path(dir), m.Fragment{ModulePath: "b", Body: "|b|"})
		}()

		result, err := domain.NewMerger(adapter.NewReportStore()).Collect(ctx, domain.CollectArgs{
			SharedDir:    m.Path(dir),
			Expected:     []string{"a", "b"},
			Timeout:      5 * time.Second,
			PollInterval: 5 * time.Millisecond,
		})
		require.NoError(t, err)

		assert.Equal(t, "|a|\n|b|", result.Body)
		assert.Empty(t, result.Missing)
	})

	t.Run("merges partially after timeout", func(t *testing.T) {
		dir := t.TempDir()
		saveFragment(t, dir, "a", "|a|")
		saveFragment(t, dir, "stray", "|stray|")

		result, err := domain.NewMerger(adapter.NewReportStore()).Collect(ctx, domain.CollectArgs{
			SharedDir:    m.Path(dir),
			Expected:     []string{"a", "b"},
			Timeout:      20 * time.Millisecond,
			PollInterval: 5 * time.Millisecond,
		})
		require.NoError(t, err)

		assert.Equal(t, "|a|", result.Body, "fragments outside the manifest are ignored")
		assert.Equal(t, []string{"b"}, result.Missing)
		assert.Equal(t, []string{"a"}, result.Modules)
	})

	t.Run("matches dotted module names by file name", func(t *testing.T) {
		dir := t.TempDir()
		saveFragment(t, dir, "shop/api", "|api|")
		saveFragment(t, dir, "com.acme/core", "|core|")

		start := time.Now()

		result, err := domain.NewMerger(adapter.NewReportStore()).Collect(ctx, domain.CollectArgs{
			SharedDir:    m.Path(dir),
			Expected:     []string{"com.acme/core", "shop/api"},
			Timeout:      5 * time.Second,
			PollInterval: 5 * time.Millisecond,
		})
		require.NoError(t, err)

		assert.Less(t, time.Since(start), time.Second)
		assert.Empty(t, result.Missing)
		assert.Equal(t, "|core|\n|api|", result.Body)
		assert.Equal(t, []string{"com.acme/core", "shop/api"}, result.Modules)
	})

	t.Run("honours cancellation while waiting", func(t *testing.T) {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		_, err := domain.NewMerger(adapter.NewReportStore()).Collect(cancelled, domain.CollectArgs{
			SharedDir: m.Path(t.TempDir()),
			Expected:  []string{"a"},
		})
		require.ErrorIs(t, err, context.Canceled)
	})
}
