package adapter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/dustin/go-humanize"

	m "gooze.dev/pkg/goozereport/internal/model"
)

const (
	fragmentExtension  = ".md"
	rootFragmentName   = "root"
	fragmentSeparator  = "."
	modulePathSplitter = "/"
)

// ReportStore persists per-module report fragments in a shared directory.
// Each module writes exactly one file whose name is derived from its module
// path, so concurrent units never write the same file.
type ReportStore interface {
	SaveFragment(ctx context.Context, dir m.Path, fragment m.Fragment) (m.Path, error)
	ListFragments(ctx context.Context, dir m.Path) ([]m.FragmentFile, error)
	ReadFragment(ctx context.Context, path m.Path) ([]byte, error)
	FragmentPath(dir m.Path, modulePath string) m.Path
}

// LocalReportStore stores fragments on the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// FragmentFileName maps a module path to its fragment file name, e.g.
// "parent/child" -> "parent.child.md".
func FragmentFileName(modulePath string) string {
	name := strings.Trim(modulePath, modulePathSplitter)
	if name == "" {
		name = rootFragmentName
	}

	return strings.ReplaceAll(name, modulePathSplitter, fragmentSeparator) + fragmentExtension
}

// ModulePathFromFileName reverses FragmentFileName. Module names that contain
// dots cannot be told apart from nested modules.
func ModulePathFromFileName(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), fragmentExtension)
	if base == rootFragmentName {
		return ""
	}

	return strings.ReplaceAll(base, fragmentSeparator, modulePathSplitter)
}

// FragmentPath returns where the fragment of modulePath lives inside dir.
func (s *LocalReportStore) FragmentPath(dir m.Path, modulePath string) m.Path {
	return m.Path(filepath.Join(string(dir), FragmentFileName(modulePath)))
}

// SaveFragment writes the fragment through a temporary file and renames it
// into place so readers never observe a partial file.
func (s *LocalReportStore) SaveFragment(ctx context.Context, dir m.Path, fragment m.Fragment) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create fragment directory", "dir", dir, "error", err)
		return "", fmt.Errorf("%w: create %s: %w", m.ErrArtifactIO, dir, err)
	}

	target := s.FragmentPath(dir, fragment.ModulePath)

	tmp, err := os.CreateTemp(string(dir), ".fragment-*")
	if err != nil {
		slog.Error("Failed to create temporary fragment", "dir", dir, "error", err)
		return "", fmt.Errorf("%w: create temp file: %w", m.ErrArtifactIO, err)
	}

	tmpName := tmp.Name()

	_, writeErr := tmp.WriteString(fragment.Body)
	closeErr := tmp.Close()

	if err := errors.Join(writeErr, closeErr); err != nil {
		_ = os.Remove(tmpName)

		slog.Error("Failed to write fragment", "path", tmpName, "error", err)

		return "", fmt.Errorf("%w: write %s: %w", m.ErrArtifactIO, tmpName, err)
	}

	if err := os.Rename(tmpName, string(target)); err != nil {
		_ = os.Remove(tmpName)

		slog.Error("Failed to move fragment into place", "path", target, "error", err)

		return "", fmt.Errorf("%w: rename %s: %w", m.ErrArtifactIO, target, err)
	}

	slog.Info("Saved report fragment", "module", fragment.ModulePath, "path", target,
		"size", humanize.Bytes(uint64(len(fragment.Body))))

	return target, nil
}

// ListFragments returns every fragment in dir sorted by module path. A
// missing directory yields no fragments.
func (s *LocalReportStore) ListFragments(ctx context.Context, dir m.Path) ([]m.FragmentFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, fmt.Errorf("%w: list %s: %w", m.ErrArtifactIO, dir, err)
	}

	var files []m.FragmentFile

	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != fragmentExtension {
			continue
		}

		files = append(files, m.FragmentFile{
			ModulePath: ModulePathFromFileName(name),
			Path:       m.Path(filepath.Join(string(dir), name)),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		return files[i].ModulePath < files[j].ModulePath
	})

	return files, nil
}

// ReadFragment loads a fragment file.
func (s *LocalReportStore) ReadFragment(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path comes from ListFragments or FragmentPath
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", m.ErrArtifactIO, path, err)
	}

	return data, nil
}
