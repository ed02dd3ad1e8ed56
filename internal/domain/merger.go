package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/goozereport/internal/adapter"
	m "gooze.dev/pkg/goozereport/internal/model"
)

// Merge defaults.
const (
	DefaultMergeTimeout      = 5 * time.Minute
	DefaultMergePollInterval = 2 * time.Second
	mergeReadConcurrency     = 4
)

// CollectArgs selects the fragments combined by a Merger.
type CollectArgs struct {
	SharedDir m.Path
	// Expected lists the module paths that must contribute a fragment. When
	// non-empty the merge waits for all of them, up to Timeout.
	Expected     []string
	Timeout      time.Duration
	PollInterval time.Duration
}

// Merger combines the per-module fragments of a build into one body.
type Merger interface {
	Collect(ctx context.Context, args CollectArgs) (m.MergeResult, error)
}

type merger struct {
	adapter.ReportStore
}

// NewMerger creates a Merger reading fragments from store.
func NewMerger(store adapter.ReportStore) Merger {
	return &merger{ReportStore: store}
}

// Collect reads every fragment of the shared directory in module path order
// and joins them. Unreadable or non UTF-8 fragments are skipped.
func (mg *merger) Collect(ctx context.Context, args CollectArgs) (m.MergeResult, error) {
	var result m.MergeResult

	files, err := mg.awaitFragments(ctx, args)
	if err != nil {
		return result, err
	}

	if len(args.Expected) > 0 {
		var extra []m.FragmentFile

		files, result.Missing, extra = partitionExpected(files, args.Expected)

		for _, file := range extra {
			slog.Warn("Ignoring fragment of unexpected module", "module", file.ModulePath, "path", file.Path)
		}

		if len(result.Missing) > 0 {
			slog.Warn("Expected fragments are missing", "modules", result.Missing)
		}
	}

	bodies := make([][]byte, len(files))
	readErrs := make([]error, len(files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(mergeReadConcurrency)

	for i, file := range files {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			bodies[i], readErrs[i] = mg.ReadFragment(groupCtx, file.Path)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return m.MergeResult{}, fmt.Errorf("read fragments: %w", err)
	}

	parts := make([]string, 0, len(files))

	for i, file := range files {
		if readErrs[i] != nil {
			slog.Warn("Skipping unreadable fragment", "module", file.ModulePath, "path", file.Path, "error", readErrs[i])
			result.Skipped = append(result.Skipped, file.ModulePath)

			continue
		}

		if !utf8.Valid(bodies[i]) {
			slog.Warn("Skipping corrupt fragment", "module", file.ModulePath, "path", file.Path)
			result.Skipped = append(result.Skipped, file.ModulePath)

			continue
		}

		body := strings.TrimSpace(string(bodies[i]))
		if body == "" {
			continue
		}

		parts = append(parts, body)
		result.Modules = append(result.Modules, file.ModulePath)
	}

	result.Body = strings.Join(parts, "\n")

	if result.Empty() {
		slog.Info("Merged report is empty", "dir", args.SharedDir, "fragments", len(files))
	} else {
		slog.Info("Merged report fragments", "dir", args.SharedDir, "modules", len(result.Modules),
			"missing", len(result.Missing), "skipped", len(result.Skipped))
	}

	return result, nil
}

// awaitFragments lists the shared directory, polling until every expected
// module has a fragment or the timeout elapses.
func (mg *merger) awaitFragments(ctx context.Context, args CollectArgs) ([]m.FragmentFile, error) {
	files, err := mg.ListFragments(ctx, args.SharedDir)
	if err != nil {
		slog.Error("Failed to list fragments", "dir", args.SharedDir, "error", err)
		return nil, err
	}

	if len(args.Expected) == 0 {
		return files, nil
	}

	timeout := args.Timeout
	if timeout <= 0 {
		timeout = DefaultMergeTimeout
	}

	interval := args.PollInterval
	if interval <= 0 {
		interval = DefaultMergePollInterval
	}

	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		_, missing, _ := partitionExpected(files, args.Expected)
		if len(missing) == 0 {
			return files, nil
		}

		slog.Debug("Waiting for fragments", "missing", missing)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-deadline.C:
			slog.Warn("Timed out waiting for fragments, merging what is present",
				"timeout", timeout, "missing", missing)

			return files, nil
		case <-ticker.C:
		}

		files, err = mg.ListFragments(ctx, args.SharedDir)
		if err != nil {
			slog.Error("Failed to list fragments", "dir", args.SharedDir, "error", err)
			return nil, err
		}
	}
}

// partitionExpected splits files into the fragments of expected modules and
// the others, and reports the expected modules without a fragment. Files are
// matched by their encoded name, since decoded module paths lose dots.
func partitionExpected(files []m.FragmentFile, expected []string) ([]m.FragmentFile, []string, []m.FragmentFile) {
	byName := make(map[string]string, len(expected))
	for _, module := range expected {
		name := adapter.FragmentFileName(module)
		if _, ok := byName[name]; !ok {
			byName[name] = module
		}
	}

	found := make(map[string]bool, len(byName))

	var selected, extra []m.FragmentFile

	for _, file := range files {
		name := filepath.Base(string(file.Path))

		module, ok := byName[name]
		if !ok {
			extra = append(extra, file)
			continue
		}

		found[name] = true
		file.ModulePath = module
		selected = append(selected, file)
	}

	var missing []string

	for _, module := range expected {
		if !found[adapter.FragmentFileName(module)] {
			missing = append(missing, module)
		}
	}

	return selected, missing, extra
}
