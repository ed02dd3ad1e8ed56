package domain

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"

	m "gooze.dev/pkg/goozereport/internal/model"
)

// SummaryStore holds class results grouped by package. Keys are unique and
// values are only ever appended.
type SummaryStore interface {
	Append(pkg string, result m.ClassResult) error
	// Packages returns the package names in ascending order.
	Packages() []string
	// Classes returns the results of pkg in insertion order.
	Classes(pkg string) ([]m.ClassResult, error)
	Reset() error
	Close() error
}

// Aggregator folds per-class results into a module summary. Results may be
// recorded in any order; callers must deliver each class at most once.
type Aggregator interface {
	Record(result m.ClassResult) error
	Summary(modulePath string) (m.ModuleSummary, error)
	Reset() error
}

type aggregator struct {
	store SummaryStore
}

// NewAggregator creates an Aggregator backed by store.
func NewAggregator(store SummaryStore) Aggregator {
	return &aggregator{store: store}
}

func (a *aggregator) Record(result m.ClassResult) error {
	normalized, err := validateResult(result)
	if err != nil {
		slog.Error("Rejected class result", "class", result.Name, "error", err)
		return err
	}

	if err := a.store.Append(*normalized.Package, normalized); err != nil {
		return fmt.Errorf("record %s: %w", result.Name, err)
	}

	return nil
}

func (a *aggregator) Summary(modulePath string) (m.ModuleSummary, error) {
	summary := m.ModuleSummary{ModulePath: modulePath}

	for _, name := range a.store.Packages() {
		classes, err := a.store.Classes(name)
		if err != nil {
			return m.ModuleSummary{}, fmt.Errorf("load package %q: %w", name, err)
		}

		summary.Packages = append(summary.Packages, m.PackageSummary{Name: name, Classes: classes})
	}

	return summary, nil
}

func (a *aggregator) Reset() error {
	return a.store.Reset()
}

// validateResult rejects results that would break the Totals invariants and
// returns a copy whose covered lines are a sorted set.
func validateResult(result m.ClassResult) (m.ClassResult, error) {
	if result.Package == nil {
		return result, fmt.Errorf("%w: class %q has no package", m.ErrInvalidResult, result.Name)
	}

	if result.LineCount < 0 {
		return result, fmt.Errorf("%w: class %q has negative line count %d", m.ErrInvalidResult, result.Name, result.LineCount)
	}

	for _, outcome := range result.Mutations {
		if outcome.Status < m.Killed || outcome.Status > m.RunError {
			return result, fmt.Errorf("%w: class %q has unknown status %d", m.ErrInvalidResult, result.Name, outcome.Status)
		}
	}

	covered := slices.Clone(result.CoveredLines)
	sort.Ints(covered)
	covered = slices.Compact(covered)

	if len(covered) > result.LineCount {
		return result, fmt.Errorf("%w: class %q covers %d lines but has %d",
			m.ErrInvalidResult, result.Name, len(covered), result.LineCount)
	}

	pkg := *result.Package
	result.Package = &pkg
	result.CoveredLines = covered
	result.Mutations = slices.Clone(result.Mutations)

	return result, nil
}

// memoryStore keeps results in an ordered map.
type memoryStore struct {
	index    map[string]int
	packages []string
	classes  [][]m.ClassResult
}

// NewMemoryStore creates an in-memory SummaryStore.
func NewMemoryStore() SummaryStore {
	return &memoryStore{index: map[string]int{}}
}

func (s *memoryStore) Append(pkg string, result m.ClassResult) error {
	i, ok := s.index[pkg]
	if !ok {
		i = len(s.packages)
		s.index[pkg] = i
		s.packages = append(s.packages, pkg)
		s.classes = append(s.classes, nil)
	}

	s.classes[i] = append(s.classes[i], result)

	return nil
}

func (s *memoryStore) Packages() []string {
	names := slices.Clone(s.packages)
	sort.Strings(names)

	return names
}

func (s *memoryStore) Classes(pkg string) ([]m.ClassResult, error) {
	i, ok := s.index[pkg]
	if !ok {
		return nil, nil
	}

	return slices.Clone(s.classes[i]), nil
}

func (s *memoryStore) Reset() error {
	s.index = map[string]int{}
	s.packages = nil
	s.classes = nil

	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
