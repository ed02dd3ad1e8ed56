package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	m "gooze.dev/pkg/goozereport/internal/model"
)

// ClassCoverage is the line data recorded for one class.
type ClassCoverage struct {
	LineCount    int
	CoveredLines []int
}

// CoverageIndex answers line coverage lookups by fully qualified class name.
type CoverageIndex interface {
	Lookup(class string) (ClassCoverage, bool)
	Len() int
}

type emptyCoverageIndex struct{}

func (emptyCoverageIndex) Lookup(string) (ClassCoverage, bool) { return ClassCoverage{}, false }
func (emptyCoverageIndex) Len() int                            { return 0 }

type mapCoverageIndex map[string]ClassCoverage

func (idx mapCoverageIndex) Lookup(class string) (ClassCoverage, bool) {
	cov, ok := idx[class]
	if !ok {
		return ClassCoverage{}, false
	}

	lines := make([]int, len(cov.CoveredLines))
	copy(lines, cov.CoveredLines)

	return ClassCoverage{LineCount: cov.LineCount, CoveredLines: lines}, true
}

func (idx mapCoverageIndex) Len() int { return len(idx) }

type coverageFile struct {
	Classes map[string]struct {
		Lines        int   `json:"lines"`
		CoveredLines []int `json:"covered_lines"`
	} `json:"classes"`
}

// LoadCoverageIndex reads a coverage index of the form
// {"classes": {"<class>": {"lines": N, "covered_lines": [...]}}}.
func LoadCoverageIndex(path m.Path) (CoverageIndex, error) {
	// #nosec G304 - path is provided by the user on the command line
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read coverage index %s: %w", path, err)
	}

	var parsed coverageFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("%w: decode coverage index %s: %w", m.ErrInvalidResult, path, err)
	}

	index := make(mapCoverageIndex, len(parsed.Classes))

	for class, entry := range parsed.Classes {
		if entry.Lines < 0 {
			return nil, fmt.Errorf("%w: coverage index %s: class %s has negative line count",
				m.ErrInvalidResult, path, class)
		}

		lines := append([]int(nil), entry.CoveredLines...)
		sort.Ints(lines)

		index[class] = ClassCoverage{LineCount: entry.Lines, CoveredLines: lines}
	}

	return index, nil
}
