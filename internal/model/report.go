package model

import (
	"fmt"
	"strings"
)

// TestStatus represents the outcome of a single mutation.
type TestStatus int

const (
	// Killed indicates the mutation was detected by tests.
	Killed TestStatus = iota
	// Survived indicates the mutation was executed by tests but not detected.
	Survived
	// Timeout indicates the tests did not finish; counted as detected.
	Timeout
	// NoCoverage indicates no test executed the mutated code.
	NoCoverage
	// RunError indicates the mutated code crashed the test run; counted as detected.
	RunError
)

func (t TestStatus) String() string {
	switch t {
	case Killed:
		return "killed"
	case Survived:
		return "survived"
	case Timeout:
		return "timed_out"
	case NoCoverage:
		return "no_coverage"
	case RunError:
		return "run_error"
	default:
		return "unknown"
	}
}

// Detected reports whether the status counts towards the mutation score.
func (t TestStatus) Detected() bool {
	return t == Killed || t == Timeout || t == RunError
}

// Covered reports whether at least one test executed the mutant.
func (t TestStatus) Covered() bool {
	return t != NoCoverage
}

// ParseTestStatus accepts both the snake_case names used in result files and
// the upper-case names emitted by pitest (KILLED, TIMED_OUT, MEMORY_ERROR...).
func ParseTestStatus(value string) (TestStatus, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "killed", "detected":
		return Killed, nil
	case "survived":
		return Survived, nil
	case "timed_out", "timeout":
		return Timeout, nil
	case "no_coverage":
		return NoCoverage, nil
	case "run_error", "memory_error", "error":
		return RunError, nil
	}

	return 0, fmt.Errorf("%w: unknown mutation status %q", ErrInvalidResult, value)
}

// MutationOutcome is the result of testing one mutant.
type MutationOutcome struct {
	ID      string
	Mutator string
	Line    int
	Status  TestStatus
}

// ClassResult holds every mutation outcome for one analysed class together
// with its line coverage. A nil Package marks a malformed result; the empty
// string is the default package.
type ClassResult struct {
	Name         string
	Package      *string
	File         string
	Mutations    []MutationOutcome
	CoveredLines []int
	LineCount    int
}

// PackageName returns the declared package or "" when it is missing.
func (c ClassResult) PackageName() string {
	if c.Package == nil {
		return ""
	}

	return *c.Package
}

// Totals derives the quality rollup of the class.
func (c ClassResult) Totals() Totals {
	totals := Totals{
		LinesTotal:     c.LineCount,
		LinesCovered:   len(c.CoveredLines),
		MutationsTotal: len(c.Mutations),
	}

	for _, outcome := range c.Mutations {
		if outcome.Status.Detected() {
			totals.MutationsDetected++
		}

		if outcome.Status.Covered() {
			totals.MutationsWithCoverage++
		}
	}

	return totals
}

// Fragment is the rendered report of one build unit.
type Fragment struct {
	ModulePath string
	Body       string
}

// FragmentFile locates a persisted fragment in the shared artifact area.
type FragmentFile struct {
	ModulePath string
	Path       Path
}
