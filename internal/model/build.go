package model

import (
	"fmt"
	"strings"
)

// RemoteTarget holds the coordinates of the code-review thread that receives
// the combined report.
type RemoteTarget struct {
	BaseURL  string
	Token    string
	Repo     string // owner/name
	PRNumber int
}

// Configured reports whether enough coordinates are present to post a comment.
func (r RemoteTarget) Configured() bool {
	return r.Repo != "" && r.PRNumber > 0
}

// Thread returns the review thread addressed by the target.
func (r RemoteTarget) Thread() Thread {
	return Thread{Repo: r.Repo, Number: r.PRNumber}
}

// BuildContext identifies one build unit. It is built once from configuration
// and never modified afterwards.
type BuildContext struct {
	Host          string
	BuildTypeID   string
	BuildID       string
	ArtifactsPath string
	ModulePath    string
	Last          bool
	Remote        RemoteTarget
}

// Thresholds configures the quality gate. Percentages of 0 and a negative
// MaxSurviving disable the corresponding check.
type Thresholds struct {
	MutationScore int
	TestStrength  int
	LineCoverage  int
	MaxSurviving  int
}

// DisabledThresholds returns a configuration where every check is off.
func DisabledThresholds() Thresholds {
	return Thresholds{MaxSurviving: -1}
}

// GateVerdict is the outcome of evaluating totals against thresholds.
type GateVerdict struct {
	Totals  Totals
	Reasons []string
}

// Passed reports whether no threshold was violated.
func (v GateVerdict) Passed() bool {
	return len(v.Reasons) == 0
}

// Err converts a failing verdict into a *ThresholdError.
func (v GateVerdict) Err() error {
	if v.Passed() {
		return nil
	}

	return &ThresholdError{Reasons: append([]string(nil), v.Reasons...)}
}

// ThresholdError carries every violated threshold of a failed gate.
type ThresholdError struct {
	Reasons []string
}

func (e *ThresholdError) Error() string {
	return fmt.Sprintf("%d quality threshold(s) violated: %s", len(e.Reasons), strings.Join(e.Reasons, "; "))
}

// Is matches ErrThresholdViolation.
func (e *ThresholdError) Is(target error) bool {
	return target == ErrThresholdViolation
}
