// Package controller provides the output adapters that present report results.
package controller

import (
	"context"

	m "gooze.dev/pkg/goozereport/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeView
	ModeMerge
)

func (s StartMode) title() string {
	switch s {
	case ModeView:
		return "Gooze Report - Summary"
	case ModeMerge:
		return "Gooze Report - Merge"
	default:
		return "Gooze Report - Run"
	}
}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode StartMode
}

// WithRunMode sets the UI to unit run mode.
func WithRunMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
	}
}

// WithViewMode sets the UI to summary view mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// WithMergeMode sets the UI to whole-build merge mode.
func WithMergeMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeMerge
	}
}

func applyStartOptions(options []StartOption) StartConfig {
	cfg := StartConfig{mode: ModeRun}
	for _, option := range options {
		option(&cfg)
	}

	return cfg
}

// UI presents the outcome of report commands.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplaySummary(ctx context.Context, summary m.ModuleSummary) error
	DisplayVerdict(ctx context.Context, verdict m.GateVerdict)
	DisplayFragment(ctx context.Context, path m.Path, fragment m.Fragment)
	DisplayMergeResult(ctx context.Context, result m.MergeResult)
	DisplayComment(ctx context.Context, comment string, posted bool, result *m.ReconcileResult)
}
