package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/goozereport/internal/model"
)

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd  *cobra.Command
	pass *color.Color
	fail *color.Color
	warn *color.Color
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{
		cmd:  cmd,
		pass: color.New(color.FgGreen, color.Bold),
		fail: color.New(color.FgRed, color.Bold),
		warn: color.New(color.FgYellow),
	}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplaySummary prints one table row per package plus a module total.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.ModuleSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	return nil
}

// DisplayVerdict prints the gate outcome and every violated threshold.
func (s *SimpleUI) DisplayVerdict(ctx context.Context, verdict m.GateVerdict) {
	if err := ctx.Err(); err != nil {
		return
	}

	if verdict.Passed() {
		s.printf("%s\n", s.pass.Sprint("Quality gate passed"))
		return
	}

	s.printf("%s\n", s.fail.Sprintf("Quality gate failed (%s)",
		pluralize(len(verdict.Reasons), "violation")))

	for _, reason := range verdict.Reasons {
		s.printf("  - %s\n", reason)
	}
}

// DisplayFragment reports where the module fragment was written.
func (s *SimpleUI) DisplayFragment(ctx context.Context, path m.Path, fragment m.Fragment) {
	if err := ctx.Err(); err != nil {
		return
	}

	if path == "" {
		s.printf("No fragment written\n")
		return
	}

	s.printf("Fragment for %s written to %s (%s)\n", moduleLabel(fragment.ModulePath), path,
		humanize.Bytes(uint64(len(fragment.Body))))
}

// DisplayMergeResult prints which modules were merged.
func (s *SimpleUI) DisplayMergeResult(ctx context.Context, result m.MergeResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s\n", mergeHeadline(result))

	if len(result.Missing) > 0 {
		s.printf("%s\n", s.warn.Sprintf("Missing: %s", strings.Join(result.Missing, ", ")))
	}

	if len(result.Skipped) > 0 {
		s.printf("%s\n", s.warn.Sprintf("Skipped: %s", strings.Join(result.Skipped, ", ")))
	}
}

// DisplayComment prints the composed comment when it was not posted, or the
// comment id otherwise.
func (s *SimpleUI) DisplayComment(ctx context.Context, comment string, posted bool, result *m.ReconcileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if comment == "" {
		return
	}

	if !posted || result == nil {
		s.printf("\n%s\n", comment)
		return
	}

	for _, line := range commentLines(result) {
		s.printf("%s\n", line)
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(summary m.ModuleSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Package", "Classes", "Line Coverage", "Mutation Score", "Test Strength", "Survivors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	classes := 0

	for _, pkg := range summary.Packages {
		totals := pkg.Totals()
		classes += len(pkg.Classes)

		table.Append(totalsRow(packageLabel(pkg.Name), len(pkg.Classes), totals))
	}

	table.SetFooter(totalsRow(fmt.Sprintf("Total %s", moduleLabel(summary.ModulePath)), classes, summary.Totals()))

	table.Render()

	return tableBuffer.String()
}

func totalsRow(label string, classes int, totals m.Totals) []string {
	return []string{
		label,
		humanize.Comma(int64(classes)),
		percentCell(totals.LineCoverage(), totals.LinesCovered, totals.LinesTotal),
		percentCell(totals.MutationScore(), totals.MutationsDetected, totals.MutationsTotal),
		percentCell(totals.TestStrength(), totals.MutationsDetected, totals.MutationsWithCoverage),
		humanize.Comma(int64(totals.SurvivingMutations())),
	}
}

func percentCell(value float64, part, total int) string {
	return fmt.Sprintf("%s%% (%s/%s)", humanize.FtoaWithDigits(value, 2),
		humanize.Comma(int64(part)), humanize.Comma(int64(total)))
}

func packageLabel(name string) string {
	if name == "" {
		return "(default)"
	}

	return name
}

func moduleLabel(path string) string {
	if path == "" {
		return "root"
	}

	return path
}

func mergeHeadline(result m.MergeResult) string {
	if result.Empty() {
		return "Merged report is empty"
	}

	return fmt.Sprintf("Merged %s: %s", pluralize(len(result.Modules), "module"),
		strings.Join(labels(result.Modules), ", "))
}

func commentLines(result *m.ReconcileResult) []string {
	var lines []string

	if result.Deleted != nil {
		if result.DeleteError != nil {
			lines = append(lines, fmt.Sprintf("Could not delete previous comment %d: %v",
				result.Deleted.ID, result.DeleteError))
		} else {
			lines = append(lines, fmt.Sprintf("Deleted previous comment %d", result.Deleted.ID))
		}
	}

	return append(lines, fmt.Sprintf("Posted comment %d", result.Created.ID))
}

func labels(modules []string) []string {
	out := make([]string, len(modules))
	for i, module := range modules {
		out[i] = moduleLabel(module)
	}

	return out
}

func pluralize(count int, noun string) string {
	if count == 1 {
		return fmt.Sprintf("1 %s", noun)
	}

	return fmt.Sprintf("%s %ss", humanize.Comma(int64(count)), noun)
}
