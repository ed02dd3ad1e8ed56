package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/goozereport/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	passStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#4CAF50"))
	failStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B"))
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
)

// TUI implements UI using Bubble Tea. Display calls collect sections which
// Wait shows in a scrollable viewport until the user quits.
type TUI struct {
	output io.Writer
	input  io.Reader

	mu       sync.Mutex
	mode     StartMode
	sections []string
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start records the mode used for the title.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := applyStartOptions(options)

	p.mu.Lock()
	defer p.mu.Unlock()

	p.mode = cfg.mode
	p.sections = nil

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// Wait runs the viewport program until the user presses q.
func (p *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}

	options := []tea.ProgramOption{tea.WithOutput(p.output), tea.WithContext(ctx), tea.WithAltScreen()}
	if p.input != nil {
		options = append(options, tea.WithInput(p.input))
	}

	program := tea.NewProgram(newReportModel(p.mode.title(), p.content()), options...)

	_, _ = program.Run()
}

// DisplaySummary adds the package table.
func (p *TUI) DisplaySummary(ctx context.Context, summary m.ModuleSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.add(renderSummaryTable(summary))

	return nil
}

// DisplayVerdict adds the gate outcome.
func (p *TUI) DisplayVerdict(ctx context.Context, verdict m.GateVerdict) {
	if err := ctx.Err(); err != nil {
		return
	}

	if verdict.Passed() {
		p.add(passStyle.Render("✔ Quality gate passed"))
		return
	}

	var b strings.Builder

	b.WriteString(failStyle.Render(fmt.Sprintf("✘ Quality gate failed (%s)", pluralize(len(verdict.Reasons), "violation"))))

	for _, reason := range verdict.Reasons {
		fmt.Fprintf(&b, "\n  • %s", reason)
	}

	p.add(b.String())
}

// DisplayFragment adds the rendered fragment.
func (p *TUI) DisplayFragment(ctx context.Context, path m.Path, fragment m.Fragment) {
	if err := ctx.Err(); err != nil {
		return
	}

	if path == "" {
		p.add(footerStyle.Render("No fragment written"))
		return
	}

	p.add(fmt.Sprintf("Fragment %s\n\n%s", path, fragment.Body))
}

// DisplayMergeResult adds the merge outcome.
func (p *TUI) DisplayMergeResult(ctx context.Context, result m.MergeResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	lines := []string{mergeHeadline(result)}

	if len(result.Missing) > 0 {
		lines = append(lines, warnStyle.Render("Missing: "+strings.Join(result.Missing, ", ")))
	}

	if len(result.Skipped) > 0 {
		lines = append(lines, warnStyle.Render("Skipped: "+strings.Join(result.Skipped, ", ")))
	}

	p.add(strings.Join(lines, "\n"))
}

// DisplayComment adds the comment text and what happened remotely.
func (p *TUI) DisplayComment(ctx context.Context, comment string, posted bool, result *m.ReconcileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if comment == "" {
		return
	}

	section := comment
	if posted && result != nil {
		section += "\n\n" + strings.Join(commentLines(result), "\n")
	}

	p.add(section)
}

func (p *TUI) add(section string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.sections = append(p.sections, strings.TrimRight(section, "\n"))
}

func (p *TUI) content() string {
	p.mu.Lock()
	defer p.mu.Unlock()

	return strings.Join(p.sections, "\n\n")
}

// reportModel is the Bubble Tea model showing the collected report.
type reportModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
}

func newReportModel(title, content string) reportModel {
	return reportModel{title: title, content: content}
}

func (rm reportModel) Init() tea.Cmd {
	return nil
}

func (rm reportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return rm, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := msg.Height - lipgloss.Height(rm.headerView()) - lipgloss.Height(rm.footerView())
		if height < 1 {
			height = 1
		}

		if !rm.ready {
			rm.viewport = viewport.New(msg.Width, height)
			rm.viewport.SetContent(rm.content)
			rm.ready = true
		} else {
			rm.viewport.Width = msg.Width
			rm.viewport.Height = height
		}
	}

	var cmd tea.Cmd

	rm.viewport, cmd = rm.viewport.Update(msg)

	return rm, cmd
}

func (rm reportModel) View() string {
	if !rm.ready {
		return "Loading..."
	}

	return rm.headerView() + "\n" + rm.viewport.View() + "\n" + rm.footerView()
}

func (rm reportModel) headerView() string {
	return titleStyle.Render(rm.title)
}

func (rm reportModel) footerView() string {
	percent := 100.0
	if rm.ready {
		percent = rm.viewport.ScrollPercent() * 100
	}

	return footerStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll • q quit", percent))
}
