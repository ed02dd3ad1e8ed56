package adapter

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"text/template"

	m "gooze.dev/pkg/goozereport/internal/model"
)

// Icons used in the per-class rows of a fragment.
const (
	IconClassPass = ":large_blue_circle:"
	IconClassFail = ":red_circle:"
)

// DefaultClassThreshold is the mutation score a class needs for the pass icon.
const DefaultClassThreshold = 50

// DefaultLinkTemplate points at the HTML report published as a TeamCity build
// artifact.
const DefaultLinkTemplate = "http://{{.Host}}/repository/download/{{.BuildTypeID}}/{{.BuildID}}:id/" +
	"{{.ArtifactsPath}}/{{.ModulePath}}/target/pit-reports/{{.Package}}/{{.File}}.html"

// DefaultProgressBarURL serves the progress bar images of ProgressBars cells.
const DefaultProgressBarURL = "https://progress-bar.dev"

//go:embed templates/fragment.md.tmpl
var fragmentTemplate string

// Renderer turns a module summary into a report fragment.
type Renderer interface {
	Render(ctx context.Context, unit m.BuildContext, summary m.ModuleSummary) (m.Fragment, error)
}

// RenderOptions configures the markdown renderer.
type RenderOptions struct {
	ClassThreshold int
	LinkTemplate   string
	// ProgressBars renders each ratio cell as a progress bar image.
	ProgressBars   bool
	ProgressBarURL string
}

// MarkdownRenderer renders fragments as markdown table rows.
type MarkdownRenderer struct {
	classThreshold int
	barURL         string
	fragment       *template.Template
	link           *template.Template
}

// NewMarkdownRenderer parses the fragment and link templates.
func NewMarkdownRenderer(opts RenderOptions) (*MarkdownRenderer, error) {
	fragment, err := template.New("fragment").Parse(fragmentTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse fragment template: %w", err)
	}

	linkSource := opts.LinkTemplate
	if linkSource == "" {
		linkSource = DefaultLinkTemplate
	}

	link, err := template.New("link").Option("missingkey=error").Parse(linkSource)
	if err != nil {
		return nil, fmt.Errorf("parse link template: %w", err)
	}

	threshold := opts.ClassThreshold
	if threshold <= 0 {
		threshold = DefaultClassThreshold
	}

	renderer := &MarkdownRenderer{classThreshold: threshold, fragment: fragment, link: link}

	if opts.ProgressBars {
		renderer.barURL = strings.TrimRight(opts.ProgressBarURL, "/")
		if renderer.barURL == "" {
			renderer.barURL = DefaultProgressBarURL
		}
	}

	return renderer, nil
}

type fragmentRow struct {
	Icon             string
	Name             string
	Link             string
	LineCoverage     string
	MutationCoverage string
	TestStrength     string
}

type linkData struct {
	Host          string
	BuildTypeID   string
	BuildID       string
	ArtifactsPath string
	ModulePath    string
	Package       string
	File          string
	Class         string
}

// Render produces one row per class, classes ordered by package name.
func (r *MarkdownRenderer) Render(ctx context.Context, unit m.BuildContext, summary m.ModuleSummary) (m.Fragment, error) {
	if err := ctx.Err(); err != nil {
		return m.Fragment{}, err
	}

	rows := make([]fragmentRow, 0)

	for _, pkg := range summary.Packages {
		for _, class := range pkg.Classes {
			row, err := r.row(unit, summary.ModulePath, pkg.Name, class)
			if err != nil {
				return m.Fragment{}, err
			}

			rows = append(rows, row)
		}
	}

	var buf bytes.Buffer
	if err := r.fragment.Execute(&buf, struct{ Rows []fragmentRow }{rows}); err != nil {
		return m.Fragment{}, fmt.Errorf("render fragment: %w", err)
	}

	body := strings.TrimSpace(buf.String())
	if body != "" {
		body += "\n"
	}

	slog.Debug("Rendered report fragment", "module", summary.ModulePath, "rows", len(rows), "body", body)

	return m.Fragment{ModulePath: summary.ModulePath, Body: body}, nil
}

func (r *MarkdownRenderer) row(unit m.BuildContext, modulePath, pkg string, class m.ClassResult) (fragmentRow, error) {
	totals := class.Totals()

	icon := IconClassFail
	if totals.MutationScore() >= float64(r.classThreshold) {
		icon = IconClassPass
	}

	link, err := r.classLink(unit, modulePath, pkg, class)
	if err != nil {
		return fragmentRow{}, err
	}

	return fragmentRow{
		Icon:             icon,
		Name:             className(modulePath, pkg, class),
		Link:             link,
		LineCoverage:     r.cell(totals.LinesCovered, totals.LinesTotal),
		MutationCoverage: r.cell(totals.MutationsDetected, totals.MutationsTotal),
		TestStrength:     r.cell(totals.MutationsDetected, totals.MutationsWithCoverage),
	}, nil
}

func (r *MarkdownRenderer) classLink(unit m.BuildContext, modulePath, pkg string, class m.ClassResult) (string, error) {
	if unit.Host == "" {
		return "", nil
	}

	var buf bytes.Buffer

	err := r.link.Execute(&buf, linkData{
		Host:          unit.Host,
		BuildTypeID:   unit.BuildTypeID,
		BuildID:       unit.BuildID,
		ArtifactsPath: unit.ArtifactsPath,
		ModulePath:    modulePath,
		Package:       pkg,
		File:          class.File,
		Class:         class.Name,
	})
	if err != nil {
		return "", fmt.Errorf("render link for %s: %w", class.Name, err)
	}

	return buf.String(), nil
}

func className(modulePath, pkg string, class m.ClassResult) string {
	name := class.File
	if name == "" {
		name = class.Name
	}

	parts := make([]string, 0, 3)
	for _, part := range []string{modulePath, pkg, name} {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return strings.Join(parts, "/")
}

func (r *MarkdownRenderer) cell(part, total int) string {
	if r.barURL == "" {
		return ratio(part, total)
	}

	return fmt.Sprintf("![](%s/%d/?scale=%d&suffix=/%d)", r.barURL, part, total, total)
}

func ratio(part, total int) string {
	pct := 0
	if total > 0 {
		pct = int(math.Round(float64(part) / float64(total) * 100))
	}

	return fmt.Sprintf("%d%% (%d/%d)", pct, part, total)
}
