// Package adapter contains the infrastructure adapters of gooze-report:
// result loading, fragment storage, rendering, the review API client and
// metrics export.
package adapter

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	m "gooze.dev/pkg/goozereport/internal/model"
)

const (
	recursiveSuffix   = "/..."
	resultsExtension  = ".json"
	maxSchemaMessages = 5
)

//go:embed schema/results.schema.json
var resultsSchema []byte

// ResultSource loads the per-class results exported by the mutation engine.
type ResultSource interface {
	// Load reads every results file matched by paths. A path may name a file,
	// a directory (its *.json files) or a directory followed by "/..."
	// (recursive). When coverage is not empty the coverage index it names
	// supplies the line data of each class.
	Load(ctx context.Context, paths []m.Path, coverage m.Path) ([]m.ClassResult, error)
}

// LocalResultSource reads results files from the local filesystem.
type LocalResultSource struct {
	schema *gojsonschema.Schema
}

// NewLocalResultSource compiles the embedded results schema.
func NewLocalResultSource() (*LocalResultSource, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(resultsSchema))
	if err != nil {
		return nil, fmt.Errorf("compile results schema: %w", err)
	}

	return &LocalResultSource{schema: schema}, nil
}

type resultsFile struct {
	Classes []classEntry `json:"classes"`
}

type classEntry struct {
	Name         string          `json:"name"`
	Package      *string         `json:"package"`
	File         string          `json:"file"`
	Lines        int             `json:"lines"`
	CoveredLines []int           `json:"covered_lines"`
	Mutations    []mutationEntry `json:"mutations"`
}

type mutationEntry struct {
	ID      string `json:"id"`
	Mutator string `json:"mutator"`
	Line    int    `json:"line"`
	Status  string `json:"status"`
}

// Load implements ResultSource.
func (s *LocalResultSource) Load(ctx context.Context, paths []m.Path, coverage m.Path) ([]m.ClassResult, error) {
	files, err := s.resolveFiles(paths)
	if err != nil {
		return nil, err
	}

	var index CoverageIndex = emptyCoverageIndex{}

	if coverage != "" {
		index, err = LoadCoverageIndex(coverage)
		if err != nil {
			return nil, err
		}

		slog.Debug("Loaded coverage index", "path", coverage, "classes", index.Len())
	}

	var results []m.ClassResult

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		classes, err := s.loadFile(file, index)
		if err != nil {
			slog.Error("Failed to load results file", "path", file, "error", err)
			return nil, err
		}

		slog.Debug("Loaded results file", "path", file, "classes", len(classes))

		results = append(results, classes...)
	}

	return results, nil
}

func (s *LocalResultSource) resolveFiles(paths []m.Path) ([]string, error) {
	seen := map[string]struct{}{}

	var files []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}

		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		root := string(p)
		recursive := strings.HasSuffix(root, recursiveSuffix)

		if recursive {
			root = strings.TrimSuffix(root, recursiveSuffix)
			if root == "" {
				root = "."
			}
		}

		info, err := os.Stat(root)
		if err != nil {
			return nil, fmt.Errorf("results path %s: %w", root, err)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				if path != root && !recursive {
					return filepath.SkipDir
				}

				return nil
			}

			if filepath.Ext(path) == resultsExtension {
				add(path)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("walk %s: %w", root, err)
		}
	}

	sort.Strings(files)

	return files, nil
}

func (s *LocalResultSource) loadFile(path string, index CoverageIndex) ([]m.ClassResult, error) {
	// #nosec G304 - path is provided by the user on the command line
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	validation, err := s.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s is not valid JSON: %w", m.ErrInvalidResult, path, err)
	}

	if !validation.Valid() {
		return nil, fmt.Errorf("%w: %s: %s", m.ErrInvalidResult, path, describeSchemaErrors(validation.Errors()))
	}

	var parsed resultsFile

	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", m.ErrInvalidResult, path, err)
	}

	results := make([]m.ClassResult, 0, len(parsed.Classes))

	for _, entry := range parsed.Classes {
		result, err := entry.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		if cov, ok := index.Lookup(result.Name); ok {
			result.LineCount = cov.LineCount
			result.CoveredLines = cov.CoveredLines
		}

		results = append(results, result)
	}

	return results, nil
}

func (e classEntry) toModel() (m.ClassResult, error) {
	result := m.ClassResult{
		Name:         e.Name,
		Package:      e.Package,
		File:         e.File,
		LineCount:    e.Lines,
		CoveredLines: e.CoveredLines,
		Mutations:    make([]m.MutationOutcome, 0, len(e.Mutations)),
	}

	for _, mutation := range e.Mutations {
		status, err := m.ParseTestStatus(mutation.Status)
		if err != nil {
			return m.ClassResult{}, fmt.Errorf("class %s: %w", e.Name, err)
		}

		result.Mutations = append(result.Mutations, m.MutationOutcome{
			ID:      mutation.ID,
			Mutator: mutation.Mutator,
			Line:    mutation.Line,
			Status:  status,
		})
	}

	return result, nil
}

func describeSchemaErrors(errs []gojsonschema.ResultError) string {
	messages := make([]string, 0, len(errs))

	for i, e := range errs {
		if i == maxSchemaMessages {
			messages = append(messages, fmt.Sprintf("and %d more", len(errs)-maxSchemaMessages))
			break
		}

		messages = append(messages, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}

	return strings.Join(messages, "; ")
}
