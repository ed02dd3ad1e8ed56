package adapter

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "gooze.dev/pkg/goozereport/internal/model"
)

type manifestFile struct {
	Modules []string `yaml:"modules"`
}

// LoadManifest reads the list of module paths expected to contribute a
// fragment:
//
//	modules:
//	  - parent/child
//	  - parent/other
//
// Paths are trimmed of surrounding slashes, deduplicated and sorted.
func LoadManifest(path m.Path) ([]string, error) {
	// #nosec G304 - path is provided through configuration
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("%w: read manifest %s: %w", m.ErrArtifactIO, path, err)
	}

	var parsed manifestFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("decode manifest %s: %w", path, err)
	}

	seen := make(map[string]struct{}, len(parsed.Modules))
	modules := make([]string, 0, len(parsed.Modules))

	for _, module := range parsed.Modules {
		module = strings.Trim(strings.TrimSpace(module), modulePathSplitter)
		if _, ok := seen[module]; ok {
			continue
		}

		seen[module] = struct{}{}
		modules = append(modules, module)
	}

	sort.Strings(modules)

	return modules, nil
}
