package domain

import (
	"strings"

	m "gooze.dev/pkg/goozereport/internal/model"
)

const modulePathSeparator = "/"

// ResolveModulePath returns the path of unit relative to the ancestor named
// rootName. The walk stops at the first ancestor with that name; everything
// from the root upwards is dropped. When rootName is empty or no ancestor
// matches, the whole chain from the top-level project down to unit is
// returned.
func ResolveModulePath(unit *m.Module, rootName string) string {
	if unit == nil {
		return ""
	}

	segments := []string{unit.Name}

	for ancestor := unit.Parent; ancestor != nil; ancestor = ancestor.Parent {
		if rootName != "" && ancestor.Name == rootName {
			break
		}

		segments = append(segments, ancestor.Name)
	}

	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}

	return strings.Join(segments, modulePathSeparator)
}

// ParseModuleChain builds a module chain from a slash separated path such as
// "parent/child/unit" and returns the innermost module.
func ParseModuleChain(path string) *m.Module {
	var unit *m.Module

	for _, name := range strings.Split(path, modulePathSeparator) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		unit = &m.Module{Name: name, Parent: unit}
	}

	return unit
}
