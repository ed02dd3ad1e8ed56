package domain

import (
	"fmt"
	"slices"
	"sort"

	m "gooze.dev/pkg/goozereport/internal/model"
	"gooze.dev/pkg/goozereport/pkg"
)

// spillStore keeps class results on disk and only an index of spill
// positions per package in memory.
type spillStore struct {
	dir     string
	spill   pkg.FileSpill[m.ClassResult]
	offsets map[string][]uint64
}

// NewSpillStore creates a SummaryStore that spills results into dir.
func NewSpillStore(dir string) (SummaryStore, error) {
	spill, err := pkg.NewFileSpill[m.ClassResult](dir)
	if err != nil {
		return nil, fmt.Errorf("create spill store: %w", err)
	}

	return &spillStore{dir: dir, spill: spill, offsets: map[string][]uint64{}}, nil
}

func (s *spillStore) Append(pkgName string, result m.ClassResult) error {
	index := s.spill.Len()
	if err := s.spill.Append(result); err != nil {
		return err
	}

	s.offsets[pkgName] = append(s.offsets[pkgName], index)

	return nil
}

func (s *spillStore) Packages() []string {
	names := make([]string, 0, len(s.offsets))
	for name := range s.offsets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func (s *spillStore) Classes(pkgName string) ([]m.ClassResult, error) {
	offsets, ok := s.offsets[pkgName]
	if !ok {
		return nil, nil
	}

	classes := make([]m.ClassResult, 0, len(offsets))

	err := s.spill.Range(func(index uint64, item m.ClassResult) error {
		if _, found := slices.BinarySearch(offsets, index); !found {
			return nil
		}

		// gob drops pointers to zero values, so the default package would
		// come back as nil.
		name := pkgName
		item.Package = &name
		classes = append(classes, item)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (s *spillStore) Reset() error {
	if err := s.spill.Remove(); err != nil {
		return err
	}

	spill, err := pkg.NewFileSpill[m.ClassResult](s.dir)
	if err != nil {
		return fmt.Errorf("reset spill store: %w", err)
	}

	s.spill = spill
	s.offsets = map[string][]uint64{}

	return nil
}

func (s *spillStore) Close() error {
	return s.spill.Remove()
}
