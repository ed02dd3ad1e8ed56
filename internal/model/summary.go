package model

const percentScale = 100

// Totals is the numeric rollup of a set of class results.
type Totals struct {
	LinesTotal            int
	LinesCovered          int
	MutationsTotal        int
	MutationsDetected     int
	MutationsWithCoverage int
}

// Add returns the element-wise sum of both totals.
func (t Totals) Add(other Totals) Totals {
	return Totals{
		LinesTotal:            t.LinesTotal + other.LinesTotal,
		LinesCovered:          t.LinesCovered + other.LinesCovered,
		MutationsTotal:        t.MutationsTotal + other.MutationsTotal,
		MutationsDetected:     t.MutationsDetected + other.MutationsDetected,
		MutationsWithCoverage: t.MutationsWithCoverage + other.MutationsWithCoverage,
	}
}

// MutationScore is detected/total*100.
func (t Totals) MutationScore() float64 {
	return percent(t.MutationsDetected, t.MutationsTotal)
}

// TestStrength is detected/with-coverage*100.
func (t Totals) TestStrength() float64 {
	return percent(t.MutationsDetected, t.MutationsWithCoverage)
}

// LineCoverage is covered/total*100.
func (t Totals) LineCoverage() float64 {
	return percent(t.LinesCovered, t.LinesTotal)
}

// SurvivingMutations counts every mutant that was not detected, including
// those without coverage.
func (t Totals) SurvivingMutations() int {
	return t.MutationsTotal - t.MutationsDetected
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(part) / float64(total) * percentScale
}

// PackageSummary groups the class results of a single package.
type PackageSummary struct {
	Name    string
	Classes []ClassResult
}

// Totals sums the totals of every class in the package.
func (p PackageSummary) Totals() Totals {
	var totals Totals
	for _, class := range p.Classes {
		totals = totals.Add(class.Totals())
	}

	return totals
}

// ModuleSummary is the merge of every package summary of one build unit.
// Packages are ordered by name.
type ModuleSummary struct {
	ModulePath string
	Packages   []PackageSummary
}

// Totals sums the totals of every package.
func (s ModuleSummary) Totals() Totals {
	var totals Totals
	for _, pkg := range s.Packages {
		totals = totals.Add(pkg.Totals())
	}

	return totals
}

// Classes flattens the packages into one slice, in package order.
func (s ModuleSummary) Classes() []ClassResult {
	var classes []ClassResult
	for _, pkg := range s.Packages {
		classes = append(classes, pkg.Classes...)
	}

	return classes
}

// Empty reports whether the module has no recorded class.
func (s ModuleSummary) Empty() bool {
	return len(s.Packages) == 0
}
