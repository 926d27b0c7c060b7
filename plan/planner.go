// Package plan turns a categorized file set into an ordered commit phase
// sequence using a selectable strategy.
package plan

import (
	"fmt"
	"sort"

	"github.com/phasal/phasal-core/category"
	"github.com/phasal/phasal-core/logger"
)

// Strategy is the closed set of phase-generation algorithms.
type Strategy string

const (
	// Sequential emits phases in analysis order, splitting on category
	// change or size limit. Identical to the categorizer's default plan.
	Sequential Strategy = "sequential"
	// SizeOptimized packs files largest-first for balanced phase sizes.
	SizeOptimized Strategy = "size-optimized"
	// CategoryFirst groups files by category in priority order.
	CategoryFirst Strategy = "category-first"
	// DependencyAware is Sequential with whole phases re-sorted by category
	// priority. An approximation: no cross-file dependency graph is built,
	// because only paths (not file content) are available.
	DependencyAware Strategy = "dependency-aware"
	// Parallel currently produces the same phases as CategoryFirst. The
	// intended independent-execution marker is not carried in the output.
	Parallel Strategy = "parallel"
)

// ParseStrategy converts a strategy name to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch Strategy(name) {
	case Sequential, SizeOptimized, CategoryFirst, DependencyAware, Parallel:
		return Strategy(name), nil
	}
	return "", fmt.Errorf("unknown commit strategy %q", name)
}

// Estimate is an advisory duration and complexity estimate for a plan.
// It is surfaced to the operator only and never gates execution.
type Estimate struct {
	TotalPhases      int
	EstimatedMinutes int
	ComplexityScore  int // 1-10 scale
}

// Plan is the full output of one planning pass.
type Plan struct {
	Phases   []category.CommitPhase
	Strategy Strategy
	Estimate Estimate
	Notes    []string
}

// Planner generates commit plans from category analyses.
type Planner struct {
	maxPhaseSize           int
	preferredFilesPerPhase int
}

// NewPlanner returns a Planner with the default limits.
func NewPlanner() *Planner {
	return &Planner{
		maxPhaseSize:           category.MaxPhaseSize,
		preferredFilesPerPhase: 15,
	}
}

// GeneratePlan selects a strategy from the analysis shape and generates the
// phase sequence.
func (p *Planner) GeneratePlan(analysis category.Analysis) Plan {
	return p.GenerateWithStrategy(analysis, p.DetermineStrategy(analysis))
}

// GenerateWithStrategy generates the phase sequence for an explicit strategy.
func (p *Planner) GenerateWithStrategy(analysis category.Analysis, strategy Strategy) Plan {
	var phases []category.CommitPhase
	switch strategy {
	case SizeOptimized:
		phases = p.sizeOptimizedPhases(analysis)
	case CategoryFirst:
		phases = p.categoryFirstPhases(analysis)
	case DependencyAware:
		phases = p.dependencyAwarePhases(analysis)
	case Parallel:
		phases = p.parallelPhases(analysis)
	default:
		phases = p.sequentialPhases(analysis)
	}

	logger.WithComponent("plan").Debug("plan generated",
		"strategy", string(strategy), "phases", len(phases), "files", len(analysis.Files))

	return Plan{
		Phases:   phases,
		Strategy: strategy,
		Estimate: calculateEstimate(phases),
		Notes:    optimizationNotes(phases, strategy),
	}
}

// DetermineStrategy is a pure decision tree over the analysis shape: the same
// file count, total size, and category count always choose the same strategy.
func (p *Planner) DetermineStrategy(analysis category.Analysis) Strategy {
	totalFiles := len(analysis.Files)
	totalSize := analysis.EstimatedTotalSize
	categoryCount := len(analysis.CategoryCounts)

	switch {
	case totalFiles > 50 && totalSize > 5000:
		return SizeOptimized
	case categoryCount > 4:
		return CategoryFirst
	case totalFiles > 30:
		return DependencyAware
	default:
		return Sequential
	}
}

// sequentialPhases splits the analysis-ordered file list on category change
// or size limit. Same algorithm as the categorizer's default plan.
func (p *Planner) sequentialPhases(analysis category.Analysis) []category.CommitPhase {
	var phases []category.CommitPhase
	var current []category.CategorizedFile
	currentSize := 0
	haveCategory := false
	var currentCategory category.Category

	flush := func() {
		if len(current) == 0 {
			return
		}
		phases = append(phases, p.newPhase(len(phases)+1, current, currentCategory, currentSize))
		current = nil
		currentSize = 0
	}

	for _, file := range analysis.Files {
		if !haveCategory || currentCategory != file.Category ||
			currentSize+file.EstimatedSize > p.maxPhaseSize {
			flush()
			currentCategory = file.Category
			haveCategory = true
		}
		current = append(current, file)
		currentSize += file.EstimatedSize
	}
	flush()

	return phases
}

// sizeOptimizedPhases packs files largest-first. A phase is flushed before it
// would exceed the size cap, and also once it reaches half the cap while
// already holding at least 5 files, so a few huge files cannot crowd out
// everything else. Phases may mix categories; the dominant one is recorded.
func (p *Planner) sizeOptimizedPhases(analysis category.Analysis) []category.CommitPhase {
	files := make([]category.CategorizedFile, len(analysis.Files))
	copy(files, analysis.Files)
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].EstimatedSize > files[j].EstimatedSize
	})

	targetPhaseSize := p.maxPhaseSize / 2

	var phases []category.CommitPhase
	var current []category.CategorizedFile
	currentSize := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		phases = append(phases, p.newPhase(len(phases)+1, current, dominantCategory(current), currentSize))
		current = nil
		currentSize = 0
	}

	for _, file := range files {
		if currentSize+file.EstimatedSize > p.maxPhaseSize && len(current) > 0 {
			flush()
		}

		current = append(current, file)
		currentSize += file.EstimatedSize

		if currentSize >= targetPhaseSize && len(current) >= 5 {
			flush()
		}
	}
	flush()

	return phases
}

// categoryFirstPhases groups files by category, visits categories by
// descending priority weight, and chunks oversized categories into windows of
// preferredFilesPerPhase, preserving analysis order within each chunk.
func (p *Planner) categoryFirstPhases(analysis category.Analysis) []category.CommitPhase {
	byCategory := make(map[category.Category][]category.CategorizedFile)
	for _, file := range analysis.Files {
		byCategory[file.Category] = append(byCategory[file.Category], file)
	}

	categories := make([]category.Category, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if categories[i].Weight() != categories[j].Weight() {
			return categories[i].Weight() > categories[j].Weight()
		}
		return categories[i].String() < categories[j].String()
	})

	var phases []category.CommitPhase
	for _, c := range categories {
		files := byCategory[c]
		for start := 0; start < len(files); start += p.preferredFilesPerPhase {
			end := min(start+p.preferredFilesPerPhase, len(files))
			chunk := files[start:end]
			size := 0
			for _, f := range chunk {
				size += f.EstimatedSize
			}
			phases = append(phases, p.newPhase(len(phases)+1, chunk, c, size))
		}
	}

	return phases
}

// dependencyAwarePhases runs Sequential, then re-sorts whole phases (not
// individual files) by category priority and renumbers. A placeholder for a
// real dependency analysis.
func (p *Planner) dependencyAwarePhases(analysis category.Analysis) []category.CommitPhase {
	phases := p.sequentialPhases(analysis)

	sort.SliceStable(phases, func(i, j int) bool {
		return phases[i].Category.Weight() > phases[j].Category.Weight()
	})
	for i := range phases {
		phases[i].PhaseNumber = i + 1
	}

	return phases
}

// parallelPhases mirrors CategoryFirst. Category-grouped phases touch disjoint
// file sets, which is what would make them independently executable, but no
// such marker is carried in CommitPhase.
func (p *Planner) parallelPhases(analysis category.Analysis) []category.CommitPhase {
	return p.categoryFirstPhases(analysis)
}

func (p *Planner) newPhase(number int, files []category.CategorizedFile, c category.Category, size int) category.CommitPhase {
	return category.CommitPhase{
		PhaseNumber:   number,
		Files:         files,
		Category:      c,
		EstimatedSize: size,
		CommitMessage: commitMessage(files, c),
	}
}

// dominantCategory returns the most frequent category in a mixed file list,
// tie-broken by priority weight.
func dominantCategory(files []category.CategorizedFile) category.Category {
	counts := make(map[category.Category]int)
	for _, f := range files {
		counts[f.Category]++
	}

	best := category.Unknown
	bestCount := -1
	for c, n := range counts {
		if n > bestCount || (n == bestCount && c.Weight() > best.Weight()) {
			best = c
			bestCount = n
		}
	}
	return best
}

// calculateEstimate derives the advisory duration and complexity numbers from
// phase count, file count, and total size using fixed linear weights.
func calculateEstimate(phases []category.CommitPhase) Estimate {
	totalPhases := len(phases)
	totalFiles := 0
	totalSize := 0
	for _, p := range phases {
		totalFiles += len(p.Files)
		totalSize += p.EstimatedSize
	}

	perFile := 1
	if totalFiles > 50 {
		perFile = 0
	}
	minutes := totalPhases*2 + totalFiles*perFile + totalSize/1000

	complexity := min(totalPhases, 10)*2 + min(totalFiles, 100)/10 + min(totalSize, 10000)/1000
	if complexity > 10 {
		complexity = 10
	}

	return Estimate{
		TotalPhases:      totalPhases,
		EstimatedMinutes: minutes,
		ComplexityScore:  complexity,
	}
}

// optimizationNotes builds operator-facing hints about the generated plan.
func optimizationNotes(phases []category.CommitPhase, strategy Strategy) []string {
	var notes []string

	switch strategy {
	case SizeOptimized:
		notes = append(notes, "Phases optimized for balanced commit sizes")
	case CategoryFirst:
		notes = append(notes, "Files grouped by category for logical organization")
	case DependencyAware:
		notes = append(notes, "Commit order considers file dependencies")
	}

	largePhases := 0
	busyPhases := 0
	for _, p := range phases {
		if p.EstimatedSize > category.MaxPhaseSize {
			largePhases++
		}
		if len(p.Files) > 20 {
			busyPhases++
		}
	}
	if largePhases > 0 {
		notes = append(notes, fmt.Sprintf("%d phases are large (>%d lines) - consider reviewing carefully", largePhases, category.MaxPhaseSize))
	}
	if busyPhases > 0 {
		notes = append(notes, fmt.Sprintf("%d phases have many files (>20) - consider splitting if needed", busyPhases))
	}
	if len(phases) > 10 {
		notes = append(notes, "Consider executing all phases for efficient batch processing")
	}

	return notes
}
