// Package category classifies changed file paths into commit categories and
// derives size and priority estimates from them.
//
// Only paths are available from the status query this package consumes, so
// "size" is a heuristic from extension and path depth, not a line count.
package category

import "fmt"

// Category is the closed set of file-purpose classifications.
type Category int

const (
	Unknown Category = iota
	Configuration
	Documentation
	SourceCode
	BuildArtifacts
	DevelopmentTools
	MediaAssets
)

// String returns the category name used in persisted history and messages.
func (c Category) String() string {
	switch c {
	case Configuration:
		return "Configuration"
	case Documentation:
		return "Documentation"
	case SourceCode:
		return "SourceCode"
	case BuildArtifacts:
		return "BuildArtifacts"
	case DevelopmentTools:
		return "DevelopmentTools"
	case MediaAssets:
		return "MediaAssets"
	default:
		return "Unknown"
	}
}

// Weight returns the sort-priority weight for commit ordering.
// Higher weights commit earlier; build artifacts always commit last.
func (c Category) Weight() int {
	switch c {
	case Configuration:
		return 9
	case Documentation:
		return 8
	case DevelopmentTools:
		return 7
	case SourceCode:
		return 6
	case MediaAssets:
		return 5
	case BuildArtifacts:
		return 1
	default:
		return 4
	}
}

// Categories lists every category. Useful for exhaustive iteration in callers
// and tests.
func Categories() []Category {
	return []Category{
		Configuration,
		Documentation,
		SourceCode,
		BuildArtifacts,
		DevelopmentTools,
		MediaAssets,
		Unknown,
	}
}

// Parse converts a category name (as produced by String) back to a Category.
func Parse(name string) (Category, error) {
	for _, c := range Categories() {
		if c.String() == name {
			return c, nil
		}
	}
	return Unknown, fmt.Errorf("unknown category %q", name)
}

// CategorizedFile is a single changed path with its classification.
// Produced fresh on every analysis; never persisted individually.
type CategorizedFile struct {
	Path          string
	Category      Category
	EstimatedSize int
	Priority      int // 1-10, higher = commit earlier
	GroupingHint  string
}

// Analysis is the result of one categorization pass over a file set.
type Analysis struct {
	Files              []CategorizedFile
	CategoryCounts     map[Category]int
	EstimatedTotalSize int
	SuggestedPhases    int
}

// CommitPhase is one planned, atomic group of files destined for a single
// commit. Phase numbers are 1-based and contiguous within a plan.
type CommitPhase struct {
	PhaseNumber   int
	Files         []CategorizedFile
	Category      Category // dominant category, used for message generation
	EstimatedSize int
	CommitMessage string
}

// Paths returns the file paths of the phase in order.
func (p CommitPhase) Paths() []string {
	paths := make([]string, len(p.Files))
	for i, f := range p.Files {
		paths[i] = f.Path
	}
	return paths
}
