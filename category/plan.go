package category

import "fmt"

// GenerateCommitPlan converts an analysis into the default phase sequence: a
// single greedy pass that starts a new phase whenever the category changes or
// the running size would exceed MaxPhaseSize. Phases from this path never mix
// categories. The output partitions the analyzed file set exactly.
func (c *Categorizer) GenerateCommitPlan(analysis Analysis) []CommitPhase {
	var phases []CommitPhase
	var current []CategorizedFile
	currentSize := 0
	haveCategory := false
	var currentCategory Category

	flush := func() {
		if len(current) == 0 {
			return
		}
		phases = append(phases, CommitPhase{
			PhaseNumber:   len(phases) + 1,
			Files:         current,
			Category:      currentCategory,
			EstimatedSize: currentSize,
			CommitMessage: defaultCommitMessage(current),
		})
		current = nil
		currentSize = 0
	}

	for _, file := range analysis.Files {
		if !haveCategory || currentCategory != file.Category ||
			currentSize+file.EstimatedSize > MaxPhaseSize {
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

// defaultCommitMessage builds the plain per-category message used by the
// default plan. The planner has a richer generator that inspects filenames.
func defaultCommitMessage(files []CategorizedFile) string {
	n := len(files)
	word := fileWord(n)

	switch files[0].Category {
	case Configuration:
		return fmt.Sprintf("config: Add %d configuration %s for system setup", n, word)
	case Documentation:
		return fmt.Sprintf("docs: Add %d documentation %s and guides", n, word)
	case SourceCode:
		return fmt.Sprintf("feat: Add %d source code %s and implementations", n, word)
	case DevelopmentTools:
		return fmt.Sprintf("tools: Add %d development tools and scripts", n)
	case MediaAssets:
		return fmt.Sprintf("assets: Add %d media %s and static assets", n, word)
	default:
		return fmt.Sprintf("add: Add %d miscellaneous %s", n, word)
	}
}

func fileWord(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}
