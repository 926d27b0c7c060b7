package category

import (
	"path/filepath"
	"sort"
	"strings"
)

// MaxPhaseSize is the target maximum estimated size of a single commit phase.
// Shared with the planner so the default plan and the Sequential strategy
// behave identically.
const MaxPhaseSize = 1500

// rule pairs a pattern set with the category it selects. Rules are evaluated
// top to bottom and the first match wins, so precedence stays explicit:
// build-artifact patterns are checked first even though the category ranks
// lowest for ordering, otherwise a source file under target/ would be
// miscategorized as source.
type rule struct {
	patterns []string
	category Category
	priority int
}

// Categorizer classifies file paths using an ordered pattern rule list.
type Categorizer struct {
	rules []rule
}

// NewCategorizer returns a Categorizer with the built-in pattern sets.
func NewCategorizer() *Categorizer {
	return NewCategorizerWithPatterns(nil)
}

// NewCategorizerWithPatterns returns a Categorizer whose built-in pattern sets
// are extended with extra per-category patterns (from project options). Extra
// patterns are appended within their category's set; the category match order
// itself is fixed.
func NewCategorizerWithPatterns(extra map[Category][]string) *Categorizer {
	builtin := []rule{
		{category: BuildArtifacts, priority: 1, patterns: []string{
			"target/*", "build/*", "dist/*", "out/*", "*.min.*", "*.bundle.*",
			"node_modules/*", "*.o", "*.a", "*.so", "*.dylib", "*.exe",
		}},
		{category: Configuration, priority: 9, patterns: []string{
			"*.json", "*.yaml", "*.yml", "*.toml", "*.ini", "*.cfg",
			".env*", "config*", "settings*", "Makefile*", "*.lock",
			"package.json", "Cargo.toml", "requirements.txt", "composer.json",
		}},
		{category: Documentation, priority: 8, patterns: []string{
			"*.md", "*.rst", "*.txt", "README*", "CHANGELOG*", "LICENSE*",
			"docs/*", "documentation/*", "*.adoc", "*.tex",
		}},
		{category: DevelopmentTools, priority: 7, patterns: []string{
			"scripts/*", "tools/*", "bin/*", "*.sh", "Dockerfile*",
			".github/*", ".gitlab/*", "ci/*", "deploy/*", "*.template",
		}},
		{category: SourceCode, priority: 6, patterns: []string{
			"*.rs", "*.js", "*.ts", "*.py", "*.go", "*.java", "*.cpp", "*.c",
			"*.rb", "*.php", "*.sh", "*.bash", "*.zsh", "*.ps1", "*.sql",
			"src/*", "lib/*", "app/*", "*.html", "*.css", "*.scss",
		}},
		{category: MediaAssets, priority: 5, patterns: []string{
			"*.png", "*.jpg", "*.jpeg", "*.gif", "*.svg", "*.ico",
			"*.mp4", "*.mov", "*.avi", "*.pdf", "*.ttf", "*.woff*",
			"assets/*", "images/*", "media/*", "static/*",
		}},
	}

	for i := range builtin {
		if more, ok := extra[builtin[i].category]; ok {
			builtin[i].patterns = append(builtin[i].patterns, more...)
		}
	}

	return &Categorizer{rules: builtin}
}

// AnalyzeFiles categorizes every path and returns the aggregate analysis.
// Files are sorted by priority descending, category name as tiebreak.
func (c *Categorizer) AnalyzeFiles(paths []string) Analysis {
	files := make([]CategorizedFile, 0, len(paths))
	counts := make(map[Category]int)
	totalSize := 0

	for _, path := range paths {
		cf := c.Categorize(path)
		counts[cf.Category]++
		totalSize += cf.EstimatedSize
		files = append(files, cf)
	}

	sort.SliceStable(files, func(i, j int) bool {
		if files[i].Priority != files[j].Priority {
			return files[i].Priority > files[j].Priority
		}
		return files[i].Category.String() < files[j].Category.String()
	})

	return Analysis{
		Files:              files,
		CategoryCounts:     counts,
		EstimatedTotalSize: totalSize,
		SuggestedPhases:    suggestedPhases(files, totalSize),
	}
}

// Categorize classifies a single path. Every path maps to exactly one
// category; unmatched paths fall back to Unknown.
func (c *Categorizer) Categorize(path string) CategorizedFile {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	for _, r := range c.rules {
		if matchesPatterns(path, r.patterns) {
			return CategorizedFile{
				Path:          path,
				Category:      r.category,
				EstimatedSize: estimateSize(path, ext),
				Priority:      r.priority,
				GroupingHint:  groupingHint(r.category, path, ext),
			}
		}
	}

	return CategorizedFile{
		Path:          path,
		Category:      Unknown,
		EstimatedSize: estimateSize(path, ext),
		Priority:      Unknown.Weight(),
		GroupingHint:  "misc",
	}
}

func matchesPatterns(path string, patterns []string) bool {
	for _, pattern := range patterns {
		if strings.Contains(pattern, "*") {
			if globMatch(pattern, path) {
				return true
			}
		} else if strings.Contains(path, pattern) {
			return true
		}
	}
	return false
}

// globMatch handles the small pattern language the rule sets use:
// "*.ext" suffix, "dir/*" prefix, "name*" substring, otherwise equality.
func globMatch(pattern, path string) bool {
	switch {
	case strings.HasPrefix(pattern, "*."):
		return strings.HasSuffix(path, pattern[1:])
	case strings.HasSuffix(pattern, "/*"):
		return strings.HasPrefix(path, pattern[:len(pattern)-2]+"/")
	case strings.HasSuffix(pattern, "*"):
		return strings.Contains(path, pattern[:len(pattern)-1])
	default:
		return path == pattern
	}
}

func groupingHint(c Category, path, ext string) string {
	switch c {
	case BuildArtifacts:
		return "build-artifacts"
	case Configuration:
		return configGroup(path)
	case Documentation:
		return docGroup(path)
	case DevelopmentTools:
		return "dev-tools"
	case SourceCode:
		return codeGroup(ext)
	case MediaAssets:
		return "media"
	default:
		return "misc"
	}
}

func configGroup(path string) string {
	switch {
	case strings.Contains(path, "package") || strings.Contains(path, "requirements"):
		return "dependencies"
	case strings.Contains(path, "docker") || strings.Contains(path, "Docker"):
		return "containerization"
	case strings.Contains(path, ".env"):
		return "environment"
	default:
		return "configuration"
	}
}

func docGroup(path string) string {
	switch {
	case strings.Contains(strings.ToLower(path), "readme"):
		return "core-docs"
	case strings.Contains(path, "docs/") || strings.Contains(path, "documentation/"):
		return "detailed-docs"
	default:
		return "documentation"
	}
}

func codeGroup(ext string) string {
	switch ext {
	case "rs":
		return "rust-code"
	case "js", "ts":
		return "javascript"
	case "py":
		return "python"
	case "go":
		return "golang"
	case "java":
		return "java"
	case "cpp", "c":
		return "c-cpp"
	case "html", "css", "scss":
		return "web-frontend"
	case "sh", "bash", "zsh":
		return "shell-scripts"
	default:
		return "source-code"
	}
}

// estimateSize is a crude size proxy: a per-extension base constant scaled by
// path depth (deeper paths tend to mean more specialized, larger files).
// It stands in for a real diff-based line count, which the path-only input
// cannot provide.
func estimateSize(path, ext string) int {
	var base int
	switch ext {
	case "md", "txt", "rst":
		base = 200
	case "json", "yaml", "yml", "toml":
		base = 100
	case "rs", "js", "ts", "py", "go":
		base = 300
	case "sh", "bash":
		base = 150
	case "lock":
		base = 500
	default:
		base = 100
	}

	depthMultiplier := float64(strings.Count(path, "/"))*0.2 + 1.0
	return int(float64(base) * depthMultiplier)
}

// suggestedPhases balances category diversity against total estimated size:
// roughly one phase per 1000 estimated lines, never more phases than
// categories, and at least 2 phases for organization.
func suggestedPhases(files []CategorizedFile, totalSize int) int {
	unique := make(map[Category]struct{})
	for _, f := range files {
		unique[f.Category] = struct{}{}
	}

	sizeBased := totalSize / 1000
	if sizeBased < 1 {
		sizeBased = 1
	}
	categoryBased := len(unique)
	if categoryBased < 1 {
		categoryBased = 1
	}

	suggested := min(sizeBased, categoryBased)
	if suggested < 2 {
		suggested = 2
	}
	return suggested
}
