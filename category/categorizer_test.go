package category

import (
	"strings"
	"testing"
)

func TestCategorize_KnownExtensions(t *testing.T) {
	c := NewCategorizer()

	tests := []struct {
		path string
		want Category
	}{
		{"package.json", Configuration},
		{"Cargo.toml", Configuration},
		{"settings.ini", Configuration},
		{".env.local", Configuration},
		{"Cargo.lock", Configuration},
		{"README.md", Documentation},
		{"notes.txt", Documentation},
		{"docs/guide.adoc", Documentation},
		{"LICENSE", Documentation},
		{"src/main.rs", SourceCode},
		{"lib/util.py", SourceCode},
		{"index.html", SourceCode},
		{"target/app", BuildArtifacts},
		{"dist/bundle.js", BuildArtifacts},
		{"node_modules/left-pad/index.js", BuildArtifacts},
		{"scripts/deploy.sh", DevelopmentTools},
		{"Dockerfile", DevelopmentTools},
		{".github/CODEOWNERS", DevelopmentTools},
		{"assets/logo.png", MediaAssets},
		{"video.mp4", MediaAssets},
		{"mystery", Unknown},
	}

	for _, tt := range tests {
		got := c.Categorize(tt.path)
		if got.Category != tt.want {
			t.Errorf("Categorize(%q) = %v, want %v", tt.path, got.Category, tt.want)
		}
		if got.Path != tt.path {
			t.Errorf("Categorize(%q) path = %q", tt.path, got.Path)
		}
	}
}

func TestCategorize_BuildArtifactsPrecedence(t *testing.T) {
	c := NewCategorizer()

	// Source-looking files inside build output directories are artifacts.
	for _, path := range []string{"target/debug/main.rs", "build/app.js", "dist/mod.py"} {
		got := c.Categorize(path)
		if got.Category != BuildArtifacts {
			t.Errorf("Categorize(%q) = %v, want BuildArtifacts", path, got.Category)
		}
	}
}

func TestCategorize_Totality(t *testing.T) {
	c := NewCategorizer()

	// Every path gets exactly one category, falling back to Unknown.
	paths := []string{"", "weird", "no/extension/here", "deep/nested/path/file.xyz", "a.b.c.d"}
	for _, path := range paths {
		got := c.Categorize(path)
		found := false
		for _, cat := range Categories() {
			if got.Category == cat {
				found = true
			}
		}
		if !found {
			t.Errorf("Categorize(%q) produced out-of-set category %v", path, got.Category)
		}
		if got.EstimatedSize <= 0 {
			t.Errorf("Categorize(%q) estimated size = %d, want positive", path, got.EstimatedSize)
		}
	}
}

func TestCategorize_ExtraPatterns(t *testing.T) {
	extra := map[Category][]string{
		Documentation: {"*.wiki"},
	}
	c := NewCategorizerWithPatterns(extra)

	if got := c.Categorize("page.wiki"); got.Category != Documentation {
		t.Errorf("extra pattern not applied: got %v", got.Category)
	}
	// Built-in precedence is unchanged: build dirs still win.
	if got := c.Categorize("target/page.wiki"); got.Category != BuildArtifacts {
		t.Errorf("extra pattern overrode artifact precedence: got %v", got.Category)
	}
}

func TestEstimateSize_DepthScaling(t *testing.T) {
	c := NewCategorizer()

	flat := c.Categorize("main.rs").EstimatedSize
	nested := c.Categorize("src/deep/main.rs").EstimatedSize

	if flat != 300 {
		t.Errorf("flat .rs size = %d, want 300", flat)
	}
	if nested <= flat {
		t.Errorf("nested size %d should exceed flat size %d", nested, flat)
	}
}

func TestAnalyzeFiles_SortedByPriority(t *testing.T) {
	c := NewCategorizer()

	analysis := c.AnalyzeFiles([]string{"target/app", "src/main.rs", "README.md", "package.json"})

	if len(analysis.Files) != 4 {
		t.Fatalf("expected 4 files, got %d", len(analysis.Files))
	}
	for i := 1; i < len(analysis.Files); i++ {
		if analysis.Files[i-1].Priority < analysis.Files[i].Priority {
			t.Errorf("files not sorted by priority at %d: %d < %d",
				i, analysis.Files[i-1].Priority, analysis.Files[i].Priority)
		}
	}
	if analysis.Files[0].Category != Configuration {
		t.Errorf("first file should be Configuration, got %v", analysis.Files[0].Category)
	}
	if analysis.Files[3].Category != BuildArtifacts {
		t.Errorf("last file should be BuildArtifacts, got %v", analysis.Files[3].Category)
	}
}

func TestAnalyzeFiles_Counts(t *testing.T) {
	c := NewCategorizer()

	analysis := c.AnalyzeFiles([]string{"a.md", "b.md", "main.go"})

	if analysis.CategoryCounts[Documentation] != 2 {
		t.Errorf("Documentation count = %d, want 2", analysis.CategoryCounts[Documentation])
	}
	if analysis.CategoryCounts[SourceCode] != 1 {
		t.Errorf("SourceCode count = %d, want 1", analysis.CategoryCounts[SourceCode])
	}

	wantTotal := 0
	for _, f := range analysis.Files {
		wantTotal += f.EstimatedSize
	}
	if analysis.EstimatedTotalSize != wantTotal {
		t.Errorf("EstimatedTotalSize = %d, want %d", analysis.EstimatedTotalSize, wantTotal)
	}
}

func TestAnalyzeFiles_SuggestedPhasesMinimum(t *testing.T) {
	c := NewCategorizer()

	analysis := c.AnalyzeFiles([]string{"a.md"})
	if analysis.SuggestedPhases < 2 {
		t.Errorf("SuggestedPhases = %d, want >= 2", analysis.SuggestedPhases)
	}

	empty := c.AnalyzeFiles(nil)
	if empty.SuggestedPhases < 2 {
		t.Errorf("empty SuggestedPhases = %d, want >= 2", empty.SuggestedPhases)
	}
}

func TestGroupingHints(t *testing.T) {
	c := NewCategorizer()

	tests := []struct {
		path string
		want string
	}{
		{"package.json", "dependencies"},
		{"docker-compose.yml", "containerization"},
		{".env.production", "environment"},
		{"README.md", "core-docs"},
		{"docs/api.md", "detailed-docs"},
		{"main.rs", "rust-code"},
		{"app.ts", "javascript"},
		{"scripts/deploy.sh", "dev-tools"},
		{"target/out", "build-artifacts"},
		{"logo.svg", "media"},
		{"mystery", "misc"},
	}

	for _, tt := range tests {
		if got := c.Categorize(tt.path).GroupingHint; got != tt.want {
			t.Errorf("GroupingHint(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestParse_RoundTrip(t *testing.T) {
	for _, c := range Categories() {
		parsed, err := Parse(c.String())
		if err != nil {
			t.Errorf("Parse(%q) error: %v", c.String(), err)
		}
		if parsed != c {
			t.Errorf("Parse(%q) = %v, want %v", c.String(), parsed, c)
		}
	}

	if _, err := Parse("NotACategory"); err == nil {
		t.Error("Parse of invalid name should fail")
	}
}

func TestWeight_BuildArtifactsLowest(t *testing.T) {
	for _, c := range Categories() {
		if c == BuildArtifacts {
			continue
		}
		if BuildArtifacts.Weight() >= c.Weight() {
			t.Errorf("BuildArtifacts weight %d should be below %v weight %d",
				BuildArtifacts.Weight(), c, c.Weight())
		}
	}
}

func TestGlobMatch(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"*.md", "README.md", true},
		{"*.md", "README.mdx", false},
		{"target/*", "target/debug/app", true},
		{"target/*", "retarget/app", false},
		{"README*", "docs/README.old", true},
		{"Makefile*", "Makefile.am", true},
	}

	for _, tt := range tests {
		if got := globMatch(tt.pattern, tt.path); got != tt.want {
			t.Errorf("globMatch(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}

func TestCommitPhase_Paths(t *testing.T) {
	phase := CommitPhase{
		Files: []CategorizedFile{
			{Path: "a.md"},
			{Path: "b.md"},
		},
	}
	paths := phase.Paths()
	if len(paths) != 2 || paths[0] != "a.md" || paths[1] != "b.md" {
		t.Errorf("Paths() = %v", paths)
	}
}

func TestCategoryString_NoEmpty(t *testing.T) {
	for _, c := range Categories() {
		if strings.TrimSpace(c.String()) == "" {
			t.Errorf("category %d has empty name", int(c))
		}
	}
}
