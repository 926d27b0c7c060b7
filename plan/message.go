package plan

import (
	"fmt"
	"strings"

	"github.com/phasal/phasal-core/category"
)

// commitMessage builds the phase commit message. Representative filenames
// refine the prefix: a package manifest turns config into "deps:", container
// files into "docker:". Source phases name the language when every file
// shares one recognized extension.
func commitMessage(files []category.CategorizedFile, c category.Category) string {
	n := len(files)
	word := fileWord(n)

	switch c {
	case category.Configuration:
		switch {
		case anyPathContains(files, "package.json") || anyPathContains(files, "Cargo.toml"):
			return fmt.Sprintf("deps: Add %d dependency configuration %s", n, word)
		case anyPathContains(files, "docker") || anyPathContains(files, "Docker"):
			return fmt.Sprintf("docker: Add %d containerization configuration %s", n, word)
		default:
			return fmt.Sprintf("config: Add %d configuration %s", n, word)
		}
	case category.Documentation:
		for _, f := range files {
			if strings.Contains(strings.ToLower(f.Path), "readme") {
				return fmt.Sprintf("docs: Add %d core documentation %s", n, word)
			}
		}
		return fmt.Sprintf("docs: Add %d documentation and guide %s", n, word)
	case category.SourceCode:
		if lang, ok := sharedLanguage(files); ok {
			return fmt.Sprintf("feat: Add %d %s source %s", n, lang, word)
		}
		return fmt.Sprintf("feat: Add %d source code %s", n, word)
	case category.DevelopmentTools:
		return fmt.Sprintf("tools: Add %d development tools and scripts", n)
	case category.MediaAssets:
		return fmt.Sprintf("assets: Add %d media %s and static assets", n, word)
	case category.BuildArtifacts:
		return fmt.Sprintf("build: Add %d build %s", n, artifactWord(n))
	default:
		return fmt.Sprintf("add: Add %d miscellaneous %s", n, word)
	}
}

func anyPathContains(files []category.CategorizedFile, sub string) bool {
	for _, f := range files {
		if strings.Contains(f.Path, sub) {
			return true
		}
	}
	return false
}

// sharedLanguage reports the language name when every file in the phase has
// the same recognized language extension.
func sharedLanguage(files []category.CategorizedFile) (string, bool) {
	shared := ""
	for _, f := range files {
		lang := languageOf(f.Path)
		if lang == "" {
			return "", false
		}
		if shared == "" {
			shared = lang
		} else if shared != lang {
			return "", false
		}
	}
	return shared, shared != ""
}

func languageOf(path string) string {
	switch {
	case strings.HasSuffix(path, ".rs"):
		return "Rust"
	case strings.HasSuffix(path, ".js"), strings.HasSuffix(path, ".ts"):
		return "JavaScript/TypeScript"
	case strings.HasSuffix(path, ".py"):
		return "Python"
	case strings.HasSuffix(path, ".go"):
		return "Go"
	default:
		return ""
	}
}

func fileWord(n int) string {
	if n == 1 {
		return "file"
	}
	return "files"
}

func artifactWord(n int) string {
	if n == 1 {
		return "artifact"
	}
	return "artifacts"
}
