package category

import (
	"strings"
	"testing"
)

func TestGenerateCommitPlan_PartitionsFiles(t *testing.T) {
	c := NewCategorizer()
	paths := []string{"package.json", "README.md", "src/main.rs", "src/lib.rs", "target/app"}

	analysis := c.AnalyzeFiles(paths)
	phases := c.GenerateCommitPlan(analysis)

	seen := make(map[string]int)
	for _, phase := range phases {
		for _, f := range phase.Files {
			seen[f.Path]++
		}
	}
	for _, path := range paths {
		if seen[path] != 1 {
			t.Errorf("path %q appears %d times across phases, want exactly 1", path, seen[path])
		}
	}
}

func TestGenerateCommitPlan_ContiguousNumbering(t *testing.T) {
	c := NewCategorizer()
	analysis := c.AnalyzeFiles([]string{"a.json", "b.md", "c.rs", "target/d"})

	phases := c.GenerateCommitPlan(analysis)
	for i, phase := range phases {
		if phase.PhaseNumber != i+1 {
			t.Errorf("phase at index %d numbered %d, want %d", i, phase.PhaseNumber, i+1)
		}
	}
}

func TestGenerateCommitPlan_NoMixedCategories(t *testing.T) {
	c := NewCategorizer()
	analysis := c.AnalyzeFiles([]string{"a.json", "b.json", "x.md", "y.rs", "z.rs", "target/o"})

	for _, phase := range c.GenerateCommitPlan(analysis) {
		for _, f := range phase.Files {
			if f.Category != phase.Category {
				t.Errorf("phase %d (%v) contains file %q of category %v",
					phase.PhaseNumber, phase.Category, f.Path, f.Category)
			}
		}
	}
}

func TestGenerateCommitPlan_SplitsOnSizeLimit(t *testing.T) {
	c := NewCategorizer()

	// Lock files estimate at 500 each; four of them exceed MaxPhaseSize.
	analysis := c.AnalyzeFiles([]string{"a.lock", "b.lock", "c.lock", "d.lock"})
	phases := c.GenerateCommitPlan(analysis)

	if len(phases) < 2 {
		t.Fatalf("expected size split into multiple phases, got %d", len(phases))
	}
	for _, phase := range phases {
		if phase.EstimatedSize > MaxPhaseSize {
			t.Errorf("phase %d size %d exceeds limit %d", phase.PhaseNumber, phase.EstimatedSize, MaxPhaseSize)
		}
	}
}

func TestGenerateCommitPlan_BuildArtifactsLast(t *testing.T) {
	c := NewCategorizer()
	analysis := c.AnalyzeFiles([]string{"package.json", "src/main.rs", "target/app"})

	phases := c.GenerateCommitPlan(analysis)
	if len(phases) != 3 {
		t.Fatalf("expected 3 phases, got %d", len(phases))
	}
	if phases[0].Category != Configuration {
		t.Errorf("phase 1 = %v, want Configuration", phases[0].Category)
	}
	if phases[1].Category != SourceCode {
		t.Errorf("phase 2 = %v, want SourceCode", phases[1].Category)
	}
	if phases[2].Category != BuildArtifacts {
		t.Errorf("phase 3 = %v, want BuildArtifacts", phases[2].Category)
	}
}

func TestGenerateCommitPlan_DocumentationMessage(t *testing.T) {
	c := NewCategorizer()
	analysis := c.AnalyzeFiles([]string{"README.md", "notes.txt"})

	phases := c.GenerateCommitPlan(analysis)
	if len(phases) != 1 {
		t.Fatalf("expected single documentation phase, got %d", len(phases))
	}
	if !strings.HasPrefix(phases[0].CommitMessage, "docs:") {
		t.Errorf("message %q should have docs: prefix", phases[0].CommitMessage)
	}
	if !strings.Contains(phases[0].CommitMessage, "2 documentation files") {
		t.Errorf("message %q should mention file count", phases[0].CommitMessage)
	}
}

func TestGenerateCommitPlan_SingularFileWording(t *testing.T) {
	c := NewCategorizer()
	analysis := c.AnalyzeFiles([]string{"README.md"})

	phases := c.GenerateCommitPlan(analysis)
	if len(phases) != 1 {
		t.Fatalf("expected 1 phase, got %d", len(phases))
	}
	if !strings.Contains(phases[0].CommitMessage, "1 documentation file ") {
		t.Errorf("message %q should use singular wording", phases[0].CommitMessage)
	}
}

func TestGenerateCommitPlan_Empty(t *testing.T) {
	c := NewCategorizer()
	phases := c.GenerateCommitPlan(c.AnalyzeFiles(nil))
	if len(phases) != 0 {
		t.Errorf("empty analysis should yield no phases, got %d", len(phases))
	}
}
