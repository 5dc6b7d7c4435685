package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestFullSiteGeneration(t *testing.T) {
	decksDir := t.TempDir()
	outputDir := t.TempDir()

	writeTestFile(t, filepath.Join(decksDir, "launch.json"), `{
		"meta": {"title": "Product Launch"},
		"slides": [
			{"layout": "hero", "title": "Welcome", "badge": "2026"},
			{"layout": "content", "title": "Plan", "points": ["one", "two"], "notes": "Mention **pricing**."}
		]
	}`)
	writeTestFile(t, filepath.Join(decksDir, "quarterly", "q3.yaml"),
		"meta:\n  title: Q3 Review\nslides:\n  - layout: stats\n    title: Numbers\n    stats:\n      - value: \"42%\"\n        label: growth\n")

	gen := NewGenerator(decksDir, outputDir, "dark")
	pageCount, err := gen.Generate(nil)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if pageCount != 2 {
		t.Errorf("pageCount = %d, want 2", pageCount)
	}

	expectedFiles := []string{
		"index.html",
		"style.css",
		"viewer.js",
		"launch.html",
		"quarterly/q3.html",
	}
	for _, f := range expectedFiles {
		path := filepath.Join(outputDir, filepath.FromSlash(f))
		if _, err := os.Stat(path); os.IsNotExist(err) {
			t.Errorf("expected file %s does not exist", f)
		}
	}

	launchHTML, err := os.ReadFile(filepath.Join(outputDir, "launch.html"))
	if err != nil {
		t.Fatalf("reading launch.html: %v", err)
	}
	launchStr := string(launchHTML)

	if !strings.Contains(launchStr, "Product Launch") {
		t.Error("launch.html should carry the deck title")
	}
	if !strings.Contains(launchStr, `data-theme="dark"`) {
		t.Error("launch.html should carry the configured theme")
	}
	if !strings.Contains(launchStr, `data-slide-index="1"`) {
		t.Error("launch.html should contain rendered slides")
	}
	if !strings.Contains(launchStr, "<strong>pricing</strong>") {
		t.Error("notes should be rendered as markdown in the static site")
	}
	if strings.Contains(launchStr, "data-field") {
		t.Error("static pages must not carry edit annotations")
	}
	if !strings.Contains(launchStr, "viewer.js") {
		t.Error("launch.html should reference the viewer script")
	}

	// Nested page references assets through the base path.
	q3HTML, err := os.ReadFile(filepath.Join(outputDir, "quarterly", "q3.html"))
	if err != nil {
		t.Fatalf("reading quarterly/q3.html: %v", err)
	}
	if !strings.Contains(string(q3HTML), "../style.css") {
		t.Error("nested page should reference ../style.css")
	}

	indexHTML, err := os.ReadFile(filepath.Join(outputDir, "index.html"))
	if err != nil {
		t.Fatalf("reading index.html: %v", err)
	}
	indexStr := string(indexHTML)
	if !strings.Contains(indexStr, "Product Launch") || !strings.Contains(indexStr, "Q3 Review") {
		t.Error("index should list both decks by title")
	}
	if !strings.Contains(indexStr, `href="quarterly/q3.html"`) {
		t.Error("index should link nested deck pages")
	}
}

func TestGenerateNoDecks(t *testing.T) {
	gen := NewGenerator(t.TempDir(), t.TempDir(), "light")
	_, err := gen.Generate(nil)
	if err == nil {
		t.Fatal("Generate should fail with no deck documents")
	}
	if !strings.Contains(err.Error(), "no deck documents") {
		t.Errorf("error = %q, want it to mention missing decks", err.Error())
	}
}

func TestGenerateRespectsExcludes(t *testing.T) {
	decksDir := t.TempDir()
	outputDir := t.TempDir()

	writeTestFile(t, filepath.Join(decksDir, "keep.json"), `{"slides": []}`)
	writeTestFile(t, filepath.Join(decksDir, "drafts", "skip.json"), `{"slides": []}`)

	gen := NewGenerator(decksDir, outputDir, "")
	gen.Exclude = []string{"drafts/**"}

	pageCount, err := gen.Generate(nil)
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if pageCount != 1 {
		t.Errorf("pageCount = %d, want 1", pageCount)
	}
	if _, err := os.Stat(filepath.Join(outputDir, "drafts", "skip.html")); !os.IsNotExist(err) {
		t.Error("excluded deck should not be rendered")
	}
}

func TestEmptyDeckRendersPlaceholderPage(t *testing.T) {
	decksDir := t.TempDir()
	outputDir := t.TempDir()
	writeTestFile(t, filepath.Join(decksDir, "empty.json"), `{"slides": []}`)

	gen := NewGenerator(decksDir, outputDir, "")
	if _, err := gen.Generate(nil); err != nil {
		t.Fatalf("Generate error: %v", err)
	}

	html, err := os.ReadFile(filepath.Join(outputDir, "empty.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(html), "slide-placeholder") {
		t.Error("empty deck should render the placeholder slide")
	}
}

func TestDeckPathToHTML(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"launch.json", "launch.html"},
		{"a/b.yaml", "a/b.html"},
		{"c.yml", "c.html"},
		{"noext", "noext.html"},
	}
	for _, tt := range tests {
		if got := deckPathToHTML(tt.input); got != tt.want {
			t.Errorf("deckPathToHTML(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRenderPageEditFlag(t *testing.T) {
	html, err := RenderPage("Live", "midnight", "<section class=\"slide\"></section>", 1, true)
	if err != nil {
		t.Fatalf("RenderPage error: %v", err)
	}
	if !strings.Contains(html, `data-edit="true"`) {
		t.Error("edit mode page should carry the data-edit flag")
	}
	if !strings.Contains(html, `data-theme="midnight"`) {
		t.Error("page should carry the theme")
	}
}
