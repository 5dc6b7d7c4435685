// Package site builds a static presentation site: every deck document in
// a directory becomes one standalone HTML page, plus an index page
// linking them all.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/ziadkadry99/deckview/internal/deck"
	"github.com/ziadkadry99/deckview/internal/progress"
	"github.com/ziadkadry99/deckview/internal/render"
)

// Generator converts deck documents into a static HTML site.
type Generator struct {
	DecksDir  string
	OutputDir string
	Theme     string
	Include   []string
	Exclude   []string
}

// NewGenerator creates a Generator with the given directories and theme.
func NewGenerator(decksDir, outputDir, theme string) *Generator {
	return &Generator{
		DecksDir:  decksDir,
		OutputDir: outputDir,
		Theme:     theme,
	}
}

// deckEntry is one generated page, used for the index listing.
type deckEntry struct {
	Title string
	Href  string
	Count int
}

// Generate builds the full static site. Returns the number of deck pages
// generated.
func (g *Generator) Generate(reporter progress.Reporter) (int, error) {
	paths, err := g.collectDeckPaths()
	if err != nil {
		return 0, err
	}
	if len(paths) == 0 {
		return 0, fmt.Errorf("no deck documents found in %s", g.DecksDir)
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, err
	}

	// Write static assets.
	if err := os.WriteFile(filepath.Join(g.OutputDir, "style.css"), []byte(cssContent), 0o644); err != nil {
		return 0, err
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, "viewer.js"), []byte(jsContent), 0o644); err != nil {
		return 0, err
	}

	pageTmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}

	if reporter != nil {
		reporter.Start(len(paths))
	}

	var entries []deckEntry
	for i, relPath := range paths {
		entry, err := g.renderDeckPage(pageTmpl, relPath)
		if err != nil {
			return 0, fmt.Errorf("rendering %s: %w", relPath, err)
		}
		entries = append(entries, entry)
		if reporter != nil {
			reporter.Update(i+1, relPath)
		}
	}
	if reporter != nil {
		reporter.Finish()
	}

	if err := g.writeIndex(entries); err != nil {
		return 0, fmt.Errorf("writing index: %w", err)
	}

	return len(paths), nil
}

// collectDeckPaths walks the decks directory and returns the relative
// paths matching the include globs and not matching the exclude globs.
func (g *Generator) collectDeckPaths() ([]string, error) {
	include := g.Include
	if len(include) == 0 {
		include = []string{"**/*.json", "**/*.yml", "**/*.yaml"}
	}

	var paths []string
	err := filepath.Walk(g.DecksDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(g.DecksDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if !matchesAny(rel, include) || matchesAny(rel, g.Exclude) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking decks dir: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// matchesAny checks if relPath matches any of the given glob patterns.
// It uses doublestar for ** support.
func matchesAny(relPath string, patterns []string) bool {
	for _, p := range patterns {
		if ok, err := doublestar.Match(p, relPath); err == nil && ok {
			return true
		}
	}
	return false
}

// renderDeckPage converts one deck document into an HTML page.
func (g *Generator) renderDeckPage(tmpl *template.Template, relPath string) (deckEntry, error) {
	srcPath := filepath.Join(g.DecksDir, filepath.FromSlash(relPath))

	d, err := deck.LoadFile(srcPath)
	if err != nil {
		return deckEntry{}, err
	}

	nodes := render.Deck(d, render.Options{})
	deckHTML := render.HTML(nodes)

	htmlRelPath := deckPathToHTML(relPath)
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(htmlRelPath))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return deckEntry{}, err
	}

	// Compute base path for CSS/JS references from nested pages.
	depth := strings.Count(htmlRelPath, "/")
	basePath := strings.Repeat("../", depth)

	title := deckTitle(d, relPath)

	data := pageData{
		Title:      title,
		Theme:      g.Theme,
		DeckHTML:   template.HTML(deckHTML),
		SlideCount: len(nodes),
		BasePath:   basePath,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return deckEntry{}, err
	}
	if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
		return deckEntry{}, err
	}

	return deckEntry{Title: title, Href: htmlRelPath, Count: len(d.Slides)}, nil
}

// writeIndex emits the landing page listing every generated deck.
func (g *Generator) writeIndex(entries []deckEntry) error {
	tmpl, err := template.New("index").Parse(indexTemplate)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, indexData{Theme: g.Theme, Decks: entries}); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(g.OutputDir, "index.html"), buf.Bytes(), 0o644)
}

// deckTitle pulls the deck's meta title, falling back to the file name.
func deckTitle(d *deck.Deck, relPath string) string {
	if t, ok := d.Meta["title"].(string); ok && t != "" {
		return t
	}
	base := filepath.Base(relPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// deckPathToHTML maps a deck document path to its output page path.
func deckPathToHTML(relPath string) string {
	ext := filepath.Ext(relPath)
	switch strings.ToLower(ext) {
	case ".json", ".yml", ".yaml":
		return strings.TrimSuffix(relPath, ext) + ".html"
	}
	return relPath + ".html"
}
