package site

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
)

// Generator exports the profile page as a self-contained static site.
type Generator struct {
	Renderer  *Renderer
	OutputDir string
	// Keyword pre-filters the exported publications table.
	Keyword string
}

// NewGenerator creates a Generator writing into outputDir.
func NewGenerator(r *Renderer, outputDir string) *Generator {
	return &Generator{
		Renderer:  r,
		OutputDir: outputDir,
	}
}

// Generate renders the page and writes it with its static assets. Returns
// the number of files written.
func (g *Generator) Generate() (int, error) {
	// Render first so nothing is written when the page cannot be built.
	var page bytes.Buffer
	if err := g.Renderer.Render(&page, RenderOptions{Keyword: g.Keyword}); err != nil {
		return 0, fmt.Errorf("rendering page: %w", err)
	}

	staticDir := filepath.Join(g.OutputDir, "static")
	if err := os.MkdirAll(staticDir, 0o755); err != nil {
		return 0, err
	}

	files := []struct {
		path string
		data []byte
	}{
		{filepath.Join(g.OutputDir, "index.html"), page.Bytes()},
		{filepath.Join(staticDir, "style.css"), []byte(cssContent)},
		{filepath.Join(staticDir, "script.js"), []byte(jsContent)},
	}
	for _, f := range files {
		if err := os.WriteFile(f.path, f.data, 0o644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", f.path, err)
		}
	}
	return len(files), nil
}

// Stylesheet returns the page stylesheet.
func Stylesheet() []byte { return []byte(cssContent) }

// Script returns the page script.
func Script() []byte { return []byte(jsContent) }
