// Package boilerplate fills generated project files with starter content
// appropriate to their type.
package boilerplate

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/agentic-research/stencil/internal/workflow"
)

// Context carries project-level information into the templates.
type Context struct {
	ProjectName string
	Workflow    workflow.Workflow
	Languages   []string
	Indicators  []string
}

// WorkflowName returns the display name of the recommended workflow.
func (c *Context) WorkflowName() string {
	return c.Workflow.DisplayName()
}

func (c *Context) hasLanguage(lang string) bool {
	for _, l := range c.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// usesNode mirrors the legacy heuristic: JavaScript detected, or a Node.js
// technology indicator recorded.
func (c *Context) usesNode() bool {
	if c.hasLanguage("JavaScript") {
		return true
	}
	for _, ind := range c.Indicators {
		if strings.Contains(ind, "Node.js") {
			return true
		}
	}
	return false
}

// Generate returns starter content for the named file, or ok=false when no
// template covers it and the caller should fall back to another source.
// Special filenames win over extension lookups.
func Generate(filename, relPath string, ctx *Context) (string, bool) {
	lower := strings.ToLower(filename)
	switch {
	case lower == "readme.md":
		return README(ctx), true
	case lower == "requirements.txt":
		return Requirements(ctx), true
	case lower == "package.json":
		return PackageJSON(ctx), true
	case strings.Contains(lower, "dockerfile"):
		return Dockerfile(ctx), true
	case lower == ".gitignore":
		return Gitignore(ctx), true
	}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".py":
		return Python(filename), true
	case ".js":
		return JavaScript(filename), true
	case ".ts":
		return TypeScript(filename), true
	case ".go":
		return GoFile(filename, relPath), true
	case ".html":
		return HTML(filename), true
	case ".css":
		return CSS(filename), true
	case ".md":
		return Markdown(filename), true
	case ".json":
		return JSONFile(filename, ctx), true
	case ".yml", ".yaml":
		return YAML(filename, relPath), true
	}
	return "", false
}

// Stub is the last-resort content for files nothing else could fill.
func Stub(filename string) string {
	return fmt.Sprintf(`# %s
# Generated on %s
# TODO: Implement functionality for %s

# Please implement the required functionality here.
`, filename, time.Now().Format("2006-01-02 15:04:05"), filename)
}

// stem strips the extension from a filename.
func stem(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// titleWords turns "data_processor" or "my-page" into "Data Processor".
func titleWords(s string) string {
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// className turns "data_processor" into "DataProcessor".
func className(s string) string {
	return strings.ReplaceAll(titleWords(s), " ", "")
}

// spokenName turns "data_processor" into "data processor".
func spokenName(s string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(s)
}

func today() string {
	return time.Now().Format("2006-01-02")
}
