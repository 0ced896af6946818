// Package scaffold materializes a project description tree as directories
// and files, filling each file with generated content.
package scaffold

import (
	"context"
	"fmt"
	"sort"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/agentic-research/stencil/internal/analyzer"
	"github.com/agentic-research/stencil/internal/boilerplate"
	"github.com/agentic-research/stencil/internal/workflow"
)

// ContentGenerator produces content for file types no built-in template
// covers. Implementations may call external services.
type ContentGenerator interface {
	GenerateFileContent(ctx context.Context, filename, relPath string, pctx *boilerplate.Context) (string, error)
}

// Scaffolder writes generated projects onto a filesystem.
type Scaffolder struct {
	fs  billy.Filesystem
	gen ContentGenerator // optional; nil falls back to stub content
}

// New creates a Scaffolder targeting the given filesystem.
func New(fs billy.Filesystem, gen ContentGenerator) *Scaffolder {
	return &Scaffolder{fs: fs, gen: gen}
}

// Result describes one completed generation.
type Result struct {
	ProjectDir string
	Decision   workflow.Decision
	Files      []string // paths written, relative to ProjectDir
}

// Generate analyzes the tree, classifies its workflow, and materializes the
// project under a directory named after the project. The input tree is only
// read, never mutated.
func (s *Scaffolder) Generate(ctx context.Context, tree map[string]any, projectName string) (*Result, error) {
	if len(tree) == 0 {
		return nil, fmt.Errorf("project structure is empty")
	}

	analysis, err := analyzer.Analyze(tree)
	if err != nil {
		return nil, fmt.Errorf("analyze structure: %w", err)
	}
	decision := workflow.Classify(analysis)

	if projectName == "" {
		projectName = "generated_project"
	}
	pctx := &boilerplate.Context{
		ProjectName: projectName,
		Workflow:    decision.Workflow,
		Languages:   analysis.LanguageList(),
		Indicators:  analysis.IndicatorStrings(),
	}

	result := &Result{ProjectDir: projectName, Decision: decision}

	if err := s.fs.MkdirAll(projectName, 0o755); err != nil {
		return nil, fmt.Errorf("create project dir: %w", err)
	}
	if err := s.createTree(ctx, tree, projectName, "", pctx, result); err != nil {
		return nil, err
	}
	if err := s.writeExtras(projectName, pctx, result); err != nil {
		return nil, err
	}

	sort.Strings(result.Files)
	return result, nil
}

// createTree mirrors the analyzer's walk: object values are directories,
// array values are file lists (strings) mixed with nested nodes, string
// values are leaf files. Other shapes are skipped. Keys are visited sorted
// so output order is deterministic.
func (s *Scaffolder) createTree(ctx context.Context, node map[string]any, base, rel string, pctx *boilerplate.Context, result *Result) error {
	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fullPath := s.fs.Join(base, key)
		relPath := key
		if rel != "" {
			relPath = rel + "/" + key
		}

		switch child := node[key].(type) {
		case map[string]any:
			if err := s.fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("create dir %s: %w", relPath, err)
			}
			if err := s.createTree(ctx, child, fullPath, relPath, pctx, result); err != nil {
				return err
			}
		case []any:
			if err := s.fs.MkdirAll(fullPath, 0o755); err != nil {
				return fmt.Errorf("create dir %s: %w", relPath, err)
			}
			for _, item := range child {
				switch entry := item.(type) {
				case string:
					if err := s.writeFile(ctx, fullPath, relPath, entry, pctx, result); err != nil {
						return err
					}
				case map[string]any:
					// Nested node in a file list: its children land in the
					// list's directory.
					if err := s.createTree(ctx, entry, fullPath, relPath, pctx, result); err != nil {
						return err
					}
				}
			}
		case string:
			if err := s.writeFile(ctx, base, rel, key, pctx, result); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Scaffolder) writeFile(ctx context.Context, dir, relDir, filename string, pctx *boilerplate.Context, result *Result) error {
	relPath := filename
	if relDir != "" {
		relPath = relDir + "/" + filename
	}

	content := s.fileContent(ctx, filename, relPath, pctx)
	if err := util.WriteFile(s.fs, s.fs.Join(dir, filename), []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", relPath, err)
	}
	result.Files = append(result.Files, relPath)
	return nil
}

// fileContent picks a content source for one file: built-in templates
// first, then the external generator, then the generic stub. Externally
// generated source must survive a syntax check before it is written.
func (s *Scaffolder) fileContent(ctx context.Context, filename, relPath string, pctx *boilerplate.Context) string {
	if content, ok := boilerplate.Generate(filename, relPath, pctx); ok {
		return content
	}

	if s.gen != nil {
		content, err := s.gen.GenerateFileContent(ctx, filename, relPath, pctx)
		if err == nil && boilerplate.ValidateSyntax([]byte(content), filename) == nil {
			return content
		}
		if err != nil {
			fmt.Printf("content generation failed for %s, using stub: %v\n", relPath, err)
		}
	}

	return boilerplate.Stub(filename)
}

// writeExtras adds the standard project files the tree did not already
// create.
func (s *Scaffolder) writeExtras(projectDir string, pctx *boilerplate.Context, result *Result) error {
	extras := []struct {
		name    string
		content func(*boilerplate.Context) string
	}{
		{"README.md", boilerplate.README},
		{".gitignore", boilerplate.Gitignore},
		{"LICENSE", boilerplate.License},
		{"CONTRIBUTING.md", boilerplate.Contributing},
	}

	for _, extra := range extras {
		path := s.fs.Join(projectDir, extra.name)
		if _, err := s.fs.Stat(path); err == nil {
			continue // already created by the tree
		}
		if err := util.WriteFile(s.fs, path, []byte(extra.content(pctx)), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", extra.name, err)
		}
		result.Files = append(result.Files, extra.name)
	}
	return nil
}
