package scaffold

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/stencil/internal/boilerplate"
	"github.com/agentic-research/stencil/internal/workflow"
)

func sampleTree() map[string]any {
	return map[string]any{
		"src": map[string]any{
			"components": []any{"Button.js", "Header.js"},
			"utils":      []any{"helpers.py", "config.py"},
		},
		"tests":        []any{"test_main.py"},
		"docs":         []any{"api.md"},
		"package.json": "",
		"README.md":    "",
	}
}

func TestGenerate(t *testing.T) {
	fs := memfs.New()
	s := New(fs, nil)

	result, err := s.Generate(context.Background(), sampleTree(), "demo-app")
	require.NoError(t, err)

	assert.Equal(t, "demo-app", result.ProjectDir)
	assert.NotEmpty(t, result.Decision.Name)

	for _, path := range []string{
		"demo-app/src/components/Button.js",
		"demo-app/src/utils/helpers.py",
		"demo-app/tests/test_main.py",
		"demo-app/docs/api.md",
		"demo-app/package.json",
		"demo-app/README.md",
		"demo-app/.gitignore",
		"demo-app/LICENSE",
		"demo-app/CONTRIBUTING.md",
	} {
		data, err := util.ReadFile(fs, path)
		require.NoError(t, err, path)
		assert.NotEmpty(t, data, path)
	}

	readme, err := util.ReadFile(fs, "demo-app/README.md")
	require.NoError(t, err)
	assert.Contains(t, string(readme), result.Decision.Name)

	gitignore, err := util.ReadFile(fs, "demo-app/.gitignore")
	require.NoError(t, err)
	assert.Contains(t, string(gitignore), "__pycache__")
}

func TestGenerateEmptyTree(t *testing.T) {
	s := New(memfs.New(), nil)
	_, err := s.Generate(context.Background(), map[string]any{}, "empty")
	assert.Error(t, err)
}

func TestGenerateDefaultProjectName(t *testing.T) {
	fs := memfs.New()
	s := New(fs, nil)

	result, err := s.Generate(context.Background(), map[string]any{"docs": []any{"notes.md"}}, "")
	require.NoError(t, err)
	assert.Equal(t, "generated_project", result.ProjectDir)

	_, err = fs.Stat("generated_project/docs/notes.md")
	assert.NoError(t, err)
}

func TestGenerateNestedNodeInFileList(t *testing.T) {
	fs := memfs.New()
	s := New(fs, nil)

	tree := map[string]any{
		"src": []any{
			"index.ts",
			map[string]any{"components": []any{"App.tsx"}},
		},
	}
	_, err := s.Generate(context.Background(), tree, "web")
	require.NoError(t, err)

	// The nested node's children land inside the list's directory.
	_, err = fs.Stat("web/src/index.ts")
	assert.NoError(t, err)
	_, err = fs.Stat("web/src/components/App.tsx")
	assert.NoError(t, err)
}

func TestGenerateSkipsMalformedEntries(t *testing.T) {
	fs := memfs.New()
	s := New(fs, nil)

	tree := map[string]any{
		"src":     []any{"main.py", int64(7), true},
		"LICENSE": nil,
	}
	result, err := s.Generate(context.Background(), tree, "p")
	require.NoError(t, err)

	assert.Contains(t, result.Files, "src/main.py")
	// The null-valued key is skipped by the tree walk; LICENSE still exists
	// because the extras pass creates it.
	data, err := util.ReadFile(fs, "p/LICENSE")
	require.NoError(t, err)
	assert.Contains(t, string(data), "MIT License")
}

func TestGenerateDoesNotOverwriteTreeProvidedExtras(t *testing.T) {
	fs := memfs.New()
	s := New(fs, nil)

	tree := map[string]any{"README.md": ""}
	result, err := s.Generate(context.Background(), tree, "p")
	require.NoError(t, err)

	var count int
	for _, f := range result.Files {
		if f == "README.md" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

// fixedGenerator returns canned content for every request.
type fixedGenerator struct {
	content string
	err     error
	calls   []string
}

func (g *fixedGenerator) GenerateFileContent(_ context.Context, filename, relPath string, _ *boilerplate.Context) (string, error) {
	g.calls = append(g.calls, relPath)
	return g.content, g.err
}

func TestGenerateUsesContentGeneratorForUnknownTypes(t *testing.T) {
	fs := memfs.New()
	gen := &fixedGenerator{content: "fn main() {}\n"}
	s := New(fs, gen)

	tree := map[string]any{"src": []any{"main.rs", "main.py"}}
	_, err := s.Generate(context.Background(), tree, "p")
	require.NoError(t, err)

	// Only the unknown type goes to the generator; .py has a template.
	assert.Equal(t, []string{"src/main.rs"}, gen.calls)

	data, err := util.ReadFile(fs, "p/src/main.rs")
	require.NoError(t, err)
	assert.Equal(t, "fn main() {}\n", string(data))
}

func TestGenerateFallsBackToStubOnGeneratorError(t *testing.T) {
	fs := memfs.New()
	gen := &fixedGenerator{err: errors.New("api down")}
	s := New(fs, gen)

	tree := map[string]any{"src": []any{"main.rs"}}
	_, err := s.Generate(context.Background(), tree, "p")
	require.NoError(t, err)

	data, err := util.ReadFile(fs, "p/src/main.rs")
	require.NoError(t, err)
	assert.Contains(t, string(data), "TODO: Implement functionality for main.rs")
}

func TestGenerateRejectsInvalidGeneratedSyntax(t *testing.T) {
	fs := memfs.New()
	// .jsx has no built-in template, so the generator is consulted; its
	// output does not parse as JavaScript, so the stub is written instead.
	gen := &fixedGenerator{content: "function broken( {\n"}
	s := New(fs, gen)

	tree := map[string]any{"src": []any{"Widget.jsx"}}
	_, err := s.Generate(context.Background(), tree, "p")
	require.NoError(t, err)

	data, err := util.ReadFile(fs, "p/src/Widget.jsx")
	require.NoError(t, err)
	assert.Contains(t, string(data), "TODO: Implement functionality for Widget.jsx")
}

func TestGenerateClassification(t *testing.T) {
	fs := memfs.New()
	s := New(fs, nil)

	result, err := s.Generate(context.Background(), map[string]any{"docs": []any{"notes.md"}}, "tiny")
	require.NoError(t, err)
	assert.Equal(t, workflow.Centralized, result.Decision.Workflow)
}

func TestArchive(t *testing.T) {
	fs := memfs.New()
	s := New(fs, nil)

	result, err := s.Generate(context.Background(), sampleTree(), "demo-app")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Archive(fs, result.ProjectDir, &buf))

	zr, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range zr.File {
		names[f.Name] = true
	}
	assert.True(t, names["demo-app/README.md"])
	assert.True(t, names["demo-app/src/components/Button.js"])
	assert.True(t, names["demo-app/LICENSE"])
}
