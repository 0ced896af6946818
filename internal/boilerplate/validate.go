package boilerplate

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/python"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// SyntaxError reports where generated content failed to parse.
type SyntaxError struct {
	Filename string
	Line     uint32 // 0-indexed
	Column   uint32 // 0-indexed
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d:%d: syntax error in generated content", e.Filename, e.Line+1, e.Column+1)
}

// ValidateSyntax parses generated content with tree-sitter and returns an
// error if the AST contains syntax errors. The scaffolder uses this to
// reject broken externally generated content before writing it. Filenames
// with no known grammar pass through without validation.
func ValidateSyntax(content []byte, filename string) error {
	lang := grammarFor(filename)
	if lang == nil {
		return nil
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return fmt.Errorf("parse %s: %w", filename, err)
	}

	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("parse %s: no syntax tree produced", filename)
	}
	if !root.HasError() {
		return nil
	}

	if errNode := firstErrorNode(root); errNode != nil {
		return &SyntaxError{
			Filename: filename,
			Line:     uint32(errNode.StartPoint().Row),
			Column:   uint32(errNode.StartPoint().Column),
		}
	}
	return &SyntaxError{Filename: filename}
}

// firstErrorNode does a depth-first search for the first ERROR or MISSING node.
func firstErrorNode(node *sitter.Node) *sitter.Node {
	if node.IsError() || node.IsMissing() {
		return node
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.HasError() || child.IsError() || child.IsMissing() {
			if found := firstErrorNode(child); found != nil {
				return found
			}
		}
	}
	return nil
}

// grammarFor maps the file types we generate source for to tree-sitter
// grammars. Markup and config formats are not validated.
func grammarFor(filename string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".go":
		return golang.GetLanguage()
	case ".py":
		return python.GetLanguage()
	case ".js", ".jsx":
		return javascript.GetLanguage()
	case ".ts", ".tsx":
		return typescript.GetLanguage()
	default:
		return nil
	}
}
