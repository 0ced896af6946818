// Package ai generates file content for types no built-in template covers,
// using the Anthropic Messages API.
package ai

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/agentic-research/stencil/internal/boilerplate"
)

// DefaultModel is a cost-efficient model; boilerplate generation is a
// simple task that does not need deep reasoning.
const DefaultModel = "claude-3-5-haiku-20241022"

const maxContentTokens = 2000

// Generator produces file content through the Anthropic API.
type Generator struct {
	client *anthropic.Client
	model  string
}

// Config holds generator configuration.
type Config struct {
	APIKey string // if empty, read from ANTHROPIC_API_KEY
	Model  string // if empty, DefaultModel
}

// NewGenerator creates an API-backed content generator. Returns an error
// when no API key is configured; callers then fall back to stub content.
func NewGenerator(cfg Config) (*Generator, error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY not set")
		}
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &Generator{client: &client, model: model}, nil
}

// GenerateFileContent asks the model for boilerplate content for one file.
// Returns only the raw content; markdown code fences are stripped if the
// model adds them.
func (g *Generator) GenerateFileContent(ctx context.Context, filename, relPath string, pctx *boilerplate.Context) (string, error) {
	prompt := buildPrompt(filename, relPath, pctx)

	resp, err := g.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(g.model),
		MaxTokens: maxContentTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic API call failed: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("empty response for %s", filename)
	}

	return stripCodeFence(text), nil
}

func buildPrompt(filename, relPath string, pctx *boilerplate.Context) string {
	ext := strings.ToLower(filepath.Ext(filename))

	var b strings.Builder
	b.WriteString("You are an expert code generator. Generate clean, well-documented boilerplate code.\n\n")
	fmt.Fprintf(&b, "Generate appropriate content for a file named '%s' with extension '%s'.\n", filename, ext)
	fmt.Fprintf(&b, "File path in project: %s\n", relPath)
	fmt.Fprintf(&b, "Project name: %s\n", pctx.ProjectName)
	fmt.Fprintf(&b, "Git workflow: %s\n", pctx.WorkflowName())
	if len(pctx.Languages) > 0 {
		fmt.Fprintf(&b, "Languages in project: %s\n", strings.Join(pctx.Languages, ", "))
	}
	if len(pctx.Indicators) > 0 {
		fmt.Fprintf(&b, "Project indicators: %s\n", strings.Join(pctx.Indicators, ", "))
	}
	b.WriteString(`
Please provide:
1. Appropriate boilerplate code for this file type
2. Meaningful comments and documentation
3. Best practices for the language/framework
4. Template structure that can be easily extended

Return only the code content, no explanations.`)
	return b.String()
}

// stripCodeFence removes a single wrapping markdown code fence, if present.
func stripCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return text
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) < 2 || strings.TrimSpace(lines[len(lines)-1]) != "```" {
		return text
	}
	return strings.Join(lines[1:len(lines)-1], "\n") + "\n"
}
