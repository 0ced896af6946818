package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/agentic-research/stencil/internal/ai"
	"github.com/agentic-research/stencil/internal/scaffold"
	"github.com/agentic-research/stencil/internal/structure"
)

var (
	projectName string
	outputDir   string
	zipPath     string
	noAI        bool
)

func init() {
	generateCmd.Flags().StringVarP(&projectName, "name", "n", "", "Project name (default generated_project)")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", ".", "Directory to generate the project under")
	generateCmd.Flags().StringVar(&zipPath, "zip", "", "Also write the project as a zip archive at this path")
	generateCmd.Flags().BoolVar(&noAI, "no-ai", false, "Disable API-backed content generation")
}

var generateCmd = &cobra.Command{
	Use:   "generate [structure.json]",
	Short: "Generate a project from a JSON structure description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cfgPath)
		if err != nil {
			return err
		}

		// 1. Load the structure description
		tree, err := structure.Load(args[0])
		if err != nil {
			return err
		}

		out := outputDir
		if out == "." && cfg.Output != "" {
			out = cfg.Output
		}

		// 2. Set up the optional content generator
		var gen scaffold.ContentGenerator
		if !noAI {
			g, err := ai.NewGenerator(ai.Config{Model: cfg.Model})
			if err != nil {
				fmt.Printf("Content generation disabled (%v); unknown file types get stub content.\n", err)
			} else {
				gen = g
			}
		}

		// 3. Generate the project tree
		if err := os.MkdirAll(out, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
		fsys := osfs.New(out)

		start := time.Now()
		result, err := scaffold.New(fsys, gen).Generate(cmd.Context(), tree, projectName)
		if err != nil {
			return err
		}

		// 4. Optional zip archive
		if zipPath != "" {
			f, err := os.Create(zipPath)
			if err != nil {
				return fmt.Errorf("create archive: %w", err)
			}
			if err := scaffold.Archive(fsys, result.ProjectDir, f); err != nil {
				f.Close()
				return fmt.Errorf("write archive: %w", err)
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close archive: %w", err)
			}
		}

		// 5. Summary
		printDecision(result.Decision)
		fmt.Printf("\nGenerated %d files under %s in %s.\n",
			len(result.Files), filepath.Join(out, result.ProjectDir), time.Since(start).Round(time.Millisecond))
		if zipPath != "" {
			fmt.Printf("Archive written to %s.\n", zipPath)
		}
		return nil
	},
}
