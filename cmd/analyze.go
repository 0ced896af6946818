package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/agentic-research/stencil/internal/analyzer"
	"github.com/agentic-research/stencil/internal/structure"
	"github.com/agentic-research/stencil/internal/workflow"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [structure.json]",
	Short: "Analyze a structure description and recommend a Git workflow",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tree, err := structure.Load(args[0])
		if err != nil {
			return err
		}

		analysis, err := analyzer.Analyze(tree)
		if err != nil {
			return err
		}
		dec := workflow.Classify(analysis)

		printDecision(dec)
		fmt.Println()
		color.New(color.FgCyan, color.Bold).Println("Workflow guidance")
		fmt.Println(workflow.Guidance(dec.Workflow))
		return nil
	},
}
