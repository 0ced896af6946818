package cmd

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/agentic-research/stencil/internal/workflow"
)

// maxIndicatorLines caps the indicator listing so huge trees stay readable.
const maxIndicatorLines = 10

func printDecision(dec workflow.Decision) {
	header := color.New(color.FgCyan, color.Bold)
	label := color.New(color.Bold)

	header.Println("Project analysis")
	a := dec.Analysis
	fmt.Printf("  %s %d\n", label.Sprint("Files:"), a.TotalFiles)
	fmt.Printf("  %s %d\n", label.Sprint("Directories:"), a.Directories)
	if langs := a.LanguageList(); len(langs) > 0 {
		fmt.Printf("  %s %s\n", label.Sprint("Languages:"), strings.Join(langs, ", "))
	}
	fmt.Printf("  %s %.1f\n", label.Sprint("Complexity score:"), a.ComplexityScore)

	if indicators := a.IndicatorStrings(); len(indicators) > 0 {
		fmt.Printf("  %s\n", label.Sprint("Indicators:"))
		for i, ind := range indicators {
			if i == maxIndicatorLines {
				fmt.Printf("    ... and %d more\n", len(indicators)-maxIndicatorLines)
				break
			}
			fmt.Printf("    %s\n", ind)
		}
	}

	fmt.Printf("\n  %s %s\n", label.Sprint("Recommended workflow:"), color.GreenString(dec.Name))
}
