// Package cmd implements the stencil command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:          "stencil",
	Short:        "Stencil: generate project scaffolding from a JSON structure description",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Path to config file (default .stencil.yaml if present)")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(analyzeCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
