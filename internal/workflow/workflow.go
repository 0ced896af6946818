// Package workflow maps a structure analysis to a Git branching strategy
// recommendation via a fixed decision table.
package workflow

import "github.com/agentic-research/stencil/internal/analyzer"

// Workflow identifies one of the seven branching strategies the classifier
// can recommend.
type Workflow string

const (
	Centralized   Workflow = "centralized"
	FeatureBranch Workflow = "feature_branch"
	Gitflow       Workflow = "gitflow"
	Forking       Workflow = "forking"
	TrunkBased    Workflow = "trunk_based"
	Monorepo      Workflow = "monorepo"
	Multirepo     Workflow = "multirepo"
)

var displayNames = map[Workflow]string{
	Centralized:   "Centralized Workflow",
	FeatureBranch: "Feature Branch Workflow",
	Gitflow:       "Gitflow Workflow",
	Forking:       "Forking Workflow",
	TrunkBased:    "Trunk Based Development",
	Monorepo:      "Monorepo Management",
	Multirepo:     "Multirepo Management",
}

// DisplayName returns the human-readable name for the workflow.
func (w Workflow) DisplayName() string {
	return displayNames[w]
}

// Decision is the classifier output: the chosen workflow and the analysis
// that produced it.
type Decision struct {
	Workflow Workflow
	Name     string
	Analysis *analyzer.AnalysisResult
}

// Classify picks a workflow from the analysis. Pure function; no I/O.
//
// The rules are evaluated top to bottom and the first match wins, so the
// ordering is load-bearing. All threshold comparisons are strict and
// boundary values fall through to the next rule.
func Classify(a *analyzer.AnalysisResult) Decision {
	w := pick(a)
	return Decision{
		Workflow: w,
		Name:     w.DisplayName(),
		Analysis: a,
	}
}

func pick(a *analyzer.AnalysisResult) Workflow {
	switch {
	case a.HasMicroservices && a.ComplexityScore > 20:
		if a.TotalFiles > 50 {
			return Monorepo
		}
		return Multirepo
	case a.ComplexityScore > 30:
		return Gitflow
	case a.HasMultipleApps || a.ComplexityScore > 15:
		return FeatureBranch
	case a.LooksOpenSource():
		return Forking
	case a.ComplexityScore < 5:
		return Centralized
	default:
		return TrunkBased
	}
}
