// Package analyzer walks a project description tree and accumulates the
// structural signals the workflow classifier decides on.
package analyzer

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
)

// maxDepth bounds the recursive walk so adversarially nested input fails
// cleanly instead of exhausting the stack.
const maxDepth = 10000

// ErrTooDeep reports input nested beyond maxDepth levels.
var ErrTooDeep = errors.New("analyzer: structure nested too deep")

// AnalysisResult is accumulated during one traversal and immutable once
// returned.
type AnalysisResult struct {
	TotalFiles       int
	Directories      int
	Languages        map[string]struct{}
	HasMicroservices bool
	HasMultipleApps  bool
	Indicators       []Indicator

	// ComplexityScore is derived from the final counts exactly once, after
	// the traversal completes.
	ComplexityScore float64
}

// LanguageList returns the detected languages sorted for stable display.
func (r *AnalysisResult) LanguageList() []string {
	langs := make([]string, 0, len(r.Languages))
	for l := range r.Languages {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// IndicatorStrings renders all indicators in discovery order.
func (r *AnalysisResult) IndicatorStrings() []string {
	out := make([]string, len(r.Indicators))
	for i, ind := range r.Indicators {
		out[i] = ind.String()
	}
	return out
}

// HasLanguage reports whether the given language label was detected.
func (r *AnalysisResult) HasLanguage(lang string) bool {
	_, ok := r.Languages[lang]
	return ok
}

// LooksOpenSource reports whether any indicator's rendered form contains
// "open". The classifier keys its forking-workflow rule on this; matching
// against the rendered tag rather than the raw name is deliberate legacy
// behavior.
func (r *AnalysisResult) LooksOpenSource() bool {
	for _, ind := range r.Indicators {
		if strings.Contains(strings.ToLower(ind.String()), "open") {
			return true
		}
	}
	return false
}

// Analyze performs a single depth-first walk over the tree and returns the
// accumulated analysis. An empty tree is a valid zero-content project.
//
// Entries with unexpected shapes (numbers in file lists, string-valued keys,
// and so on) are skipped silently; the only hard failure is nesting beyond
// maxDepth.
func Analyze(root map[string]any) (*AnalysisResult, error) {
	result := &AnalysisResult{Languages: make(map[string]struct{})}
	if err := walk(root, result, 0); err != nil {
		return nil, err
	}
	result.ComplexityScore = score(result)
	return result, nil
}

// score implements the fixed complexity heuristic. The weights and their
// order are load-bearing for the classifier thresholds.
func score(r *AnalysisResult) float64 {
	s := float64(r.TotalFiles)*0.1 +
		float64(r.Directories)*0.5 +
		float64(len(r.Languages))*2
	if r.HasMicroservices {
		s += 10
	}
	if r.HasMultipleApps {
		s += 5
	}
	return s
}

// walk visits the children of one directory node. JSON objects carry no
// order, so keys are visited sorted to keep indicator discovery order
// deterministic across runs.
func walk(node map[string]any, result *AnalysisResult, depth int) error {
	if depth > maxDepth {
		return ErrTooDeep
	}

	keys := make([]string, 0, len(node))
	for k := range node {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		switch child := node[key].(type) {
		case map[string]any:
			result.Directories++
			checkDirName(key, result)
			if err := walk(child, result, depth+1); err != nil {
				return err
			}
		case []any:
			for _, item := range child {
				switch entry := item.(type) {
				case string:
					result.TotalFiles++
					analyzeFile(entry, result)
				case map[string]any:
					if err := walk(entry, result, depth+1); err != nil {
						return err
					}
				}
				// Anything else in a file list is skipped.
			}
		}
		// Leaf files (string or null values) carry no structure to analyze.
	}
	return nil
}

// checkDirName tests a directory name against both vocabularies. The checks
// are independent; a single name may set both signals.
func checkDirName(name string, result *AnalysisResult) {
	lower := strings.ToLower(name)
	for _, v := range serviceVocab {
		if strings.Contains(lower, v) {
			result.HasMicroservices = true
			result.Indicators = append(result.Indicators, Indicator{IndicatorMicroservice, name})
			break
		}
	}
	for _, v := range appVocab {
		if strings.Contains(lower, v) {
			result.HasMultipleApps = true
			result.Indicators = append(result.Indicators, Indicator{IndicatorApplication, name})
			break
		}
	}
}

// analyzeFile records the language for a filename's extension and any
// technology tags its name matches.
func analyzeFile(filename string, result *AnalysisResult) {
	ext := strings.ToLower(filepath.Ext(filename))
	if lang, ok := languageByExt[ext]; ok {
		result.Languages[lang] = struct{}{}
	}

	lower := strings.ToLower(filename)
	for _, sf := range specialFiles {
		if strings.Contains(lower, sf.match) {
			result.Indicators = append(result.Indicators, Indicator{IndicatorTechnology, sf.tech})
		}
	}
}
