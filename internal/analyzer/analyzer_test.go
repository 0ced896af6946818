package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeEmpty(t *testing.T) {
	result, err := Analyze(map[string]any{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalFiles)
	assert.Equal(t, 0, result.Directories)
	assert.Empty(t, result.Languages)
	assert.False(t, result.HasMicroservices)
	assert.False(t, result.HasMultipleApps)
	assert.Empty(t, result.Indicators)
	assert.Equal(t, 0.0, result.ComplexityScore)
}

func TestAnalyzeLanguageDetection(t *testing.T) {
	result, err := Analyze(map[string]any{
		"src": []any{"a.py", "b.go", "c.py"},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalFiles)
	assert.Equal(t, []string{"Go", "Python"}, result.LanguageList())
}

func TestAnalyzeMicroserviceIndicator(t *testing.T) {
	result, err := Analyze(map[string]any{
		"auth-service": map[string]any{
			"src": []any{"main.py"},
		},
	})
	require.NoError(t, err)

	assert.True(t, result.HasMicroservices)
	assert.Contains(t, result.IndicatorStrings(), "Microservice: auth-service")
}

func TestAnalyzeNameMayTriggerBothVocabularies(t *testing.T) {
	// "api" hits the service vocabulary, "app" the application one.
	result, err := Analyze(map[string]any{
		"api-app": map[string]any{},
	})
	require.NoError(t, err)

	assert.True(t, result.HasMicroservices)
	assert.True(t, result.HasMultipleApps)
	assert.Equal(t, []string{"Microservice: api-app", "Application: api-app"}, result.IndicatorStrings())
}

func TestAnalyzeSpecialFiles(t *testing.T) {
	result, err := Analyze(map[string]any{
		"deploy": []any{"docker-compose.yml", "Dockerfile", "kubernetes.yaml"},
		"root":   []any{"package.json", "requirements.txt", "pom.xml", "build.gradle"},
	})
	require.NoError(t, err)

	assert.Equal(t, 7, result.TotalFiles)
	got := result.IndicatorStrings()
	assert.Contains(t, got, "Technology: Docker Compose")
	assert.Contains(t, got, "Technology: Docker")
	assert.Contains(t, got, "Technology: Kubernetes")
	assert.Contains(t, got, "Technology: Node.js")
	assert.Contains(t, got, "Technology: Python")
	assert.Contains(t, got, "Technology: Maven")
	assert.Contains(t, got, "Technology: Gradle")
}

func TestAnalyzeNestedNodesInFileLists(t *testing.T) {
	// A file list may mix filenames with nested nodes; the nested node's own
	// directory-valued keys count, the wrapper entry itself does not.
	result, err := Analyze(map[string]any{
		"src": []any{
			"index.ts",
			map[string]any{
				"components": []any{"Button.tsx", "Header.tsx"},
			},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, result.TotalFiles)
	assert.Equal(t, 0, result.Directories)
	assert.Equal(t, []string{"React/TypeScript", "TypeScript"}, result.LanguageList())
}

func TestAnalyzeSkipsMalformedEntries(t *testing.T) {
	result, err := Analyze(map[string]any{
		"src":       []any{"main.py", int64(42), true, nil},
		"README.md": "",
		"LICENSE":   nil,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.TotalFiles)
	assert.Equal(t, 0, result.Directories)
	assert.Equal(t, []string{"Python"}, result.LanguageList())
}

func TestAnalyzeComplexityScore(t *testing.T) {
	// 20 files, 3 directories, 2 languages, microservices, no apps:
	// 20*0.1 + 3*0.5 + 2*2 + 10 = 17.5
	files := make([]any, 0, 20)
	for i := 0; i < 10; i++ {
		files = append(files, "a.py")
	}
	for i := 0; i < 10; i++ {
		files = append(files, "b.go")
	}
	result, err := Analyze(map[string]any{
		"auth-service": map[string]any{
			"internal": map[string]any{
				"handlers": map[string]any{},
			},
		},
		"src": files,
	})
	require.NoError(t, err)

	assert.Equal(t, 20, result.TotalFiles)
	assert.Equal(t, 3, result.Directories)
	assert.True(t, result.HasMicroservices)
	assert.False(t, result.HasMultipleApps)
	assert.InDelta(t, 17.5, result.ComplexityScore, 1e-9)
}

func TestAnalyzeDeterminism(t *testing.T) {
	tree := map[string]any{
		"frontend": map[string]any{"src": []any{"App.jsx", "index.html"}},
		"backend":  map[string]any{"src": []any{"server.go"}},
		"mobile":   map[string]any{"app": []any{"main.dart"}},
	}

	first, err := Analyze(tree)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := Analyze(tree)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAnalyzeDepthGuard(t *testing.T) {
	// Build a chain deeper than the walk allows.
	root := map[string]any{}
	node := root
	for i := 0; i < maxDepth+2; i++ {
		child := map[string]any{}
		node["d"] = child
		node = child
	}

	_, err := Analyze(root)
	assert.ErrorIs(t, err, ErrTooDeep)
}

func TestLooksOpenSource(t *testing.T) {
	t.Run("matches rendered tag", func(t *testing.T) {
		r := &AnalysisResult{Indicators: []Indicator{{IndicatorMicroservice, "openapi-gateway"}}}
		assert.True(t, r.LooksOpenSource())
	})

	t.Run("no match", func(t *testing.T) {
		r := &AnalysisResult{Indicators: []Indicator{{IndicatorTechnology, "Docker"}}}
		assert.False(t, r.LooksOpenSource())
	})
}
