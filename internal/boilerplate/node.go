package boilerplate

import (
	"strings"

	"github.com/ohler55/ojg/oj"
)

// Requirements generates a requirements.txt with sections matched to the
// project's indicators.
func Requirements(ctx *Context) string {
	blob := strings.ToLower(ctx.ProjectName + " " + strings.Join(ctx.Indicators, " "))

	lines := []string{
		"# Core dependencies",
		"requests>=2.31.0",
		"python-dotenv>=1.0.0",
		"",
	}

	if strings.Contains(blob, "flask") {
		lines = append(lines,
			"# Flask web framework",
			"Flask>=3.0.0",
			"Flask-CORS>=4.0.0",
			"")
	}
	if strings.Contains(blob, "django") {
		lines = append(lines,
			"# Django web framework",
			"Django>=4.2.0",
			"djangorestframework>=3.14.0",
			"")
	}
	if strings.Contains(blob, "fastapi") {
		lines = append(lines,
			"# FastAPI framework",
			"fastapi>=0.110.0",
			"uvicorn>=0.29.0",
			"")
	}
	if strings.Contains(blob, "data") || strings.Contains(blob, "analysis") {
		lines = append(lines,
			"# Data analysis",
			"pandas>=2.0.0",
			"numpy>=1.26.0",
			"matplotlib>=3.8.0",
			"")
	}

	lines = append(lines,
		"# Development dependencies",
		"pytest>=8.0.0",
		"black>=24.0.0",
		"flake8>=7.0.0",
		"mypy>=1.8.0",
		"",
		"# TODO: Add your specific dependencies here")

	return strings.Join(lines, "\n") + "\n"
}

// PackageJSON generates a package.json matched to the detected languages.
// React and TypeScript detection adds the corresponding dependencies.
func PackageJSON(ctx *Context) string {
	name := "generated-project"
	if ctx.ProjectName != "" {
		name = strings.ToLower(strings.ReplaceAll(ctx.ProjectName, " ", "-"))
	}

	deps := map[string]any{
		"express": "^4.18.0",
		"dotenv":  "^16.0.0",
	}
	devDeps := map[string]any{
		"nodemon":     "^3.0.0",
		"jest":        "^29.0.0",
		"eslint":      "^8.0.0",
		"prettier":    "^3.0.0",
		"webpack":     "^5.0.0",
		"webpack-cli": "^5.0.0",
	}
	scripts := map[string]any{
		"start":  "node index.js",
		"dev":    "nodemon index.js",
		"test":   "jest",
		"build":  "webpack --mode production",
		"lint":   "eslint .",
		"format": "prettier --write .",
	}

	if ctx.hasLanguage("React") || ctx.hasLanguage("React/TypeScript") {
		deps["react"] = "^18.2.0"
		deps["react-dom"] = "^18.2.0"
		devDeps["@babel/core"] = "^7.24.0"
		devDeps["@babel/preset-react"] = "^7.24.0"
		devDeps["babel-loader"] = "^9.1.0"
	}
	if ctx.hasLanguage("TypeScript") || ctx.hasLanguage("React/TypeScript") {
		devDeps["typescript"] = "^5.4.0"
		devDeps["@types/node"] = "^20.0.0"
		devDeps["ts-node"] = "^10.9.0"
		scripts["build"] = "tsc"
		scripts["start"] = "ts-node index.ts"
	}

	pkg := map[string]any{
		"name":            name,
		"version":         "1.0.0",
		"description":     "Generated project: " + ctx.ProjectName,
		"main":            "index.js",
		"scripts":         scripts,
		"keywords":        []any{"generated", "project"},
		"license":         "MIT",
		"dependencies":    deps,
		"devDependencies": devDeps,
		"engines": map[string]any{
			"node": ">=18.0.0",
			"npm":  ">=9.0.0",
		},
	}

	return oj.JSON(pkg, &oj.Options{Indent: 2, Sort: true}) + "\n"
}
