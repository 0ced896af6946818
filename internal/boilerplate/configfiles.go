package boilerplate

import (
	"fmt"
	"strings"
	"time"

	"github.com/ohler55/ojg/oj"
)

const tsconfigTemplate = `{
  "compilerOptions": {
    "target": "ES2020",
    "module": "commonjs",
    "lib": ["ES2020"],
    "outDir": "./dist",
    "rootDir": "./src",
    "strict": true,
    "esModuleInterop": true,
    "skipLibCheck": true,
    "forceConsistentCasingInFileNames": true,
    "declaration": true,
    "declarationMap": true,
    "sourceMap": true
  },
  "include": ["src/**/*"],
  "exclude": ["node_modules", "dist"]
}
`

// JSONFile generates a JSON document. package.json and tsconfig get their
// dedicated shapes; everything else becomes a generic config stub.
func JSONFile(filename string, ctx *Context) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "package.json"):
		return PackageJSON(ctx)
	case strings.Contains(lower, "tsconfig"):
		return tsconfigTemplate
	}

	doc := map[string]any{
		"name":        stem(filename),
		"version":     "1.0.0",
		"description": "Generated configuration file",
		"generated":   time.Now().Format(time.RFC3339),
		"config": map[string]any{
			"TODO": "Add your configuration here",
		},
	}
	return oj.JSON(doc, &oj.Options{Indent: 2, Sort: true}) + "\n"
}

const dockerComposeTemplate = `version: '3.8'

services:
  app:
    build: .
    ports:
      - "3000:3000"
    environment:
      - NODE_ENV=production
    volumes:
      - .:/app
      - /app/node_modules
    depends_on:
      - db

  db:
    image: postgres:13
    environment:
      POSTGRES_DB: myapp
      POSTGRES_USER: user
      POSTGRES_PASSWORD: password
    volumes:
      - postgres_data:/var/lib/postgresql/data
    ports:
      - "5432:5432"

volumes:
  postgres_data:
`

const ciWorkflowTemplate = `name: CI/CD Pipeline

on:
  push:
    branches: [ main, develop ]
  pull_request:
    branches: [ main ]

jobs:
  test:
    runs-on: ubuntu-latest

    steps:
    - uses: actions/checkout@v3

    - name: Setup
      run: |
        # TODO: Add setup commands
        echo "Setting up environment"

    - name: Run Tests
      run: |
        # TODO: Add test commands
        echo "Running tests"

    - name: Build
      run: |
        # TODO: Add build commands
        echo "Building application"
`

// YAML generates a YAML document. docker-compose files and CI workflow
// files (by name or by living under a .github path) get dedicated shapes.
func YAML(filename, relPath string) string {
	lower := strings.ToLower(filename)
	switch {
	case strings.Contains(lower, "docker-compose"):
		return dockerComposeTemplate
	case strings.Contains(strings.ToLower(relPath), "github") || strings.Contains(lower, "workflow"):
		return ciWorkflowTemplate
	}

	return fmt.Sprintf(`# %s Configuration
# Generated on %s

config:
  name: "%s"
  version: "1.0.0"

  # TODO: Add your configuration here
  settings:
    debug: false
    port: 3000

  # TODO: Add environment-specific settings
  environments:
    development:
      debug: true
    production:
      debug: false
`, titleWords(stem(filename)), today(), stem(filename))
}
