package boilerplate

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentic-research/stencil/internal/workflow"
)

// README generates the project README, including quick-start sections for
// the detected languages and the recommended Git workflow instructions.
func README(ctx *Context) string {
	name := ctx.ProjectName
	if name == "" {
		name = "Generated Project"
	}
	slug := strings.ToLower(strings.ReplaceAll(name, " ", "-"))

	var b strings.Builder
	fmt.Fprintf(&b, `# %s

[![License: MIT](https://img.shields.io/badge/License-MIT-yellow.svg)](https://opensource.org/licenses/MIT)

*Generated on %s*

## Overview

%s is an automatically generated project skeleton with proper structure and best practices. This project follows the **%s** Git workflow for development collaboration.

`, name, time.Now().Format("2006-01-02 15:04:05"), name, ctx.WorkflowName())

	if len(ctx.Languages) > 0 {
		b.WriteString("## Technologies\n\n**Languages & Frameworks:**\n")
		for _, lang := range ctx.Languages {
			fmt.Fprintf(&b, "- %s\n", lang)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, `## Project Structure

`+"```"+`
%s/
|-- src/                 # Source code
|-- tests/               # Test files
|-- docs/                # Documentation
|-- README.md            # Project documentation
|-- .gitignore           # Git ignore rules
`+"`-- LICENSE              # License file"+`
`+"```"+`

## Quick Start

### Prerequisites

`, slug)

	if ctx.hasLanguage("Python") {
		fmt.Fprintf(&b, `- Python 3.10 or higher
- pip package manager

### Installation

`+"```bash"+`
git clone <repository-url>
cd %s

python -m venv venv
source venv/bin/activate

pip install -r requirements.txt
`+"```"+`

### Running the Application

`+"```bash"+`
python main.py

# Run tests
pytest
`+"```"+`

`, slug)
	}

	if ctx.usesNode() {
		fmt.Fprintf(&b, `- Node.js 18 or higher
- npm or yarn package manager

### Installation

`+"```bash"+`
git clone <repository-url>
cd %s

npm install
`+"```"+`

### Running the Application

`+"```bash"+`
npm run dev

# Run tests
npm test
`+"```"+`

`, slug)
	}

	fmt.Fprintf(&b, `## Git Workflow: %s

This project uses the **%s** approach:

%s

## Contributing

1. Fork the repository
2. Create your feature branch (`+"`git checkout -b feature/amazing-feature`"+`)
3. Commit your changes (`+"`git commit -m 'Add some amazing feature'`"+`)
4. Push to the branch (`+"`git push origin feature/amazing-feature`"+`)
5. Open a Pull Request

See [CONTRIBUTING.md](CONTRIBUTING.md) for details.

## License

This project is licensed under the MIT License - see the [LICENSE](LICENSE) file for details.

---

*This README was automatically generated. Please update it with your specific project details.*
`, ctx.WorkflowName(), ctx.WorkflowName(), workflow.Guidance(ctx.Workflow))

	return b.String()
}

// Contributing generates CONTRIBUTING.md with workflow-specific guidance.
func Contributing(ctx *Context) string {
	name := ctx.ProjectName
	if name == "" {
		name = "Generated Project"
	}

	return fmt.Sprintf(`# Contributing to %s

Thank you for your interest in contributing! This document provides guidelines for contributing to this project.

## Development Setup

1. Fork the repository
2. Clone your fork: `+"`git clone <your-fork-url>`"+`
3. Install dependencies (see README.md)
4. Create a new branch: `+"`git checkout -b feature/your-feature`"+`

## Git Workflow: %s

This project follows the %s approach:

%s

## Code Style

- Follow the existing code style
- Run linters before committing
- Add comments for complex logic
- Write tests for new features

## Pull Request Process

1. Ensure all tests pass
2. Update documentation if needed
3. Fill out the pull request template
4. Request review from maintainers

## Reporting Issues

- Use the issue template
- Provide clear reproduction steps
- Include relevant system information
`, name, ctx.WorkflowName(), ctx.WorkflowName(), workflow.Guidance(ctx.Workflow))
}

// License generates an MIT license body.
func License(ctx *Context) string {
	name := ctx.ProjectName
	if name == "" {
		name = "Generated Project"
	}

	return fmt.Sprintf(`MIT License

Copyright (c) %d %s

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
`, time.Now().Year(), name)
}
