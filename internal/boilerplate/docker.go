package boilerplate

const pythonDockerfile = `# Use Python base image
FROM python:3.12-slim

WORKDIR /app

# Copy requirements first (for better caching)
COPY requirements.txt .
RUN pip install --no-cache-dir -r requirements.txt

COPY . .

EXPOSE 8000

ENV PYTHONPATH=/app
ENV PYTHONUNBUFFERED=1

# Create non-root user
RUN useradd --create-home --shell /bin/bash app && chown -R app:app /app
USER app

HEALTHCHECK --interval=30s --timeout=30s --start-period=5s --retries=3 \
  CMD curl -f http://localhost:8000/health || exit 1

CMD ["python", "main.py"]
`

const nodeDockerfile = `# Use Node.js base image
FROM node:20-alpine

WORKDIR /app

# Copy package files first (for better caching)
COPY package*.json ./
RUN npm ci --only=production

COPY . .

EXPOSE 3000

# Create non-root user
RUN addgroup -g 1001 -S nodejs && adduser -S appuser -u 1001
USER appuser

HEALTHCHECK --interval=30s --timeout=30s --start-period=5s --retries=3 \
  CMD curl -f http://localhost:3000/health || exit 1

CMD ["npm", "start"]
`

const genericDockerfile = `# Multi-stage build template
FROM alpine:latest AS builder

RUN apk add --no-cache build-base

WORKDIR /app
COPY . .

# Build application
RUN echo "TODO: Add build commands"

# Production stage
FROM alpine:latest

RUN apk add --no-cache ca-certificates

WORKDIR /app
COPY --from=builder /app/dist ./

# Create non-root user
RUN adduser -D -s /bin/sh appuser
USER appuser

EXPOSE 8080

HEALTHCHECK --interval=30s --timeout=30s --start-period=5s --retries=3 \
  CMD wget --no-verbose --tries=1 --spider http://localhost:8080/health || exit 1

CMD ["./app"]
`

// Dockerfile generates an image build file matched to the detected stack.
func Dockerfile(ctx *Context) string {
	switch {
	case ctx.hasLanguage("Python"):
		return pythonDockerfile
	case ctx.usesNode():
		return nodeDockerfile
	default:
		return genericDockerfile
	}
}

const gitignoreBase = `# IDE and Editor files
.vscode/
.idea/
*.swp
*.swo
*~

# OS generated files
.DS_Store
._*
Thumbs.db

# Logs
logs
*.log
npm-debug.log*
yarn-debug.log*
yarn-error.log*

# Environment variables
.env
.env.local
.env.development.local
.env.test.local
.env.production.local

# Temporary files
tmp/
temp/
`

const gitignorePython = `
# Python
__pycache__/
*.py[cod]
*$py.class
*.so
.Python
build/
dist/
downloads/
eggs/
.eggs/
wheels/
*.egg-info/
*.egg
MANIFEST
.pytest_cache/
.coverage
htmlcov/
.tox/
.mypy_cache/
.pyre/
`

const gitignoreNode = `
# Node.js
node_modules/
npm-debug.log*
yarn-debug.log*
yarn-error.log*
.npm
.eslintcache
.yarn-integrity
.next
.nuxt
dist
.cache
.parcel-cache
`

const gitignoreJava = `
# Java
*.class
*.jar
*.war
*.ear
target/
.mvn/
mvnw
mvnw.cmd
.gradle/
build/
`

const gitignoreGo = `
# Go
bin/
*.test
*.out
vendor/
`

// Gitignore generates ignore rules with language-specific sections matching
// the detected stack.
func Gitignore(ctx *Context) string {
	out := gitignoreBase
	if ctx.hasLanguage("Python") {
		out += gitignorePython
	}
	if ctx.usesNode() {
		out += gitignoreNode
	}
	if ctx.hasLanguage("Java") {
		out += gitignoreJava
	}
	if ctx.hasLanguage("Go") {
		out += gitignoreGo
	}
	return out
}
