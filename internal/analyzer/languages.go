package analyzer

// languageByExt maps lowercased file extensions (with the leading dot) to
// language labels. A filename contributes at most one language.
var languageByExt = map[string]string{
	".py":   "Python",
	".js":   "JavaScript",
	".ts":   "TypeScript",
	".java": "Java",
	".cpp":  "C++",
	".c":    "C",
	".go":   "Go",
	".rs":   "Rust",
	".php":  "PHP",
	".rb":   "Ruby",
	".cs":   "C#",
	".html": "HTML",
	".css":  "CSS",
	".scss": "SCSS",
	".vue":  "Vue",
	".jsx":  "React",
	".tsx":  "React/TypeScript",
}

// specialFiles maps substrings of lowercased filenames to technology tags.
// A filename may match any number of entries; the slice fixes the order in
// which matches are recorded.
var specialFiles = []struct {
	match string
	tech  string
}{
	{"docker-compose.yml", "Docker Compose"},
	{"dockerfile", "Docker"},
	{"kubernetes", "Kubernetes"},
	{"package.json", "Node.js"},
	{"requirements.txt", "Python"},
	{"pom.xml", "Maven"},
	{"build.gradle", "Gradle"},
}

// serviceVocab and appVocab are tested by substring against lowercased
// directory names. The two checks are independent; a name may trigger both.
var (
	serviceVocab = []string{"service", "microservice", "api", "backend", "frontend"}
	appVocab     = []string{"app", "application", "module", "package"}
)
