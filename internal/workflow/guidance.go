package workflow

// Guidance returns the branching instructions embedded in generated READMEs
// and CONTRIBUTING files for each workflow.
func Guidance(w Workflow) string {
	if g, ok := guidance[w]; ok {
		return g
	}
	return "- Follow standard Git practices"
}

var guidance = map[Workflow]string{
	Centralized: `- All developers work on the main branch
- Simple workflow suitable for small teams
- Commands:
  ` + "```bash" + `
  git pull origin main
  # Make changes
  git add .
  git commit -m "Your changes"
  git push origin main
  ` + "```",

	FeatureBranch: `- Create feature branches for new development
- Merge back to main via pull requests
- Commands:
  ` + "```bash" + `
  git checkout -b feature/new-feature
  # Make changes
  git add .
  git commit -m "Add new feature"
  git push origin feature/new-feature
  # Create pull request
  ` + "```",

	Gitflow: `- Uses main, develop, feature, release, and hotfix branches
- Structured workflow for release management
- Commands:
  ` + "```bash" + `
  git flow init
  git flow feature start new-feature
  # Make changes
  git flow feature finish new-feature
  ` + "```",

	Forking: `- Each developer works on their own fork
- Suitable for open source projects
- Commands:
  ` + "```bash" + `
  # Fork the repository on GitHub
  git clone <your-fork-url>
  git remote add upstream <original-repo-url>
  # Make changes and push to your fork
  # Create pull request to original repository
  ` + "```",

	TrunkBased: `- Short-lived branches merged frequently to trunk
- Emphasizes continuous integration
- Commands:
  ` + "```bash" + `
  git checkout -b short-lived-branch
  # Make small changes
  git add .
  git commit -m "Small change"
  git push origin short-lived-branch
  # Quick merge to main
  ` + "```",

	Monorepo: `- Single repository containing multiple projects
- Shared tooling and dependencies
- Use tools like Lerna, Nx, or Rush for management`,

	Multirepo: `- Multiple repositories for different services
- Independent versioning and deployment
- Coordinate releases across repositories`,
}
