package pathutils

import (
	"path/filepath"
	"strings"
)

// LayoutResolver anchors configured paths to a project root.
type LayoutResolver struct {
	homeExpander *HomeExpander
	projectRoot  string
}

// NewLayoutResolver constructs a resolver for the provided project root. A blank root means the current directory.
func NewLayoutResolver(homeExpander *HomeExpander, projectRoot string) *LayoutResolver {
	if homeExpander == nil {
		homeExpander = NewHomeExpander()
	}
	trimmedRoot := strings.TrimSpace(projectRoot)
	if len(trimmedRoot) == 0 {
		trimmedRoot = "."
	}
	return &LayoutResolver{
		homeExpander: homeExpander,
		projectRoot:  filepath.Clean(homeExpander.Expand(trimmedRoot)),
	}
}

// ProjectRoot returns the cleaned, home-expanded project root.
func (resolver *LayoutResolver) ProjectRoot() string {
	return resolver.projectRoot
}

// Resolve expands the home shortcut and joins relative paths onto the project root.
func (resolver *LayoutResolver) Resolve(configuredPath string) string {
	expandedPath := resolver.homeExpander.Expand(strings.TrimSpace(configuredPath))
	if filepath.IsAbs(expandedPath) {
		return filepath.Clean(expandedPath)
	}
	return filepath.Join(resolver.projectRoot, expandedPath)
}
