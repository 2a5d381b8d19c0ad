package imageaudit

import (
	"strings"

	pathutils "github.com/temirov/article-audit/internal/utils/path"
)

const (
	defaultProjectRootConstant       = "."
	defaultArticlesDirectoryConstant = "data/articles"
	defaultImagesDirectoryConstant   = "data/images"
	defaultOutputFileConstant        = "image_audit_report.json"
	projectRootKeyConstant           = "project_root"
	articlesDirectoryKeyConstant     = "articles_directory"
	imagesDirectoryKeyConstant       = "images_directory"
	outputFileKeyConstant            = "output_file"
	configurationKeySeparator        = "."
)

// CommandConfiguration captures persistent settings for the image audit command.
// Relative directories resolve against ProjectRoot.
type CommandConfiguration struct {
	ProjectRoot       string `mapstructure:"project_root"`
	ArticlesDirectory string `mapstructure:"articles_directory"`
	ImagesDirectory   string `mapstructure:"images_directory"`
	OutputFile        string `mapstructure:"output_file"`
}

// DefaultCommandConfiguration returns the fixed project layout.
func DefaultCommandConfiguration() CommandConfiguration {
	return CommandConfiguration{
		ProjectRoot:       defaultProjectRootConstant,
		ArticlesDirectory: defaultArticlesDirectoryConstant,
		ImagesDirectory:   defaultImagesDirectoryConstant,
		OutputFile:        defaultOutputFileConstant,
	}
}

// DefaultConfigurationValues returns Viper defaults keyed under prefix.
func DefaultConfigurationValues(prefix string) map[string]any {
	defaults := DefaultCommandConfiguration()
	keyPrefix := strings.TrimSpace(prefix)
	if len(keyPrefix) > 0 {
		keyPrefix += configurationKeySeparator
	}
	return map[string]any{
		keyPrefix + projectRootKeyConstant:       defaults.ProjectRoot,
		keyPrefix + articlesDirectoryKeyConstant: defaults.ArticlesDirectory,
		keyPrefix + imagesDirectoryKeyConstant:   defaults.ImagesDirectory,
		keyPrefix + outputFileKeyConstant:        defaults.OutputFile,
	}
}

// sanitize trims whitespace and restores defaults for blank values.
func (configuration CommandConfiguration) sanitize() CommandConfiguration {
	defaults := DefaultCommandConfiguration()
	return CommandConfiguration{
		ProjectRoot:       valueOrDefault(configuration.ProjectRoot, defaults.ProjectRoot),
		ArticlesDirectory: valueOrDefault(configuration.ArticlesDirectory, defaults.ArticlesDirectory),
		ImagesDirectory:   valueOrDefault(configuration.ImagesDirectory, defaults.ImagesDirectory),
		OutputFile:        valueOrDefault(configuration.OutputFile, defaults.OutputFile),
	}
}

// options resolves the configured layout into concrete paths.
func (configuration CommandConfiguration) options(homeExpander *pathutils.HomeExpander) CommandOptions {
	sanitized := configuration.sanitize()
	resolver := pathutils.NewLayoutResolver(homeExpander, sanitized.ProjectRoot)
	return CommandOptions{
		ArticlesDirectory: resolver.Resolve(sanitized.ArticlesDirectory),
		ImagesDirectory:   resolver.Resolve(sanitized.ImagesDirectory),
		OutputFile:        resolver.Resolve(sanitized.OutputFile),
	}
}

func valueOrDefault(value string, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) == 0 {
		return fallback
	}
	return trimmed
}
