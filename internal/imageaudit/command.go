package imageaudit

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/temirov/article-audit/internal/articles/discovery"
	"github.com/temirov/article-audit/internal/articles/filesystem"
	pathutils "github.com/temirov/article-audit/internal/utils/path"
)

// LoggerProvider supplies a zap logger for command execution.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current image audit configuration.
type ConfigurationProvider func() CommandConfiguration

// CommandBuilder assembles the image audit cobra command with configurable dependencies.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
	Discoverer            ArticleDiscoverer
	FileSystem            FileSystem
	HomeExpander          *pathutils.HomeExpander
}

// Build constructs the cobra command for the image audit.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	command := &cobra.Command{
		Use:     commandNameConstant,
		Aliases: []string{commandAliasConstant},
		Short:   commandShortDescriptionConstant,
		Long:    commandLongDescriptionConstant,
		Args:    cobra.NoArgs,
		RunE:    builder.Run,
	}
	return command, nil
}

// Run executes the image audit on behalf of command. It doubles as the root command's action.
func (builder *CommandBuilder) Run(command *cobra.Command, arguments []string) error {
	options := builder.resolveConfiguration().options(builder.HomeExpander)
	output := command.OutOrStdout()
	reporter := NewConsoleReporter(output, output == os.Stdout && !color.NoColor)

	service := NewService(builder.resolveDiscoverer(), builder.resolveFileSystem(), reporter, builder.resolveLogger())
	_, runError := service.Run(command.Context(), options)
	return runError
}

func (builder *CommandBuilder) resolveConfiguration() CommandConfiguration {
	if builder.ConfigurationProvider == nil {
		return DefaultCommandConfiguration()
	}
	return builder.ConfigurationProvider()
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveDiscoverer() ArticleDiscoverer {
	if builder.Discoverer != nil {
		return builder.Discoverer
	}
	return discovery.NewFilesystemArticleDiscoverer()
}

func (builder *CommandBuilder) resolveFileSystem() FileSystem {
	if builder.FileSystem != nil {
		return builder.FileSystem
	}
	return filesystem.OSFileSystem{}
}
