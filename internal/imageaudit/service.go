package imageaudit

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"
)

// Service coordinates article discovery, validation, report persistence, and console reporting.
type Service struct {
	discoverer ArticleDiscoverer
	fileSystem FileSystem
	reporter   *ConsoleReporter
	logger     *zap.Logger
}

// NewService constructs a Service using the provided dependencies.
func NewService(discoverer ArticleDiscoverer, fileSystem FileSystem, reporter *ConsoleReporter, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		discoverer: discoverer,
		fileSystem: fileSystem,
		reporter:   reporter,
		logger:     logger,
	}
}

// Run audits every article under options.ArticlesDirectory in discovery order.
// Discovery and report write failures abort the run; per-file problems become report entries.
func (service *Service) Run(executionContext context.Context, options CommandOptions) (AuditResult, error) {
	service.logger.Info(
		logMessageAuditStartedConstant,
		zap.String(logFieldArticlesDirectoryConstant, options.ArticlesDirectory),
		zap.String(logFieldImagesDirectoryConstant, options.ImagesDirectory),
		zap.String(logFieldOutputFileConstant, options.OutputFile),
	)

	articlePaths, discoveryError := service.discoverer.DiscoverArticles(options.ArticlesDirectory)
	if discoveryError != nil {
		return AuditResult{}, discoveryError
	}
	service.logger.Debug(logMessageArticlesDiscoveredConstant, zap.Int(logFieldArticleCountConstant, len(articlePaths)))

	workingDirectory, workingDirectoryError := service.fileSystem.Getwd()
	if workingDirectoryError != nil {
		service.logger.Debug(logMessageNoWorkingDirectoryConstant, zap.Error(workingDirectoryError))
		workingDirectory = ""
	}
	validator := NewRecordValidator(service.fileSystem, options.ImagesDirectory)

	report := []AuditEntry{}
	for _, articlePath := range articlePaths {
		if contextError := executionContext.Err(); contextError != nil {
			return AuditResult{}, contextError
		}

		relativeFile := service.invocationRelativePath(workingDirectory, articlePath)
		validation := validator.Validate(articlePath)
		switch {
		case validation.ParseFailed:
			service.logger.Debug(logMessageInvalidArticleConstant, zap.String(logFieldArticleFileConstant, relativeFile))
			report = append(report, AuditEntry{File: relativeFile, Error: invalidJSONMessageConstant})
		case len(validation.Issues) > 0:
			service.logger.Debug(
				logMessageArticleIssuesConstant,
				zap.String(logFieldArticleFileConstant, relativeFile),
				zap.Int(logFieldIssueCountConstant, len(validation.Issues)),
			)
			report = append(report, AuditEntry{File: relativeFile, Issues: validation.Issues})
		}
	}

	if writeError := NewReportWriter(service.fileSystem).Write(options.OutputFile, report); writeError != nil {
		return AuditResult{}, writeError
	}

	reportPath := options.OutputFile
	if absolutePath, absoluteError := service.fileSystem.Abs(options.OutputFile); absoluteError == nil {
		reportPath = absolutePath
	}
	service.logger.Info(
		logMessageReportWrittenConstant,
		zap.String(logFieldOutputFileConstant, reportPath),
		zap.Int(logFieldEntriesConstant, len(report)),
	)

	summary := Summarize(len(articlePaths), report)
	if service.reporter != nil {
		service.reporter.Report(report, summary, reportPath)
	}

	return AuditResult{Report: report, Summary: summary, ReportPath: reportPath}, nil
}

// invocationRelativePath expresses articlePath relative to the working directory,
// falling back to the path as discovered.
func (service *Service) invocationRelativePath(workingDirectory string, articlePath string) string {
	if len(workingDirectory) == 0 {
		return articlePath
	}
	relativePath, relativeError := filepath.Rel(workingDirectory, articlePath)
	if relativeError != nil {
		return articlePath
	}
	return relativePath
}
