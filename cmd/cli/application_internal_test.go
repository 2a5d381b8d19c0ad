package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/article-audit/internal/utils"
)

const (
	testConfigurationTemplate = "common:\n  log_level: %s\n  log_format: %s\ntools:\n  images:\n    project_root: %s\n"
	testReportFileName        = "image_audit_report.json"
)

type applicationHarness struct {
	application *Application
	output      *bytes.Buffer
	diagnostics *bytes.Buffer
}

func newApplicationHarness(t *testing.T) applicationHarness {
	t.Helper()

	harness := applicationHarness{
		application: NewApplication(),
		output:      &bytes.Buffer{},
		diagnostics: &bytes.Buffer{},
	}
	harness.application.loggerFactory = utils.NewLoggerFactoryWithSink(harness.diagnostics)
	harness.application.rootCommand.SetOut(harness.output)
	harness.application.rootCommand.SetErr(harness.output)
	return harness
}

func (harness applicationHarness) execute(arguments ...string) error {
	harness.application.rootCommand.SetArgs(arguments)
	return harness.application.Execute()
}

func writeProject(t *testing.T) string {
	t.Helper()

	projectRoot := t.TempDir()
	articlesDirectory := filepath.Join(projectRoot, "data", "articles")
	imagesDirectory := filepath.Join(projectRoot, "data", "images")
	require.NoError(t, os.MkdirAll(articlesDirectory, 0o755))
	require.NoError(t, os.MkdirAll(imagesDirectory, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(imagesDirectory, "cover.png"), []byte("png"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(articlesDirectory, "ok.json"), []byte(`{"image":"cover.png"}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(articlesDirectory, "missing.json"), []byte(`{"image":"gone.png"}`), 0o644))
	return projectRoot
}

func writeConfiguration(t *testing.T, logLevel string, logFormat string, projectRoot string) string {
	t.Helper()

	configurationPath := filepath.Join(t.TempDir(), "config.yaml")
	content := fmt.Sprintf(testConfigurationTemplate, logLevel, logFormat, projectRoot)
	require.NoError(t, os.WriteFile(configurationPath, []byte(content), 0o600))
	return configurationPath
}

func TestApplicationRunsImageAuditFromConfigurationFile(t *testing.T) {
	projectRoot := writeProject(t)
	configurationPath := writeConfiguration(t, "info", "structured", projectRoot)

	harness := newApplicationHarness(t)
	require.NoError(t, harness.execute("--config", configurationPath, "images"))

	_, statError := os.Stat(filepath.Join(projectRoot, testReportFileName))
	require.NoError(t, statError)
	require.Contains(t, harness.output.String(), "Articles with image issues: 1\n")
	require.Contains(t, harness.output.String(), "Most common issue: \"Missing or empty image: gone.png\" (1 occurrences)\n")
	require.Contains(t, harness.diagnostics.String(), configurationInitializedMessageConstant)
	require.Contains(t, harness.diagnostics.String(), configurationPath)
}

func TestApplicationEnvironmentOverridesProjectRoot(t *testing.T) {
	projectRoot := writeProject(t)
	t.Setenv("ARTICLEAUDIT_TOOLS_IMAGES_PROJECT_ROOT", projectRoot)

	harness := newApplicationHarness(t)
	require.NoError(t, harness.execute("audit"))

	require.Equal(t, projectRoot, harness.application.configuration.Tools.Images.ProjectRoot)
	_, statError := os.Stat(filepath.Join(projectRoot, testReportFileName))
	require.NoError(t, statError)
}

func TestApplicationLogFlagsOverrideConfiguration(t *testing.T) {
	projectRoot := writeProject(t)
	configurationPath := writeConfiguration(t, "error", "structured", projectRoot)

	harness := newApplicationHarness(t)
	require.NoError(t, harness.execute("--config", configurationPath, "--log-level", "debug", "--log-format", "console", "images"))

	require.Equal(t, "debug", harness.application.configuration.Common.LogLevel)
	require.Equal(t, "console", harness.application.configuration.Common.LogFormat)
	require.Contains(t, harness.diagnostics.String(), "article record has image issues")
}

func TestApplicationRejectsUnsupportedLogLevel(t *testing.T) {
	projectRoot := writeProject(t)
	configurationPath := writeConfiguration(t, "verbose", "structured", projectRoot)

	harness := newApplicationHarness(t)
	executionError := harness.execute("--config", configurationPath, "images")
	require.Error(t, executionError)
	require.Contains(t, executionError.Error(), "unsupported log level")
}

func TestApplicationFailsWhenArticlesDirectoryMissing(t *testing.T) {
	configurationPath := writeConfiguration(t, "warn", "structured", t.TempDir())

	harness := newApplicationHarness(t)
	executionError := harness.execute("--config", configurationPath, "images")
	require.Error(t, executionError)
	require.Contains(t, executionError.Error(), "articles directory unavailable")
}

func TestApplicationRootCommandRunsImageAudit(t *testing.T) {
	projectRoot := writeProject(t)
	t.Chdir(projectRoot)

	harness := newApplicationHarness(t)
	harness.application.rootCommand.SetArgs([]string{})
	require.NoError(t, harness.application.Execute())

	written, readError := os.ReadFile(filepath.Join(projectRoot, testReportFileName))
	require.NoError(t, readError)
	require.Contains(t, string(written), `"file": "data/articles/missing.json"`)
	require.Contains(t, harness.output.String(), "===== IMAGE AUDIT SUMMARY =====\n")
	require.NotContains(t, harness.output.String(), applicationLongDescriptionConstant)
}

func TestApplicationRootCommandRejectsUnknownArguments(t *testing.T) {
	projectRoot := writeProject(t)
	t.Chdir(projectRoot)

	harness := newApplicationHarness(t)
	require.Error(t, harness.execute("unexpected"))

	_, statError := os.Stat(filepath.Join(projectRoot, testReportFileName))
	require.ErrorIs(t, statError, os.ErrNotExist)
}
