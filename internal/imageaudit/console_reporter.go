package imageaudit

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// ConsoleReporter prints the human-readable audit listing and summary.
type ConsoleReporter struct {
	writer       io.Writer
	headingColor *color.Color
	issueColor   *color.Color
	okColor      *color.Color
}

// NewConsoleReporter constructs a reporter writing to writer. Colors apply only when colorEnabled is set.
func NewConsoleReporter(writer io.Writer, colorEnabled bool) *ConsoleReporter {
	reporter := &ConsoleReporter{
		writer:       writer,
		headingColor: color.New(color.FgCyan, color.Bold),
		issueColor:   color.New(color.FgYellow),
		okColor:      color.New(color.FgGreen),
	}
	for _, palette := range []*color.Color{reporter.headingColor, reporter.issueColor, reporter.okColor} {
		if colorEnabled {
			palette.EnableColor()
		} else {
			palette.DisableColor()
		}
	}
	return reporter
}

// Report prints the per-file listing followed by the summary block.
func (reporter *ConsoleReporter) Report(report []AuditEntry, summary SummaryStatistics, reportPath string) {
	if summary.IssuesCount == 0 {
		fmt.Fprintln(reporter.writer, reporter.okColor.Sprint(consoleAllValidMessageConstant))
	} else {
		fmt.Fprintln(reporter.writer, reporter.issueColor.Sprint(consoleIssuesHeaderConstant))
		for _, entry := range report {
			fmt.Fprintf(reporter.writer, consoleEntryTemplateConstant, entry.File)
			if len(entry.Error) > 0 {
				fmt.Fprintf(reporter.writer, consoleIssueTemplateConstant, entry.Error)
			}
			for _, issue := range entry.Issues {
				fmt.Fprintf(reporter.writer, consoleIssueTemplateConstant, issue)
			}
		}
		fmt.Fprintf(reporter.writer, consoleReportLocationTemplateConstant, reportPath)
	}

	reporter.reportSummary(summary)
}

func (reporter *ConsoleReporter) reportSummary(summary SummaryStatistics) {
	fmt.Fprintln(reporter.writer)
	fmt.Fprintln(reporter.writer, reporter.headingColor.Sprint(consoleSummaryHeaderConstant))
	fmt.Fprintf(reporter.writer, consoleTotalTemplateConstant, summary.TotalArticles)
	fmt.Fprintf(reporter.writer, consoleIssuesCountTemplateConstant, summary.IssuesCount)
	fmt.Fprintf(reporter.writer, consoleOKCountTemplateConstant, summary.OKCount)
	if summary.MostCommonIssue != nil {
		fmt.Fprintf(reporter.writer, consoleMostCommonTemplateConstant, summary.MostCommonIssue.Message, summary.MostCommonIssue.Occurrences)
	}
	fmt.Fprintln(reporter.writer, reporter.headingColor.Sprint(consoleSummaryFooterConstant))
	fmt.Fprintln(reporter.writer)
}
