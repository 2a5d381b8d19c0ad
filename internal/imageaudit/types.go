package imageaudit

// AuditEntry records the problems found in one article file.
// Exactly one of Error or Issues is populated.
type AuditEntry struct {
	File   string   `json:"file"`
	Error  string   `json:"error,omitempty"`
	Issues []string `json:"issues,omitempty"`
}

// ValidationResult is the outcome of validating a single article record.
type ValidationResult struct {
	ParseFailed bool
	Issues      []string
}

// IssueFrequency counts how often one issue message occurred across the report.
type IssueFrequency struct {
	Message     string
	Occurrences int
}

// SummaryStatistics aggregates an audit report.
type SummaryStatistics struct {
	TotalArticles int
	IssuesCount   int
	OKCount       int
	// IssueFrequencies is ordered by first occurrence.
	IssueFrequencies []IssueFrequency
	// MostCommonIssue is nil when no entry carries issues.
	MostCommonIssue *IssueFrequency
}

// AuditResult is the in-memory outcome of Service.Run.
type AuditResult struct {
	Report     []AuditEntry
	Summary    SummaryStatistics
	ReportPath string
}

// CommandOptions captures the resolved locations used by a single audit run.
type CommandOptions struct {
	ArticlesDirectory string
	ImagesDirectory   string
	OutputFile        string
}
