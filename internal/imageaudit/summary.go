package imageaudit

import orderedmap "github.com/wk8/go-ordered-map/v2"

// Summarize derives summary statistics for a report built from totalArticles files.
// Only Issues lists contribute to issue frequencies; ties for the most common issue
// go to the message seen first.
func Summarize(totalArticles int, report []AuditEntry) SummaryStatistics {
	frequencies := orderedmap.New[string, int]()
	for _, entry := range report {
		for _, issue := range entry.Issues {
			occurrences, _ := frequencies.Get(issue)
			frequencies.Set(issue, occurrences+1)
		}
	}

	summary := SummaryStatistics{
		TotalArticles:    totalArticles,
		IssuesCount:      len(report),
		OKCount:          totalArticles - len(report),
		IssueFrequencies: make([]IssueFrequency, 0, frequencies.Len()),
	}

	for pair := frequencies.Oldest(); pair != nil; pair = pair.Next() {
		frequency := IssueFrequency{Message: pair.Key, Occurrences: pair.Value}
		summary.IssueFrequencies = append(summary.IssueFrequencies, frequency)
		if summary.MostCommonIssue == nil || frequency.Occurrences > summary.MostCommonIssue.Occurrences {
			mostCommon := frequency
			summary.MostCommonIssue = &mostCommon
		}
	}

	return summary
}
