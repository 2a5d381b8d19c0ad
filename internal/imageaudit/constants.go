package imageaudit

const (
	commandNameConstant             = "images"
	commandAliasConstant            = "audit"
	commandShortDescriptionConstant = "Audit article image references"
	commandLongDescriptionConstant  = "images scans every article JSON record, verifies that referenced image and image_gallery files exist and are non-empty, writes a JSON report, and prints a summary."

	invalidJSONMessageConstant          = "Invalid JSON"
	missingImageIssueTemplateConstant   = "Missing or empty image: %s"
	missingGalleryIssueTemplateConstant = "Missing or empty gallery image: %s"
	missingImageFieldsIssueConstant     = "No image or image_gallery field"
	imageFieldNameConstant              = "image"
	imageGalleryFieldNameConstant       = "image_gallery"

	reportIndentConstant          = "  "
	reportFilePermissionsConstant = 0o644

	consoleAllValidMessageConstant        = "All articles have valid images."
	consoleIssuesHeaderConstant           = "Image audit issues:"
	consoleEntryTemplateConstant          = "- %s\n"
	consoleIssueTemplateConstant          = "    • %s\n"
	consoleReportLocationTemplateConstant = "\nFull report written to %s\n"
	consoleSummaryHeaderConstant          = "===== IMAGE AUDIT SUMMARY ====="
	consoleSummaryFooterConstant          = "=============================="
	consoleTotalTemplateConstant          = "Total articles checked: %d\n"
	consoleIssuesCountTemplateConstant    = "Articles with image issues: %d\n"
	consoleOKCountTemplateConstant        = "Articles with no image issues: %d\n"
	consoleMostCommonTemplateConstant     = "Most common issue: \"%s\" (%d occurrences)\n"

	reportWriteErrorTemplateConstant  = "%w: %s: %w"
	reportEncodeErrorTemplateConstant = "%w: encode: %w"

	lineSeparatorEscapePrefixConstant = `\u202`
	lineSeparatorEscapeConstant       = `\u2028`
	paragraphSeparatorEscapeConstant  = `\u2029`
	lineSeparatorConstant             = "\u2028"
	paragraphSeparatorConstant        = "\u2029"

	logMessageAuditStartedConstant       = "image audit started"
	logMessageArticlesDiscoveredConstant = "article records discovered"
	logMessageInvalidArticleConstant     = "article record is not valid JSON"
	logMessageArticleIssuesConstant      = "article record has image issues"
	logMessageReportWrittenConstant      = "image audit report written"
	logMessageNoWorkingDirectoryConstant = "working directory unavailable, reporting discovered paths"
	logFieldArticlesDirectoryConstant    = "articles_directory"
	logFieldImagesDirectoryConstant      = "images_directory"
	logFieldOutputFileConstant           = "output_file"
	logFieldArticleCountConstant         = "article_count"
	logFieldArticleFileConstant          = "article_file"
	logFieldIssueCountConstant           = "issue_count"
	logFieldEntriesConstant              = "entries"
)
