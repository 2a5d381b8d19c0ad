// Package imageaudit verifies that article records reference image assets
// which exist on disk and are non-empty.
//
// It exposes CommandBuilder for wiring the Cobra command, Service for driving
// the audit programmatically, and the RecordValidator, ReportWriter, Summarize,
// and ConsoleReporter building blocks the Service composes.
package imageaudit
