// Package cli constructs the article-audit command-line interface, wiring the
// Cobra command hierarchy, the Viper-backed configuration loader, and zap
// diagnostics around the image audit command.
package cli
