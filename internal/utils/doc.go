// Package utils exposes the configuration and logging helpers shared by the
// article-audit commands.
//
// ConfigurationLoader layers embedded YAML defaults, an optional configuration
// file, and ARTICLEAUDIT_* environment variables through Viper. LoggerFactory
// builds zap loggers in structured (JSON) or console encodings.
package utils
