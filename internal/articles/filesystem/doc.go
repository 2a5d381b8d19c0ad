// Package filesystem adapts the os package to the narrow interfaces consumed
// by the article discovery and image audit packages.
package filesystem
