// Package discovery collects article record files from a content tree.
package discovery
