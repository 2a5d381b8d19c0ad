package discovery

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const (
	articleFileExtensionConstant       = ".json"
	discoveryRootErrorTemplateConstant = "%w: %s: %w"
	notDirectoryMessageConstant        = "not a directory"
)

// ErrArticlesDirectoryUnavailable reports that the article tree could not be traversed.
var ErrArticlesDirectoryUnavailable = errors.New("articles directory unavailable")

// FilesystemArticleDiscoverer locates article records on disk.
type FilesystemArticleDiscoverer struct{}

// NewFilesystemArticleDiscoverer constructs an article discoverer backed by os.ReadDir.
func NewFilesystemArticleDiscoverer() *FilesystemArticleDiscoverer {
	return &FilesystemArticleDiscoverer{}
}

// DiscoverArticles walks root depth-first and returns the absolute path of every
// file whose name ends in ".json", sorted. Symbolic links to directories are
// followed. Any traversal error aborts discovery.
func (discoverer *FilesystemArticleDiscoverer) DiscoverArticles(root string) ([]string, error) {
	absoluteRoot, absoluteError := filepath.Abs(root)
	if absoluteError != nil {
		return nil, fmt.Errorf(discoveryRootErrorTemplateConstant, ErrArticlesDirectoryUnavailable, root, absoluteError)
	}

	rootInfo, statError := os.Stat(absoluteRoot)
	if statError != nil {
		return nil, fmt.Errorf(discoveryRootErrorTemplateConstant, ErrArticlesDirectoryUnavailable, root, statError)
	}
	if !rootInfo.IsDir() {
		return nil, fmt.Errorf(discoveryRootErrorTemplateConstant, ErrArticlesDirectoryUnavailable, root, errors.New(notDirectoryMessageConstant))
	}

	articles, collectError := collectArticles(absoluteRoot, []string{})
	if collectError != nil {
		return nil, fmt.Errorf(discoveryRootErrorTemplateConstant, ErrArticlesDirectoryUnavailable, root, collectError)
	}

	sort.Strings(articles)
	return articles, nil
}

// collectArticles appends the article files below directory to articles.
// Paths below a followed link keep the link name.
func collectArticles(directory string, articles []string) ([]string, error) {
	directoryEntries, readError := os.ReadDir(directory)
	if readError != nil {
		return nil, readError
	}

	for _, directoryEntry := range directoryEntries {
		entryPath := filepath.Join(directory, directoryEntry.Name())
		isDirectory := directoryEntry.IsDir()
		if directoryEntry.Type()&fs.ModeSymlink != 0 {
			targetInfo, statError := os.Stat(entryPath)
			if statError != nil {
				return nil, statError
			}
			isDirectory = targetInfo.IsDir()
		}

		if isDirectory {
			var collectError error
			articles, collectError = collectArticles(entryPath, articles)
			if collectError != nil {
				return nil, collectError
			}
			continue
		}
		if strings.HasSuffix(directoryEntry.Name(), articleFileExtensionConstant) {
			articles = append(articles, entryPath)
		}
	}
	return articles, nil
}
