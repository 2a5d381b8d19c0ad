package imageaudit

import "io/fs"

// ArticleDiscoverer lists article record files under a root directory.
type ArticleDiscoverer interface {
	DiscoverArticles(root string) ([]string, error)
}

// FileSystem provides the filesystem operations required by the audit.
type FileSystem interface {
	Stat(path string) (fs.FileInfo, error)
	ReadFile(path string) ([]byte, error)
	WriteFile(path string, data []byte, permissions fs.FileMode) error
	Abs(path string) (string, error)
	Getwd() (string, error)
}
