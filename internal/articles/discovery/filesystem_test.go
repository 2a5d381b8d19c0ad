package discovery_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/article-audit/internal/articles/discovery"
)

const (
	articleDirectoryPermissions = 0o755
	articleFilePermissions      = 0o644
	articleFileContent          = "{}"
)

type articleTreeDefinition struct {
	files       []string
	directories []string
}

func (definition articleTreeDefinition) materialize(testInstance *testing.T) string {
	testInstance.Helper()

	rootDirectory := testInstance.TempDir()
	for _, directory := range definition.directories {
		require.NoError(testInstance, os.MkdirAll(filepath.Join(rootDirectory, directory), articleDirectoryPermissions))
	}
	for _, file := range definition.files {
		filePath := filepath.Join(rootDirectory, file)
		require.NoError(testInstance, os.MkdirAll(filepath.Dir(filePath), articleDirectoryPermissions))
		require.NoError(testInstance, os.WriteFile(filePath, []byte(articleFileContent), articleFilePermissions))
	}
	return rootDirectory
}

func TestFilesystemArticleDiscovererDiscoversNestedLayouts(testInstance *testing.T) {
	testCases := []struct {
		name     string
		tree     articleTreeDefinition
		expected []string
	}{
		{
			name: "flat_and_nested_json_files",
			tree: articleTreeDefinition{
				files: []string{"b.json", "a.json", "news/2024/c.json", "news/d.json"},
			},
			expected: []string{"a.json", "b.json", "news/2024/c.json", "news/d.json"},
		},
		{
			name: "non_json_files_are_ignored",
			tree: articleTreeDefinition{
				files: []string{"notes.txt", "draft.json.bak", "post.JSON", "post.json", "images/cover.png"},
			},
			expected: []string{"post.json"},
		},
		{
			name: "directories_named_like_articles_are_traversed",
			tree: articleTreeDefinition{
				files:       []string{"archive.json/inner.json"},
				directories: []string{"empty.json"},
			},
			expected: []string{"archive.json/inner.json"},
		},
		{
			name:     "empty_tree",
			tree:     articleTreeDefinition{},
			expected: []string{},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			rootDirectory := testCase.tree.materialize(testInstance)

			articles, discoveryError := discovery.NewFilesystemArticleDiscoverer().DiscoverArticles(rootDirectory)
			require.NoError(testInstance, discoveryError)

			expectedPaths := make([]string, 0, len(testCase.expected))
			for _, relativePath := range testCase.expected {
				expectedPaths = append(expectedPaths, filepath.Join(rootDirectory, filepath.FromSlash(relativePath)))
			}
			require.Equal(testInstance, expectedPaths, articles)
		})
	}
}

func TestFilesystemArticleDiscovererFollowsSymlinkedDirectories(testInstance *testing.T) {
	rootDirectory := articleTreeDefinition{files: []string{"local.json"}}.materialize(testInstance)
	linkedDirectory := articleTreeDefinition{files: []string{"a.json", "deeper/b.json", "notes.txt"}}.materialize(testInstance)
	require.NoError(testInstance, os.Symlink(linkedDirectory, filepath.Join(rootDirectory, "linked")))
	require.NoError(testInstance, os.Symlink(filepath.Join(linkedDirectory, "a.json"), filepath.Join(rootDirectory, "alias.json")))

	articles, discoveryError := discovery.NewFilesystemArticleDiscoverer().DiscoverArticles(rootDirectory)
	require.NoError(testInstance, discoveryError)
	require.Equal(testInstance, []string{
		filepath.Join(rootDirectory, "alias.json"),
		filepath.Join(rootDirectory, "linked", "a.json"),
		filepath.Join(rootDirectory, "linked", "deeper", "b.json"),
		filepath.Join(rootDirectory, "local.json"),
	}, articles)
}

func TestFilesystemArticleDiscovererFailsForDanglingSymlink(testInstance *testing.T) {
	rootDirectory := articleTreeDefinition{files: []string{"a.json"}}.materialize(testInstance)
	require.NoError(testInstance, os.Symlink(filepath.Join(rootDirectory, "missing"), filepath.Join(rootDirectory, "broken")))

	articles, discoveryError := discovery.NewFilesystemArticleDiscoverer().DiscoverArticles(rootDirectory)
	require.ErrorIs(testInstance, discoveryError, discovery.ErrArticlesDirectoryUnavailable)
	require.Nil(testInstance, articles)
}

func TestFilesystemArticleDiscovererOrderIsStable(testInstance *testing.T) {
	rootDirectory := articleTreeDefinition{files: []string{"z.json", "m/a.json", "a.json", "m/z.json"}}.materialize(testInstance)
	discoverer := discovery.NewFilesystemArticleDiscoverer()

	firstRun, firstError := discoverer.DiscoverArticles(rootDirectory)
	require.NoError(testInstance, firstError)
	secondRun, secondError := discoverer.DiscoverArticles(rootDirectory)
	require.NoError(testInstance, secondError)
	require.Equal(testInstance, firstRun, secondRun)
}

func TestFilesystemArticleDiscovererFailsForUnavailableRoot(testInstance *testing.T) {
	rootDirectory := testInstance.TempDir()
	filePath := filepath.Join(rootDirectory, "article.json")
	require.NoError(testInstance, os.WriteFile(filePath, []byte(articleFileContent), articleFilePermissions))

	testCases := []struct {
		name string
		root string
	}{
		{name: "missing_root", root: filepath.Join(rootDirectory, "missing")},
		{name: "root_is_file", root: filePath},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			articles, discoveryError := discovery.NewFilesystemArticleDiscoverer().DiscoverArticles(testCase.root)
			require.ErrorIs(testInstance, discoveryError, discovery.ErrArticlesDirectoryUnavailable)
			require.Nil(testInstance, articles)
		})
	}
}
