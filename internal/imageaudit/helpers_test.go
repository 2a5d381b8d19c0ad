package imageaudit_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/article-audit/internal/articles/filesystem"
)

const (
	fixtureDirectoryPermissions = 0o755
	fixtureFilePermissions      = 0o644
	fixtureImageContent         = "\x89PNG"
	articlesDirectoryName       = "data/articles"
	imagesDirectoryName         = "data/images"
	reportFileName              = "image_audit_report.json"
)

// projectFixture lays out an article tree and an image tree under one temporary root.
type projectFixture struct {
	root string
}

func newProjectFixture(testInstance *testing.T) projectFixture {
	testInstance.Helper()
	root := testInstance.TempDir()
	require.NoError(testInstance, os.MkdirAll(filepath.Join(root, filepath.FromSlash(articlesDirectoryName)), fixtureDirectoryPermissions))
	require.NoError(testInstance, os.MkdirAll(filepath.Join(root, filepath.FromSlash(imagesDirectoryName)), fixtureDirectoryPermissions))
	return projectFixture{root: root}
}

func (fixture projectFixture) articlesDirectory() string {
	return filepath.Join(fixture.root, filepath.FromSlash(articlesDirectoryName))
}

func (fixture projectFixture) imagesDirectory() string {
	return filepath.Join(fixture.root, filepath.FromSlash(imagesDirectoryName))
}

func (fixture projectFixture) reportPath() string {
	return filepath.Join(fixture.root, reportFileName)
}

func (fixture projectFixture) writeArticle(testInstance *testing.T, relativePath string, content string) string {
	testInstance.Helper()
	articlePath := filepath.Join(fixture.articlesDirectory(), filepath.FromSlash(relativePath))
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(articlePath), fixtureDirectoryPermissions))
	require.NoError(testInstance, os.WriteFile(articlePath, []byte(content), fixtureFilePermissions))
	return articlePath
}

func (fixture projectFixture) writeImage(testInstance *testing.T, relativePath string, content string) {
	testInstance.Helper()
	imagePath := filepath.Join(fixture.imagesDirectory(), filepath.FromSlash(relativePath))
	require.NoError(testInstance, os.MkdirAll(filepath.Dir(imagePath), fixtureDirectoryPermissions))
	require.NoError(testInstance, os.WriteFile(imagePath, []byte(content), fixtureFilePermissions))
}

// fixtureFileSystem reports the fixture root as the working directory.
type fixtureFileSystem struct {
	filesystem.OSFileSystem
	workingDirectory string
}

func (fileSystem fixtureFileSystem) Getwd() (string, error) {
	return fileSystem.workingDirectory, nil
}

// statFailingFileSystem fails every stat with the configured error.
type statFailingFileSystem struct {
	filesystem.OSFileSystem
	statError error
}

func (fileSystem statFailingFileSystem) Stat(path string) (fs.FileInfo, error) {
	return nil, fileSystem.statError
}

// writeFailingFileSystem refuses to write any file.
type writeFailingFileSystem struct {
	fixtureFileSystem
}

func (fileSystem writeFailingFileSystem) WriteFile(path string, data []byte, permissions fs.FileMode) error {
	return errors.New("read-only filesystem")
}

// getwdFailingFileSystem cannot resolve the working directory.
type getwdFailingFileSystem struct {
	filesystem.OSFileSystem
	getwdError error
}

func (fileSystem getwdFailingFileSystem) Getwd() (string, error) {
	return "", fileSystem.getwdError
}
