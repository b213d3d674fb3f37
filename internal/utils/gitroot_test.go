package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindRepositoryRoot(t *testing.T) {
	repoRoot := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repoRoot, ".git"), 0755))
	nested := filepath.Join(repoRoot, "MaterialDesignThemes.Wpf", "Themes")
	require.NoError(t, os.MkdirAll(nested, 0755))

	found, err := FindRepositoryRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, repoRoot, found)
}

func TestFindRepositoryRoot_AtRootItself(t *testing.T) {
	repoRoot := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(repoRoot, ".git"), 0755))

	found, err := FindRepositoryRoot(repoRoot)
	require.NoError(t, err)
	assert.Equal(t, repoRoot, found)
}

func TestFindRepositoryRoot_GitFileDoesNotCount(t *testing.T) {
	// A plain .git file (as in submodules) is not the marker the
	// generator looks for.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: elsewhere"), 0644))

	_, err := FindRepositoryRoot(dir)
	require.Error(t, err)
}

func TestFindRepositoryRoot_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := FindRepositoryRoot(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no repository root")
}
