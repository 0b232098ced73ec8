// ABOUTME: Tests for the credential manager
// ABOUTME: Verifies the best-effort contract: no failure ever escapes

package credentials

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerWithoutDirIsNoop(t *testing.T) {
	m := NewManager("")

	_, ok := m.TryRetrieve()
	assert.False(t, ok)
	// Must not panic or error
	m.TryStore("a@b.c", "pw")
}

func TestFileVaultRoundTrip(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	m.TryStore("ivan@example.com", "secret")

	saved, ok := m.TryRetrieve()
	require.True(t, ok)
	assert.Equal(t, "ivan@example.com", saved.ID)
	assert.Equal(t, "secret", saved.Password)
}

func TestFileVaultMissingFileYieldsNothing(t *testing.T) {
	m := NewManager(t.TempDir())

	_, ok := m.TryRetrieve()
	assert.False(t, ok)
}

func TestFileVaultCorruptFileYieldsNothing(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "credentials.json"), []byte("not json"), 0600))

	m := NewManager(dir)

	_, ok := m.TryRetrieve()
	assert.False(t, ok)
}

func TestFileVaultUnwritableDirIsSilent(t *testing.T) {
	m := NewManager(filepath.Join(string(os.PathSeparator), "proc", "no-such-dir"))

	// Failure must be invisible to the caller
	m.TryStore("a@b.c", "pw")

	_, ok := m.TryRetrieve()
	assert.False(t, ok)
}

func TestFileVaultFileMode(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	m.TryStore("ivan@example.com", "secret")

	info, err := os.Stat(filepath.Join(dir, "credentials.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestFileVaultOverwritesPrevious(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(dir)

	m.TryStore("old@example.com", "old")
	m.TryStore("new@example.com", "new")

	saved, ok := m.TryRetrieve()
	require.True(t, ok)
	assert.Equal(t, "new@example.com", saved.ID)
	assert.Equal(t, "new", saved.Password)
}
