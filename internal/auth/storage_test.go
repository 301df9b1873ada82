package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorage_SetGetRemove(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "session")
	s, err := NewFileStorage(dir)
	require.NoError(t, err)

	_, ok, err := s.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("user", `{"id":"1"}`))
	v, ok, err := s.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"id":"1"}`, v)

	require.NoError(t, s.Set("user", `{"id":"2"}`))
	v, _, _ = s.Get("user")
	assert.Equal(t, `{"id":"2"}`, v)

	require.NoError(t, s.Remove("user"))
	_, ok, err = s.Get("user")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Remove("user"), "removing an absent key is fine")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "no temporary files left behind")
}

func TestFileStorage_SharedAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	a, err := NewFileStorage(dir)
	require.NoError(t, err)
	b, err := NewFileStorage(dir)
	require.NoError(t, err)

	require.NoError(t, a.Set("user", "v"))
	v, ok, err := b.Get("user")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", v)
}

func TestNewFileStorage_EmptyDir(t *testing.T) {
	_, err := NewFileStorage("")
	assert.Error(t, err)
}

func TestHolder_WithFileStorage(t *testing.T) {
	s, err := NewFileStorage(t.TempDir())
	require.NoError(t, err)

	h := NewHolder(s)
	user, err := h.Signup(t.Context(), "jo@example.com", "x", "admin")
	require.NoError(t, err)

	current, ok := NewHolder(s).Current()
	require.True(t, ok)
	assert.Equal(t, user, current)
}
