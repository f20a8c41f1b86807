package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := NewFileStore(path)
	ctx := context.Background()

	type doc struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	require.NoError(t, s.Set(ctx, Key("doc"), doc{Name: "alpha", Count: 3}))

	var got doc
	ok, err := s.Get(ctx, Key("doc"), &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, doc{Name: "alpha", Count: 3}, got)

	// Values survive a reload from disk.
	reloaded := NewFileStore(path)
	got = doc{}
	ok, err = reloaded.Get(ctx, Key("doc"), &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "alpha", got.Name)
}

func TestFileStore_AbsentKey(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "store.json"))

	var dest []string
	ok, err := s.Get(context.Background(), Key("missing"), &dest)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CorruptFileReadsAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{not json"), 0o644))

	s := NewFileStore(path)
	var dest []string
	ok, err := s.Get(context.Background(), Key("anything"), &dest)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_CorruptValueSurfacesError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"tq:quizzes": "not-a-list"}`), 0o644))

	s := NewFileStore(path)
	var dest []string
	_, err := s.Get(context.Background(), "tq:quizzes", &dest)
	assert.Error(t, err)
}

func TestFileStore_Remove(t *testing.T) {
	path := filepath.Join(t.TempDir(), "store.json")
	s := NewFileStore(path)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, Key("doc"), "value"))
	require.NoError(t, s.Remove(ctx, Key("doc")))

	var dest string
	ok, err := s.Get(ctx, Key("doc"), &dest)
	assert.NoError(t, err)
	assert.False(t, ok)

	// Removing an absent key is a no-op.
	assert.NoError(t, s.Remove(ctx, Key("doc")))
}
