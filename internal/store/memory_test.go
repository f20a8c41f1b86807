package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, Key("numbers"), []int{1, 2, 3}))

	var got []int
	ok, err := s.Get(ctx, Key("numbers"), &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, got)

	require.NoError(t, s.Remove(ctx, Key("numbers")))
	ok, err = s.Get(ctx, Key("numbers"), &got)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStore_CorruptValueSurfacesError(t *testing.T) {
	s := NewMemoryStore()
	s.SetRaw(Key("broken"), []byte("}{"))

	var got []int
	_, err := s.Get(context.Background(), Key("broken"), &got)
	assert.Error(t, err)
}

func TestKey(t *testing.T) {
	assert.Equal(t, "tq:quizzes", KeyQuizzes)
	assert.Equal(t, "tq:a:b", Key("a", "b"))
}
