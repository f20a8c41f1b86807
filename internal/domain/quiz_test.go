package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDifficulty(t *testing.T) {
	d, err := ParseDifficulty(" Easy ")
	require.NoError(t, err)
	assert.Equal(t, DifficultyEasy, d)

	_, err = ParseDifficulty("extreme")
	assert.True(t, IsCode(err, ErrInvalidInput))
}

func TestCategoryNameByID(t *testing.T) {
	assert.Equal(t, "General Knowledge", CategoryNameByID(9))
	assert.Equal(t, "Cartoon & Animations", CategoryNameByID(32))
	assert.Equal(t, "Category 999", CategoryNameByID(999))
}

func TestSeedCreator(t *testing.T) {
	assert.Equal(t, UserRef{ID: "seed", Name: "Seed"}, SeedCreator())
}

func TestIsCode(t *testing.T) {
	err := NewQuizNotFoundError("abc")
	assert.True(t, IsCode(err, ErrQuizNotFound))
	assert.False(t, IsCode(err, ErrNotFound))
	assert.False(t, IsCode(assert.AnError, ErrQuizNotFound))
}
