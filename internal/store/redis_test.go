package store

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStore_Get(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectGet(KeyQuizzes).SetVal(`["a","b"]`)

		var got []string
		ok, err := s.Get(ctx, KeyQuizzes, &got)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, []string{"a", "b"}, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Absent", func(t *testing.T) {
		mock.ExpectGet(KeyQuizzes).SetErr(redis.Nil)

		var got []string
		ok, err := s.Get(ctx, KeyQuizzes, &got)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("RedisError", func(t *testing.T) {
		redisErr := errors.New("some redis error")
		mock.ExpectGet(KeyQuizzes).SetErr(redisErr)

		var got []string
		_, err := s.Get(ctx, KeyQuizzes, &got)
		assert.ErrorIs(t, err, redisErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("CorruptValue", func(t *testing.T) {
		mock.ExpectGet(KeyQuizzes).SetVal("not json")

		var got []string
		_, err := s.Get(ctx, KeyQuizzes, &got)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisStore_SetAndRemove(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectSet(KeySeedDone, []byte("true"), 0).SetVal("OK")
	assert.NoError(t, s.Set(ctx, KeySeedDone, true))

	mock.ExpectDel(KeySeedDone).SetVal(1)
	assert.NoError(t, s.Remove(ctx, KeySeedDone))

	assert.NoError(t, mock.ExpectationsWereMet())
}
