package util

import (
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewULID generates a new ULID string.
// Uniqueness is probabilistic, not guaranteed; a collision is accepted
// as an unhandled edge case. A fresh entropy source per call keeps the
// function dependency-free for callers that want to stub it in tests.
func NewULID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
