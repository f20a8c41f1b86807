package store

import "strings"

const keyPrefix = "tq"

// Storage keys for the persisted application state. One JSON document
// per concern, mirroring the original localStorage layout.
var (
	KeyUsers       = Key("users")
	KeyCurrentUser = Key("current_user")
	KeyQuizzes     = Key("quizzes")
	KeyResults     = Key("results")
	KeySeedDone    = Key("quizzes_seed_done")
)

// Key builds a namespaced storage key from its parts.
func Key(parts ...string) string {
	return strings.Join(append([]string{keyPrefix}, parts...), ":")
}
