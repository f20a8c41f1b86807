package domain

import "context"

// Storage is the persistence port: a flat namespace of JSON documents
// keyed by string. All application state lives behind it.
type Storage interface {
	// Get unmarshals the document stored at key into dest and reports
	// whether the key was present. A stored value that cannot be
	// unmarshaled into dest is returned as an error; callers decide
	// whether that degrades to an empty default.
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}

// QuestionSource fetches normalized questions from the external
// trivia question provider.
type QuestionSource interface {
	Fetch(ctx context.Context, amount, categoryID int, difficulty Difficulty) ([]Question, error)
}

// QuizRepository persists the quiz collection, newest first.
type QuizRepository interface {
	ListAll(ctx context.Context) ([]Quiz, error)
	GetByID(ctx context.Context, id string) (*Quiz, error)
	Insert(ctx context.Context, quiz *Quiz) error
}

// UserRepository persists accounts and the current-session pointer.
// FindByEmail and Current return (nil, nil) when nothing matches.
type UserRepository interface {
	ListAll(ctx context.Context) ([]User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Current(ctx context.Context) (*AuthUser, error)
	SetCurrent(ctx context.Context, user *AuthUser) error
	ClearCurrent(ctx context.Context) error
}

// AttemptRepository persists quiz attempts, newest first.
type AttemptRepository interface {
	ListAll(ctx context.Context) ([]Attempt, error)
	ListByUser(ctx context.Context, userID string) ([]Attempt, error)
	Insert(ctx context.Context, attempt *Attempt) error
}
