package repository

import (
	"context"
	"strings"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/store"
)

// userRepository persists accounts and the current-session pointer as
// two JSON documents.
type userRepository struct {
	storage domain.Storage
}

// NewUserRepository creates a user repository over the given storage.
func NewUserRepository(storage domain.Storage) domain.UserRepository {
	return &userRepository{storage: storage}
}

// ListAll returns accounts in registration order. A missing or corrupt
// document reads as an empty collection.
func (r *userRepository) ListAll(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	ok, err := r.storage.Get(ctx, store.KeyUsers, &users)
	if err != nil || !ok {
		return []domain.User{}, nil
	}
	return users, nil
}

// FindByEmail matches emails case-insensitively and returns (nil, nil)
// when no account matches.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	users, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, nil
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	users, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	updated := append(users, *user)
	if err := r.storage.Set(ctx, store.KeyUsers, updated); err != nil {
		return domain.NewInternalError("failed to persist user collection", err)
	}
	return nil
}

// Current returns the logged-in user pointer, or (nil, nil) when
// logged out or the pointer is unreadable.
func (r *userRepository) Current(ctx context.Context) (*domain.AuthUser, error) {
	var user domain.AuthUser
	ok, err := r.storage.Get(ctx, store.KeyCurrentUser, &user)
	if err != nil || !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) SetCurrent(ctx context.Context, user *domain.AuthUser) error {
	if err := r.storage.Set(ctx, store.KeyCurrentUser, user); err != nil {
		return domain.NewInternalError("failed to persist current user", err)
	}
	return nil
}

func (r *userRepository) ClearCurrent(ctx context.Context) error {
	if err := r.storage.Remove(ctx, store.KeyCurrentUser); err != nil {
		return domain.NewInternalError("failed to clear current user", err)
	}
	return nil
}
