package service

import (
	"context"

	"trivia-hub/internal/domain"
	"trivia-hub/internal/util"
)

// AuthService defines the interface for account and session
// operations. Passwords are compared in plaintext; this application
// stores everything in local storage and is explicitly not a security
// design.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*domain.AuthUser, error)
	Login(ctx context.Context, email, password string) (*domain.AuthUser, error)
	Logout(ctx context.Context) error
	Current(ctx context.Context) (*domain.AuthUser, error)
}

type authService struct {
	users domain.UserRepository
	newID func() string
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(users domain.UserRepository) AuthService {
	return &authService{
		users: users,
		newID: util.NewULID,
	}
}

// Register creates an account and logs it in. Emails are unique
// case-insensitively.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.AuthUser, error) {
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.NewDuplicateEmailError(email)
	}

	user := domain.User{
		ID:       s.newID(),
		Name:     name,
		Email:    email,
		Password: password,
	}
	if err := s.users.Create(ctx, &user); err != nil {
		return nil, err
	}

	authUser := user.Auth()
	if err := s.users.SetCurrent(ctx, &authUser); err != nil {
		return nil, err
	}
	return &authUser, nil
}

// Login verifies the credentials and sets the session pointer. The
// same error covers unknown email and wrong password.
func (s *authService) Login(ctx context.Context, email, password string) (*domain.AuthUser, error) {
	found, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if found == nil || found.Password != password {
		return nil, domain.NewInvalidCredentialsError()
	}

	authUser := found.Auth()
	if err := s.users.SetCurrent(ctx, &authUser); err != nil {
		return nil, err
	}
	return &authUser, nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.users.ClearCurrent(ctx)
}

func (s *authService) Current(ctx context.Context) (*domain.AuthUser, error) {
	return s.users.Current(ctx)
}
