package dto

import "trivia-hub/internal/domain"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func NewUserResponse(u *domain.AuthUser) UserResponse {
	return UserResponse{ID: u.ID, Name: u.Name, Email: u.Email}
}
