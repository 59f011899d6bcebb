package dto

import "github.com/mleow/account-be/internal/models"

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateRequest carries a partial profile update. Empty fields are left
// untouched; a password change requires both password fields.
type UpdateRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Birthdate       string `json:"birthdate"`
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type AuthResponse struct {
	Message string            `json:"message"`
	Token   string            `json:"token"`
	User    models.PublicUser `json:"user"`
}

type UserResponse struct {
	User models.PublicUser `json:"user"`
}

type UpdateResponse struct {
	Message string            `json:"message"`
	User    models.PublicUser `json:"user"`
}
