package dto

import "github.com/etudeproject/etude/internal/app/models"

// SignupRequest represents user registration data. The password is
// accepted in plaintext here only; it is hashed before storage.
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents public user information. The password digest
// never appears here.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsActive bool   `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}

// NewUserResponse maps a stored user to its response shape
func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:       user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
		IsActive: user.IsActive,
		IsAdmin:  user.IsAdmin,
	}
}
