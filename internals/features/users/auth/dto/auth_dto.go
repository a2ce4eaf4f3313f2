package dto

import (
	"time"

	"exeat_backend/internals/features/users/auth/service"
	userDTO "exeat_backend/internals/features/users/user/dto"
)

type RegisterRequest struct {
	Name     string  `json:"name"     validate:"required,max=120"`
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6"`
	MatricNo *string `json:"matricNo" validate:"omitempty,max=50"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expiresAt"`
	User      userDTO.UserResponse `json:"user"`
}

func ToAuthResponse(r *service.AuthResult) AuthResponse {
	return AuthResponse{
		Token:     r.Token,
		ExpiresAt: r.ExpiresAt,
		User:      userDTO.ToUserResponse(r.User),
	}
}
