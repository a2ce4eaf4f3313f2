package dto

import (
	"time"

	"github.com/google/uuid"

	"exeat_backend/internals/constants"
	uModel "exeat_backend/internals/features/users/user/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateUserRequest dipakai super-admin; role kosong = STUDENT
type CreateUserRequest struct {
	Name     string  `json:"name"     validate:"required,max=120"`
	Email    string  `json:"email"    validate:"required,email,max=255"`
	Password string  `json:"password" validate:"required,min=6"`
	Role     string  `json:"role"     validate:"omitempty"`
	MatricNo *string `json:"matricNo" validate:"omitempty,max=50"`
}

type UpdateRoleRequest struct {
	Role string `json:"role"`
}

type UpdateNameRequest struct {
	Name string `json:"name"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID      `json:"id"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	MatricNo  *string        `json:"matricNo,omitempty"`
	Role      constants.Role `json:"role"`
	CreatedAt time.Time      `json:"createdAt"`
}

func ToUserResponse(u *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		MatricNo:  u.MatricNo,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func ToUserResponseList(users []uModel.UserModel) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out
}
