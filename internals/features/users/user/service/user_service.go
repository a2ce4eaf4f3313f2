package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"exeat_backend/internals/constants"
	authRepo "exeat_backend/internals/features/users/auth/repository"
	authService "exeat_backend/internals/features/users/auth/service"
	"exeat_backend/internals/features/users/user/model"
	userRepo "exeat_backend/internals/features/users/user/repository"
	helper "exeat_backend/internals/helpers"
	"exeat_backend/internals/helpers/apperror"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	MatricNo *string
}

/* ===================== SELF ===================== */

func (s *UserService) UpdateName(ctx context.Context, userID uuid.UUID, name string) (*model.UserModel, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperror.Validation("Name is required.")
	}
	db := s.DB.WithContext(ctx)
	ok, err := userRepo.UpdateName(db, userID, name)
	if err != nil {
		return nil, apperror.Internal(err, "failed to update name")
	}
	if !ok {
		return nil, apperror.NotFound("User not found.")
	}
	return s.load(db, userID)
}

func (s *UserService) ChangePassword(ctx context.Context, userID uuid.UUID, current, next string) error {
	if current == "" || next == "" {
		return apperror.Validation("Both current and new passwords are required.")
	}
	if len(next) < authService.MinPasswordLength {
		return apperror.Validation("New password must be at least %d characters long.", authService.MinPasswordLength)
	}

	db := s.DB.WithContext(ctx)
	user, err := s.load(db, userID)
	if err != nil {
		return err
	}
	if !authService.CheckPassword(user.Password, current) {
		return apperror.Validation("Incorrect current password.")
	}
	hashed, err := authService.HashPassword(next)
	if err != nil {
		return apperror.Internal(err, "failed to hash password")
	}
	if err := authRepo.UpdateUserPassword(db, userID, hashed); err != nil {
		return apperror.Internal(err, "failed to update password")
	}
	return nil
}

/* ===================== SUPER ADMIN ===================== */

func (s *UserService) List(ctx context.Context) ([]model.UserModel, error) {
	users, err := userRepo.ListNewestFirst(s.DB.WithContext(ctx))
	if err != nil {
		return nil, apperror.Internal(err, "failed to list users")
	}
	return users, nil
}

func (s *UserService) Create(ctx context.Context, in CreateUserInput) (*model.UserModel, error) {
	role := constants.RoleStudent
	if strings.TrimSpace(in.Role) != "" {
		r, err := constants.ParseRole(in.Role)
		if err != nil {
			return nil, apperror.Validation("Invalid role specified.")
		}
		role = r
	}

	db := s.DB.WithContext(ctx)
	exists, err := authRepo.EmailExists(db, in.Email)
	if err != nil {
		return nil, apperror.Internal(err, "failed to check email")
	}
	if exists {
		return nil, apperror.Validation("Email already in use")
	}

	hashed, err := authService.HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Internal(err, "failed to hash password")
	}
	user := &model.UserModel{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Password: hashed,
		Role:     role,
		MatricNo: in.MatricNo,
	}
	if user.MatricNo != nil && strings.TrimSpace(*user.MatricNo) == "" {
		user.MatricNo = nil
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, apperror.Validation("Email already in use")
		}
		return nil, apperror.Internal(err, "failed to create user")
	}
	return user, nil
}

func (s *UserService) UpdateRole(ctx context.Context, userID uuid.UUID, rawRole string) (*model.UserModel, error) {
	role, err := constants.ParseRole(rawRole)
	if err != nil {
		return nil, apperror.Validation("Invalid role specified.")
	}
	db := s.DB.WithContext(ctx)
	ok, err := userRepo.UpdateRole(db, userID, role)
	if err != nil {
		return nil, apperror.Internal(err, "failed to update role")
	}
	if !ok {
		return nil, apperror.NotFound("User not found.")
	}
	return s.load(db, userID)
}

func (s *UserService) load(db *gorm.DB, id uuid.UUID) (*model.UserModel, error) {
	user, err := authRepo.FindUserByID(db, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("User not found.")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to load user")
	}
	return user, nil
}
