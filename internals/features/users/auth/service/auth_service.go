package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"exeat_backend/internals/configs"
	"exeat_backend/internals/constants"
	authRepo "exeat_backend/internals/features/users/auth/repository"
	userModel "exeat_backend/internals/features/users/user/model"
	helper "exeat_backend/internals/helpers"
	"exeat_backend/internals/helpers/apperror"
	helpersAuth "exeat_backend/internals/helpers/auth"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	MatricNo *string
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      *userModel.UserModel
}

type AuthService struct {
	DB        *gorm.DB
	Tokens    *TokenService
	Blacklist helpersAuth.Blacklist
}

func NewAuthService(db *gorm.DB, tokens *TokenService, bl helpersAuth.Blacklist) *AuthService {
	return &AuthService{DB: db, Tokens: tokens, Blacklist: bl}
}

// Register always creates a STUDENT; other roles are granted by a super-admin.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	db := s.DB.WithContext(ctx)

	exists, err := authRepo.EmailExists(db, in.Email)
	if err != nil {
		return nil, apperror.Internal(err, "failed to check email")
	}
	if exists {
		return nil, apperror.Validation("Email already in use")
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return nil, apperror.Internal(err, "failed to hash password")
	}

	user := &userModel.UserModel{
		Name:     strings.TrimSpace(in.Name),
		Email:    in.Email,
		Password: hashed,
		MatricNo: trimOptional(in.MatricNo),
		Role:     constants.RoleStudent,
	}
	if err := authRepo.CreateUser(db, user); err != nil {
		if helper.IsUniqueViolation(err) {
			return nil, apperror.Validation("Email already in use")
		}
		return nil, apperror.Internal(err, "failed to create user")
	}
	return s.issue(user)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := authRepo.FindUserByEmail(s.DB.WithContext(ctx), email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.Validation("Invalid credentials")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to load user")
	}
	if !CheckPassword(user.Password, password) {
		return nil, apperror.Validation("Invalid credentials")
	}
	return s.issue(user)
}

// Logout revokes the raw token until its own expiry. A token that no longer
// parses cannot be used anyway, so it is ignored.
func (s *AuthService) Logout(ctx context.Context, rawToken string) error {
	claims, err := s.Tokens.Parse(rawToken)
	if err != nil {
		return nil
	}
	exp := s.Tokens.Now().Add(s.Tokens.TTL)
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	if err := s.Blacklist.Add(ctx, rawToken, exp); err != nil {
		return apperror.Internal(err, "failed to revoke token")
	}
	configs.Log().Info("token revoked", zap.String("user_id", claims.UserID))
	return nil
}

func (s *AuthService) issue(user *userModel.UserModel) (*AuthResult, error) {
	token, exp, err := s.Tokens.Issue(user)
	if err != nil {
		return nil, apperror.Internal(err, "failed to issue token")
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: user}, nil
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
