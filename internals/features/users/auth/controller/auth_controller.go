package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/features/users/auth/dto"
	"exeat_backend/internals/features/users/auth/service"
	helper "exeat_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	Svc *service.AuthService
}

func NewAuthController(svc *service.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

// 🔓 POST /api/auth/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	res, err := ac.Svc.Register(c.UserContext(), service.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		MatricNo: req.MatricNo,
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	setAccessCookie(c, res)
	return helper.JsonCreated(c, "Registered successfully", dto.ToAuthResponse(res))
}

// 🔓 POST /api/auth/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid credentials")
	}

	res, err := ac.Svc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return helper.FromError(c, err)
	}
	setAccessCookie(c, res)
	return helper.JsonOK(c, "Login successful", dto.ToAuthResponse(res))
}

// 🔒 POST /api/auth/logout
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	raw, _ := c.Locals(helper.LocRawToken).(string)
	if strings.TrimSpace(raw) == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Authorization token is required.")
	}
	if err := ac.Svc.Logout(c.UserContext(), raw); err != nil {
		return helper.FromError(c, err)
	}
	c.ClearCookie("access_token")
	return helper.JsonOK(c, "Logged out", nil)
}

func setAccessCookie(c *fiber.Ctx, res *service.AuthResult) {
	c.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    res.Token,
		Expires:  res.ExpiresAt,
		HTTPOnly: true,
		Secure:   c.Protocol() == "https",
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
	})
}
