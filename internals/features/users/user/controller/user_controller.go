package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/features/users/user/dto"
	"exeat_backend/internals/features/users/user/service"
	helper "exeat_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	Svc *service.UserService
}

func NewUserController(svc *service.UserService) *UserController {
	return &UserController{Svc: svc}
}

/* ===================== PROFILE (self) ===================== */

// PUT /api/users/profile/name
func (uc *UserController) UpdateName(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateNameRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	user, err := uc.Svc.UpdateName(c.UserContext(), userID, req.Name)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Name updated", dto.ToUserResponse(user))
}

// PUT /api/users/profile/password
func (uc *UserController) ChangePassword(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.ChangePasswordRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := uc.Svc.ChangePassword(c.UserContext(), userID, req.CurrentPassword, req.NewPassword); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Password updated successfully.", nil)
}

/* ===================== SUPER ADMIN ===================== */

// GET /api/superadmin/users
func (uc *UserController) List(c *fiber.Ctx) error {
	users, err := uc.Svc.List(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "Users fetched successfully", dto.ToUserResponseList(users), len(users))
}

// POST /api/superadmin/users
func (uc *UserController) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	user, err := uc.Svc.Create(c.UserContext(), service.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
		MatricNo: req.MatricNo,
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "User created", dto.ToUserResponse(user))
}

// PUT /api/superadmin/users/:id/role
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request format")
	}
	user, err := uc.Svc.UpdateRole(c.UserContext(), id, req.Role)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Role updated", dto.ToUserResponse(user))
}
