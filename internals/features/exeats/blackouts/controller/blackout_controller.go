package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/features/exeats/blackouts/dto"
	"exeat_backend/internals/features/exeats/blackouts/service"
	helper "exeat_backend/internals/helpers"
	"exeat_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type BlackoutController struct {
	Svc *service.BlackoutService
}

func NewBlackoutController(svc *service.BlackoutService) *BlackoutController {
	return &BlackoutController{Svc: svc}
}

// 🟢 POST /api/superadmin/blackout-dates
func (ctrl *BlackoutController) Create(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.CreateBlackoutRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, err := dbtime.ParseDate(req.StartDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD")
	}
	end, err := dbtime.ParseDate(req.EndDate)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD")
	}

	p, err := ctrl.Svc.Create(c.UserContext(), adminID, req.Reason, start, end)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Blackout period created", dto.ToBlackoutResponse(p))
}

// 🟢 GET /api/superadmin/blackout-dates
func (ctrl *BlackoutController) ListAll(c *fiber.Ctx) error {
	rows, err := ctrl.Svc.ListAll(c.UserContext())
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", dto.ToBlackoutResponseList(rows), len(rows))
}

// 🟢 DELETE /api/superadmin/blackout-dates/:id
func (ctrl *BlackoutController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	if err := ctrl.Svc.Delete(c.UserContext(), id); err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonDeleted(c, "Blackout date deleted successfully.", fiber.Map{"id": id})
}

// 🟢 GET /api/users/blackout-dates  (periode yang belum berakhir)
func (ctrl *BlackoutController) ListActive(c *fiber.Ctx) error {
	var asOf = ctrl.Svc.Now()
	if q := c.Query("asOf"); q != "" {
		t, err := dbtime.ParseDate(q)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid asOf, expected YYYY-MM-DD")
		}
		asOf = t
	}
	rows, err := ctrl.Svc.ListActive(c.UserContext(), asOf)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", dto.ToBlackoutResponseList(rows), len(rows))
}
