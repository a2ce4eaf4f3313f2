package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"exeat_backend/internals/features/exeats/requests/dto"
	"exeat_backend/internals/features/exeats/requests/service"
	helper "exeat_backend/internals/helpers"
	"exeat_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type ExeatRequestController struct {
	Svc *service.ExeatRequestService
}

func NewExeatRequestController(svc *service.ExeatRequestService) *ExeatRequestController {
	return &ExeatRequestController{Svc: svc}
}

/* ===================== STUDENT ===================== */

// 🟢 POST /api/requests
func (ctrl *ExeatRequestController) Submit(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}

	var req dto.CreateExeatRequest
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

	created, err := ctrl.Svc.Submit(c.UserContext(), studentID, service.SubmitInput{
		Reason:      req.Reason,
		Destination: req.Destination,
		Type:        req.Type,
		StartDate:   start,
		EndDate:     end,
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonCreated(c, "Exeat request submitted", dto.ToExeatRequestResponse(created))
}

// 🟢 GET /api/requests/my?limit=N
func (ctrl *ExeatRequestController) ListMine(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	limit := c.QueryInt("limit", 0)
	if limit < 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "limit must be a positive number")
	}
	rows, err := ctrl.Svc.ListMine(c.UserContext(), studentID, limit)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", dto.ToExeatRequestResponseList(rows), len(rows))
}

// 🟢 DELETE /api/requests/:id/cancel
func (ctrl *ExeatRequestController) Cancel(c *fiber.Ctx) error {
	studentID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	updated, err := ctrl.Svc.Cancel(c.UserContext(), id, studentID)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Exeat request canceled", dto.ToExeatRequestResponse(updated))
}

/* ===================== ADMIN ===================== */

// 🟢 GET /api/admin/requests?status=&type=&search=
func (ctrl *ExeatRequestController) ListForAdmin(c *fiber.Ctx) error {
	rows, err := ctrl.Svc.ListForAdmin(c.UserContext(), service.AdminQuery{
		Status: c.Query("status"),
		Type:   c.Query("type"),
		Search: c.Query("search"),
	})
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonList(c, "ok", dto.ToExeatRequestResponseList(rows), len(rows))
}

// 🟢 GET /api/admin/requests/:id
func (ctrl *ExeatRequestController) Get(c *fiber.Ctx) error {
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	row, err := ctrl.Svc.Get(c.UserContext(), id)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.ToExeatRequestResponse(row))
}

// 🟢 POST /api/admin/requests/:id/decision
func (ctrl *ExeatRequestController) Decide(c *fiber.Ctx) error {
	adminID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return helper.FromError(c, err)
	}
	id, err := helper.ParseIDParam(c, "id")
	if err != nil {
		return helper.FromError(c, err)
	}
	var req dto.DecisionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	updated, err := ctrl.Svc.Decide(c.UserContext(), id, adminID, req.Action, req.Comment)
	if err != nil {
		return helper.FromError(c, err)
	}
	return helper.JsonUpdated(c, "Decision recorded", dto.ToExeatRequestResponse(updated))
}
