package dto

import (
	"time"

	"github.com/google/uuid"

	"exeat_backend/internals/features/exeats/requests/model"
	"exeat_backend/internals/helpers/dbtime"
)

// ================== REQUEST ==================

type CreateExeatRequest struct {
	Reason      string  `json:"reason"      validate:"required,max=1000"`
	Destination *string `json:"destination" validate:"omitempty,max=255"`
	StartDate   string  `json:"startDate"   validate:"required"`
	EndDate     string  `json:"endDate"     validate:"required"`
	Type        string  `json:"type"        validate:"omitempty,oneof=SINGLE_DAY OVERNIGHT WEEKEND EMERGENCY single_day overnight weekend emergency"`
}

type DecisionRequest struct {
	Action  string  `json:"action"  validate:"required"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// ================== RESPONSE ==================

type PersonSummary struct {
	Name     string  `json:"name"`
	Email    string  `json:"email,omitempty"`
	MatricNo *string `json:"matricNo,omitempty"`
}

type ExeatRequestResponse struct {
	ID           uuid.UUID         `json:"id"`
	StudentID    uuid.UUID         `json:"studentId"`
	Reason       string            `json:"reason"`
	Destination  *string           `json:"destination"`
	Type         model.ExeatType   `json:"type"`
	StartDate    string            `json:"startDate"`
	EndDate      string            `json:"endDate"`
	Status       model.ExeatStatus `json:"status"`
	AdminComment *string           `json:"adminComment"`
	ActionedByID *uuid.UUID        `json:"actionedById"`
	ActionedAt   *time.Time        `json:"actionedAt"`
	CreatedAt    time.Time         `json:"createdAt"`

	Student    *PersonSummary `json:"student,omitempty"`
	ActionedBy *PersonSummary `json:"actionedBy,omitempty"`
}

func ToExeatRequestResponse(m *model.ExeatRequestModel) ExeatRequestResponse {
	out := ExeatRequestResponse{
		ID:           m.ExeatRequestID,
		StudentID:    m.ExeatRequestStudentID,
		Reason:       m.ExeatRequestReason,
		Destination:  m.ExeatRequestDest,
		Type:         m.ExeatRequestType,
		StartDate:    dbtime.FormatDate(m.ExeatRequestStartDate),
		EndDate:      dbtime.FormatDate(m.ExeatRequestEndDate),
		Status:       m.ExeatRequestStatus,
		AdminComment: m.ExeatRequestAdminComment,
		ActionedByID: m.ExeatRequestActionedByID,
		ActionedAt:   m.ExeatRequestActionedAt,
		CreatedAt:    m.ExeatRequestCreatedAt,
	}
	if m.Student != nil {
		out.Student = &PersonSummary{Name: m.Student.Name, Email: m.Student.Email, MatricNo: m.Student.MatricNo}
	}
	if m.ActionedBy != nil {
		out.ActionedBy = &PersonSummary{Name: m.ActionedBy.Name}
	}
	return out
}

func ToExeatRequestResponseList(rows []model.ExeatRequestModel) []ExeatRequestResponse {
	out := make([]ExeatRequestResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToExeatRequestResponse(&rows[i]))
	}
	return out
}
