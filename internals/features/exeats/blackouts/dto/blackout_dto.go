package dto

import (
	"time"

	"github.com/google/uuid"

	"exeat_backend/internals/features/exeats/blackouts/model"
	"exeat_backend/internals/helpers/dbtime"
)

// ================== REQUEST ==================

type CreateBlackoutRequest struct {
	Reason    string `json:"reason"    validate:"required,max=500"`
	StartDate string `json:"startDate" validate:"required"`
	EndDate   string `json:"endDate"   validate:"required"`
}

// ================== RESPONSE ==================

type CreatorSummary struct {
	Name string `json:"name"`
}

type BlackoutResponse struct {
	ID          uuid.UUID       `json:"id"`
	Reason      string          `json:"reason"`
	StartDate   string          `json:"startDate"`
	EndDate     string          `json:"endDate"`
	CreatedByID uuid.UUID       `json:"createdById"`
	CreatedAt   time.Time       `json:"createdAt"`
	CreatedBy   *CreatorSummary `json:"createdBy,omitempty"`
}

func ToBlackoutResponse(m *model.BlackoutPeriodModel) BlackoutResponse {
	out := BlackoutResponse{
		ID:          m.BlackoutPeriodID,
		Reason:      m.BlackoutPeriodReason,
		StartDate:   dbtime.FormatDate(m.BlackoutPeriodStartDate),
		EndDate:     dbtime.FormatDate(m.BlackoutPeriodEndDate),
		CreatedByID: m.BlackoutPeriodCreatedByID,
		CreatedAt:   m.BlackoutPeriodCreatedAt,
	}
	if m.CreatedBy != nil {
		out.CreatedBy = &CreatorSummary{Name: m.CreatedBy.Name}
	}
	return out
}

func ToBlackoutResponseList(rows []model.BlackoutPeriodModel) []BlackoutResponse {
	out := make([]BlackoutResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToBlackoutResponse(&rows[i]))
	}
	return out
}
