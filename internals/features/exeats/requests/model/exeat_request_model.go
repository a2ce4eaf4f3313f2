// file: internals/features/exeats/requests/model/exeat_request_model.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	userModel "exeat_backend/internals/features/users/user/model"
)

/* ===================== Enums (Go-side) ===================== */

type ExeatStatus string

const (
	StatusPending      ExeatStatus = "PENDING"
	StatusApproved     ExeatStatus = "APPROVED"
	StatusRejected     ExeatStatus = "REJECTED"
	StatusAwaitingInfo ExeatStatus = "AWAITING_INFO"
	StatusCanceled     ExeatStatus = "CANCELED"
)

var AllStatuses = []ExeatStatus{StatusPending, StatusApproved, StatusRejected, StatusAwaitingInfo, StatusCanceled}

// ParseStatus is case-insensitive; ok=false for unknown values.
func ParseStatus(s string) (ExeatStatus, bool) {
	st := ExeatStatus(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range AllStatuses {
		if v == st {
			return st, true
		}
	}
	return "", false
}

type ExeatType string

const (
	TypeSingleDay ExeatType = "SINGLE_DAY"
	TypeOvernight ExeatType = "OVERNIGHT"
	TypeWeekend   ExeatType = "WEEKEND"
	TypeEmergency ExeatType = "EMERGENCY"
)

var AllTypes = []ExeatType{TypeSingleDay, TypeOvernight, TypeWeekend, TypeEmergency}

func ParseType(s string) (ExeatType, bool) {
	t := ExeatType(strings.ToUpper(strings.TrimSpace(s)))
	for _, v := range AllTypes {
		if v == t {
			return t, true
		}
	}
	return "", false
}

/* ===================== Model ===================== */

type ExeatRequestModel struct {
	ExeatRequestID        uuid.UUID   `gorm:"type:uuid;primaryKey;column:exeat_request_id"                           json:"exeat_request_id"`
	ExeatRequestStudentID uuid.UUID   `gorm:"type:uuid;not null;index;column:exeat_request_student_id"              json:"exeat_request_student_id"`
	ExeatRequestReason    string      `gorm:"type:text;not null;column:exeat_request_reason"                         json:"exeat_request_reason"`
	ExeatRequestDest      *string     `gorm:"type:text;column:exeat_request_destination"                             json:"exeat_request_destination,omitempty"`
	ExeatRequestType      ExeatType   `gorm:"type:varchar(16);not null;default:'SINGLE_DAY';column:exeat_request_type" json:"exeat_request_type"`
	ExeatRequestStartDate time.Time   `gorm:"not null;column:exeat_request_start_date"                               json:"exeat_request_start_date"`
	ExeatRequestEndDate   time.Time   `gorm:"not null;column:exeat_request_end_date"                                 json:"exeat_request_end_date"`
	ExeatRequestStatus    ExeatStatus `gorm:"type:varchar(16);not null;default:'PENDING';index;column:exeat_request_status" json:"exeat_request_status"`

	// Keputusan admin: actioned_by_id & actioned_at selalu diisi bersamaan
	ExeatRequestAdminComment *string    `gorm:"type:text;column:exeat_request_admin_comment"       json:"exeat_request_admin_comment,omitempty"`
	ExeatRequestActionedByID *uuid.UUID `gorm:"type:uuid;column:exeat_request_actioned_by_id"     json:"exeat_request_actioned_by_id,omitempty"`
	ExeatRequestActionedAt   *time.Time `gorm:"column:exeat_request_actioned_at"                  json:"exeat_request_actioned_at,omitempty"`

	ExeatRequestCreatedAt time.Time `gorm:"autoCreateTime;index;column:exeat_request_created_at" json:"exeat_request_created_at"`
	ExeatRequestUpdatedAt time.Time `gorm:"autoUpdateTime;column:exeat_request_updated_at"       json:"exeat_request_updated_at"`

	// Relations (read-only)
	Student    *userModel.UserModel `gorm:"foreignKey:ExeatRequestStudentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	ActionedBy *userModel.UserModel `gorm:"foreignKey:ExeatRequestActionedByID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
}

func (ExeatRequestModel) TableName() string { return "exeat_requests" }

func (m *ExeatRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExeatRequestID == uuid.Nil {
		m.ExeatRequestID = uuid.New()
	}
	if m.ExeatRequestStatus == "" {
		m.ExeatRequestStatus = StatusPending
	}
	if m.ExeatRequestType == "" {
		m.ExeatRequestType = TypeSingleDay
	}
	return nil
}
