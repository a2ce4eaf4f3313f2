package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"exeat_backend/internals/configs"
	blackoutModel "exeat_backend/internals/features/exeats/blackouts/model"
	"exeat_backend/internals/features/exeats/requests/model"
	"exeat_backend/internals/features/exeats/requests/repository"
	"exeat_backend/internals/features/home/notifications/email"
	"exeat_backend/internals/helpers/apperror"
	"exeat_backend/internals/helpers/dbtime"
	"exeat_backend/internals/metrics"
)

const defaultRejectComment = "No comment provided."

// Notifier persists in-app notifications.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, message string) error
}

// EmailQueue accepts outbound mail without blocking.
type EmailQueue interface {
	Enqueue(to, subject, html string) bool
}

// BlackoutChecker must answer from the transaction it is given.
type BlackoutChecker interface {
	FindOverlap(tx *gorm.DB, start, end time.Time) (*blackoutModel.BlackoutPeriodModel, error)
}

type Action string

const (
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionRequestInfo Action = "request_info"
)

func ParseAction(s string) (Action, bool) {
	switch a := Action(strings.ToLower(strings.TrimSpace(s))); a {
	case ActionApprove, ActionReject, ActionRequestInfo:
		return a, true
	}
	return "", false
}

type SubmitInput struct {
	Reason      string
	Destination *string
	Type        string
	StartDate   time.Time
	EndDate     time.Time
}

// ExeatRequestService runs the exeat lifecycle. It keeps no state of its own;
// every transition out of PENDING is a single conditional update.
type ExeatRequestService struct {
	DB        *gorm.DB
	Blackouts BlackoutChecker
	Notifier  Notifier
	Emails    EmailQueue
	MailFrom  string
	Now       func() time.Time
}

func NewExeatRequestService(db *gorm.DB, blackouts BlackoutChecker, notifier Notifier, emails EmailQueue) *ExeatRequestService {
	return &ExeatRequestService{
		DB:        db,
		Blackouts: blackouts,
		Notifier:  notifier,
		Emails:    emails,
		MailFrom:  configs.MailFromName,
		Now:       time.Now,
	}
}

/* ===================== SUBMIT ===================== */

func (s *ExeatRequestService) Submit(ctx context.Context, studentID uuid.UUID, in SubmitInput) (*model.ExeatRequestModel, error) {
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		metrics.ExeatSubmissionsRejected.WithLabelValues("validation").Inc()
		return nil, apperror.Validation("Reason is required.")
	}
	if in.StartDate.IsZero() || in.EndDate.IsZero() {
		metrics.ExeatSubmissionsRejected.WithLabelValues("validation").Inc()
		return nil, apperror.Validation("Start date and end date are required.")
	}
	start, end := dbtime.TruncateDay(in.StartDate), dbtime.TruncateDay(in.EndDate)
	if end.Before(start) {
		metrics.ExeatSubmissionsRejected.WithLabelValues("validation").Inc()
		return nil, apperror.Validation("End date cannot be before the start date.")
	}

	typ := model.TypeSingleDay
	if strings.TrimSpace(in.Type) != "" {
		t, ok := model.ParseType(in.Type)
		if !ok {
			metrics.ExeatSubmissionsRejected.WithLabelValues("validation").Inc()
			return nil, apperror.Validation("Invalid exeat type \"%s\".", in.Type)
		}
		typ = t
	}

	req := &model.ExeatRequestModel{
		ExeatRequestStudentID: studentID,
		ExeatRequestReason:    reason,
		ExeatRequestDest:      trimOptional(in.Destination),
		ExeatRequestType:      typ,
		ExeatRequestStartDate: start,
		ExeatRequestEndDate:   end,
		ExeatRequestStatus:    model.StatusPending,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		conflict, err := s.Blackouts.FindOverlap(tx, start, end)
		if err != nil {
			return apperror.Internal(err, "failed to check blackout periods")
		}
		if conflict != nil {
			return apperror.BlackoutConflict(conflict.BlackoutPeriodReason)
		}
		if err := repository.Create(tx, req); err != nil {
			return apperror.Internal(err, "failed to create exeat request")
		}
		return nil
	})
	if err != nil {
		if apperror.KindOf(err) == apperror.KindBlackoutConflict {
			metrics.ExeatSubmissionsRejected.WithLabelValues("blackout").Inc()
		}
		return nil, err
	}
	metrics.ExeatRequestsSubmitted.Inc()

	s.notify(ctx, studentID, fmt.Sprintf("Your exeat request for \"%s\" has been submitted.", reason))
	return req, nil
}

/* ===================== DECIDE ===================== */

func (s *ExeatRequestService) Decide(ctx context.Context, requestID, adminID uuid.UUID, rawAction string, comment *string) (*model.ExeatRequestModel, error) {
	action, ok := ParseAction(rawAction)
	if !ok {
		return nil, apperror.Validation("Invalid action type")
	}

	db := s.DB.WithContext(ctx)
	current, err := repository.FindByIDWithPeople(db, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Request not found.")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to load exeat request")
	}
	if current.ExeatRequestStatus != model.StatusPending {
		metrics.ExeatTransitionConflicts.Inc()
		return nil, apperror.Conflict("This request has already been actioned.")
	}

	var target model.ExeatStatus
	switch action {
	case ActionApprove:
		target = model.StatusApproved
	case ActionReject:
		target = model.StatusRejected
	case ActionRequestInfo:
		target = model.StatusAwaitingInfo
	}

	n, err := repository.ApplyDecision(db, requestID, repository.Decision{
		Status:     target,
		Comment:    trimOptional(comment),
		ActionedBy: adminID,
		ActionedAt: s.Now().UTC(),
	})
	if err != nil {
		return nil, apperror.Internal(err, "failed to update exeat request")
	}
	if n == 0 {
		// lost the race against another transition
		metrics.ExeatTransitionConflicts.Inc()
		return nil, apperror.Conflict("This request has already been actioned.")
	}
	metrics.ExeatTransitions.WithLabelValues(string(target)).Inc()

	updated, err := repository.FindByIDWithPeople(db, requestID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to reload exeat request")
	}

	s.announceDecision(ctx, updated, action)
	return updated, nil
}

func (s *ExeatRequestService) announceDecision(ctx context.Context, r *model.ExeatRequestModel, action Action) {
	reason := r.ExeatRequestReason

	var (
		message string
		subject string
		tmpl    string
	)
	switch action {
	case ActionApprove:
		message = fmt.Sprintf("Your exeat request for \"%s\" has been APPROVED.", reason)
		subject = "Your Exeat Request has been Approved"
		tmpl = email.TemplateApproved
	case ActionReject:
		message = fmt.Sprintf("Your exeat request for \"%s\" has been REJECTED.", reason)
		subject = "Update on Your Exeat Request"
		tmpl = email.TemplateRejected
	case ActionRequestInfo:
		message = fmt.Sprintf("An admin has requested more information on your exeat request for \"%s\".", reason)
	}

	s.notify(ctx, r.ExeatRequestStudentID, message)

	if tmpl == "" || s.Emails == nil {
		return
	}
	if r.Student == nil || strings.TrimSpace(r.Student.Email) == "" {
		configs.Log().Warn("decision email skipped, student has no email",
			zap.String("request_id", r.ExeatRequestID.String()))
		return
	}
	comment := defaultRejectComment
	if r.ExeatRequestAdminComment != nil {
		comment = *r.ExeatRequestAdminComment
	}
	body, err := email.Render(tmpl, email.DecisionData{
		StudentName: r.Student.Name,
		Reason:      reason,
		Comment:     comment,
		From:        s.MailFrom,
	})
	if err != nil {
		configs.Log().Error("render decision email", zap.Error(err))
		return
	}
	s.Emails.Enqueue(r.Student.Email, subject, body)
}

/* ===================== CANCEL ===================== */

// Cancel checks existence first, then ownership, then state.
func (s *ExeatRequestService) Cancel(ctx context.Context, requestID, studentID uuid.UUID) (*model.ExeatRequestModel, error) {
	db := s.DB.WithContext(ctx)
	current, err := repository.FindByID(db, requestID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Request not found.")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to load exeat request")
	}
	if current.ExeatRequestStudentID != studentID {
		return nil, apperror.Forbidden("Forbidden. You can only cancel your own requests.")
	}
	if current.ExeatRequestStatus != model.StatusPending {
		metrics.ExeatTransitionConflicts.Inc()
		return nil, apperror.Conflict("This request has already been processed and can no longer be canceled.")
	}

	n, err := repository.CancelPending(db, requestID, studentID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to cancel exeat request")
	}
	if n == 0 {
		metrics.ExeatTransitionConflicts.Inc()
		return nil, apperror.Conflict("This request has already been processed and can no longer be canceled.")
	}
	metrics.ExeatTransitions.WithLabelValues(string(model.StatusCanceled)).Inc()

	updated, err := repository.FindByID(db, requestID)
	if err != nil {
		return nil, apperror.Internal(err, "failed to reload exeat request")
	}
	return updated, nil
}

/* ===================== READS ===================== */

func (s *ExeatRequestService) ListMine(ctx context.Context, studentID uuid.UUID, limit int) ([]model.ExeatRequestModel, error) {
	rows, err := repository.ListByStudent(s.DB.WithContext(ctx), studentID, limit)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list exeat requests")
	}
	return rows, nil
}

// AdminQuery holds raw query-string filters; unknown status/type values are ignored.
type AdminQuery struct {
	Status string
	Type   string
	Search string
}

func (s *ExeatRequestService) ListForAdmin(ctx context.Context, q AdminQuery) ([]model.ExeatRequestModel, error) {
	var f repository.AdminFilter
	if st, ok := model.ParseStatus(q.Status); ok {
		f.Status = &st
	}
	if t, ok := model.ParseType(q.Type); ok {
		f.Type = &t
	}
	f.Search = q.Search

	rows, err := repository.ListForAdmin(s.DB.WithContext(ctx), f)
	if err != nil {
		return nil, apperror.Internal(err, "failed to list exeat requests")
	}
	return rows, nil
}

func (s *ExeatRequestService) Get(ctx context.Context, id uuid.UUID) (*model.ExeatRequestModel, error) {
	r, err := repository.FindByIDWithPeople(s.DB.WithContext(ctx), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("Request not found.")
	}
	if err != nil {
		return nil, apperror.Internal(err, "failed to load exeat request")
	}
	return r, nil
}

/* ===================== helpers ===================== */

// notify never fails the caller; the transition is already committed.
func (s *ExeatRequestService) notify(ctx context.Context, userID uuid.UUID, message string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.Notify(ctx, userID, message); err != nil {
		metrics.NotificationFailures.Inc()
		configs.Log().Error("failed to create notification",
			zap.String("user_id", userID.String()),
			zap.Error(err),
		)
	}
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
