package leave

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"hr-yayasan/internal/auditlog"
	"hr-yayasan/internal/domain"
	"hr-yayasan/internal/events"
	leaveerrors "hr-yayasan/internal/leave/errors"
	"hr-yayasan/internal/messaging/kafka"
	"hr-yayasan/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Actor adalah identitas pemanggil dari klaim JWT.
type Actor struct {
	EmployeeID string
	Role       string
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Submit(ctx context.Context, actor Actor, req CreateLeaveRequest) (LeaveResponse, error)
	Approve(ctx context.Context, actor Actor, id string, req DecisionRequest) (LeaveResponse, error)
	Reject(ctx context.Context, actor Actor, id string, req DecisionRequest) (LeaveResponse, error)
	GetAll(ctx context.Context, actor Actor) ([]LeaveResponse, error)
	GetByID(ctx context.Context, actor Actor, id string) (LeaveResponse, error)
	GetHistory(ctx context.Context, actor Actor, id string) ([]LeaveHistoryEntry, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	audit  auditlog.Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
	now    func() time.Time
}

type Dependencies struct {
	Repo   Repository
	Audit  auditlog.Repository
	Outbox kafka.OutboxRepository
	Logger *zap.Logger
	Now    func() time.Time
}

func NewService(db *sql.DB, deps Dependencies) Service {
	l := deps.Logger
	if l == nil {
		l = zap.L()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		db:     db,
		repo:   deps.Repo,
		audit:  deps.Audit,
		outbox: deps.Outbox,
		logger: l.Named("leave.service"),
		now:    now,
	}
}

func (s *service) Submit(ctx context.Context, actor Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	employeeID, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}

	start, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if start.After(end) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}
	if !KnownLeaveType(req.LeaveType) {
		return LeaveResponse{}, leaveerrors.ErrUnknownLeaveType
	}
	// Kebijakan yayasan: jenis lainnya wajib disertai alasan.
	if req.LeaveType == TypeLainnya && (req.Reason == nil || *req.Reason == "") {
		return LeaveResponse{}, leaveerrors.ErrReasonRequired
	}

	initial, ok := InitialStatusForRole(actor.Role)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrNoApprovalTrack
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave submit begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	lr := &LeaveRequest{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		StartDate:  start,
		EndDate:    end,
		LeaveType:  req.LeaveType,
		Status:     initial,
		Reason:     req.Reason,
		FileRef:    req.FileRef,
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, lr); err != nil {
		return LeaveResponse{}, err
	}

	if err := s.appendAudit(ctx, tx, lr.ID, employeeID, "LEAVE_SUBMITTED", "", initial, nil); err != nil {
		return LeaveResponse{}, err
	}
	if err := s.recordEvent(ctx, tx, lr, actor, "", initial); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("leave submit commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request submitted",
		zap.String("leave_id", lr.ID.String()),
		zap.String("employee_id", actor.EmployeeID),
		zap.String("status", initial),
	)
	return mapToResponse(*lr, nil), nil
}

func (s *service) Approve(ctx context.Context, actor Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	return s.transition(ctx, actor, id, true, req.Comment)
}

func (s *service) Reject(ctx context.Context, actor Actor, id string, req DecisionRequest) (LeaveResponse, error) {
	if req.Comment == nil || *req.Comment == "" {
		return LeaveResponse{}, leaveerrors.ErrCommentRequired
	}
	return s.transition(ctx, actor, id, false, req.Comment)
}

// transition memindahkan status dalam satu transaksi dengan baris terkunci.
// Persetujuan di tahap non-final adalah dua lompatan: hop
// disetujui_X_menunggu_tinjauan_dirpen dicatat di activity log, kolom
// status langsung menjadi ditinjau_dirpen.
func (s *service) transition(ctx context.Context, actor Actor, id string, approve bool, comment *string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	reviewerID, err := uuid.Parse(actor.EmployeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrNotAuthorizedForThisStage
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("leave transition begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	lr, err := qtx.FindByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if IsTerminal(lr.Status) {
		return LeaveResponse{}, leaveerrors.ErrAlreadyTerminal
	}
	stage, ok := StageForStatus(lr.Status)
	if !ok {
		return LeaveResponse{}, leaveerrors.ErrAlreadyTerminal
	}
	if actor.Role != stage.ReviewerRole {
		return LeaveResponse{}, leaveerrors.ErrNotAuthorizedForThisStage
	}

	from := lr.Status
	var action, next string
	switch {
	case !approve:
		action, next = "LEAVE_REJECTED", stage.Rejected
	case stage.Final:
		action, next = "LEAVE_APPROVED", stage.Approved
	default:
		action, next = "LEAVE_APPROVED", StatusDitinjauDirpen
	}

	if approve && !stage.Final {
		// Hop pertama: keputusan reviewer di meja ini.
		if err := s.appendAudit(ctx, tx, lr.ID, reviewerID, action, from, stage.Approved, comment); err != nil {
			return LeaveResponse{}, err
		}
		// Hop kedua: penerusan otomatis ke meja dirpen.
		if err := s.appendAudit(ctx, tx, lr.ID, reviewerID, "LEAVE_FORWARDED_TO_DIRPEN", stage.Approved, next, nil); err != nil {
			return LeaveResponse{}, err
		}
	} else {
		if err := s.appendAudit(ctx, tx, lr.ID, reviewerID, action, from, next, comment); err != nil {
			return LeaveResponse{}, err
		}
	}

	if err := qtx.UpdateStatus(ctx, id, next); err != nil {
		return LeaveResponse{}, err
	}
	lr.Status = next

	if err := s.recordEvent(ctx, tx, lr, actor, from, next); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("leave transition commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave request transitioned",
		zap.String("leave_id", id),
		zap.String("reviewer_id", actor.EmployeeID),
		zap.String("from", from),
		zap.String("to", next),
	)
	return mapToResponse(*lr, comment), nil
}

func (s *service) GetAll(ctx context.Context, actor Actor) ([]LeaveResponse, error) {
	var (
		rows []LeaveRequest
		err  error
	)
	switch {
	case actor.Role == domain.RoleSuperadmin || actor.Role == domain.RoleStaffHRD:
		rows, err = s.repo.FindAll(ctx)
	default:
		if stage, ok := StageForReviewer(actor.Role); ok {
			rows, err = s.repo.FindAllForReviewer(ctx, actor.EmployeeID, stage.Pending)
		} else {
			rows, err = s.repo.FindAllByRequester(ctx, actor.EmployeeID)
		}
	}
	if err != nil {
		return nil, err
	}
	res := make([]LeaveResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r, nil)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, actor Actor, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	if !s.canRead(actor, lr) {
		// Jangan bocorkan keberadaan pengajuan milik orang lain.
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	var comment *string
	if s.audit != nil {
		comment, err = s.audit.LatestComment(ctx, auditlog.EntityLeaveRequest, lr.ID)
		if err != nil {
			return LeaveResponse{}, err
		}
	}
	return mapToResponse(*lr, comment), nil
}

// GetHistory membuka activity log sebuah pengajuan, termasuk hop antara
// yang tidak pernah muncul di kolom status.
func (s *service) GetHistory(ctx context.Context, actor Actor, id string) ([]LeaveHistoryEntry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrInvalidLeaveID
	}
	lr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		return nil, err
	}
	if !s.canRead(actor, lr) {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	if s.audit == nil {
		return nil, nil
	}

	entries, err := s.audit.FindByEntity(ctx, auditlog.EntityLeaveRequest, lr.ID)
	if err != nil {
		return nil, err
	}
	history := make([]LeaveHistoryEntry, len(entries))
	for i, e := range entries {
		history[i] = LeaveHistoryEntry{
			Action:     e.Action,
			ActorID:    e.ActorID.String(),
			FromStatus: statusFromJSON(e.OldValues),
			ToStatus:   statusFromJSON(e.NewValues),
			Comment:    e.Comment,
			CreatedAt:  e.CreatedAt.Format(time.RFC3339),
		}
	}
	return history, nil
}

func (s *service) canRead(actor Actor, lr *LeaveRequest) bool {
	if actor.Role == domain.RoleSuperadmin || actor.Role == domain.RoleStaffHRD {
		return true
	}
	if lr.EmployeeID.String() == actor.EmployeeID {
		return true
	}
	stage, ok := StageForReviewer(actor.Role)
	return ok && stage.Pending == lr.Status
}

func (s *service) appendAudit(ctx context.Context, tx *sql.Tx, leaveID, actorID uuid.UUID, action, from, to string, comment *string) error {
	if s.audit == nil {
		return nil
	}
	return s.audit.WithTx(tx).Append(ctx, &auditlog.Entry{
		ID:         uuid.New(),
		EntityType: auditlog.EntityLeaveRequest,
		EntityID:   leaveID,
		ActorID:    actorID,
		Action:     action,
		OldValues:  statusJSON(from),
		NewValues:  statusJSON(to),
		Comment:    comment,
	})
}

func (s *service) recordEvent(ctx context.Context, tx *sql.Tx, lr *LeaveRequest, actor Actor, from, to string) error {
	if s.outbox == nil {
		return nil
	}
	event := events.LeaveStatusChangedEvent{
		LeaveID:    lr.ID.String(),
		EmployeeID: lr.EmployeeID.String(),
		FromStatus: from,
		ToStatus:   to,
		ChangedAt:  s.now().UTC(),
	}
	if actor.EmployeeID != lr.EmployeeID.String() {
		event.ReviewerID = actor.EmployeeID
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "leave_request",
		AggregateID:   lr.ID.String(),
		EventType:     "leave.status_changed",
		Topic:         events.LeaveStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func statusFromJSON(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v.Status
}

func statusJSON(status string) json.RawMessage {
	if status == "" {
		return nil
	}
	b, _ := json.Marshal(map[string]string{"status": status})
	return b
}

func mapToResponse(lr LeaveRequest, comment *string) LeaveResponse {
	return LeaveResponse{
		ID:             lr.ID.String(),
		EmployeeID:     lr.EmployeeID.String(),
		StartDate:      lr.StartDate.Format("2006-01-02"),
		EndDate:        lr.EndDate.Format("2006-01-02"),
		LeaveType:      lr.LeaveType,
		Status:         lr.Status,
		Approved:       IsApproved(lr.Status),
		Terminal:       IsTerminal(lr.Status),
		Reason:         lr.Reason,
		FileRef:        lr.FileRef,
		CurrentComment: comment,
		CreatedAt:      lr.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      lr.UpdatedAt.Format(time.RFC3339),
	}
}
