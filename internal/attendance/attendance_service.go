package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	attendanceerrors "hr-yayasan/internal/attendance/errors"
	"hr-yayasan/internal/auditlog"
	"hr-yayasan/internal/employee"
	"hr-yayasan/internal/events"
	"hr-yayasan/internal/messaging/kafka"
	"hr-yayasan/internal/shared/contextutil"
	"hr-yayasan/internal/shared/geo"
	"hr-yayasan/internal/worklocation"
	"hr-yayasan/internal/workschedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EmployeeDirectory dan kawan-kawannya adalah interface lokal; repository
// package lain memenuhi mereka tanpa package ini bergantung pada
// implementasinya.
type EmployeeDirectory interface {
	FindByID(ctx context.Context, id string) (*employee.Employee, error)
}

type LocationRegistry interface {
	FindByID(ctx context.Context, id string) (*worklocation.WorkLocation, error)
}

type ScheduleRegistry interface {
	FindByJabatanAndWeekday(ctx context.Context, jabatan string, weekday int) (*workschedule.WorkSchedule, error)
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error)
	GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]AttendanceResponse, error)
}

type Dependencies struct {
	Repo      Repository
	Employees EmployeeDirectory
	Schedules ScheduleRegistry
	Locations LocationRegistry
	Audit     auditlog.Repository
	Outbox    kafka.OutboxRepository
	Logger    *zap.Logger
	// Now dioverride di test; default time.Now.
	Now func() time.Time
	// GraceMinutes adalah toleransi setelah jam_masuk sebelum status LATE.
	// Kebijakan yayasan: 0 — lewat jam_masuk langsung terlambat.
	GraceMinutes int
}

type service struct {
	db    *sql.DB
	deps  Dependencies
	log   *zap.Logger
	now   func() time.Time
	grace time.Duration
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
		db:    db,
		deps:  deps,
		log:   l.Named("attendance.service"),
		now:   now,
		grace: time.Duration(deps.GraceMinutes) * time.Minute,
	}
}

func (s *service) CheckIn(ctx context.Context, employeeID string, req CheckInRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.log.Error("check-in begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.deps.Repo.WithTx(tx)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	emp, err := s.deps.Employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
		}
		return AttendanceResponse{}, err
	}
	if emp.WorkLocationID == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoWorkLocationConfigured
	}

	loc, err := s.deps.Locations.FindByID(ctx, emp.WorkLocationID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoWorkLocationConfigured
		}
		return AttendanceResponse{}, err
	}

	schedule, err := s.deps.Schedules.FindByJabatanAndWeekday(ctx, emp.Jabatan, int(now.Weekday()))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoWorkScheduleConfigured
		}
		return AttendanceResponse{}, err
	}
	if schedule.IsDayOff {
		return AttendanceResponse{}, attendanceerrors.ErrDayOff
	}

	existing, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return AttendanceResponse{}, err
	}
	hasExisting := err == nil
	if hasExisting && existing.ClockIn != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedIn
	}

	distance := geo.HaversineDistance(*req.Latitude, *req.Longitude, loc.Latitude, loc.Longitude)
	if distance > loc.RadiusMeters {
		s.log.Warn("check-in outside radius",
			zap.String("employee_id", employeeID),
			zap.Float64("distance_m", distance),
			zap.Float64("radius_m", loc.RadiusMeters),
		)
		return AttendanceResponse{}, attendanceerrors.ErrOutsideWorkRadius
	}

	late, err := isLate(now, schedule.JamMasuk, s.grace)
	if err != nil {
		// Hanya terjadi kalau baris jadwal diubah di luar API; jangan
		// diam-diam mencatat PRESENT.
		s.log.Warn("jam_masuk pada jadwal tidak valid",
			zap.String("jabatan", emp.Jabatan),
			zap.String("jam_masuk", schedule.JamMasuk),
			zap.Error(err),
		)
		return AttendanceResponse{}, attendanceerrors.ErrNoWorkScheduleConfigured
	}
	status := StatusPresent
	if late {
		status = StatusLate
	}

	var row *Attendance
	var before []byte
	if hasExisting {
		// Baris placeholder ABSENT diisi, bukan dibuat baris kedua.
		before = snapshot(existing)
		existing.ClockIn = &now
		existing.ClockInLat = req.Latitude
		existing.ClockInLon = req.Longitude
		existing.Status = status
		if req.Note != nil {
			existing.Note = req.Note
		}
		if req.FileRef != nil {
			existing.FileRef = req.FileRef
		}
		if err := qtx.Update(ctx, existing); err != nil {
			return AttendanceResponse{}, mapRepositoryError(err)
		}
		row = existing
	} else {
		row = &Attendance{
			ID:             uuid.New(),
			EmployeeID:     emp.ID,
			AttendanceDate: today,
			ClockIn:        &now,
			ClockInLat:     req.Latitude,
			ClockInLon:     req.Longitude,
			Status:         status,
			Note:           req.Note,
			FileRef:        req.FileRef,
		}
		if err := qtx.Create(ctx, row); err != nil {
			return AttendanceResponse{}, mapRepositoryError(err)
		}
	}

	if err := s.appendAudit(ctx, tx, row, "ATTENDANCE_CHECK_IN", before); err != nil {
		return AttendanceResponse{}, err
	}
	if err := s.recordEvent(ctx, tx, row, events.AttendanceKindCheckIn, now); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("check-in commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	s.log.Info("check-in recorded",
		zap.String("attendance_id", row.ID.String()),
		zap.String("employee_id", employeeID),
		zap.String("status", row.Status),
	)
	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string, req CheckOutRequest) (AttendanceResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.log.Error("check-out begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.deps.Repo.WithTx(tx)
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
		}
		return AttendanceResponse{}, err
	}
	if row.ClockIn == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNotCheckedIn
	}
	if row.ClockOut != nil {
		return AttendanceResponse{}, attendanceerrors.ErrAlreadyCheckedOut
	}

	emp, err := s.deps.Employees.FindByID(ctx, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if emp.WorkLocationID == nil {
		return AttendanceResponse{}, attendanceerrors.ErrNoWorkLocationConfigured
	}

	// Geofence dievaluasi terhadap lokasi penugasan SAAT INI, bukan snapshot
	// saat check-in. Reassignment di tengah hari mengubah acuan checkout;
	// perilaku lama yang dipertahankan.
	loc, err := s.deps.Locations.FindByID(ctx, emp.WorkLocationID.String())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoWorkLocationConfigured
		}
		return AttendanceResponse{}, err
	}

	distance := geo.HaversineDistance(*req.Latitude, *req.Longitude, loc.Latitude, loc.Longitude)
	if distance > loc.RadiusMeters {
		return AttendanceResponse{}, attendanceerrors.ErrOutsideWorkRadius
	}

	before := snapshot(row)
	row.ClockOut = &now
	row.ClockOutLat = req.Latitude
	row.ClockOutLon = req.Longitude
	if req.Note != nil {
		row.Note = req.Note
	}

	if err := qtx.Update(ctx, row); err != nil {
		return AttendanceResponse{}, err
	}

	if err := s.appendAudit(ctx, tx, row, "ATTENDANCE_CHECK_OUT", before); err != nil {
		return AttendanceResponse{}, err
	}
	if err := s.recordEvent(ctx, tx, row, events.AttendanceKindCheckOut, now); err != nil {
		return AttendanceResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.log.Error("check-out commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	s.log.Info("check-out recorded",
		zap.String("attendance_id", row.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(*row), nil
}

func (s *service) GetAll(ctx context.Context, actorEmployeeID string, canReadAll bool) ([]AttendanceResponse, error) {
	var (
		rows []Attendance
		err  error
	)
	if canReadAll {
		rows, err = s.deps.Repo.FindAll(ctx)
	} else {
		rows, err = s.deps.Repo.FindAllByEmployee(ctx, actorEmployeeID)
	}
	if err != nil {
		return nil, err
	}
	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

// isLate: terlambat bila waktu sekarang melewati jam_masuk plus toleransi.
func isLate(now time.Time, jamMasuk string, grace time.Duration) (bool, error) {
	scheduled, err := time.Parse("15:04", jamMasuk)
	if err != nil {
		return false, err
	}
	start := time.Date(now.Year(), now.Month(), now.Day(),
		scheduled.Hour(), scheduled.Minute(), 0, 0, now.Location())
	return now.After(start.Add(grace)), nil
}

func (s *service) appendAudit(ctx context.Context, tx *sql.Tx, row *Attendance, action string, before []byte) error {
	if s.deps.Audit == nil {
		return nil
	}
	actorID := contextutil.GetActorID(ctx)
	actor := row.EmployeeID
	if parsed, err := uuid.Parse(actorID); err == nil {
		actor = parsed
	}
	return s.deps.Audit.WithTx(tx).Append(ctx, &auditlog.Entry{
		ID:         uuid.New(),
		EntityType: auditlog.EntityAttendance,
		EntityID:   row.ID,
		ActorID:    actor,
		Action:     action,
		OldValues:  before,
		NewValues:  snapshot(row),
	})
}

func (s *service) recordEvent(ctx context.Context, tx *sql.Tx, row *Attendance, kind string, at time.Time) error {
	if s.deps.Outbox == nil {
		return nil
	}
	event := events.AttendanceRecordedEvent{
		AttendanceID: row.ID.String(),
		EmployeeID:   row.EmployeeID.String(),
		Date:         row.AttendanceDate.Format("2006-01-02"),
		Kind:         kind,
		Status:       row.Status,
		RecordedAt:   at.UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.deps.Outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "attendance",
		AggregateID:   row.ID.String(),
		EventType:     "attendance." + kind,
		Topic:         events.AttendanceRecordedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func snapshot(row *Attendance) []byte {
	b, err := json.Marshal(mapToResponse(*row))
	if err != nil {
		return nil
	}
	return b
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:             a.ID.String(),
		EmployeeID:     a.EmployeeID.String(),
		AttendanceDate: a.AttendanceDate.Format("2006-01-02"),
		ClockInLat:     a.ClockInLat,
		ClockInLon:     a.ClockInLon,
		ClockOutLat:    a.ClockOutLat,
		ClockOutLon:    a.ClockOutLon,
		Status:         a.Status,
		Note:           a.Note,
		FileRef:        a.FileRef,
	}
	if a.ClockIn != nil {
		v := a.ClockIn.Format(time.RFC3339)
		resp.ClockIn = &v
	}
	if a.ClockOut != nil {
		v := a.ClockOut.Format(time.RFC3339)
		resp.ClockOut = &v
	}
	return resp
}
