package workschedule

import (
	"context"
	"database/sql"
	"time"

	workscheduleerrors "hr-yayasan/internal/workschedule/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=workschedule_service.go -destination=mock/workschedule_service_mock.go -package=mock
type Service interface {
	Upsert(ctx context.Context, req UpsertWorkScheduleRequest) (WorkScheduleResponse, error)
	GetAll(ctx context.Context) ([]WorkScheduleResponse, error)
	GetByJabatan(ctx context.Context, jabatan string) ([]WorkScheduleResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("workschedule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("workschedule.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Upsert(ctx context.Context, req UpsertWorkScheduleRequest) (WorkScheduleResponse, error) {
	if !req.IsDayOff {
		masuk, err := time.Parse("15:04", req.JamMasuk)
		if err != nil {
			return WorkScheduleResponse{}, workscheduleerrors.ErrInvalidTimeFormat
		}
		pulang, err := time.Parse("15:04", req.JamPulang)
		if err != nil {
			return WorkScheduleResponse{}, workscheduleerrors.ErrInvalidTimeFormat
		}
		if !pulang.After(masuk) {
			return WorkScheduleResponse{}, workscheduleerrors.ErrJamPulangBeforeJamMasuk
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkScheduleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	ws := &WorkSchedule{
		ID:        uuid.New(),
		Jabatan:   req.Jabatan,
		Weekday:   *req.Weekday,
		JamMasuk:  req.JamMasuk,
		JamPulang: req.JamPulang,
		IsDayOff:  req.IsDayOff,
	}

	if err := qtx.Upsert(ctx, ws); err != nil {
		return WorkScheduleResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		return WorkScheduleResponse{}, err
	}

	s.logger.Info("work schedule upserted",
		zap.String("jabatan", ws.Jabatan),
		zap.Int("weekday", ws.Weekday),
		zap.Bool("is_day_off", ws.IsDayOff),
	)
	return mapToResponse(*ws), nil
}

func (s *service) GetAll(ctx context.Context) ([]WorkScheduleResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByJabatan(ctx context.Context, jabatan string) ([]WorkScheduleResponse, error) {
	rows, err := s.repo.FindByJabatan(ctx, jabatan)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Delete(ctx, id); err != nil {
		return err
	}
	return tx.Commit()
}

func mapToResponse(ws WorkSchedule) WorkScheduleResponse {
	return WorkScheduleResponse{
		ID:        ws.ID.String(),
		Jabatan:   ws.Jabatan,
		Weekday:   ws.Weekday,
		JamMasuk:  ws.JamMasuk,
		JamPulang: ws.JamPulang,
		IsDayOff:  ws.IsDayOff,
	}
}

func mapToListResponse(rows []WorkSchedule) []WorkScheduleResponse {
	res := make([]WorkScheduleResponse, len(rows))
	for i, ws := range rows {
		res[i] = mapToResponse(ws)
	}
	return res
}
