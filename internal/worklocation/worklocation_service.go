package worklocation

import (
	"context"
	"database/sql"
	"errors"

	worklocationerrors "hr-yayasan/internal/worklocation/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=worklocation_service.go -destination=mock/worklocation_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateWorkLocationRequest) (WorkLocationResponse, error)
	GetAll(ctx context.Context) ([]WorkLocationResponse, error)
	GetByID(ctx context.Context, id string) (WorkLocationResponse, error)
	Update(ctx context.Context, id string, req UpdateWorkLocationRequest) (WorkLocationResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("worklocation.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("worklocation.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateWorkLocationRequest) (WorkLocationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkLocationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l := &WorkLocation{
		ID:           uuid.New(),
		Name:         req.Name,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: req.RadiusMeters,
	}

	if err := qtx.Create(ctx, l); err != nil {
		return WorkLocationResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return WorkLocationResponse{}, err
	}

	s.logger.Info("work location created",
		zap.String("work_location_id", l.ID.String()),
		zap.String("name", l.Name),
	)
	return mapToResponse(*l), nil
}

func (s *service) GetAll(ctx context.Context) ([]WorkLocationResponse, error) {
	rows, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	res := make([]WorkLocationResponse, len(rows))
	for i, l := range rows {
		res[i] = mapToResponse(l)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, id string) (WorkLocationResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return WorkLocationResponse{}, worklocationerrors.ErrInvalidWorkLocationID
	}
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return WorkLocationResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*l), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateWorkLocationRequest) (WorkLocationResponse, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return WorkLocationResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := uuid.Parse(id); err != nil {
		return WorkLocationResponse{}, worklocationerrors.ErrInvalidWorkLocationID
	}

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		return WorkLocationResponse{}, mapRepositoryError(err)
	}

	geofenceChanged := l.Latitude != req.Latitude ||
		l.Longitude != req.Longitude ||
		l.RadiusMeters != req.RadiusMeters
	if geofenceChanged {
		referenced, refErr := qtx.IsReferencedByAttendance(ctx, id)
		if refErr != nil {
			return WorkLocationResponse{}, refErr
		}
		if referenced {
			s.logger.Warn("rejected geofence change on referenced location",
				zap.String("work_location_id", id),
			)
			return WorkLocationResponse{}, worklocationerrors.ErrWorkLocationInUse
		}
	}

	l.Name = req.Name
	l.Latitude = req.Latitude
	l.Longitude = req.Longitude
	l.RadiusMeters = req.RadiusMeters

	if err := qtx.Update(ctx, l); err != nil {
		return WorkLocationResponse{}, mapRepositoryError(err)
	}
	if err := tx.Commit(); err != nil {
		return WorkLocationResponse{}, err
	}
	return mapToResponse(*l), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	referenced, err := qtx.IsReferencedByAttendance(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return worklocationerrors.ErrWorkLocationInUse
	}

	if err := qtx.Delete(ctx, id); err != nil {
		return mapRepositoryError(err)
	}
	return tx.Commit()
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return worklocationerrors.ErrWorkLocationNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return worklocationerrors.ErrWorkLocationNameTaken
	}
	return err
}

func mapToResponse(l WorkLocation) WorkLocationResponse {
	return WorkLocationResponse{
		ID:           l.ID.String(),
		Name:         l.Name,
		Latitude:     l.Latitude,
		Longitude:    l.Longitude,
		RadiusMeters: l.RadiusMeters,
	}
}
