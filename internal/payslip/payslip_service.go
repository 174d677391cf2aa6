package payslip

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	paysliperrors "hr-yayasan/internal/payslip/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const cacheTTL = 15 * time.Minute

var periodPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context, employeeID string) ([]PayslipResponse, error)
	GetByPeriod(ctx context.Context, employeeID, period string) (PayslipResponse, error)
}

type service struct {
	repo   Repository
	cache  *redis.Client
	group  singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, cache *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{repo: repo, cache: cache, logger: l.Named("payslip.service")}
}

func (s *service) GetAll(ctx context.Context, employeeID string) ([]PayslipResponse, error) {
	rows, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	res := make([]PayslipResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

// GetByPeriod membaca dari cache dulu; cache miss jatuh ke database lewat
// singleflight supaya lonjakan pembukaan slip di tanggal gajian hanya
// memukul database sekali per kunci.
func (s *service) GetByPeriod(ctx context.Context, employeeID, period string) (PayslipResponse, error) {
	if !periodPattern.MatchString(period) {
		return PayslipResponse{}, paysliperrors.ErrInvalidPeriod
	}

	key := fmt.Sprintf("payslip:%s:%s", employeeID, period)
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key).Result()
		if err == nil {
			var resp PayslipResponse
			if jsonErr := json.Unmarshal([]byte(cached), &resp); jsonErr == nil {
				return resp, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			// Cache bermasalah bukan alasan gagal; lanjut ke database.
			s.logger.Warn("payslip cache read failed", zap.String("key", key), zap.Error(err))
		}
	}

	v, err, _ := s.group.Do(key, func() (interface{}, error) {
		p, err := s.repo.FindByEmployeeAndPeriod(ctx, employeeID, period)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, paysliperrors.ErrPayslipNotFound
			}
			return nil, err
		}
		resp := mapToResponse(*p)

		if s.cache != nil {
			payload, jsonErr := json.Marshal(resp)
			if jsonErr == nil {
				if setErr := s.cache.Set(ctx, key, payload, cacheTTL).Err(); setErr != nil {
					s.logger.Warn("payslip cache write failed", zap.String("key", key), zap.Error(setErr))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		return PayslipResponse{}, err
	}
	return v.(PayslipResponse), nil
}

func mapToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:         p.ID.String(),
		EmployeeID: p.EmployeeID.String(),
		Period:     p.Period,
		BaseSalary: p.BaseSalary,
		Allowances: p.Allowances,
		Deductions: p.Deductions,
		NetPay:     p.NetPay,
		FileRef:    p.FileRef,
		IssuedAt:   p.IssuedAt.Format(time.RFC3339),
	}
}
