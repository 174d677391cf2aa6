package payslip

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=payslip_repo.go -destination=mock/payslip_repo_mock.go -package=mock
type Repository interface {
	FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*Payslip, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]Payslip, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) FindByEmployeeAndPeriod(ctx context.Context, employeeID, period string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("period = ?", period).
		First(&p).Error
	return &p, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]Payslip, error) {
	var rows []Payslip
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("period DESC").
		Find(&rows).Error
	return rows, err
}
