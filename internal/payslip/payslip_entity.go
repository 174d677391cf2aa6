package payslip

import (
	"time"

	"github.com/google/uuid"
)

// Payslip adalah arsip slip gaji yang sudah diterbitkan sistem payroll.
// Service ini hanya membaca; penerbitan dan perhitungan gaji terjadi di
// luar.
type Payslip struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_payslip_employee_period"`
	Period     string    `gorm:"column:period;type:varchar(7);not null;uniqueIndex:uq_payslip_employee_period"` // YYYY-MM
	BaseSalary int64     `gorm:"column:base_salary;not null"`
	Allowances int64     `gorm:"column:allowances;not null"`
	Deductions int64     `gorm:"column:deductions;not null"`
	NetPay     int64     `gorm:"column:net_pay;not null"`
	FileRef    *string   `gorm:"column:file_ref;type:varchar(255)"`
	IssuedAt   time.Time `gorm:"column:issued_at;not null"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (Payslip) TableName() string {
	return "payslips"
}
