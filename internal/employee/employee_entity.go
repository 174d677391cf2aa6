package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Employee adalah profil kepegawaian. UserID menunjuk ke akun di direktori
// identitas; Jabatan menentukan jadwal kerja, WorkLocationID menentukan
// geofence presensi.
type Employee struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID         uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex:uq_employee_user"`
	EmployeeNumber string     `gorm:"column:employee_number;type:varchar(30);not null;uniqueIndex:uq_employee_number"`
	FullName       string     `gorm:"column:full_name;type:varchar(150);not null"`
	Email          string     `gorm:"column:email;type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	Jabatan        string     `gorm:"column:jabatan;type:varchar(50);not null"`
	Unit           string     `gorm:"column:unit;type:varchar(100)"`
	WorkLocationID *uuid.UUID `gorm:"column:work_location_id;type:uuid;index"`
	JoinedAt       *time.Time `gorm:"column:joined_at;type:date"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
