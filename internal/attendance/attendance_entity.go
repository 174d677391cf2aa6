package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusPresent = "PRESENT"
	StatusLate    = "LATE"
	StatusAbsent  = "ABSENT"
	StatusOnLeave = "ON_LEAVE"
)

// Attendance adalah satu baris presensi per pegawai per tanggal; constraint
// unik (employee_id, attendance_date) yang menjaga invariannya saat dua
// check-in balapan. ClockIn nullable karena baris ABSENT/ON_LEAVE dibuat
// tanpa check-in.
type Attendance struct {
	ID             uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID     uuid.UUID  `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	AttendanceDate time.Time  `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	ClockIn        *time.Time `gorm:"column:clock_in;type:timestamptz"`
	ClockInLat     *float64   `gorm:"column:clock_in_lat"`
	ClockInLon     *float64   `gorm:"column:clock_in_lon"`
	ClockOut       *time.Time `gorm:"column:clock_out;type:timestamptz"`
	ClockOutLat    *float64   `gorm:"column:clock_out_lat"`
	ClockOutLon    *float64   `gorm:"column:clock_out_lon"`
	Status         string     `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	Note           *string    `gorm:"column:note;type:text"`
	FileRef        *string    `gorm:"column:file_ref;type:varchar(255)"` // referensi opaque ke penyimpanan berkas
	CreatedAt      time.Time  `gorm:"column:created_at"`
	UpdatedAt      time.Time  `gorm:"column:updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Attendance) TableName() string {
	return "attendances"
}
