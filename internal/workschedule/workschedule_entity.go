package workschedule

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkSchedule adalah jam kerja per jabatan per hari. Weekday memakai
// konvensi time.Weekday (0 = Minggu).
type WorkSchedule struct {
	ID        uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Jabatan   string    `gorm:"column:jabatan;type:varchar(50);not null;uniqueIndex:uq_schedule_jabatan_weekday"`
	Weekday   int       `gorm:"column:weekday;type:smallint;not null;uniqueIndex:uq_schedule_jabatan_weekday"`
	JamMasuk  string    `gorm:"column:jam_masuk;type:varchar(5);not null"`  // HH:MM
	JamPulang string    `gorm:"column:jam_pulang;type:varchar(5);not null"` // HH:MM
	IsDayOff  bool      `gorm:"column:is_day_off;not null;default:false"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (WorkSchedule) TableName() string {
	return "work_schedules"
}
