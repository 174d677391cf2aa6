package worklocation

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkLocation adalah geofence presensi: titik pusat plus radius dalam
// meter. Koordinat dan radius terkunci begitu ada presensi yang merujuknya.
type WorkLocation struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex:uq_work_location_name"`
	Latitude     float64   `gorm:"column:latitude;not null"`
	Longitude    float64   `gorm:"column:longitude;not null"`
	RadiusMeters float64   `gorm:"column:radius_meters;not null;default:100"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (WorkLocation) TableName() string {
	return "work_locations"
}
