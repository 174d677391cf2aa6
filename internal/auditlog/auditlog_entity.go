package auditlog

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const (
	EntityAttendance   = "attendance"
	EntityLeaveRequest = "leave_request"
)

// Entry adalah catatan append-only atas setiap mutasi entitas: snapshot
// field lama/baru, siapa pelakunya, dan komentar reviewer bila ada.
// Entry tidak pernah di-update atau dihapus.
type Entry struct {
	ID         uuid.UUID       `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EntityType string          `gorm:"column:entity_type;type:varchar(30);not null;index:idx_audit_entity"`
	EntityID   uuid.UUID       `gorm:"column:entity_id;type:uuid;not null;index:idx_audit_entity"`
	ActorID    uuid.UUID       `gorm:"column:actor_id;type:uuid;not null"`
	Action     string          `gorm:"column:action;type:varchar(50);not null"`
	OldValues  json.RawMessage `gorm:"column:old_values;type:jsonb"`
	NewValues  json.RawMessage `gorm:"column:new_values;type:jsonb"`
	Comment    *string         `gorm:"column:comment;type:text"`
	CreatedAt  time.Time       `gorm:"column:created_at"`
}

func (Entry) TableName() string {
	return "activity_logs"
}
