package events

import "time"

const AttendanceRecordedTopic = "hr.attendance.recorded"

const (
	AttendanceKindCheckIn  = "check_in"
	AttendanceKindCheckOut = "check_out"
)

type AttendanceRecordedEvent struct {
	AttendanceID string    `json:"attendance_id"`
	EmployeeID   string    `json:"employee_id"`
	Date         string    `json:"date"` // YYYY-MM-DD
	Kind         string    `json:"kind"`
	Status       string    `json:"status"`
	RecordedAt   time.Time `json:"recorded_at"`
}
