package events

import "time"

const LeaveStatusChangedTopic = "hr.leave.status-changed"

type LeaveStatusChangedEvent struct {
	LeaveID    string    `json:"leave_id"`
	EmployeeID string    `json:"employee_id"`
	ReviewerID string    `json:"reviewer_id,omitempty"`
	FromStatus string    `json:"from_status,omitempty"`
	ToStatus   string    `json:"to_status"`
	ChangedAt  time.Time `json:"changed_at"`
}
