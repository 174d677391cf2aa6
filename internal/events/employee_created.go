package events

import "time"

const EmployeeCreatedTopic = "hr.employee.created"

type EmployeeCreatedEvent struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Jabatan    string    `json:"jabatan"`
	CreatedAt  time.Time `json:"created_at"`
}
