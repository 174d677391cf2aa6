package employee

type CreateEmployeeRequest struct {
	UserID         string  `json:"user_id" binding:"required,uuid"`
	EmployeeNumber string  `json:"employee_number" binding:"required"`
	FullName       string  `json:"full_name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Jabatan        string  `json:"jabatan" binding:"required"`
	Unit           string  `json:"unit"`
	WorkLocationID *string `json:"work_location_id" binding:"omitempty,uuid"`
	JoinedAt       *string `json:"joined_at"` // YYYY-MM-DD
}

type UpdateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required"`
	Jabatan        string  `json:"jabatan" binding:"required"`
	Unit           string  `json:"unit"`
	WorkLocationID *string `json:"work_location_id" binding:"omitempty,uuid"`
}

type EmployeeResponse struct {
	ID             string  `json:"id"`
	UserID         string  `json:"user_id"`
	EmployeeNumber string  `json:"employee_number"`
	FullName       string  `json:"full_name"`
	Email          string  `json:"email"`
	Jabatan        string  `json:"jabatan"`
	Unit           string  `json:"unit,omitempty"`
	WorkLocationID *string `json:"work_location_id,omitempty"`
	JoinedAt       *string `json:"joined_at,omitempty"`
}
