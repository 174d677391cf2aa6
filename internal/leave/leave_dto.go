package leave

type CreateLeaveRequest struct {
	StartDate string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	LeaveType string  `json:"leave_type" binding:"required"`
	Reason    *string `json:"reason"`
	FileRef   *string `json:"file_ref"`
}

type DecisionRequest struct {
	Comment *string `json:"comment"`
}

// LeaveHistoryEntry adalah satu baris activity log yang sudah dibuka:
// termasuk hop disetujui_*_menunggu_tinjauan_dirpen yang tidak pernah
// muncul di kolom status.
type LeaveHistoryEntry struct {
	Action     string  `json:"action"`
	ActorID    string  `json:"actor_id"`
	FromStatus string  `json:"from_status,omitempty"`
	ToStatus   string  `json:"to_status,omitempty"`
	Comment    *string `json:"comment,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type LeaveResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	StartDate  string  `json:"start_date"`
	EndDate    string  `json:"end_date"`
	LeaveType  string  `json:"leave_type"`
	Status     string  `json:"status"`
	Approved   bool    `json:"approved"`
	Terminal   bool    `json:"terminal"`
	Reason     *string `json:"reason,omitempty"`
	FileRef    *string `json:"file_ref,omitempty"`
	// CurrentComment diturunkan dari activity log; hanya diisi pada GetByID.
	CurrentComment *string `json:"current_comment,omitempty"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}
