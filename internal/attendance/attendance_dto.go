package attendance

type CheckInRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Note      *string  `json:"note"`
	FileRef   *string  `json:"file_ref"`
}

type CheckOutRequest struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
	Note      *string  `json:"note"`
}

type AttendanceResponse struct {
	ID             string   `json:"id"`
	EmployeeID     string   `json:"employee_id"`
	AttendanceDate string   `json:"attendance_date"`
	ClockIn        *string  `json:"clock_in,omitempty"`
	ClockInLat     *float64 `json:"clock_in_lat,omitempty"`
	ClockInLon     *float64 `json:"clock_in_lon,omitempty"`
	ClockOut       *string  `json:"clock_out,omitempty"`
	ClockOutLat    *float64 `json:"clock_out_lat,omitempty"`
	ClockOutLon    *float64 `json:"clock_out_lon,omitempty"`
	Status         string   `json:"status"`
	Note           *string  `json:"note,omitempty"`
	FileRef        *string  `json:"file_ref,omitempty"`
}
