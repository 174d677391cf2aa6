package payslip

type PayslipResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Period     string  `json:"period"`
	BaseSalary int64   `json:"base_salary"`
	Allowances int64   `json:"allowances"`
	Deductions int64   `json:"deductions"`
	NetPay     int64   `json:"net_pay"`
	FileRef    *string `json:"file_ref,omitempty"`
	IssuedAt   string  `json:"issued_at"`
}
