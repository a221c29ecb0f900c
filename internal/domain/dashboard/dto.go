package dashboard

// ========== ADMIN DASHBOARD ==========

// AdminDashboardResponse is the combined response for the admin dashboard.
type AdminDashboardResponse struct {
	EmployeeSummary EmployeeSummaryResponse `json:"employee_summary"`
	AttendanceToday AttendanceTodayResponse `json:"attendance_today"`
	LeaveSummary    LeaveSummaryResponse    `json:"leave_summary"`
}

// EmployeeSummaryResponse counts profiles by approval status.
type EmployeeSummaryResponse struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// AttendanceTodayResponse breaks down today's records by status.
type AttendanceTodayResponse struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Present  int64  `json:"present"`
	Absent   int64  `json:"absent"`
	OnLeave  int64  `json:"on_leave"`
	HalfDay  int64  `json:"half_day"`
	Late     int64  `json:"late"`
	NotIn    int64  `json:"not_in"` // approved employees with no record yet
}

// LeaveSummaryResponse counts applications by status.
type LeaveSummaryResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

// ========== EMPLOYEE DASHBOARD ==========

// EmployeeDashboardResponse is one employee's month at a glance.
type EmployeeDashboardResponse struct {
	EmployeeID        string  `json:"employee_id"`
	Month             string  `json:"month"` // YYYY-MM
	DaysPresent       int64   `json:"days_present"`
	DaysAbsent        int64   `json:"days_absent"`
	DaysOnLeave       int64   `json:"days_on_leave"`
	TotalWorkingHours float64 `json:"total_working_hours"`
	TotalOvertime     float64 `json:"total_overtime"`
	PendingLeaves     int64   `json:"pending_leaves"`
}
