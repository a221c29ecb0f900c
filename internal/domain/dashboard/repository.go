package dashboard

import (
	"context"
)

// DashboardRepository aggregates counts across the other domains' tables.
// Read only; all mutation goes through the owning repositories.
type DashboardRepository interface {
	// GetAttendanceTodayStats counts today's records per status plus the
	// approved employees with no record yet
	GetAttendanceTodayStats(ctx context.Context, date string) (AttendanceTodayResponse, error)

	// GetEmployeeMonthStats aggregates one employee's month
	GetEmployeeMonthStats(ctx context.Context, employeeID, month string) (EmployeeDashboardResponse, error)
}
