package dashboard

import (
	"context"
)

// DashboardService defines the read-only aggregate views.
type DashboardService interface {
	// GetAdminDashboard builds the organisation-wide overview
	GetAdminDashboard(ctx context.Context) (AdminDashboardResponse, error)

	// GetEmployeeDashboard builds one employee's view for a month (YYYY-MM)
	GetEmployeeDashboard(ctx context.Context, employeeID, month string) (EmployeeDashboardResponse, error)
}
