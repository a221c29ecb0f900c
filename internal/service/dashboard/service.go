package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/emscore/ems-backend-go/internal/domain/dashboard"
	"github.com/emscore/ems-backend-go/internal/domain/employee"
	"github.com/emscore/ems-backend-go/internal/domain/leave"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/emscore/ems-backend-go/internal/pkg/validator"
)

type DashboardServiceImpl struct {
	db *database.DB
	dashboard.DashboardRepository
	employeeRepo employee.EmployeeRepository
	leaveRepo    leave.LeaveRepository
	now          func() time.Time
}

// GetAdminDashboard implements dashboard.DashboardService.
func (d *DashboardServiceImpl) GetAdminDashboard(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	today := d.now().Format("2006-01-02")

	employeeCounts, err := d.employeeRepo.CountByStatus(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count employees: %w", err)
	}

	attendanceToday, err := d.DashboardRepository.GetAttendanceTodayStats(ctx, today)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, err
	}

	leaveCounts, err := d.leaveRepo.CountByStatus(ctx)
	if err != nil {
		return dashboard.AdminDashboardResponse{}, fmt.Errorf("failed to count leave requests: %w", err)
	}

	pending := employeeCounts[employee.StatusPending]
	approved := employeeCounts[employee.StatusApproved]
	rejected := employeeCounts[employee.StatusRejected]

	return dashboard.AdminDashboardResponse{
		EmployeeSummary: dashboard.EmployeeSummaryResponse{
			Total:    pending + approved + rejected,
			Pending:  pending,
			Approved: approved,
			Rejected: rejected,
		},
		AttendanceToday: attendanceToday,
		LeaveSummary: dashboard.LeaveSummaryResponse{
			Pending:  leaveCounts[leave.StatusPending],
			Approved: leaveCounts[leave.StatusApproved],
			Rejected: leaveCounts[leave.StatusRejected],
		},
	}, nil
}

// GetEmployeeDashboard implements dashboard.DashboardService.
func (d *DashboardServiceImpl) GetEmployeeDashboard(ctx context.Context, employeeID, month string) (dashboard.EmployeeDashboardResponse, error) {
	if month == "" {
		month = d.now().Format("2006-01")
	}
	if !validator.IsValidMonth(month) {
		return dashboard.EmployeeDashboardResponse{}, validator.ValidationErrors{{
			Field:   "month",
			Message: "month must be in YYYY-MM format",
		}}
	}

	// The profile must exist; a bare employee ID with no records would
	// otherwise produce an all-zero dashboard for a typo.
	if _, err := d.employeeRepo.GetByEmployeeID(ctx, employeeID); err != nil {
		return dashboard.EmployeeDashboardResponse{}, err
	}

	return d.DashboardRepository.GetEmployeeMonthStats(ctx, employeeID, month)
}

func NewDashboardService(
	db *database.DB,
	dashboardRepository dashboard.DashboardRepository,
	employeeRepository employee.EmployeeRepository,
	leaveRepository leave.LeaveRepository,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		db:                  db,
		DashboardRepository: dashboardRepository,
		employeeRepo:        employeeRepository,
		leaveRepo:           leaveRepository,
		now:                 time.Now,
	}
}
