package postgresql

import (
	"context"
	"fmt"

	"github.com/emscore/ems-backend-go/internal/domain/dashboard"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db *database.DB
}

// GetAttendanceTodayStats implements dashboard.DashboardRepository.
func (d *dashboardRepository) GetAttendanceTodayStats(ctx context.Context, date string) (dashboard.AttendanceTodayResponse, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE a.status = 'Present'),
			COUNT(*) FILTER (WHERE a.status = 'Absent'),
			COUNT(*) FILTER (WHERE a.status = 'On Leave'),
			COUNT(*) FILTER (WHERE a.status = 'Half Day'),
			COUNT(*) FILTER (WHERE a.status = 'Late'),
			(SELECT COUNT(*)
			 FROM employees e
			 WHERE e.deleted_at IS NULL
			   AND e.status = 'Approved'
			   AND NOT EXISTS (
				   SELECT 1 FROM attendances a2
				   WHERE a2.employee_id = e.employee_id AND a2.date = $1::date
			   ))
		FROM attendances a
		WHERE a.date = $1::date
	`

	stats := dashboard.AttendanceTodayResponse{Date: date}
	err := q.QueryRow(ctx, query, date).Scan(
		&stats.Present, &stats.Absent, &stats.OnLeave, &stats.HalfDay, &stats.Late, &stats.NotIn,
	)
	if err != nil {
		return dashboard.AttendanceTodayResponse{}, fmt.Errorf("failed to get attendance stats for %s: %w", date, err)
	}

	return stats, nil
}

// GetEmployeeMonthStats implements dashboard.DashboardRepository.
func (d *dashboardRepository) GetEmployeeMonthStats(ctx context.Context, employeeID, month string) (dashboard.EmployeeDashboardResponse, error) {
	q := GetQuerier(ctx, d.db)

	query := `
		SELECT
			COUNT(*) FILTER (WHERE status IN ('Present', 'Late', 'Half Day')),
			COUNT(*) FILTER (WHERE status = 'Absent'),
			COUNT(*) FILTER (WHERE status = 'On Leave'),
			COALESCE(SUM(working_hours), 0),
			COALESCE(SUM(overtime), 0),
			(SELECT COUNT(*) FROM leaves l
			 WHERE l.employee_id = $1 AND l.status = 'Pending')
		FROM attendances
		WHERE employee_id = $1
		  AND to_char(date, 'YYYY-MM') = $2
	`

	stats := dashboard.EmployeeDashboardResponse{EmployeeID: employeeID, Month: month}
	err := q.QueryRow(ctx, query, employeeID, month).Scan(
		&stats.DaysPresent, &stats.DaysAbsent, &stats.DaysOnLeave,
		&stats.TotalWorkingHours, &stats.TotalOvertime, &stats.PendingLeaves,
	)
	if err != nil {
		return dashboard.EmployeeDashboardResponse{}, fmt.Errorf("failed to get month stats for employee %s: %w", employeeID, err)
	}

	return stats, nil
}

func NewDashboardRepository(db *database.DB) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}
