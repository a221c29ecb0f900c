package attendance

import (
	"context"
)

// AttendanceRepository defines data access methods for attendance records.
type AttendanceRepository interface {
	// Create inserts a new record. The (employee_id, date) pair is unique;
	// an insert that loses the race returns ErrAlreadyCheckedIn so callers
	// cannot open two records for the same day.
	Create(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByID retrieves attendance by ID
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one
	// local calendar day, or ErrAttendanceNotFound
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (Attendance, error)

	// Update persists check-out time, status and computed hours
	Update(ctx context.Context, attendance Attendance) (Attendance, error)

	// UpdateStatus overrides the day-level status (admin correction path)
	UpdateStatus(ctx context.Context, id string, status Status) (Attendance, error)

	// List retrieves records, optionally narrowed by employee and month,
	// newest date first
	List(ctx context.Context, filter Filter) ([]Attendance, error)

	// MarkAbsent inserts Absent records for the given date for every
	// employee without one. Idempotent; re-runs insert nothing.
	MarkAbsent(ctx context.Context, date string) (int64, error)
}
