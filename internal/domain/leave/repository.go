package leave

import (
	"context"
)

// LeaveRepository defines data access methods for leave applications.
type LeaveRepository interface {
	// Create inserts a new application
	Create(ctx context.Context, lv Leave) (Leave, error)

	// GetByID retrieves an application, or ErrLeaveNotFound
	GetByID(ctx context.Context, id string) (Leave, error)

	// Update persists a decision on an application
	Update(ctx context.Context, lv Leave) (Leave, error)

	// List retrieves applications, optionally narrowed by employee and status,
	// newest applied first
	List(ctx context.Context, filter Filter) ([]Leave, error)

	// HasOverlap reports whether the employee already has a non-rejected
	// application intersecting [startDate, endDate]
	HasOverlap(ctx context.Context, employeeID, startDate, endDate string) (bool, error)

	// CountByStatus returns application counts per status
	CountByStatus(ctx context.Context) (map[Status]int64, error)
}
