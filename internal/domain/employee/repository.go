package employee

import (
	"context"
)

// EmployeeRepository defines data access methods for employee profiles.
type EmployeeRepository interface {
	// Create inserts a new profile; duplicate badge IDs return
	// ErrEmployeeIDTaken, duplicate emails ErrEmailTaken
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves a profile by storage key
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmployeeID retrieves a profile by badge ID
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// Update replaces the profile fields
	Update(ctx context.Context, emp Employee) (Employee, error)

	// UpdateApproval moves the review status and note
	UpdateApproval(ctx context.Context, id string, status ApprovalStatus, validationNote *string) (Employee, error)

	// List retrieves profiles, optionally narrowed by center, status or a
	// name/badge search
	List(ctx context.Context, filter Filter) ([]Employee, error)

	// Delete soft deletes a profile
	Delete(ctx context.Context, id string) error

	// CountByStatus returns profile counts per approval status
	CountByStatus(ctx context.Context) (map[ApprovalStatus]int64, error)
}
