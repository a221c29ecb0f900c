package employee

import (
	"context"
)

// EmployeeService defines business logic for employee profiles.
type EmployeeService interface {
	// Create registers a new onboarding profile in Pending status
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// Get retrieves one profile by storage key
	Get(ctx context.Context, id string) (EmployeeResponse, error)

	// GetByEmployeeID retrieves one profile by badge ID
	GetByEmployeeID(ctx context.Context, employeeID string) (EmployeeResponse, error)

	// Update replaces the profile fields
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)

	// Approve moves the profile through the review workflow
	Approve(ctx context.Context, req ApproveEmployeeRequest) (EmployeeResponse, error)

	// List retrieves profiles with optional filters
	List(ctx context.Context, filter Filter) ([]EmployeeResponse, error)

	// Delete soft deletes a profile and removes its reference photos
	Delete(ctx context.Context, id string) error
}
