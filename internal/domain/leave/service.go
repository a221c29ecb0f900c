package leave

import (
	"context"
)

// LeaveService defines business logic for leave applications.
type LeaveService interface {
	// Apply files a new application in Pending status
	Apply(ctx context.Context, req ApplyRequest) (LeaveResponse, error)

	// Decide approves or rejects a pending application and notifies the
	// employee by email
	Decide(ctx context.Context, req DecideRequest) (LeaveResponse, error)

	// List retrieves applications with optional filters
	List(ctx context.Context, filter Filter) ([]LeaveResponse, error)

	// MessageManager forwards an employee message to the manager mailbox
	MessageManager(ctx context.Context, req MessageManagerRequest) error
}
