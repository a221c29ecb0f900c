package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// Validate runs the geofence and face-match checks for one probe image
	// and reports the combined verdict. It never mutates attendance.
	Validate(ctx context.Context, req ValidateRequest) (ValidateResponse, error)

	// CheckIn opens today's attendance record for the employee
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's open record and computes working hours
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// List retrieves attendance records with optional employee/month filters
	List(ctx context.Context, filter Filter) ([]AttendanceResponse, error)

	// UpdateStatus overrides the day-level status (admin correction path)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (AttendanceResponse, error)
}
