package response

import (
	"errors"
	"net/http"

	"github.com/emscore/ems-backend-go/internal/domain/attendance"
	"github.com/emscore/ems-backend-go/internal/domain/auth"
	"github.com/emscore/ems-backend-go/internal/domain/employee"
	"github.com/emscore/ems-backend-go/internal/domain/leave"
	"github.com/emscore/ems-backend-go/internal/pkg/facematch"
	"github.com/emscore/ems-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrAccountNotApproved):
		Forbidden(w, "Account is pending approval")
	case errors.Is(err, auth.ErrAccountNotFound):
		NotFound(w, "Account not found")
	case errors.Is(err, auth.ErrEmailTaken):
		Conflict(w, "Email already registered")
	case errors.Is(err, auth.ErrUsernameTaken):
		Conflict(w, "Username already registered")
	case errors.Is(err, auth.ErrInvalidOTP):
		BadRequest(w, "Invalid or expired OTP", nil)
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDTaken):
		Conflict(w, "Employee ID already registered")
	case errors.Is(err, employee.ErrEmailTaken):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrNotCheckedIn):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Face match errors
	case errors.Is(err, facematch.ErrUpstreamTimeout):
		writeJSON(w, http.StatusGatewayTimeout, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    "UPSTREAM_TIMEOUT",
				Message: "Face comparison service timed out",
			},
		})

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyDecided):
		Conflict(w, "Leave request already decided")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "An overlapping leave request already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
