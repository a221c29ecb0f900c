package attendance

import (
	"github.com/emscore/ems-backend-go/internal/pkg/validator"
)

// ========================================
// VALIDATION DTOs
// ========================================

// ValidateRequest carries one face/location validation attempt. The probe
// image is transient input; it is never retained.
type ValidateRequest struct {
	Latitude  float64
	Longitude float64
	// Folder overrides the configured reference-photo prefix. The two
	// legacy routes differed only in this default, so it is a parameter.
	Folder string
	Probe  []byte
}

func (r *ValidateRequest) Validate() error {
	var errs validator.ValidationErrors

	// Written as negated range checks so NaN fails them too.
	if !(r.Latitude >= -90 && r.Latitude <= 90) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !(r.Longitude >= -180 && r.Longitude <= 180) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(r.Probe) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "file",
			Message: "image file is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ValidateResponse mirrors the decision back to the client. Distance and
// similarity are rounded to 2 decimals at this boundary only.
type ValidateResponse struct {
	FaceMatched bool    `json:"face_matched"`
	MatchedWith *string `json:"matched_with"`
	Similarity  float64 `json:"similarity"`
	LocationOk  bool    `json:"location_ok"`
	DistanceM   float64 `json:"distance_m"`
	Status      string  `json:"status"`
	Note        string  `json:"note,omitempty"`
}

// ========================================
// LIFECYCLE DTOs
// ========================================

type CheckInRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"employee_id"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateStatusRequest struct {
	ID     string `json:"-"`
	Status string `json:"status"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidStatus(Status(r.Status)) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: Present, Absent, On Leave, Half Day, Late",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	Date         string  `json:"date"`
	CheckIn      *string `json:"check_in,omitempty"`
	CheckOut     *string `json:"check_out,omitempty"`
	Status       string  `json:"status"`
	WorkingHours float64 `json:"working_hours"`
	Overtime     float64 `json:"overtime"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Month      *string `json:"month,omitempty"` // YYYY-MM
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Month != nil && *f.Month != "" {
		if !validator.IsValidMonth(*f.Month) {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
