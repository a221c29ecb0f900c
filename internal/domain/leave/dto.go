package leave

import (
	"github.com/emscore/ems-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Reason       *string `json:"reason,omitempty"`
}

func (r *ApplyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.EmployeeName) {
		errs = append(errs, validator.ValidationError{Field: "employee_name", Message: "employee_name is required"})
	}
	if !IsValidType(Type(r.Type)) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "unknown leave type"})
	}

	start, startOk := validator.IsValidDate(r.StartDate)
	if !startOk {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "start_date must be in YYYY-MM-DD format"})
	}
	end, endOk := validator.IsValidDate(r.EndDate)
	if !endOk {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must be in YYYY-MM-DD format"})
	}
	if startOk && endOk && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "end_date must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DecideRequest approves or rejects a pending application.
type DecideRequest struct {
	ID         string  `json:"-"`
	Status     string  `json:"status"`
	ApprovedBy string  `json:"approved_by"`
	Comments   *string `json:"comments,omitempty"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != string(StatusApproved) && r.Status != string(StatusRejected) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Approved or Rejected"})
	}
	if validator.IsEmpty(r.ApprovedBy) {
		errs = append(errs, validator.ValidationError{Field: "approved_by", Message: "approved_by is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// MessageManagerRequest relays a free-form employee message to the manager
// mailbox.
type MessageManagerRequest struct {
	EmployeeID string `json:"employee_id"`
	Message    string `json:"message"`
}

func (r *MessageManagerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.Message) {
		errs = append(errs, validator.ValidationError{Field: "message", Message: "message is required"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name"`
	Type         string  `json:"type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Status       string  `json:"status"`
	Reason       *string `json:"reason,omitempty"`
	AppliedDate  string  `json:"applied_date"`
	ApprovedDate *string `json:"approved_date,omitempty"`
	ApprovedBy   *string `json:"approved_by,omitempty"`
	Duration     int     `json:"duration"`
	Comments     *string `json:"comments,omitempty"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

type Filter struct {
	EmployeeID *string `json:"employee_id,omitempty"`
	Status     *string `json:"status,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" && !IsValidStatus(Status(*f.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: Pending, Approved, Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
