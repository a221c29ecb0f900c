package employee

import (
	"github.com/shopspring/decimal"

	"github.com/emscore/ems-backend-go/internal/pkg/validator"
)

// CreateEmployeeRequest carries the onboarding profile. Only the badge ID
// and first name are mandatory; the rest of the profile can be completed
// later through update.
type CreateEmployeeRequest struct {
	EmployeeID           string              `json:"employee_id"`
	CenterCode           *string             `json:"center_code,omitempty"`
	FirstName            string              `json:"first_name"`
	LastName             *string             `json:"last_name,omitempty"`
	FatherName           *string             `json:"father_name,omitempty"`
	MotherName           *string             `json:"mother_name,omitempty"`
	HighestQualification *string             `json:"highest_qualification,omitempty"`
	DOBAsPerCertificate  *string             `json:"dob_as_per_certificate,omitempty"`
	DOBAsPerCelebration  *string             `json:"dob_as_per_celebration,omitempty"`
	MaritalStatus        *string             `json:"marital_status,omitempty"`
	SpouseName           *string             `json:"spouse_name,omitempty"`
	SpouseDateOfBirth    *string             `json:"spouse_date_of_birth,omitempty"`
	WeddingDate          *string             `json:"wedding_date,omitempty"`
	SpouseEmail          *string             `json:"spouse_email,omitempty"`
	BloodGroup           *string             `json:"blood_group,omitempty"`
	Email                *string             `json:"email,omitempty"`
	Phone                *string             `json:"phone,omitempty"`
	Address              *string             `json:"address,omitempty"`
	City                 *string             `json:"city,omitempty"`
	State                *string             `json:"state,omitempty"`
	Pincode              *string             `json:"pincode,omitempty"`
	Experience           *string             `json:"experience,omitempty"`
	CurrentSalary        *decimal.Decimal    `json:"current_salary,omitempty"`
	Position             *string             `json:"position,omitempty"`
	UANNumber            *string             `json:"uan_number,omitempty"`
	ESINumber            *string             `json:"esi_number,omitempty"`
	AadhaarNumber        *string             `json:"aadhaar_number,omitempty"`
	NameAsOnAadhaar      *string             `json:"name_as_on_aadhaar,omitempty"`
	PANNumber            *string             `json:"pan_number,omitempty"`
	NameAsOnPAN          *string             `json:"name_as_on_pan,omitempty"`
	BankAccountNumber    *string             `json:"bank_account_number,omitempty"`
	NameAsPerBankDetails *string             `json:"name_as_per_bank_details,omitempty"`
	BankName             *string             `json:"bank_name,omitempty"`
	BranchName           *string             `json:"branch_name,omitempty"`
	IFSCCode             *string             `json:"ifsc_code,omitempty"`
	Documents            []Document          `json:"documents,omitempty"`
	EmergencyContacts    []EmergencyContact  `json:"emergency_contacts,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "employee_id is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	errs = append(errs, validateProfileFields(profileFields{
		MaritalStatus:       r.MaritalStatus,
		SpouseEmail:         r.SpouseEmail,
		Email:               r.Email,
		Phone:               r.Phone,
		Pincode:             r.Pincode,
		AadhaarNumber:       r.AadhaarNumber,
		PANNumber:           r.PANNumber,
		IFSCCode:            r.IFSCCode,
		DOBAsPerCertificate: r.DOBAsPerCertificate,
		DOBAsPerCelebration: r.DOBAsPerCelebration,
		SpouseDateOfBirth:   r.SpouseDateOfBirth,
		WeddingDate:         r.WeddingDate,
	})...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest reuses the create shape; the badge ID is taken from
// the URL and cannot be changed.
type UpdateEmployeeRequest struct {
	ID string `json:"-"`
	CreateEmployeeRequest
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "first_name is required"})
	}
	errs = append(errs, validateProfileFields(profileFields{
		MaritalStatus:       r.MaritalStatus,
		SpouseEmail:         r.SpouseEmail,
		Email:               r.Email,
		Phone:               r.Phone,
		Pincode:             r.Pincode,
		AadhaarNumber:       r.AadhaarNumber,
		PANNumber:           r.PANNumber,
		IFSCCode:            r.IFSCCode,
		DOBAsPerCertificate: r.DOBAsPerCertificate,
		DOBAsPerCelebration: r.DOBAsPerCelebration,
		SpouseDateOfBirth:   r.SpouseDateOfBirth,
		WeddingDate:         r.WeddingDate,
	})...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// profileFields collects the optional fields with format rules so create
// and update validate them identically.
type profileFields struct {
	MaritalStatus       *string
	SpouseEmail         *string
	Email               *string
	Phone               *string
	Pincode             *string
	AadhaarNumber       *string
	PANNumber           *string
	IFSCCode            *string
	DOBAsPerCertificate *string
	DOBAsPerCelebration *string
	SpouseDateOfBirth   *string
	WeddingDate         *string
}

func validateProfileFields(f profileFields) validator.ValidationErrors {
	var errs validator.ValidationErrors

	set := func(p *string) bool { return p != nil && *p != "" }

	if set(f.MaritalStatus) && !IsValidMaritalStatus(MaritalStatus(*f.MaritalStatus)) {
		errs = append(errs, validator.ValidationError{Field: "marital_status", Message: "marital_status must be one of: Single, Married, Divorced, Widowed"})
	}
	if set(f.Email) && !validator.IsValidEmail(*f.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email format is invalid"})
	}
	if set(f.SpouseEmail) && !validator.IsValidEmail(*f.SpouseEmail) {
		errs = append(errs, validator.ValidationError{Field: "spouse_email", Message: "spouse_email format is invalid"})
	}
	if set(f.Phone) && !validator.IsValidPhoneNumber(*f.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone number format is invalid"})
	}
	if set(f.Pincode) && !validator.IsValidPincode(*f.Pincode) {
		errs = append(errs, validator.ValidationError{Field: "pincode", Message: "pincode must be 6 digits"})
	}
	if set(f.AadhaarNumber) && !validator.IsValidAadhaar(*f.AadhaarNumber) {
		errs = append(errs, validator.ValidationError{Field: "aadhaar_number", Message: "aadhaar number must be 12 digits"})
	}
	if set(f.PANNumber) && !validator.IsValidPAN(*f.PANNumber) {
		errs = append(errs, validator.ValidationError{Field: "pan_number", Message: "pan number format is invalid"})
	}
	if set(f.IFSCCode) && !validator.IsValidIFSC(*f.IFSCCode) {
		errs = append(errs, validator.ValidationError{Field: "ifsc_code", Message: "ifsc code format is invalid"})
	}

	dates := map[string]*string{
		"dob_as_per_certificate": f.DOBAsPerCertificate,
		"dob_as_per_celebration": f.DOBAsPerCelebration,
		"spouse_date_of_birth":   f.SpouseDateOfBirth,
		"wedding_date":           f.WeddingDate,
	}
	for field, value := range dates {
		if set(value) {
			if _, ok := validator.IsValidDate(*value); !ok {
				errs = append(errs, validator.ValidationError{Field: field, Message: "date must be in YYYY-MM-DD format"})
			}
		}
	}

	return errs
}

// ApproveEmployeeRequest moves a profile through the review workflow.
type ApproveEmployeeRequest struct {
	ID             string  `json:"-"`
	Status         string  `json:"status"`
	ValidationNote *string `json:"validation_note,omitempty"`
}

func (r *ApproveEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !IsValidApprovalStatus(ApprovalStatus(r.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: Pending, Approved, Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeResponse struct {
	ID                   string              `json:"id"`
	EmployeeID           string              `json:"employee_id"`
	CenterCode           *string             `json:"center_code,omitempty"`
	FirstName            string              `json:"first_name"`
	LastName             *string             `json:"last_name,omitempty"`
	FatherName           *string             `json:"father_name,omitempty"`
	MotherName           *string             `json:"mother_name,omitempty"`
	Status               string              `json:"status"`
	ValidationNote       *string             `json:"validation_note,omitempty"`
	HighestQualification *string             `json:"highest_qualification,omitempty"`
	DOBAsPerCertificate  *string             `json:"dob_as_per_certificate,omitempty"`
	DOBAsPerCelebration  *string             `json:"dob_as_per_celebration,omitempty"`
	MaritalStatus        string              `json:"marital_status"`
	SpouseName           *string             `json:"spouse_name,omitempty"`
	SpouseDateOfBirth    *string             `json:"spouse_date_of_birth,omitempty"`
	WeddingDate          *string             `json:"wedding_date,omitempty"`
	SpouseEmail          *string             `json:"spouse_email,omitempty"`
	BloodGroup           *string             `json:"blood_group,omitempty"`
	Email                *string             `json:"email,omitempty"`
	Phone                *string             `json:"phone,omitempty"`
	Address              *string             `json:"address,omitempty"`
	City                 *string             `json:"city,omitempty"`
	State                *string             `json:"state,omitempty"`
	Pincode              *string             `json:"pincode,omitempty"`
	Experience           *string             `json:"experience,omitempty"`
	CurrentSalary        *decimal.Decimal    `json:"current_salary,omitempty"`
	Position             *string             `json:"position,omitempty"`
	UANNumber            *string             `json:"uan_number,omitempty"`
	ESINumber            *string             `json:"esi_number,omitempty"`
	AadhaarNumber        *string             `json:"aadhaar_number,omitempty"`
	NameAsOnAadhaar      *string             `json:"name_as_on_aadhaar,omitempty"`
	PANNumber            *string             `json:"pan_number,omitempty"`
	NameAsOnPAN          *string             `json:"name_as_on_pan,omitempty"`
	BankAccountNumber    *string             `json:"bank_account_number,omitempty"`
	NameAsPerBankDetails *string             `json:"name_as_per_bank_details,omitempty"`
	BankName             *string             `json:"bank_name,omitempty"`
	BranchName           *string             `json:"branch_name,omitempty"`
	IFSCCode             *string             `json:"ifsc_code,omitempty"`
	Documents            []Document          `json:"documents"`
	EmergencyContacts    []EmergencyContact  `json:"emergency_contacts"`
	CreatedAt            string              `json:"created_at"`
	UpdatedAt            string              `json:"updated_at"`
}

type Filter struct {
	CenterCode *string `json:"center_code,omitempty"`
	Status     *string `json:"status,omitempty"`
	Search     *string `json:"search,omitempty"`
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && *f.Status != "" && !IsValidApprovalStatus(ApprovalStatus(*f.Status)) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be one of: Pending, Approved, Rejected"})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
