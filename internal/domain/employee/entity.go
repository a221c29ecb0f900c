package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the full onboarding profile. The EmployeeID is the
// business identifier (badge code) shared with the attendance and leave
// records; ID is the storage key.
type Employee struct {
	ID                    string
	EmployeeID            string
	CenterCode            *string
	FirstName             string
	LastName              *string
	FatherName            *string
	MotherName            *string
	Status                ApprovalStatus
	ValidationNote        *string
	HighestQualification  *string
	DOBAsPerCertificate   *time.Time
	DOBAsPerCelebration   *time.Time
	MaritalStatus         MaritalStatus
	SpouseName            *string
	SpouseDateOfBirth     *time.Time
	WeddingDate           *time.Time
	SpouseEmail           *string
	BloodGroup            *string
	Email                 *string
	Phone                 *string
	Address               *string
	City                  *string
	State                 *string
	Pincode               *string
	Experience            *string
	CurrentSalary         *decimal.Decimal
	Position              *string
	UANNumber             *string
	ESINumber             *string
	AadhaarNumber         *string
	NameAsOnAadhaar       *string
	PANNumber             *string
	NameAsOnPAN           *string
	BankAccountNumber     *string
	NameAsPerBankDetails  *string
	BankName              *string
	BranchName            *string
	IFSCCode              *string
	Documents             []Document
	EmergencyContacts     []EmergencyContact
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time
}

type ApprovalStatus string

const (
	StatusPending  ApprovalStatus = "Pending"
	StatusApproved ApprovalStatus = "Approved"
	StatusRejected ApprovalStatus = "Rejected"
)

func IsValidApprovalStatus(s ApprovalStatus) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type MaritalStatus string

const (
	MaritalSingle   MaritalStatus = "Single"
	MaritalMarried  MaritalStatus = "Married"
	MaritalDivorced MaritalStatus = "Divorced"
	MaritalWidowed  MaritalStatus = "Widowed"
)

func IsValidMaritalStatus(s MaritalStatus) bool {
	switch s {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed:
		return true
	}
	return false
}

// Document points at an uploaded file in object storage. Key is the object
// key so the file can be removed when the profile is deleted.
type Document struct {
	Type string `json:"type"`
	URL  string `json:"url"`
	Key  string `json:"key"`
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
}
