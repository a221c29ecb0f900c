package leave

import (
	"time"
)

// Leave is one leave application. Dates are local calendar days; Duration
// is the day count, inclusive of both ends, computed at application time.
type Leave struct {
	ID           string
	EmployeeID   string
	EmployeeName string
	Type         Type
	StartDate    string // YYYY-MM-DD
	EndDate      string // YYYY-MM-DD
	Status       Status
	Reason       *string
	AppliedDate  string // YYYY-MM-DD
	ApprovedDate *string
	ApprovedBy   *string
	Duration     int
	Comments     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Type string

const (
	TypeCasual    Type = "Casual Leave"
	TypeSick      Type = "Sick Leave"
	TypeEarned    Type = "Earned Leave"
	TypeMaternity Type = "Maternity Leave"
	TypePaternity Type = "Paternity Leave"
	TypeUnpaid    Type = "Unpaid Leave"
)

func IsValidType(t Type) bool {
	switch t {
	case TypeCasual, TypeSick, TypeEarned, TypeMaternity, TypePaternity, TypeUnpaid:
		return true
	}
	return false
}
