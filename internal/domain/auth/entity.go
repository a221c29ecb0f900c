package auth

import (
	"time"
)

// Role is the authorization level carried in issued tokens.
type Role string

const (
	RoleEmployee   Role = "employee"
	RoleCentre     Role = "centre"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "super-admin"
)

// EmployeeLogin is an employee's credential record. Account usability is
// gated on the linked profile being Approved.
type EmployeeLogin struct {
	ID         string
	EmployeeID string
	CenterCode *string
	Email      string
	Password   string // bcrypt hash
	FirstName  string
	LastName   string
	Role       Role
	Status     string // Pending, Approved, Rejected
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CentreLogin is a centre operator's credential record.
type CentreLogin struct {
	ID         string
	Username   string
	Email      string
	Password   string // bcrypt hash
	CentreName string
	CentreCode string
	Role       Role
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AdminLogin is an administrator's credential record.
type AdminLogin struct {
	ID        string
	AdminID   string
	Password  string // bcrypt hash
	Name      string
	Email     string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}
