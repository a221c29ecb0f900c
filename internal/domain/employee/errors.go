package employee

import "errors"

// Employee domain errors
var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrEmployeeIDTaken  = errors.New("employee ID is already registered")
	ErrEmailTaken       = errors.New("email is already registered")
)
