package attendance

import (
	"time"
)

// Status is the day-level attendance status.
type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusOnLeave Status = "On Leave"
	StatusHalfDay Status = "Half Day"
	StatusLate    Status = "Late"
)

// ValidStatuses lists the accepted day-level statuses.
var ValidStatuses = []Status{StatusPresent, StatusAbsent, StatusOnLeave, StatusHalfDay, StatusLate}

func IsValidStatus(s Status) bool {
	for _, v := range ValidStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Attendance is one employee's record for one calendar day. The natural
// key is (EmployeeID, Date); the storage layer enforces it as unique.
//
// Lifecycle: created on the first successful check-in of the day
// (CheckIn set, CheckOut nil), closed on check-out (CheckOut set,
// WorkingHours and Overtime computed). Never deleted by the attendance
// core; status corrections go through a separate admin path.
type Attendance struct {
	ID         string
	EmployeeID string
	Date       string  // local calendar day, YYYY-MM-DD
	CheckIn    *string // time of day, HH:MM
	CheckOut   *string // time of day, HH:MM
	Status     Status
	// WorkingHours is the elapsed check-in to check-out time in decimal
	// hours, never negative. A checkout earlier in the clock than the
	// check-in stores zero.
	WorkingHours float64
	Overtime     float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Open reports whether the day has a check-in but no check-out yet.
func (a Attendance) Open() bool {
	return a.CheckIn != nil && a.CheckOut == nil
}
