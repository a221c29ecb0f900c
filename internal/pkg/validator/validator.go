package validator

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// Email validation
func IsValidEmail(email string) bool {
	return emailRegex.MatchString(email)
}

var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// UUID validation
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// Numeric validation
var numericRegex = regexp.MustCompile(`^[0-9]+$`)

func IsNumeric(s string) bool {
	return numericRegex.MatchString(s)
}

// Date validation
func IsValidDate(dateStr string) (time.Time, bool) {
	date, err := time.Parse("2006-01-02", dateStr)
	return date, err == nil
}

// Month validation ("YYYY-MM")
func IsValidMonth(monthStr string) bool {
	_, err := time.Parse("2006-01", monthStr)
	return err == nil
}

// ParseCoordinate parses a decimal-degree coordinate sent as a form field.
// strconv accepts "NaN" and "Inf", which would poison every distance
// computed downstream, so only finite values count as parsed.
func ParseCoordinate(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Aadhaar validation (Indian national ID, 12 digits)
func IsValidAadhaar(aadhaar string) bool {
	return len(aadhaar) == 12 && IsNumeric(aadhaar)
}

var panRegex = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)

// PAN validation (Indian tax ID)
func IsValidPAN(pan string) bool {
	return panRegex.MatchString(strings.ToUpper(pan))
}

var ifscRegex = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)

// IFSC validation (Indian bank branch code)
func IsValidIFSC(ifsc string) bool {
	return ifscRegex.MatchString(strings.ToUpper(ifsc))
}

// Pincode validation (Indian postal code, 6 digits not starting with 0)
func IsValidPincode(pincode string) bool {
	return len(pincode) == 6 && IsNumeric(pincode) && pincode[0] != '0'
}

// Phone number validation
func IsValidPhoneNumber(phone string) bool {
	// Remove spaces and dashes
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")

	phone = strings.TrimPrefix(phone, "+91")
	phone = strings.TrimPrefix(phone, "0")

	// Indian mobile numbers are 10 digits starting with 6-9
	if len(phone) != 10 || !IsNumeric(phone) {
		return false
	}
	return phone[0] >= '6' && phone[0] <= '9'
}

// Slice contains check
func IsInSlice(value string, slice []string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}
