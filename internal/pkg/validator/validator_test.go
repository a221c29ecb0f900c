package validator

import (
	"testing"
)

func TestIsValidEmail(t *testing.T) {
	cases := map[string]bool{
		"ravi.kumar@example.com": true,
		"hr@ems.co.in":           true,
		"not-an-email":           false,
		"@example.com":           false,
		"a@b":                    false,
	}
	for in, want := range cases {
		if got := IsValidEmail(in); got != want {
			t.Errorf("IsValidEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	cases := map[string]bool{
		"2025-01":    true,
		"2025-12":    true,
		"2025-13":    false,
		"2025":       false,
		"2025-01-15": false,
		"":           false,
	}
	for in, want := range cases {
		if got := IsValidMonth(in); got != want {
			t.Errorf("IsValidMonth(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseCoordinate(t *testing.T) {
	v, ok := ParseCoordinate(" 17.483114 ")
	if !ok || v != 17.483114 {
		t.Errorf("ParseCoordinate(\" 17.483114 \") = (%v, %v), want (17.483114, true)", v, ok)
	}
	if _, ok := ParseCoordinate("north"); ok {
		t.Error("ParseCoordinate(\"north\") should fail")
	}
	if _, ok := ParseCoordinate(""); ok {
		t.Error("ParseCoordinate(\"\") should fail")
	}
}

func TestParseCoordinateRejectsNonFinite(t *testing.T) {
	// strconv.ParseFloat accepts all of these, but none is a coordinate.
	for _, in := range []string{"NaN", "nan", "Inf", "-Inf", "+Inf", "Infinity"} {
		if _, ok := ParseCoordinate(in); ok {
			t.Errorf("ParseCoordinate(%q) should fail", in)
		}
	}
}

func TestIsValidAadhaar(t *testing.T) {
	cases := map[string]bool{
		"123412341234":  true,
		"12341234123":   false,
		"1234123412345": false,
		"12341234123a":  false,
	}
	for in, want := range cases {
		if got := IsValidAadhaar(in); got != want {
			t.Errorf("IsValidAadhaar(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsValidPAN(t *testing.T) {
	cases := map[string]bool{
		"ABCDE1234F": true,
		"abcde1234f": true,
		"ABC1234567": false,
		"ABCDE12345": false,
	}
	for in, want := range cases {
		if got := IsValidPAN(in); got != want {
			t.Errorf("IsValidPAN(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsValidIFSC(t *testing.T) {
	cases := map[string]bool{
		"SBIN0001234": true,
		"HDFC0CAG123": true,
		"SBIN1001234": false,
		"SB0001234":   false,
	}
	for in, want := range cases {
		if got := IsValidIFSC(in); got != want {
			t.Errorf("IsValidIFSC(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsValidPincode(t *testing.T) {
	cases := map[string]bool{
		"500081":  true,
		"050081":  false,
		"50008":   false,
		"5000811": false,
	}
	for in, want := range cases {
		if got := IsValidPincode(in); got != want {
			t.Errorf("IsValidPincode(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsValidPhoneNumber(t *testing.T) {
	cases := map[string]bool{
		"9876543210":     true,
		"+91 98765 4321": false,
		"+919876543210":  true,
		"09876543210":    true,
		"1234567890":     false,
		"98765":          false,
	}
	for in, want := range cases {
		if got := IsValidPhoneNumber(in); got != want {
			t.Errorf("IsValidPhoneNumber(%q) = %v, want %v", in, got, want)
		}
	}
}
