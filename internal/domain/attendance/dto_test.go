package attendance

import (
	"math"
	"testing"
)

func TestValidateRequestCoordinateRange(t *testing.T) {
	cases := []struct {
		name     string
		lat, lon float64
		wantErr  bool
	}{
		{"valid", 17.483114, 78.320068, false},
		{"latitude too high", 95, 78.3, true},
		{"latitude too low", -95, 78.3, true},
		{"longitude too high", 17.4, 185, true},
		{"longitude too low", 17.4, -185, true},
		{"boundary poles", 90, 180, false},
		{"nan latitude", math.NaN(), 78.3, true},
		{"nan longitude", 17.4, math.NaN(), true},
		{"inf latitude", math.Inf(1), 78.3, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := ValidateRequest{
				Latitude:  c.lat,
				Longitude: c.lon,
				Probe:     []byte("probe"),
			}
			err := req.Validate()
			if c.wantErr && err == nil {
				t.Errorf("Validate(lat=%v, lon=%v) = nil, want error", c.lat, c.lon)
			}
			if !c.wantErr && err != nil {
				t.Errorf("Validate(lat=%v, lon=%v) = %v, want nil", c.lat, c.lon, err)
			}
		})
	}
}
