package geo

import (
	"math"
	"testing"
)

func TestDistanceMetersSymmetry(t *testing.T) {
	cases := []struct {
		a, b Point
	}{
		{Point{17.483114, 78.320068}, Point{17.4850, 78.3215}},
		{Point{-33.8688, 151.2093}, Point{51.5074, -0.1278}},
		{Point{0, 0}, Point{0, 180}},
	}
	for _, c := range cases {
		ab := DistanceMeters(c.a, c.b)
		ba := DistanceMeters(c.b, c.a)
		if ab != ba {
			t.Errorf("DistanceMeters(%v,%v) = %v but reverse = %v", c.a, c.b, ab, ba)
		}
	}
}

func TestDistanceMetersZero(t *testing.T) {
	points := []Point{
		{17.483114, 78.320068},
		{0, 0},
		{-90, 45},
	}
	for _, p := range points {
		if d := DistanceMeters(p, p); d != 0 {
			t.Errorf("DistanceMeters(%v,%v) = %v, want 0", p, p, d)
		}
	}
}

func TestDistanceMetersKnownDistance(t *testing.T) {
	// One degree of latitude is ~111.19 km on a 6371 km sphere.
	a := Point{0, 0}
	b := Point{1, 0}
	got := DistanceMeters(a, b)
	want := 111194.9
	if math.Abs(got-want) > 100 {
		t.Errorf("DistanceMeters one degree latitude = %v, want ~%v", got, want)
	}
}

func TestDistanceMetersNonNegative(t *testing.T) {
	a := Point{17.483114, 78.320068}
	b := Point{17.483120, 78.320070}
	if d := DistanceMeters(a, b); d < 0 {
		t.Errorf("DistanceMeters = %v, want non-negative", d)
	}
}

func TestZoneContainsBoundary(t *testing.T) {
	z := Zone{Center: Point{17.483114, 78.320068}, RadiusMeters: 100}

	cases := []struct {
		distance float64
		want     bool
	}{
		{0, true},
		{99.99, true},
		{100, true}, // boundary is inclusive
		{100.000001, false},
		{500, false},
	}
	for _, c := range cases {
		if got := z.Contains(c.distance); got != c.want {
			t.Errorf("Contains(%v) = %v, want %v", c.distance, got, c.want)
		}
	}
}

func TestZoneDistanceTo(t *testing.T) {
	z := Zone{Center: Point{17.483114, 78.320068}, RadiusMeters: 100}

	// Same point as the center must be inside at distance zero.
	if d := z.DistanceTo(z.Center); d != 0 {
		t.Errorf("DistanceTo(center) = %v, want 0", d)
	}

	// ~500m north of the center: 500m / 111194.9m per degree.
	far := Point{z.Center.Latitude + 500.0/111194.9, z.Center.Longitude}
	d := z.DistanceTo(far)
	if math.Abs(d-500) > 1 {
		t.Errorf("DistanceTo(~500m point) = %v, want ~500", d)
	}
	if z.Contains(d) {
		t.Errorf("Contains(%v) = true for 100m zone, want false", d)
	}
}
