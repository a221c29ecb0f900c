package attendance

import (
	"testing"
)

func TestClassifyTruthTable(t *testing.T) {
	cases := []struct {
		faceMatched bool
		locationOk  bool
		wantCode    StatusCode
		wantMessage string
	}{
		{true, true, MatchedAndInside, "Face matched & inside geo-fence"},
		{true, false, MatchedButOutside, "Face matched but outside geo-fence"},
		{false, true, UnmatchedButInside, "Face not matched but inside geo-fence"},
		{false, false, UnmatchedAndOutside, "Face not matched and outside geo-fence"},
	}
	for _, c := range cases {
		d := Classify(c.faceMatched, c.locationOk, 0, nil, 0)
		if d.Code != c.wantCode {
			t.Errorf("Classify(%v,%v).Code = %q, want %q", c.faceMatched, c.locationOk, d.Code, c.wantCode)
		}
		if d.Message != c.wantMessage {
			t.Errorf("Classify(%v,%v).Message = %q, want %q", c.faceMatched, c.locationOk, d.Message, c.wantMessage)
		}
	}
}

func TestClassifyCarriesInputsThrough(t *testing.T) {
	ref := "emp-images/e1.jpg"
	d := Classify(true, false, 432.17, &ref, 97.4)

	if !d.FaceMatched || d.LocationOk {
		t.Errorf("Classify verdicts = (%v,%v), want (true,false)", d.FaceMatched, d.LocationOk)
	}
	if d.DistanceMeters != 432.17 {
		t.Errorf("DistanceMeters = %v, want 432.17", d.DistanceMeters)
	}
	if d.MatchedReference == nil || *d.MatchedReference != ref {
		t.Errorf("MatchedReference = %v, want %q", d.MatchedReference, ref)
	}
	if d.SimilarityPercent != 97.4 {
		t.Errorf("SimilarityPercent = %v, want 97.4", d.SimilarityPercent)
	}
}

func TestOnlyMatchedAndInsideAuthorizes(t *testing.T) {
	for _, faceMatched := range []bool{true, false} {
		for _, locationOk := range []bool{true, false} {
			d := Classify(faceMatched, locationOk, 0, nil, 0)
			want := faceMatched && locationOk
			if d.Authorized() != want {
				t.Errorf("Classify(%v,%v).Authorized() = %v, want %v", faceMatched, locationOk, d.Authorized(), want)
			}
		}
	}
}
