package attendance

// StatusCode is the four-way outcome of a validation attempt.
type StatusCode string

const (
	MatchedAndInside    StatusCode = "MATCHED_AND_INSIDE"
	MatchedButOutside   StatusCode = "MATCHED_BUT_OUTSIDE"
	UnmatchedButInside  StatusCode = "UNMATCHED_BUT_INSIDE"
	UnmatchedAndOutside StatusCode = "UNMATCHED_AND_OUTSIDE"
)

// Decision is the combined geofence + face-match verdict for one request.
// It is computed fresh per request and never persisted; only its
// consequence (an attendance mutation) is, and only on MatchedAndInside.
type Decision struct {
	FaceMatched       bool
	LocationOk        bool
	DistanceMeters    float64
	MatchedReference  *string
	SimilarityPercent float64
	Code              StatusCode
	Message           string
}

// Classify merges the face and location verdicts into the final decision.
// Total over all four boolean combinations.
func Classify(faceMatched, locationOk bool, distanceMeters float64, matchedReference *string, similarityPercent float64) Decision {
	d := Decision{
		FaceMatched:       faceMatched,
		LocationOk:        locationOk,
		DistanceMeters:    distanceMeters,
		MatchedReference:  matchedReference,
		SimilarityPercent: similarityPercent,
	}

	switch {
	case faceMatched && locationOk:
		d.Code = MatchedAndInside
		d.Message = "Face matched & inside geo-fence"
	case faceMatched && !locationOk:
		d.Code = MatchedButOutside
		d.Message = "Face matched but outside geo-fence"
	case !faceMatched && locationOk:
		d.Code = UnmatchedButInside
		d.Message = "Face not matched but inside geo-fence"
	default:
		d.Code = UnmatchedAndOutside
		d.Message = "Face not matched and outside geo-fence"
	}

	return d
}

// Authorized reports whether the decision permits an attendance mutation.
// Requiring both conditions is a deliberate policy choice.
func (d Decision) Authorized() bool {
	return d.Code == MatchedAndInside
}
