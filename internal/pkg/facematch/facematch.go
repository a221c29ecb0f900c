package facematch

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"
)

// Face match errors
var (
	// ErrStoreUnavailable means listing the reference photo store failed.
	// Distinct from a genuine "no match" so callers can degrade explicitly.
	ErrStoreUnavailable = errors.New("reference photo store is unavailable")

	// ErrUpstreamTimeout means a comparison call exceeded its budget.
	ErrUpstreamTimeout = errors.New("face comparison service timed out")
)

// Comparer compares a probe image against one stored reference image.
// Implementations call an external face-comparison capability.
type Comparer interface {
	// Compare returns whether the reference at refKey matches the probe at
	// or above threshold (0-100), and the reported similarity.
	Compare(ctx context.Context, refKey string, probe []byte, threshold float64) (bool, float64, error)
}

// ReferenceStore lists and serves the reference face photos. Lifecycle of
// the photos (upload on onboarding, delete on removal) is owned elsewhere;
// the evaluator only reads.
type ReferenceStore interface {
	// ListKeys returns all object keys under prefix.
	ListKeys(ctx context.Context, prefix string) ([]string, error)

	// FetchObject returns the raw bytes of the object at key.
	FetchObject(ctx context.Context, key string) ([]byte, error)
}

// Match is the outcome of evaluating a probe against the reference set.
type Match struct {
	Matched           bool
	ReferenceKey      *string
	SimilarityPercent float64
	// Note is set on degraded outcomes (empty reference set).
	Note string
}

// Evaluator scans reference photos for a face matching a probe image.
type Evaluator struct {
	store     ReferenceStore
	comparer  Comparer
	threshold float64
}

func NewEvaluator(store ReferenceStore, comparer Comparer, threshold float64) *Evaluator {
	return &Evaluator{
		store:     store,
		comparer:  comparer,
		threshold: threshold,
	}
}

// hasImageExtension filters listing keys down to comparison candidates.
func hasImageExtension(key string) bool {
	lower := strings.ToLower(key)
	return strings.HasSuffix(lower, ".jpg") ||
		strings.HasSuffix(lower, ".jpeg") ||
		strings.HasSuffix(lower, ".png")
}

// Evaluate scans the reference photos under prefix in lexicographic key
// order and returns the first reference matching the probe at or above the
// configured threshold. A comparison failure on one reference skips that
// reference only. A listing failure returns ErrStoreUnavailable.
func (e *Evaluator) Evaluate(ctx context.Context, probe []byte, prefix string) (Match, error) {
	keys, err := e.store.ListKeys(ctx, prefix)
	if err != nil {
		return Match{}, ErrStoreUnavailable
	}

	candidates := keys[:0:0]
	for _, key := range keys {
		if hasImageExtension(key) {
			candidates = append(candidates, key)
		}
	}

	if len(candidates) == 0 {
		return Match{Note: "no employee reference photos found under " + prefix}, nil
	}

	// Object listing order is not contractually stable; sort so that
	// first-match-wins is deterministic across runs.
	sort.Strings(candidates)

	for _, key := range candidates {
		matched, similarity, err := e.comparer.Compare(ctx, key, probe, e.threshold)
		if err != nil {
			// A timed-out upstream will time out for every remaining
			// reference too; abort instead of multiplying the wait.
			if errors.Is(err, ErrUpstreamTimeout) {
				return Match{}, err
			}
			// One bad reference must never abort the whole evaluation.
			slog.Debug("face comparison skipped reference", "key", key, "error", err)
			continue
		}
		if matched {
			ref := key
			return Match{
				Matched:           true,
				ReferenceKey:      &ref,
				SimilarityPercent: similarity,
			}, nil
		}
	}

	return Match{}, nil
}
