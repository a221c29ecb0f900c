package facematch

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	keys    []string
	listErr error
}

func (f *fakeStore) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.keys, nil
}

func (f *fakeStore) FetchObject(ctx context.Context, key string) ([]byte, error) {
	return []byte("image-bytes"), nil
}

type fakeComparer struct {
	calls      []string
	matchKey   string
	similarity float64
	errKeys    map[string]error
}

func (f *fakeComparer) Compare(ctx context.Context, refKey string, probe []byte, threshold float64) (bool, float64, error) {
	f.calls = append(f.calls, refKey)
	if err, ok := f.errKeys[refKey]; ok {
		return false, 0, err
	}
	if refKey == f.matchKey {
		return true, f.similarity, nil
	}
	return false, 0, nil
}

func TestEvaluateFirstMatchShortCircuits(t *testing.T) {
	store := &fakeStore{keys: []string{
		"emp-images/a.jpg",
		"emp-images/b.jpg",
		"emp-images/c.jpg",
		"emp-images/d.jpg",
	}}
	comparer := &fakeComparer{matchKey: "emp-images/b.jpg", similarity: 95.5}
	ev := NewEvaluator(store, comparer, 90)

	match, err := ev.Evaluate(context.Background(), []byte("probe"), "emp-images")
	require.NoError(t, err)

	assert.True(t, match.Matched)
	require.NotNil(t, match.ReferenceKey)
	assert.Equal(t, "emp-images/b.jpg", *match.ReferenceKey)
	assert.Equal(t, 95.5, match.SimilarityPercent)

	// The scan must stop at the first match: a and b compared, c and d not.
	assert.Equal(t, []string{"emp-images/a.jpg", "emp-images/b.jpg"}, comparer.calls)
}

func TestEvaluateEmptyReferenceSet(t *testing.T) {
	store := &fakeStore{keys: nil}
	comparer := &fakeComparer{}
	ev := NewEvaluator(store, comparer, 90)

	match, err := ev.Evaluate(context.Background(), []byte("probe"), "emp-images")
	require.NoError(t, err)

	assert.False(t, match.Matched)
	assert.Nil(t, match.ReferenceKey)
	assert.Equal(t, float64(0), match.SimilarityPercent)
	assert.NotEmpty(t, match.Note)
	assert.Empty(t, comparer.calls, "comparer must not be invoked for an empty set")
}

func TestEvaluateSkipsNonImageKeys(t *testing.T) {
	store := &fakeStore{keys: []string{
		"emp-images/readme.txt",
		"emp-images/a.jpg",
		"emp-images/manifest.json",
	}}
	comparer := &fakeComparer{}
	ev := NewEvaluator(store, comparer, 90)

	match, err := ev.Evaluate(context.Background(), []byte("probe"), "emp-images")
	require.NoError(t, err)

	assert.False(t, match.Matched)
	assert.Equal(t, []string{"emp-images/a.jpg"}, comparer.calls)
	assert.Empty(t, match.Note, "non-empty candidate set must not report an empty-store note")
}

func TestEvaluateSkipsFailingReference(t *testing.T) {
	store := &fakeStore{keys: []string{
		"emp-images/a.jpg",
		"emp-images/b.jpg",
	}}
	comparer := &fakeComparer{
		matchKey:   "emp-images/b.jpg",
		similarity: 92,
		errKeys: map[string]error{
			"emp-images/a.jpg": errors.New("malformed image"),
		},
	}
	ev := NewEvaluator(store, comparer, 90)

	match, err := ev.Evaluate(context.Background(), []byte("probe"), "emp-images")
	require.NoError(t, err)

	// The broken reference is skipped, not fatal.
	assert.True(t, match.Matched)
	require.NotNil(t, match.ReferenceKey)
	assert.Equal(t, "emp-images/b.jpg", *match.ReferenceKey)
}

func TestEvaluateAllReferencesFail(t *testing.T) {
	store := &fakeStore{keys: []string{"emp-images/a.jpg"}}
	comparer := &fakeComparer{
		errKeys: map[string]error{
			"emp-images/a.jpg": errors.New("comparison rejected"),
		},
	}
	ev := NewEvaluator(store, comparer, 90)

	match, err := ev.Evaluate(context.Background(), []byte("probe"), "emp-images")
	require.NoError(t, err)
	assert.False(t, match.Matched)
	assert.Equal(t, float64(0), match.SimilarityPercent)
}

func TestEvaluateUpstreamTimeoutAborts(t *testing.T) {
	store := &fakeStore{keys: []string{
		"emp-images/a.jpg",
		"emp-images/b.jpg",
	}}
	comparer := &fakeComparer{
		errKeys: map[string]error{
			"emp-images/a.jpg": ErrUpstreamTimeout,
		},
	}
	ev := NewEvaluator(store, comparer, 90)

	_, err := ev.Evaluate(context.Background(), []byte("probe"), "emp-images")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstreamTimeout)
	assert.Equal(t, []string{"emp-images/a.jpg"}, comparer.calls)
}

func TestEvaluateStoreUnavailable(t *testing.T) {
	store := &fakeStore{listErr: errors.New("connection refused")}
	comparer := &fakeComparer{}
	ev := NewEvaluator(store, comparer, 90)

	_, err := ev.Evaluate(context.Background(), []byte("probe"), "emp-images")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreUnavailable)
	assert.Empty(t, comparer.calls)
}

func TestEvaluateDeterministicScanOrder(t *testing.T) {
	// Listing order is not stable; the evaluator must sort before scanning.
	store := &fakeStore{keys: []string{
		"emp-images/c.jpg",
		"emp-images/a.jpg",
		"emp-images/b.jpg",
	}}
	comparer := &fakeComparer{}
	ev := NewEvaluator(store, comparer, 90)

	_, err := ev.Evaluate(context.Background(), []byte("probe"), "emp-images")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"emp-images/a.jpg",
		"emp-images/b.jpg",
		"emp-images/c.jpg",
	}, comparer.calls)
}
