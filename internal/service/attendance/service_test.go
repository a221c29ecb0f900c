package attendance

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emscore/ems-backend-go/internal/domain/attendance"
	"github.com/emscore/ems-backend-go/internal/pkg/facematch"
	"github.com/emscore/ems-backend-go/internal/pkg/geo"
)

var testZone = geo.Zone{
	Center:       geo.Point{Latitude: 17.483114, Longitude: 78.320068},
	RadiusMeters: 100,
}

type fakeAttendanceRepo struct {
	createErr   error
	created     *attendance.Attendance
	existing    *attendance.Attendance
	getErr      error
	updated     *attendance.Attendance
	updateErr   error
	listResult  []attendance.Attendance
	statusedID  string
	statusValue attendance.Status
}

func (f *fakeAttendanceRepo) Create(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if f.createErr != nil {
		return attendance.Attendance{}, f.createErr
	}
	att.ID = "att-1"
	att.CreatedAt = time.Now()
	att.UpdatedAt = att.CreatedAt
	f.created = &att
	return att, nil
}

func (f *fakeAttendanceRepo) GetByID(_ context.Context, id string) (attendance.Attendance, error) {
	if f.existing == nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *f.existing, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(_ context.Context, employeeID, date string) (attendance.Attendance, error) {
	if f.getErr != nil {
		return attendance.Attendance{}, f.getErr
	}
	if f.existing == nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return *f.existing, nil
}

func (f *fakeAttendanceRepo) Update(_ context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	if f.updateErr != nil {
		return attendance.Attendance{}, f.updateErr
	}
	f.updated = &att
	return att, nil
}

func (f *fakeAttendanceRepo) UpdateStatus(_ context.Context, id string, status attendance.Status) (attendance.Attendance, error) {
	if f.existing == nil {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	f.statusedID = id
	f.statusValue = status
	att := *f.existing
	att.Status = status
	return att, nil
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	return f.listResult, nil
}

func (f *fakeAttendanceRepo) MarkAbsent(_ context.Context, date string) (int64, error) {
	return 0, nil
}

type stubStore struct {
	keys    []string
	listErr error
}

func (s *stubStore) ListKeys(_ context.Context, prefix string) ([]string, error) {
	return s.keys, s.listErr
}

func (s *stubStore) FetchObject(_ context.Context, key string) ([]byte, error) {
	return []byte("ref"), nil
}

type stubComparer struct {
	matchKey   string
	similarity float64
}

func (s *stubComparer) Compare(_ context.Context, refKey string, _ []byte, _ float64) (bool, float64, error) {
	if refKey == s.matchKey {
		return true, s.similarity, nil
	}
	return false, 12.5, nil
}

func newTestService(repo *fakeAttendanceRepo, store facematch.ReferenceStore, comparer facematch.Comparer, now time.Time) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		AttendanceRepository: repo,
		zone:                 testZone,
		evaluator:            facematch.NewEvaluator(store, comparer, 90),
		defaultFolder:        "emp-images",
		now:                  func() time.Time { return now },
	}
}

func TestValidateMatchedInsideAuthorizes(t *testing.T) {
	svc := newTestService(
		&fakeAttendanceRepo{},
		&stubStore{keys: []string{"emp-images/ravi.jpg"}},
		&stubComparer{matchKey: "emp-images/ravi.jpg", similarity: 97.456},
		time.Now(),
	)

	resp, err := svc.Validate(context.Background(), attendance.ValidateRequest{
		Latitude:  17.483114,
		Longitude: 78.320068,
		Probe:     []byte("probe"),
	})
	require.NoError(t, err)

	assert.True(t, resp.FaceMatched)
	assert.True(t, resp.LocationOk)
	require.NotNil(t, resp.MatchedWith)
	assert.Equal(t, "emp-images/ravi.jpg", *resp.MatchedWith)
	assert.Equal(t, 97.46, resp.Similarity)
	assert.Equal(t, 0.0, resp.DistanceM)
	assert.Equal(t, "Face matched & inside geo-fence", resp.Status)
}

func TestValidateMatchedOutside(t *testing.T) {
	svc := newTestService(
		&fakeAttendanceRepo{},
		&stubStore{keys: []string{"emp-images/ravi.jpg"}},
		&stubComparer{matchKey: "emp-images/ravi.jpg", similarity: 95},
		time.Now(),
	)

	// Roughly 1.1 km north of the zone center.
	resp, err := svc.Validate(context.Background(), attendance.ValidateRequest{
		Latitude:  17.493114,
		Longitude: 78.320068,
		Probe:     []byte("probe"),
	})
	require.NoError(t, err)

	assert.True(t, resp.FaceMatched)
	assert.False(t, resp.LocationOk)
	assert.Greater(t, resp.DistanceM, 1000.0)
	assert.Equal(t, "Face matched but outside geo-fence", resp.Status)
}

func TestValidateStoreUnavailableDegrades(t *testing.T) {
	svc := newTestService(
		&fakeAttendanceRepo{},
		&stubStore{listErr: errors.New("connection refused")},
		&stubComparer{},
		time.Now(),
	)

	resp, err := svc.Validate(context.Background(), attendance.ValidateRequest{
		Latitude:  17.483114,
		Longitude: 78.320068,
		Probe:     []byte("probe"),
	})
	require.NoError(t, err)

	assert.False(t, resp.FaceMatched)
	assert.Nil(t, resp.MatchedWith)
	assert.True(t, resp.LocationOk)
	assert.Equal(t, "reference photo store unavailable", resp.Note)
	assert.Equal(t, "Face not matched but inside geo-fence", resp.Status)
}

func TestValidateEmptyReferenceSet(t *testing.T) {
	svc := newTestService(
		&fakeAttendanceRepo{},
		&stubStore{keys: []string{"emp-images/readme.txt"}},
		&stubComparer{},
		time.Now(),
	)

	resp, err := svc.Validate(context.Background(), attendance.ValidateRequest{
		Latitude:  17.483114,
		Longitude: 78.320068,
		Probe:     []byte("probe"),
	})
	require.NoError(t, err)

	assert.False(t, resp.FaceMatched)
	assert.Contains(t, resp.Note, "no employee reference photos found")
}

func TestValidateRejectsBadCoordinates(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &stubStore{}, &stubComparer{}, time.Now())

	_, err := svc.Validate(context.Background(), attendance.ValidateRequest{
		Latitude:  91,
		Longitude: 78.320068,
		Probe:     []byte("probe"),
	})
	require.Error(t, err)
}

func TestCheckInCreatesTodayRecord(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	now := time.Date(2025, 6, 2, 9, 5, 0, 0, time.UTC)
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, now)

	resp, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, "2025-06-02", resp.Date)
	require.NotNil(t, resp.CheckIn)
	assert.Equal(t, "09:05", *resp.CheckIn)
	assert.Nil(t, resp.CheckOut)
	assert.Equal(t, "Present", resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, "emp-1", repo.created.EmployeeID)
}

func TestCheckInTwiceSameDayConflicts(t *testing.T) {
	repo := &fakeAttendanceRepo{createErr: attendance.ErrAlreadyCheckedIn}
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, time.Now())

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInStorageFailureIsNotConflict(t *testing.T) {
	repo := &fakeAttendanceRepo{createErr: errors.New("connection reset")}
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, time.Now())

	_, err := svc.CheckIn(context.Background(), attendance.CheckInRequest{EmployeeID: "emp-1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckOutComputesWorkingHours(t *testing.T) {
	checkIn := "09:05"
	repo := &fakeAttendanceRepo{existing: &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	}}
	now := time.Date(2025, 6, 2, 18, 0, 0, 0, time.UTC)
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, now)

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	require.NotNil(t, resp.CheckOut)
	assert.Equal(t, "18:00", *resp.CheckOut)
	assert.Equal(t, 8.92, resp.WorkingHours)
	assert.Equal(t, 0.92, resp.Overtime)
}

func TestCheckOutClampsNegativeElapsedToZero(t *testing.T) {
	checkIn := "23:50"
	repo := &fakeAttendanceRepo{existing: &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	}}
	now := time.Date(2025, 6, 2, 0, 10, 0, 0, time.UTC)
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, now)

	resp, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.WorkingHours)
	assert.Equal(t, 0.0, resp.Overtime)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	repo := &fakeAttendanceRepo{}
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, time.Now())

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutOnAbsentRecord(t *testing.T) {
	repo := &fakeAttendanceRepo{existing: &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		Status:     attendance.StatusAbsent,
	}}
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, time.Now())

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutTwice(t *testing.T) {
	checkIn := "09:05"
	checkOut := "18:00"
	repo := &fakeAttendanceRepo{existing: &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		CheckIn:    &checkIn,
		CheckOut:   &checkOut,
		Status:     attendance.StatusPresent,
	}}
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, time.Now())

	_, err := svc.CheckOut(context.Background(), attendance.CheckOutRequest{EmployeeID: "emp-1"})
	require.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestUpdateStatusRejectsUnknownValue(t *testing.T) {
	svc := newTestService(&fakeAttendanceRepo{}, &stubStore{}, &stubComparer{}, time.Now())

	_, err := svc.UpdateStatus(context.Background(), attendance.UpdateStatusRequest{ID: "att-1", Status: "Sleeping"})
	require.Error(t, err)
}

func TestUpdateStatusOverridesDay(t *testing.T) {
	repo := &fakeAttendanceRepo{existing: &attendance.Attendance{
		ID:         "att-1",
		EmployeeID: "emp-1",
		Date:       "2025-06-02",
		Status:     attendance.StatusPresent,
	}}
	svc := newTestService(repo, &stubStore{}, &stubComparer{}, time.Now())

	resp, err := svc.UpdateStatus(context.Background(), attendance.UpdateStatusRequest{ID: "att-1", Status: "Half Day"})
	require.NoError(t, err)

	assert.Equal(t, "Half Day", resp.Status)
	assert.Equal(t, attendance.StatusHalfDay, repo.statusValue)
}

func TestComputeWorkingHours(t *testing.T) {
	cases := []struct {
		in, out string
		want    float64
	}{
		{"09:00", "17:00", 8},
		{"09:05", "18:00", 8.92},
		{"09:00", "09:00", 0},
		{"22:00", "06:00", 0},
	}
	for _, c := range cases {
		if got := computeWorkingHours(c.in, c.out); got != c.want {
			t.Errorf("computeWorkingHours(%q, %q) = %v, want %v", c.in, c.out, got, c.want)
		}
	}
}
