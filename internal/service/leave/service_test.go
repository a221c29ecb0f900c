package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emscore/ems-backend-go/internal/domain/employee"
	"github.com/emscore/ems-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	overlap  bool
	existing *leave.Leave
	created  *leave.Leave
	updated  *leave.Leave
}

func (f *fakeLeaveRepo) Create(_ context.Context, lv leave.Leave) (leave.Leave, error) {
	lv.ID = "lv-1"
	lv.CreatedAt = time.Now()
	lv.UpdatedAt = lv.CreatedAt
	f.created = &lv
	return lv, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.Leave, error) {
	if f.existing == nil {
		return leave.Leave{}, leave.ErrLeaveNotFound
	}
	return *f.existing, nil
}

func (f *fakeLeaveRepo) Update(_ context.Context, lv leave.Leave) (leave.Leave, error) {
	f.updated = &lv
	return lv, nil
}

func (f *fakeLeaveRepo) List(_ context.Context, filter leave.Filter) ([]leave.Leave, error) {
	return nil, nil
}

func (f *fakeLeaveRepo) HasOverlap(_ context.Context, employeeID, startDate, endDate string) (bool, error) {
	return f.overlap, nil
}

func (f *fakeLeaveRepo) CountByStatus(_ context.Context) (map[leave.Status]int64, error) {
	return nil, nil
}

type fakeEmployeeRepo struct {
	profile *employee.Employee
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByEmployeeID(_ context.Context, employeeID string) (employee.Employee, error) {
	if f.profile == nil || f.profile.EmployeeID != employeeID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return *f.profile, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) UpdateApproval(_ context.Context, id string, status employee.ApprovalStatus, validationNote *string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) List(_ context.Context, filter employee.Filter) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, id string) error {
	return nil
}

func (f *fakeEmployeeRepo) CountByStatus(_ context.Context) (map[employee.ApprovalStatus]int64, error) {
	return nil, nil
}

type fakeEmailService struct {
	managerFrom    string
	managerBadge   string
	managerMessage string
}

func (f *fakeEmailService) SendPasswordResetOTP(to, code, expiresIn string) error {
	return nil
}

func (f *fakeEmailService) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, status string, comments *string) error {
	return nil
}

func (f *fakeEmailService) SendManagerMessage(employeeName, employeeID, message string) error {
	f.managerFrom = employeeName
	f.managerBadge = employeeID
	f.managerMessage = message
	return nil
}

func newTestService(repo *fakeLeaveRepo, now time.Time) *LeaveServiceImpl {
	return &LeaveServiceImpl{
		LeaveRepository: repo,
		now:             func() time.Time { return now },
	}
}

func TestApplyComputesInclusiveDuration(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))

	resp, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID:   "emp-1",
		EmployeeName: "Ravi Kumar",
		Type:         "Casual Leave",
		StartDate:    "2025-06-10",
		EndDate:      "2025-06-12",
	})
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Duration)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, "2025-06-01", resp.AppliedDate)
}

func TestApplySingleDayLeave(t *testing.T) {
	repo := &fakeLeaveRepo{}
	svc := newTestService(repo, time.Now())

	resp, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID:   "emp-1",
		EmployeeName: "Ravi Kumar",
		Type:         "Sick Leave",
		StartDate:    "2025-06-10",
		EndDate:      "2025-06-10",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Duration)
}

func TestApplyRejectsOverlap(t *testing.T) {
	repo := &fakeLeaveRepo{overlap: true}
	svc := newTestService(repo, time.Now())

	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID:   "emp-1",
		EmployeeName: "Ravi Kumar",
		Type:         "Casual Leave",
		StartDate:    "2025-06-10",
		EndDate:      "2025-06-12",
	})
	require.ErrorIs(t, err, leave.ErrOverlappingLeave)
}

func TestApplyRejectsReversedRange(t *testing.T) {
	svc := newTestService(&fakeLeaveRepo{}, time.Now())

	_, err := svc.Apply(context.Background(), leave.ApplyRequest{
		EmployeeID:   "emp-1",
		EmployeeName: "Ravi Kumar",
		Type:         "Casual Leave",
		StartDate:    "2025-06-12",
		EndDate:      "2025-06-10",
	})
	require.Error(t, err)
}

func TestDecideApprovesPending(t *testing.T) {
	repo := &fakeLeaveRepo{existing: &leave.Leave{
		ID:           "lv-1",
		EmployeeID:   "emp-1",
		EmployeeName: "Ravi Kumar",
		Type:         leave.TypeCasual,
		StartDate:    "2025-06-10",
		EndDate:      "2025-06-12",
		Status:       leave.StatusPending,
		Duration:     3,
	}}
	svc := newTestService(repo, time.Date(2025, 6, 5, 9, 0, 0, 0, time.UTC))

	resp, err := svc.Decide(context.Background(), leave.DecideRequest{
		ID:         "lv-1",
		Status:     "Approved",
		ApprovedBy: "admin-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "Approved", resp.Status)
	require.NotNil(t, resp.ApprovedDate)
	assert.Equal(t, "2025-06-05", *resp.ApprovedDate)
	require.NotNil(t, resp.ApprovedBy)
	assert.Equal(t, "admin-1", *resp.ApprovedBy)
}

func TestDecideTwiceFails(t *testing.T) {
	repo := &fakeLeaveRepo{existing: &leave.Leave{
		ID:     "lv-1",
		Status: leave.StatusApproved,
	}}
	svc := newTestService(repo, time.Now())

	_, err := svc.Decide(context.Background(), leave.DecideRequest{
		ID:         "lv-1",
		Status:     "Rejected",
		ApprovedBy: "admin-1",
	})
	require.ErrorIs(t, err, leave.ErrAlreadyDecided)
}

func TestMessageManagerUsesProfileName(t *testing.T) {
	lastName := "Kumar"
	mailer := &fakeEmailService{}
	svc := &LeaveServiceImpl{
		LeaveRepository: &fakeLeaveRepo{},
		employeeRepo: &fakeEmployeeRepo{profile: &employee.Employee{
			EmployeeID: "EMP001",
			FirstName:  "Ravi",
			LastName:   &lastName,
		}},
		emailSvc: mailer,
		now:      time.Now,
	}

	err := svc.MessageManager(context.Background(), leave.MessageManagerRequest{
		EmployeeID: "EMP001",
		Message:    "Requesting a shift swap for next week",
	})
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", mailer.managerFrom)
	assert.Equal(t, "EMP001", mailer.managerBadge)
	assert.Equal(t, "Requesting a shift swap for next week", mailer.managerMessage)
}

func TestMessageManagerUnknownEmployee(t *testing.T) {
	svc := &LeaveServiceImpl{
		LeaveRepository: &fakeLeaveRepo{},
		employeeRepo:    &fakeEmployeeRepo{},
		emailSvc:        &fakeEmailService{},
		now:             time.Now,
	}

	err := svc.MessageManager(context.Background(), leave.MessageManagerRequest{
		EmployeeID: "EMP404",
		Message:    "hello",
	})
	require.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
