package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emscore/ems-backend-go/internal/domain/employee"
	"github.com/emscore/ems-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	byID       map[string]employee.Employee
	createdErr error
	deleteErr  error
	lastCreate employee.Employee
	lastUpdate employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{byID: map[string]employee.Employee{}}
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if f.createdErr != nil {
		return employee.Employee{}, f.createdErr
	}
	emp.ID = "id-" + emp.EmployeeID
	f.byID[emp.ID] = emp
	f.lastCreate = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	for _, emp := range f.byID {
		if emp.EmployeeID == employeeID {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	if _, ok := f.byID[emp.ID]; !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	f.byID[emp.ID] = emp
	f.lastUpdate = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) UpdateApproval(ctx context.Context, id string, status employee.ApprovalStatus, validationNote *string) (employee.Employee, error) {
	emp, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	emp.Status = status
	emp.ValidationNote = validationNote
	f.byID[id] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, emp := range f.byID {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.byID[id]; !ok {
		return employee.ErrEmployeeNotFound
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeEmployeeRepo) CountByStatus(ctx context.Context) (map[employee.ApprovalStatus]int64, error) {
	counts := map[employee.ApprovalStatus]int64{}
	for _, emp := range f.byID {
		counts[emp.Status]++
	}
	return counts, nil
}

type fakePhotoRemover struct {
	removedPrefixes []string
}

func (f *fakePhotoRemover) RemovePrefix(_ context.Context, prefix string) error {
	f.removedPrefixes = append(f.removedPrefixes, prefix)
	return nil
}

func newTestService(repo *fakeEmployeeRepo) *EmployeeServiceImpl {
	return &EmployeeServiceImpl{EmployeeRepository: repo}
}

func strPtr(s string) *string { return &s }

func TestCreateStartsPending(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	resp, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		FirstName:  "Asha",
		LastName:   strPtr("Verma"),
		Email:      strPtr("asha@example.com"),
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP001", resp.EmployeeID)
	assert.Equal(t, string(employee.StatusPending), resp.Status)
	assert.Equal(t, employee.StatusPending, repo.lastCreate.Status)
}

func TestCreateRejectsInvalidProfile(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	_, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID:    "EMP002",
		FirstName:     "Ravi",
		Email:         strPtr("not-an-email"),
		AadhaarNumber: strPtr("12345"),
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := verrs.ToMap()
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "aadhaar_number")
	assert.Empty(t, repo.byID)
}

func TestUpdatePreservesApprovalState(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID: "EMP003",
		FirstName:  "Kiran",
	})
	require.NoError(t, err)

	note := "documents verified"
	_, err = repo.UpdateApproval(context.Background(), created.ID, employee.StatusApproved, &note)
	require.NoError(t, err)

	resp, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID: created.ID,
		CreateEmployeeRequest: employee.CreateEmployeeRequest{
			EmployeeID: "EMP999", // ignored; badge IDs are immutable
			FirstName:  "Kiran",
			City:       strPtr("Hyderabad"),
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "EMP003", resp.EmployeeID)
	assert.Equal(t, string(employee.StatusApproved), resp.Status)
	require.NotNil(t, resp.ValidationNote)
	assert.Equal(t, note, *resp.ValidationNote)
	require.NotNil(t, resp.City)
	assert.Equal(t, "Hyderabad", *resp.City)
}

func TestUpdateUnknownProfile(t *testing.T) {
	svc := newTestService(newFakeEmployeeRepo())

	_, err := svc.Update(context.Background(), employee.UpdateEmployeeRequest{
		ID: "missing",
		CreateEmployeeRequest: employee.CreateEmployeeRequest{
			EmployeeID: "EMP004",
			FirstName:  "Neha",
		},
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDeleteRemovesProfile(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID: "EMP005",
		FirstName:  "Vikram",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Empty(t, repo.byID)
}

func TestDeleteRemovesPhotosUnderConfiguredPrefix(t *testing.T) {
	repo := newFakeEmployeeRepo()
	photos := &fakePhotoRemover{}
	svc := &EmployeeServiceImpl{
		EmployeeRepository: repo,
		photos:             photos,
		photoPrefix:        "centre-faces",
	}

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID: "EMP007",
		FirstName:  "Divya",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, []string{"centre-faces/EMP007"}, photos.removedPrefixes)
}

func TestDeletePropagatesStorageError(t *testing.T) {
	repo := newFakeEmployeeRepo()
	svc := newTestService(repo)

	created, err := svc.Create(context.Background(), employee.CreateEmployeeRequest{
		EmployeeID: "EMP006",
		FirstName:  "Meera",
	})
	require.NoError(t, err)

	repo.deleteErr = errors.New("connection reset")
	err = svc.Delete(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, repo.byID, created.ID)
}
