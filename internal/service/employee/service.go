package employee

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/emscore/ems-backend-go/internal/domain/auth"
	"github.com/emscore/ems-backend-go/internal/domain/employee"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/emscore/ems-backend-go/internal/pkg/facematch"
	"github.com/emscore/ems-backend-go/internal/repository/postgresql"
)

// referencePhotoRemover is the slice of the face store that employee
// removal needs.
type referencePhotoRemover interface {
	RemovePrefix(ctx context.Context, prefix string) error
}

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	loginRepo   auth.LoginRepository
	photos      referencePhotoRemover
	photoPrefix string
}

// Create implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := fromCreateRequest(req)
	emp.Status = employee.StatusPending

	created, err := e.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(created), nil
}

// Get implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// GetByEmployeeID implements employee.EmployeeService.
func (e *EmployeeServiceImpl) GetByEmployeeID(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := e.EmployeeRepository.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return toResponse(emp), nil
}

// Update implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	existing, err := e.EmployeeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := fromCreateRequest(req.CreateEmployeeRequest)
	emp.ID = existing.ID
	emp.EmployeeID = existing.EmployeeID
	emp.Status = existing.Status
	emp.ValidationNote = existing.ValidationNote

	updated, err := e.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(updated), nil
}

// Approve implements employee.EmployeeService.
//
// The review decision is mirrored onto the credential record in the same
// transaction so an employee can never log in against a profile whose
// approval was rolled back.
func (e *EmployeeServiceImpl) Approve(ctx context.Context, req employee.ApproveEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	var updated employee.Employee
	err := postgresql.WithTransaction(ctx, e.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		var err error
		updated, err = e.EmployeeRepository.UpdateApproval(txCtx, req.ID, employee.ApprovalStatus(req.Status), req.ValidationNote)
		if err != nil {
			return err
		}

		return e.loginRepo.UpdateEmployeeLoginStatus(txCtx, updated.EmployeeID, req.Status)
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return toResponse(updated), nil
}

// List implements employee.EmployeeService.
func (e *EmployeeServiceImpl) List(ctx context.Context, filter employee.Filter) ([]employee.EmployeeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	employees, err := e.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, toResponse(emp))
	}

	return result, nil
}

// Delete implements employee.EmployeeService.
func (e *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	emp, err := e.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := e.EmployeeRepository.Delete(ctx, id); err != nil {
		return err
	}

	// Reference photos are keyed by badge ID under the same configured
	// prefix the evaluator scans; removal failure is logged, not surfaced,
	// since the profile is already gone.
	if e.photos != nil {
		if err := e.photos.RemovePrefix(ctx, e.photoPrefix+"/"+emp.EmployeeID); err != nil {
			slog.Error("failed to remove reference photos", "employee_id", emp.EmployeeID, "error", err)
		}
	}

	return nil
}

func fromCreateRequest(req employee.CreateEmployeeRequest) employee.Employee {
	maritalStatus := employee.MaritalSingle
	if req.MaritalStatus != nil && *req.MaritalStatus != "" {
		maritalStatus = employee.MaritalStatus(*req.MaritalStatus)
	}

	return employee.Employee{
		EmployeeID:           req.EmployeeID,
		CenterCode:           req.CenterCode,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		FatherName:           req.FatherName,
		MotherName:           req.MotherName,
		HighestQualification: req.HighestQualification,
		DOBAsPerCertificate:  parseDatePtr(req.DOBAsPerCertificate),
		DOBAsPerCelebration:  parseDatePtr(req.DOBAsPerCelebration),
		MaritalStatus:        maritalStatus,
		SpouseName:           req.SpouseName,
		SpouseDateOfBirth:    parseDatePtr(req.SpouseDateOfBirth),
		WeddingDate:          parseDatePtr(req.WeddingDate),
		SpouseEmail:          req.SpouseEmail,
		BloodGroup:           req.BloodGroup,
		Email:                req.Email,
		Phone:                req.Phone,
		Address:              req.Address,
		City:                 req.City,
		State:                req.State,
		Pincode:              req.Pincode,
		Experience:           req.Experience,
		CurrentSalary:        req.CurrentSalary,
		Position:             req.Position,
		UANNumber:            req.UANNumber,
		ESINumber:            req.ESINumber,
		AadhaarNumber:        req.AadhaarNumber,
		NameAsOnAadhaar:      req.NameAsOnAadhaar,
		PANNumber:            req.PANNumber,
		NameAsOnPAN:          req.NameAsOnPAN,
		BankAccountNumber:    req.BankAccountNumber,
		NameAsPerBankDetails: req.NameAsPerBankDetails,
		BankName:             req.BankName,
		BranchName:           req.BranchName,
		IFSCCode:             req.IFSCCode,
		Documents:            req.Documents,
		EmergencyContacts:    req.EmergencyContacts,
	}
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format("2006-01-02")
	return &formatted
}

func toResponse(emp employee.Employee) employee.EmployeeResponse {
	documents := emp.Documents
	if documents == nil {
		documents = []employee.Document{}
	}
	contacts := emp.EmergencyContacts
	if contacts == nil {
		contacts = []employee.EmergencyContact{}
	}

	return employee.EmployeeResponse{
		ID:                   emp.ID,
		EmployeeID:           emp.EmployeeID,
		CenterCode:           emp.CenterCode,
		FirstName:            emp.FirstName,
		LastName:             emp.LastName,
		FatherName:           emp.FatherName,
		MotherName:           emp.MotherName,
		Status:               string(emp.Status),
		ValidationNote:       emp.ValidationNote,
		HighestQualification: emp.HighestQualification,
		DOBAsPerCertificate:  formatDatePtr(emp.DOBAsPerCertificate),
		DOBAsPerCelebration:  formatDatePtr(emp.DOBAsPerCelebration),
		MaritalStatus:        string(emp.MaritalStatus),
		SpouseName:           emp.SpouseName,
		SpouseDateOfBirth:    formatDatePtr(emp.SpouseDateOfBirth),
		WeddingDate:          formatDatePtr(emp.WeddingDate),
		SpouseEmail:          emp.SpouseEmail,
		BloodGroup:           emp.BloodGroup,
		Email:                emp.Email,
		Phone:                emp.Phone,
		Address:              emp.Address,
		City:                 emp.City,
		State:                emp.State,
		Pincode:              emp.Pincode,
		Experience:           emp.Experience,
		CurrentSalary:        emp.CurrentSalary,
		Position:             emp.Position,
		UANNumber:            emp.UANNumber,
		ESINumber:            emp.ESINumber,
		AadhaarNumber:        emp.AadhaarNumber,
		NameAsOnAadhaar:      emp.NameAsOnAadhaar,
		PANNumber:            emp.PANNumber,
		NameAsOnPAN:          emp.NameAsOnPAN,
		BankAccountNumber:    emp.BankAccountNumber,
		NameAsPerBankDetails: emp.NameAsPerBankDetails,
		BankName:             emp.BankName,
		BranchName:           emp.BranchName,
		IFSCCode:             emp.IFSCCode,
		Documents:            documents,
		EmergencyContacts:    contacts,
		CreatedAt:            emp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            emp.UpdatedAt.Format(time.RFC3339),
	}
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	loginRepository auth.LoginRepository,
	photos *facematch.ObjectStore,
	photoPrefix string,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		loginRepo:          loginRepository,
		photos:             photos,
		photoPrefix:        photoPrefix,
	}
}
