package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emscore/ems-backend-go/internal/domain/employee"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type employeeRepository struct {
	db *database.DB
}

const uniqueViolationCode = "23505"

const employeeColumns = `
	id, employee_id, center_code, first_name, last_name, father_name, mother_name,
	status, validation_note, highest_qualification,
	dob_as_per_certificate, dob_as_per_celebration,
	marital_status, spouse_name, spouse_date_of_birth, wedding_date, spouse_email,
	blood_group, email, phone, address, city, state, pincode,
	experience, current_salary, position,
	uan_number, esi_number, aadhaar_number, name_as_on_aadhaar,
	pan_number, name_as_on_pan,
	bank_account_number, name_as_per_bank_details, bank_name, branch_name, ifsc_code,
	documents, emergency_contacts,
	created_at, updated_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeID, &emp.CenterCode, &emp.FirstName, &emp.LastName, &emp.FatherName, &emp.MotherName,
		&emp.Status, &emp.ValidationNote, &emp.HighestQualification,
		&emp.DOBAsPerCertificate, &emp.DOBAsPerCelebration,
		&emp.MaritalStatus, &emp.SpouseName, &emp.SpouseDateOfBirth, &emp.WeddingDate, &emp.SpouseEmail,
		&emp.BloodGroup, &emp.Email, &emp.Phone, &emp.Address, &emp.City, &emp.State, &emp.Pincode,
		&emp.Experience, &emp.CurrentSalary, &emp.Position,
		&emp.UANNumber, &emp.ESINumber, &emp.AadhaarNumber, &emp.NameAsOnAadhaar,
		&emp.PANNumber, &emp.NameAsOnPAN,
		&emp.BankAccountNumber, &emp.NameAsPerBankDetails, &emp.BankName, &emp.BranchName, &emp.IFSCCode,
		&emp.Documents, &emp.EmergencyContacts,
		&emp.CreatedAt, &emp.UpdatedAt, &emp.DeletedAt,
	)
	return emp, err
}

// mapUniqueViolation turns a constraint violation into the matching domain
// error so handlers can answer with a conflict instead of a 500.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		if strings.Contains(pgErr.ConstraintName, "email") {
			return employee.ErrEmailTaken
		}
		return employee.ErrEmployeeIDTaken
	}
	return err
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepository) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (
			employee_id, center_code, first_name, last_name, father_name, mother_name,
			status, validation_note, highest_qualification,
			dob_as_per_certificate, dob_as_per_celebration,
			marital_status, spouse_name, spouse_date_of_birth, wedding_date, spouse_email,
			blood_group, email, phone, address, city, state, pincode,
			experience, current_salary, position,
			uan_number, esi_number, aadhaar_number, name_as_on_aadhaar,
			pan_number, name_as_on_pan,
			bank_account_number, name_as_per_bank_details, bank_name, branch_name, ifsc_code,
			documents, emergency_contacts
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29, $30,
			$31, $32, $33, $34, $35, $36, $37, $38, $39
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.EmployeeID, emp.CenterCode, emp.FirstName, emp.LastName, emp.FatherName, emp.MotherName,
		emp.Status, emp.ValidationNote, emp.HighestQualification,
		emp.DOBAsPerCertificate, emp.DOBAsPerCelebration,
		emp.MaritalStatus, emp.SpouseName, emp.SpouseDateOfBirth, emp.WeddingDate, emp.SpouseEmail,
		emp.BloodGroup, emp.Email, emp.Phone, emp.Address, emp.City, emp.State, emp.Pincode,
		emp.Experience, emp.CurrentSalary, emp.Position,
		emp.UANNumber, emp.ESINumber, emp.AadhaarNumber, emp.NameAsOnAadhaar,
		emp.PANNumber, emp.NameAsOnPAN,
		emp.BankAccountNumber, emp.NameAsPerBankDetails, emp.BankName, emp.BranchName, emp.IFSCCode,
		emp.Documents, emp.EmergencyContacts,
	).Scan(&emp.ID, &emp.CreatedAt, &emp.UpdatedAt)

	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return emp, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by ID: %w", err)
	}

	return emp, nil
}

// GetByEmployeeID implements employee.EmployeeRepository.
func (e *employeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1 AND deleted_at IS NULL`

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee by employee ID: %w", err)
	}

	return emp, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepository) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees SET
			center_code = $2, first_name = $3, last_name = $4, father_name = $5, mother_name = $6,
			highest_qualification = $7,
			dob_as_per_certificate = $8, dob_as_per_celebration = $9,
			marital_status = $10, spouse_name = $11, spouse_date_of_birth = $12, wedding_date = $13, spouse_email = $14,
			blood_group = $15, email = $16, phone = $17, address = $18, city = $19, state = $20, pincode = $21,
			experience = $22, current_salary = $23, position = $24,
			uan_number = $25, esi_number = $26, aadhaar_number = $27, name_as_on_aadhaar = $28,
			pan_number = $29, name_as_on_pan = $30,
			bank_account_number = $31, name_as_per_bank_details = $32, bank_name = $33, branch_name = $34, ifsc_code = $35,
			documents = $36, emergency_contacts = $37,
			updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		emp.ID,
		emp.CenterCode, emp.FirstName, emp.LastName, emp.FatherName, emp.MotherName,
		emp.HighestQualification,
		emp.DOBAsPerCertificate, emp.DOBAsPerCelebration,
		emp.MaritalStatus, emp.SpouseName, emp.SpouseDateOfBirth, emp.WeddingDate, emp.SpouseEmail,
		emp.BloodGroup, emp.Email, emp.Phone, emp.Address, emp.City, emp.State, emp.Pincode,
		emp.Experience, emp.CurrentSalary, emp.Position,
		emp.UANNumber, emp.ESINumber, emp.AadhaarNumber, emp.NameAsOnAadhaar,
		emp.PANNumber, emp.NameAsOnPAN,
		emp.BankAccountNumber, emp.NameAsPerBankDetails, emp.BankName, emp.BranchName, emp.IFSCCode,
		emp.Documents, emp.EmergencyContacts,
	).Scan(&emp.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		if mapped := mapUniqueViolation(err); mapped != err {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee: %w", err)
	}

	return emp, nil
}

// UpdateApproval implements employee.EmployeeRepository.
func (e *employeeRepository) UpdateApproval(ctx context.Context, id string, status employee.ApprovalStatus, validationNote *string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET status = $2, validation_note = $3, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + employeeColumns

	emp, err := scanEmployee(q.QueryRow(ctx, query, id, status, validationNote))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to update employee approval: %w", err)
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepository) List(ctx context.Context, filter employee.Filter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	// Build WHERE clause
	baseWhere := "deleted_at IS NULL"
	args := []interface{}{}
	argIdx := 1

	if filter.CenterCode != nil && *filter.CenterCode != "" {
		baseWhere += fmt.Sprintf(" AND center_code = $%d", argIdx)
		args = append(args, *filter.CenterCode)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	if filter.Search != nil && *filter.Search != "" {
		baseWhere += fmt.Sprintf(" AND (first_name ILIKE $%d OR last_name ILIKE $%d OR employee_id ILIKE $%d)", argIdx, argIdx, argIdx)
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE ` + baseWhere + ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var result []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		result = append(result, emp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return result, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	query := `UPDATE employees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// CountByStatus implements employee.EmployeeRepository.
func (e *employeeRepository) CountByStatus(ctx context.Context) (map[employee.ApprovalStatus]int64, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT status, COUNT(*)
		FROM employees
		WHERE deleted_at IS NULL
		GROUP BY status
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by status: %w", err)
	}
	defer rows.Close()

	result := make(map[employee.ApprovalStatus]int64)
	for rows.Next() {
		var status employee.ApprovalStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		result[status] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate status counts: %w", err)
	}

	return result, nil
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}
