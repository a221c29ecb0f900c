package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/emscore/ems-backend-go/internal/domain/auth"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type loginRepository struct {
	db *database.DB
}

func mapLoginUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		if strings.Contains(pgErr.ConstraintName, "username") {
			return auth.ErrUsernameTaken
		}
		return auth.ErrEmailTaken
	}
	return err
}

// CreateEmployeeLogin implements auth.LoginRepository.
func (l *loginRepository) CreateEmployeeLogin(ctx context.Context, login auth.EmployeeLogin) (auth.EmployeeLogin, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO employee_logins (
			employee_id, center_code, email, password, first_name, last_name, role, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		login.EmployeeID,
		login.CenterCode,
		login.Email,
		login.Password,
		login.FirstName,
		login.LastName,
		login.Role,
		login.Status,
	).Scan(&login.ID, &login.CreatedAt, &login.UpdatedAt)

	if err != nil {
		if mapped := mapLoginUniqueViolation(err); mapped != err {
			return auth.EmployeeLogin{}, mapped
		}
		return auth.EmployeeLogin{}, fmt.Errorf("failed to create employee login: %w", err)
	}

	return login, nil
}

// GetEmployeeLoginByEmail implements auth.LoginRepository.
func (l *loginRepository) GetEmployeeLoginByEmail(ctx context.Context, email string) (auth.EmployeeLogin, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, employee_id, center_code, email, password, first_name, last_name, role, status,
			   created_at, updated_at
		FROM employee_logins
		WHERE email = $1
	`

	var login auth.EmployeeLogin
	err := q.QueryRow(ctx, query, email).Scan(
		&login.ID, &login.EmployeeID, &login.CenterCode, &login.Email, &login.Password,
		&login.FirstName, &login.LastName, &login.Role, &login.Status,
		&login.CreatedAt, &login.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.EmployeeLogin{}, auth.ErrAccountNotFound
		}
		return auth.EmployeeLogin{}, fmt.Errorf("failed to get employee login by email: %w", err)
	}

	return login, nil
}

// UpdateEmployeeLoginStatus implements auth.LoginRepository.
func (l *loginRepository) UpdateEmployeeLoginStatus(ctx context.Context, employeeID, status string) error {
	q := GetQuerier(ctx, l.db)

	query := `UPDATE employee_logins SET status = $2, updated_at = NOW() WHERE employee_id = $1`

	if _, err := q.Exec(ctx, query, employeeID, status); err != nil {
		return fmt.Errorf("failed to update employee login status: %w", err)
	}

	return nil
}

// CreateCentreLogin implements auth.LoginRepository.
func (l *loginRepository) CreateCentreLogin(ctx context.Context, login auth.CentreLogin) (auth.CentreLogin, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO centre_logins (
			username, email, password, centre_name, centre_code, role
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		login.Username,
		login.Email,
		login.Password,
		login.CentreName,
		login.CentreCode,
		login.Role,
	).Scan(&login.ID, &login.CreatedAt, &login.UpdatedAt)

	if err != nil {
		if mapped := mapLoginUniqueViolation(err); mapped != err {
			return auth.CentreLogin{}, mapped
		}
		return auth.CentreLogin{}, fmt.Errorf("failed to create centre login: %w", err)
	}

	return login, nil
}

// GetCentreLoginByEmail implements auth.LoginRepository.
func (l *loginRepository) GetCentreLoginByEmail(ctx context.Context, email string) (auth.CentreLogin, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, username, email, password, centre_name, centre_code, role, created_at, updated_at
		FROM centre_logins
		WHERE email = $1
	`

	var login auth.CentreLogin
	err := q.QueryRow(ctx, query, email).Scan(
		&login.ID, &login.Username, &login.Email, &login.Password,
		&login.CentreName, &login.CentreCode, &login.Role,
		&login.CreatedAt, &login.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.CentreLogin{}, auth.ErrAccountNotFound
		}
		return auth.CentreLogin{}, fmt.Errorf("failed to get centre login by email: %w", err)
	}

	return login, nil
}

// ListCentres implements auth.LoginRepository.
func (l *loginRepository) ListCentres(ctx context.Context) ([]auth.CentreLogin, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, username, email, password, centre_name, centre_code, role, created_at, updated_at
		FROM centre_logins
		ORDER BY centre_name
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list centres: %w", err)
	}
	defer rows.Close()

	var centres []auth.CentreLogin
	for rows.Next() {
		var login auth.CentreLogin
		if err := rows.Scan(
			&login.ID, &login.Username, &login.Email, &login.Password,
			&login.CentreName, &login.CentreCode, &login.Role,
			&login.CreatedAt, &login.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan centre login: %w", err)
		}
		centres = append(centres, login)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list centres: %w", err)
	}

	return centres, nil
}

// GetAdminLoginByAdminID implements auth.LoginRepository.
func (l *loginRepository) GetAdminLoginByAdminID(ctx context.Context, adminID string) (auth.AdminLogin, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, admin_id, password, name, email, role, created_at, updated_at
		FROM admin_logins
		WHERE admin_id = $1
	`

	var login auth.AdminLogin
	err := q.QueryRow(ctx, query, adminID).Scan(
		&login.ID, &login.AdminID, &login.Password, &login.Name, &login.Email, &login.Role,
		&login.CreatedAt, &login.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AdminLogin{}, auth.ErrAccountNotFound
		}
		return auth.AdminLogin{}, fmt.Errorf("failed to get admin login by admin ID: %w", err)
	}

	return login, nil
}

// GetAdminLoginByEmail implements auth.LoginRepository.
func (l *loginRepository) GetAdminLoginByEmail(ctx context.Context, email string) (auth.AdminLogin, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT id, admin_id, password, name, email, role, created_at, updated_at
		FROM admin_logins
		WHERE email = $1
	`

	var login auth.AdminLogin
	err := q.QueryRow(ctx, query, email).Scan(
		&login.ID, &login.AdminID, &login.Password, &login.Name, &login.Email, &login.Role,
		&login.CreatedAt, &login.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return auth.AdminLogin{}, auth.ErrAccountNotFound
		}
		return auth.AdminLogin{}, fmt.Errorf("failed to get admin login by email: %w", err)
	}

	return login, nil
}

// UpdatePasswordByEmail implements auth.LoginRepository.
//
// The three credential stores are disjoint by email, so the first store
// owning the address wins. The reset flow has already verified the OTP that
// was mailed to this address.
func (l *loginRepository) UpdatePasswordByEmail(ctx context.Context, email, passwordHash string) error {
	q := GetQuerier(ctx, l.db)

	for _, table := range []string{"employee_logins", "centre_logins", "admin_logins"} {
		query := fmt.Sprintf(`UPDATE %s SET password = $2, updated_at = NOW() WHERE email = $1`, table)
		tag, err := q.Exec(ctx, query, email, passwordHash)
		if err != nil {
			return fmt.Errorf("failed to update password: %w", err)
		}
		if tag.RowsAffected() > 0 {
			return nil
		}
	}

	return auth.ErrAccountNotFound
}

func NewLoginRepository(db *database.DB) auth.LoginRepository {
	return &loginRepository{db: db}
}
