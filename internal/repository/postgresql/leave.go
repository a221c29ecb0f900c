package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emscore/ems-backend-go/internal/domain/leave"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type leaveRepository struct {
	db *database.DB
}

const leaveColumns = `
	id, employee_id, employee_name, type,
	to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD'),
	status, reason, to_char(applied_date, 'YYYY-MM-DD'),
	to_char(approved_date, 'YYYY-MM-DD'), approved_by, duration, comments,
	created_at, updated_at`

func scanLeave(row rowScanner) (leave.Leave, error) {
	var lv leave.Leave
	err := row.Scan(
		&lv.ID, &lv.EmployeeID, &lv.EmployeeName, &lv.Type,
		&lv.StartDate, &lv.EndDate,
		&lv.Status, &lv.Reason, &lv.AppliedDate,
		&lv.ApprovedDate, &lv.ApprovedBy, &lv.Duration, &lv.Comments,
		&lv.CreatedAt, &lv.UpdatedAt,
	)
	return lv, err
}

// Create implements leave.LeaveRepository.
func (l *leaveRepository) Create(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		INSERT INTO leaves (
			employee_id, employee_name, type, start_date, end_date,
			status, reason, applied_date, duration
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		lv.EmployeeID,
		lv.EmployeeName,
		lv.Type,
		lv.StartDate,
		lv.EndDate,
		lv.Status,
		lv.Reason,
		lv.AppliedDate,
		lv.Duration,
	).Scan(&lv.ID, &lv.CreatedAt, &lv.UpdatedAt)

	if err != nil {
		return leave.Leave{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return lv, nil
}

// GetByID implements leave.LeaveRepository.
func (l *leaveRepository) GetByID(ctx context.Context, id string) (leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE id = $1`

	lv, err := scanLeave(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to get leave request by ID: %w", err)
	}

	return lv, nil
}

// Update implements leave.LeaveRepository.
func (l *leaveRepository) Update(ctx context.Context, lv leave.Leave) (leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		UPDATE leaves
		SET status = $2, approved_date = $3, approved_by = $4, comments = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		lv.ID,
		lv.Status,
		lv.ApprovedDate,
		lv.ApprovedBy,
		lv.Comments,
	).Scan(&lv.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.Leave{}, leave.ErrLeaveNotFound
		}
		return leave.Leave{}, fmt.Errorf("failed to update leave request: %w", err)
	}

	return lv, nil
}

// List implements leave.LeaveRepository.
func (l *leaveRepository) List(ctx context.Context, filter leave.Filter) ([]leave.Leave, error) {
	q := GetQuerier(ctx, l.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	if filter.Status != nil && *filter.Status != "" {
		baseWhere += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, *filter.Status)
		argIdx++
	}

	query := `SELECT ` + leaveColumns + ` FROM leaves WHERE ` + baseWhere + ` ORDER BY applied_date DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var result []leave.Leave
	for rows.Next() {
		lv, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		result = append(result, lv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate leave requests: %w", err)
	}

	return result, nil
}

// HasOverlap implements leave.LeaveRepository.
func (l *leaveRepository) HasOverlap(ctx context.Context, employeeID, startDate, endDate string) (bool, error) {
	q := GetQuerier(ctx, l.db)

	query := `
		SELECT EXISTS (
			SELECT 1
			FROM leaves
			WHERE employee_id = $1
			  AND status != 'Rejected'
			  AND start_date <= $3::date
			  AND end_date >= $2::date
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, employeeID, startDate, endDate).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check overlapping leave: %w", err)
	}

	return exists, nil
}

// CountByStatus implements leave.LeaveRepository.
func (l *leaveRepository) CountByStatus(ctx context.Context) (map[leave.Status]int64, error) {
	q := GetQuerier(ctx, l.db)

	query := `SELECT status, COUNT(*) FROM leaves GROUP BY status`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count leave requests by status: %w", err)
	}
	defer rows.Close()

	result := make(map[leave.Status]int64)
	for rows.Next() {
		var status leave.Status
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

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepository{db: db}
}
