package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/emscore/ems-backend-go/internal/domain/attendance"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// Create implements attendance.AttendanceRepository.
//
// The unique index on (employee_id, date) is the single source of truth for
// the one-record-per-day rule. ON CONFLICT DO NOTHING makes the insert
// atomic: when two check-ins race, exactly one returns a row and the loser
// gets ErrAlreadyCheckedIn.
func (a *attendanceRepository) Create(ctx context.Context, newAttendance attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (
			employee_id, date, check_in, check_out, status, working_hours, overtime
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		newAttendance.EmployeeID,
		newAttendance.Date,
		newAttendance.CheckIn,
		newAttendance.CheckOut,
		newAttendance.Status,
		newAttendance.WorkingHours,
		newAttendance.Overtime,
	).Scan(&newAttendance.ID, &newAttendance.CreatedAt, &newAttendance.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return newAttendance, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), check_in, check_out,
			   status, working_hours, overtime, created_at, updated_at
		FROM attendances
		WHERE id = $1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.WorkingHours, &att.Overtime, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by ID: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), check_in, check_out,
			   status, working_hours, overtime, created_at, updated_at
		FROM attendances
		WHERE employee_id = $1
		  AND date = $2
		LIMIT 1
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.WorkingHours, &att.Overtime, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in = $2, check_out = $3, status = $4,
			working_hours = $5, overtime = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID,
		att.CheckIn,
		att.CheckOut,
		att.Status,
		att.WorkingHours,
		att.Overtime,
	).Scan(&att.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return att, nil
}

// UpdateStatus implements attendance.AttendanceRepository.
func (a *attendanceRepository) UpdateStatus(ctx context.Context, id string, status attendance.Status) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, to_char(date, 'YYYY-MM-DD'), check_in, check_out,
				  status, working_hours, overtime, created_at, updated_at
	`

	var att attendance.Attendance
	err := q.QueryRow(ctx, query, id, status).Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
		&att.Status, &att.WorkingHours, &att.Overtime, &att.CreatedAt, &att.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance status: %w", err)
	}

	return att, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	// Build WHERE clause
	baseWhere := "1=1"
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		baseWhere += fmt.Sprintf(" AND employee_id = $%d", argIdx)
		args = append(args, *filter.EmployeeID)
		argIdx++
	}

	// Month filter narrows to one calendar month
	if filter.Month != nil && *filter.Month != "" {
		baseWhere += fmt.Sprintf(" AND to_char(date, 'YYYY-MM') = $%d", argIdx)
		args = append(args, *filter.Month)
		argIdx++
	}

	query := `
		SELECT id, employee_id, to_char(date, 'YYYY-MM-DD'), check_in, check_out,
			   status, working_hours, overtime, created_at, updated_at
		FROM attendances
		WHERE ` + baseWhere + `
		ORDER BY date DESC, employee_id ASC
	`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	var result []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		if err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut,
			&att.Status, &att.WorkingHours, &att.Overtime, &att.CreatedAt, &att.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		result = append(result, att)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate attendances: %w", err)
	}

	return result, nil
}

// MarkAbsent implements attendance.AttendanceRepository.
//
// ON CONFLICT DO NOTHING makes the nightly job idempotent: employees who
// already have a record for the date (checked in, on leave) are skipped.
func (a *attendanceRepository) MarkAbsent(ctx context.Context, date string) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, status, working_hours, overtime)
		SELECT e.id, $1, 'Absent', 0, 0
		FROM employees e
		WHERE e.deleted_at IS NULL
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	tag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absentees: %w", err)
	}

	return tag.RowsAffected(), nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
