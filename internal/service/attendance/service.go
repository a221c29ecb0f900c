package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/emscore/ems-backend-go/internal/domain/attendance"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/emscore/ems-backend-go/internal/pkg/facematch"
	"github.com/emscore/ems-backend-go/internal/pkg/geo"
)

// standardWorkingHours is the daily baseline; time beyond it counts as overtime.
const standardWorkingHours = 8.0

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	zone          geo.Zone
	evaluator     *facematch.Evaluator
	defaultFolder string
	now           func() time.Time
}

// round2 rounds to 2 decimals. Applied once, at the service boundary.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Validate implements attendance.AttendanceService.
//
// The two checks are independent: the geofence verdict is computed even when
// the face scan degrades, so the client always sees the full picture. A
// reference-store outage is reported in-band as an unmatched verdict with a
// note rather than failing the request.
func (a *AttendanceServiceImpl) Validate(ctx context.Context, req attendance.ValidateRequest) (attendance.ValidateResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ValidateResponse{}, err
	}

	point := geo.Point{Latitude: req.Latitude, Longitude: req.Longitude}
	distance := a.zone.DistanceTo(point)
	locationOk := a.zone.Contains(distance)

	folder := req.Folder
	if folder == "" {
		folder = a.defaultFolder
	}

	match, err := a.evaluator.Evaluate(ctx, req.Probe, folder)
	if err != nil {
		if errors.Is(err, facematch.ErrStoreUnavailable) {
			slog.Warn("reference photo store unavailable, degrading to unmatched verdict", "folder", folder)
			match = facematch.Match{Note: "reference photo store unavailable"}
		} else {
			return attendance.ValidateResponse{}, fmt.Errorf("failed to evaluate face match: %w", err)
		}
	}

	decision := attendance.Classify(match.Matched, locationOk, distance, match.ReferenceKey, match.SimilarityPercent)

	return attendance.ValidateResponse{
		FaceMatched: decision.FaceMatched,
		MatchedWith: decision.MatchedReference,
		Similarity:  round2(decision.SimilarityPercent),
		LocationOk:  decision.LocationOk,
		DistanceM:   round2(decision.DistanceMeters),
		Status:      decision.Message,
		Note:        match.Note,
	}, nil
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := a.now()
	checkIn := nowLocal.Format("15:04")

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       nowLocal.Format("2006-01-02"),
		CheckIn:    &checkIn,
		Status:     attendance.StatusPresent,
	})
	if err != nil {
		// ErrAlreadyCheckedIn surfaces as-is so the handler can map it to a
		// conflict; anything else is a storage failure.
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(created), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	nowLocal := a.now()

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, nowLocal.Format("2006-01-02"))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	// A record without a check-in (nightly Absent marking) cannot be closed.
	if record.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	checkOut := nowLocal.Format("15:04")
	record.CheckOut = &checkOut
	record.WorkingHours = computeWorkingHours(*record.CheckIn, checkOut)
	record.Overtime = round2(math.Max(0, record.WorkingHours-standardWorkingHours))

	updated, err := a.AttendanceRepository.Update(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance: %w", err)
	}

	return toResponse(updated), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendances: %w", err)
	}

	result := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		result = append(result, toResponse(record))
	}

	return result, nil
}

// UpdateStatus implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpdateStatus(ctx context.Context, req attendance.UpdateStatusRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	updated, err := a.AttendanceRepository.UpdateStatus(ctx, req.ID, attendance.Status(req.Status))
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, err
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance status: %w", err)
	}

	return toResponse(updated), nil
}

// computeWorkingHours returns the elapsed time between two HH:MM clock
// readings in decimal hours. A check-out reading earlier than the check-in
// (clock drift, forgotten check-out closed past midnight) yields zero, never
// a negative value.
func computeWorkingHours(checkIn, checkOut string) float64 {
	in, errIn := time.Parse("15:04", checkIn)
	out, errOut := time.Parse("15:04", checkOut)
	if errIn != nil || errOut != nil {
		return 0
	}

	elapsed := out.Sub(in).Minutes()
	if elapsed < 0 {
		return 0
	}

	return round2(elapsed / 60)
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:           att.ID,
		EmployeeID:   att.EmployeeID,
		Date:         att.Date,
		CheckIn:      att.CheckIn,
		CheckOut:     att.CheckOut,
		Status:       string(att.Status),
		WorkingHours: att.WorkingHours,
		Overtime:     att.Overtime,
		CreatedAt:    att.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    att.UpdatedAt.Format(time.RFC3339),
	}
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepository attendance.AttendanceRepository,
	zone geo.Zone,
	evaluator *facematch.Evaluator,
	defaultFolder string,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
		zone:                 zone,
		evaluator:            evaluator,
		defaultFolder:        defaultFolder,
		now:                  time.Now,
	}
}
