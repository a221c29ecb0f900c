package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emscore/ems-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees fills in Absent records for yesterday for every
// approved employee who never checked in. The insert skips existing
// records, so running hourly and only acting at midnight is safe.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59)
	if time.Now().Hour() != 0 {
		return nil
	}

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	slog.Info("Cron: Starting mark absent employees job", "date", yesterday)

	count, err := j.attendanceRepo.MarkAbsent(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absentees for %s: %w", yesterday, err)
	}

	slog.Info("Cron: Marked absent employees", "date", yesterday, "count", count)
	return nil
}
