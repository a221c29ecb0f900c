package leave

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/emscore/ems-backend-go/internal/domain/employee"
	"github.com/emscore/ems-backend-go/internal/domain/leave"
	"github.com/emscore/ems-backend-go/internal/pkg/database"
	"github.com/emscore/ems-backend-go/internal/pkg/email"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	emailSvc     email.EmailService
	now          func() time.Time
}

// Apply implements leave.LeaveService.
func (l *LeaveServiceImpl) Apply(ctx context.Context, req leave.ApplyRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	overlap, err := l.LeaveRepository.HasOverlap(ctx, req.EmployeeID, req.StartDate, req.EndDate)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to check overlapping leave: %w", err)
	}
	if overlap {
		return leave.LeaveResponse{}, leave.ErrOverlappingLeave
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	duration := int(end.Sub(start).Hours()/24) + 1

	created, err := l.LeaveRepository.Create(ctx, leave.Leave{
		EmployeeID:   req.EmployeeID,
		EmployeeName: req.EmployeeName,
		Type:         leave.Type(req.Type),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		Status:       leave.StatusPending,
		Reason:       req.Reason,
		AppliedDate:  l.now().Format("2006-01-02"),
		Duration:     duration,
	})
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	return toResponse(created), nil
}

// Decide implements leave.LeaveService.
func (l *LeaveServiceImpl) Decide(ctx context.Context, req leave.DecideRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	lv, err := l.LeaveRepository.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	if lv.Status != leave.StatusPending {
		return leave.LeaveResponse{}, leave.ErrAlreadyDecided
	}

	approvedDate := l.now().Format("2006-01-02")
	lv.Status = leave.Status(req.Status)
	lv.ApprovedDate = &approvedDate
	lv.ApprovedBy = &req.ApprovedBy
	lv.Comments = req.Comments

	updated, err := l.LeaveRepository.Update(ctx, lv)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	l.notifyEmployee(ctx, updated)

	return toResponse(updated), nil
}

// notifyEmployee mails the decision. Delivery problems never fail the
// decision itself.
func (l *LeaveServiceImpl) notifyEmployee(ctx context.Context, lv leave.Leave) {
	if l.emailSvc == nil {
		return
	}

	emp, err := l.employeeRepo.GetByEmployeeID(ctx, lv.EmployeeID)
	if err != nil || emp.Email == nil {
		slog.Warn("leave decision not emailed, no address on profile", "employee_id", lv.EmployeeID)
		return
	}

	err = l.emailSvc.SendLeaveDecision(*emp.Email, lv.EmployeeName, string(lv.Type), lv.StartDate, lv.EndDate, string(lv.Status), lv.Comments)
	if err != nil {
		slog.Error("failed to send leave decision email", "employee_id", lv.EmployeeID, "error", err)
	}
}

// MessageManager implements leave.LeaveService. Unlike decision emails the
// message is the whole point of the call, so delivery failures surface to
// the caller.
func (l *LeaveServiceImpl) MessageManager(ctx context.Context, req leave.MessageManagerRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := l.employeeRepo.GetByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}

	name := emp.FirstName
	if emp.LastName != nil {
		name = name + " " + *emp.LastName
	}

	if err := l.emailSvc.SendManagerMessage(name, req.EmployeeID, req.Message); err != nil {
		return fmt.Errorf("failed to send manager message: %w", err)
	}

	return nil
}

// List implements leave.LeaveService.
func (l *LeaveServiceImpl) List(ctx context.Context, filter leave.Filter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	leaves, err := l.LeaveRepository.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]leave.LeaveResponse, 0, len(leaves))
	for _, lv := range leaves {
		result = append(result, toResponse(lv))
	}

	return result, nil
}

func toResponse(lv leave.Leave) leave.LeaveResponse {
	return leave.LeaveResponse{
		ID:           lv.ID,
		EmployeeID:   lv.EmployeeID,
		EmployeeName: lv.EmployeeName,
		Type:         string(lv.Type),
		StartDate:    lv.StartDate,
		EndDate:      lv.EndDate,
		Status:       string(lv.Status),
		Reason:       lv.Reason,
		AppliedDate:  lv.AppliedDate,
		ApprovedDate: lv.ApprovedDate,
		ApprovedBy:   lv.ApprovedBy,
		Duration:     lv.Duration,
		Comments:     lv.Comments,
		CreatedAt:    lv.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    lv.UpdatedAt.Format(time.RFC3339),
	}
}

func NewLeaveService(
	db *database.DB,
	leaveRepository leave.LeaveRepository,
	employeeRepository employee.EmployeeRepository,
	emailService email.EmailService,
) leave.LeaveService {
	return &LeaveServiceImpl{
		db:              db,
		LeaveRepository: leaveRepository,
		employeeRepo:    employeeRepository,
		emailSvc:        emailService,
		now:             time.Now,
	}
}
