package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/emscore/ems-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendPasswordResetOTP(to, code, expiresIn string) error
	SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, status string, comments *string) error
	SendManagerMessage(employeeName, employeeID, message string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type passwordResetOTPData struct {
	Code      string
	ExpiresIn string
}

// SendPasswordResetOTP mails the one-time code for a password reset.
func (s *emailServiceImpl) SendPasswordResetOTP(to, code, expiresIn string) error {
	data := passwordResetOTPData{
		Code:      code,
		ExpiresIn: expiresIn,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "password_reset_otp.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your password reset code", body.String())
}

type leaveDecisionData struct {
	EmployeeName string
	LeaveType    string
	StartDate    string
	EndDate      string
	Status       string
	Comments     string
}

// SendLeaveDecision notifies an employee that a leave request was decided.
func (s *emailServiceImpl) SendLeaveDecision(to, employeeName, leaveType, startDate, endDate, status string, comments *string) error {
	data := leaveDecisionData{
		EmployeeName: employeeName,
		LeaveType:    leaveType,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
	}
	if comments != nil {
		data.Comments = *comments
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_decision.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Your leave request was %s", status), body.String())
}

type managerMessageData struct {
	EmployeeName string
	EmployeeID   string
	Message      string
}

// SendManagerMessage forwards an employee's message to the configured
// manager address.
func (s *emailServiceImpl) SendManagerMessage(employeeName, employeeID, message string) error {
	data := managerMessageData{
		EmployeeName: employeeName,
		EmployeeID:   employeeID,
		Message:      message,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "manager_message.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(s.cfg.ManagerEmail, fmt.Sprintf("Message from %s (%s)", employeeName, employeeID), body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.FromAddress

	headers := fmt.Sprintf("From: %s\r\n", from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
