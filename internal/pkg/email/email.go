package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/humbingo/hrms-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendSalarySlip(to string, data SalarySlipEmailData) error
	SendWelcome(to, employeeName, employeeCode, portalURL string) error
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

// SalarySlipEmailData carries the rendered slip fields for one pay period.
// Currency amounts arrive preformatted with the symbol prefix.
type SalarySlipEmailData struct {
	EmployeeName   string
	EmployeeCode   string
	Designation    string
	DepartmentName string
	MonthName      string
	Year           int
	BasicSalary    string
	HRA            string
	Allowance      string
	GrossSalary    string
	PFAmount       string
	Deduction      string
	TotalDeduction string
	NetSalary      string
	PresentDays    int
	HalfDays       int
	AbsentDays     int
	WorkingDays    int
	PaymentStatus  string
}

// SendSalarySlip emails the monthly salary slip to the employee
func (s *emailServiceImpl) SendSalarySlip(to string, data SalarySlipEmailData) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "salary_slip.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Salary Slip - %s %d", data.MonthName, data.Year)
	return s.sendHTML(to, subject, body.String())
}

type welcomeEmailData struct {
	EmployeeName string
	EmployeeCode string
	PortalURL    string
}

// SendWelcome sends portal access details to a newly registered employee
func (s *emailServiceImpl) SendWelcome(to, employeeName, employeeCode, portalURL string) error {
	data := welcomeEmailData{
		EmployeeName: employeeName,
		EmployeeCode: employeeCode,
		PortalURL:    portalURL,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "welcome.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Welcome to the Humbingo HR Portal", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
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
