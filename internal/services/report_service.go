package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/events"
	"github.com/classpoint/school-service/internal/mailer"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
	"github.com/classpoint/school-service/internal/validator"
)

// Per-recipient send budget inside a batch.
const sendTimeout = 30 * time.Second

type reportService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
	mailer    mailer.Mailer
	publisher events.EventPublisher
}

func NewReportService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator, m mailer.Mailer, publisher events.EventPublisher) ReportService {
	return &reportService{
		repo:      repo,
		logger:    logger,
		validator: v,
		mailer:    m,
		publisher: publisher,
	}
}

func (s *reportService) SendEmail(ctx context.Context, req *SendEmailRequest) error {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return errs
	}

	if err := s.mailer.Verify(ctx); err != nil {
		s.logger.Error("Mail transport verification failed", "error", err)
		return ErrMailerNotReady
	}

	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := s.mailer.Send(sendCtx, mailer.Message{
		To:      req.To,
		Subject: req.Subject,
		Text:    req.Text,
	}); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("Email sent", "to", req.To)
	return nil
}

func (s *reportService) SendTestEmail(ctx context.Context, to string) error {
	return s.SendEmail(ctx, &SendEmailRequest{
		To:      to,
		Subject: "School service test email",
		Text:    "The email transport is configured correctly.",
	})
}

// reportEmail is one prepared message within a batch mail-out.
type reportEmail struct {
	recipient string
	subject   string
	html      string
}

func (s *reportService) SendAttendanceReports(ctx context.Context, req *AttendanceReportRequest) (*BatchReportResult, error) {
	emails, failures, err := s.prepareAttendanceBatch(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.deliver(ctx, "attendance", emails, failures)
}

// QueueAttendanceReports prepares the batch synchronously, then delivers in
// the background. The caller learns how many recipients were matched; the
// per-recipient outcome is logged and published as an event.
func (s *reportService) QueueAttendanceReports(ctx context.Context, req *AttendanceReportRequest) (int, error) {
	emails, failures, err := s.prepareAttendanceBatch(ctx, req)
	if err != nil {
		return 0, err
	}

	total := len(emails) + len(failures)

	go func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, 10*time.Minute)
		defer cancel()

		result, err := s.deliver(ctx, "attendance", emails, failures)
		if err != nil {
			s.logger.Error("Background attendance mail-out failed", "error", err)
			return
		}
		s.logger.Info("Background attendance mail-out finished",
			"recipients", result.Recipients,
			"success", result.SuccessCount,
			"failures", len(result.Failures))
	}(context.WithoutCancel(ctx))

	return total, nil
}

func (s *reportService) SendStudentAttendanceReport(ctx context.Context, req *StudentAttendanceReportRequest) (*BatchReportResult, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	student, err := s.repo.Student().GetByRegistrationNumber(ctx, req.RegistrationNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	from, to, err := resolveReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.Attendance().ListByStudentIDs(ctx, []uint{student.ID}, repositories.DateRangeFilters{From: from, To: to})
	if err != nil {
		return nil, err
	}

	emails, failures := s.renderAttendanceEmails([]*models.Student{student}, records, from, to)
	return s.deliver(ctx, "student_attendance", emails, failures)
}

func (s *reportService) SendFeesReports(ctx context.Context, req *FeesReportRequest) (*BatchReportResult, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	var ledger []*models.StudentFees
	if req.RollNumber != "" {
		fees, err := s.repo.Fees().GetByRollNumber(ctx, req.RollNumber)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrNotFound
			}
			return nil, err
		}
		ledger = []*models.StudentFees{fees}
	} else {
		var err error
		ledger, err = s.repo.Fees().List(ctx)
		if err != nil {
			return nil, err
		}
	}

	var emails []reportEmail
	var failures []ReportFailure

	for _, fees := range ledger {
		// Parent contact lives on the student record; the ledger's roll
		// number doubles as the registration number.
		student, err := s.repo.Student().GetByRegistrationNumber(ctx, fees.RollNumber)
		if err != nil || student.ParentEmail == "" {
			failures = append(failures, ReportFailure{
				Recipient: fees.RollNumber,
				Reason:    "no parent contact on file",
			})
			continue
		}

		html, err := mailer.RenderFeesReport(mailer.FeesReportData{
			StudentName: fees.StudentName,
			RollNumber:  fees.RollNumber,
			Department:  fees.Department,
			TuitionFees: fees.TuitionFees,
			HostelFees:  fees.HostelFees,
			MessFees:    fees.MessFees,
			TotalFees:   fees.TotalFees,
		})
		if err != nil {
			failures = append(failures, ReportFailure{Recipient: student.ParentEmail, Reason: "render failed"})
			continue
		}

		emails = append(emails, reportEmail{
			recipient: student.ParentEmail,
			subject:   fmt.Sprintf("Fee Statement for %s", fees.StudentName),
			html:      html,
		})
	}

	return s.deliver(ctx, "fees", emails, failures)
}

func (s *reportService) prepareAttendanceBatch(ctx context.Context, req *AttendanceReportRequest) ([]reportEmail, []ReportFailure, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, nil, errs
	}

	var students []*models.Student
	var err error
	if req.Grade != "" {
		students, err = s.repo.Student().ListByGrade(ctx, req.Grade)
	} else {
		students, err = s.repo.Student().List(ctx)
	}
	if err != nil {
		return nil, nil, err
	}
	if len(students) == 0 {
		return nil, nil, ErrNoRecipients
	}

	from, to, err := resolveReportPeriod(req.StartDate, req.EndDate)
	if err != nil {
		return nil, nil, err
	}

	ids := make([]uint, len(students))
	for i, student := range students {
		ids[i] = student.ID
	}

	records, err := s.repo.Attendance().ListByStudentIDs(ctx, ids, repositories.DateRangeFilters{From: from, To: to})
	if err != nil {
		return nil, nil, err
	}

	emails, failures := s.renderAttendanceEmails(students, records, from, to)
	return emails, failures, nil
}

func (s *reportService) renderAttendanceEmails(students []*models.Student, records []*models.Attendance, from, to time.Time) ([]reportEmail, []ReportFailure) {
	byStudent := make(map[uint][]*models.Attendance)
	for _, record := range records {
		byStudent[record.StudentID] = append(byStudent[record.StudentID], record)
	}

	var emails []reportEmail
	var failures []ReportFailure

	for _, student := range students {
		if student.ParentEmail == "" {
			failures = append(failures, ReportFailure{
				Recipient: student.RegistrationNumber,
				Reason:    "no parent contact on file",
			})
			continue
		}

		summary := summarizeAttendance(student, byStudent[student.ID])
		html, err := mailer.RenderAttendanceReport(mailer.AttendanceReportData{
			StudentName: summary.StudentName,
			Grade:       summary.Grade,
			PeriodStart: from.Format("2006-01-02"),
			PeriodEnd:   to.Format("2006-01-02"),
			TotalDays:   summary.TotalDays,
			PresentDays: summary.PresentDays,
			AbsentDays:  summary.AbsentDays,
			ApologyDays: summary.ApologyDays,
			Percentage:  summary.Percentage,
			Remark:      summary.Remark,
		})
		if err != nil {
			failures = append(failures, ReportFailure{Recipient: student.ParentEmail, Reason: "render failed"})
			continue
		}

		emails = append(emails, reportEmail{
			recipient: student.ParentEmail,
			subject:   fmt.Sprintf("Attendance Report for %s", student.Name),
			html:      html,
		})
	}

	return emails, failures
}

// deliver verifies the transport once, then sends each message, continuing
// past individual failures so one bad address never aborts the batch.
func (s *reportService) deliver(ctx context.Context, reportType string, emails []reportEmail, failures []ReportFailure) (*BatchReportResult, error) {
	if len(emails) == 0 && len(failures) == 0 {
		return nil, ErrNoRecipients
	}

	result := &BatchReportResult{
		ReportType: reportType,
		Recipients: len(emails) + len(failures),
		Failures:   failures,
	}

	if len(emails) > 0 {
		if err := s.mailer.Verify(ctx); err != nil {
			s.logger.Error("Mail transport verification failed", "error", err, "report_type", reportType)
			return nil, ErrMailerNotReady
		}
	}

	for _, email := range emails {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		err := s.mailer.Send(sendCtx, mailer.Message{
			To:      email.recipient,
			Subject: email.subject,
			HTML:    email.html,
		})
		cancel()

		if err != nil {
			reason := mailer.ClassifyError(err)
			s.logger.Error("Report email failed", "recipient", email.recipient, "reason", reason, "error", err)
			result.Failures = append(result.Failures, ReportFailure{Recipient: email.recipient, Reason: reason})
			continue
		}

		result.SuccessCount++
	}

	s.logger.Info("Report mail-out finished",
		"report_type", reportType,
		"recipients", result.Recipients,
		"success", result.SuccessCount,
		"failures", len(result.Failures))

	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventReportDispatched, events.ReportDispatchedEvent{
		ReportType:   reportType,
		Recipients:   result.Recipients,
		SuccessCount: result.SuccessCount,
		FailureCount: len(result.Failures),
	})); err != nil {
		s.logger.Error("Failed to publish report event", "error", err, "report_type", reportType)
	}

	return result, nil
}
