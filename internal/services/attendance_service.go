package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/events"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
	"github.com/classpoint/school-service/internal/validator"
)

type attendanceService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
	publisher events.EventPublisher
}

func NewAttendanceService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator, publisher events.EventPublisher) AttendanceService {
	return &attendanceService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

// MarkBatch records one date's roll call. The whole batch lands in a single
// transaction, so a mid-batch failure never leaves a half-recorded day.
func (s *attendanceService) MarkBatch(ctx context.Context, req *AttendanceBatchRequest, teacherID *uint) ([]*models.Attendance, error) {
	if errs := s.validator.ValidateAttendanceBatch(req); len(errs) > 0 {
		return nil, errs
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: "date", Message: "must be a date in YYYY-MM-DD format", Value: req.Date}}
	}

	// Every student in the batch must exist before anything is written.
	known := make(map[uint]bool)
	students, err := s.repo.Student().List(ctx)
	if err != nil {
		return nil, err
	}
	for _, student := range students {
		known[student.ID] = true
	}

	records := make([]*models.Attendance, 0, len(req.Records))
	for _, entry := range req.Records {
		if !known[entry.StudentID] {
			return nil, ErrNotFound
		}
		records = append(records, &models.Attendance{
			StudentID: entry.StudentID,
			Status:    models.AttendanceStatus(entry.Status),
			Date:      datatypes.Date(date),
			TeacherID: teacherID,
		})
	}

	if err := s.repo.Attendance().CreateBatch(ctx, records); err != nil {
		return nil, err
	}

	s.logger.Info("Roll call recorded", "date", req.Date, "records", len(records))

	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventAttendanceMarked, events.AttendanceMarkedEvent{
		Date:        req.Date,
		RecordCount: len(records),
		TeacherID:   teacherID,
	})); err != nil {
		s.logger.Error("Failed to publish attendance event", "error", err, "date", req.Date)
	}

	return records, nil
}

func (s *attendanceService) List(ctx context.Context) ([]*models.Attendance, error) {
	return s.repo.Attendance().List(ctx)
}

// StudentReport aggregates one student's roll-call history over a period.
// Without explicit bounds the period is the current month to date.
func (s *attendanceService) StudentReport(ctx context.Context, req *StudentAttendanceReportRequest) (*StudentAttendanceReport, error) {
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

	return &StudentAttendanceReport{
		Summary:     summarizeAttendance(student, records),
		PeriodStart: from.Format("2006-01-02"),
		PeriodEnd:   to.Format("2006-01-02"),
		Records:     records,
	}, nil
}
