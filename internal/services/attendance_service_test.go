package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/classpoint/school-service/internal/events"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/validator"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMarkBatchRecordsRollCall(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{
		{ID: 1, Name: "Asha", RegistrationNumber: "REG-001", Grade: "10"},
		{ID: 2, Name: "Ravi", RegistrationNumber: "REG-002", Grade: "10"},
	}

	publisher := events.NewMockEventPublisher(testLogger())
	service := NewAttendanceService(repo, testLogger(), validator.NewBusinessValidator(), publisher)

	teacherID := uint(7)
	records, err := service.MarkBatch(context.Background(), &AttendanceBatchRequest{
		Date: "2026-03-02",
		Records: []validator.AttendanceRecordRequest{
			{StudentID: 1, Status: "Present"},
			{StudentID: 2, Status: "Absent with apology"},
		},
	}, &teacherID)
	if err != nil {
		t.Fatalf("MarkBatch failed: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if records[1].Status != models.StatusApology {
		t.Errorf("record status = %q, want %q", records[1].Status, models.StatusApology)
	}
	if records[0].TeacherID == nil || *records[0].TeacherID != 7 {
		t.Errorf("teacher id not stamped on record: %+v", records[0])
	}

	// The whole roll call lands as a single batch write.
	if len(repo.attendance.batches) != 1 {
		t.Fatalf("got %d batch writes, want 1", len(repo.attendance.batches))
	}

	published := publisher.GetPublishedEvents()
	if len(published) != 1 || published[0].Type != events.EventAttendanceMarked {
		t.Errorf("expected one %s event, got %+v", events.EventAttendanceMarked, published)
	}
}

func TestMarkBatchRejectsDuplicateStudent(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{{ID: 1, Name: "Asha", RegistrationNumber: "REG-001"}}

	service := NewAttendanceService(repo, testLogger(), validator.NewBusinessValidator(), events.NewMockEventPublisher(testLogger()))

	_, err := service.MarkBatch(context.Background(), &AttendanceBatchRequest{
		Date: "2026-03-02",
		Records: []validator.AttendanceRecordRequest{
			{StudentID: 1, Status: "Present"},
			{StudentID: 1, Status: "Absent"},
		},
	}, nil)
	if err == nil {
		t.Fatal("expected a validation error for a duplicate student")
	}

	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if verrs[0].Rule != "unique_student" {
		t.Errorf("rule = %q, want unique_student", verrs[0].Rule)
	}

	if len(repo.attendance.batches) != 0 {
		t.Error("nothing should be written when validation fails")
	}
}

func TestMarkBatchRejectsUnknownStudent(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{{ID: 1, Name: "Asha", RegistrationNumber: "REG-001"}}

	service := NewAttendanceService(repo, testLogger(), validator.NewBusinessValidator(), events.NewMockEventPublisher(testLogger()))

	_, err := service.MarkBatch(context.Background(), &AttendanceBatchRequest{
		Date: "2026-03-02",
		Records: []validator.AttendanceRecordRequest{
			{StudentID: 1, Status: "Present"},
			{StudentID: 99, Status: "Absent"},
		},
	}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
	if len(repo.attendance.batches) != 0 {
		t.Error("nothing should be written when a student is unknown")
	}
}

func TestMarkBatchRejectsUnknownStatus(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{{ID: 1, Name: "Asha", RegistrationNumber: "REG-001"}}

	service := NewAttendanceService(repo, testLogger(), validator.NewBusinessValidator(), events.NewMockEventPublisher(testLogger()))

	_, err := service.MarkBatch(context.Background(), &AttendanceBatchRequest{
		Date: "2026-03-02",
		Records: []validator.AttendanceRecordRequest{
			{StudentID: 1, Status: "Late"},
		},
	}, nil)

	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if verrs[0].Rule != "attendance_status" {
		t.Errorf("rule = %q, want attendance_status", verrs[0].Rule)
	}
}

func TestStudentReportAggregatesPeriod(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{
		{ID: 1, Name: "Asha", RegistrationNumber: "REG-001", Grade: "10"},
	}
	repo.attendance.records = []*models.Attendance{
		{StudentID: 1, Status: models.StatusPresent},
		{StudentID: 1, Status: models.StatusPresent},
		{StudentID: 1, Status: models.StatusAbsent},
		{StudentID: 1, Status: models.StatusPresent},
	}

	service := NewAttendanceService(repo, testLogger(), validator.NewBusinessValidator(), events.NewMockEventPublisher(testLogger()))

	report, err := service.StudentReport(context.Background(), &StudentAttendanceReportRequest{
		RegistrationNumber: "REG-001",
	})
	if err != nil {
		t.Fatalf("StudentReport failed: %v", err)
	}

	if report.Summary.Percentage != 75 {
		t.Errorf("Percentage = %d, want 75", report.Summary.Percentage)
	}
	if report.Summary.Remark != RemarkFair {
		t.Errorf("Remark = %q, want %q", report.Summary.Remark, RemarkFair)
	}
	if len(report.Records) != 4 {
		t.Errorf("got %d records, want 4", len(report.Records))
	}
	if report.PeriodStart == "" || report.PeriodEnd == "" {
		t.Error("report should carry the resolved period")
	}
}

func TestStudentReportUnknownRegistration(t *testing.T) {
	repo := newMockRepository()
	service := NewAttendanceService(repo, testLogger(), validator.NewBusinessValidator(), events.NewMockEventPublisher(testLogger()))

	_, err := service.StudentReport(context.Background(), &StudentAttendanceReportRequest{
		RegistrationNumber: "REG-404",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want ErrNotFound", err)
	}
}
