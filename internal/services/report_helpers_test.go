package services

import (
	"testing"
	"time"

	"gorm.io/datatypes"

	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/validator"
)

func TestRemarkFor(t *testing.T) {
	tests := []struct {
		percentage int
		want       string
	}{
		{100, RemarkGood},
		{80, RemarkGood},
		{79, RemarkFair},
		{60, RemarkFair},
		{59, RemarkPoor},
		{0, RemarkPoor},
	}

	for _, tt := range tests {
		if got := remarkFor(tt.percentage); got != tt.want {
			t.Errorf("remarkFor(%d) = %q, want %q", tt.percentage, got, tt.want)
		}
	}
}

func TestSummarizeAttendance(t *testing.T) {
	student := &models.Student{
		ID:                 1,
		Name:               "Asha Verma",
		RegistrationNumber: "REG-001",
		Grade:              "10",
	}

	day := func(d int) datatypes.Date {
		return datatypes.Date(time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC))
	}

	records := []*models.Attendance{
		{StudentID: 1, Status: models.StatusPresent, Date: day(2)},
		{StudentID: 1, Status: models.StatusPresent, Date: day(3)},
		{StudentID: 1, Status: models.StatusPresent, Date: day(4)},
		{StudentID: 1, Status: models.StatusAbsent, Date: day(5)},
		{StudentID: 1, Status: models.StatusApology, Date: day(6)},
	}

	summary := summarizeAttendance(student, records)

	if summary.TotalDays != 5 {
		t.Errorf("TotalDays = %d, want 5", summary.TotalDays)
	}
	if summary.PresentDays != 3 {
		t.Errorf("PresentDays = %d, want 3", summary.PresentDays)
	}
	if summary.AbsentDays != 1 {
		t.Errorf("AbsentDays = %d, want 1", summary.AbsentDays)
	}
	if summary.ApologyDays != 1 {
		t.Errorf("ApologyDays = %d, want 1", summary.ApologyDays)
	}
	// An apology is still an absence: 3 of 5 days present.
	if summary.Percentage != 60 {
		t.Errorf("Percentage = %d, want 60", summary.Percentage)
	}
	if summary.Remark != RemarkFair {
		t.Errorf("Remark = %q, want %q", summary.Remark, RemarkFair)
	}
	if summary.StudentName != "Asha Verma" || summary.RegistrationNumber != "REG-001" {
		t.Errorf("student identity not carried into summary: %+v", summary)
	}
}

func TestSummarizeAttendanceRounding(t *testing.T) {
	student := &models.Student{ID: 2, Name: "Ravi", RegistrationNumber: "REG-002"}

	// 2 of 3 present rounds 66.67 to 67.
	records := []*models.Attendance{
		{StudentID: 2, Status: models.StatusPresent},
		{StudentID: 2, Status: models.StatusPresent},
		{StudentID: 2, Status: models.StatusAbsent},
	}

	summary := summarizeAttendance(student, records)
	if summary.Percentage != 67 {
		t.Errorf("Percentage = %d, want 67", summary.Percentage)
	}
}

func TestSummarizeAttendanceNoRecords(t *testing.T) {
	student := &models.Student{ID: 3, Name: "Meena", RegistrationNumber: "REG-003"}

	summary := summarizeAttendance(student, nil)

	if summary.TotalDays != 0 || summary.Percentage != 0 {
		t.Errorf("empty history should yield zero days and zero percent, got %+v", summary)
	}
	if summary.Remark != RemarkPoor {
		t.Errorf("Remark = %q, want %q", summary.Remark, RemarkPoor)
	}
}

func TestResolveReportPeriodDefaults(t *testing.T) {
	from, to, err := resolveReportPeriod("", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	now := time.Now()
	if from.Day() != 1 || from.Month() != now.Month() || from.Year() != now.Year() {
		t.Errorf("default start should be the first of the current month, got %v", from)
	}
	if to.Before(from) {
		t.Errorf("default end %v precedes start %v", to, from)
	}
}

func TestResolveReportPeriodExplicitEndIsInclusive(t *testing.T) {
	from, to, err := resolveReportPeriod("2026-03-01", "2026-03-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if from.Format("2006-01-02") != "2026-03-01" {
		t.Errorf("start = %v, want 2026-03-01", from)
	}
	// The end bound is widened to the end of the day.
	if to.Day() != 15 || to.Hour() != 23 || to.Minute() != 59 || to.Second() != 59 {
		t.Errorf("end = %v, want end of 2026-03-15", to)
	}
}

func TestResolveReportPeriodRejectsInvertedRange(t *testing.T) {
	_, _, err := resolveReportPeriod("2026-03-15", "2026-03-01")
	if err == nil {
		t.Fatal("expected an error for end before start")
	}

	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if verrs[0].Field != "end_date" {
		t.Errorf("error field = %q, want end_date", verrs[0].Field)
	}
}

func TestResolveReportPeriodRejectsMalformedDates(t *testing.T) {
	if _, _, err := resolveReportPeriod("15-03-2026", ""); err == nil {
		t.Error("expected an error for a malformed start date")
	}
	if _, _, err := resolveReportPeriod("", "March 1"); err == nil {
		t.Error("expected an error for a malformed end date")
	}
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if ok {
		*target = verrs
	}
	return ok
}
