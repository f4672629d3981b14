package services

import (
	"math"
	"time"

	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/validator"
)

// Attendance remark bands.
const (
	RemarkGood = "Good"
	RemarkFair = "Fair"
	RemarkPoor = "Poor"
)

// remarkFor maps an attendance percentage to its band.
func remarkFor(percentage int) string {
	switch {
	case percentage >= 80:
		return RemarkGood
	case percentage >= 60:
		return RemarkFair
	default:
		return RemarkPoor
	}
}

// summarizeAttendance aggregates one student's records. Only "Present" counts
// toward the percentage; an apology is still an absence.
func summarizeAttendance(student *models.Student, records []*models.Attendance) AttendanceSummary {
	summary := AttendanceSummary{
		StudentID:          student.ID,
		StudentName:        student.Name,
		RegistrationNumber: student.RegistrationNumber,
		Grade:              student.Grade,
		TotalDays:          len(records),
	}

	for _, record := range records {
		switch record.Status {
		case models.StatusPresent:
			summary.PresentDays++
		case models.StatusApology:
			summary.ApologyDays++
		default:
			summary.AbsentDays++
		}
	}

	if summary.TotalDays > 0 {
		summary.Percentage = int(math.Round(float64(summary.PresentDays) / float64(summary.TotalDays) * 100))
	}
	summary.Remark = remarkFor(summary.Percentage)

	return summary
}

// resolveReportPeriod applies the period defaults: start of the current month
// through now. An explicit end date is widened to the end of that day so the
// range is inclusive.
func resolveReportPeriod(startDate, endDate string) (time.Time, time.Time, error) {
	now := time.Now()

	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	if startDate != "" {
		parsed, err := time.Parse("2006-01-02", startDate)
		if err != nil {
			return time.Time{}, time.Time{}, validator.ValidationErrors{{Field: "start_date", Message: "must be a date in YYYY-MM-DD format", Value: startDate}}
		}
		from = parsed
	}

	to := now
	if endDate != "" {
		parsed, err := time.Parse("2006-01-02", endDate)
		if err != nil {
			return time.Time{}, time.Time{}, validator.ValidationErrors{{Field: "end_date", Message: "must be a date in YYYY-MM-DD format", Value: endDate}}
		}
		to = endOfDay(parsed)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, validator.ValidationErrors{{Field: "end_date", Message: "must not be before start_date", Value: endDate}}
	}

	return from, to, nil
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 0, t.Location())
}
