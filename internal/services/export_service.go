package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/classpoint/school-service/internal/repositories"
)

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// AttendanceWorkbook renders every roll-call record as an xlsx sheet.
func (s *exportService) AttendanceWorkbook(ctx context.Context) ([]byte, error) {
	records, err := s.repo.Attendance().List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(records))
	for _, record := range records {
		name := ""
		regNo := ""
		if record.Student != nil {
			name = record.Student.Name
			regNo = record.Student.RegistrationNumber
		}
		rows = append(rows, []interface{}{
			time.Time(record.Date).Format("2006-01-02"),
			regNo,
			name,
			string(record.Status),
		})
	}

	return buildWorkbook("Attendance", []string{"Date", "Registration Number", "Student", "Status"}, rows)
}

func (s *exportService) ExamsWorkbook(ctx context.Context) ([]byte, error) {
	exams, err := s.repo.Exam().List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(exams))
	for _, exam := range exams {
		rows = append(rows, []interface{}{exam.Name, exam.RegistrationNumber, exam.ClassName, exam.Marks})
	}

	return buildWorkbook("Exams", []string{"Exam", "Registration Number", "Class", "Marks"}, rows)
}

func (s *exportService) StudentsWorkbook(ctx context.Context) ([]byte, error) {
	students, err := s.repo.Student().List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(students))
	for _, student := range students {
		rows = append(rows, []interface{}{
			student.RegistrationNumber,
			student.Name,
			student.Grade,
			student.Email,
			student.ParentName,
			student.ParentEmail,
		})
	}

	return buildWorkbook("Students", []string{"Registration Number", "Name", "Grade", "Email", "Parent", "Parent Email"}, rows)
}

func (s *exportService) FeesWorkbook(ctx context.Context) ([]byte, error) {
	ledger, err := s.repo.Fees().List(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([][]interface{}, 0, len(ledger))
	for _, fees := range ledger {
		rows = append(rows, []interface{}{
			fees.RollNumber,
			fees.StudentName,
			fees.Department,
			fees.TuitionFees,
			fees.HostelFees,
			fees.MessFees,
			fees.TotalFees,
		})
	}

	return buildWorkbook("Fees", []string{"Roll Number", "Student", "Department", "Tuition", "Hostel", "Mess", "Total"}, rows)
}

// buildWorkbook writes a single-sheet workbook with a header row.
func buildWorkbook(sheet string, headers []string, rows [][]interface{}) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	for col, header := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}

	for i, row := range rows {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return buf.Bytes(), nil
}
