package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/classpoint/school-service/internal/models"
)

func TestStudentsWorkbook(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{
		{ID: 1, Name: "Asha Verma", RegistrationNumber: "REG-001", Grade: "10", Email: "asha@example.com", ParentName: "Mrs Verma", ParentEmail: "parent@example.com"},
	}

	service := NewExportService(repo, testLogger())

	data, err := service.StudentsWorkbook(context.Background())
	if err != nil {
		t.Fatalf("StudentsWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Students")
	if err != nil {
		t.Fatalf("missing Students sheet: %v", err)
	}

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus one student", len(rows))
	}
	if rows[0][0] != "Registration Number" {
		t.Errorf("header = %v", rows[0])
	}
	if rows[1][0] != "REG-001" || rows[1][1] != "Asha Verma" {
		t.Errorf("student row = %v", rows[1])
	}
}

func TestFeesWorkbook(t *testing.T) {
	repo := newMockRepository()
	repo.fees.ledger = []*models.StudentFees{
		{ID: 1, StudentName: "Asha", RollNumber: "R-100", Department: "Science", TuitionFees: 1000, HostelFees: 500, MessFees: 200, TotalFees: 1700},
	}

	service := NewExportService(repo, testLogger())

	data, err := service.FeesWorkbook(context.Background())
	if err != nil {
		t.Fatalf("FeesWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Fees")
	if err != nil {
		t.Fatalf("missing Fees sheet: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	if rows[1][0] != "R-100" || rows[1][6] != "1700" {
		t.Errorf("fees row = %v", rows[1])
	}
}

func TestAttendanceWorkbookEmpty(t *testing.T) {
	service := NewExportService(newMockRepository(), testLogger())

	data, err := service.AttendanceWorkbook(context.Background())
	if err != nil {
		t.Fatalf("AttendanceWorkbook failed: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("workbook does not open: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	if err != nil {
		t.Fatalf("missing Attendance sheet: %v", err)
	}
	// Header only when there are no records.
	if len(rows) != 1 {
		t.Errorf("got %d rows, want 1", len(rows))
	}
}
