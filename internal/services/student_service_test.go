package services

import (
	"context"
	"errors"
	"testing"

	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/validator"
)

func strPtr(s string) *string { return &s }

func TestStudentUpdateIsPartial(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{
		{ID: 1, Name: "Asha", RegistrationNumber: "REG-001", Grade: "10", Email: "asha@example.com", ParentEmail: "parent@example.com"},
	}
	service := NewStudentService(repo, testLogger(), validator.NewBusinessValidator())

	student, err := service.Update(context.Background(), 1, &StudentUpdateRequest{
		Grade: strPtr("11"),
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if student.Grade != "11" {
		t.Errorf("Grade = %q, want 11", student.Grade)
	}
	// Untouched fields survive a partial update.
	if student.Name != "Asha" || student.Email != "asha@example.com" || student.ParentEmail != "parent@example.com" {
		t.Errorf("partial update clobbered other fields: %+v", student)
	}
}

func TestStudentUpdateRejectsTakenEmail(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{
		{ID: 1, Name: "Asha", RegistrationNumber: "REG-001", Email: "asha@example.com"},
		{ID: 2, Name: "Ravi", RegistrationNumber: "REG-002", Email: "ravi@example.com"},
	}
	service := NewStudentService(repo, testLogger(), validator.NewBusinessValidator())

	_, err := service.Update(context.Background(), 1, &StudentUpdateRequest{
		Email: strPtr("ravi@example.com"),
	})
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("got %v, want ErrDuplicate", err)
	}
}

func TestStudentUpdateKeepingOwnEmail(t *testing.T) {
	repo := newMockRepository()
	repo.student.students = []*models.Student{
		{ID: 1, Name: "Asha", RegistrationNumber: "REG-001", Email: "asha@example.com"},
	}
	service := NewStudentService(repo, testLogger(), validator.NewBusinessValidator())

	// Re-submitting the current email is not a conflict.
	if _, err := service.Update(context.Background(), 1, &StudentUpdateRequest{
		Email: strPtr("asha@example.com"),
	}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
}

func TestStudentGetByIDNotFound(t *testing.T) {
	service := NewStudentService(newMockRepository(), testLogger(), validator.NewBusinessValidator())

	if _, err := service.GetByID(context.Background(), 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}
