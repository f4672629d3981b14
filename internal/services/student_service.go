package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
	"github.com/classpoint/school-service/internal/validator"
)

type studentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
}

func NewStudentService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator) StudentService {
	return &studentService{repo: repo, logger: logger, validator: v}
}

func (s *studentService) List(ctx context.Context) ([]*models.Student, error) {
	return s.repo.Student().List(ctx)
}

func (s *studentService) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	student, err := s.repo.Student().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return student, nil
}

func (s *studentService) Update(ctx context.Context, id uint, req *StudentUpdateRequest) (*models.Student, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	student, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Grade != nil {
		student.Grade = *req.Grade
	}
	if req.Email != nil && *req.Email != student.Email {
		exists, err := s.repo.Student().ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicate
		}
		student.Email = *req.Email
	}
	if req.ParentName != nil {
		student.ParentName = *req.ParentName
	}
	if req.ParentEmail != nil {
		student.ParentEmail = *req.ParentEmail
	}
	if req.ParentPhone != nil {
		student.ParentPhone = *req.ParentPhone
	}

	if err := s.repo.Student().Update(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("Student updated", "student_id", student.ID)
	return student, nil
}

func (s *studentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Student().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.logger.Info("Student deleted", "student_id", id)
	return nil
}
