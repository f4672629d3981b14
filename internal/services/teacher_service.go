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

type teacherService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
}

func NewTeacherService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator) TeacherService {
	return &teacherService{repo: repo, logger: logger, validator: v}
}

func (s *teacherService) List(ctx context.Context) ([]*models.Teacher, error) {
	return s.repo.Teacher().List(ctx)
}

func (s *teacherService) GetByID(ctx context.Context, id uint) (*models.Teacher, error) {
	teacher, err := s.repo.Teacher().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return teacher, nil
}

func (s *teacherService) Update(ctx context.Context, id uint, req *TeacherUpdateRequest) (*models.Teacher, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	teacher, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		teacher.Name = *req.Name
	}
	if req.Email != nil && *req.Email != teacher.Email {
		exists, err := s.repo.Teacher().ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, ErrDuplicate
		}
		teacher.Email = *req.Email
	}
	if req.Subject != nil {
		teacher.Subject = *req.Subject
	}

	if err := s.repo.Teacher().Update(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Info("Teacher updated", "teacher_id", teacher.ID)
	return teacher, nil
}

func (s *teacherService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Teacher().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.logger.Info("Teacher deleted", "teacher_id", id)
	return nil
}
