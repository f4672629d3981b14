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

// ===== CLASSES =====

type classService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
}

func NewClassService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator) ClassService {
	return &classService{repo: repo, logger: logger, validator: v}
}

func (s *classService) Create(ctx context.Context, req *ClassRequest) (*models.SchoolClass, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	class := &models.SchoolClass{Grade: req.Grade}
	if err := s.repo.Class().Create(ctx, class); err != nil {
		return nil, err
	}

	s.logger.Info("Class created", "class_id", class.ID, "grade", class.Grade)
	return class, nil
}

func (s *classService) List(ctx context.Context) ([]*models.SchoolClass, error) {
	return s.repo.Class().List(ctx)
}

func (s *classService) Update(ctx context.Context, id uint, req *ClassRequest) (*models.SchoolClass, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	class := &models.SchoolClass{ID: id, Grade: req.Grade}
	if err := s.repo.Class().Update(ctx, class); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return class, nil
}

func (s *classService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Class().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ===== ASSIGNMENTS =====

type assignmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
}

func NewAssignmentService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator) AssignmentService {
	return &assignmentService{repo: repo, logger: logger, validator: v}
}

func (s *assignmentService) Create(ctx context.Context, req *AssignmentRequest) (*models.Assignment, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	assignment := &models.Assignment{
		Title:       req.Title,
		Description: req.Description,
		Grade:       req.Grade,
		Deadline:    req.Deadline,
	}
	if err := s.repo.Assignment().Create(ctx, assignment); err != nil {
		return nil, err
	}

	s.logger.Info("Assignment created", "assignment_id", assignment.ID, "grade", assignment.Grade)
	return assignment, nil
}

func (s *assignmentService) List(ctx context.Context) ([]*models.Assignment, error) {
	return s.repo.Assignment().List(ctx)
}

func (s *assignmentService) Update(ctx context.Context, id uint, req *AssignmentRequest) (*models.Assignment, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	assignment := &models.Assignment{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Grade:       req.Grade,
		Deadline:    req.Deadline,
	}
	if err := s.repo.Assignment().Update(ctx, assignment); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return assignment, nil
}

func (s *assignmentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Assignment().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *assignmentService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.repo.Assignment().DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("All assignments deleted", "count", count)
	return count, nil
}

// ===== EXAMS =====

type examService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
}

func NewExamService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator) ExamService {
	return &examService{repo: repo, logger: logger, validator: v}
}

func (s *examService) Create(ctx context.Context, req *ExamRequest) (*models.Exam, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	// Marks are keyed by registration number; reject results for students
	// that do not exist.
	if _, err := s.repo.Student().GetByRegistrationNumber(ctx, req.RegistrationNumber); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	exam := &models.Exam{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		ClassName:          req.ClassName,
		Marks:              req.Marks,
	}
	if err := s.repo.Exam().Create(ctx, exam); err != nil {
		return nil, err
	}

	s.logger.Info("Exam result recorded", "exam_id", exam.ID, "registration_number", exam.RegistrationNumber)
	return exam, nil
}

func (s *examService) List(ctx context.Context) ([]*models.Exam, error) {
	return s.repo.Exam().List(ctx)
}

func (s *examService) Update(ctx context.Context, id uint, req *ExamRequest) (*models.Exam, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	exam := &models.Exam{
		ID:                 id,
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		ClassName:          req.ClassName,
		Marks:              req.Marks,
	}
	if err := s.repo.Exam().Update(ctx, exam); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return exam, nil
}

func (s *examService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Exam().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *examService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.repo.Exam().DeleteAll(ctx)
	if err != nil {
		return 0, err
	}

	s.logger.Info("All exam results deleted", "count", count)
	return count, nil
}
