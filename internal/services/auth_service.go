package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/auth"
	"github.com/classpoint/school-service/internal/config"
	"github.com/classpoint/school-service/internal/events"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
	"github.com/classpoint/school-service/internal/utils"
	"github.com/classpoint/school-service/internal/validator"
)

type authService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
	publisher events.EventPublisher
	authCfg   config.AuthConfig
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator, publisher events.EventPublisher, authCfg config.AuthConfig) AuthService {
	return &authService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
		authCfg:   authCfg,
	}
}

func (s *authService) RegisterStudent(ctx context.Context, req *RegisterStudentRequest) (*models.Student, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if exists, err := s.repo.Student().ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicate
	}
	if exists, err := s.repo.Student().ExistsByRegistrationNumber(ctx, req.RegistrationNumber); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		Name:               req.Name,
		RegistrationNumber: req.RegistrationNumber,
		Grade:              req.Grade,
		Email:              req.Email,
		PasswordHash:       hash,
		ParentName:         req.ParentName,
		ParentEmail:        req.ParentEmail,
		ParentPhone:        req.ParentPhone,
	}

	if err := s.repo.Student().Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info("Student registered", "student_id", student.ID, "registration_number", student.RegistrationNumber)

	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventStudentRegistered, events.StudentRegisteredEvent{
		StudentID:          student.ID,
		RegistrationNumber: student.RegistrationNumber,
		Grade:              student.Grade,
	})); err != nil {
		s.logger.Error("Failed to publish registration event", "error", err, "student_id", student.ID)
	}

	return student, nil
}

func (s *authService) RegisterTeacher(ctx context.Context, req *RegisterTeacherRequest) (*models.Teacher, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	if exists, err := s.repo.Teacher().ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrDuplicate
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Subject:      req.Subject,
	}

	if err := s.repo.Teacher().Create(ctx, teacher); err != nil {
		return nil, err
	}

	s.logger.Info("Teacher registered", "teacher_id", teacher.ID)

	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventTeacherRegistered, map[string]uint{"teacher_id": teacher.ID})); err != nil {
		s.logger.Error("Failed to publish registration event", "error", err, "teacher_id", teacher.ID)
	}

	return teacher, nil
}

// LoginStudent authenticates a student. Unknown email and wrong password
// return the same error so account existence is not leaked.
func (s *authService) LoginStudent(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	student, err := s.repo.Student().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(student.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(student.ID, models.RoleStudent, student)
}

func (s *authService) LoginTeacher(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	teacher, err := s.repo.Teacher().GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !utils.CheckPassword(teacher.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(teacher.ID, models.RoleTeacher, teacher)
}

func (s *authService) issueToken(userID uint, role models.UserRole, user interface{}) (*AuthResponse, error) {
	token, expiresAt, err := auth.Issue(userID, role, s.authCfg.Issuer, s.authCfg.Secret)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Role:      string(role),
		User:      user,
	}, nil
}
