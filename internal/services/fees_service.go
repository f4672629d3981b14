package services

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/events"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
	"github.com/classpoint/school-service/internal/validator"
)

type feesService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
	publisher events.EventPublisher
}

func NewFeesService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator, publisher events.EventPublisher) FeesService {
	return &feesService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *feesService) Create(ctx context.Context, req *FeesRequest) (*models.StudentFees, error) {
	if errs := s.validator.ValidateFees(req); len(errs) > 0 {
		return nil, errs
	}

	if _, err := s.repo.Fees().GetByRollNumber(ctx, req.RollNumber); err == nil {
		return nil, ErrDuplicate
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	fees := &models.StudentFees{
		StudentName: req.StudentName,
		RollNumber:  req.RollNumber,
		Department:  req.Department,
		TuitionFees: req.TuitionFees,
		HostelFees:  req.HostelFees,
		MessFees:    req.MessFees,
	}
	// The stored total is always derived from the components.
	fees.ComputeTotal()

	if err := s.repo.Fees().Create(ctx, fees); err != nil {
		return nil, err
	}

	s.logger.Info("Fee record created", "roll_number", fees.RollNumber, "total", fees.TotalFees)
	s.publishFeesUpdated(ctx, fees)

	return fees, nil
}

func (s *feesService) List(ctx context.Context) ([]*models.StudentFees, error) {
	return s.repo.Fees().List(ctx)
}

func (s *feesService) GetByID(ctx context.Context, id uint) (*models.StudentFees, error) {
	fees, err := s.repo.Fees().GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fees, nil
}

func (s *feesService) GetByRollNumber(ctx context.Context, rollNumber string) (*models.StudentFees, error) {
	fees, err := s.repo.Fees().GetByRollNumber(ctx, rollNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return fees, nil
}

func (s *feesService) Update(ctx context.Context, id uint, req *FeesRequest) (*models.StudentFees, error) {
	if errs := s.validator.ValidateFees(req); len(errs) > 0 {
		return nil, errs
	}

	fees, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fees.StudentName = req.StudentName
	fees.RollNumber = req.RollNumber
	fees.Department = req.Department
	fees.TuitionFees = req.TuitionFees
	fees.HostelFees = req.HostelFees
	fees.MessFees = req.MessFees
	fees.ComputeTotal()

	if err := s.repo.Fees().Update(ctx, fees); err != nil {
		return nil, err
	}

	s.logger.Info("Fee record updated", "roll_number", fees.RollNumber, "total", fees.TotalFees)
	s.publishFeesUpdated(ctx, fees)

	return fees, nil
}

func (s *feesService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Fees().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	s.logger.Info("Fee record deleted", "fees_id", id)
	return nil
}

func (s *feesService) publishFeesUpdated(ctx context.Context, fees *models.StudentFees) {
	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventFeesUpdated, events.FeesUpdatedEvent{
		RollNumber: fees.RollNumber,
		TotalFees:  fees.TotalFees,
	})); err != nil {
		s.logger.Error("Failed to publish fees event", "error", err, "roll_number", fees.RollNumber)
	}
}
