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

type bulletinService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
	publisher events.EventPublisher
}

func NewBulletinService(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator, publisher events.EventPublisher) BulletinService {
	return &bulletinService{
		repo:      repo,
		logger:    logger,
		validator: v,
		publisher: publisher,
	}
}

func (s *bulletinService) CreateAnnouncement(ctx context.Context, req *AnnouncementRequest) (*models.Announcement, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	announcement := &models.Announcement{Announcement: req.Announcement}
	if err := s.repo.Announcement().Create(ctx, announcement); err != nil {
		return nil, err
	}

	s.logger.Info("Announcement posted", "announcement_id", announcement.ID)

	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventAnnouncementCreated, map[string]uint{"announcement_id": announcement.ID})); err != nil {
		s.logger.Error("Failed to publish announcement event", "error", err)
	}

	return announcement, nil
}

func (s *bulletinService) ListAnnouncements(ctx context.Context) ([]*models.Announcement, error) {
	return s.repo.Announcement().List(ctx)
}

func (s *bulletinService) DeleteAnnouncement(ctx context.Context, id uint) error {
	if err := s.repo.Announcement().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *bulletinService) CreateEvent(ctx context.Context, req *EventRequest) (*models.Event, error) {
	if errs := s.validator.Validate(req); len(errs) > 0 {
		return nil, errs
	}

	event := &models.Event{Event: req.Event}
	if err := s.repo.Event().Create(ctx, event); err != nil {
		return nil, err
	}

	s.logger.Info("Event posted", "event_id", event.ID)

	if err := s.publisher.Publish(ctx, events.NewEvent(events.EventEventCreated, map[string]uint{"event_id": event.ID})); err != nil {
		s.logger.Error("Failed to publish event notification", "error", err)
	}

	return event, nil
}

func (s *bulletinService) ListEvents(ctx context.Context) ([]*models.Event, error) {
	return s.repo.Event().List(ctx)
}

func (s *bulletinService) DeleteEvent(ctx context.Context, id uint) error {
	if err := s.repo.Event().Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
