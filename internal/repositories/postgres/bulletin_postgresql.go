package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/cache"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
)

// ===== ANNOUNCEMENTS =====

type AnnouncementPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewAnnouncementPostgreSQL(db *gorm.DB, cm *cache.CacheManager) repositories.AnnouncementRepository {
	return &AnnouncementPostgreSQL{db: db, cacheManager: cm}
}

func (a *AnnouncementPostgreSQL) Create(ctx context.Context, announcement *models.Announcement) error {
	if err := a.db.WithContext(ctx).Create(announcement).Error; err != nil {
		return fmt.Errorf("failed to create announcement: %w", err)
	}
	cache.InvalidateBulletin(ctx, a.cacheManager)
	return nil
}

func (a *AnnouncementPostgreSQL) List(ctx context.Context) ([]*models.Announcement, error) {
	var announcements []*models.Announcement

	err := a.cacheManager.Bulletin.CacheOrExecute(ctx, "announcements:list", &announcements, cache.BulletinCacheConfig.TTL, func() (interface{}, error) {
		var dbAnnouncements []*models.Announcement
		if err := a.db.WithContext(ctx).Order("created_at DESC").Find(&dbAnnouncements).Error; err != nil {
			return nil, fmt.Errorf("failed to list announcements: %w", err)
		}
		return dbAnnouncements, nil
	})
	if err != nil {
		return nil, err
	}

	return announcements, nil
}

func (a *AnnouncementPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := a.db.WithContext(ctx).Delete(&models.Announcement{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete announcement: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete announcement: %w", gorm.ErrRecordNotFound)
	}
	cache.InvalidateBulletin(ctx, a.cacheManager)
	return nil
}

// ===== EVENTS =====

type EventPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewEventPostgreSQL(db *gorm.DB, cm *cache.CacheManager) repositories.EventRepository {
	return &EventPostgreSQL{db: db, cacheManager: cm}
}

func (e *EventPostgreSQL) Create(ctx context.Context, event *models.Event) error {
	if err := e.db.WithContext(ctx).Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	cache.InvalidateBulletin(ctx, e.cacheManager)
	return nil
}

func (e *EventPostgreSQL) List(ctx context.Context) ([]*models.Event, error) {
	var events []*models.Event

	err := e.cacheManager.Bulletin.CacheOrExecute(ctx, "events:list", &events, cache.BulletinCacheConfig.TTL, func() (interface{}, error) {
		var dbEvents []*models.Event
		if err := e.db.WithContext(ctx).Order("created_at DESC").Find(&dbEvents).Error; err != nil {
			return nil, fmt.Errorf("failed to list events: %w", err)
		}
		return dbEvents, nil
	})
	if err != nil {
		return nil, err
	}

	return events, nil
}

func (e *EventPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := e.db.WithContext(ctx).Delete(&models.Event{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete event: %w", gorm.ErrRecordNotFound)
	}
	cache.InvalidateBulletin(ctx, e.cacheManager)
	return nil
}
