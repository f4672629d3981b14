package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/cache"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
)

type TeacherPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewTeacherPostgreSQL(db *gorm.DB, cm *cache.CacheManager) repositories.TeacherRepository {
	return &TeacherPostgreSQL{db: db, cacheManager: cm}
}

func (t *TeacherPostgreSQL) Create(ctx context.Context, teacher *models.Teacher) error {
	if err := t.db.WithContext(ctx).Create(teacher).Error; err != nil {
		return fmt.Errorf("failed to create teacher: %w", err)
	}
	cache.InvalidateRoster(ctx, t.cacheManager)
	return nil
}

func (t *TeacherPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := t.db.WithContext(ctx).First(&teacher, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get teacher: %w", err)
	}
	return &teacher, nil
}

func (t *TeacherPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	var teacher models.Teacher
	if err := t.db.WithContext(ctx).Where("email = ?", email).First(&teacher).Error; err != nil {
		return nil, fmt.Errorf("failed to get teacher by email: %w", err)
	}
	return &teacher, nil
}

func (t *TeacherPostgreSQL) List(ctx context.Context) ([]*models.Teacher, error) {
	var teachers []*models.Teacher

	err := t.cacheManager.Roster.CacheOrExecute(ctx, "teachers:list", &teachers, cache.RosterCacheConfig.TTL, func() (interface{}, error) {
		var dbTeachers []*models.Teacher
		if err := t.db.WithContext(ctx).Order("name ASC").Find(&dbTeachers).Error; err != nil {
			return nil, fmt.Errorf("failed to list teachers: %w", err)
		}
		return dbTeachers, nil
	})
	if err != nil {
		return nil, err
	}

	return teachers, nil
}

func (t *TeacherPostgreSQL) Update(ctx context.Context, teacher *models.Teacher) error {
	if err := t.db.WithContext(ctx).Save(teacher).Error; err != nil {
		return fmt.Errorf("failed to update teacher: %w", err)
	}
	cache.InvalidateRoster(ctx, t.cacheManager)
	return nil
}

func (t *TeacherPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := t.db.WithContext(ctx).Delete(&models.Teacher{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete teacher: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete teacher: %w", gorm.ErrRecordNotFound)
	}
	cache.InvalidateRoster(ctx, t.cacheManager)
	return nil
}

func (t *TeacherPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := t.db.WithContext(ctx).Model(&models.Teacher{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check teacher email: %w", err)
	}
	return count > 0, nil
}
