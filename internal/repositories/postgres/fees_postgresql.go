package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/cache"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
)

type FeesPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewFeesPostgreSQL(db *gorm.DB, cm *cache.CacheManager) repositories.FeesRepository {
	return &FeesPostgreSQL{db: db, cacheManager: cm}
}

func (f *FeesPostgreSQL) Create(ctx context.Context, fees *models.StudentFees) error {
	if err := f.db.WithContext(ctx).Create(fees).Error; err != nil {
		return fmt.Errorf("failed to create fee record: %w", err)
	}
	cache.InvalidateFees(ctx, f.cacheManager)
	return nil
}

func (f *FeesPostgreSQL) GetByID(ctx context.Context, id uint) (*models.StudentFees, error) {
	var fees models.StudentFees
	if err := f.db.WithContext(ctx).First(&fees, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get fee record: %w", err)
	}
	return &fees, nil
}

func (f *FeesPostgreSQL) GetByRollNumber(ctx context.Context, rollNumber string) (*models.StudentFees, error) {
	var fees models.StudentFees
	if err := f.db.WithContext(ctx).Where("roll_number = ?", rollNumber).First(&fees).Error; err != nil {
		return nil, fmt.Errorf("failed to get fee record by roll number: %w", err)
	}
	return &fees, nil
}

func (f *FeesPostgreSQL) List(ctx context.Context) ([]*models.StudentFees, error) {
	var records []*models.StudentFees

	err := f.cacheManager.Fees.CacheOrExecute(ctx, "ledger:list", &records, cache.FeesCacheConfig.TTL, func() (interface{}, error) {
		var dbRecords []*models.StudentFees
		if err := f.db.WithContext(ctx).Order("roll_number ASC").Find(&dbRecords).Error; err != nil {
			return nil, fmt.Errorf("failed to list fee records: %w", err)
		}
		return dbRecords, nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

func (f *FeesPostgreSQL) Update(ctx context.Context, fees *models.StudentFees) error {
	if err := f.db.WithContext(ctx).Save(fees).Error; err != nil {
		return fmt.Errorf("failed to update fee record: %w", err)
	}
	cache.InvalidateFees(ctx, f.cacheManager)
	return nil
}

func (f *FeesPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := f.db.WithContext(ctx).Delete(&models.StudentFees{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete fee record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete fee record: %w", gorm.ErrRecordNotFound)
	}
	cache.InvalidateFees(ctx, f.cacheManager)
	return nil
}
