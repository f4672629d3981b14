package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/cache"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
)

type AttendancePostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewAttendancePostgreSQL(db *gorm.DB, cm *cache.CacheManager) repositories.AttendanceRepository {
	return &AttendancePostgreSQL{db: db, cacheManager: cm}
}

// CreateBatch inserts a day's roll call in a single transaction so a partial
// roll call never lands.
func (a *AttendancePostgreSQL) CreateBatch(ctx context.Context, records []*models.Attendance) error {
	if len(records) == 0 {
		return nil
	}

	err := a.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(records, 100).Error
	})
	if err != nil {
		return fmt.Errorf("failed to create attendance batch: %w", err)
	}

	cache.InvalidateAttendance(ctx, a.cacheManager)
	return nil
}

func (a *AttendancePostgreSQL) List(ctx context.Context) ([]*models.Attendance, error) {
	var records []*models.Attendance

	err := a.cacheManager.Attendance.CacheOrExecute(ctx, "records:list", &records, cache.AttendanceCacheConfig.TTL, func() (interface{}, error) {
		var dbRecords []*models.Attendance
		if err := a.db.WithContext(ctx).
			Preload("Student").
			Order("date DESC, student_id ASC").
			Find(&dbRecords).Error; err != nil {
			return nil, fmt.Errorf("failed to list attendance records: %w", err)
		}
		return dbRecords, nil
	})
	if err != nil {
		return nil, err
	}

	return records, nil
}

// ListByStudentIDs fetches the raw rows an aggregation pass needs; report
// queries vary too much for caching to pay off here.
func (a *AttendancePostgreSQL) ListByStudentIDs(ctx context.Context, studentIDs []uint, filters repositories.DateRangeFilters) ([]*models.Attendance, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	query := a.db.WithContext(ctx).Where("student_id IN ?", studentIDs)
	if !filters.From.IsZero() {
		query = query.Where("date >= ?", filters.From)
	}
	if !filters.To.IsZero() {
		query = query.Where("date <= ?", filters.To)
	}

	var records []*models.Attendance
	if err := query.Order("date ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list attendance by students: %w", err)
	}

	return records, nil
}
