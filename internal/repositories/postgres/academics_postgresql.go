package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/cache"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
)

// ===== CLASSES =====

type ClassPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewClassPostgreSQL(db *gorm.DB, cm *cache.CacheManager) repositories.ClassRepository {
	return &ClassPostgreSQL{db: db, cacheManager: cm}
}

func (c *ClassPostgreSQL) Create(ctx context.Context, class *models.SchoolClass) error {
	if err := c.db.WithContext(ctx).Create(class).Error; err != nil {
		return fmt.Errorf("failed to create class: %w", err)
	}
	cache.InvalidateRoster(ctx, c.cacheManager)
	return nil
}

func (c *ClassPostgreSQL) List(ctx context.Context) ([]*models.SchoolClass, error) {
	var classes []*models.SchoolClass

	err := c.cacheManager.Roster.CacheOrExecute(ctx, "classes:list", &classes, cache.RosterCacheConfig.TTL, func() (interface{}, error) {
		var dbClasses []*models.SchoolClass
		if err := c.db.WithContext(ctx).Order("grade ASC").Find(&dbClasses).Error; err != nil {
			return nil, fmt.Errorf("failed to list classes: %w", err)
		}
		return dbClasses, nil
	})
	if err != nil {
		return nil, err
	}

	return classes, nil
}

func (c *ClassPostgreSQL) Update(ctx context.Context, class *models.SchoolClass) error {
	if err := c.db.WithContext(ctx).Save(class).Error; err != nil {
		return fmt.Errorf("failed to update class: %w", err)
	}
	cache.InvalidateRoster(ctx, c.cacheManager)
	return nil
}

func (c *ClassPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := c.db.WithContext(ctx).Delete(&models.SchoolClass{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete class: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete class: %w", gorm.ErrRecordNotFound)
	}
	cache.InvalidateRoster(ctx, c.cacheManager)
	return nil
}

// ===== ASSIGNMENTS =====

// Assignments are written and read by the same dashboard view in quick
// succession, so they bypass the cache entirely.
type AssignmentPostgreSQL struct {
	db *gorm.DB
}

func NewAssignmentPostgreSQL(db *gorm.DB) repositories.AssignmentRepository {
	return &AssignmentPostgreSQL{db: db}
}

func (a *AssignmentPostgreSQL) Create(ctx context.Context, assignment *models.Assignment) error {
	if err := a.db.WithContext(ctx).Create(assignment).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}

func (a *AssignmentPostgreSQL) List(ctx context.Context) ([]*models.Assignment, error) {
	var assignments []*models.Assignment
	if err := a.db.WithContext(ctx).Order("created_at DESC").Find(&assignments).Error; err != nil {
		return nil, fmt.Errorf("failed to list assignments: %w", err)
	}
	return assignments, nil
}

func (a *AssignmentPostgreSQL) Update(ctx context.Context, assignment *models.Assignment) error {
	if err := a.db.WithContext(ctx).Save(assignment).Error; err != nil {
		return fmt.Errorf("failed to update assignment: %w", err)
	}
	return nil
}

func (a *AssignmentPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := a.db.WithContext(ctx).Delete(&models.Assignment{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete assignment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete assignment: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

func (a *AssignmentPostgreSQL) DeleteAll(ctx context.Context) (int64, error) {
	result := a.db.WithContext(ctx).Where("1 = 1").Delete(&models.Assignment{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete all assignments: %w", result.Error)
	}
	return result.RowsAffected, nil
}

// ===== EXAMS =====

type ExamPostgreSQL struct {
	db *gorm.DB
}

func NewExamPostgreSQL(db *gorm.DB) repositories.ExamRepository {
	return &ExamPostgreSQL{db: db}
}

func (e *ExamPostgreSQL) Create(ctx context.Context, exam *models.Exam) error {
	if err := e.db.WithContext(ctx).Create(exam).Error; err != nil {
		return fmt.Errorf("failed to create exam: %w", err)
	}
	return nil
}

func (e *ExamPostgreSQL) List(ctx context.Context) ([]*models.Exam, error) {
	var exams []*models.Exam
	if err := e.db.WithContext(ctx).Order("created_at DESC").Find(&exams).Error; err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	return exams, nil
}

func (e *ExamPostgreSQL) Update(ctx context.Context, exam *models.Exam) error {
	if err := e.db.WithContext(ctx).Save(exam).Error; err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}
	return nil
}

func (e *ExamPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := e.db.WithContext(ctx).Delete(&models.Exam{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete exam: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete exam: %w", gorm.ErrRecordNotFound)
	}
	return nil
}

func (e *ExamPostgreSQL) DeleteAll(ctx context.Context) (int64, error) {
	result := e.db.WithContext(ctx).Where("1 = 1").Delete(&models.Exam{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete all exams: %w", result.Error)
	}
	return result.RowsAffected, nil
}
