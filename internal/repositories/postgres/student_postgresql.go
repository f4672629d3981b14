package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/cache"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
)

type StudentPostgreSQL struct {
	db           *gorm.DB
	cacheManager *cache.CacheManager
}

func NewStudentPostgreSQL(db *gorm.DB, cm *cache.CacheManager) repositories.StudentRepository {
	return &StudentPostgreSQL{db: db, cacheManager: cm}
}

func (s *StudentPostgreSQL) Create(ctx context.Context, student *models.Student) error {
	if err := s.db.WithContext(ctx).Create(student).Error; err != nil {
		return fmt.Errorf("failed to create student: %w", err)
	}
	cache.InvalidateRoster(ctx, s.cacheManager)
	return nil
}

func (s *StudentPostgreSQL) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, fmt.Errorf("failed to get student: %w", err)
	}
	return &student, nil
}

func (s *StudentPostgreSQL) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&student).Error; err != nil {
		return nil, fmt.Errorf("failed to get student by email: %w", err)
	}
	return &student, nil
}

func (s *StudentPostgreSQL) GetByRegistrationNumber(ctx context.Context, regNo string) (*models.Student, error) {
	var student models.Student
	if err := s.db.WithContext(ctx).Where("registration_number = ?", regNo).First(&student).Error; err != nil {
		return nil, fmt.Errorf("failed to get student by registration number: %w", err)
	}
	return &student, nil
}

// List returns every enrolled student, served from cache when warm.
func (s *StudentPostgreSQL) List(ctx context.Context) ([]*models.Student, error) {
	var students []*models.Student

	err := s.cacheManager.Roster.CacheOrExecute(ctx, "students:list", &students, cache.RosterCacheConfig.TTL, func() (interface{}, error) {
		var dbStudents []*models.Student
		if err := s.db.WithContext(ctx).Order("name ASC").Find(&dbStudents).Error; err != nil {
			return nil, fmt.Errorf("failed to list students: %w", err)
		}
		return dbStudents, nil
	})
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (s *StudentPostgreSQL) ListByGrade(ctx context.Context, grade string) ([]*models.Student, error) {
	var students []*models.Student

	cacheKey := fmt.Sprintf("students:grade:%s", grade)
	err := s.cacheManager.Roster.CacheOrExecute(ctx, cacheKey, &students, cache.RosterCacheConfig.TTL, func() (interface{}, error) {
		var dbStudents []*models.Student
		if err := s.db.WithContext(ctx).Where("grade = ?", grade).Order("name ASC").Find(&dbStudents).Error; err != nil {
			return nil, fmt.Errorf("failed to list students by grade: %w", err)
		}
		return dbStudents, nil
	})
	if err != nil {
		return nil, err
	}

	return students, nil
}

func (s *StudentPostgreSQL) Update(ctx context.Context, student *models.Student) error {
	if err := s.db.WithContext(ctx).Save(student).Error; err != nil {
		return fmt.Errorf("failed to update student: %w", err)
	}
	cache.InvalidateRoster(ctx, s.cacheManager)
	return nil
}

func (s *StudentPostgreSQL) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&models.Student{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete student: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete student: %w", gorm.ErrRecordNotFound)
	}
	cache.InvalidateRoster(ctx, s.cacheManager)
	return nil
}

func (s *StudentPostgreSQL) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check student email: %w", err)
	}
	return count > 0, nil
}

func (s *StudentPostgreSQL) ExistsByRegistrationNumber(ctx context.Context, regNo string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Student{}).Where("registration_number = ?", regNo).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check registration number: %w", err)
	}
	return count > 0, nil
}
