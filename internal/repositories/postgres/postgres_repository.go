package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/cache"
	"github.com/classpoint/school-service/internal/repositories"
)

// PostgreSQLRepository implements the aggregate Repository interface.
type PostgreSQLRepository struct {
	db           *gorm.DB
	redisClient  *redis.Client
	cacheManager *cache.CacheManager

	student      repositories.StudentRepository
	teacher      repositories.TeacherRepository
	class        repositories.ClassRepository
	assignment   repositories.AssignmentRepository
	exam         repositories.ExamRepository
	attendance   repositories.AttendanceRepository
	announcement repositories.AnnouncementRepository
	event        repositories.EventRepository
	fees         repositories.FeesRepository
}

// RepositoryConfig holds configuration for repository initialization.
type RepositoryConfig struct {
	DB          *gorm.DB
	RedisClient *redis.Client
}

// NewPostgreSQLRepository creates the repository aggregate with all
// sub-repositories wired to the shared cache manager.
func NewPostgreSQLRepository(config RepositoryConfig) repositories.Repository {
	cacheManager := cache.NewCacheManager(config.RedisClient)
	return newWithCache(config.DB, config.RedisClient, cacheManager)
}

func newWithCache(db *gorm.DB, redisClient *redis.Client, cm *cache.CacheManager) *PostgreSQLRepository {
	repo := &PostgreSQLRepository{
		db:           db,
		redisClient:  redisClient,
		cacheManager: cm,
	}

	repo.student = NewStudentPostgreSQL(db, cm)
	repo.teacher = NewTeacherPostgreSQL(db, cm)
	repo.class = NewClassPostgreSQL(db, cm)
	repo.assignment = NewAssignmentPostgreSQL(db)
	repo.exam = NewExamPostgreSQL(db)
	repo.attendance = NewAttendancePostgreSQL(db, cm)
	repo.announcement = NewAnnouncementPostgreSQL(db, cm)
	repo.event = NewEventPostgreSQL(db, cm)
	repo.fees = NewFeesPostgreSQL(db, cm)

	return repo
}

func (r *PostgreSQLRepository) Student() repositories.StudentRepository   { return r.student }
func (r *PostgreSQLRepository) Teacher() repositories.TeacherRepository   { return r.teacher }
func (r *PostgreSQLRepository) Class() repositories.ClassRepository       { return r.class }
func (r *PostgreSQLRepository) Assignment() repositories.AssignmentRepository {
	return r.assignment
}
func (r *PostgreSQLRepository) Exam() repositories.ExamRepository             { return r.exam }
func (r *PostgreSQLRepository) Attendance() repositories.AttendanceRepository { return r.attendance }
func (r *PostgreSQLRepository) Announcement() repositories.AnnouncementRepository {
	return r.announcement
}
func (r *PostgreSQLRepository) Event() repositories.EventRepository { return r.event }
func (r *PostgreSQLRepository) Fees() repositories.FeesRepository   { return r.fees }

// WithTransaction executes fn against a transaction-scoped repository.
func (r *PostgreSQLRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := newWithCache(tx, r.redisClient, r.cacheManager)
		return fn(txRepo)
	})
}

// Ping checks database and cache connectivity.
func (r *PostgreSQLRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	if r.redisClient != nil {
		if err := r.cacheManager.HealthCheck(ctx); err != nil {
			return fmt.Errorf("cache ping failed: %w", err)
		}
	}

	return nil
}

// Close closes all connections.
func (r *PostgreSQLRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}

	if r.redisClient != nil {
		if err := r.redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis: %w", err)
		}
	}

	return nil
}

// RepositoryManager owns repository lifecycle.
type RepositoryManager struct {
	config RepositoryConfig
	repo   repositories.Repository
}

func NewRepositoryManager(config RepositoryConfig) repositories.RepositoryManager {
	return &RepositoryManager{config: config}
}

// Initialize validates connections and builds the repository aggregate.
func (rm *RepositoryManager) Initialize() error {
	if rm.config.DB == nil {
		return fmt.Errorf("database connection is required")
	}

	sqlDB, err := rm.config.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}

	if rm.config.RedisClient != nil {
		if _, err := rm.config.RedisClient.Ping(ctx).Result(); err != nil {
			return fmt.Errorf("Redis connection failed: %w", err)
		}
	}

	rm.repo = NewPostgreSQLRepository(rm.config)

	return nil
}

func (rm *RepositoryManager) GetRepository() repositories.Repository {
	return rm.repo
}

func (rm *RepositoryManager) HealthCheck(ctx context.Context) error {
	if rm.repo == nil {
		return fmt.Errorf("repository not initialized")
	}
	return rm.repo.Ping(ctx)
}

func (rm *RepositoryManager) Shutdown(ctx context.Context) error {
	if rm.repo == nil {
		return nil
	}
	return rm.repo.Close()
}
