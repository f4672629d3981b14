package repositories

import (
	"context"

	"github.com/classpoint/school-service/internal/models"
)

// ===== ENTITY REPOSITORIES =====

type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	GetByEmail(ctx context.Context, email string) (*models.Student, error)
	GetByRegistrationNumber(ctx context.Context, regNo string) (*models.Student, error)
	List(ctx context.Context) ([]*models.Student, error)
	ListByGrade(ctx context.Context, grade string) ([]*models.Student, error)
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id uint) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByRegistrationNumber(ctx context.Context, regNo string) (bool, error)
}

type TeacherRepository interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id uint) (*models.Teacher, error)
	GetByEmail(ctx context.Context, email string) (*models.Teacher, error)
	List(ctx context.Context) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	Delete(ctx context.Context, id uint) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type ClassRepository interface {
	Create(ctx context.Context, class *models.SchoolClass) error
	List(ctx context.Context) ([]*models.SchoolClass, error)
	Update(ctx context.Context, class *models.SchoolClass) error
	Delete(ctx context.Context, id uint) error
}

type AssignmentRepository interface {
	Create(ctx context.Context, assignment *models.Assignment) error
	List(ctx context.Context) ([]*models.Assignment, error)
	Update(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ExamRepository interface {
	Create(ctx context.Context, exam *models.Exam) error
	List(ctx context.Context) ([]*models.Exam, error)
	Update(ctx context.Context, exam *models.Exam) error
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
}

type AttendanceRepository interface {
	// CreateBatch inserts a day's roll call atomically: either every record
	// lands or none do.
	CreateBatch(ctx context.Context, records []*models.Attendance) error
	List(ctx context.Context) ([]*models.Attendance, error)
	ListByStudentIDs(ctx context.Context, studentIDs []uint, filters DateRangeFilters) ([]*models.Attendance, error)
}

type AnnouncementRepository interface {
	Create(ctx context.Context, a *models.Announcement) error
	List(ctx context.Context) ([]*models.Announcement, error)
	Delete(ctx context.Context, id uint) error
}

type EventRepository interface {
	Create(ctx context.Context, e *models.Event) error
	List(ctx context.Context) ([]*models.Event, error)
	Delete(ctx context.Context, id uint) error
}

type FeesRepository interface {
	Create(ctx context.Context, fees *models.StudentFees) error
	GetByID(ctx context.Context, id uint) (*models.StudentFees, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.StudentFees, error)
	List(ctx context.Context) ([]*models.StudentFees, error)
	Update(ctx context.Context, fees *models.StudentFees) error
	Delete(ctx context.Context, id uint) error
}

// ===== REPOSITORY AGGREGATE =====

type Repository interface {
	Student() StudentRepository
	Teacher() TeacherRepository
	Class() ClassRepository
	Assignment() AssignmentRepository
	Exam() ExamRepository
	Attendance() AttendanceRepository
	Announcement() AnnouncementRepository
	Event() EventRepository
	Fees() FeesRepository

	// WithTransaction executes fn with a transaction-scoped Repository.
	WithTransaction(ctx context.Context, fn func(Repository) error) error

	Ping(ctx context.Context) error
	Close() error
}

// RepositoryManager owns connection lifecycle around a Repository.
type RepositoryManager interface {
	Initialize() error
	GetRepository() Repository
	HealthCheck(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
