package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/classpoint/school-service/internal/config"
	"github.com/classpoint/school-service/internal/events"
	"github.com/classpoint/school-service/internal/mailer"
	"github.com/classpoint/school-service/internal/repositories"
	"github.com/classpoint/school-service/internal/validator"
)

// serviceManager implements ServiceManager.
type serviceManager struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.BusinessValidator
	mailer    mailer.Mailer
	publisher events.EventPublisher
	authCfg   config.AuthConfig

	authService       AuthService
	studentService    StudentService
	teacherService    TeacherService
	classService      ClassService
	assignmentService AssignmentService
	examService       ExamService
	attendanceService AttendanceService
	bulletinService   BulletinService
	feesService       FeesService
	reportService     ReportService
	exportService     ExportService

	initialized bool
	mu          sync.RWMutex
}

// NewServiceManager creates a service manager with all dependencies.
func NewServiceManager(repo repositories.Repository, logger *slog.Logger, v *validator.BusinessValidator, m mailer.Mailer, publisher events.EventPublisher, authCfg config.AuthConfig) ServiceManager {
	return &serviceManager{
		repo:      repo,
		logger:    logger,
		validator: v,
		mailer:    m,
		publisher: publisher,
		authCfg:   authCfg,
	}
}

// Initialize wires up all services.
func (sm *serviceManager) Initialize(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	sm.logger.Info("Initializing service manager")

	sm.authService = NewAuthService(sm.repo, sm.logger, sm.validator, sm.publisher, sm.authCfg)
	sm.studentService = NewStudentService(sm.repo, sm.logger, sm.validator)
	sm.teacherService = NewTeacherService(sm.repo, sm.logger, sm.validator)
	sm.classService = NewClassService(sm.repo, sm.logger, sm.validator)
	sm.assignmentService = NewAssignmentService(sm.repo, sm.logger, sm.validator)
	sm.examService = NewExamService(sm.repo, sm.logger, sm.validator)
	sm.attendanceService = NewAttendanceService(sm.repo, sm.logger, sm.validator, sm.publisher)
	sm.bulletinService = NewBulletinService(sm.repo, sm.logger, sm.validator, sm.publisher)
	sm.feesService = NewFeesService(sm.repo, sm.logger, sm.validator, sm.publisher)
	sm.reportService = NewReportService(sm.repo, sm.logger, sm.validator, sm.mailer, sm.publisher)
	sm.exportService = NewExportService(sm.repo, sm.logger)

	sm.initialized = true
	sm.logger.Info("Service manager initialized")

	return nil
}

func (sm *serviceManager) get() {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	if !sm.initialized {
		panic("service manager not initialized")
	}
}

func (sm *serviceManager) Auth() AuthService {
	sm.get()
	return sm.authService
}

func (sm *serviceManager) Student() StudentService {
	sm.get()
	return sm.studentService
}

func (sm *serviceManager) Teacher() TeacherService {
	sm.get()
	return sm.teacherService
}

func (sm *serviceManager) Class() ClassService {
	sm.get()
	return sm.classService
}

func (sm *serviceManager) Assignment() AssignmentService {
	sm.get()
	return sm.assignmentService
}

func (sm *serviceManager) Exam() ExamService {
	sm.get()
	return sm.examService
}

func (sm *serviceManager) Attendance() AttendanceService {
	sm.get()
	return sm.attendanceService
}

func (sm *serviceManager) Bulletin() BulletinService {
	sm.get()
	return sm.bulletinService
}

func (sm *serviceManager) Fees() FeesService {
	sm.get()
	return sm.feesService
}

func (sm *serviceManager) Report() ReportService {
	sm.get()
	return sm.reportService
}

func (sm *serviceManager) Export() ExportService {
	sm.get()
	return sm.exportService
}

// Shutdown releases service-held resources.
func (sm *serviceManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return nil
	}

	sm.logger.Info("Shutting down service manager")

	if err := sm.publisher.Close(); err != nil {
		sm.logger.Error("Failed to close event publisher", "error", err)
	}

	sm.initialized = false
	return nil
}
