package services

import (
	"context"
	"time"

	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/validator"
)

// ===== REQUEST/RESPONSE DTOs =====

// Use business validator types
type RegisterStudentRequest = validator.RegisterStudentRequest
type RegisterTeacherRequest = validator.RegisterTeacherRequest
type LoginRequest = validator.LoginRequest
type StudentUpdateRequest = validator.StudentUpdateRequest
type TeacherUpdateRequest = validator.TeacherUpdateRequest
type ClassRequest = validator.ClassRequest
type AssignmentRequest = validator.AssignmentRequest
type ExamRequest = validator.ExamRequest
type AttendanceBatchRequest = validator.AttendanceBatchRequest
type AnnouncementRequest = validator.AnnouncementRequest
type EventRequest = validator.EventRequest
type FeesRequest = validator.FeesRequest
type SendEmailRequest = validator.SendEmailRequest
type AttendanceReportRequest = validator.AttendanceReportRequest
type StudentAttendanceReportRequest = validator.StudentAttendanceReportRequest
type FeesReportRequest = validator.FeesReportRequest

type AuthResponse struct {
	Token     string      `json:"token"`
	ExpiresAt time.Time   `json:"expires_at"`
	Role      string      `json:"role"`
	User      interface{} `json:"user"`
}

type DeleteAllResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}

// AttendanceSummary is one student's aggregated roll-call record over a period.
type AttendanceSummary struct {
	StudentID          uint   `json:"student_id"`
	StudentName        string `json:"student_name"`
	RegistrationNumber string `json:"registration_number"`
	Grade              string `json:"grade"`
	TotalDays          int    `json:"total_days"`
	PresentDays        int    `json:"present_days"`
	AbsentDays         int    `json:"absent_days"`
	ApologyDays        int    `json:"apology_days"`
	Percentage         int    `json:"percentage"`
	Remark             string `json:"remark"`
}

type StudentAttendanceReport struct {
	Summary     AttendanceSummary    `json:"summary"`
	PeriodStart string               `json:"period_start"`
	PeriodEnd   string               `json:"period_end"`
	Records     []*models.Attendance `json:"records"`
}

// ReportFailure records one recipient a batch mail-out could not reach.
type ReportFailure struct {
	Recipient string `json:"recipient"`
	Reason    string `json:"reason"`
}

// BatchReportResult is the outcome of a batch mail-out: every recipient is
// accounted for either in SuccessCount or in Failures.
type BatchReportResult struct {
	ReportType   string          `json:"report_type"`
	Recipients   int             `json:"recipients"`
	SuccessCount int             `json:"success_count"`
	Failures     []ReportFailure `json:"failures"`
}

// ===== SERVICE INTERFACES =====

type AuthService interface {
	RegisterStudent(ctx context.Context, req *RegisterStudentRequest) (*models.Student, error)
	RegisterTeacher(ctx context.Context, req *RegisterTeacherRequest) (*models.Teacher, error)
	LoginStudent(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
	LoginTeacher(ctx context.Context, req *LoginRequest) (*AuthResponse, error)
}

type StudentService interface {
	List(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id uint) (*models.Student, error)
	Update(ctx context.Context, id uint, req *StudentUpdateRequest) (*models.Student, error)
	Delete(ctx context.Context, id uint) error
}

type TeacherService interface {
	List(ctx context.Context) ([]*models.Teacher, error)
	GetByID(ctx context.Context, id uint) (*models.Teacher, error)
	Update(ctx context.Context, id uint, req *TeacherUpdateRequest) (*models.Teacher, error)
	Delete(ctx context.Context, id uint) error
}

type ClassService interface {
	Create(ctx context.Context, req *ClassRequest) (*models.SchoolClass, error)
	List(ctx context.Context) ([]*models.SchoolClass, error)
	Update(ctx context.Context, id uint, req *ClassRequest) (*models.SchoolClass, error)
	Delete(ctx context.Context, id uint) error
}

type AssignmentService interface {
	Create(ctx context.Context, req *AssignmentRequest) (*models.Assignment, error)
	List(ctx context.Context) ([]*models.Assignment, error)
	Update(ctx context.Context, id uint, req *AssignmentRequest) (*models.Assignment, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ExamService interface {
	Create(ctx context.Context, req *ExamRequest) (*models.Exam, error)
	List(ctx context.Context) ([]*models.Exam, error)
	Update(ctx context.Context, id uint, req *ExamRequest) (*models.Exam, error)
	Delete(ctx context.Context, id uint) error
	DeleteAll(ctx context.Context) (int64, error)
}

type AttendanceService interface {
	// MarkBatch records a full roll call for one date atomically.
	MarkBatch(ctx context.Context, req *AttendanceBatchRequest, teacherID *uint) ([]*models.Attendance, error)
	List(ctx context.Context) ([]*models.Attendance, error)
	StudentReport(ctx context.Context, req *StudentAttendanceReportRequest) (*StudentAttendanceReport, error)
}

type BulletinService interface {
	CreateAnnouncement(ctx context.Context, req *AnnouncementRequest) (*models.Announcement, error)
	ListAnnouncements(ctx context.Context) ([]*models.Announcement, error)
	DeleteAnnouncement(ctx context.Context, id uint) error

	CreateEvent(ctx context.Context, req *EventRequest) (*models.Event, error)
	ListEvents(ctx context.Context) ([]*models.Event, error)
	DeleteEvent(ctx context.Context, id uint) error
}

type FeesService interface {
	Create(ctx context.Context, req *FeesRequest) (*models.StudentFees, error)
	List(ctx context.Context) ([]*models.StudentFees, error)
	GetByID(ctx context.Context, id uint) (*models.StudentFees, error)
	GetByRollNumber(ctx context.Context, rollNumber string) (*models.StudentFees, error)
	Update(ctx context.Context, id uint, req *FeesRequest) (*models.StudentFees, error)
	Delete(ctx context.Context, id uint) error
}

type ReportService interface {
	// SendEmail sends a single free-form email.
	SendEmail(ctx context.Context, req *SendEmailRequest) error

	// SendAttendanceReports mails every matched parent and reports the
	// per-recipient outcome.
	SendAttendanceReports(ctx context.Context, req *AttendanceReportRequest) (*BatchReportResult, error)

	// QueueAttendanceReports starts the mail-out in the background and
	// returns how many recipients were matched.
	QueueAttendanceReports(ctx context.Context, req *AttendanceReportRequest) (int, error)

	SendStudentAttendanceReport(ctx context.Context, req *StudentAttendanceReportRequest) (*BatchReportResult, error)
	SendFeesReports(ctx context.Context, req *FeesReportRequest) (*BatchReportResult, error)
	SendTestEmail(ctx context.Context, to string) error
}

type ExportService interface {
	AttendanceWorkbook(ctx context.Context) ([]byte, error)
	ExamsWorkbook(ctx context.Context) ([]byte, error)
	StudentsWorkbook(ctx context.Context) ([]byte, error)
	FeesWorkbook(ctx context.Context) ([]byte, error)
}

// ServiceManager provides access to all services.
type ServiceManager interface {
	Initialize(ctx context.Context) error

	Auth() AuthService
	Student() StudentService
	Teacher() TeacherService
	Class() ClassService
	Assignment() AssignmentService
	Exam() ExamService
	Attendance() AttendanceService
	Bulletin() BulletinService
	Fees() FeesService
	Report() ReportService
	Export() ExportService

	Shutdown(ctx context.Context) error
}
