package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/config"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
)

type HandlerManager struct {
	authHandler       *AuthHandler
	studentHandler    *StudentHandler
	teacherHandler    *TeacherHandler
	academicsHandler  *AcademicsHandler
	attendanceHandler *AttendanceHandler
	bulletinHandler   *BulletinHandler
	feesHandler       *FeesHandler
	reportHandler     *ReportHandler
	exportHandler     *ExportHandler
	authMiddleware    *JWTAuthMiddleware
	repoManager       repositories.RepositoryManager
}

func NewHandlerManager(
	serviceManager services.ServiceManager,
	logger utils.Logger,
	authCfg config.AuthConfig,
	repoManager repositories.RepositoryManager,
) *HandlerManager {
	return &HandlerManager{
		authHandler:       NewAuthHandler(serviceManager.Auth(), logger),
		studentHandler:    NewStudentHandler(serviceManager.Student(), logger),
		teacherHandler:    NewTeacherHandler(serviceManager.Teacher(), logger),
		academicsHandler:  NewAcademicsHandler(serviceManager.Class(), serviceManager.Assignment(), serviceManager.Exam(), logger),
		attendanceHandler: NewAttendanceHandler(serviceManager.Attendance(), logger),
		bulletinHandler:   NewBulletinHandler(serviceManager.Bulletin(), logger),
		feesHandler:       NewFeesHandler(serviceManager.Fees(), logger),
		reportHandler:     NewReportHandler(serviceManager.Report(), logger),
		exportHandler:     NewExportHandler(serviceManager.Export(), logger),
		authMiddleware:    NewJWTAuthMiddleware(authCfg),
		repoManager:       repoManager,
	}
}

// SetupRoutes sets up all API routes
func (hm *HandlerManager) SetupRoutes(router *gin.Engine) {
	staff := hm.authMiddleware.RequireRoleMiddleware(models.RoleTeacher, models.RoleAdmin)

	v1 := router.Group("/api/v1")

	// Public auth routes
	authRoutes := v1.Group("/auth")
	{
		authRoutes.POST("/students/register", hm.authHandler.RegisterStudent)
		authRoutes.POST("/students/login", hm.authHandler.LoginStudent)
		authRoutes.POST("/teachers/register", hm.authHandler.RegisterTeacher)
		authRoutes.POST("/teachers/login", hm.authHandler.LoginTeacher)
	}

	// Everything below requires a valid session
	authed := v1.Group("")
	authed.Use(hm.authMiddleware.AuthMiddleware())
	{
		students := authed.Group("/students")
		{
			students.GET("", hm.studentHandler.ListStudents)
			students.GET("/export", staff, hm.exportHandler.ExportStudents)
			students.GET("/:id", hm.studentHandler.GetStudent)
			students.PUT("/:id", staff, hm.studentHandler.UpdateStudent)
			students.DELETE("/:id", staff, hm.studentHandler.DeleteStudent)
		}

		teachers := authed.Group("/teachers")
		{
			teachers.GET("", hm.teacherHandler.ListTeachers)
			teachers.GET("/:id", hm.teacherHandler.GetTeacher)
			teachers.PUT("/:id", staff, hm.teacherHandler.UpdateTeacher)
			teachers.DELETE("/:id", staff, hm.teacherHandler.DeleteTeacher)
		}

		classes := authed.Group("/classes")
		{
			classes.POST("", staff, hm.academicsHandler.CreateClass)
			classes.GET("", hm.academicsHandler.ListClasses)
			classes.PUT("/:id", staff, hm.academicsHandler.UpdateClass)
			classes.DELETE("/:id", staff, hm.academicsHandler.DeleteClass)
		}

		assignments := authed.Group("/assignments")
		{
			assignments.POST("", staff, hm.academicsHandler.CreateAssignment)
			assignments.GET("", hm.academicsHandler.ListAssignments)
			assignments.PUT("/:id", staff, hm.academicsHandler.UpdateAssignment)
			assignments.DELETE("/:id", staff, hm.academicsHandler.DeleteAssignment)
			// Bulk clear lives on its own path so it can never be
			// confused with a malformed :id delete.
			assignments.DELETE("", staff, hm.academicsHandler.DeleteAllAssignments)
		}

		exams := authed.Group("/exams")
		{
			exams.POST("", staff, hm.academicsHandler.CreateExam)
			exams.GET("", hm.academicsHandler.ListExams)
			exams.GET("/export", staff, hm.exportHandler.ExportExams)
			exams.PUT("/:id", staff, hm.academicsHandler.UpdateExam)
			exams.DELETE("/:id", staff, hm.academicsHandler.DeleteExam)
			exams.DELETE("", staff, hm.academicsHandler.DeleteAllExams)
		}

		attendance := authed.Group("/attendance")
		{
			attendance.POST("", staff, hm.attendanceHandler.MarkAttendance)
			attendance.GET("", staff, hm.attendanceHandler.ListAttendance)
			attendance.GET("/export", staff, hm.exportHandler.ExportAttendance)
			attendance.GET("/report/:registration_number", hm.attendanceHandler.GetStudentReport)
		}

		announcements := authed.Group("/announcements")
		{
			announcements.POST("", staff, hm.bulletinHandler.CreateAnnouncement)
			announcements.GET("", hm.bulletinHandler.ListAnnouncements)
			announcements.DELETE("/:id", staff, hm.bulletinHandler.DeleteAnnouncement)
		}

		eventRoutes := authed.Group("/events")
		{
			eventRoutes.POST("", staff, hm.bulletinHandler.CreateEvent)
			eventRoutes.GET("", hm.bulletinHandler.ListEvents)
			eventRoutes.DELETE("/:id", staff, hm.bulletinHandler.DeleteEvent)
		}

		fees := authed.Group("/fees")
		{
			fees.POST("", staff, hm.feesHandler.CreateFees)
			fees.GET("", staff, hm.feesHandler.ListFees)
			fees.GET("/export", staff, hm.exportHandler.ExportFees)
			fees.GET("/roll/:roll_number", staff, hm.feesHandler.SearchFees)
			fees.GET("/:id", staff, hm.feesHandler.GetFees)
			fees.PUT("/:id", staff, hm.feesHandler.UpdateFees)
			fees.DELETE("/:id", staff, hm.feesHandler.DeleteFees)
		}

		// Email and report endpoints - staff only
		email := authed.Group("/email")
		email.Use(staff)
		{
			email.POST("/send", hm.reportHandler.SendEmail)
			email.POST("/attendance-report", hm.reportHandler.QueueAttendanceReports)
			email.POST("/attendance-report-immediate", hm.reportHandler.SendAttendanceReports)
			email.POST("/student-attendance-report", hm.reportHandler.SendStudentAttendanceReport)
			email.POST("/fees-report", hm.reportHandler.SendFeesReports)
			email.POST("/test", hm.reportHandler.SendTestEmail)
		}
	}

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "school-service",
			"api":     "/api/v1",
		})
	})

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":  "healthy",
			"service": "school-service",
		}

		if err := hm.repoManager.HealthCheck(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "unhealthy"
			health["error"] = err.Error()
		}

		c.JSON(status, health)
	})
}
