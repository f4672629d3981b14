package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
)

// ReportHandler serves the email and report endpoints.
type ReportHandler struct {
	BaseHandler
	service services.ReportService
}

func NewReportHandler(service services.ReportService, logger utils.Logger) *ReportHandler {
	return &ReportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// SendEmail sends one free-form email.
func (h *ReportHandler) SendEmail(c *gin.Context) {
	h.LogRequest(c, "Sending email")

	var req services.SendEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	if err := h.service.SendEmail(c.Request.Context(), &req); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Email sent"})
}

// QueueAttendanceReports starts a parent mail-out in the background.
func (h *ReportHandler) QueueAttendanceReports(c *gin.Context) {
	h.LogRequest(c, "Queueing attendance reports")

	var req services.AttendanceReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	recipients, err := h.service.QueueAttendanceReports(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"accepted":   true,
		"recipients": recipients,
	})
}

// SendAttendanceReports runs the mail-out synchronously and returns the
// per-recipient outcome.
func (h *ReportHandler) SendAttendanceReports(c *gin.Context) {
	h.LogRequest(c, "Sending attendance reports")

	var req services.AttendanceReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	result, err := h.service.SendAttendanceReports(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReportHandler) SendStudentAttendanceReport(c *gin.Context) {
	h.LogRequest(c, "Sending student attendance report")

	var req services.StudentAttendanceReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	result, err := h.service.SendStudentAttendanceReport(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *ReportHandler) SendFeesReports(c *gin.Context) {
	h.LogRequest(c, "Sending fee statements")

	var req services.FeesReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	result, err := h.service.SendFeesReports(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SendTestEmail verifies the SMTP transport end to end.
func (h *ReportHandler) SendTestEmail(c *gin.Context) {
	var req struct {
		To string `json:"to" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "A valid 'to' address is required"})
		return
	}

	if err := h.service.SendTestEmail(c.Request.Context(), req.To); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Test email sent"})
}
