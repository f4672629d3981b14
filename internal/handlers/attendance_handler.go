package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
)

type AttendanceHandler struct {
	BaseHandler
	service services.AttendanceService
}

func NewAttendanceHandler(service services.AttendanceService, logger utils.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

// MarkAttendance records a full roll call for one date.
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	h.LogRequest(c, "Recording roll call")

	var req services.AttendanceBatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	records, err := h.service.MarkBatch(c.Request.Context(), &req, currentUserID(c))
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, SuccessResponse{
		Message: "Attendance recorded",
		Data:    records,
	})
}

func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	records, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetStudentReport aggregates one student's attendance over a period.
func (h *AttendanceHandler) GetStudentReport(c *gin.Context) {
	req := services.StudentAttendanceReportRequest{
		RegistrationNumber: c.Param("registration_number"),
		StartDate:          c.Query("start_date"),
		EndDate:            c.Query("end_date"),
	}
	h.LogRequest(c, "Building student attendance report", "registration_number", req.RegistrationNumber)

	report, err := h.service.StudentReport(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
