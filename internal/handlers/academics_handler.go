package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
)

// AcademicsHandler serves classes, assignments, and exam results.
type AcademicsHandler struct {
	BaseHandler
	classes     services.ClassService
	assignments services.AssignmentService
	exams       services.ExamService
}

func NewAcademicsHandler(classes services.ClassService, assignments services.AssignmentService, exams services.ExamService, logger utils.Logger) *AcademicsHandler {
	return &AcademicsHandler{
		BaseHandler: NewBaseHandler(logger),
		classes:     classes,
		assignments: assignments,
		exams:       exams,
	}
}

// ===== CLASSES =====

func (h *AcademicsHandler) CreateClass(c *gin.Context) {
	h.LogRequest(c, "Creating class")

	var req services.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	class, err := h.classes.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

func (h *AcademicsHandler) ListClasses(c *gin.Context) {
	classes, err := h.classes.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *AcademicsHandler) UpdateClass(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req services.ClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	class, err := h.classes.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, class)
}

func (h *AcademicsHandler) DeleteClass(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.classes.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Class deleted"})
}

// ===== ASSIGNMENTS =====

func (h *AcademicsHandler) CreateAssignment(c *gin.Context) {
	h.LogRequest(c, "Creating assignment")

	var req services.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	assignment, err := h.assignments.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

func (h *AcademicsHandler) ListAssignments(c *gin.Context) {
	assignments, err := h.assignments.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, assignments)
}

func (h *AcademicsHandler) UpdateAssignment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req services.AssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	assignment, err := h.assignments.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

func (h *AcademicsHandler) DeleteAssignment(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.assignments.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Assignment deleted"})
}

// DeleteAllAssignments clears the board at term end and reports how many rows
// were removed.
func (h *AcademicsHandler) DeleteAllAssignments(c *gin.Context) {
	h.LogRequest(c, "Deleting all assignments")

	count, err := h.assignments.DeleteAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.DeleteAllResponse{DeletedCount: count})
}

// ===== EXAMS =====

func (h *AcademicsHandler) CreateExam(c *gin.Context) {
	h.LogRequest(c, "Recording exam result")

	var req services.ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	exam, err := h.exams.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, exam)
}

func (h *AcademicsHandler) ListExams(c *gin.Context) {
	exams, err := h.exams.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exams)
}

func (h *AcademicsHandler) UpdateExam(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req services.ExamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	exam, err := h.exams.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exam)
}

func (h *AcademicsHandler) DeleteExam(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.exams.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Exam result deleted"})
}

func (h *AcademicsHandler) DeleteAllExams(c *gin.Context) {
	h.LogRequest(c, "Deleting all exam results")

	count, err := h.exams.DeleteAll(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, services.DeleteAllResponse{DeletedCount: count})
}
