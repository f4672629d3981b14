package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
)

type TeacherHandler struct {
	BaseHandler
	service services.TeacherService
}

func NewTeacherHandler(service services.TeacherService, logger utils.Logger) *TeacherHandler {
	return &TeacherHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *TeacherHandler) ListTeachers(c *gin.Context) {
	h.LogRequest(c, "Listing teachers")

	teachers, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teachers)
}

func (h *TeacherHandler) GetTeacher(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	h.LogRequest(c, "Getting teacher", "teacher_id", id)

	teacher, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}

func (h *TeacherHandler) UpdateTeacher(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	h.LogRequest(c, "Updating teacher", "teacher_id", id)

	var req services.TeacherUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	teacher, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, teacher)
}

func (h *TeacherHandler) DeleteTeacher(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	h.LogRequest(c, "Deleting teacher", "teacher_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Teacher deleted"})
}
