package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
)

type FeesHandler struct {
	BaseHandler
	service services.FeesService
}

func NewFeesHandler(service services.FeesService, logger utils.Logger) *FeesHandler {
	return &FeesHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *FeesHandler) CreateFees(c *gin.Context) {
	h.LogRequest(c, "Creating fee record")

	var req services.FeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	fees, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, fees)
}

func (h *FeesHandler) ListFees(c *gin.Context) {
	ledger, err := h.service.List(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ledger)
}

func (h *FeesHandler) GetFees(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	fees, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, fees)
}

// SearchFees looks up a fee record by the student's roll number.
func (h *FeesHandler) SearchFees(c *gin.Context) {
	rollNumber := c.Param("roll_number")
	h.LogRequest(c, "Searching fee record", "roll_number", rollNumber)

	fees, err := h.service.GetByRollNumber(c.Request.Context(), rollNumber)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, fees)
}

func (h *FeesHandler) UpdateFees(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	h.LogRequest(c, "Updating fee record", "fees_id", id)

	var req services.FeesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	fees, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, fees)
}

func (h *FeesHandler) DeleteFees(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}
	h.LogRequest(c, "Deleting fee record", "fees_id", id)

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Fee record deleted"})
}
