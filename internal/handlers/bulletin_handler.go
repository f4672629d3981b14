package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
)

// BulletinHandler serves announcements and events.
type BulletinHandler struct {
	BaseHandler
	service services.BulletinService
}

func NewBulletinHandler(service services.BulletinService, logger utils.Logger) *BulletinHandler {
	return &BulletinHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *BulletinHandler) CreateAnnouncement(c *gin.Context) {
	h.LogRequest(c, "Posting announcement")

	var req services.AnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	announcement, err := h.service.CreateAnnouncement(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, announcement)
}

func (h *BulletinHandler) ListAnnouncements(c *gin.Context) {
	announcements, err := h.service.ListAnnouncements(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

func (h *BulletinHandler) DeleteAnnouncement(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAnnouncement(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Announcement deleted"})
}

func (h *BulletinHandler) CreateEvent(c *gin.Context) {
	h.LogRequest(c, "Posting event")

	var req services.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
		return
	}

	event, err := h.service.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, event)
}

func (h *BulletinHandler) ListEvents(c *gin.Context) {
	events, err := h.service.ListEvents(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *BulletinHandler) DeleteEvent(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	if err := h.service.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Event deleted"})
}
