package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler streams xlsx workbooks.
type ExportHandler struct {
	BaseHandler
	service services.ExportService
}

func NewExportHandler(service services.ExportService, logger utils.Logger) *ExportHandler {
	return &ExportHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
	}
}

func (h *ExportHandler) ExportAttendance(c *gin.Context) {
	h.LogRequest(c, "Exporting attendance workbook")
	h.serve(c, "attendance", h.service.AttendanceWorkbook)
}

func (h *ExportHandler) ExportExams(c *gin.Context) {
	h.LogRequest(c, "Exporting exams workbook")
	h.serve(c, "exams", h.service.ExamsWorkbook)
}

func (h *ExportHandler) ExportStudents(c *gin.Context) {
	h.LogRequest(c, "Exporting students workbook")
	h.serve(c, "students", h.service.StudentsWorkbook)
}

func (h *ExportHandler) ExportFees(c *gin.Context) {
	h.LogRequest(c, "Exporting fees workbook")
	h.serve(c, "fees", h.service.FeesWorkbook)
}

func (h *ExportHandler) serve(c *gin.Context, name string, build func(ctx context.Context) ([]byte, error)) {
	data, err := build(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
