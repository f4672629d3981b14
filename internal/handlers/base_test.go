package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/services"
	"github.com/classpoint/school-service/internal/utils"
	"github.com/classpoint/school-service/internal/validator"
)

func testHandlerLogger() utils.Logger {
	return utils.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHandleServiceErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"validation", validator.ValidationErrors{{Field: "grade", Message: "is required"}}, http.StatusBadRequest},
		{"credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", services.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", services.ErrForbidden, http.StatusForbidden},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"no recipients", services.ErrNoRecipients, http.StatusNotFound},
		{"duplicate", services.ErrDuplicate, http.StatusConflict},
		{"mailer down", services.ErrMailerNotReady, http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	h := NewBaseHandler(testHandlerLogger())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			h.handleServiceError(c, tt.err)

			if w.Code != tt.want {
				t.Errorf("status = %d, want %d", w.Code, tt.want)
			}
		})
	}
}

// The exact credential-failure message is part of the login contract.
func TestInvalidCredentialsMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewBaseHandler(testHandlerLogger())
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/login", nil)

	h.handleServiceError(c, services.ErrInvalidCredentials)

	want := `"Invalid email or password!"`
	if body := w.Body.String(); !strings.Contains(body, want) {
		t.Errorf("body %q should carry %s", body, want)
	}
}
