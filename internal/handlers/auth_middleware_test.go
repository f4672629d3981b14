package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/classpoint/school-service/internal/auth"
	"github.com/classpoint/school-service/internal/config"
	"github.com/classpoint/school-service/internal/models"
)

var testAuthCfg = config.AuthConfig{Secret: "test-secret", Issuer: "school-service"}

func newAuthTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	m := NewJWTAuthMiddleware(testAuthCfg)
	router := gin.New()

	authed := router.Group("", m.AuthMiddleware())
	authed.GET("/me", func(c *gin.Context) {
		id := currentUserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	authed.GET("/staff", m.RequireRoleMiddleware(models.RoleTeacher, models.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router
}

func issueTestToken(t *testing.T, userID uint, role models.UserRole) string {
	t.Helper()
	token, _, err := auth.Issue(userID, role, testAuthCfg.Issuer, testAuthCfg.Secret)
	if err != nil {
		t.Fatalf("failed to issue token: %v", err)
	}
	return token
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareRejectsBadToken(t *testing.T) {
	router := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestAuthMiddlewareAcceptsValidToken(t *testing.T) {
	router := newAuthTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, 42, models.RoleStudent))
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
}

func TestRequireRoleMiddleware(t *testing.T) {
	router := newAuthTestRouter(t)

	tests := []struct {
		role models.UserRole
		want int
	}{
		{models.RoleTeacher, http.StatusOK},
		{models.RoleAdmin, http.StatusOK},
		{models.RoleStudent, http.StatusForbidden},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/staff", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, 1, tt.role))
		router.ServeHTTP(w, req)

		if w.Code != tt.want {
			t.Errorf("role %s: status = %d, want %d", tt.role, w.Code, tt.want)
		}
	}
}

func TestTokenFromAnotherIssuerIsRejected(t *testing.T) {
	router := newAuthTestRouter(t)

	token, _, err := auth.Issue(1, models.RoleTeacher, "someone-else", testAuthCfg.Secret)
	if err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}
