package auth

import (
	"testing"
	"time"

	"github.com/classpoint/school-service/internal/models"
)

func TestIssueAndParse(t *testing.T) {
	token, expiresAt, err := Issue(42, models.RoleTeacher, "school-service", "test-secret")
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if until := time.Until(expiresAt); until < 23*time.Hour || until > TokenTTL {
		t.Errorf("expiry %v is not ~24h out", expiresAt)
	}

	claims, err := Parse(token, "test-secret", "school-service")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Role != models.RoleTeacher {
		t.Errorf("Role = %q, want teacher", claims.Role)
	}
}

func TestParseRejectsWrongKey(t *testing.T) {
	token, _, err := Issue(1, models.RoleStudent, "school-service", "test-secret")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Parse(token, "other-secret", "school-service"); err == nil {
		t.Error("expected an error for a token signed with another key")
	}
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	token, _, err := Issue(1, models.RoleStudent, "someone-else", "test-secret")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Parse(token, "test-secret", "school-service"); err == nil {
		t.Error("expected an issuer mismatch error")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not.a.token", "test-secret", "school-service"); err == nil {
		t.Error("expected an error for a malformed token")
	}
}
