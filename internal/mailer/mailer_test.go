package mailer

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/classpoint/school-service/internal/config"
)

type fakeTimeoutError struct{}

func (fakeTimeoutError) Error() string   { return "i/o timeout" }
func (fakeTimeoutError) Timeout() bool   { return true }
func (fakeTimeoutError) Temporary() bool { return true }

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"net timeout", fakeTimeoutError{}, FailureTimeout},
		{"deadline", context.DeadlineExceeded, FailureTimeout},
		{"smtp 535", errors.New("535 5.7.8 Username and Password not accepted"), FailureAuth},
		{"auth keyword", errors.New("smtp: authentication failed"), FailureAuth},
		{"refused", errors.New("dial tcp 127.0.0.1:465: connection refused"), FailureConnection},
		{"unknown host", errors.New("lookup smtp.example.com: no such host"), FailureConnection},
		{"other", errors.New("552 message size exceeds limit"), FailureSend},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifyError(tt.err); got != tt.want {
				t.Errorf("ClassifyError(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestRenderAttendanceReport(t *testing.T) {
	html, err := RenderAttendanceReport(AttendanceReportData{
		StudentName: "Asha Verma",
		Grade:       "10",
		PeriodStart: "2026-03-01",
		PeriodEnd:   "2026-03-31",
		TotalDays:   20,
		PresentDays: 15,
		AbsentDays:  3,
		ApologyDays: 2,
		Percentage:  75,
		Remark:      "Fair",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"Asha Verma", "2026-03-01", "75%", "Fair"} {
		if !strings.Contains(html, want) {
			t.Errorf("report body missing %q", want)
		}
	}
}

func TestRenderAttendanceReportEscapesInput(t *testing.T) {
	html, err := RenderAttendanceReport(AttendanceReportData{
		StudentName: "<script>alert(1)</script>",
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Error("student name must be HTML-escaped")
	}
}

func TestRenderFeesReport(t *testing.T) {
	html, err := RenderFeesReport(FeesReportData{
		StudentName: "Asha Verma",
		RollNumber:  "R-100",
		Department:  "Science",
		TuitionFees: 1200.5,
		HostelFees:  800,
		MessFees:    300.25,
		TotalFees:   2300.75,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}

	for _, want := range []string{"R-100", "1200.50", "2300.75"} {
		if !strings.Contains(html, want) {
			t.Errorf("statement body missing %q", want)
		}
	}
}

func TestVerifyWithoutCredentials(t *testing.T) {
	m := NewSMTPMailer(config.EmailConfig{Host: "smtp.example.com", Port: 465})

	if err := m.Verify(context.Background()); !errors.Is(err, ErrNotConfigured) {
		t.Errorf("got %v, want ErrNotConfigured", err)
	}
}
