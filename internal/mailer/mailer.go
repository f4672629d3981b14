package mailer

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"

	"gopkg.in/gomail.v2"

	"github.com/classpoint/school-service/internal/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("email transport not configured")

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	Text    string
	HTML    string
}

// Mailer sends email. Verify checks transport credentials without sending;
// callers run it once before a batch so a dead transport fails fast instead
// of per recipient.
type Mailer interface {
	Verify(ctx context.Context) error
	Send(ctx context.Context, msg Message) error
}

// SMTPMailer sends via an SMTP relay.
type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.EmailConfig) *SMTPMailer {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	dialer.SSL = cfg.Port == 465

	return &SMTPMailer{
		dialer: dialer,
		from:   cfg.FromAddress(),
	}
}

// Verify dials the relay and authenticates, then disconnects.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	if m.dialer.Username == "" {
		return ErrNotConfigured
	}

	type dialResult struct {
		closer gomail.SendCloser
		err    error
	}

	done := make(chan dialResult, 1)
	go func() {
		closer, err := m.dialer.Dial()
		done <- dialResult{closer: closer, err: err}
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case result := <-done:
		if result.err != nil {
			return fmt.Errorf("smtp verify failed: %w", result.err)
		}
		return result.closer.Close()
	}
}

func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)

	if msg.Text != "" {
		gm.SetBody("text/plain", msg.Text)
		if msg.HTML != "" {
			gm.AddAlternative("text/html", msg.HTML)
		}
	} else {
		gm.SetBody("text/html", msg.HTML)
	}

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(gm)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp send to %s failed: %w", msg.To, err)
		}
		return nil
	}
}

// Failure categories reported back to the caller of a batch send.
const (
	FailureAuth       = "authentication"
	FailureConnection = "connection"
	FailureTimeout    = "timeout"
	FailureSend       = "send"
)

// ClassifyError maps a transport error to a failure category.
func ClassifyError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return FailureTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return FailureTimeout
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "535") || strings.Contains(msg, "auth"):
		return FailureAuth
	case strings.Contains(msg, "connection refused") || strings.Contains(msg, "dial") || strings.Contains(msg, "no such host"):
		return FailureConnection
	default:
		return FailureSend
	}
}
