package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published to the school events topic.
const (
	EventStudentRegistered   = "student.registered"
	EventTeacherRegistered   = "teacher.registered"
	EventAttendanceMarked    = "attendance.marked"
	EventAnnouncementCreated = "announcement.created"
	EventEventCreated        = "event.created"
	EventFeesUpdated         = "fees.updated"
	EventReportDispatched    = "report.dispatched"
)

const (
	eventSource  = "school-service"
	eventVersion = "1.0"
)

// Event is the envelope for all published domain events.
type Event struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Source    string      `json:"source"`
	Version   string      `json:"version"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data"`
}

// NewEvent builds an envelope around a payload.
func NewEvent(eventType string, data interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Type:      eventType,
		Source:    eventSource,
		Version:   eventVersion,
		Timestamp: time.Now().UTC(),
		Data:      data,
	}
}

// EventPublisher publishes domain events; implementations must be safe for
// concurrent use.
type EventPublisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// ===== EVENT PAYLOADS =====

type StudentRegisteredEvent struct {
	StudentID          uint   `json:"student_id"`
	RegistrationNumber string `json:"registration_number"`
	Grade              string `json:"grade"`
}

type AttendanceMarkedEvent struct {
	Date        string `json:"date"`
	RecordCount int    `json:"record_count"`
	TeacherID   *uint  `json:"teacher_id,omitempty"`
}

type ReportDispatchedEvent struct {
	ReportType   string `json:"report_type"`
	Recipients   int    `json:"recipients"`
	SuccessCount int    `json:"success_count"`
	FailureCount int    `json:"failure_count"`
}

type FeesUpdatedEvent struct {
	RollNumber string  `json:"roll_number"`
	TotalFees  float64 `json:"total_fees"`
}
