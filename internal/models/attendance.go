package models

import (
	"time"

	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "Present"
	StatusAbsent  AttendanceStatus = "Absent"
	StatusApology AttendanceStatus = "Absent with apology"
)

// ValidStatus reports whether s is one of the three recognised roll-call states.
func ValidStatus(s AttendanceStatus) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusApology:
		return true
	}
	return false
}

// Attendance rows are append-only: a correction is a new row for the same
// (student, date), never an update.
type Attendance struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	StudentID uint             `json:"student_id" gorm:"not null;index:idx_attendance_student_date,priority:1"`
	Student   *Student         `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	Status    AttendanceStatus `json:"status" gorm:"not null;size:30"`
	Date      datatypes.Date   `json:"date" gorm:"not null;index:idx_attendance_student_date,priority:2;index:idx_attendance_date"`
	TeacherID *uint            `json:"teacher_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (Attendance) TableName() string {
	return "attendance_records"
}
