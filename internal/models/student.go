package models

import (
	"time"
)

type UserRole string

const (
	RoleStudent UserRole = "student"
	RoleTeacher UserRole = "teacher"

	// RoleAdmin is honored by the role checks but has no login flow of its
	// own; admin tokens are minted out of band with the shared signing key.
	RoleAdmin UserRole = "admin"
)

type Student struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	Name               string `json:"name" gorm:"not null;size:100"`
	RegistrationNumber string `json:"registration_number" gorm:"uniqueIndex;not null;size:50"`
	Grade              string `json:"grade" gorm:"not null;size:20"`
	Email              string `json:"email" gorm:"uniqueIndex;size:255"`
	PasswordHash       string `json:"-" gorm:"size:255"`

	// Parent contact for attendance/fees reports
	ParentName  string `json:"parent_name" gorm:"size:100"`
	ParentEmail string `json:"parent_email" gorm:"size:255"`
	ParentPhone string `json:"parent_phone" gorm:"size:30"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Student) TableName() string {
	return "students"
}
