package models

import "time"

// SchoolClass is a cohort label ("10-A"); students reference it by the free-text
// Grade field rather than a foreign key, matching the enrolment model of a
// single-school deployment.
type SchoolClass struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Grade string `json:"grade" gorm:"not null;size:20"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SchoolClass) TableName() string {
	return "school_classes"
}

// Assignment keeps grade and deadline as free text; the original data entry
// flow never enforced a date type and existing rows carry arbitrary strings.
type Assignment struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Title       string `json:"title" gorm:"not null;size:200"`
	Description string `json:"description" gorm:"not null;size:2000"`
	Grade       string `json:"grade" gorm:"not null;size:20"`
	Deadline    string `json:"deadline" gorm:"not null;size:100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Assignment) TableName() string {
	return "assignments"
}

type Exam struct {
	ID                 uint   `json:"id" gorm:"primaryKey"`
	Name               string `json:"name" gorm:"not null;size:200"`
	RegistrationNumber string `json:"registration_number" gorm:"not null;size:50;index"`
	ClassName          string `json:"class_name" gorm:"not null;size:20"`
	Marks              int    `json:"marks" gorm:"not null"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Exam) TableName() string {
	return "exams"
}
