package models

import "time"

// StudentFees keeps the fee ledger keyed by roll number. TotalFees is always
// recomputed server-side from the components; client-supplied totals are
// ignored.
type StudentFees struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	StudentName string  `json:"student_name" gorm:"not null;size:100"`
	RollNumber  string  `json:"roll_number" gorm:"uniqueIndex;not null;size:50"`
	Department  string  `json:"department" gorm:"not null;size:100"`
	TuitionFees float64 `json:"tuition_fees" gorm:"not null"`
	HostelFees  float64 `json:"hostel_fees" gorm:"not null"`
	MessFees    float64 `json:"mess_fees" gorm:"not null"`
	TotalFees   float64 `json:"total_fees"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (StudentFees) TableName() string {
	return "student_fees"
}

// ComputeTotal recalculates TotalFees from the fee components.
func (f *StudentFees) ComputeTotal() {
	f.TotalFees = f.TuitionFees + f.HostelFees + f.MessFees
}
