package validator

// ===== AUTH =====

// RegisterStudentRequest carries self-service student enrolment.
type RegisterStudentRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=100"`
	RegistrationNumber string `json:"registration_number" validate:"required,min=1,max=50"`
	Grade              string `json:"grade" validate:"required,grade_label"`
	Email              string `json:"email" validate:"required,email,max=255"`
	Password           string `json:"password" validate:"required,min=8,max=72"`
	ParentName         string `json:"parent_name" validate:"omitempty,max=100"`
	ParentEmail        string `json:"parent_email" validate:"omitempty,email,max=255"`
	ParentPhone        string `json:"parent_phone" validate:"omitempty,max=30"`
}

type RegisterTeacherRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Subject  string `json:"subject" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ===== STUDENTS =====

type StudentUpdateRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Grade       *string `json:"grade" validate:"omitempty,grade_label"`
	Email       *string `json:"email" validate:"omitempty,email,max=255"`
	ParentName  *string `json:"parent_name" validate:"omitempty,max=100"`
	ParentEmail *string `json:"parent_email" validate:"omitempty,email,max=255"`
	ParentPhone *string `json:"parent_phone" validate:"omitempty,max=30"`
}

// ===== TEACHERS =====

type TeacherUpdateRequest struct {
	Name    *string `json:"name" validate:"omitempty,min=1,max=100"`
	Email   *string `json:"email" validate:"omitempty,email,max=255"`
	Subject *string `json:"subject" validate:"omitempty,max=100"`
}

// ===== CLASSES =====

type ClassRequest struct {
	Grade string `json:"grade" validate:"required,grade_label"`
}

// ===== ASSIGNMENTS =====

type AssignmentRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Description string `json:"description" validate:"required,min=1,max=2000"`
	Grade       string `json:"grade" validate:"required,grade_label"`
	Deadline    string `json:"deadline" validate:"required,max=100"`
}

// ===== EXAMS =====

type ExamRequest struct {
	Name               string `json:"name" validate:"required,min=1,max=200"`
	RegistrationNumber string `json:"registration_number" validate:"required,min=1,max=50"`
	ClassName          string `json:"class_name" validate:"required,grade_label"`
	Marks              int    `json:"marks" validate:"exam_marks"`
}

// ===== ATTENDANCE =====

// AttendanceRecordRequest is one student's entry in a roll call.
type AttendanceRecordRequest struct {
	StudentID uint   `json:"student_id" validate:"required"`
	Status    string `json:"status" validate:"required,attendance_status"`
}

// AttendanceBatchRequest is a full roll call for one date.
type AttendanceBatchRequest struct {
	Date    string                    `json:"date" validate:"required,datetime=2006-01-02"`
	Records []AttendanceRecordRequest `json:"records" validate:"required,min=1,dive"`
}

// ===== BULLETIN =====

type AnnouncementRequest struct {
	Announcement string `json:"announcement" validate:"required,min=1,max=2000"`
}

type EventRequest struct {
	Event string `json:"event" validate:"required,min=1,max=2000"`
}

// ===== FEES =====

type FeesRequest struct {
	StudentName string  `json:"student_name" validate:"required,min=1,max=100"`
	RollNumber  string  `json:"roll_number" validate:"required,min=1,max=50"`
	Department  string  `json:"department" validate:"required,min=1,max=100"`
	TuitionFees float64 `json:"tuition_fees" validate:"fee_amount"`
	HostelFees  float64 `json:"hostel_fees" validate:"fee_amount"`
	MessFees    float64 `json:"mess_fees" validate:"fee_amount"`
}

// ===== EMAIL / REPORTS =====

type SendEmailRequest struct {
	To      string `json:"to" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=1,max=200"`
	Text    string `json:"text" validate:"required,min=1"`
}

// AttendanceReportRequest scopes a parent mail-out; an empty grade means the
// whole school.
type AttendanceReportRequest struct {
	Grade     string `json:"grade" validate:"omitempty,grade_label"`
	StartDate string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

// StudentAttendanceReportRequest targets a single student's parent.
type StudentAttendanceReportRequest struct {
	RegistrationNumber string `json:"registration_number" validate:"required,min=1,max=50"`
	StartDate          string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
	EndDate            string `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
}

type FeesReportRequest struct {
	RollNumber string `json:"roll_number" validate:"omitempty,min=1,max=50"`
}
