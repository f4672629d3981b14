package services

import (
	"context"
	"sync"

	"gorm.io/gorm"

	"github.com/classpoint/school-service/internal/mailer"
	"github.com/classpoint/school-service/internal/models"
	"github.com/classpoint/school-service/internal/repositories"
)

// ===== MOCK REPOSITORIES =====

type mockStudentRepo struct {
	students []*models.Student
	created  []*models.Student
}

func (m *mockStudentRepo) Create(ctx context.Context, student *models.Student) error {
	student.ID = uint(len(m.students) + len(m.created) + 1)
	m.created = append(m.created, student)
	return nil
}

func (m *mockStudentRepo) GetByID(ctx context.Context, id uint) (*models.Student, error) {
	for _, s := range m.all() {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByEmail(ctx context.Context, email string) (*models.Student, error) {
	for _, s := range m.all() {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) GetByRegistrationNumber(ctx context.Context, regNo string) (*models.Student, error) {
	for _, s := range m.all() {
		if s.RegistrationNumber == regNo {
			return s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStudentRepo) List(ctx context.Context) ([]*models.Student, error) {
	return m.all(), nil
}

func (m *mockStudentRepo) ListByGrade(ctx context.Context, grade string) ([]*models.Student, error) {
	var out []*models.Student
	for _, s := range m.all() {
		if s.Grade == grade {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockStudentRepo) Update(ctx context.Context, student *models.Student) error { return nil }
func (m *mockStudentRepo) Delete(ctx context.Context, id uint) error                 { return nil }

func (m *mockStudentRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

func (m *mockStudentRepo) ExistsByRegistrationNumber(ctx context.Context, regNo string) (bool, error) {
	_, err := m.GetByRegistrationNumber(ctx, regNo)
	return err == nil, nil
}

func (m *mockStudentRepo) all() []*models.Student {
	return append(append([]*models.Student{}, m.students...), m.created...)
}

type mockTeacherRepo struct {
	teachers []*models.Teacher
}

func (m *mockTeacherRepo) Create(ctx context.Context, teacher *models.Teacher) error {
	teacher.ID = uint(len(m.teachers) + 1)
	m.teachers = append(m.teachers, teacher)
	return nil
}

func (m *mockTeacherRepo) GetByID(ctx context.Context, id uint) (*models.Teacher, error) {
	for _, t := range m.teachers {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) GetByEmail(ctx context.Context, email string) (*models.Teacher, error) {
	for _, t := range m.teachers {
		if t.Email == email {
			return t, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTeacherRepo) List(ctx context.Context) ([]*models.Teacher, error) {
	return m.teachers, nil
}

func (m *mockTeacherRepo) Update(ctx context.Context, teacher *models.Teacher) error { return nil }
func (m *mockTeacherRepo) Delete(ctx context.Context, id uint) error                 { return nil }

func (m *mockTeacherRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := m.GetByEmail(ctx, email)
	return err == nil, nil
}

type mockAttendanceRepo struct {
	records []*models.Attendance
	batches [][]*models.Attendance
}

func (m *mockAttendanceRepo) CreateBatch(ctx context.Context, records []*models.Attendance) error {
	m.batches = append(m.batches, records)
	m.records = append(m.records, records...)
	return nil
}

func (m *mockAttendanceRepo) List(ctx context.Context) ([]*models.Attendance, error) {
	return m.records, nil
}

func (m *mockAttendanceRepo) ListByStudentIDs(ctx context.Context, studentIDs []uint, filters repositories.DateRangeFilters) ([]*models.Attendance, error) {
	wanted := make(map[uint]bool, len(studentIDs))
	for _, id := range studentIDs {
		wanted[id] = true
	}
	var out []*models.Attendance
	for _, r := range m.records {
		if wanted[r.StudentID] {
			out = append(out, r)
		}
	}
	return out, nil
}

type mockFeesRepo struct {
	ledger []*models.StudentFees
}

func (m *mockFeesRepo) Create(ctx context.Context, fees *models.StudentFees) error {
	fees.ID = uint(len(m.ledger) + 1)
	m.ledger = append(m.ledger, fees)
	return nil
}

func (m *mockFeesRepo) GetByID(ctx context.Context, id uint) (*models.StudentFees, error) {
	for _, f := range m.ledger {
		if f.ID == id {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFeesRepo) GetByRollNumber(ctx context.Context, rollNumber string) (*models.StudentFees, error) {
	for _, f := range m.ledger {
		if f.RollNumber == rollNumber {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFeesRepo) List(ctx context.Context) ([]*models.StudentFees, error) {
	return m.ledger, nil
}

func (m *mockFeesRepo) Update(ctx context.Context, fees *models.StudentFees) error { return nil }
func (m *mockFeesRepo) Delete(ctx context.Context, id uint) error                  { return nil }

// mockRepository wires the mocks into the aggregate interface; repositories
// not exercised by a test stay nil.
type mockRepository struct {
	student    *mockStudentRepo
	teacher    *mockTeacherRepo
	attendance *mockAttendanceRepo
	fees       *mockFeesRepo
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		student:    &mockStudentRepo{},
		teacher:    &mockTeacherRepo{},
		attendance: &mockAttendanceRepo{},
		fees:       &mockFeesRepo{},
	}
}

func (m *mockRepository) Student() repositories.StudentRepository       { return m.student }
func (m *mockRepository) Teacher() repositories.TeacherRepository       { return m.teacher }
func (m *mockRepository) Class() repositories.ClassRepository           { return nil }
func (m *mockRepository) Assignment() repositories.AssignmentRepository { return nil }
func (m *mockRepository) Exam() repositories.ExamRepository             { return nil }
func (m *mockRepository) Attendance() repositories.AttendanceRepository { return m.attendance }
func (m *mockRepository) Announcement() repositories.AnnouncementRepository {
	return nil
}
func (m *mockRepository) Event() repositories.EventRepository { return nil }
func (m *mockRepository) Fees() repositories.FeesRepository   { return m.fees }

func (m *mockRepository) WithTransaction(ctx context.Context, fn func(repositories.Repository) error) error {
	return fn(m)
}

func (m *mockRepository) Ping(ctx context.Context) error { return nil }
func (m *mockRepository) Close() error                   { return nil }

// ===== MOCK MAILER =====

type mockMailer struct {
	mu        sync.Mutex
	verifyErr error
	failFor   map[string]error
	sent      []mailer.Message
}

func newMockMailer() *mockMailer {
	return &mockMailer{failFor: make(map[string]error)}
}

func (m *mockMailer) Verify(ctx context.Context) error {
	return m.verifyErr
}

func (m *mockMailer) Send(ctx context.Context, msg mailer.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err, ok := m.failFor[msg.To]; ok {
		return err
	}
	m.sent = append(m.sent, msg)
	return nil
}

func (m *mockMailer) sentTo() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]string, len(m.sent))
	for i, msg := range m.sent {
		out[i] = msg.To
	}
	return out
}
