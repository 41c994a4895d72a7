package services

import (
	"context"
	"time"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/repositories"
	"github.com/demiray/campusms/internal/pkg/auth"
)

// Store interfaces are declared here, on the consumer side, so services can
// be tested against in-memory fakes. The repositories package satisfies all
// of them.

// TeacherStore persists teacher accounts
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByUsername(ctx context.Context, username string) (*models.Teacher, error)
	GetByID(ctx context.Context, teacherID string) (*models.Teacher, error)
	GetAll(ctx context.Context) ([]*models.Teacher, error)
	UpdatePassword(ctx context.Context, teacherID, passwordHash string) error
	Delete(ctx context.Context, teacherID string) error
	Count(ctx context.Context) (int, error)
}

// StudentStore persists student records
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, studentID string) (*models.Student, error)
	GetAll(ctx context.Context) ([]*models.Student, error)
	UpdatePassword(ctx context.Context, studentID, passwordHash string) error
	Delete(ctx context.Context, studentID string) error
	Count(ctx context.Context) (int, error)
}

// SubjectStore persists the subject catalog
type SubjectStore interface {
	Create(ctx context.Context, subject *models.Subject) error
	GetAll(ctx context.Context) ([]*models.Subject, error)
	Count(ctx context.Context) (int, error)
}

// GradeStore persists the append-only grade ledger
type GradeStore interface {
	Create(ctx context.Context, grade *models.Grade) error
	ListByStudent(ctx context.Context, studentID string) ([]*models.Grade, error)
	ListRecentByTeacher(ctx context.Context, teacherID string, limit int) ([]*models.GradeWithStudent, error)
	CountByTeacherSince(ctx context.Context, teacherID string, since time.Time) (int, error)
}

// AttendanceStore persists the attendance register
type AttendanceStore interface {
	ReplaceForDate(ctx context.Context, date time.Time, subject string, records []*models.AttendanceRecord) error
	ListByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error)
	ListForDate(ctx context.Context, date time.Time, subject string) ([]*models.AttendanceRecord, error)
}

// IDSource hands out prefixed sequential IDs
type IDSource interface {
	Next(ctx context.Context, prefix string) (string, error)
}

// Services holds all service instances
type Services struct {
	Auth       AuthService
	Teacher    TeacherService
	Student    StudentService
	Subject    SubjectService
	Grade      GradeService
	Attendance AttendanceService
	Report     ReportService
}

// NewServices wires all services over the shared repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:       NewAuthService(repos.Teacher, repos.Student, jwtService),
		Teacher:    NewTeacherService(repos.Teacher, repos.IDGenerator),
		Student:    NewStudentService(repos.Student, repos.IDGenerator),
		Subject:    NewSubjectService(repos.Subject, repos.IDGenerator),
		Grade:      NewGradeService(repos.Grade, repos.Student, repos.IDGenerator),
		Attendance: NewAttendanceService(repos.Attendance, repos.Student),
		Report:     NewReportService(repos.Student, repos.Teacher, repos.Subject, repos.Grade, repos.Attendance),
	}
}
