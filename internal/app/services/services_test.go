package services

import (
	"context"
	"time"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/repositories"
	"github.com/demiray/campusms/internal/pkg/apperrors"
)

// In-memory store fakes backing the service tests.

type fakeTeacherStore struct {
	teachers map[string]*models.Teacher
}

func newFakeTeacherStore() *fakeTeacherStore {
	return &fakeTeacherStore{teachers: make(map[string]*models.Teacher)}
}

func (s *fakeTeacherStore) Create(_ context.Context, teacher *models.Teacher) error {
	for _, existing := range s.teachers {
		if existing.Username == teacher.Username {
			return apperrors.ErrUsernameAlreadyExists
		}
		if existing.Email == teacher.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	copied := *teacher
	s.teachers[teacher.TeacherID] = &copied
	return nil
}

func (s *fakeTeacherStore) GetByUsername(_ context.Context, username string) (*models.Teacher, error) {
	for _, teacher := range s.teachers {
		if teacher.Username == username {
			copied := *teacher
			return &copied, nil
		}
	}
	return nil, apperrors.ErrTeacherNotFound
}

func (s *fakeTeacherStore) GetByID(_ context.Context, teacherID string) (*models.Teacher, error) {
	teacher, ok := s.teachers[teacherID]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	copied := *teacher
	return &copied, nil
}

func (s *fakeTeacherStore) GetAll(_ context.Context) ([]*models.Teacher, error) {
	teachers := make([]*models.Teacher, 0, len(s.teachers))
	for _, teacher := range s.teachers {
		copied := *teacher
		teachers = append(teachers, &copied)
	}
	return teachers, nil
}

func (s *fakeTeacherStore) UpdatePassword(_ context.Context, teacherID, passwordHash string) error {
	teacher, ok := s.teachers[teacherID]
	if !ok {
		return apperrors.ErrTeacherNotFound
	}
	teacher.Password = passwordHash
	return nil
}

func (s *fakeTeacherStore) Delete(_ context.Context, teacherID string) error {
	if _, ok := s.teachers[teacherID]; !ok {
		return apperrors.ErrTeacherNotFound
	}
	delete(s.teachers, teacherID)
	return nil
}

func (s *fakeTeacherStore) Count(_ context.Context) (int, error) {
	return len(s.teachers), nil
}

type fakeStudentStore struct {
	students map[string]*models.Student
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[string]*models.Student)}
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	for _, existing := range s.students {
		if existing.Email == student.Email {
			return apperrors.ErrEmailAlreadyExists
		}
	}
	copied := *student
	s.students[student.StudentID] = &copied
	return nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, studentID string) (*models.Student, error) {
	student, ok := s.students[studentID]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (s *fakeStudentStore) GetAll(_ context.Context) ([]*models.Student, error) {
	students := make([]*models.Student, 0, len(s.students))
	for _, student := range s.students {
		copied := *student
		students = append(students, &copied)
	}
	return students, nil
}

func (s *fakeStudentStore) UpdatePassword(_ context.Context, studentID, passwordHash string) error {
	student, ok := s.students[studentID]
	if !ok {
		return apperrors.ErrStudentNotFound
	}
	student.Password = passwordHash
	return nil
}

func (s *fakeStudentStore) Delete(_ context.Context, studentID string) error {
	if _, ok := s.students[studentID]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, studentID)
	return nil
}

func (s *fakeStudentStore) Count(_ context.Context) (int, error) {
	return len(s.students), nil
}

type fakeSubjectStore struct {
	subjects []*models.Subject
}

func (s *fakeSubjectStore) Create(_ context.Context, subject *models.Subject) error {
	for _, existing := range s.subjects {
		if existing.Name == subject.Name {
			return apperrors.ErrSubjectAlreadyExists
		}
	}
	copied := *subject
	s.subjects = append(s.subjects, &copied)
	return nil
}

func (s *fakeSubjectStore) GetAll(_ context.Context) ([]*models.Subject, error) {
	return s.subjects, nil
}

func (s *fakeSubjectStore) Count(_ context.Context) (int, error) {
	return len(s.subjects), nil
}

type fakeGradeStore struct {
	grades []*models.Grade
}

func (s *fakeGradeStore) Create(_ context.Context, grade *models.Grade) error {
	copied := *grade
	s.grades = append(s.grades, &copied)
	return nil
}

func (s *fakeGradeStore) ListByStudent(_ context.Context, studentID string) ([]*models.Grade, error) {
	var grades []*models.Grade
	for _, grade := range s.grades {
		if grade.StudentID == studentID {
			grades = append(grades, grade)
		}
	}
	return grades, nil
}

func (s *fakeGradeStore) ListRecentByTeacher(_ context.Context, teacherID string, limit int) ([]*models.GradeWithStudent, error) {
	var grades []*models.GradeWithStudent
	for _, grade := range s.grades {
		if grade.TeacherID != teacherID {
			continue
		}
		grades = append(grades, &models.GradeWithStudent{Grade: *grade})
		if len(grades) == limit {
			break
		}
	}
	return grades, nil
}

func (s *fakeGradeStore) CountByTeacherSince(_ context.Context, teacherID string, since time.Time) (int, error) {
	count := 0
	for _, grade := range s.grades {
		if grade.TeacherID == teacherID && !grade.Date.Before(since) {
			count++
		}
	}
	return count, nil
}

type registerKey struct {
	date    string
	subject string
}

type fakeAttendanceStore struct {
	registers map[registerKey][]*models.AttendanceRecord
	nextID    int64
}

func newFakeAttendanceStore() *fakeAttendanceStore {
	return &fakeAttendanceStore{registers: make(map[registerKey][]*models.AttendanceRecord)}
}

func (s *fakeAttendanceStore) ReplaceForDate(_ context.Context, date time.Time, subject string, records []*models.AttendanceRecord) error {
	saved := make([]*models.AttendanceRecord, 0, len(records))
	for _, record := range records {
		s.nextID++
		copied := *record
		copied.AttendanceID = repositories.FormatID(repositories.PrefixAttendance, s.nextID)
		copied.Date = date
		copied.Subject = subject
		saved = append(saved, &copied)
	}
	s.registers[registerKey{date: date.Format("2006-01-02"), subject: subject}] = saved
	return nil
}

func (s *fakeAttendanceStore) ListByStudent(_ context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	var records []*models.AttendanceRecord
	for _, register := range s.registers {
		for _, record := range register {
			if record.StudentID == studentID {
				records = append(records, record)
			}
		}
	}
	return records, nil
}

func (s *fakeAttendanceStore) ListForDate(_ context.Context, date time.Time, subject string) ([]*models.AttendanceRecord, error) {
	return s.registers[registerKey{date: date.Format("2006-01-02"), subject: subject}], nil
}

type fakeIDSource struct {
	counters map[string]int64
}

func newFakeIDSource() *fakeIDSource {
	return &fakeIDSource{counters: make(map[string]int64)}
}

func (s *fakeIDSource) Next(_ context.Context, prefix string) (string, error) {
	s.counters[prefix]++
	return repositories.FormatID(prefix, s.counters[prefix]), nil
}
