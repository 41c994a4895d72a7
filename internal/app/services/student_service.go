package services

import (
	"context"
	"time"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/repositories"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/auth"
	"github.com/demiray/campusms/internal/pkg/helpers"
	"github.com/demiray/campusms/internal/pkg/validation"
)

// semestersByYear pairs each study year with the two semesters it spans.
// An enrollment naming a semester outside its year is rejected.
var semestersByYear = map[string][]string{
	"1st Year": {"1st Semester", "2nd Semester"},
	"2nd Year": {"3rd Semester", "4th Semester"},
	"3rd Year": {"5th Semester", "6th Semester"},
	"4th Year": {"7th Semester", "8th Semester"},
}

// StudentService handles student record management
type StudentService interface {
	// CreateStudent enrolls a student and returns the assigned ID. The
	// plaintext password is present only when it was generated.
	CreateStudent(ctx context.Context, request *dto.CreateStudentRequest) (*dto.StudentCredentials, error)
	// GetStudent retrieves a single student record.
	GetStudent(ctx context.Context, studentID string) (*models.Student, error)
	// ListStudents returns all student records.
	ListStudents(ctx context.Context) ([]*models.Student, error)
	// DeleteStudent removes a student and, via cascade, all of their
	// grades and attendance records.
	DeleteStudent(ctx context.Context, studentID string) error
	// ResetPassword sets or generates a new password for a student.
	ResetPassword(ctx context.Context, studentID string, request *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error)
}

type studentService struct {
	students StudentStore
	ids      IDSource
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore, ids IDSource) StudentService {
	return &studentService{
		students: students,
		ids:      ids,
	}
}

func (s *studentService) CreateStudent(ctx context.Context, request *dto.CreateStudentRequest) (*dto.StudentCredentials, error) {
	if !validation.IsValidEmail(request.Email) {
		return nil, apperrors.ErrInvalidEmail
	}
	if err := validateYearSemester(request.Year, request.Semester); err != nil {
		return nil, err
	}
	if !models.Gender(request.Gender).Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown gender")
	}

	dateOfBirth, err := helpers.ParseDate(request.DateOfBirth)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "dateOfBirth must use the YYYY-MM-DD layout")
	}

	plaintext, generated, err := resolvePassword(request.PasswordPolicy, request.Password, request.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	studentID, err := s.ids.Next(ctx, repositories.PrefixStudent)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		StudentID:        studentID,
		FirstName:        request.FirstName,
		LastName:         request.LastName,
		Email:            request.Email,
		Phone:            request.Phone,
		DateOfBirth:      dateOfBirth,
		Gender:           models.Gender(request.Gender),
		Course:           request.Course,
		Year:             request.Year,
		Semester:         request.Semester,
		Address:          request.Address,
		EmergencyContact: request.EmergencyContact,
		EnrollmentDate:   time.Now(),
		Password:         auth.HashPassword(plaintext),
		Status:           models.StatusActive,
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, err
	}

	credentials := &dto.StudentCredentials{StudentID: student.StudentID}
	if generated {
		credentials.Password = plaintext
	}
	return credentials, nil
}

func validateYearSemester(year, semester string) error {
	semesters, ok := semestersByYear[year]
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown study year")
	}
	for _, s := range semesters {
		if s == semester {
			return nil
		}
	}
	return apperrors.NewCustomError(apperrors.ErrValidationFailed, "semester does not belong to the study year")
}

func (s *studentService) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	return s.students.GetByID(ctx, studentID)
}

func (s *studentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.students.GetAll(ctx)
}

func (s *studentService) DeleteStudent(ctx context.Context, studentID string) error {
	return s.students.Delete(ctx, studentID)
}

func (s *studentService) ResetPassword(ctx context.Context, studentID string, request *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	plaintext := request.Password
	response := &dto.ResetPasswordResponse{}
	if plaintext == "" {
		generated, err := auth.GeneratePassword()
		if err != nil {
			return nil, err
		}
		plaintext = generated
		response.Password = generated
	}

	if err := s.students.UpdatePassword(ctx, studentID, auth.HashPassword(plaintext)); err != nil {
		return nil, err
	}
	return response, nil
}
