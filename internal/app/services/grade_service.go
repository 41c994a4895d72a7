package services

import (
	"context"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/repositories"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/helpers"
)

// DefaultRecentGradeLimit caps a teacher's recent-recordings listing when no
// limit is requested.
const DefaultRecentGradeLimit = 10

// gradeScale maps percentage thresholds to letter grades, highest first.
// A percentage at or above a threshold earns that letter.
var gradeScale = []struct {
	threshold float64
	letter    string
}{
	{90, "A+"},
	{85, "A"},
	{80, "B+"},
	{75, "B"},
	{70, "C+"},
	{65, "C"},
	{60, "D"},
}

// CalculateGrade converts a percentage to its letter grade. Anything below
// 60 is an F. Percentages above 100 still map to A+; marks above the total
// are accepted upstream, so the scale has to tolerate them.
func CalculateGrade(percentage float64) string {
	for _, band := range gradeScale {
		if percentage >= band.threshold {
			return band.letter
		}
	}
	return "F"
}

// GradeService handles the grade ledger
type GradeService interface {
	// RecordGrade appends one exam result to the ledger, computing the
	// percentage and letter grade. The recording teacher comes from the
	// authenticated principal.
	RecordGrade(ctx context.Context, teacherID string, request *dto.RecordGradeRequest) (*models.Grade, error)
	// ListStudentGrades returns a student's ledger entries, newest first.
	ListStudentGrades(ctx context.Context, studentID string) ([]*models.Grade, error)
	// ListRecent returns a teacher's most recent recordings.
	ListRecent(ctx context.Context, teacherID string, limit int) ([]*models.GradeWithStudent, error)
}

type gradeService struct {
	grades   GradeStore
	students StudentStore
	ids      IDSource
}

// NewGradeService creates a new GradeService
func NewGradeService(grades GradeStore, students StudentStore, ids IDSource) GradeService {
	return &gradeService{
		grades:   grades,
		students: students,
		ids:      ids,
	}
}

func (s *gradeService) RecordGrade(ctx context.Context, teacherID string, request *dto.RecordGradeRequest) (*models.Grade, error) {
	if !models.ExamType(request.ExamType).Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "unknown exam type")
	}
	if request.TotalMarks <= 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "totalMarks must be greater than zero")
	}
	if request.MarksObtained < 0 {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "marksObtained cannot be negative")
	}

	date, err := helpers.ParseDate(request.Date)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "date must use the YYYY-MM-DD layout")
	}

	if _, err := s.students.GetByID(ctx, request.StudentID); err != nil {
		return nil, err
	}

	gradeID, err := s.ids.Next(ctx, repositories.PrefixGrade)
	if err != nil {
		return nil, err
	}

	percentage := request.MarksObtained / request.TotalMarks * 100
	grade := &models.Grade{
		GradeID:       gradeID,
		StudentID:     request.StudentID,
		Subject:       request.Subject,
		ExamType:      models.ExamType(request.ExamType),
		MarksObtained: request.MarksObtained,
		TotalMarks:    request.TotalMarks,
		Percentage:    percentage,
		LetterGrade:   CalculateGrade(percentage),
		Date:          date,
		TeacherID:     teacherID,
	}

	if err := s.grades.Create(ctx, grade); err != nil {
		return nil, err
	}
	return grade, nil
}

func (s *gradeService) ListStudentGrades(ctx context.Context, studentID string) ([]*models.Grade, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.grades.ListByStudent(ctx, studentID)
}

func (s *gradeService) ListRecent(ctx context.Context, teacherID string, limit int) ([]*models.GradeWithStudent, error) {
	if limit <= 0 {
		limit = DefaultRecentGradeLimit
	}
	return s.grades.ListRecentByTeacher(ctx, teacherID, limit)
}
