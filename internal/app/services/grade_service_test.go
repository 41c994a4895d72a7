package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/pkg/apperrors"
)

func TestCalculateGrade(t *testing.T) {
	cases := []struct {
		percentage float64
		want       string
	}{
		{100, "A+"},
		{90, "A+"},
		{89.99, "A"},
		{85, "A"},
		{84.5, "B+"},
		{80, "B+"},
		{75, "B"},
		{74.9, "C+"},
		{70, "C+"},
		{65, "C"},
		{60, "D"},
		{59.99, "F"},
		{0, "F"},
		// Marks above the total are accepted, so the scale has to cope
		// with percentages past 100.
		{120, "A+"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CalculateGrade(tc.percentage), "percentage %.2f", tc.percentage)
	}
}

func newGradeFixture(t *testing.T) (GradeService, *fakeGradeStore, *fakeStudentStore) {
	t.Helper()
	grades := &fakeGradeStore{}
	students := newFakeStudentStore()
	students.students["STU001"] = &models.Student{
		StudentID: "STU001",
		FirstName: "Ali",
		LastName:  "Veli",
	}
	service := NewGradeService(grades, students, newFakeIDSource())
	return service, grades, students
}

func TestRecordGrade(t *testing.T) {
	service, grades, _ := newGradeFixture(t)

	grade, err := service.RecordGrade(context.Background(), "TEA002", &dto.RecordGradeRequest{
		StudentID:     "STU001",
		Subject:       "Machine Learning",
		ExamType:      "Mid-term",
		MarksObtained: 45,
		TotalMarks:    50,
		Date:          "2025-05-20",
	})
	require.NoError(t, err)

	assert.Equal(t, "GRA001", grade.GradeID)
	assert.Equal(t, "TEA002", grade.TeacherID)
	assert.InDelta(t, 90.0, grade.Percentage, 0.001)
	assert.Equal(t, "A+", grade.LetterGrade)
	assert.Len(t, grades.grades, 1)

	grade, err = service.RecordGrade(context.Background(), "TEA002", &dto.RecordGradeRequest{
		StudentID:     "STU001",
		Subject:       "Machine Learning",
		ExamType:      "Final",
		MarksObtained: 40,
		TotalMarks:    50,
		Date:          "2025-06-10",
	})
	require.NoError(t, err)
	assert.Equal(t, "GRA002", grade.GradeID)
	assert.InDelta(t, 80.0, grade.Percentage, 0.001)
	assert.Equal(t, "B+", grade.LetterGrade)
}

func TestRecordGradeMarksAboveTotal(t *testing.T) {
	service, _, _ := newGradeFixture(t)

	grade, err := service.RecordGrade(context.Background(), "TEA002", &dto.RecordGradeRequest{
		StudentID:     "STU001",
		Subject:       "Machine Learning",
		ExamType:      "Quiz",
		MarksObtained: 60,
		TotalMarks:    50,
		Date:          "2025-05-20",
	})
	require.NoError(t, err)

	assert.InDelta(t, 120.0, grade.Percentage, 0.001)
	assert.Equal(t, "A+", grade.LetterGrade)
}

func TestRecordGradeRejectsZeroTotal(t *testing.T) {
	service, _, _ := newGradeFixture(t)

	_, err := service.RecordGrade(context.Background(), "TEA002", &dto.RecordGradeRequest{
		StudentID:     "STU001",
		Subject:       "Machine Learning",
		ExamType:      "Final",
		MarksObtained: 0,
		TotalMarks:    0,
		Date:          "2025-05-20",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRecordGradeRejectsUnknownExamType(t *testing.T) {
	service, _, _ := newGradeFixture(t)

	_, err := service.RecordGrade(context.Background(), "TEA002", &dto.RecordGradeRequest{
		StudentID:     "STU001",
		Subject:       "Machine Learning",
		ExamType:      "Pop Quiz",
		MarksObtained: 10,
		TotalMarks:    20,
		Date:          "2025-05-20",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestRecordGradeUnknownStudent(t *testing.T) {
	service, _, _ := newGradeFixture(t)

	_, err := service.RecordGrade(context.Background(), "TEA002", &dto.RecordGradeRequest{
		StudentID:     "STU999",
		Subject:       "Machine Learning",
		ExamType:      "Final",
		MarksObtained: 10,
		TotalMarks:    20,
		Date:          "2025-05-20",
	})
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestListStudentGradesUnknownStudent(t *testing.T) {
	service, _, _ := newGradeFixture(t)

	_, err := service.ListStudentGrades(context.Background(), "STU999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestListRecentDefaultsLimit(t *testing.T) {
	service, grades, _ := newGradeFixture(t)
	for i := 0; i < 15; i++ {
		grades.grades = append(grades.grades, &models.Grade{TeacherID: "TEA002"})
	}

	recent, err := service.ListRecent(context.Background(), "TEA002", 0)
	require.NoError(t, err)
	assert.Len(t, recent, DefaultRecentGradeLimit)
}
