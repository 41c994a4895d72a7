package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/pkg/apperrors"
)

type reportFixture struct {
	service    ReportService
	students   *fakeStudentStore
	teachers   *fakeTeacherStore
	subjects   *fakeSubjectStore
	grades     *fakeGradeStore
	attendance *fakeAttendanceStore
}

func newReportFixture(t *testing.T) *reportFixture {
	t.Helper()
	f := &reportFixture{
		students:   newFakeStudentStore(),
		teachers:   newFakeTeacherStore(),
		subjects:   &fakeSubjectStore{},
		grades:     &fakeGradeStore{},
		attendance: newFakeAttendanceStore(),
	}
	f.students.students["STU001"] = &models.Student{
		StudentID: "STU001",
		FirstName: "Ali",
		LastName:  "Veli",
	}
	f.service = NewReportService(f.students, f.teachers, f.subjects, f.grades, f.attendance)
	return f
}

func TestStudentSummaryEmptyHistory(t *testing.T) {
	f := newReportFixture(t)

	summary, err := f.service.StudentSummary(context.Background(), "STU001")
	require.NoError(t, err)

	// Zero records must yield null percentages, never 0%.
	assert.Nil(t, summary.AverageGradePercentage)
	assert.Nil(t, summary.AttendancePercentage)
	assert.Zero(t, summary.TotalExams)
	assert.Zero(t, summary.TotalClasses)
}

func TestStudentSummary(t *testing.T) {
	f := newReportFixture(t)
	f.grades.grades = []*models.Grade{
		{StudentID: "STU001", Subject: "Machine Learning", Percentage: 90},
		{StudentID: "STU001", Subject: "Machine Learning", Percentage: 70},
		{StudentID: "STU001", Subject: "Database Systems", Percentage: 80},
	}
	day := time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC)
	require.NoError(t, f.attendance.ReplaceForDate(context.Background(), day, "Machine Learning", []*models.AttendanceRecord{
		{StudentID: "STU001", Status: models.AttendancePresent},
	}))
	require.NoError(t, f.attendance.ReplaceForDate(context.Background(), day, "Database Systems", []*models.AttendanceRecord{
		{StudentID: "STU001", Status: models.AttendanceAbsent},
	}))

	summary, err := f.service.StudentSummary(context.Background(), "STU001")
	require.NoError(t, err)

	require.NotNil(t, summary.AverageGradePercentage)
	assert.InDelta(t, 80.0, *summary.AverageGradePercentage, 0.001)
	assert.Equal(t, 3, summary.TotalExams)
	assert.Equal(t, 2, summary.TotalClasses)
	assert.Equal(t, 1, summary.ClassesPresent)
	require.NotNil(t, summary.AttendancePercentage)
	assert.InDelta(t, 50.0, *summary.AttendancePercentage, 0.001)
}

func TestStudentReportPerSubject(t *testing.T) {
	f := newReportFixture(t)
	f.grades.grades = []*models.Grade{
		{StudentID: "STU001", Subject: "Machine Learning", Percentage: 90},
		{StudentID: "STU001", Subject: "Machine Learning", Percentage: 70},
		{StudentID: "STU001", Subject: "Database Systems", Percentage: 80},
	}

	report, err := f.service.StudentReport(context.Background(), "STU001")
	require.NoError(t, err)

	assert.Equal(t, "Ali Veli", report.StudentName)
	require.Len(t, report.SubjectAverages, 2)
	// Sorted by subject name.
	assert.Equal(t, "Database Systems", report.SubjectAverages[0].Subject)
	assert.InDelta(t, 80.0, report.SubjectAverages[0].AveragePercentage, 0.001)
	assert.Equal(t, "Machine Learning", report.SubjectAverages[1].Subject)
	assert.InDelta(t, 80.0, report.SubjectAverages[1].AveragePercentage, 0.001)
	assert.Equal(t, 2, report.SubjectAverages[1].Exams)
}

func TestStudentReportUnknownStudent(t *testing.T) {
	f := newReportFixture(t)

	_, err := f.service.StudentReport(context.Background(), "STU999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestOverview(t *testing.T) {
	f := newReportFixture(t)
	f.teachers.teachers["TEA001"] = &models.Teacher{TeacherID: "TEA001", Role: models.RoleAdmin}
	f.teachers.teachers["TEA002"] = &models.Teacher{TeacherID: "TEA002", Role: models.RoleTeacher}
	f.subjects.subjects = []*models.Subject{{Name: "Data Science"}, {Name: "Web Development"}}
	f.grades.grades = []*models.Grade{
		{TeacherID: "TEA002", Date: time.Now().AddDate(0, 0, -2)},
		{TeacherID: "TEA002", Date: time.Now().AddDate(0, 0, -30)},
	}

	// Admins get head counts only.
	stats, err := f.service.Overview(context.Background(), "TEA001", "admin")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalStudents)
	assert.Equal(t, 2, stats.TotalTeachers)
	assert.Equal(t, 2, stats.TotalSubjects)
	assert.Nil(t, stats.GradesThisWeek)

	// Teachers also get their own weekly recording count.
	stats, err = f.service.Overview(context.Background(), "TEA002", "teacher")
	require.NoError(t, err)
	require.NotNil(t, stats.GradesThisWeek)
	assert.Equal(t, 1, *stats.GradesThisWeek)
}
