package services

import (
	"context"
	"sort"
	"time"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
)

// ReportService derives read-only views over the ledger and the register.
// Nothing here is cached; every call recomputes from current rows, so a
// report can never drift from the data behind it.
type ReportService interface {
	// StudentSummary aggregates a student's grades and attendance.
	StudentSummary(ctx context.Context, studentID string) (*dto.StudentSummary, error)
	// StudentReport breaks the summary down per subject.
	StudentReport(ctx context.Context, studentID string) (*dto.StudentReport, error)
	// Overview returns head counts for the dashboard. Teacher principals
	// also get their own count of grades recorded in the last seven days.
	Overview(ctx context.Context, principalID, role string) (*dto.OverviewStats, error)
}

type reportService struct {
	students   StudentStore
	teachers   TeacherStore
	subjects   SubjectStore
	grades     GradeStore
	attendance AttendanceStore
}

// NewReportService creates a new ReportService
func NewReportService(students StudentStore, teachers TeacherStore, subjects SubjectStore, grades GradeStore, attendance AttendanceStore) ReportService {
	return &reportService{
		students:   students,
		teachers:   teachers,
		subjects:   subjects,
		grades:     grades,
		attendance: attendance,
	}
}

func (s *reportService) StudentSummary(ctx context.Context, studentID string) (*dto.StudentSummary, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendance.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	return buildSummary(grades, records), nil
}

func buildSummary(grades []*models.Grade, records []*models.AttendanceRecord) *dto.StudentSummary {
	summary := &dto.StudentSummary{
		TotalExams:           len(grades),
		TotalClasses:         len(records),
		AttendancePercentage: AttendancePercentage(records),
	}

	if len(grades) > 0 {
		var sum float64
		for _, grade := range grades {
			sum += grade.Percentage
		}
		average := sum / float64(len(grades))
		summary.AverageGradePercentage = &average
	}

	for _, record := range records {
		if record.Status == models.AttendancePresent {
			summary.ClassesPresent++
		}
	}
	return summary
}

func (s *reportService) StudentReport(ctx context.Context, studentID string) (*dto.StudentReport, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	grades, err := s.grades.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	records, err := s.attendance.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	report := &dto.StudentReport{
		StudentID:         student.StudentID,
		StudentName:       student.FullName(),
		Summary:           *buildSummary(grades, records),
		SubjectAverages:   subjectAverages(grades),
		SubjectAttendance: subjectPresence(records),
	}
	return report, nil
}

func subjectAverages(grades []*models.Grade) []dto.SubjectAverage {
	type bucket struct {
		sum   float64
		exams int
	}
	buckets := make(map[string]*bucket)
	for _, grade := range grades {
		b, ok := buckets[grade.Subject]
		if !ok {
			b = &bucket{}
			buckets[grade.Subject] = b
		}
		b.sum += grade.Percentage
		b.exams++
	}

	averages := make([]dto.SubjectAverage, 0, len(buckets))
	for subject, b := range buckets {
		averages = append(averages, dto.SubjectAverage{
			Subject:           subject,
			AveragePercentage: b.sum / float64(b.exams),
			Exams:             b.exams,
		})
	}
	sort.Slice(averages, func(i, j int) bool { return averages[i].Subject < averages[j].Subject })
	return averages
}

func subjectPresence(records []*models.AttendanceRecord) []dto.SubjectPresence {
	type bucket struct {
		present int
		classes int
	}
	buckets := make(map[string]*bucket)
	for _, record := range records {
		b, ok := buckets[record.Subject]
		if !ok {
			b = &bucket{}
			buckets[record.Subject] = b
		}
		b.classes++
		if record.Status == models.AttendancePresent {
			b.present++
		}
	}

	presence := make([]dto.SubjectPresence, 0, len(buckets))
	for subject, b := range buckets {
		presence = append(presence, dto.SubjectPresence{
			Subject:           subject,
			PresentPercentage: float64(b.present) / float64(b.classes) * 100,
			Classes:           b.classes,
		})
	}
	sort.Slice(presence, func(i, j int) bool { return presence[i].Subject < presence[j].Subject })
	return presence
}

func (s *reportService) Overview(ctx context.Context, principalID, role string) (*dto.OverviewStats, error) {
	students, err := s.students.Count(ctx)
	if err != nil {
		return nil, err
	}
	teachers, err := s.teachers.Count(ctx)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjects.Count(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.OverviewStats{
		TotalStudents: students,
		TotalTeachers: teachers,
		TotalSubjects: subjects,
	}

	if role == string(models.RoleTeacher) {
		since := time.Now().AddDate(0, 0, -7)
		count, err := s.grades.CountByTeacherSince(ctx, principalID, since)
		if err != nil {
			return nil, err
		}
		stats.GradesThisWeek = &count
	}
	return stats, nil
}
