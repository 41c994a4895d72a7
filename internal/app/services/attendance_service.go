package services

import (
	"context"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/helpers"
)

// AttendancePercentage computes the share of records marked Present. It
// returns nil when there are no records at all: a student with no history
// has an undefined percentage, not a zero one.
func AttendancePercentage(records []*models.AttendanceRecord) *float64 {
	if len(records) == 0 {
		return nil
	}
	present := 0
	for _, record := range records {
		if record.Status == models.AttendancePresent {
			present++
		}
	}
	percentage := float64(present) / float64(len(records)) * 100
	return &percentage
}

// AttendanceService handles the attendance register
type AttendanceService interface {
	// MarkAttendance saves one register submission. Submitting again for
	// the same day/subject replaces the previous register entirely.
	MarkAttendance(ctx context.Context, teacherID string, request *dto.MarkAttendanceRequest) error
	// GetRegister returns the saved register for a day/subject, used to
	// pre-fill the marking form. An unmarked day yields empty entries.
	GetRegister(ctx context.Context, date, subject string) (*dto.AttendanceRegister, error)
	// ListStudentAttendance returns a student's records, newest day first.
	ListStudentAttendance(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error)
}

type attendanceService struct {
	attendance AttendanceStore
	students   StudentStore
}

// NewAttendanceService creates a new AttendanceService
func NewAttendanceService(attendance AttendanceStore, students StudentStore) AttendanceService {
	return &attendanceService{
		attendance: attendance,
		students:   students,
	}
}

func (s *attendanceService) MarkAttendance(ctx context.Context, teacherID string, request *dto.MarkAttendanceRequest) error {
	date, err := helpers.ParseDate(request.Date)
	if err != nil {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "date must use the YYYY-MM-DD layout")
	}
	if len(request.Entries) == 0 {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "entries must contain at least one student")
	}

	records := make([]*models.AttendanceRecord, 0, len(request.Entries))
	for studentID, status := range request.Entries {
		if !models.AttendanceStatus(status).Valid() {
			return apperrors.NewCustomError(apperrors.ErrValidationFailed, "status must be Present or Absent")
		}
		records = append(records, &models.AttendanceRecord{
			StudentID: studentID,
			Status:    models.AttendanceStatus(status),
			TeacherID: teacherID,
		})
	}

	return s.attendance.ReplaceForDate(ctx, date, request.Subject, records)
}

func (s *attendanceService) GetRegister(ctx context.Context, date, subject string) (*dto.AttendanceRegister, error) {
	day, err := helpers.ParseDate(date)
	if err != nil {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "date must use the YYYY-MM-DD layout")
	}

	records, err := s.attendance.ListForDate(ctx, day, subject)
	if err != nil {
		return nil, err
	}

	register := &dto.AttendanceRegister{
		Date:    helpers.FormatDate(day),
		Subject: subject,
		Entries: make(map[string]string, len(records)),
	}
	for _, record := range records {
		register.Entries[record.StudentID] = string(record.Status)
	}
	return register, nil
}

func (s *attendanceService) ListStudentAttendance(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, err
	}
	return s.attendance.ListByStudent(ctx, studentID)
}
