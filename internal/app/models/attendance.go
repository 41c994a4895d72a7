package models

import (
	"time"
)

// AttendanceRecord defines a row in the 'attendance' table. At most one
// record exists per (student, date, subject); resubmitting a register for a
// day replaces all records for that day/subject.
type AttendanceRecord struct {
	AttendanceID string           `json:"attendanceId" db:"attendance_id" example:"ATT001"`
	StudentID    string           `json:"studentId" db:"student_id" example:"STU001"`
	Date         time.Time        `json:"date" db:"date"`
	Subject      string           `json:"subject" db:"subject" example:"Web Development"`
	Status       AttendanceStatus `json:"status" db:"status" example:"Present"`
	TeacherID    string           `json:"teacherId" db:"teacher_id" example:"TEA002"`
	CreatedAt    time.Time        `json:"createdAt" db:"created_at"`
}
