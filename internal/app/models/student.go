package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	StudentID        string        `json:"studentId" db:"student_id" example:"STU001"`
	FirstName        string        `json:"firstName" db:"first_name" example:"Ali"`
	LastName         string        `json:"lastName" db:"last_name" example:"Veli"`
	Email            string        `json:"email" db:"email" example:"ali@school.com"`
	Phone            string        `json:"phone" db:"phone" example:"+90 555 000 0000"`
	DateOfBirth      time.Time     `json:"dateOfBirth" db:"date_of_birth"`
	Gender           Gender        `json:"gender" db:"gender" example:"Male"`
	Course           string        `json:"course" db:"course" example:"Computer Science"`
	Year             string        `json:"year" db:"year" example:"2nd Year"`
	Semester         string        `json:"semester" db:"semester" example:"3rd Semester"`
	Address          *string       `json:"address,omitempty" db:"address"`
	EmergencyContact *string       `json:"emergencyContact,omitempty" db:"emergency_contact"`
	EnrollmentDate   time.Time     `json:"enrollmentDate" db:"enrollment_date"`
	Password         string        `json:"-" db:"password"` // SHA-256 hex digest, never serialized
	Status           StudentStatus `json:"status" db:"status" example:"Active"`
	CreatedAt        time.Time     `json:"createdAt" db:"created_at"`
}

// FullName returns the display name used in responses and token claims.
func (s *Student) FullName() string {
	return s.FirstName + " " + s.LastName
}
