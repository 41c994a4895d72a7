package models

import (
	"time"
)

// Teacher defines the teacher model based on the 'teachers' table. The admin
// account is a teacher row with role 'admin'.
type Teacher struct {
	TeacherID string    `json:"teacherId" db:"teacher_id" example:"TEA001"`
	Username  string    `json:"username" db:"username" example:"jdoe"`
	Password  string    `json:"-" db:"password"` // SHA-256 hex digest, never serialized
	FirstName string    `json:"firstName" db:"first_name" example:"Jane"`
	LastName  string    `json:"lastName" db:"last_name" example:"Doe"`
	Email     string    `json:"email" db:"email" example:"jdoe@school.com"`
	Role      Role      `json:"role" db:"role" example:"teacher"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// FullName returns the display name used in responses and token claims.
func (t *Teacher) FullName() string {
	return t.FirstName + " " + t.LastName
}
