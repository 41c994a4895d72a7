package models

import (
	"time"
)

// Grade defines a single ledger entry in the 'grades' table. Entries are
// append-only: there is no update or delete path. Subject is denormalized by
// name, not a foreign key.
type Grade struct {
	GradeID       string   `json:"gradeId" db:"grade_id" example:"GRA001"`
	StudentID     string   `json:"studentId" db:"student_id" example:"STU001"`
	Subject       string   `json:"subject" db:"subject" example:"Machine Learning"`
	ExamType      ExamType `json:"examType" db:"exam_type" example:"Mid-term"`
	MarksObtained float64  `json:"marksObtained" db:"marks_obtained" example:"45"`
	TotalMarks    float64  `json:"totalMarks" db:"total_marks" example:"50"`
	Percentage    float64  `json:"percentage" db:"percentage" example:"90"`
	LetterGrade   string   `json:"grade" db:"grade" example:"A+"`
	Date          time.Time `json:"date" db:"date"`
	TeacherID     string   `json:"teacherId" db:"teacher_id" example:"TEA002"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
}

// GradeWithStudent is a grade row joined with the student's name, used for a
// teacher's recent-recordings listing.
type GradeWithStudent struct {
	Grade
	StudentFirstName string `json:"studentFirstName" db:"first_name"`
	StudentLastName  string `json:"studentLastName" db:"last_name"`
}
