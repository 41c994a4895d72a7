package models

// Subject defines the subject model based on the 'subjects' table. Subjects
// are immutable after creation.
type Subject struct {
	SubjectID string `json:"subjectId" db:"subject_id" example:"SUB001"`
	Name      string `json:"name" db:"name" example:"Database Systems"`
	Credits   int    `json:"credits" db:"credits" example:"3"`
}
