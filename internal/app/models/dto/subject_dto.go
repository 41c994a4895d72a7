package dto

// CreateSubjectRequest carries the admin form for adding a subject
type CreateSubjectRequest struct {
	Name    string `json:"name" binding:"required" example:"Operating Systems"`
	Credits int    `json:"credits" binding:"required,min=1,max=10" example:"4"`
}
