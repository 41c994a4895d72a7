package dto

// CreateStudentRequest carries the form for enrolling a student. Dates use
// the YYYY-MM-DD layout. Enrollment date defaults to today and status to
// Active.
type CreateStudentRequest struct {
	FirstName        string  `json:"firstName" binding:"required" example:"Ali"`
	LastName         string  `json:"lastName" binding:"required" example:"Veli"`
	Email            string  `json:"email" binding:"required,email" example:"ali@school.com"`
	Phone            string  `json:"phone" binding:"required" example:"+90 555 000 0000"`
	DateOfBirth      string  `json:"dateOfBirth" binding:"required" example:"2004-09-12"`
	Gender           string  `json:"gender" binding:"required,oneof=Male Female Other" example:"Male"`
	Course           string  `json:"course" binding:"required" example:"Computer Science"`
	Year             string  `json:"year" binding:"required" example:"2nd Year"`
	Semester         string  `json:"semester" binding:"required" example:"3rd Semester"`
	Address          *string `json:"address,omitempty"`
	EmergencyContact *string `json:"emergencyContact,omitempty"`
	PasswordPolicy   string  `json:"passwordPolicy" binding:"required,oneof=generate manual" example:"generate"`
	Password         string  `json:"password,omitempty"`
	ConfirmPassword  string  `json:"confirmPassword,omitempty"`
}

// StudentCredentials is returned once after enrolling a student. Password is
// present only when it was auto-generated.
type StudentCredentials struct {
	StudentID string `json:"studentId" example:"STU006"`
	Password  string `json:"password,omitempty"`
}
