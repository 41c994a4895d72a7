package dto

// PasswordPolicy selects how a new account's password is set
const (
	PasswordPolicyGenerate = "generate"
	PasswordPolicyManual   = "manual"
)

// CreateTeacherRequest carries the admin form for adding a teacher
type CreateTeacherRequest struct {
	Username        string `json:"username" binding:"required" example:"jdoe"`
	FirstName       string `json:"firstName" binding:"required" example:"Jane"`
	LastName        string `json:"lastName" binding:"required" example:"Doe"`
	Email           string `json:"email" binding:"required,email" example:"jdoe@school.com"`
	PasswordPolicy  string `json:"passwordPolicy" binding:"required,oneof=generate manual" example:"generate"`
	Password        string `json:"password,omitempty"`
	ConfirmPassword string `json:"confirmPassword,omitempty"`
}

// TeacherCredentials is returned once after creating a teacher. Password is
// present only when it was auto-generated; it is never stored in plaintext.
type TeacherCredentials struct {
	TeacherID string `json:"teacherId" example:"TEA002"`
	Username  string `json:"username" example:"jdoe"`
	Password  string `json:"password,omitempty"`
}

// ResetPasswordRequest sets a new password, or generates one when empty
type ResetPasswordRequest struct {
	Password string `json:"password,omitempty"`
}

// ResetPasswordResponse surfaces a generated password exactly once
type ResetPasswordResponse struct {
	Password string `json:"password,omitempty"`
}
