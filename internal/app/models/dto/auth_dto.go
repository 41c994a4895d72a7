package dto

// LoginRequest carries credentials for either login form. Students sign in
// with their student ID, staff (teachers and admins) with their username.
type LoginRequest struct {
	ID       string `json:"id" binding:"required" example:"STU001"`
	Password string `json:"password" binding:"required" example:"secret"`
	Role     string `json:"role" binding:"required,oneof=student staff" example:"student"`
}

// PrincipalInfo describes the authenticated actor. The stored password hash
// is stripped before the record reaches this shape.
type PrincipalInfo struct {
	ID    string `json:"id" example:"STU001"`
	Name  string `json:"name" example:"Ali Veli"`
	Email string `json:"email" example:"ali@school.com"`
	Role  string `json:"role" example:"student" enums:"student,teacher,admin"`
}

// LoginResponse carries the access token and the resolved principal.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresIn int           `json:"expiresIn" example:"3600"`
	Principal PrincipalInfo `json:"principal"`
}
