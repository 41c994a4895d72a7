package dto

// MarkAttendanceRequest carries one register submission: every student's
// status for a day and subject. Submitting again for the same day/subject
// replaces the previous register entirely; students missing from Entries
// lose their record for that day.
type MarkAttendanceRequest struct {
	Date    string            `json:"date" binding:"required" example:"2025-05-20"`
	Subject string            `json:"subject" binding:"required" example:"Web Development"`
	Entries map[string]string `json:"entries" binding:"required" example:"STU001:Present,STU002:Absent"`
}

// AttendanceRegister is the existing register for a day/subject, used to
// pre-fill the marking form.
type AttendanceRegister struct {
	Date    string            `json:"date" example:"2025-05-20"`
	Subject string            `json:"subject" example:"Web Development"`
	Entries map[string]string `json:"entries"`
}
