package dto

// RecordGradeRequest carries a single exam result. The recording teacher is
// taken from the authenticated principal, never from the body.
type RecordGradeRequest struct {
	StudentID     string  `json:"studentId" binding:"required" example:"STU001"`
	Subject       string  `json:"subject" binding:"required" example:"Machine Learning"`
	ExamType      string  `json:"examType" binding:"required" example:"Mid-term"`
	MarksObtained float64 `json:"marksObtained" binding:"min=0" example:"45"`
	TotalMarks    float64 `json:"totalMarks" binding:"required" example:"50"`
	Date          string  `json:"date" binding:"required" example:"2025-05-20"`
}
