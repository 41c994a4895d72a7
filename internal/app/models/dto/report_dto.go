package dto

// StudentSummary is the per-student academic overview. Percentage fields are
// nil (rendered as null, displayed as N/A) when there is nothing to average;
// zero records never report 0%.
type StudentSummary struct {
	AverageGradePercentage *float64 `json:"averageGradePercentage" example:"82.5"`
	TotalExams             int      `json:"totalExams" example:"7"`
	TotalClasses           int      `json:"totalClasses" example:"40"`
	ClassesPresent         int      `json:"classesPresent" example:"36"`
	AttendancePercentage   *float64 `json:"attendancePercentage" example:"90"`
}

// SubjectAverage is a per-subject mean grade percentage
type SubjectAverage struct {
	Subject           string  `json:"subject" example:"Database Systems"`
	AveragePercentage float64 `json:"averagePercentage" example:"78.3"`
	Exams             int     `json:"exams" example:"3"`
}

// SubjectPresence is a per-subject attendance ratio
type SubjectPresence struct {
	Subject           string  `json:"subject" example:"Database Systems"`
	PresentPercentage float64 `json:"presentPercentage" example:"87.5"`
	Classes           int     `json:"classes" example:"16"`
}

// StudentReport is the full per-student breakdown, recomputed on every call.
type StudentReport struct {
	StudentID         string            `json:"studentId" example:"STU001"`
	StudentName       string            `json:"studentName" example:"Ali Veli"`
	Summary           StudentSummary    `json:"summary"`
	SubjectAverages   []SubjectAverage  `json:"subjectAverages"`
	SubjectAttendance []SubjectPresence `json:"subjectAttendance"`
}

// OverviewStats is the dashboard head-count overview. GradesThisWeek is set
// only for teacher principals.
type OverviewStats struct {
	TotalStudents  int  `json:"totalStudents" example:"120"`
	TotalTeachers  int  `json:"totalTeachers" example:"8"`
	TotalSubjects  int  `json:"totalSubjects" example:"6"`
	GradesThisWeek *int `json:"gradesThisWeek,omitempty" example:"14"`
}
