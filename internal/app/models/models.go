package models

// Role defines the role stored on a teacher row. Students do not carry a
// role column; their role is fixed at authentication time.
type Role string

const (
	RoleTeacher Role = "teacher"
	RoleAdmin   Role = "admin"
	RoleStudent Role = "student"
)

// Valid reports whether the role is one a teacher row may carry.
func (r Role) Valid() bool {
	return r == RoleTeacher || r == RoleAdmin
}

// Gender values accepted on student records
type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// StudentStatus values for the student lifecycle
type StudentStatus string

const (
	StatusActive    StudentStatus = "Active"
	StatusInactive  StudentStatus = "Inactive"
	StatusGraduated StudentStatus = "Graduated"
)

func (s StudentStatus) Valid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusGraduated
}

// ExamType is the closed set of assessment kinds a grade can record
type ExamType string

const (
	ExamMidTerm    ExamType = "Mid-term"
	ExamFinal      ExamType = "Final"
	ExamQuiz       ExamType = "Quiz"
	ExamAssignment ExamType = "Assignment"
	ExamProject    ExamType = "Project"
)

func (e ExamType) Valid() bool {
	switch e {
	case ExamMidTerm, ExamFinal, ExamQuiz, ExamAssignment, ExamProject:
		return true
	}
	return false
}

// AttendanceStatus marks a student present or absent for a day/subject
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "Present"
	AttendanceAbsent  AttendanceStatus = "Absent"
)

func (a AttendanceStatus) Valid() bool {
	return a == AttendancePresent || a == AttendanceAbsent
}
