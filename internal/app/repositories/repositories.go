package repositories

import (
	"github.com/demiray/campusms/internal/db"
)

// Repositories holds all repository instances
type Repositories struct {
	IDGenerator *IDGenerator
	Teacher     *TeacherRepository
	Student     *StudentRepository
	Subject     *SubjectRepository
	Grade       *GradeRepository
	Attendance  *AttendanceRepository
}

// NewRepositories creates all repositories sharing one connection pool
func NewRepositories(database *db.PostgresDB) *Repositories {
	idGen := NewIDGenerator(database.Pool)
	return &Repositories{
		IDGenerator: idGen,
		Teacher:     NewTeacherRepository(database.Pool),
		Student:     NewStudentRepository(database.Pool),
		Subject:     NewSubjectRepository(database.Pool),
		Grade:       NewGradeRepository(database.Pool),
		Attendance:  NewAttendanceRepository(database, idGen),
	}
}
