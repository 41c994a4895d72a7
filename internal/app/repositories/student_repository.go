package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/dberrors"
	"github.com/demiray/campusms/internal/pkg/logger"
)

var studentColumns = []string{
	"student_id", "first_name", "last_name", "email", "phone", "date_of_birth",
	"gender", "course", "year", "semester", "address", "emergency_contact",
	"enrollment_date", "password", "status", "created_at",
}

// StudentRepository handles student database operations
type StudentRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new student
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	sql, args, err := r.sb.Insert("students").
		Columns("student_id", "first_name", "last_name", "email", "phone", "date_of_birth",
			"gender", "course", "year", "semester", "address", "emergency_contact",
			"enrollment_date", "password", "status").
		Values(student.StudentID, student.FirstName, student.LastName, student.Email, student.Phone,
			student.DateOfBirth, student.Gender, student.Course, student.Year, student.Semester,
			student.Address, student.EmergencyContact, student.EnrollmentDate, student.Password, student.Status).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create student query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			logger.Warn().Str("email", student.Email).Msg("Attempted to create student with duplicate email")
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("studentID", student.StudentID).Msg("Error executing create student query")
		return fmt.Errorf("error creating student: %w", err)
	}

	logger.Info().Str("studentID", student.StudentID).Msg("Student created")
	return nil
}

// GetByID retrieves a student by student ID
func (r *StudentRepository) GetByID(ctx context.Context, studentID string) (*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		Where(squirrel.Eq{"student_id": studentID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	var student models.Student
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&student.StudentID, &student.FirstName, &student.LastName, &student.Email, &student.Phone,
		&student.DateOfBirth, &student.Gender, &student.Course, &student.Year, &student.Semester,
		&student.Address, &student.EmergencyContact, &student.EnrollmentDate, &student.Password,
		&student.Status, &student.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error scanning student row")
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// GetAll retrieves all students ordered by name
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	sql, args, err := r.sb.Select(studentColumns...).
		From("students").
		OrderBy("first_name", "last_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list students query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.StudentID, &student.FirstName, &student.LastName, &student.Email, &student.Phone,
			&student.DateOfBirth, &student.Gender, &student.Course, &student.Year, &student.Semester,
			&student.Address, &student.EmergencyContact, &student.EnrollmentDate, &student.Password,
			&student.Status, &student.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, &student)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}

// UpdatePassword replaces a student's stored password hash
func (r *StudentRepository) UpdatePassword(ctx context.Context, studentID, passwordHash string) error {
	sql, args, err := r.sb.Update("students").
		Set("password", passwordHash).
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error updating student password")
		return fmt.Errorf("error updating student password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Str("studentID", studentID).Msg("Student password updated")
	return nil
}

// Delete removes a student. Dependent grade and attendance rows go with it
// via ON DELETE CASCADE.
func (r *StudentRepository) Delete(ctx context.Context, studentID string) error {
	sql, args, err := r.sb.Delete("students").
		Where(squirrel.Eq{"student_id": studentID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete student query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("studentID", studentID).Msg("Error deleting student")
		return fmt.Errorf("error deleting student: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	logger.Info().Str("studentID", studentID).Msg("Student deleted")
	return nil
}

// Count returns the number of student rows
func (r *StudentRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return count, nil
}
