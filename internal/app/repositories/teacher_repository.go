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

var teacherColumns = []string{"teacher_id", "username", "password", "first_name", "last_name", "email", "role", "created_at"}

// TeacherRepository handles teacher database operations
type TeacherRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewTeacherRepository creates a new TeacherRepository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new teacher
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	sql, args, err := r.sb.Insert("teachers").
		Columns("teacher_id", "username", "password", "first_name", "last_name", "email", "role").
		Values(teacher.TeacherID, teacher.Username, teacher.Password, teacher.FirstName, teacher.LastName, teacher.Email, teacher.Role).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create teacher query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "teachers_username_key") {
			logger.Warn().Str("username", teacher.Username).Msg("Attempted to create teacher with duplicate username")
			return apperrors.ErrUsernameAlreadyExists
		}
		if dberrors.IsDuplicateConstraintError(err, "teachers_email_key") {
			logger.Warn().Str("email", teacher.Email).Msg("Attempted to create teacher with duplicate email")
			return apperrors.ErrEmailAlreadyExists
		}
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("teacherID", teacher.TeacherID).Msg("Error executing create teacher query")
		return fmt.Errorf("error creating teacher: %w", err)
	}

	logger.Info().Str("teacherID", teacher.TeacherID).Str("username", teacher.Username).Msg("Teacher created")
	return nil
}

// GetByUsername retrieves a teacher by username
func (r *TeacherRepository) GetByUsername(ctx context.Context, username string) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"username": username}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	return r.scanOne(ctx, sql, args)
}

// GetByID retrieves a teacher by teacher ID
func (r *TeacherRepository) GetByID(ctx context.Context, teacherID string) (*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	return r.scanOne(ctx, sql, args)
}

func (r *TeacherRepository) scanOne(ctx context.Context, sql string, args []interface{}) (*models.Teacher, error) {
	var teacher models.Teacher
	err := r.db.QueryRow(ctx, sql, args...).Scan(
		&teacher.TeacherID, &teacher.Username, &teacher.Password, &teacher.FirstName,
		&teacher.LastName, &teacher.Email, &teacher.Role, &teacher.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		if dberrors.IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}
	return &teacher, nil
}

// GetAll retrieves all teachers ordered by first name
func (r *TeacherRepository) GetAll(ctx context.Context) ([]*models.Teacher, error) {
	sql, args, err := r.sb.Select(teacherColumns...).
		From("teachers").
		OrderBy("first_name", "last_name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list teachers query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		var teacher models.Teacher
		if err := rows.Scan(
			&teacher.TeacherID, &teacher.Username, &teacher.Password, &teacher.FirstName,
			&teacher.LastName, &teacher.Email, &teacher.Role, &teacher.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning teacher row: %w", err)
		}
		teachers = append(teachers, &teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating teacher rows: %w", err)
	}

	return teachers, nil
}

// UpdatePassword replaces a teacher's stored password hash
func (r *TeacherRepository) UpdatePassword(ctx context.Context, teacherID, passwordHash string) error {
	sql, args, err := r.sb.Update("teachers").
		Set("password", passwordHash).
		Where(squirrel.Eq{"teacher_id": teacherID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update password query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("teacherID", teacherID).Msg("Error updating teacher password")
		return fmt.Errorf("error updating teacher password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	logger.Info().Str("teacherID", teacherID).Msg("Teacher password updated")
	return nil
}

// Delete removes a teacher. Dependent grade and attendance rows go with it
// via ON DELETE CASCADE.
func (r *TeacherRepository) Delete(ctx context.Context, teacherID string) error {
	sql, args, err := r.sb.Delete("teachers").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete teacher query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("teacherID", teacherID).Msg("Error deleting teacher")
		return fmt.Errorf("error deleting teacher: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	logger.Info().Str("teacherID", teacherID).Msg("Teacher deleted")
	return nil
}

// Count returns the number of teacher rows
func (r *TeacherRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM teachers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting teachers: %w", err)
	}
	return count, nil
}
