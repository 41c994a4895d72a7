package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/dberrors"
	"github.com/demiray/campusms/internal/pkg/logger"
)

var gradeColumns = []string{
	"grade_id", "student_id", "subject", "exam_type", "marks_obtained",
	"total_marks", "percentage", "grade", "date", "teacher_id", "created_at",
}

// GradeRepository handles grade ledger database operations. The ledger is
// append-only: rows are inserted and read, never updated or deleted directly
// (cascade deletes from students/teachers are the only removal path).
type GradeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewGradeRepository creates a new GradeRepository
func NewGradeRepository(db *pgxpool.Pool) *GradeRepository {
	return &GradeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create appends a grade to the ledger
func (r *GradeRepository) Create(ctx context.Context, grade *models.Grade) error {
	sql, args, err := r.sb.Insert("grades").
		Columns("grade_id", "student_id", "subject", "exam_type", "marks_obtained",
			"total_marks", "percentage", "grade", "date", "teacher_id").
		Values(grade.GradeID, grade.StudentID, grade.Subject, grade.ExamType, grade.MarksObtained,
			grade.TotalMarks, grade.Percentage, grade.LetterGrade, grade.Date, grade.TeacherID).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create grade query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("gradeID", grade.GradeID).Str("studentID", grade.StudentID).Msg("Error executing create grade query")
		return fmt.Errorf("error recording grade: %w", err)
	}

	logger.Info().Str("gradeID", grade.GradeID).Str("studentID", grade.StudentID).Str("grade", grade.LetterGrade).Msg("Grade recorded")
	return nil
}

// ListByStudent retrieves a student's grades, newest exam date first
func (r *GradeRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.Grade, error) {
	sql, args, err := r.sb.Select(gradeColumns...).
		From("grades").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date DESC", "created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		return nil, fmt.Errorf("error listing grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.Grade
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.GradeID, &grade.StudentID, &grade.Subject, &grade.ExamType, &grade.MarksObtained,
			&grade.TotalMarks, &grade.Percentage, &grade.LetterGrade, &grade.Date, &grade.TeacherID,
			&grade.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning grade row: %w", err)
		}
		grades = append(grades, &grade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return grades, nil
}

// ListRecentByTeacher retrieves a teacher's most recent recordings with the
// student's name joined in.
func (r *GradeRepository) ListRecentByTeacher(ctx context.Context, teacherID string, limit int) ([]*models.GradeWithStudent, error) {
	sql, args, err := r.sb.Select(
		"g.grade_id", "g.student_id", "g.subject", "g.exam_type", "g.marks_obtained",
		"g.total_marks", "g.percentage", "g.grade", "g.date", "g.teacher_id", "g.created_at",
		"s.first_name", "s.last_name").
		From("grades g").
		Join("students s ON g.student_id = s.student_id").
		Where(squirrel.Eq{"g.teacher_id": teacherID}).
		OrderBy("g.date DESC", "g.created_at DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build recent grades query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		return nil, fmt.Errorf("error listing recent grades: %w", err)
	}
	defer rows.Close()

	var grades []*models.GradeWithStudent
	for rows.Next() {
		var grade models.GradeWithStudent
		if err := rows.Scan(
			&grade.GradeID, &grade.StudentID, &grade.Subject, &grade.ExamType, &grade.MarksObtained,
			&grade.TotalMarks, &grade.Percentage, &grade.LetterGrade, &grade.Date, &grade.TeacherID,
			&grade.CreatedAt, &grade.StudentFirstName, &grade.StudentLastName); err != nil {
			return nil, fmt.Errorf("error scanning recent grade row: %w", err)
		}
		grades = append(grades, &grade)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recent grade rows: %w", err)
	}

	return grades, nil
}

// CountByTeacherSince counts grades a teacher recorded on or after a date
func (r *GradeRepository) CountByTeacherSince(ctx context.Context, teacherID string, since time.Time) (int, error) {
	sql, args, err := r.sb.Select("COUNT(*)").
		From("grades").
		Where(squirrel.Eq{"teacher_id": teacherID}).
		Where(squirrel.GtOrEq{"date": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build grade count query: %w", err)
	}

	var count int
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting teacher grades: %w", err)
	}
	return count, nil
}
