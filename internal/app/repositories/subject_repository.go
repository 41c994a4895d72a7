package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/dberrors"
	"github.com/demiray/campusms/internal/pkg/logger"
)

// SubjectRepository handles subject database operations. Subjects never
// change after creation, so there is no update path.
type SubjectRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSubjectRepository creates a new SubjectRepository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a new subject
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	sql, args, err := r.sb.Insert("subjects").
		Columns("subject_id", "name", "credits").
		Values(subject.SubjectID, subject.Name, subject.Credits).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build create subject query: %w", err)
	}

	_, err = r.db.Exec(ctx, sql, args...)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "subjects_name_key") {
			logger.Warn().Str("name", subject.Name).Msg("Attempted to create subject with duplicate name")
			return apperrors.ErrSubjectAlreadyExists
		}
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("subjectID", subject.SubjectID).Msg("Error executing create subject query")
		return fmt.Errorf("error creating subject: %w", err)
	}

	logger.Info().Str("subjectID", subject.SubjectID).Str("name", subject.Name).Msg("Subject created")
	return nil
}

// GetAll retrieves all subjects ordered by name
func (r *SubjectRepository) GetAll(ctx context.Context) ([]*models.Subject, error) {
	sql, args, err := r.sb.Select("subject_id", "name", "credits").
		From("subjects").
		OrderBy("name").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list subjects query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		return nil, fmt.Errorf("error listing subjects: %w", err)
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(&subject.SubjectID, &subject.Name, &subject.Credits); err != nil {
			return nil, fmt.Errorf("error scanning subject row: %w", err)
		}
		subjects = append(subjects, &subject)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating subject rows: %w", err)
	}

	return subjects, nil
}

// Count returns the number of subject rows
func (r *SubjectRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM subjects`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting subjects: %w", err)
	}
	return count, nil
}
