package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/db"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/dberrors"
	"github.com/demiray/campusms/internal/pkg/logger"
)

var attendanceColumns = []string{
	"attendance_id", "student_id", "date", "subject", "status", "teacher_id", "created_at",
}

// AttendanceRepository handles attendance register database operations
type AttendanceRepository struct {
	db    *db.PostgresDB
	idGen *IDGenerator
	sb    squirrel.StatementBuilderType
}

// NewAttendanceRepository creates a new AttendanceRepository
func NewAttendanceRepository(database *db.PostgresDB, idGen *IDGenerator) *AttendanceRepository {
	return &AttendanceRepository{
		db:    database,
		idGen: idGen,
		sb:    squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ReplaceForDate atomically replaces the register for a day/subject: all
// existing rows for (date, subject) are deleted and one fresh row per record
// is inserted, IDs included, inside a single transaction. Records absent
// from the new set are gone afterwards — replace, not merge. A concurrent
// submission for the same day/subject trips the unique key on
// (student_id, date, subject) and the whole transaction rolls back.
func (r *AttendanceRepository) ReplaceForDate(ctx context.Context, date time.Time, subject string, records []*models.AttendanceRecord) error {
	err := r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		delSQL, delArgs, err := r.sb.Delete("attendance").
			Where(squirrel.Eq{"date": date, "subject": subject}).
			ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete attendance query: %w", err)
		}

		if _, err := tx.Exec(ctx, delSQL, delArgs...); err != nil {
			return fmt.Errorf("error clearing attendance register: %w", err)
		}

		for _, record := range records {
			record.AttendanceID, err = r.idGen.NextTx(ctx, tx, PrefixAttendance)
			if err != nil {
				return err
			}
			record.Date = date
			record.Subject = subject

			insSQL, insArgs, err := r.sb.Insert("attendance").
				Columns("attendance_id", "student_id", "date", "subject", "status", "teacher_id").
				Values(record.AttendanceID, record.StudentID, record.Date, record.Subject, record.Status, record.TeacherID).
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build insert attendance query: %w", err)
			}

			if _, err := tx.Exec(ctx, insSQL, insArgs...); err != nil {
				if dberrors.IsDuplicateConstraintError(err, "attendance_student_date_subject_key") {
					return apperrors.ErrAttendanceConflict
				}
				return fmt.Errorf("error inserting attendance record: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		logger.Error().Err(err).Str("subject", subject).Time("date", date).Msg("Error replacing attendance register")
		return err
	}

	logger.Info().Str("subject", subject).Time("date", date).Int("records", len(records)).Msg("Attendance register saved")
	return nil
}

// ListByStudent retrieves a student's attendance records, newest day first
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID string) ([]*models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(attendanceColumns...).
		From("attendance").
		Where(squirrel.Eq{"student_id": studentID}).
		OrderBy("date DESC", "subject").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list attendance query: %w", err)
	}

	return r.scanRows(ctx, sql, args)
}

// ListForDate retrieves the existing register for a day/subject, used to
// pre-fill the marking form.
func (r *AttendanceRepository) ListForDate(ctx context.Context, date time.Time, subject string) ([]*models.AttendanceRecord, error) {
	sql, args, err := r.sb.Select(attendanceColumns...).
		From("attendance").
		Where(squirrel.Eq{"date": date, "subject": subject}).
		OrderBy("student_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build register query: %w", err)
	}

	return r.scanRows(ctx, sql, args)
}

func (r *AttendanceRepository) scanRows(ctx context.Context, sql string, args []interface{}) ([]*models.AttendanceRecord, error) {
	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		if dberrors.IsConnectionError(err) {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrConnectionFailed, err)
		}
		return nil, fmt.Errorf("error listing attendance: %w", err)
	}
	defer rows.Close()

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.AttendanceID, &record.StudentID, &record.Date, &record.Subject,
			&record.Status, &record.TeacherID, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning attendance row: %w", err)
		}
		records = append(records, &record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating attendance rows: %w", err)
	}

	return records, nil
}
