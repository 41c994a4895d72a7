package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/demiray/campusms/internal/pkg/logger"
)

// ID prefixes for each entity table
const (
	PrefixTeacher    = "TEA"
	PrefixStudent    = "STU"
	PrefixSubject    = "SUB"
	PrefixGrade      = "GRA"
	PrefixAttendance = "ATT"
)

// ErrUnknownPrefix is returned for a prefix without a backing table
var ErrUnknownPrefix = errors.New("unknown ID prefix")

// idSource maps a prefix to the table whose existing rows seed its counter.
type idSource struct {
	table  string
	column string
}

var idSources = map[string]idSource{
	PrefixTeacher:    {table: "teachers", column: "teacher_id"},
	PrefixStudent:    {table: "students", column: "student_id"},
	PrefixSubject:    {table: "subjects", column: "subject_id"},
	PrefixGrade:      {table: "grades", column: "grade_id"},
	PrefixAttendance: {table: "attendance", column: "attendance_id"},
}

// rowQuerier is satisfied by both *pgxpool.Pool and pgx.Tx, so IDs can be
// handed out inside an enclosing transaction.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// IDGenerator hands out prefixed sequential IDs (STU001, STU002, ...).
// Counters live in the id_counters table and are bumped with a single
// conflict-upsert, so two concurrent writers can never receive the same ID.
// The first request for a prefix seeds the counter from the highest existing
// row, so numbering continues across restored data.
type IDGenerator struct {
	db *pgxpool.Pool
}

// NewIDGenerator creates a new IDGenerator
func NewIDGenerator(db *pgxpool.Pool) *IDGenerator {
	return &IDGenerator{db: db}
}

// Next returns the next ID for the prefix.
func (g *IDGenerator) Next(ctx context.Context, prefix string) (string, error) {
	return nextID(ctx, g.db, prefix)
}

// NextTx returns the next ID for the prefix within an open transaction.
func (g *IDGenerator) NextTx(ctx context.Context, tx pgx.Tx, prefix string) (string, error) {
	return nextID(ctx, tx, prefix)
}

func nextID(ctx context.Context, q rowQuerier, prefix string) (string, error) {
	src, ok := idSources[prefix]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPrefix, prefix)
	}

	// Seed value strips the prefix off the highest existing ID; identifiers
	// here come from the fixed idSources table, never from input.
	sql := fmt.Sprintf(`
		INSERT INTO id_counters (prefix, value)
		VALUES ($1, (SELECT COALESCE(MAX(CAST(SUBSTRING(%s FROM %d) AS BIGINT)), 0) + 1 FROM %s))
		ON CONFLICT (prefix) DO UPDATE SET value = id_counters.value + 1
		RETURNING value`,
		src.column, len(prefix)+1, src.table)

	var value int64
	if err := q.QueryRow(ctx, sql, prefix).Scan(&value); err != nil {
		logger.Error().Err(err).Str("prefix", prefix).Msg("Error advancing ID counter")
		return "", fmt.Errorf("error generating ID for prefix %s: %w", prefix, err)
	}

	return FormatID(prefix, value), nil
}

// FormatID renders a prefixed sequential ID. Sequence numbers are padded to
// three digits and keep growing naturally past 999.
func FormatID(prefix string, n int64) string {
	return fmt.Sprintf("%s%03d", prefix, n)
}

// ParseID extracts the sequence number from a prefixed ID.
func ParseID(prefix, id string) (int64, error) {
	if !strings.HasPrefix(id, prefix) {
		return 0, fmt.Errorf("ID %q does not carry prefix %q", id, prefix)
	}
	n, err := strconv.ParseInt(id[len(prefix):], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ID %q has a non-numeric sequence: %w", id, err)
	}
	return n, nil
}
