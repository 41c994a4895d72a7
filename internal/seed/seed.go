package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/repositories"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/auth"
)

// Bootstrap credentials for the built-in admin account. The password must be
// changed after first login; it is well known by design of the seed.
const (
	adminUsername = "admin"
	adminPassword = "admin123"
	adminEmail    = "admin@school.com"
	adminID       = "TEA001"
)

// defaultSubjects is the initial catalog, created only on an empty table
var defaultSubjects = []models.Subject{
	{Name: "Data Science", Credits: 4},
	{Name: "Computer Science", Credits: 4},
	{Name: "Machine Learning", Credits: 4},
	{Name: "Web Development", Credits: 4},
	{Name: "Database Systems", Credits: 3},
	{Name: "Software Engineering", Credits: 3},
}

// CreateDefaultData seeds the admin account and the initial subject catalog.
// Both checks are idempotent, so running at every startup is safe. Errors
// are collected rather than aborting the remaining seeds.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	teacherRepo := repositories.NewTeacherRepository(dbPool)
	subjectRepo := repositories.NewSubjectRepository(dbPool)
	idGen := repositories.NewIDGenerator(dbPool)

	var finalErr error

	if err := seedAdmin(ctx, teacherRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}
	if err := seedSubjects(ctx, subjectRepo, idGen, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedAdmin(ctx context.Context, teacherRepo *repositories.TeacherRepository, lgr zerolog.Logger) error {
	_, err := teacherRepo.GetByUsername(ctx, adminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrTeacherNotFound) {
		lgr.Error().Err(err).Msg("Error checking for admin account")
		return err
	}

	admin := &models.Teacher{
		TeacherID: adminID,
		Username:  adminUsername,
		Password:  auth.HashPassword(adminPassword),
		FirstName: "System",
		LastName:  "Administrator",
		Email:     adminEmail,
		Role:      models.RoleAdmin,
	}
	if err := teacherRepo.Create(ctx, admin); err != nil {
		// A concurrent instance may have won the race; that's fine.
		if apperrors.Is(err, apperrors.ErrUsernameAlreadyExists, apperrors.ErrEmailAlreadyExists) {
			return nil
		}
		lgr.Error().Err(err).Msg("Error creating admin account")
		return err
	}

	lgr.Info().Str("teacherID", adminID).Msg("Admin account created")
	return nil
}

func seedSubjects(ctx context.Context, subjectRepo *repositories.SubjectRepository, idGen *repositories.IDGenerator, lgr zerolog.Logger) error {
	count, err := subjectRepo.Count(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error counting subjects")
		return err
	}
	if count > 0 {
		return nil
	}

	var finalErr error
	for _, subject := range defaultSubjects {
		subjectID, err := idGen.Next(ctx, repositories.PrefixSubject)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		subject.SubjectID = subjectID
		if err := subjectRepo.Create(ctx, &subject); err != nil && !errors.Is(err, apperrors.ErrSubjectAlreadyExists) {
			lgr.Error().Err(err).Str("name", subject.Name).Msg("Error seeding subject")
			finalErr = errors.Join(finalErr, err)
		}
	}

	if finalErr == nil {
		lgr.Info().Int("subjects", len(defaultSubjects)).Msg("Default subject catalog created")
	}
	return finalErr
}
