package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/auth"
)

func newTeacherFixture(t *testing.T) (TeacherService, *fakeTeacherStore) {
	t.Helper()
	teachers := newFakeTeacherStore()
	teachers.teachers["TEA001"] = &models.Teacher{
		TeacherID: "TEA001",
		Username:  "admin",
		Email:     "admin@school.com",
		Role:      models.RoleAdmin,
	}
	ids := newFakeIDSource()
	ids.counters["TEA"] = 1 // the admin row already holds TEA001
	return NewTeacherService(teachers, ids), teachers
}

func TestCreateTeacherGeneratedPassword(t *testing.T) {
	service, teachers := newTeacherFixture(t)

	credentials, err := service.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Username:       "jdoe",
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jdoe@school.com",
		PasswordPolicy: dto.PasswordPolicyGenerate,
	})
	require.NoError(t, err)

	assert.Equal(t, "TEA002", credentials.TeacherID)
	assert.NotEmpty(t, credentials.Password)

	stored := teachers.teachers["TEA002"]
	require.NotNil(t, stored)
	assert.NotEqual(t, credentials.Password, stored.Password, "plaintext must not be stored")
	assert.True(t, auth.CheckPassword(stored.Password, credentials.Password))
	assert.Equal(t, models.RoleTeacher, stored.Role)
}

func TestCreateTeacherManualPassword(t *testing.T) {
	service, _ := newTeacherFixture(t)

	credentials, err := service.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Username:        "jdoe",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jdoe@school.com",
		PasswordPolicy:  dto.PasswordPolicyManual,
		Password:        "chosen-password",
		ConfirmPassword: "chosen-password",
	})
	require.NoError(t, err)
	assert.Empty(t, credentials.Password, "manual password is never echoed back")
}

func TestCreateTeacherValidation(t *testing.T) {
	service, _ := newTeacherFixture(t)
	ctx := context.Background()

	_, err := service.CreateTeacher(ctx, &dto.CreateTeacherRequest{
		Username:       "jdoe",
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "not-an-email",
		PasswordPolicy: dto.PasswordPolicyGenerate,
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	_, err = service.CreateTeacher(ctx, &dto.CreateTeacherRequest{
		Username:        "jdoe",
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jdoe@school.com",
		PasswordPolicy:  dto.PasswordPolicyManual,
		Password:        "one",
		ConfirmPassword: "other",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateTeacherDuplicateUsername(t *testing.T) {
	service, _ := newTeacherFixture(t)

	_, err := service.CreateTeacher(context.Background(), &dto.CreateTeacherRequest{
		Username:       "admin",
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jdoe@school.com",
		PasswordPolicy: dto.PasswordPolicyGenerate,
	})
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyExists)
}

func TestListTeachersExcludesAdmin(t *testing.T) {
	service, teachers := newTeacherFixture(t)
	teachers.teachers["TEA002"] = &models.Teacher{
		TeacherID: "TEA002",
		Username:  "jdoe",
		Email:     "jdoe@school.com",
		Role:      models.RoleTeacher,
	}

	listed, err := service.ListTeachers(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "TEA002", listed[0].TeacherID)
}

func TestDeleteTeacherRefusesAdmin(t *testing.T) {
	service, teachers := newTeacherFixture(t)

	err := service.DeleteTeacher(context.Background(), "TEA001")
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Contains(t, teachers.teachers, "TEA001")
}

func TestResetTeacherPassword(t *testing.T) {
	service, teachers := newTeacherFixture(t)
	teachers.teachers["TEA002"] = &models.Teacher{
		TeacherID: "TEA002",
		Username:  "jdoe",
		Email:     "jdoe@school.com",
		Role:      models.RoleTeacher,
	}
	ctx := context.Background()

	// Empty body generates a password and surfaces it once.
	response, err := service.ResetPassword(ctx, "TEA002", &dto.ResetPasswordRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Password)
	assert.True(t, auth.CheckPassword(teachers.teachers["TEA002"].Password, response.Password))

	// A supplied password is used as-is and not echoed.
	response, err = service.ResetPassword(ctx, "TEA002", &dto.ResetPasswordRequest{Password: "fresh-password"})
	require.NoError(t, err)
	assert.Empty(t, response.Password)
	assert.True(t, auth.CheckPassword(teachers.teachers["TEA002"].Password, "fresh-password"))

	_, err = service.ResetPassword(ctx, "TEA999", &dto.ResetPasswordRequest{})
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}
