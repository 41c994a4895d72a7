package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/auth"
)

func validStudentRequest() *dto.CreateStudentRequest {
	return &dto.CreateStudentRequest{
		FirstName:      "Ali",
		LastName:       "Veli",
		Email:          "ali@school.com",
		Phone:          "+90 555 000 0000",
		DateOfBirth:    "2004-09-12",
		Gender:         "Male",
		Course:         "Computer Science",
		Year:           "2nd Year",
		Semester:       "3rd Semester",
		PasswordPolicy: dto.PasswordPolicyGenerate,
	}
}

func newStudentFixture(t *testing.T) (StudentService, *fakeStudentStore) {
	t.Helper()
	students := newFakeStudentStore()
	return NewStudentService(students, newFakeIDSource()), students
}

func TestCreateStudent(t *testing.T) {
	service, students := newStudentFixture(t)

	credentials, err := service.CreateStudent(context.Background(), validStudentRequest())
	require.NoError(t, err)

	assert.Equal(t, "STU001", credentials.StudentID)
	assert.NotEmpty(t, credentials.Password)

	stored := students.students["STU001"]
	require.NotNil(t, stored)
	assert.Equal(t, models.StatusActive, stored.Status)
	assert.True(t, auth.CheckPassword(stored.Password, credentials.Password))
	assert.WithinDuration(t, time.Now(), stored.EnrollmentDate, time.Minute)
	assert.Equal(t, 2004, stored.DateOfBirth.Year())
}

func TestCreateStudentSequentialIDs(t *testing.T) {
	service, _ := newStudentFixture(t)
	ctx := context.Background()

	first, err := service.CreateStudent(ctx, validStudentRequest())
	require.NoError(t, err)

	second := validStudentRequest()
	second.Email = "veli@school.com"
	credentials, err := service.CreateStudent(ctx, second)
	require.NoError(t, err)

	assert.Equal(t, "STU001", first.StudentID)
	assert.Equal(t, "STU002", credentials.StudentID)
}

func TestCreateStudentValidation(t *testing.T) {
	service, _ := newStudentFixture(t)
	ctx := context.Background()

	request := validStudentRequest()
	request.Email = "bad@"
	_, err := service.CreateStudent(ctx, request)
	assert.ErrorIs(t, err, apperrors.ErrInvalidEmail)

	request = validStudentRequest()
	request.Semester = "5th Semester" // belongs to 3rd Year
	_, err = service.CreateStudent(ctx, request)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	request = validStudentRequest()
	request.Year = "5th Year"
	_, err = service.CreateStudent(ctx, request)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)

	request = validStudentRequest()
	request.DateOfBirth = "12/09/2004"
	_, err = service.CreateStudent(ctx, request)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateStudentDuplicateEmail(t *testing.T) {
	service, _ := newStudentFixture(t)
	ctx := context.Background()

	_, err := service.CreateStudent(ctx, validStudentRequest())
	require.NoError(t, err)

	_, err = service.CreateStudent(ctx, validStudentRequest())
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestDeleteStudent(t *testing.T) {
	service, students := newStudentFixture(t)
	ctx := context.Background()

	credentials, err := service.CreateStudent(ctx, validStudentRequest())
	require.NoError(t, err)

	require.NoError(t, service.DeleteStudent(ctx, credentials.StudentID))
	assert.NotContains(t, students.students, credentials.StudentID)

	err = service.DeleteStudent(ctx, "STU999")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}

func TestResetStudentPassword(t *testing.T) {
	service, students := newStudentFixture(t)
	ctx := context.Background()

	credentials, err := service.CreateStudent(ctx, validStudentRequest())
	require.NoError(t, err)

	response, err := service.ResetPassword(ctx, credentials.StudentID, &dto.ResetPasswordRequest{})
	require.NoError(t, err)
	assert.NotEmpty(t, response.Password)
	assert.True(t, auth.CheckPassword(students.students[credentials.StudentID].Password, response.Password))
}
