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

func newAuthFixture(t *testing.T) (AuthService, *auth.JWTService) {
	t.Helper()

	teachers := newFakeTeacherStore()
	teachers.teachers["TEA001"] = &models.Teacher{
		TeacherID: "TEA001",
		Username:  "admin",
		Password:  auth.HashPassword("admin123"),
		FirstName: "System",
		LastName:  "Administrator",
		Email:     "admin@school.com",
		Role:      models.RoleAdmin,
	}
	teachers.teachers["TEA002"] = &models.Teacher{
		TeacherID: "TEA002",
		Username:  "jdoe",
		Password:  auth.HashPassword("teacherpw"),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jdoe@school.com",
		Role:      models.RoleTeacher,
	}

	students := newFakeStudentStore()
	students.students["STU001"] = &models.Student{
		StudentID: "STU001",
		FirstName: "Ali",
		LastName:  "Veli",
		Email:     "ali@school.com",
		Password:  auth.HashPassword("studentpw"),
	}

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "campusms-test",
	})
	return NewAuthService(teachers, students, jwtService), jwtService
}

func TestStudentLogin(t *testing.T) {
	service, jwtService := newAuthFixture(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		ID:       "STU001",
		Password: "studentpw",
		Role:     "student",
	})
	require.NoError(t, err)

	assert.Equal(t, "STU001", response.Principal.ID)
	assert.Equal(t, "student", response.Principal.Role)
	assert.Equal(t, "Ali Veli", response.Principal.Name)
	assert.Equal(t, 3600, response.ExpiresIn)

	claims, err := jwtService.ValidateToken(response.Token)
	require.NoError(t, err)
	assert.Equal(t, "STU001", claims.PrincipalID)
	assert.Equal(t, "student", claims.Role)
}

func TestStaffLogin(t *testing.T) {
	service, _ := newAuthFixture(t)

	response, err := service.Login(context.Background(), &dto.LoginRequest{
		ID:       "admin",
		Password: "admin123",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "TEA001", response.Principal.ID)
	assert.Equal(t, "admin", response.Principal.Role)

	response, err = service.Login(context.Background(), &dto.LoginRequest{
		ID:       "jdoe",
		Password: "teacherpw",
		Role:     "staff",
	})
	require.NoError(t, err)
	assert.Equal(t, "teacher", response.Principal.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	// Unknown ID and wrong password must be indistinguishable.
	_, err := service.Login(ctx, &dto.LoginRequest{ID: "STU999", Password: "whatever", Role: "student"})
	unknownErr := err
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = service.Login(ctx, &dto.LoginRequest{ID: "STU001", Password: "wrong", Role: "student"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), err.Error())

	_, err = service.Login(ctx, &dto.LoginRequest{ID: "nobody", Password: "whatever", Role: "staff"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginRoleMismatch(t *testing.T) {
	service, _ := newAuthFixture(t)

	// A valid student ID on the staff form must not log in.
	_, err := service.Login(context.Background(), &dto.LoginRequest{
		ID:       "STU001",
		Password: "studentpw",
		Role:     "staff",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestMe(t *testing.T) {
	service, _ := newAuthFixture(t)
	ctx := context.Background()

	principal, err := service.Me(ctx, "STU001", "student")
	require.NoError(t, err)
	assert.Equal(t, "ali@school.com", principal.Email)

	principal, err = service.Me(ctx, "TEA002", "teacher")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", principal.Name)

	_, err = service.Me(ctx, "STU999", "student")
	assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
}
