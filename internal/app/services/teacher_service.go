package services

import (
	"context"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/repositories"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/auth"
	"github.com/demiray/campusms/internal/pkg/logger"
	"github.com/demiray/campusms/internal/pkg/validation"
)

// TeacherService handles teacher account management
type TeacherService interface {
	// CreateTeacher adds a teacher account and returns its credentials.
	// The plaintext password is present only when it was generated.
	CreateTeacher(ctx context.Context, request *dto.CreateTeacherRequest) (*dto.TeacherCredentials, error)
	// ListTeachers returns teacher accounts, admin rows excluded.
	ListTeachers(ctx context.Context) ([]*models.Teacher, error)
	// DeleteTeacher removes a teacher and, via cascade, every grade and
	// attendance row they recorded. Admin accounts cannot be deleted.
	DeleteTeacher(ctx context.Context, teacherID string) error
	// ResetPassword sets or generates a new password for a teacher.
	ResetPassword(ctx context.Context, teacherID string, request *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error)
}

type teacherService struct {
	teachers TeacherStore
	ids      IDSource
}

// NewTeacherService creates a new TeacherService
func NewTeacherService(teachers TeacherStore, ids IDSource) TeacherService {
	return &teacherService{
		teachers: teachers,
		ids:      ids,
	}
}

func (s *teacherService) CreateTeacher(ctx context.Context, request *dto.CreateTeacherRequest) (*dto.TeacherCredentials, error) {
	if !validation.IsValidEmail(request.Email) {
		return nil, apperrors.ErrInvalidEmail
	}

	plaintext, generated, err := resolvePassword(request.PasswordPolicy, request.Password, request.ConfirmPassword)
	if err != nil {
		return nil, err
	}

	teacherID, err := s.ids.Next(ctx, repositories.PrefixTeacher)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		TeacherID: teacherID,
		Username:  request.Username,
		Password:  auth.HashPassword(plaintext),
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Email:     request.Email,
		Role:      models.RoleTeacher,
	}

	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, err
	}

	credentials := &dto.TeacherCredentials{
		TeacherID: teacher.TeacherID,
		Username:  teacher.Username,
	}
	if generated {
		credentials.Password = plaintext
	}
	return credentials, nil
}

func (s *teacherService) ListTeachers(ctx context.Context) ([]*models.Teacher, error) {
	all, err := s.teachers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	teachers := make([]*models.Teacher, 0, len(all))
	for _, teacher := range all {
		if teacher.Role == models.RoleAdmin {
			continue
		}
		teachers = append(teachers, teacher)
	}
	return teachers, nil
}

func (s *teacherService) DeleteTeacher(ctx context.Context, teacherID string) error {
	teacher, err := s.teachers.GetByID(ctx, teacherID)
	if err != nil {
		return err
	}
	if teacher.Role == models.RoleAdmin {
		logger.Warn().Str("teacherID", teacherID).Msg("Refused to delete admin account")
		return apperrors.ErrPermissionDenied
	}

	return s.teachers.Delete(ctx, teacherID)
}

func (s *teacherService) ResetPassword(ctx context.Context, teacherID string, request *dto.ResetPasswordRequest) (*dto.ResetPasswordResponse, error) {
	if _, err := s.teachers.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}

	plaintext := request.Password
	response := &dto.ResetPasswordResponse{}
	if plaintext == "" {
		generated, err := auth.GeneratePassword()
		if err != nil {
			return nil, err
		}
		plaintext = generated
		response.Password = generated
	}

	if err := s.teachers.UpdatePassword(ctx, teacherID, auth.HashPassword(plaintext)); err != nil {
		return nil, err
	}
	return response, nil
}
