package services

import (
	"context"
	"errors"

	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/auth"
	"github.com/demiray/campusms/internal/pkg/logger"
)

// AuthService handles authentication operations
type AuthService interface {
	// Login authenticates either kind of principal. Students sign in with
	// their student ID, staff with their username.
	Login(ctx context.Context, request *dto.LoginRequest) (*dto.LoginResponse, error)
	// Me resolves the principal behind a validated token.
	Me(ctx context.Context, principalID, role string) (*dto.PrincipalInfo, error)
}

type authService struct {
	teachers   TeacherStore
	students   StudentStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(teachers TeacherStore, students StudentStore, jwtService *auth.JWTService) AuthService {
	return &authService{
		teachers:   teachers,
		students:   students,
		jwtService: jwtService,
	}
}

// Login resolves the principal for the requested role and checks the
// password. Unknown ID and wrong password both come back as
// ErrInvalidCredentials so the response never reveals which IDs exist.
func (s *authService) Login(ctx context.Context, request *dto.LoginRequest) (*dto.LoginResponse, error) {
	var principal dto.PrincipalInfo
	var storedHash string

	switch request.Role {
	case "student":
		student, err := s.students.GetByID(ctx, request.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrStudentNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
		storedHash = student.Password
		principal = dto.PrincipalInfo{
			ID:    student.StudentID,
			Name:  student.FullName(),
			Email: student.Email,
			Role:  string(models.RoleStudent),
		}
	case "staff":
		teacher, err := s.teachers.GetByUsername(ctx, request.ID)
		if err != nil {
			if errors.Is(err, apperrors.ErrTeacherNotFound) {
				return nil, apperrors.ErrInvalidCredentials
			}
			return nil, err
		}
		storedHash = teacher.Password
		principal = dto.PrincipalInfo{
			ID:    teacher.TeacherID,
			Name:  teacher.FullName(),
			Email: teacher.Email,
			Role:  string(teacher.Role),
		}
	default:
		return nil, apperrors.ErrValidationFailed
	}

	if !auth.CheckPassword(storedHash, request.Password) {
		logger.Warn().Str("principalID", principal.ID).Msg("Login attempt with wrong password")
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(principal.ID, principal.Name, principal.Role)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("principalID", principal.ID).Str("role", principal.Role).Msg("Principal logged in")
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		Principal: principal,
	}, nil
}

// Me re-reads the principal's record so the response reflects the current
// row, not the claims frozen into the token.
func (s *authService) Me(ctx context.Context, principalID, role string) (*dto.PrincipalInfo, error) {
	if role == string(models.RoleStudent) {
		student, err := s.students.GetByID(ctx, principalID)
		if err != nil {
			return nil, err
		}
		return &dto.PrincipalInfo{
			ID:    student.StudentID,
			Name:  student.FullName(),
			Email: student.Email,
			Role:  string(models.RoleStudent),
		}, nil
	}

	teacher, err := s.teachers.GetByID(ctx, principalID)
	if err != nil {
		return nil, err
	}
	return &dto.PrincipalInfo{
		ID:    teacher.TeacherID,
		Name:  teacher.FullName(),
		Email: teacher.Email,
		Role:  string(teacher.Role),
	}, nil
}
