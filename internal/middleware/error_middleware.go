package middleware

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/pkg/apperrors"
	"github.com/demiray/campusms/internal/pkg/logger"
)

// HandleAPIError maps domain errors to HTTP responses. Controllers hand
// every service error here so status codes and payload shapes stay uniform.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired")
	case errors.Is(err, apperrors.ErrTokenInvalid):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied")
	case errors.Is(err, apperrors.ErrTeacherNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Teacher not found")
	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Student not found")
	case errors.Is(err, apperrors.ErrSubjectNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Subject not found")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Resource not found")
	case errors.Is(err, apperrors.ErrUsernameAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Username already exists")
	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists")
	case errors.Is(err, apperrors.ErrSubjectAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Subject name already exists")
	case errors.Is(err, apperrors.ErrAttendanceConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Attendance already recorded for this day")
	case errors.Is(err, apperrors.ErrConflict):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceConflict, "Conflict")
	case errors.Is(err, apperrors.ErrInvalidEmail):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, "Invalid email address")
	case errors.Is(err, apperrors.ErrValidationFailed):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, validationMessage(err))
	case errors.Is(err, apperrors.ErrConnectionFailed):
		logger.Error().Err(err).Msg("Database unreachable while serving request")
		respond(c, http.StatusServiceUnavailable, dto.ErrorCodeStoreUnreachable, "Service temporarily unavailable")
	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error in request")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message string) {
	c.JSON(status, dto.APIResponse{
		Error:     dto.NewErrorDetail(code, message),
		Timestamp: time.Now(),
	})
}

// validationMessage surfaces the specific message attached to a wrapped
// validation error, falling back to the generic one.
func validationMessage(err error) string {
	var customErr *apperrors.CustomError
	if errors.As(err, &customErr) && customErr.Message != "" {
		return customErr.Message
	}
	return "Validation failed"
}
