package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/services"
	"github.com/demiray/campusms/internal/middleware"
)

// AttendanceController handles the attendance register
type AttendanceController struct {
	attendanceService services.AttendanceService
	logger            zerolog.Logger
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService services.AttendanceService, logger zerolog.Logger) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
		logger:            logger,
	}
}

// MarkAttendance saves one register submission
// @Summary Mark attendance
// @Description Saves the register for a day and subject. Submitting again for the same day/subject replaces the previous register entirely; students missing from entries lose their record for that day.
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.MarkAttendanceRequest true "Register submission"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.ErrorResponse "Invalid date, empty entries, or unknown status"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 409 {object} dto.ErrorResponse "Concurrent submission for the same day and subject"
// @Router /attendance [put]
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid mark attendance payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacherID := ctx.GetString(middleware.ContextPrincipalID)
	if err := c.attendanceService.MarkAttendance(ctx.Request.Context(), teacherID, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Attendance saved"}))
}

// GetRegister returns the saved register for a day/subject
// @Summary Get register
// @Description Returns the saved register for a day and subject so the marking form can be pre-filled. An unmarked day yields empty entries.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param date query string true "Day" example(2025-05-20)
// @Param subject query string true "Subject name" example(Web Development)
// @Success 200 {object} dto.APIResponse{data=dto.AttendanceRegister}
// @Failure 400 {object} dto.ErrorResponse "Missing or malformed date or subject"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /attendance [get]
func (c *AttendanceController) GetRegister(ctx *gin.Context) {
	date := ctx.Query("date")
	subject := ctx.Query("subject")
	if date == "" || subject == "" {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "date and subject query parameters are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	register, err := c.attendanceService.GetRegister(ctx.Request.Context(), date, subject)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(register))
}

// ListStudentAttendance returns a student's records, newest day first
// @Summary List student attendance
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(STU001)
// @Success 200 {object} dto.APIResponse{data=[]models.AttendanceRecord}
// @Failure 403 {object} dto.ErrorResponse "Students can only access their own records"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/attendance [get]
func (c *AttendanceController) ListStudentAttendance(ctx *gin.Context) {
	records, err := c.attendanceService.ListStudentAttendance(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(records))
}
