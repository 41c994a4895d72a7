package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/services"
	"github.com/demiray/campusms/internal/middleware"
)

// TeacherController handles teacher account management (admin only)
type TeacherController struct {
	teacherService services.TeacherService
	logger         zerolog.Logger
}

// NewTeacherController creates a new TeacherController
func NewTeacherController(teacherService services.TeacherService, logger zerolog.Logger) *TeacherController {
	return &TeacherController{
		teacherService: teacherService,
		logger:         logger,
	}
}

// CreateTeacher adds a teacher account
// @Summary Create teacher
// @Description Creates a teacher account. With the generate policy the response carries the one-time plaintext password.
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTeacherRequest true "Teacher information"
// @Success 201 {object} dto.APIResponse{data=dto.TeacherCredentials}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 409 {object} dto.ErrorResponse "Username or email already exists"
// @Router /teachers [post]
func (c *TeacherController) CreateTeacher(ctx *gin.Context) {
	var req dto.CreateTeacherRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create teacher payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	credentials, err := c.teacherService.CreateTeacher(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(credentials))
}

// ListTeachers returns teacher accounts, admin rows excluded
// @Summary List teachers
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Teacher}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Router /teachers [get]
func (c *TeacherController) ListTeachers(ctx *gin.Context) {
	teachers, err := c.teacherService.ListTeachers(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(teachers))
}

// DeleteTeacher removes a teacher and everything they recorded
// @Summary Delete teacher
// @Description Removes a teacher account. Grades and attendance rows they recorded are removed by cascade. Admin accounts cannot be deleted.
// @Tags teachers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID" example(TEA002)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin role required or target is an admin"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id} [delete]
func (c *TeacherController) DeleteTeacher(ctx *gin.Context) {
	teacherID := ctx.Param("id")

	if err := c.teacherService.DeleteTeacher(ctx.Request.Context(), teacherID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Teacher deleted"}))
}

// ResetPassword sets or generates a new password for a teacher
// @Summary Reset teacher password
// @Description Sets the supplied password, or generates one when the body omits it. A generated password is returned exactly once.
// @Tags teachers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Teacher ID" example(TEA002)
// @Param request body dto.ResetPasswordRequest true "New password, may be empty"
// @Success 200 {object} dto.APIResponse{data=dto.ResetPasswordResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Teacher not found"
// @Router /teachers/{id}/password [put]
func (c *TeacherController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.teacherService.ResetPassword(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}
