package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/services"
	"github.com/demiray/campusms/internal/middleware"
)

// StudentController handles student record management
type StudentController struct {
	studentService services.StudentService
	logger         zerolog.Logger
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService, logger zerolog.Logger) *StudentController {
	return &StudentController{
		studentService: studentService,
		logger:         logger,
	}
}

// CreateStudent enrolls a student
// @Summary Enroll student
// @Description Enrolls a student and assigns the next sequential student ID. With the generate policy the response carries the one-time plaintext password.
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentCredentials}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or semester outside the study year"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 409 {object} dto.ErrorResponse "Email already exists"
// @Router /students [post]
func (c *StudentController) CreateStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid create student payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	credentials, err := c.studentService.CreateStudent(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(credentials))
}

// GetStudent returns one student record
// @Summary Get student
// @Description Returns a student record. Students can read only their own.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(STU001)
// @Success 200 {object} dto.APIResponse{data=models.Student}
// @Failure 403 {object} dto.ErrorResponse "Students can only access their own records"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudent(ctx *gin.Context) {
	student, err := c.studentService.GetStudent(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(student))
}

// ListStudents returns all student records
// @Summary List students
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=[]models.Student}
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /students [get]
func (c *StudentController) ListStudents(ctx *gin.Context) {
	students, err := c.studentService.ListStudents(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(students))
}

// DeleteStudent removes a student and all dependent rows
// @Summary Delete student
// @Description Removes a student. Their grades and attendance records are removed by cascade.
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(STU001)
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeleteStudent(ctx *gin.Context) {
	if err := c.studentService.DeleteStudent(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.SuccessResponse{Message: "Student deleted"}))
}

// ResetPassword sets or generates a new password for a student
// @Summary Reset student password
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(STU001)
// @Param request body dto.ResetPasswordRequest true "New password, may be empty"
// @Success 200 {object} dto.APIResponse{data=dto.ResetPasswordResponse}
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/password [put]
func (c *StudentController) ResetPassword(ctx *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.studentService.ResetPassword(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(response))
}
