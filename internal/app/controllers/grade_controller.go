package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/services"
	"github.com/demiray/campusms/internal/middleware"
)

// GradeController handles the grade ledger
type GradeController struct {
	gradeService services.GradeService
	logger       zerolog.Logger
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService services.GradeService, logger zerolog.Logger) *GradeController {
	return &GradeController{
		gradeService: gradeService,
		logger:       logger,
	}
}

// RecordGrade appends one exam result to the ledger
// @Summary Record grade
// @Description Appends an exam result. Percentage and letter grade are computed server-side; the recording teacher comes from the token.
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RecordGradeRequest true "Exam result"
// @Success 201 {object} dto.APIResponse{data=models.Grade}
// @Failure 400 {object} dto.ErrorResponse "Invalid request format or totalMarks not positive"
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /grades [post]
func (c *GradeController) RecordGrade(ctx *gin.Context) {
	var req dto.RecordGradeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid record grade payload")
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	teacherID := ctx.GetString(middleware.ContextPrincipalID)
	grade, err := c.gradeService.RecordGrade(ctx.Request.Context(), teacherID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(grade))
}

// ListStudentGrades returns a student's ledger entries, newest first
// @Summary List student grades
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(STU001)
// @Success 200 {object} dto.APIResponse{data=[]models.Grade}
// @Failure 403 {object} dto.ErrorResponse "Students can only access their own records"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/grades [get]
func (c *GradeController) ListStudentGrades(ctx *gin.Context) {
	grades, err := c.gradeService.ListStudentGrades(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}

// ListRecent returns the caller's most recent recordings
// @Summary Recent recordings
// @Description Returns the authenticated teacher's most recent ledger entries with student names. Limit defaults to 10.
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum entries" default(10)
// @Success 200 {object} dto.APIResponse{data=[]models.GradeWithStudent}
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /grades/recent [get]
func (c *GradeController) ListRecent(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "0"))

	teacherID := ctx.GetString(middleware.ContextPrincipalID)
	grades, err := c.gradeService.ListRecent(ctx.Request.Context(), teacherID, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(grades))
}
