package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/demiray/campusms/internal/app/models/dto"
	"github.com/demiray/campusms/internal/app/services"
	"github.com/demiray/campusms/internal/middleware"
)

// ReportController serves derived read-only views
type ReportController struct {
	reportService services.ReportService
	logger        zerolog.Logger
}

// NewReportController creates a new ReportController
func NewReportController(reportService services.ReportService, logger zerolog.Logger) *ReportController {
	return &ReportController{
		reportService: reportService,
		logger:        logger,
	}
}

// StudentSummary aggregates one student's grades and attendance
// @Summary Student summary
// @Description Returns a student's academic overview. Percentage fields are null when the student has no records to average.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(STU001)
// @Success 200 {object} dto.APIResponse{data=dto.StudentSummary}
// @Failure 403 {object} dto.ErrorResponse "Students can only access their own records"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/summary [get]
func (c *ReportController) StudentSummary(ctx *gin.Context) {
	summary, err := c.reportService.StudentSummary(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(summary))
}

// StudentReport breaks the summary down per subject
// @Summary Student report
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Param id path string true "Student ID" example(STU001)
// @Success 200 {object} dto.APIResponse{data=dto.StudentReport}
// @Failure 403 {object} dto.ErrorResponse "Students can only access their own records"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /students/{id}/report [get]
func (c *ReportController) StudentReport(ctx *gin.Context) {
	report, err := c.reportService.StudentReport(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(report))
}

// Overview returns dashboard head counts
// @Summary Overview stats
// @Description Returns head counts for the dashboard. Teacher principals also get their own grades-this-week count.
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.OverviewStats}
// @Failure 403 {object} dto.ErrorResponse "Staff role required"
// @Router /stats/overview [get]
func (c *ReportController) Overview(ctx *gin.Context) {
	principalID := ctx.GetString(middleware.ContextPrincipalID)
	role := ctx.GetString(middleware.ContextRole)

	stats, err := c.reportService.Overview(ctx.Request.Context(), principalID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(stats))
}
