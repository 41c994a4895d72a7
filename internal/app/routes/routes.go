package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/demiray/campusms/internal/app/controllers"
	"github.com/demiray/campusms/internal/app/models"
	"github.com/demiray/campusms/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	teacherController *controllers.TeacherController,
	studentController *controllers.StudentController,
	subjectController *controllers.SubjectController,
	gradeController *controllers.GradeController,
	attendanceController *controllers.AttendanceController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)

		// The catalog is readable by every principal; only admins add to it.
		authenticated.GET("/subjects", subjectController.ListSubjects)

		// Per-student reads: staff see everyone, students only themselves.
		studentReads := authenticated.Group("/students/:id")
		studentReads.Use(authMiddleware.StudentSelfOrStaff())
		{
			studentReads.GET("", studentController.GetStudent)
			studentReads.GET("/grades", gradeController.ListStudentGrades)
			studentReads.GET("/attendance", attendanceController.ListStudentAttendance)
			studentReads.GET("/summary", reportController.StudentSummary)
			studentReads.GET("/report", reportController.StudentReport)
		}

		// Staff routes, open to teachers and admins alike
		staff := authenticated.Group("")
		staff.Use(authMiddleware.RoleRequired(string(models.RoleTeacher), string(models.RoleAdmin)))
		{
			staff.POST("/students", studentController.CreateStudent)
			staff.GET("/students", studentController.ListStudents)
			staff.PUT("/students/:id/password", studentController.ResetPassword)

			staff.POST("/grades", gradeController.RecordGrade)
			staff.GET("/grades/recent", gradeController.ListRecent)

			staff.PUT("/attendance", attendanceController.MarkAttendance)
			staff.GET("/attendance", attendanceController.GetRegister)

			staff.GET("/stats/overview", reportController.Overview)
		}

		// Admin-only routes
		admin := authenticated.Group("")
		admin.Use(authMiddleware.RoleRequired(string(models.RoleAdmin)))
		{
			admin.POST("/teachers", teacherController.CreateTeacher)
			admin.GET("/teachers", teacherController.ListTeachers)
			admin.DELETE("/teachers/:id", teacherController.DeleteTeacher)
			admin.PUT("/teachers/:id/password", teacherController.ResetPassword)

			admin.POST("/subjects", subjectController.CreateSubject)

			admin.DELETE("/students/:id", studentController.DeleteStudent)
		}
	}
}
