package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/ampro/academy-manager/internal/app/controllers"
	"github.com/ampro/academy-manager/internal/app/models/dto"
	"github.com/ampro/academy-manager/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	settingsController *controllers.SettingsController,
	dashboardController *controllers.DashboardController,
	reminderController *controllers.ReminderController,
	receiptController *controllers.ReceiptController,
	authMiddleware *middleware.AuthMiddleware,
) {
	v1 := router.Group("/api/v1")

	// --- Public auth routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.GET("/session", authController.Session)
	}

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.SessionRequired())
	{
		authenticated.POST("/auth/logout", authController.Logout)

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.GET("/export", studentController.ExportStudents)
			students.PUT("/:id", studentController.UpdateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
			students.DELETE("/classes/:standard", studentController.DeleteClass)
		}

		settings := authenticated.Group("/settings")
		{
			settings.GET("", settingsController.GetSettings)
			settings.PUT("", settingsController.UpdateSettings)
		}

		authenticated.GET("/dashboard", dashboardController.GetDashboard)

		reminders := authenticated.Group("/reminders")
		{
			reminders.GET("", reminderController.ListReminders)
			reminders.POST("/:id", reminderController.SendReminder)
		}

		receipts := authenticated.Group("/receipts")
		{
			receipts.GET("/:id", receiptController.GetReceipt)
			receipts.GET("/:id/share", receiptController.ShareReceipt)
		}
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewAPIResponse(gin.H{"status": "ok"}))
	})
}
