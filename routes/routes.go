package routes

import (
	"github.com/Truthtechno/LockerRoom-sub003/controllers"
	"github.com/Truthtechno/LockerRoom-sub003/middleware"
	"github.com/Truthtechno/LockerRoom-sub003/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Public routes
		public := v1.Group("")
		{
			// Authentication
			public.POST("/login", controllers.Login)

			// Health check
			public.GET("/health", func(c *gin.Context) {
				c.JSON(200, gin.H{
					"status":  "ok",
					"message": "LockerRoom Review API is running",
				})
			})
		}

		// Protected routes (require authentication)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			// User profile
			protected.GET("/profile", controllers.GetProfile)
			protected.PUT("/change-password", controllers.ChangePassword)

			// Submissions
			submissions := protected.Group("/submissions")
			{
				// Students create and track their own submissions
				submissions.POST("", middleware.RequireRole(models.RoleStudent), controllers.CreateSubmission)
				submissions.GET("", middleware.RequireRole(models.RoleStudent), controllers.GetMySubmissions)

				// Detail visible to every role, scoped inside the handler
				submissions.GET("/:id", controllers.GetSubmission)
			}

			// Scout review queue
			reviews := protected.Group("/reviews")
			reviews.Use(middleware.RequireRole(models.RoleScout))
			{
				reviews.GET("/queue", controllers.GetReviewQueue)
				reviews.PUT("/submissions/:id/draft", controllers.SaveDraftReview)
				reviews.POST("/submissions/:id/submit", controllers.SubmitReview)
			}

			// Scout admin workflow
			admin := protected.Group("/admin")
			admin.Use(middleware.RequireRole(models.RoleScoutAdmin))
			{
				admin.GET("/review-queue", controllers.GetAdminReviewQueue)
				admin.POST("/submissions/:id/assign", controllers.AssignScouts)
				admin.POST("/submissions/:id/finalize", controllers.FinalizeSubmission)
				admin.POST("/submissions/:id/reject", controllers.RejectSubmission)
				admin.GET("/analytics", controllers.GetAnalytics)
				admin.GET("/export/scouts.csv", controllers.ExportScoutPerformance)
				admin.GET("/export/summary.csv", controllers.ExportSummary)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			{
				dashboard.GET("/stats", controllers.GetDashboardStats)
			}

			// Notifications
			notifications := protected.Group("/notifications")
			{
				notifications.GET("", controllers.GetNotifications)
				notifications.PUT("/:id/read", controllers.MarkNotificationRead)
			}
		}
	}
}
