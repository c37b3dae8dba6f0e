package routes

import (
	"github.com/Miraku17/PowerSystems-sub006/controllers"
	"github.com/Miraku17/PowerSystems-sub006/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {

	api := r.Group("/api")
	{
		api.POST("/auth/login", controllers.Login)

		auth := api.Group("/", middlewares.Auth())
		{
			auth.GET("/profile", controllers.Profile)
			auth.PUT("/profile", controllers.UpdateProfile)
			auth.PUT("/profile/password", controllers.ChangePassword)

			// ============ user & position management ============
			admin := auth.Group("/admin", middlewares.RequirePerm("user_management", "edit"))
			{
				admin.GET("/users", controllers.AdminGetAllUsers)
				admin.POST("/users", controllers.AdminCreateUser)
				admin.PUT("/users/:id/position", controllers.AdminSetUserPosition)
				admin.POST("/users/:id/reset-link", controllers.AdminResetPasswordLink)
				admin.GET("/positions", controllers.AdminListPositions)
				admin.PUT("/positions/:id/permissions", controllers.AdminSetPositionPermissions)
				admin.GET("/permissions", controllers.AdminListPermissions)
			}

			// ============ masters ============
			engines := auth.Group("/engines")
			{
				engines.GET("/", controllers.GetAllEngines)
				engines.GET("/:id", controllers.GetEngineByID)
				engines.POST("/", middlewares.RequirePerm("engine_management", "create"), controllers.CreateEngine)
				engines.PUT("/:id", middlewares.RequirePerm("engine_management", "edit"), controllers.UpdateEngine)
				// delete stays on the old flat-role check
				engines.DELETE("/:id", middlewares.RequireAdminRole(), controllers.DeleteEngine)
			}

			pumps := auth.Group("/pumps")
			{
				pumps.GET("/", controllers.GetAllPumps)
				pumps.GET("/:id", controllers.GetPumpByID)
				pumps.POST("/", middlewares.RequirePerm("pump_management", "create"), controllers.CreatePump)
				pumps.PUT("/:id", middlewares.RequirePerm("pump_management", "edit"), controllers.UpdatePump)
				pumps.DELETE("/:id", middlewares.RequireAdminRole(), controllers.DeletePump)
			}

			customers := auth.Group("/customers")
			{
				customers.GET("/", controllers.GetAllCustomers)
				customers.GET("/:id", controllers.GetCustomerByID)
				customers.POST("/", middlewares.RequirePerm("customer_management", "create"), controllers.CreateCustomer)
				customers.PUT("/:id", middlewares.RequirePerm("customer_management", "edit"), controllers.UpdateCustomer)
				customers.DELETE("/:id", middlewares.RequireAdminRole(), controllers.DeleteCustomer)
			}

			// ============ job orders ============
			jobOrders := auth.Group("/job-orders")
			{
				jobOrders.GET("/", controllers.GetJobOrders)
				jobOrders.GET("/:id", controllers.GetJobOrderByID)
				jobOrders.POST("/", middlewares.RequirePerm("job_orders", "create"), controllers.CreateJobOrder)
				jobOrders.PUT("/:id", middlewares.RequirePerm("job_orders", "edit"), controllers.UpdateJobOrder)
				jobOrders.POST("/:id/attachments", controllers.UploadJobOrderAttachments)
				jobOrders.GET("/:id/attachments", controllers.GetJobOrderAttachments)
			}

			// ============ time sheets ============
			timeSheets := auth.Group("/time-sheets")
			{
				timeSheets.GET("/", controllers.GetTimeSheets)
				timeSheets.GET("/:id", controllers.GetTimeSheetByID)
				timeSheets.POST("/", middlewares.RequirePerm("time_sheets", "create"), controllers.CreateTimeSheet)
				timeSheets.PUT("/:id", middlewares.RequirePerm("time_sheets", "edit"), controllers.UpdateTimeSheet)
			}

			// ============ leave requests ============
			leaves := auth.Group("/leave-requests")
			{
				leaves.GET("/", controllers.GetLeaveRequests)
				leaves.GET("/:id", controllers.GetLeaveRequestByID)
				leaves.POST("/", middlewares.RequirePerm("leave_management", "create"), controllers.CreateLeaveRequest)
				leaves.PUT("/:id", middlewares.RequirePerm("leave_management", "edit"), controllers.UpdateLeaveRequest)
			}

			// ============ report forms ============
			reports := auth.Group("/reports")
			{
				reports.GET("/:type", controllers.GetServiceReports)
				reports.GET("/:type/:id", controllers.GetServiceReportByID)
				reports.POST("/:type", middlewares.RequirePerm("service_reports", "create"), controllers.CreateServiceReport)
				reports.PUT("/:type/:id", middlewares.RequirePerm("service_reports", "edit"), controllers.UpdateServiceReport)
				reports.POST("/:type/:id/signature", controllers.UploadReportSignature)
			}

			// ============ knowledge base ============
			kb := auth.Group("/kb")
			{
				kb.GET("/", controllers.GetKbArticles)
				kb.GET("/:id", controllers.GetKbArticleByID)
				kb.POST("/", middlewares.RequirePerm("knowledge_base", "create"), controllers.CreateKbArticle)
				kb.PUT("/:id", middlewares.RequirePerm("knowledge_base", "edit"), controllers.UpdateKbArticle)
			}

			// ============ lifecycle, workflow, signatory ============
			forms := auth.Group("/forms")
			{
				forms.PATCH("/restore", controllers.RestoreForm)
				forms.PATCH("/signatory-approval", controllers.ToggleSignatoryApproval)
				forms.GET("/:type/deleted", controllers.ListDeletedForms)
				forms.DELETE("/:type/:id", controllers.SoftDeleteForm)
				forms.PATCH("/:type/:id/status", controllers.UpdateFormStatus)
				forms.POST("/:type/:id/approve", controllers.ApproveForm)
				forms.POST("/:type/:id/reject", controllers.RejectForm)
			}

			auth.GET("/audit-logs", middlewares.RequirePerm("audit_logs", "view"), controllers.ListAuditLogs)
		}
	}
}
