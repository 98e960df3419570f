package routes

import (
	"net/http"
	"time"

	"shootflow/handlers"
	"shootflow/middleware"
	"shootflow/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterShootRoutes registers the workflow board and transition endpoints.
func RegisterShootRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/shoots")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("", hb.Shoot.ListShootsHandler)
		api.GET("/:id", hb.Shoot.GetShootHandler)
		api.GET("/:id/payment", hb.Payment.ShootPaymentHandler)
		api.GET("/:id/reschedule-requests", hb.Reschedule.ListShootRequestsHandler)
		api.POST("/:id/reschedule", hb.Reschedule.RequestRescheduleHandler)
		api.POST("/:id/transition/:transition", hb.Shoot.TransitionHandler)
		api.POST("/:id/booking/:action", hb.Shoot.BookingActionHandler)
		api.POST("/:id/mark-paid",
			middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin),
			hb.Payment.MarkPaidHandler)
	}
}

// RegisterBoardSessionRoutes registers the board session / dialog endpoints.
func RegisterBoardSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/board")
	{
		api.Use(middleware.AuthMiddleware())
		api.POST("/session", hb.Shoot.OpenSessionHandler)
		api.PUT("/session/:sessionID/dialog", hb.Shoot.SetDialogHandler)
		api.DELETE("/session/:sessionID", hb.Shoot.CloseSessionHandler)
	}
}

// RegisterSchedulingRoutes registers the reschedule review queue.
func RegisterSchedulingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/reschedule-requests")
	{
		api.Use(middleware.AuthMiddleware())
		api.GET("/slots", hb.Reschedule.GetSlotsHandler)

		admin := api.Group("")
		admin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin))
		admin.GET("/pending", hb.Reschedule.ListPendingRequestsHandler)
		admin.POST("/:requestID/approve", hb.Reschedule.ApproveRequestHandler)
		admin.POST("/:requestID/reject", hb.Reschedule.RejectRequestHandler)
	}
}

// RegisterPaymentRoutes registers reconciliation and batch payment endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.AuthMiddleware())
		api.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleSuperAdmin))
		api.GET("/reconciliation", hb.Payment.ReconciliationHandler)
		api.POST("/quote", hb.Payment.QuoteBatchHandler)
		api.POST("/multiple-shoots", hb.Payment.BatchCheckoutHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm ShootFlow"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterShootRoutes(r, hb)
	RegisterBoardSessionRoutes(r, hb)
	RegisterSchedulingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
}
