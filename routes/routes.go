package routes

import (
	"net/http"
	"time"

	"azulpool/handlers"
	"azulpool/middleware"
	"azulpool/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuoteRoutes registers the public wizard endpoints.
func RegisterQuoteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/quotes")
	{
		// Submission and the data-access flow are rate-limited per client IP.
		api.POST("", middleware.RateLimitMiddleware(), hb.SubmitQuoteHandler)
		api.POST("/price", hb.PriceQuoteHandler)
		api.POST("/access", middleware.RateLimitMiddleware(), hb.QuoteAccessHandler)
	}
}

// RegisterContactRoutes registers the public contact-form endpoint.
func RegisterContactRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/contact", middleware.RateLimitMiddleware(), hb.SubmitContactHandler)
}

// RegisterAdminRoutes registers the admin console endpoints. Everything past
// login requires a live admin session.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/auth", hb.LoginHandler)

		// Protected routes (require a valid admin session).
		api.Use(middleware.AdminAuthMiddleware(hb.Sessions))
		api.GET("/auth", hb.SessionCheckHandler)
		api.DELETE("/auth", hb.LogoutHandler)

		api.GET("/pricing", hb.GetPricingConfigHandler)
		api.POST("/pricing", hb.SavePricingConfigHandler)

		api.GET("/quotes", hb.ListQuotesHandler)
		api.GET("/quotes/get", hb.GetQuoteHandler)
		api.POST("/quotes/update", hb.UpdateQuoteHandler)
		api.POST("/quotes/accept", hb.AcceptQuoteHandler)
		api.DELETE("/quotes/delete", hb.DeleteQuoteHandler)

		api.GET("/audit", hb.ListAuditLogsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires CORS and all route groups onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterQuoteRoutes(r, hb)
	RegisterContactRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
