package routes

import (
	"net/http"
	"time"

	"barberbook/handlers"
	"barberbook/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the public service and staff listings.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/staff", hb.ListStaffHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PUT("/session/:sessionID/service", hb.SelectService)
		bookingGroup.PUT("/session/:sessionID/staff", hb.SelectStaff)
		bookingGroup.PUT("/session/:sessionID/datetime", hb.SelectDateTime)
		bookingGroup.PUT("/session/:sessionID/contact", hb.SetContactDetails)
		bookingGroup.POST("/session/:sessionID/next", hb.AdvanceSession)
		bookingGroup.POST("/session/:sessionID/back", hb.BackSession)
		bookingGroup.GET("/session/:sessionID/slots", hb.GetSlotGrid)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.POST("/session/:sessionID/acknowledge", hb.AcknowledgeOutcome)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterStaffRoutes sets up login and the protected dashboard.
func RegisterStaffRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	staffGroup := r.Group("/api/staff")
	{
		staffGroup.POST("/login", hb.StaffLoginHandler)

		// Protected routes (Require Authentication)
		staffGroup.Use(middleware.StaffAuthMiddleware())
		staffGroup.GET("/dashboard", hb.StaffDashboardHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Barberbook"})
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

	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterStaffRoutes(r, hb)
	RegisterHealthRoute(r)
}
