package routes

import (
	"net/http"
	"time"

	"doctorsportal/handlers"
	"doctorsportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAvailabilityRoutes registers the public catalog endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOptions", hb.GetAppointmentOptionsHandler)
	r.GET("/specialty", hb.GetSpecialtiesHandler)
}

// RegisterBookingRoutes registers booking admission and reads. The booking
// list is self-scoped and requires a credential; the other two paths are
// public, matching the portal frontend.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/booking", middleware.AuthRequired(), hb.GetBookingsByEmailHandler)
	r.GET("/bookings/:id", hb.GetBookingByIDHandler)
	r.POST("/bookings", hb.CreateBookingHandler)
}

// RegisterPaymentRoutes registers payment reconciliation endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/paymentInfo", hb.RecordPaymentHandler)
	r.POST("/create-payment-intent", hb.CreatePaymentIntentHandler)
}

// RegisterUserRoutes registers user and credential endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/users", hb.RegisterUserHandler)
	r.GET("/users", hb.GetAllUsersHandler)
	r.GET("/jwt", hb.IssueTokenHandler)
	r.GET("/users/admin/:email", hb.CheckAdminHandler)
	r.PUT("/users/admin/:id",
		middleware.AuthRequired(), middleware.AdminRequired(hb.AdminCheck), hb.GrantAdminHandler)
}

// RegisterDoctorRoutes registers the admin-gated doctor registry.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	doctors := r.Group("/doctors")
	{
		doctors.Use(middleware.AuthRequired(), middleware.AdminRequired(hb.AdminCheck))
		doctors.POST("", hb.AddDoctorHandler)
		doctors.GET("", hb.GetDoctorsHandler)
		doctors.DELETE("/:id", hb.DeleteDoctorHandler)
	}
}

// RegisterHealthRoute registers liveness endpoints.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Doctor's server is running successfully.")
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
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

	RegisterHealthRoute(r)
	RegisterAvailabilityRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
