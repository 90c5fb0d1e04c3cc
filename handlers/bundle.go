package handlers

import (
	"doctorsportal/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct, together with
// the role checker the admin-gated routes need.
type HandlerBundle struct {
	AdminCheck middleware.RoleChecker

	// Availability endpoints
	GetAppointmentOptionsHandler gin.HandlerFunc
	GetSpecialtiesHandler        gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler      gin.HandlerFunc
	GetBookingsByEmailHandler gin.HandlerFunc
	GetBookingByIDHandler     gin.HandlerFunc

	// Payment endpoints
	RecordPaymentHandler       gin.HandlerFunc
	CreatePaymentIntentHandler gin.HandlerFunc

	// User endpoints
	RegisterUserHandler gin.HandlerFunc
	GetAllUsersHandler  gin.HandlerFunc
	IssueTokenHandler   gin.HandlerFunc
	CheckAdminHandler   gin.HandlerFunc
	GrantAdminHandler   gin.HandlerFunc

	// Doctor endpoints
	AddDoctorHandler    gin.HandlerFunc
	GetDoctorsHandler   gin.HandlerFunc
	DeleteDoctorHandler gin.HandlerFunc
}
