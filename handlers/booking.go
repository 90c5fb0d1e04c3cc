package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/middleware"
	"doctorsportal/models"
	"doctorsportal/services/booking"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking admission and reads.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var candidate models.Booking
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking payload", err.Error())
		return
	}

	created, err := h.Service.Create(candidate)
	if err != nil {
		var admission *booking.AdmissionError
		if errors.As(err, &admission) {
			switch admission.Code {
			case booking.CodeAlreadyBooked:
				utils.JSONError(c, http.StatusConflict, admission.Message, "")
			default:
				utils.JSONError(c, http.StatusBadRequest, admission.Message, "")
			}
			return
		}
		logger.Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create booking", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, created)
}

// GetBookingsByEmailHandler handles GET /booking?email=. The query is
// self-scoped: the email must match the credential subject.
func (h *BookingHandler) GetBookingsByEmailHandler(c *gin.Context) {
	logger := utils.GetLogger()

	email := c.Query("email")
	authed, ok := middleware.AuthedEmail(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Missing credential", "")
		return
	}
	if email != authed {
		utils.JSONError(c, http.StatusForbidden, "Access forbidden", "")
		return
	}

	bookings, err := h.Service.ListByEmail(email)
	if err != nil {
		logger.Error("failed to list bookings", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to list bookings", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetBookingByIDHandler handles GET /bookings/:id.
func (h *BookingHandler) GetBookingByIDHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	b, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		logger.Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to fetch booking", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, b)
}
