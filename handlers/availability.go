package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/services/availability"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler serves the remaining-slots view of the catalog.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
}

func NewAvailabilityHandler(svc availability.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// GetAppointmentOptionsHandler handles GET /appointmentOptions?date=.
func (h *AvailabilityHandler) GetAppointmentOptionsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	date := c.Query("date")

	options, err := h.Service.Options(date)
	if err != nil {
		if errors.Is(err, availability.ErrMissingDate) {
			utils.JSONError(c, http.StatusBadRequest, "A date query parameter is required", "")
			return
		}
		logger.Error("failed to compute availability", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to compute availability", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, options)
}

// GetSpecialtiesHandler handles GET /specialty.
func (h *AvailabilityHandler) GetSpecialtiesHandler(c *gin.Context) {
	logger := utils.GetLogger()

	specialties, err := h.Service.Specialties()
	if err != nil {
		logger.Error("failed to list specialties", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to list specialties", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, specialties)
}
