package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/doctor"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DoctorHandler serves the admin-gated doctor registry.
type DoctorHandler struct {
	Service doctor.DoctorService
}

func NewDoctorHandler(svc doctor.DoctorService) *DoctorHandler {
	return &DoctorHandler{Service: svc}
}

// AddDoctorHandler handles POST /doctors.
func (h *DoctorHandler) AddDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var d models.Doctor
	if err := c.ShouldBindJSON(&d); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid doctor payload", err.Error())
		return
	}

	registered, err := h.Service.Register(d)
	if err != nil {
		logger.Error("failed to register doctor", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to register doctor", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, registered)
}

// GetDoctorsHandler handles GET /doctors.
func (h *DoctorHandler) GetDoctorsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	doctors, err := h.Service.GetAll()
	if err != nil {
		logger.Error("failed to list doctors", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to list doctors", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, doctors)
}

// DeleteDoctorHandler handles DELETE /doctors/:id.
func (h *DoctorHandler) DeleteDoctorHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")

	if err := h.Service.Remove(id); err != nil {
		if errors.Is(err, doctor.ErrDoctorNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Doctor not found", "")
			return
		}
		logger.Error("failed to remove doctor", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to remove doctor", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "Doctor removed"})
}
