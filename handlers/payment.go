package handlers

import (
	"errors"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/payment"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler serves payment reconciliation and intent creation.
type PaymentHandler struct {
	Service payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// RecordPaymentHandler handles POST /paymentInfo.
func (h *PaymentHandler) RecordPaymentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment payload", err.Error())
		return
	}

	recorded, err := h.Service.MarkPaid(p)
	if err != nil {
		if errors.Is(err, payment.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		logger.Error("failed to record payment", zap.String("bookingId", p.BookingID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to record payment", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, recorded)
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (h *PaymentHandler) CreatePaymentIntentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid payment intent request", err.Error())
		return
	}

	resp, err := h.Service.CreateIntent(req.BookingID)
	if err != nil {
		if errors.Is(err, payment.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Booking not found", "")
			return
		}
		logger.Error("failed to create payment intent", zap.String("bookingId", req.BookingID), zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Failed to create payment intent", err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusOK, resp)
}
