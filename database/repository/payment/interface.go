package paymentRepo

import "doctorsportal/models"

// PaymentRepository defines methods for payment-record data access.
type PaymentRepository interface {
	// Create inserts a new payment record.
	Create(payment *models.Payment) error
	// GetByBookingID retrieves the payment record for a booking, if any.
	GetByBookingID(bookingID string) (*models.Payment, error)
}
