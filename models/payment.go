package models

import "time"

// Payment records a settled payment for a booking, keyed by booking ID.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"bookingId" json:"bookingId"`
	TransactionID string    `bson:"transactionId" json:"transactionId"` // Stripe payment intent / charge id
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	Email         string    `bson:"email" json:"email"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// PaymentIntentRequest asks for a Stripe payment intent for a booking.
type PaymentIntentRequest struct {
	BookingID string `json:"bookingId" binding:"required"`
}

// PaymentIntentResponse carries the client secret the frontend needs to
// complete a card payment.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
