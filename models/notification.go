package models

// Email payload kinds handled by the email worker.
const (
	EmailKindBookingConfirmation = "bookingConfirmation"
	EmailKindPaymentReceipt      = "paymentReceipt"
)

// EmailPayload is the message handed to the async email queue. It carries
// everything the worker needs so no store lookup happens at send time.
type EmailPayload struct {
	Kind          string  `json:"kind"`
	Email         string  `json:"email"`
	Patient       string  `json:"patient,omitempty"`
	TreatmentName string  `json:"treatmentName"`
	SelectedDate  string  `json:"selectedDate"`
	Slot          string  `json:"slot"`
	Amount        float64 `json:"amount,omitempty"`
	TransactionID string  `json:"transactionId,omitempty"`
}
