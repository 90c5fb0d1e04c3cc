package notification

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

// NotificationService composes and sends portal emails.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, p models.EmailPayload) error
	SendPaymentReceipt(ctx context.Context, p models.EmailPayload) error
}

// Dispatcher hands an email payload to the async queue. Dispatch is
// fire-and-forget: it must never block the caller on delivery and a delivery
// failure must never surface to the caller.
type Dispatcher interface {
	DispatchEmail(p models.EmailPayload)
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Sender EmailSender
}

func NewDefaultNotificationService(sender EmailSender) (*DefaultNotificationService, error) {
	if sender == nil {
		return nil, fmt.Errorf("notification service initialization error: email sender is nil")
	}
	return &DefaultNotificationService{Sender: sender}, nil
}

// SendBookingConfirmation emails the requester that their slot is reserved.
func (s *DefaultNotificationService) SendBookingConfirmation(ctx context.Context, p models.EmailPayload) error {
	name := p.Patient
	if name == "" {
		name = p.Email
	}
	msg := EmailMessage{
		To:      p.Email,
		ToName:  name,
		Subject: fmt.Sprintf("Your appointment for %s is confirmed", p.TreatmentName),
		Body: fmt.Sprintf(
			"Your appointment for %s on %s at %s is confirmed.\n\nPlease arrive a few minutes early and bring your documents.",
			p.TreatmentName, p.SelectedDate, p.Slot,
		),
	}
	if err := s.Sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendBookingConfirmation: %w", err)
	}
	return nil
}

// SendPaymentReceipt emails the requester that their payment was recorded.
func (s *DefaultNotificationService) SendPaymentReceipt(ctx context.Context, p models.EmailPayload) error {
	name := p.Patient
	if name == "" {
		name = p.Email
	}
	msg := EmailMessage{
		To:      p.Email,
		ToName:  name,
		Subject: fmt.Sprintf("Payment received for %s", p.TreatmentName),
		Body: fmt.Sprintf(
			"We received your payment of $%.2f for %s on %s at %s.\nTransaction: %s",
			p.Amount, p.TreatmentName, p.SelectedDate, p.Slot, p.TransactionID,
		),
	}
	if err := s.Sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPaymentReceipt: %w", err)
	}
	return nil
}
