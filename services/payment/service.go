package payment

import (
	"errors"
	"fmt"
	"math"

	bookingRepo "doctorsportal/database/repository/booking"
	paymentRepo "doctorsportal/database/repository/payment"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrBookingNotFound is returned when a payment references an unknown booking.
var ErrBookingNotFound = errors.New("booking not found")

// PaymentService reconciles settled payments against the booking ledger and
// creates payment intents.
type PaymentService interface {
	// MarkPaid records a payment for a booking and flips its paid flag.
	// Re-marking an already-paid booking is a no-op that returns the
	// existing payment record.
	MarkPaid(payment models.Payment) (*models.Payment, error)
	// CreateIntent creates a payment intent for the booking's treatment
	// price and returns the client secret.
	CreateIntent(bookingID string) (*models.PaymentIntentResponse, error)
}

// DefaultPaymentService is the production implementation.
type DefaultPaymentService struct {
	Bookings   bookingRepo.BookingRepository
	Payments   paymentRepo.PaymentRepository
	Treatments treatmentRepo.TreatmentRepository
	Gateway    IntentGateway
	Dispatcher notification.Dispatcher
}

// MarkPaid records a payment keyed by booking id and marks the booking paid.
func (s *DefaultPaymentService) MarkPaid(payment models.Payment) (*models.Payment, error) {
	logger := utils.GetLogger()

	if payment.BookingID == "" {
		return nil, fmt.Errorf("bookingId is required")
	}

	booking, err := s.Bookings.GetByID(payment.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	// Look for an existing record first. A record without the paid flag means
	// an earlier attempt wrote the record but died before flipping the
	// booking, so finish the flip instead of re-inserting against the unique
	// bookingId index.
	existing, err := s.Payments.GetByBookingID(payment.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment record: %w", err)
	}
	if existing != nil {
		if booking.Paid {
			return existing, nil
		}
		if err := s.Bookings.SetPaid(booking.ID, true); err != nil {
			return nil, fmt.Errorf("failed to mark booking paid: %w", err)
		}
		logger.Info("payment reconciled",
			zap.String("bookingId", booking.ID),
			zap.String("transactionId", existing.TransactionID),
			zap.Float64("amount", existing.Amount))
		s.dispatchReceipt(booking, existing)
		return existing, nil
	}

	payment.ID = uuid.New().String()
	if payment.Email == "" {
		payment.Email = booking.Email
	}
	if err := s.Payments.Create(&payment); err != nil {
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	if err := s.Bookings.SetPaid(booking.ID, true); err != nil {
		return nil, fmt.Errorf("failed to mark booking paid: %w", err)
	}

	logger.Info("payment reconciled",
		zap.String("bookingId", booking.ID),
		zap.String("transactionId", payment.TransactionID),
		zap.Float64("amount", payment.Amount))

	s.dispatchReceipt(booking, &payment)

	return &payment, nil
}

func (s *DefaultPaymentService) dispatchReceipt(booking *models.Booking, payment *models.Payment) {
	if s.Dispatcher == nil {
		return
	}
	s.Dispatcher.DispatchEmail(models.EmailPayload{
		Kind:          models.EmailKindPaymentReceipt,
		Email:         booking.Email,
		Patient:       booking.Patient,
		TreatmentName: booking.TreatmentName,
		SelectedDate:  booking.SelectedDate,
		Slot:          booking.Slot,
		Amount:        payment.Amount,
		TransactionID: payment.TransactionID,
	})
}

// CreateIntent resolves the booking's treatment price and asks the gateway
// for a payment intent.
func (s *DefaultPaymentService) CreateIntent(bookingID string) (*models.PaymentIntentResponse, error) {
	booking, err := s.Bookings.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	treatment, err := s.Treatments.GetByName(booking.TreatmentName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve treatment: %w", err)
	}
	if treatment == nil || treatment.Price <= 0 {
		return nil, fmt.Errorf("treatment %q has no payable price", booking.TreatmentName)
	}

	amountCents := int64(math.Round(treatment.Price * 100))
	secret, err := s.Gateway.CreateIntent(amountCents, "usd", booking.ID)
	if err != nil {
		return nil, err
	}
	return &models.PaymentIntentResponse{ClientSecret: secret}, nil
}
