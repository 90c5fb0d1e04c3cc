package booking

import (
	"errors"
	"fmt"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrBookingNotFound is returned when a lookup by id yields nothing.
var ErrBookingNotFound = errors.New("booking not found")

// BookingService admits booking candidates into the ledger and serves reads.
type BookingService interface {
	// Create admits a booking candidate. At most one booking may exist per
	// (selectedDate, email, treatmentName) triple.
	Create(candidate models.Booking) (*models.Booking, error)
	// GetByID retrieves one booking.
	GetByID(id string) (*models.Booking, error)
	// ListByEmail retrieves every booking placed by the given email.
	ListByEmail(email string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	Treatments treatmentRepo.TreatmentRepository
	Dispatcher notification.Dispatcher
}

// Create validates the candidate against the catalog, checks for a conflict
// and inserts. The pre-insert existence check is an early exit only; the
// storage-layer unique index is the authoritative conflict signal, so two
// concurrent submissions of the same triple still resolve to one winner.
func (s *DefaultBookingService) Create(candidate models.Booking) (*models.Booking, error) {
	logger := utils.GetLogger()

	if candidate.TreatmentName == "" || candidate.SelectedDate == "" ||
		candidate.Email == "" || candidate.Slot == "" {
		return nil, NewInvalidInputError("treatmentName, selectedDate, email and slot are required")
	}

	treatment, err := s.Treatments.GetByName(candidate.TreatmentName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve treatment: %w", err)
	}
	if treatment == nil {
		return nil, NewInvalidInputError(fmt.Sprintf("unknown treatment %q", candidate.TreatmentName))
	}
	if !containsSlot(treatment.Slots, candidate.Slot) {
		return nil, NewInvalidInputError(
			fmt.Sprintf("slot %q is not part of the %s schedule", candidate.Slot, treatment.Name))
	}

	exists, err := s.Repo.Exists(candidate.SelectedDate, candidate.Email, candidate.TreatmentName)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing booking: %w", err)
	}
	if exists {
		return nil, NewAlreadyBookedError(candidate.SelectedDate)
	}

	candidate.ID = uuid.New().String()
	candidate.Paid = false

	if err := s.Repo.Create(&candidate); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			return nil, NewAlreadyBookedError(candidate.SelectedDate)
		}
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	logger.Info("booking admitted",
		zap.String("id", candidate.ID),
		zap.String("treatment", candidate.TreatmentName),
		zap.String("date", candidate.SelectedDate),
		zap.String("slot", candidate.Slot))

	if s.Dispatcher != nil {
		s.Dispatcher.DispatchEmail(models.EmailPayload{
			Kind:          models.EmailKindBookingConfirmation,
			Email:         candidate.Email,
			Patient:       candidate.Patient,
			TreatmentName: candidate.TreatmentName,
			SelectedDate:  candidate.SelectedDate,
			Slot:          candidate.Slot,
		})
	}

	return &candidate, nil
}

// GetByID retrieves one booking, reporting a distinct not-found error.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// ListByEmail retrieves every booking placed by the given email.
func (s *DefaultBookingService) ListByEmail(email string) ([]models.Booking, error) {
	return s.Repo.FindByEmail(email)
}

func containsSlot(slots []string, slot string) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
