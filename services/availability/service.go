package availability

import (
	"errors"

	bookingRepo "doctorsportal/database/repository/booking"
	treatmentRepo "doctorsportal/database/repository/treatment"
	"doctorsportal/models"
	"doctorsportal/utils"

	"go.uber.org/zap"
)

// ErrMissingDate is returned when the availability query carries no date.
// The legacy portal silently computed against an empty booking set in that
// case; we reject instead so callers cannot mistake a full template for a
// real answer.
var ErrMissingDate = errors.New("a date is required to compute availability")

// AvailabilityService exposes the remaining-slots view of the catalog.
type AvailabilityService interface {
	// Options returns every treatment option with its slots reduced to
	// those still free on the given date.
	Options(date string) ([]models.TreatmentOption, error)
	// Specialties returns the name-only projection of the catalog.
	Specialties() ([]models.Specialty, error)
}

// DefaultAvailabilityService is the production implementation.
type DefaultAvailabilityService struct {
	Treatments treatmentRepo.TreatmentRepository
	Bookings   bookingRepo.BookingRepository
}

// Options fetches the catalog and the date's slice of the booking ledger,
// then subtracts claimed slots per treatment.
func (s *DefaultAvailabilityService) Options(date string) ([]models.TreatmentOption, error) {
	logger := utils.GetLogger()

	if date == "" {
		return nil, ErrMissingDate
	}

	catalog, err := s.Treatments.GetAll()
	if err != nil {
		return nil, err
	}

	booked, err := s.Bookings.FindByDate(date)
	if err != nil {
		return nil, err
	}

	logger.Debug("computing availability",
		zap.String("date", date),
		zap.Int("treatments", len(catalog)),
		zap.Int("bookings", len(booked)))

	return Compute(date, catalog, booked), nil
}

// Specialties returns the name-only projection of the catalog.
func (s *DefaultAvailabilityService) Specialties() ([]models.Specialty, error) {
	return s.Treatments.GetNames()
}
