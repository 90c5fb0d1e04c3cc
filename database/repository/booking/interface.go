package bookingRepo

import (
	"errors"

	"doctorsportal/models"
)

// ErrDuplicateBooking is returned by Create when the storage-layer unique
// index on (selectedDate, email, treatmentName) rejects the insert. It is the
// authoritative double-booking signal; the service-level pre-check is only an
// early exit.
var ErrDuplicateBooking = errors.New("booking already exists for this date, email and treatment")

// BookingRepository defines methods for booking-ledger data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// FindByDate retrieves all bookings whose selectedDate equals date.
	FindByDate(date string) ([]models.Booking, error)
	// FindByEmail retrieves all bookings placed by the given email.
	FindByEmail(email string) ([]models.Booking, error)
	// Exists reports whether a booking with the same conflict triple exists.
	Exists(date, email, treatmentName string) (bool, error)
	// SetPaid flips the paid flag on the referenced booking.
	SetPaid(id string, paid bool) error
}
