package doctorRepo

import (
	"errors"

	"doctorsportal/models"
)

// ErrNotFound is returned when an operation targets a doctor that does not exist.
var ErrNotFound = errors.New("doctor not found")

// DoctorRepository defines methods for doctor-registry data access.
type DoctorRepository interface {
	// Create inserts a new doctor record.
	Create(doctor *models.Doctor) error
	// GetAll retrieves all doctors in registration order.
	GetAll() ([]models.Doctor, error)
	// Delete removes a doctor record by its ID.
	Delete(id string) error
}
