package doctor

import (
	"errors"
	"fmt"

	doctorRepo "doctorsportal/database/repository/doctor"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrDoctorNotFound is returned when a removal targets an unknown doctor.
var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorService manages the admin-gated doctor registry.
type DoctorService interface {
	// Register adds a doctor to the registry.
	Register(doctor models.Doctor) (*models.Doctor, error)
	// GetAll retrieves all doctors in registration order.
	GetAll() ([]models.Doctor, error)
	// Remove deletes a doctor by id.
	Remove(id string) error
}

// DefaultDoctorService is the production implementation.
type DefaultDoctorService struct {
	Repo doctorRepo.DoctorRepository
}

// Register adds a doctor to the registry.
func (s *DefaultDoctorService) Register(doctor models.Doctor) (*models.Doctor, error) {
	logger := utils.GetLogger()

	if doctor.Name == "" || doctor.Email == "" || doctor.Specialty == "" {
		return nil, fmt.Errorf("name, email and specialty are required")
	}

	doctor.ID = uuid.New().String()
	if err := s.Repo.Create(&doctor); err != nil {
		return nil, fmt.Errorf("failed to register doctor: %w", err)
	}

	logger.Info("doctor registered",
		zap.String("id", doctor.ID),
		zap.String("specialty", doctor.Specialty))
	return &doctor, nil
}

// GetAll retrieves all doctors in registration order.
func (s *DefaultDoctorService) GetAll() ([]models.Doctor, error) {
	return s.Repo.GetAll()
}

// Remove deletes a doctor by id.
func (s *DefaultDoctorService) Remove(id string) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, doctorRepo.ErrNotFound) {
			return ErrDoctorNotFound
		}
		return fmt.Errorf("failed to remove doctor: %w", err)
	}
	return nil
}
