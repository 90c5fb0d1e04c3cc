package treatmentRepo

import (
	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// TreatmentRepository defines methods for treatment-catalog data access.
// The catalog is seeded out of band and read-only from the service layer.
type TreatmentRepository interface {
	// GetAll retrieves the full catalog, preserving insertion order.
	GetAll() ([]models.TreatmentOption, error)
	// GetByName retrieves a treatment option by its unique name.
	GetByName(name string) (*models.TreatmentOption, error)
	// GetNames retrieves the name-only projection of the catalog.
	GetNames() ([]models.Specialty, error)
	// GetAllWithProjection retrieves all treatment options with an optional projection.
	GetAllWithProjection(projection bson.M) ([]models.TreatmentOption, error)
}
