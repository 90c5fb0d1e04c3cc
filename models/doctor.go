package models

import "time"

// Doctor represents an entry in the admin-managed doctor registry.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Specialty string    `bson:"specialty" json:"specialty"` // References TreatmentOption.Name
	Image     string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
