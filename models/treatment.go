package models

// TreatmentOption represents a category of medical service with a fixed
// daily slot template. The slot template is a per-day pattern, not tied to
// any calendar date.
type TreatmentOption struct {
	ID    string   `bson:"id" json:"id"`       // Unique treatment identifier
	Name  string   `bson:"name" json:"name"`   // Unique within the catalog
	Slots []string `bson:"slots" json:"slots"` // Ordered time labels, e.g. "10.00 AM - 10.30 AM"
	Price float64  `bson:"price,omitempty" json:"price,omitempty"`
}

// Specialty is the name-only projection of a treatment option used by the
// specialty listing endpoint.
type Specialty struct {
	ID   string `bson:"id" json:"id"`
	Name string `bson:"name" json:"name"`
}
