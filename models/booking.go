package models

import "time"

// Booking represents a confirmed booking record.
type Booking struct {
	ID            string    `bson:"id" json:"id"`                       // Unique booking identifier (UUID)
	TreatmentName string    `bson:"treatmentName" json:"treatmentName"` // References TreatmentOption.Name
	SelectedDate  string    `bson:"selectedDate" json:"selectedDate"`   // Calendar date string, as sent by the client
	Email         string    `bson:"email" json:"email"`                 // Requester identity
	Slot          string    `bson:"slot" json:"slot"`                   // Must be a member of the treatment's slot template
	Patient       string    `bson:"patient,omitempty" json:"patient,omitempty"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Paid          bool      `bson:"paid" json:"paid"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
