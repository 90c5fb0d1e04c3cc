package availability

import "doctorsportal/models"

// Compute returns the catalog with each treatment's slot template reduced to
// the slots not yet claimed by a booking on the given date. It is a pure
// transformation: the output preserves catalog order and slot order, output
// length always equals catalog length, and neither input is mutated.
func Compute(date string, catalog []models.TreatmentOption, bookings []models.Booking) []models.TreatmentOption {
	claimed := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.SelectedDate != date {
			continue
		}
		slots, ok := claimed[b.TreatmentName]
		if !ok {
			slots = make(map[string]struct{})
			claimed[b.TreatmentName] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	out := make([]models.TreatmentOption, len(catalog))
	for i, t := range catalog {
		out[i] = t
		taken := claimed[t.Name]
		remaining := make([]string, 0, len(t.Slots))
		for _, slot := range t.Slots {
			if _, booked := taken[slot]; !booked {
				remaining = append(remaining, slot)
			}
		}
		out[i].Slots = remaining
	}
	return out
}
