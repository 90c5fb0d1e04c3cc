package availability

import (
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []models.TreatmentOption {
	return []models.TreatmentOption{
		{ID: "t1", Name: "Braces", Slots: []string{"9am", "10am", "11am"}, Price: 90},
		{ID: "t2", Name: "Teeth Whitening", Slots: []string{"9am", "1pm"}, Price: 120},
		{ID: "t3", Name: "Cavity Protection", Slots: []string{"8am"}, Price: 60},
	}
}

func TestComputePreservesLengthAndOrder(t *testing.T) {
	catalog := catalogFixture()
	bookings := []models.Booking{
		{TreatmentName: "Braces", SelectedDate: "2024-01-01", Slot: "10am"},
		{TreatmentName: "Teeth Whitening", SelectedDate: "2024-01-01", Slot: "9am"},
	}

	out := Compute("2024-01-01", catalog, bookings)

	require.Len(t, out, len(catalog))
	for i := range catalog {
		assert.Equal(t, catalog[i].Name, out[i].Name)
		assert.Equal(t, catalog[i].Price, out[i].Price)
	}
}

func TestComputeNoBookingsOnDate(t *testing.T) {
	catalog := catalogFixture()
	bookings := []models.Booking{
		{TreatmentName: "Braces", SelectedDate: "2024-01-01", Slot: "10am"},
	}

	out := Compute("2024-01-02", catalog, bookings)

	require.Len(t, out, len(catalog))
	for i := range catalog {
		assert.Equal(t, catalog[i].Slots, out[i].Slots)
	}
}

func TestComputeSubtractsBookedSlots(t *testing.T) {
	catalog := []models.TreatmentOption{
		{Name: "Braces", Slots: []string{"9am", "10am", "11am"}},
	}
	bookings := []models.Booking{
		{TreatmentName: "Braces", SelectedDate: "2024-01-01", Slot: "10am"},
	}

	out := Compute("2024-01-01", catalog, bookings)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"9am", "11am"}, out[0].Slots)

	out = Compute("2024-01-02", catalog, bookings)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"9am", "10am", "11am"}, out[0].Slots)
}

func TestComputeCollapsesDuplicateClaims(t *testing.T) {
	catalog := []models.TreatmentOption{
		{Name: "Braces", Slots: []string{"9am", "10am"}},
	}
	// Two different emails claiming the same slot still remove it once.
	bookings := []models.Booking{
		{TreatmentName: "Braces", SelectedDate: "2024-01-01", Slot: "9am", Email: "a@x.com"},
		{TreatmentName: "Braces", SelectedDate: "2024-01-01", Slot: "9am", Email: "b@x.com"},
	}

	out := Compute("2024-01-01", catalog, bookings)
	require.Len(t, out, 1)
	assert.Equal(t, []string{"10am"}, out[0].Slots)
}

func TestComputeIgnoresOtherTreatments(t *testing.T) {
	catalog := catalogFixture()
	bookings := []models.Booking{
		{TreatmentName: "Braces", SelectedDate: "2024-01-01", Slot: "9am"},
	}

	out := Compute("2024-01-01", catalog, bookings)

	assert.Equal(t, []string{"10am", "11am"}, out[0].Slots)
	assert.Equal(t, []string{"9am", "1pm"}, out[1].Slots)
	assert.Equal(t, []string{"8am"}, out[2].Slots)
}

func TestComputeIsPureAndIdempotent(t *testing.T) {
	catalog := catalogFixture()
	bookings := []models.Booking{
		{TreatmentName: "Braces", SelectedDate: "2024-01-01", Slot: "10am"},
	}

	first := Compute("2024-01-01", catalog, bookings)
	second := Compute("2024-01-01", catalog, bookings)

	assert.Equal(t, first, second)
	// Inputs untouched.
	assert.Equal(t, []string{"9am", "10am", "11am"}, catalog[0].Slots)
	assert.Equal(t, "10am", bookings[0].Slot)
}

func TestComputeEmptyCatalog(t *testing.T) {
	out := Compute("2024-01-01", nil, []models.Booking{
		{TreatmentName: "Braces", SelectedDate: "2024-01-01", Slot: "10am"},
	})
	assert.Len(t, out, 0)
}
