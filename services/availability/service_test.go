package availability

import (
	"testing"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type fakeTreatmentRepo struct {
	catalog []models.TreatmentOption
}

func (f *fakeTreatmentRepo) GetAll() ([]models.TreatmentOption, error) { return f.catalog, nil }

func (f *fakeTreatmentRepo) GetByName(name string) (*models.TreatmentOption, error) {
	for i := range f.catalog {
		if f.catalog[i].Name == name {
			t := f.catalog[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (f *fakeTreatmentRepo) GetNames() ([]models.Specialty, error) {
	var out []models.Specialty
	for _, t := range f.catalog {
		out = append(out, models.Specialty{ID: t.ID, Name: t.Name})
	}
	return out, nil
}

func (f *fakeTreatmentRepo) GetAllWithProjection(bson.M) ([]models.TreatmentOption, error) {
	return f.catalog, nil
}

type fakeBookingLedger struct {
	bookings []models.Booking
}

func (f *fakeBookingLedger) Create(b *models.Booking) error {
	f.bookings = append(f.bookings, *b)
	return nil
}

func (f *fakeBookingLedger) GetByID(id string) (*models.Booking, error) {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			b := f.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (f *fakeBookingLedger) FindByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.SelectedDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingLedger) FindByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range f.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingLedger) Exists(date, email, treatment string) (bool, error) {
	for _, b := range f.bookings {
		if b.SelectedDate == date && b.Email == email && b.TreatmentName == treatment {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingLedger) SetPaid(id string, paid bool) error {
	for i := range f.bookings {
		if f.bookings[i].ID == id {
			f.bookings[i].Paid = paid
			return nil
		}
	}
	return nil
}

func TestOptionsRejectsMissingDate(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Treatments: &fakeTreatmentRepo{catalog: catalogFixture()},
		Bookings:   &fakeBookingLedger{},
	}

	_, err := svc.Options("")
	assert.ErrorIs(t, err, ErrMissingDate)
}

func TestOptionsFiltersLedgerByDate(t *testing.T) {
	ledger := &fakeBookingLedger{bookings: []models.Booking{
		{ID: "b1", TreatmentName: "Braces", SelectedDate: "2024-01-01", Email: "a@x.com", Slot: "10am"},
		{ID: "b2", TreatmentName: "Braces", SelectedDate: "2024-01-02", Email: "a@x.com", Slot: "9am"},
	}}
	svc := &DefaultAvailabilityService{
		Treatments: &fakeTreatmentRepo{catalog: catalogFixture()},
		Bookings:   ledger,
	}

	out, err := svc.Options("2024-01-01")
	require.NoError(t, err)
	require.Len(t, out, 3)
	// Only the Jan 1 booking counts against the template.
	assert.Equal(t, []string{"9am", "11am"}, out[0].Slots)
}

func TestSpecialtiesReturnsNamesOnly(t *testing.T) {
	svc := &DefaultAvailabilityService{
		Treatments: &fakeTreatmentRepo{catalog: catalogFixture()},
		Bookings:   &fakeBookingLedger{},
	}

	names, err := svc.Specialties()
	require.NoError(t, err)
	require.Len(t, names, 3)
	assert.Equal(t, "Braces", names[0].Name)
}
