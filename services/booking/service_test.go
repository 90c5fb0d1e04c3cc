package booking

import (
	"testing"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

type memoryLedger struct {
	bookings     []models.Booking
	failDupOnly  bool // simulate losing the check-then-insert race
	createCalled int
}

func (m *memoryLedger) Create(b *models.Booking) error {
	m.createCalled++
	if m.failDupOnly {
		return bookingRepo.ErrDuplicateBooking
	}
	for _, existing := range m.bookings {
		if existing.SelectedDate == b.SelectedDate && existing.Email == b.Email &&
			existing.TreatmentName == b.TreatmentName {
			return bookingRepo.ErrDuplicateBooking
		}
	}
	m.bookings = append(m.bookings, *b)
	return nil
}

func (m *memoryLedger) GetByID(id string) (*models.Booking, error) {
	for i := range m.bookings {
		if m.bookings[i].ID == id {
			b := m.bookings[i]
			return &b, nil
		}
	}
	return nil, nil
}

func (m *memoryLedger) FindByDate(date string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.SelectedDate == date {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryLedger) FindByEmail(email string) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.Email == email {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memoryLedger) Exists(date, email, treatment string) (bool, error) {
	for _, b := range m.bookings {
		if b.SelectedDate == date && b.Email == email && b.TreatmentName == treatment {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryLedger) SetPaid(id string, paid bool) error { return nil }

type staticCatalog struct {
	treatments []models.TreatmentOption
}

func (s *staticCatalog) GetAll() ([]models.TreatmentOption, error) { return s.treatments, nil }

func (s *staticCatalog) GetByName(name string) (*models.TreatmentOption, error) {
	for i := range s.treatments {
		if s.treatments[i].Name == name {
			t := s.treatments[i]
			return &t, nil
		}
	}
	return nil, nil
}

func (s *staticCatalog) GetNames() ([]models.Specialty, error) { return nil, nil }

func (s *staticCatalog) GetAllWithProjection(bson.M) ([]models.TreatmentOption, error) {
	return s.treatments, nil
}

type recordingDispatcher struct {
	payloads []models.EmailPayload
}

func (r *recordingDispatcher) DispatchEmail(p models.EmailPayload) {
	r.payloads = append(r.payloads, p)
}

func newTestService() (*DefaultBookingService, *memoryLedger, *recordingDispatcher) {
	ledger := &memoryLedger{}
	dispatcher := &recordingDispatcher{}
	svc := &DefaultBookingService{
		Repo: ledger,
		Treatments: &staticCatalog{treatments: []models.TreatmentOption{
			{Name: "Braces", Slots: []string{"9am", "10am", "11am"}, Price: 90},
		}},
		Dispatcher: dispatcher,
	}
	return svc, ledger, dispatcher
}

func validCandidate() models.Booking {
	return models.Booking{
		TreatmentName: "Braces",
		SelectedDate:  "2024-01-01",
		Email:         "a@x.com",
		Slot:          "10am",
		Patient:       "Alice",
	}
}

func TestCreateAdmitsValidBooking(t *testing.T) {
	svc, ledger, dispatcher := newTestService()

	created, err := svc.Create(validCandidate())
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.NotEmpty(t, created.ID)
	assert.False(t, created.Paid)
	require.Len(t, ledger.bookings, 1)

	require.Len(t, dispatcher.payloads, 1)
	assert.Equal(t, models.EmailKindBookingConfirmation, dispatcher.payloads[0].Kind)
	assert.Equal(t, "a@x.com", dispatcher.payloads[0].Email)
	assert.Equal(t, "10am", dispatcher.payloads[0].Slot)
}

func TestCreateRejectsDuplicateTriple(t *testing.T) {
	svc, ledger, _ := newTestService()

	_, err := svc.Create(validCandidate())
	require.NoError(t, err)

	// Same (date, email, treatment), different slot: still a conflict.
	second := validCandidate()
	second.Slot = "11am"
	_, err = svc.Create(second)

	var admission *AdmissionError
	require.ErrorAs(t, err, &admission)
	assert.Equal(t, CodeAlreadyBooked, admission.Code)
	assert.Len(t, ledger.bookings, 1)
}

func TestCreateAllowsSameTripleOnAnotherDate(t *testing.T) {
	svc, ledger, _ := newTestService()

	_, err := svc.Create(validCandidate())
	require.NoError(t, err)

	second := validCandidate()
	second.SelectedDate = "2024-01-02"
	_, err = svc.Create(second)
	require.NoError(t, err)
	assert.Len(t, ledger.bookings, 2)
}

func TestCreateMapsStorageConflictToAlreadyBooked(t *testing.T) {
	// The pre-check passes but the unique index rejects the insert, as when
	// two submissions race.
	svc, ledger, dispatcher := newTestService()
	ledger.failDupOnly = true

	_, err := svc.Create(validCandidate())

	var admission *AdmissionError
	require.ErrorAs(t, err, &admission)
	assert.Equal(t, CodeAlreadyBooked, admission.Code)
	assert.Empty(t, dispatcher.payloads)
}

func TestCreateRejectsUnknownTreatment(t *testing.T) {
	svc, ledger, _ := newTestService()

	candidate := validCandidate()
	candidate.TreatmentName = "Telepathy"
	_, err := svc.Create(candidate)

	var admission *AdmissionError
	require.ErrorAs(t, err, &admission)
	assert.Equal(t, CodeInvalidInput, admission.Code)
	assert.Empty(t, ledger.bookings)
	assert.Zero(t, ledger.createCalled)
}

func TestCreateRejectsSlotOutsideTemplate(t *testing.T) {
	svc, _, _ := newTestService()

	candidate := validCandidate()
	candidate.Slot = "3am"
	_, err := svc.Create(candidate)

	var admission *AdmissionError
	require.ErrorAs(t, err, &admission)
	assert.Equal(t, CodeInvalidInput, admission.Code)
}

func TestCreateRejectsMissingFields(t *testing.T) {
	svc, _, _ := newTestService()

	cases := []struct {
		name   string
		mutate func(*models.Booking)
	}{
		{"no treatment", func(b *models.Booking) { b.TreatmentName = "" }},
		{"no date", func(b *models.Booking) { b.SelectedDate = "" }},
		{"no email", func(b *models.Booking) { b.Email = "" }},
		{"no slot", func(b *models.Booking) { b.Slot = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidate := validCandidate()
			tc.mutate(&candidate)
			_, err := svc.Create(candidate)

			var admission *AdmissionError
			require.ErrorAs(t, err, &admission)
			assert.Equal(t, CodeInvalidInput, admission.Code)
		})
	}
}

func TestGetByIDReportsNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.GetByID("nope")
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListByEmail(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(validCandidate())
	require.NoError(t, err)

	other := validCandidate()
	other.Email = "b@x.com"
	_, err = svc.Create(other)
	require.NoError(t, err)

	mine, err := svc.ListByEmail("a@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "a@x.com", mine[0].Email)
}
