package reservations

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tabletaste/tabletaste-app/catalog"
	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/validation"
)

func newTestManager() (*Manager, *catalog.MemoryReservations) {
	cat := catalog.NewMemoryReservations(catalog.SeedReservations())
	return NewManager(cat, nil), cat
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format(models.DateLayout)
}

func validDraft() models.ReservationDraft {
	return models.ReservationDraft{
		Name:      "Alice Example",
		Email:     "alice@example.com",
		Phone:     "(555) 000-1111",
		Date:      futureDate(),
		Time:      "19:00",
		PartySize: 2,
	}
}

func TestLookupByConfirmationCode(t *testing.T) {
	m, _ := newTestManager()

	res, err := m.Lookup("TT2024001", "")

	assert.NoError(t, err)
	assert.Equal(t, "john.smith@example.com", res.Email)
	assert.Equal(t, StateFound, m.State().State)
}

func TestLookupIsCaseInsensitive(t *testing.T) {
	m, _ := newTestManager()

	_, err := m.Lookup("tt2024001", "")
	assert.NoError(t, err)

	_, err = m.Lookup("", "SARAH.J@EXAMPLE.COM")
	assert.NoError(t, err)
}

func TestLookupMissReturnsToIdle(t *testing.T) {
	m, _ := newTestManager()
	m.Lookup("TT2024001", "")

	_, err := m.Lookup("BOGUS", "")

	assert.ErrorIs(t, err, ErrNotFound)
	state := m.State()
	assert.Equal(t, StateIdle, state.State)
	assert.Nil(t, state.Found)
}

func TestLookupRequiresCriteria(t *testing.T) {
	m, _ := newTestManager()

	_, err := m.Lookup("", "")

	var verr *validation.Error
	assert.ErrorAs(t, err, &verr)
	assert.Equal(t, StateIdle, m.State().State)
}

func TestBeginModifyRequiresFound(t *testing.T) {
	m, _ := newTestManager()

	_, err := m.BeginModify()
	assert.ErrorIs(t, err, ErrInvalidState)

	m.Lookup("TT2024001", "")
	draft, err := m.BeginModify()
	assert.NoError(t, err)
	assert.Equal(t, "John Smith", draft.Name)
	assert.Equal(t, 4, draft.PartySize)
	assert.Equal(t, StateModifying, m.State().State)
}

func TestCancelModifyDiscardsDraft(t *testing.T) {
	m, _ := newTestManager()
	m.Lookup("TT2024001", "")
	m.BeginModify()

	err := m.CancelModify()

	assert.NoError(t, err)
	state := m.State()
	assert.Equal(t, StateIdle, state.State)
	assert.Nil(t, state.Found)
	assert.Equal(t, models.BlankDraft(), m.Draft())
}

func TestCancelModifyOutsideModifyingFails(t *testing.T) {
	m, _ := newTestManager()

	assert.ErrorIs(t, m.CancelModify(), ErrInvalidState)
}

func TestSubmitValidation(t *testing.T) {
	m, _ := newTestManager()

	tests := []struct {
		name   string
		mutate func(*models.ReservationDraft)
		field  string
		reason string
	}{
		{"missing name", func(d *models.ReservationDraft) { d.Name = "" }, "name", "required"},
		{"bad email", func(d *models.ReservationDraft) { d.Email = "bad-email" }, "email", "invalid email"},
		{"missing phone", func(d *models.ReservationDraft) { d.Phone = "" }, "phone", "required"},
		{"missing date", func(d *models.ReservationDraft) { d.Date = "" }, "date", "required"},
		{"past date", func(d *models.ReservationDraft) {
			d.Date = time.Now().AddDate(0, 0, -1).Format(models.DateLayout)
		}, "date", "date in past"},
		{"missing time", func(d *models.ReservationDraft) { d.Time = "" }, "time", "required"},
		{"off-grid time", func(d *models.ReservationDraft) { d.Time = "16:45" }, "time", "not an offered time slot"},
		{"party too large", func(d *models.ReservationDraft) { d.PartySize = 9 }, "party_size", "must be between 1 and 8"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			draft := validDraft()
			tc.mutate(&draft)

			_, err := m.Submit(draft, false)

			var verr *validation.Error
			assert.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Fields[0].Field)
			assert.Equal(t, tc.reason, verr.Fields[0].Reason)
			// Failures never move the workflow.
			assert.Equal(t, StateIdle, m.State().State)
		})
	}
}

func TestSubmitTodayIsAccepted(t *testing.T) {
	m, _ := newTestManager()
	draft := validDraft()
	draft.Date = time.Now().Format(models.DateLayout)

	_, err := m.Submit(draft, false)

	assert.NoError(t, err)
}

func TestSubmitCreatesRequestAndResetsDraft(t *testing.T) {
	m, cat := newTestManager()

	res, err := m.Submit(validDraft(), false)

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ConfirmationCode)
	assert.Equal(t, models.ReservationConfirmed, res.Status)
	assert.Equal(t, models.BlankDraft(), m.Draft())

	// The filed request is findable afterwards.
	found, ok := cat.Find(res.ConfirmationCode, "")
	assert.True(t, ok)
	assert.Equal(t, "Alice Example", found.Name)
}

func TestSubmitModificationUpdatesCatalog(t *testing.T) {
	m, cat := newTestManager()
	m.Lookup("TT2024001", "")
	draft, _ := m.BeginModify()

	draft.PartySize = 6
	draft.Date = futureDate()
	updated, err := m.Submit(draft, true)

	assert.NoError(t, err)
	assert.Equal(t, 6, updated.PartySize)
	assert.Equal(t, StateIdle, m.State().State)

	stored, ok := cat.Find("TT2024001", "")
	assert.True(t, ok)
	assert.Equal(t, 6, stored.PartySize)
}

func TestSubmitModifyingWithoutModifyStateFails(t *testing.T) {
	m, _ := newTestManager()

	_, err := m.Submit(validDraft(), true)

	assert.ErrorIs(t, err, ErrInvalidState)
}

func TestCancelReservation(t *testing.T) {
	m, cat := newTestManager()
	res, _ := m.Lookup("TT2024001", "")

	err := m.Cancel(res.ID)

	assert.NoError(t, err)
	assert.Equal(t, StateIdle, m.State().State)
	stored, _ := cat.Find("TT2024001", "")
	assert.Equal(t, models.ReservationCancelled, stored.Status)
}

func TestCancelRequiresMatchingFoundReservation(t *testing.T) {
	m, _ := newTestManager()

	assert.ErrorIs(t, m.Cancel("RES-2024-001"), ErrInvalidState)

	m.Lookup("TT2024001", "")
	assert.ErrorIs(t, m.Cancel("RES-2024-002"), ErrInvalidState)
}
