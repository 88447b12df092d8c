package reservations

import (
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/tabletaste/tabletaste-app/catalog"
	"github.com/tabletaste/tabletaste-app/models"
	"github.com/tabletaste/tabletaste-app/notify"
	"github.com/tabletaste/tabletaste-app/validation"
)

// Workflow states. Lookup moves Idle to Found; BeginModify moves Found to
// Modifying; cancellation, a successful update, or cancelling the
// modification all return to Idle.
const (
	StateIdle      = "idle"
	StateFound     = "found"
	StateModifying = "modifying"
)

// Party size bounds per booking.
const (
	MinPartySize = 1
	MaxPartySize = 8
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// WorkflowState is the transient session state exposed to the UI layer.
type WorkflowState struct {
	State string              `json:"state"`
	Found *models.Reservation `json:"found,omitempty"`
}

// Manager drives the reservation lookup, create, modify and cancel workflow
// against an injected catalog. It never persists anything itself; the
// catalog models the remote authoritative store.
type Manager struct {
	mu       sync.Mutex
	catalog  catalog.ReservationCatalog
	notifier notify.Notifier

	state string
	found *models.Reservation
	draft models.ReservationDraft
}

func NewManager(cat catalog.ReservationCatalog, notifier notify.Notifier) *Manager {
	if notifier == nil {
		notifier = notify.Discard{}
	}
	return &Manager{
		catalog:  cat,
		notifier: notifier,
		state:    StateIdle,
		draft:    models.BlankDraft(),
	}
}

// State returns the current workflow state with a copy of the found
// reservation, if any.
func (m *Manager) State() WorkflowState {
	m.mu.Lock()
	defer m.mu.Unlock()
	ws := WorkflowState{State: m.state}
	if m.found != nil {
		res := *m.found
		ws.Found = &res
	}
	return ws
}

// Draft returns the current modification draft.
func (m *Manager) Draft() models.ReservationDraft {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.draft
}

// Lookup finds a reservation by confirmation code or email, either
// criterion sufficing, both matched case-insensitively. At least one must
// be given. A miss resets the workflow to Idle and returns ErrNotFound; a
// validation failure leaves the state untouched.
func (m *Manager) Lookup(confirmationCode, email string) (models.Reservation, error) {
	if confirmationCode == "" && email == "" {
		verr := (&validation.Error{}).Add("criteria", "provide either confirmation number or email address")
		m.notifier.Notify(notify.KindError, "Please provide either confirmation number or email address")
		return models.Reservation{}, verr
	}

	res, ok := m.catalog.Find(confirmationCode, email)

	m.mu.Lock()
	if !ok {
		m.state = StateIdle
		m.found = nil
		m.mu.Unlock()
		m.notifier.Notify(notify.KindError, "No reservation found with the provided information")
		return models.Reservation{}, ErrNotFound
	}
	m.state = StateFound
	found := res
	m.found = &found
	m.mu.Unlock()

	m.notifier.Notify(notify.KindSuccess, "Reservation found successfully!")
	return res, nil
}

// BeginModify pre-fills a draft from the found reservation and enters
// Modifying. Valid only from Found.
func (m *Manager) BeginModify() (models.ReservationDraft, error) {
	m.mu.Lock()
	if m.state != StateFound || m.found == nil {
		m.mu.Unlock()
		return models.ReservationDraft{}, ErrInvalidState
	}
	m.draft = models.ReservationDraft{
		Name:            m.found.Name,
		Email:           m.found.Email,
		Phone:           m.found.Phone,
		Date:            m.found.Date,
		Time:            m.found.Time,
		PartySize:       m.found.PartySize,
		SpecialRequests: m.found.SpecialRequests,
	}
	m.state = StateModifying
	draft := m.draft
	m.mu.Unlock()

	m.notifier.Notify(notify.KindInfo, "Reservation details loaded for modification")
	return draft, nil
}

// CancelModify discards the draft and returns to Idle. Valid only from
// Modifying.
func (m *Manager) CancelModify() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateModifying {
		return ErrInvalidState
	}
	m.state = StateIdle
	m.found = nil
	m.draft = models.BlankDraft()
	return nil
}

// Submit validates the draft and either updates the found reservation
// (isModifying) or files a new reservation request. Validation failures
// leave the workflow state unchanged. On success the draft resets to blank
// defaults and, when modifying, the workflow returns to Idle.
func (m *Manager) Submit(draft models.ReservationDraft, isModifying bool) (models.Reservation, error) {
	if err := ValidateDraft(draft); err != nil {
		m.notifier.Notify(notify.KindError, err.Error())
		return models.Reservation{}, err
	}

	if isModifying {
		return m.submitModification(draft)
	}

	res, err := m.catalog.FileRequest(draft)
	if err != nil {
		// Filing is best-effort by design: confirmation is asynchronous,
		// so the user still gets the submission acknowledgement.
		res = models.Reservation{
			Name:            draft.Name,
			Email:           draft.Email,
			Phone:           draft.Phone,
			Date:            draft.Date,
			Time:            draft.Time,
			PartySize:       draft.PartySize,
			SpecialRequests: draft.SpecialRequests,
			Status:          models.ReservationConfirmed,
		}
	}

	m.mu.Lock()
	m.draft = models.BlankDraft()
	m.mu.Unlock()

	m.notifier.Notify(notify.KindSuccess, "Reservation request submitted successfully! We will confirm your booking shortly.")
	return res, nil
}

func (m *Manager) submitModification(draft models.ReservationDraft) (models.Reservation, error) {
	m.mu.Lock()
	if m.state != StateModifying || m.found == nil {
		m.mu.Unlock()
		return models.Reservation{}, ErrInvalidState
	}
	updated := *m.found
	m.mu.Unlock()

	updated.Name = draft.Name
	updated.Email = draft.Email
	updated.Phone = draft.Phone
	updated.Date = draft.Date
	updated.Time = draft.Time
	updated.PartySize = draft.PartySize
	updated.SpecialRequests = draft.SpecialRequests

	if err := m.catalog.Update(updated); err != nil {
		m.notifier.Notify(notify.KindError, "Could not update the reservation, please try again")
		return models.Reservation{}, err
	}

	m.mu.Lock()
	m.state = StateIdle
	m.found = nil
	m.draft = models.BlankDraft()
	m.mu.Unlock()

	m.notifier.Notify(notify.KindSuccess,
		fmt.Sprintf("Reservation %s has been updated successfully!", updated.ConfirmationCode))
	return updated, nil
}

// Cancel cancels the found reservation. Valid only while a found
// reservation matches id.
func (m *Manager) Cancel(id string) error {
	m.mu.Lock()
	if m.state == StateIdle || m.found == nil || m.found.ID != id {
		m.mu.Unlock()
		return ErrInvalidState
	}
	code := m.found.ConfirmationCode
	m.mu.Unlock()

	if err := m.catalog.UpdateStatus(id, models.ReservationCancelled); err != nil {
		m.notifier.Notify(notify.KindError, "Could not cancel the reservation, please try again")
		return err
	}

	m.mu.Lock()
	m.state = StateIdle
	m.found = nil
	m.draft = models.BlankDraft()
	m.mu.Unlock()

	m.notifier.Notify(notify.KindSuccess,
		fmt.Sprintf("Reservation %s has been cancelled successfully", code))
	return nil
}

// ValidateDraft applies the reservation form rules: required fields, email
// shape, an offered time slot, party size bounds, and a date no earlier
// than today (date-only comparison).
func ValidateDraft(draft models.ReservationDraft) error {
	verr := &validation.Error{}
	if draft.Name == "" {
		verr.Add("name", "required")
	}
	if draft.Email == "" {
		verr.Add("email", "required")
	} else if !emailPattern.MatchString(draft.Email) {
		verr.Add("email", "invalid email")
	}
	if draft.Phone == "" {
		verr.Add("phone", "required")
	}
	if draft.Time == "" {
		verr.Add("time", "required")
	} else if !IsValidTimeSlot(draft.Time) {
		verr.Add("time", "not an offered time slot")
	}
	if draft.PartySize == 0 {
		verr.Add("party_size", "required")
	} else if draft.PartySize < MinPartySize || draft.PartySize > MaxPartySize {
		verr.Add("party_size", fmt.Sprintf("must be between %d and %d", MinPartySize, MaxPartySize))
	}
	if draft.Date == "" {
		verr.Add("date", "required")
	} else if date, err := time.Parse(models.DateLayout, draft.Date); err != nil {
		verr.Add("date", "invalid date")
	} else {
		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		if date.Before(today) {
			verr.Add("date", "date in past")
		}
	}
	return verr.OrNil()
}
