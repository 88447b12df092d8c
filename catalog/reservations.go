package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/tabletaste/tabletaste-app/models"
)

// ReservationCatalog models the backing reservation database the front-end
// queries but does not own. Lookups never fail hard; the zero result is
// (zero value, false).
type ReservationCatalog interface {
	// Find returns the first reservation whose confirmation code equals code
	// or whose email equals email, both case-insensitive. Empty criteria
	// never match.
	Find(code, email string) (models.Reservation, bool)

	// Update replaces the stored reservation with the same ID.
	Update(res models.Reservation) error

	// UpdateStatus transitions the reservation's status.
	UpdateStatus(id, status string) error

	// FileRequest records a new reservation request and returns it with an
	// assigned ID and confirmation code. Confirmation is asynchronous, so a
	// filed request is not a promise of a table.
	FileRequest(draft models.ReservationDraft) (models.Reservation, error)
}

// MemoryReservations is the session-scoped seed catalog.
type MemoryReservations struct {
	mu           sync.RWMutex
	reservations []models.Reservation
	seq          int
}

// SeedReservations returns the fixed catalog the lookup workflow is
// exercised against.
func SeedReservations() []models.Reservation {
	return []models.Reservation{
		{
			ID:               "RES-2024-001",
			ConfirmationCode: "TT2024001",
			Name:             "John Smith",
			Email:            "john.smith@example.com",
			Phone:            "(555) 123-4567",
			Date:             "2024-02-15",
			Time:             "19:00",
			PartySize:        4,
			SpecialRequests:  "Anniversary dinner, window table if possible",
			Status:           models.ReservationConfirmed,
		},
		{
			ID:               "RES-2024-002",
			ConfirmationCode: "TT2024002",
			Name:             "Sarah Johnson",
			Email:            "sarah.j@example.com",
			Phone:            "(555) 987-6543",
			Date:             "2024-02-20",
			Time:             "18:30",
			PartySize:        2,
			SpecialRequests:  "Vegetarian options preferred",
			Status:           models.ReservationConfirmed,
		},
	}
}

func NewMemoryReservations(seed []models.Reservation) *MemoryReservations {
	c := &MemoryReservations{
		reservations: make([]models.Reservation, len(seed)),
		seq:          len(seed),
	}
	copy(c.reservations, seed)
	return c
}

func (c *MemoryReservations) Find(code, email string) (models.Reservation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, res := range c.reservations {
		if matches(res, code, email) {
			return res, true
		}
	}
	return models.Reservation{}, false
}

func (c *MemoryReservations) Update(updated models.Reservation) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, res := range c.reservations {
		if res.ID == updated.ID {
			updated.CreatedAt = res.CreatedAt
			updated.UpdatedAt = time.Now()
			c.reservations[i] = updated
			return nil
		}
	}
	return fmt.Errorf("reservation %s not found", updated.ID)
}

func (c *MemoryReservations) UpdateStatus(id, status string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.reservations {
		if c.reservations[i].ID == id {
			c.reservations[i].Status = status
			c.reservations[i].UpdatedAt = time.Now()
			return nil
		}
	}
	return fmt.Errorf("reservation %s not found", id)
}

func (c *MemoryReservations) FileRequest(draft models.ReservationDraft) (models.Reservation, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	now := time.Now()
	res := models.Reservation{
		ID:               fmt.Sprintf("RES-%d-%03d", now.Year(), c.seq),
		ConfirmationCode: fmt.Sprintf("TT%d%03d", now.Year(), c.seq),
		Name:             draft.Name,
		Email:            draft.Email,
		Phone:            draft.Phone,
		Date:             draft.Date,
		Time:             draft.Time,
		PartySize:        draft.PartySize,
		SpecialRequests:  draft.SpecialRequests,
		Status:           models.ReservationConfirmed,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	c.reservations = append(c.reservations, res)
	return res, nil
}

func matches(res models.Reservation, code, email string) bool {
	if code != "" && strings.EqualFold(res.ConfirmationCode, code) {
		return true
	}
	if email != "" && strings.EqualFold(res.Email, email) {
		return true
	}
	return false
}
