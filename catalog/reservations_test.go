package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabletaste/tabletaste-app/models"
)

func TestMemoryFindByCodeAndEmail(t *testing.T) {
	c := NewMemoryReservations(SeedReservations())

	res, ok := c.Find("TT2024001", "")
	assert.True(t, ok)
	assert.Equal(t, "John Smith", res.Name)

	res, ok = c.Find("", "sarah.j@example.com")
	assert.True(t, ok)
	assert.Equal(t, "Sarah Johnson", res.Name)

	// Case-insensitive on both criteria.
	_, ok = c.Find("tt2024002", "")
	assert.True(t, ok)
	_, ok = c.Find("", "JOHN.SMITH@example.com")
	assert.True(t, ok)

	_, ok = c.Find("BOGUS", "")
	assert.False(t, ok)
	_, ok = c.Find("", "")
	assert.False(t, ok)
}

func TestMemoryUpdate(t *testing.T) {
	c := NewMemoryReservations(SeedReservations())
	res, _ := c.Find("TT2024001", "")

	res.PartySize = 8
	assert.NoError(t, c.Update(res))

	stored, _ := c.Find("TT2024001", "")
	assert.Equal(t, 8, stored.PartySize)

	res.ID = "RES-MISSING"
	assert.Error(t, c.Update(res))
}

func TestMemoryUpdateStatus(t *testing.T) {
	c := NewMemoryReservations(SeedReservations())

	assert.NoError(t, c.UpdateStatus("RES-2024-001", models.ReservationCancelled))
	stored, _ := c.Find("TT2024001", "")
	assert.Equal(t, models.ReservationCancelled, stored.Status)

	assert.Error(t, c.UpdateStatus("RES-MISSING", models.ReservationCancelled))
}

func TestMemoryFileRequestAssignsIdentifiers(t *testing.T) {
	c := NewMemoryReservations(SeedReservations())

	res, err := c.FileRequest(models.ReservationDraft{
		Name:      "Alice Example",
		Email:     "alice@example.com",
		Phone:     "(555) 000-1111",
		Date:      "2030-06-01",
		Time:      "19:30",
		PartySize: 3,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ID)
	assert.NotEmpty(t, res.ConfirmationCode)
	assert.Equal(t, models.ReservationConfirmed, res.Status)

	found, ok := c.Find(res.ConfirmationCode, "")
	assert.True(t, ok)
	assert.Equal(t, "Alice Example", found.Name)

	// Codes keep incrementing.
	second, _ := c.FileRequest(models.ReservationDraft{Name: "Bob"})
	assert.NotEqual(t, res.ConfirmationCode, second.ConfirmationCode)
}
