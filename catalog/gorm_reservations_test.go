package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tabletaste/tabletaste-app/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupGormCatalog(t *testing.T) *GormReservations {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	t.Cleanup(func() {
		db.Exec("DELETE FROM reservations")
	})
	cat, err := NewGormReservations(db)
	if err != nil {
		t.Fatalf("failed to build catalog: %v", err)
	}
	return cat
}

func TestGormCatalogSeedsOnce(t *testing.T) {
	cat := setupGormCatalog(t)

	res, ok := cat.Find("TT2024001", "")
	assert.True(t, ok)
	assert.Equal(t, "John Smith", res.Name)

	// Re-opening over the same DB must not duplicate the seed.
	again, err := NewGormReservations(cat.DB)
	assert.NoError(t, err)
	var count int64
	again.DB.Model(&models.Reservation{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestGormCatalogFindIsCaseInsensitive(t *testing.T) {
	cat := setupGormCatalog(t)

	_, ok := cat.Find("tt2024001", "")
	assert.True(t, ok)

	_, ok = cat.Find("", "SARAH.J@EXAMPLE.COM")
	assert.True(t, ok)

	_, ok = cat.Find("", "")
	assert.False(t, ok)

	_, ok = cat.Find("BOGUS", "nobody@example.com")
	assert.False(t, ok)
}

func TestGormCatalogUpdateAndStatus(t *testing.T) {
	cat := setupGormCatalog(t)
	res, _ := cat.Find("TT2024002", "")

	res.PartySize = 5
	res.SpecialRequests = "Window table"
	assert.NoError(t, cat.Update(res))

	stored, _ := cat.Find("TT2024002", "")
	assert.Equal(t, 5, stored.PartySize)
	assert.Equal(t, "Window table", stored.SpecialRequests)

	assert.NoError(t, cat.UpdateStatus(res.ID, models.ReservationCancelled))
	stored, _ = cat.Find("TT2024002", "")
	assert.Equal(t, models.ReservationCancelled, stored.Status)

	res.ID = "RES-MISSING"
	assert.Error(t, cat.Update(res))
	assert.Error(t, cat.UpdateStatus("RES-MISSING", models.ReservationCancelled))
}

func TestGormCatalogFileRequest(t *testing.T) {
	cat := setupGormCatalog(t)

	res, err := cat.FileRequest(models.ReservationDraft{
		Name:      "Alice Example",
		Email:     "alice@example.com",
		Phone:     "(555) 000-1111",
		Date:      "2030-06-01",
		Time:      "20:00",
		PartySize: 3,
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, res.ConfirmationCode)

	found, ok := cat.Find("", "alice@example.com")
	assert.True(t, ok)
	assert.Equal(t, res.ID, found.ID)
}
