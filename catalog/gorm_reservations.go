package catalog

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tabletaste/tabletaste-app/models"
	"gorm.io/gorm"
)

// GormReservations backs the reservation catalog with a real database so
// filed requests and modifications survive restarts. The seed rows are
// inserted once into an empty table.
type GormReservations struct {
	DB *gorm.DB
}

func NewGormReservations(db *gorm.DB) (*GormReservations, error) {
	if err := db.AutoMigrate(&models.Reservation{}); err != nil {
		return nil, fmt.Errorf("migrate reservations: %w", err)
	}

	var count int64
	if err := db.Model(&models.Reservation{}).Count(&count).Error; err != nil {
		return nil, err
	}
	if count == 0 {
		seed := SeedReservations()
		if err := db.Create(&seed).Error; err != nil {
			return nil, fmt.Errorf("seed reservations: %w", err)
		}
	}
	return &GormReservations{DB: db}, nil
}

func (c *GormReservations) Find(code, email string) (models.Reservation, bool) {
	var res models.Reservation

	query := c.DB.Model(&models.Reservation{})
	switch {
	case code != "" && email != "":
		query = query.Where("LOWER(confirmation_code) = ? OR LOWER(email) = ?",
			strings.ToLower(code), strings.ToLower(email))
	case code != "":
		query = query.Where("LOWER(confirmation_code) = ?", strings.ToLower(code))
	case email != "":
		query = query.Where("LOWER(email) = ?", strings.ToLower(email))
	default:
		return models.Reservation{}, false
	}

	err := query.Order("created_at ASC").First(&res).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Reservation{}, false
	}
	if err != nil {
		return models.Reservation{}, false
	}
	return res, true
}

func (c *GormReservations) Update(res models.Reservation) error {
	result := c.DB.Model(&models.Reservation{}).
		Where("id = ?", res.ID).
		Updates(map[string]interface{}{
			"name":             res.Name,
			"email":            res.Email,
			"phone":            res.Phone,
			"date":             res.Date,
			"time":             res.Time,
			"party_size":       res.PartySize,
			"special_requests": res.SpecialRequests,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reservation %s not found", res.ID)
	}
	return nil
}

func (c *GormReservations) UpdateStatus(id, status string) error {
	result := c.DB.Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("reservation %s not found", id)
	}
	return nil
}

func (c *GormReservations) FileRequest(draft models.ReservationDraft) (models.Reservation, error) {
	var count int64
	if err := c.DB.Model(&models.Reservation{}).Count(&count).Error; err != nil {
		return models.Reservation{}, err
	}

	now := time.Now()
	res := models.Reservation{
		ID:               fmt.Sprintf("RES-%d-%03d", now.Year(), count+1),
		ConfirmationCode: fmt.Sprintf("TT%d%03d", now.Year(), count+1),
		Name:             draft.Name,
		Email:            draft.Email,
		Phone:            draft.Phone,
		Date:             draft.Date,
		Time:             draft.Time,
		PartySize:        draft.PartySize,
		SpecialRequests:  draft.SpecialRequests,
		Status:           models.ReservationConfirmed,
	}
	if err := c.DB.Create(&res).Error; err != nil {
		return models.Reservation{}, err
	}
	return res, nil
}
