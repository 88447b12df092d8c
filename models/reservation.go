package models

import "time"

const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// DateLayout is the wire format for reservation dates.
const DateLayout = "2006-01-02"

type Reservation struct {
	ID               string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ConfirmationCode string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"confirmation_code"`
	Name             string    `gorm:"type:varchar(255);not null" json:"name"`
	Email            string    `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone            string    `gorm:"type:varchar(30);not null" json:"phone"`
	Date             string    `gorm:"type:varchar(10);not null" json:"date"`
	Time             string    `gorm:"type:varchar(5);not null" json:"time"`
	PartySize        int       `gorm:"not null;default:2" json:"party_size"`
	SpecialRequests  string    `gorm:"type:text" json:"special_requests"`
	Status           string    `gorm:"type:varchar(20);not null;default:'confirmed'" json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// ReservationDraft is the mutable form state submitted by the client.
type ReservationDraft struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	PartySize       int    `json:"party_size"`
	SpecialRequests string `json:"special_requests"`
}

// BlankDraft returns the draft defaults used after a successful submission.
func BlankDraft() ReservationDraft {
	return ReservationDraft{PartySize: 2}
}
