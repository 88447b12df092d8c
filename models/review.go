package models

type Review struct {
	ID           uint   `json:"id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
	Date         string `json:"date"`
	Verified     bool   `json:"verified"`
}
