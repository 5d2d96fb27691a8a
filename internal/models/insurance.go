package models

// Insurance is a coverage policy held by a client.
type Insurance struct {
	Base
	ClientID       string  `gorm:"type:uuid;index;not null" json:"client_id"`
	Type           string  `gorm:"not null" json:"type"`
	CoverageAmount float64 `gorm:"not null" json:"coverage_amount"`
}
