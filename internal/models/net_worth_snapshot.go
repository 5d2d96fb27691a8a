package models

import "time"

// NetWorthSnapshot is a dated patrimony measurement for a client.
type NetWorthSnapshot struct {
	Base
	ClientID string    `gorm:"type:uuid;index;not null" json:"client_id"`
	Value    float64   `gorm:"not null" json:"value"`
	Date     time.Time `gorm:"not null;index" json:"date"`
}
