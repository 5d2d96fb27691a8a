package models

import "time"

// Goal is a named financial target a client is tracking toward.
// At most one goal exists per (client, type) pair; the composite unique
// index backs the create-or-overwrite policy and closes the concurrent
// double-insert race.
type Goal struct {
	Base
	ClientID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_goals_client_type" json:"client_id"`
	Type        string    `gorm:"not null;uniqueIndex:idx_goals_client_type" json:"type"`
	Subtype     string    `json:"subtype,omitempty"`
	TargetValue float64   `gorm:"not null" json:"target_value"`
	TargetDate  time.Time `gorm:"not null" json:"target_date"`
	Version     int32     `gorm:"not null" json:"version"`
}
