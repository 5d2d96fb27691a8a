package models

import "time"

// EventFrequency describes how often an event's value recurs.
type EventFrequency string

// Event frequencies.
const (
	EventFrequencySingle  EventFrequency = "single"
	EventFrequencyMonthly EventFrequency = "monthly"
	EventFrequencyAnnual  EventFrequency = "annual"
)

// Event is a dated cash-flow event in a client's plan. Single events
// must not carry an end date; a present end date is never before the
// start date.
type Event struct {
	Base
	ClientID    string         `gorm:"type:uuid;index;not null" json:"client_id"`
	Type        string         `gorm:"not null" json:"type"`
	Value       float64        `gorm:"not null" json:"value"`
	Frequency   EventFrequency `gorm:"not null" json:"frequency"`
	Description string         `json:"description,omitempty"`
	StartDate   time.Time      `gorm:"not null" json:"start_date"`
	EndDate     *time.Time     `json:"end_date,omitempty"`
}
