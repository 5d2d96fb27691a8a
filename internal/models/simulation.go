package models

import "time"

// Simulation is a compound-growth projection attached to a client.
// Its data points are generated once at creation and never recomputed.
type Simulation struct {
	Base
	ClientID            string    `gorm:"type:uuid;index;not null" json:"client_id"`
	Label               string    `gorm:"not null" json:"label"`
	Rate                float64   `gorm:"not null" json:"rate"`
	StartDate           time.Time `gorm:"not null" json:"start_date"`
	InitialValue        float64   `gorm:"not null" json:"initial_value"`
	MonthlyContribution float64   `gorm:"not null" json:"monthly_contribution"`
	Years               int       `gorm:"not null" json:"years"`

	DataPoints []SimulationDataPoint `gorm:"foreignKey:SimulationID;constraint:OnDelete:CASCADE" json:"data_points,omitempty"`
}

// SimulationDataPoint is one projected year-end value.
type SimulationDataPoint struct {
	Base
	SimulationID   string  `gorm:"type:uuid;index;not null" json:"simulation_id"`
	Year           int     `gorm:"not null" json:"year"`
	ProjectedValue float64 `gorm:"not null" json:"projected_value"`
}
