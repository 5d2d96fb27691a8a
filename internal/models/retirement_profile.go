package models

// RetirementProfile holds a client's retirement planning inputs.
// The unique index on ClientID enforces the one-profile-per-client
// invariant at the storage layer.
type RetirementProfile struct {
	Base
	ClientID            string   `gorm:"type:uuid;uniqueIndex;not null" json:"client_id"`
	DesiredIncome       float64  `gorm:"not null" json:"desired_income"`
	ExpectedReturn      float64  `gorm:"not null" json:"expected_return"`
	PGBLContribution    float64  `gorm:"not null" json:"pgbl_contribution"`
	RetirementAge       *int32   `json:"retirement_age,omitempty"`
	CurrentContribution *float64 `json:"current_contribution,omitempty"`
}
