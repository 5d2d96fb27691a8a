package models

// FamilyProfile is the risk tier assigned to a client's household.
type FamilyProfile string

// Family profiles.
const (
	FamilyProfileConservative   FamilyProfile = "conservative"
	FamilyProfileModerate       FamilyProfile = "moderate"
	FamilyProfileAggressive     FamilyProfile = "aggressive"
	FamilyProfileVeryAggressive FamilyProfile = "very_aggressive"
)

// Client represents a financial-planning subject managed by advisors.
// Ownership of all planning records is strictly tree-shaped: every child
// row references exactly one client.
type Client struct {
	Base
	Name          string        `gorm:"not null" json:"name"`
	Email         string        `gorm:"uniqueIndex;not null" json:"email"`
	Age           int           `gorm:"not null" json:"age"`
	IsActive      bool          `gorm:"default:true" json:"is_active"`
	FamilyProfile FamilyProfile `gorm:"default:conservative" json:"family_profile"`

	WalletItems       []WalletItem       `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"wallet_items,omitempty"`
	IdealWalletItems  []IdealWalletItem  `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"ideal_wallet_items,omitempty"`
	Goals             []Goal             `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"goals,omitempty"`
	Insurances        []Insurance        `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"insurances,omitempty"`
	RetirementProfile *RetirementProfile `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"retirement_profile,omitempty"`
	Snapshots         []NetWorthSnapshot `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"snapshots,omitempty"`
	Simulations       []Simulation       `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"simulations,omitempty"`
	Events            []Event            `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE" json:"events,omitempty"`
}
