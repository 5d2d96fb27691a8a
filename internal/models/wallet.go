package models

// WalletItem is one position in a client's actual asset allocation.
// Percentage is the share of the client's total portfolio, 0-100.
type WalletItem struct {
	Base
	ClientID      string  `gorm:"type:uuid;index;not null" json:"client_id"`
	AssetClass    string  `gorm:"not null" json:"asset_class"`
	Percentage    float64 `gorm:"not null" json:"percentage"`
	TotalValue    float64 `gorm:"not null" json:"total_value"`
	Category      string  `gorm:"not null" json:"category"`
	Indexer       string  `json:"indexer,omitempty"`
	Custodian     string  `json:"custodian,omitempty"`
	LiquidityDays *int32  `json:"liquidity_days,omitempty"`
}

// IdealWalletItem is one target allocation entry per asset class.
// Targets for a client are not required to sum to 100.
type IdealWalletItem struct {
	Base
	ClientID   string  `gorm:"type:uuid;index;not null" json:"client_id"`
	AssetClass string  `gorm:"not null" json:"asset_class"`
	TargetPct  float64 `gorm:"not null" json:"target_pct"`
}
