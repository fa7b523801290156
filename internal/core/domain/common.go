package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fractional digits stored for each kind of monetary value.
const (
	TransactionAmountPrecision int32 = 2
	UserBalancePrecision       int32 = 2
	WalletBalancePrecision     int32 = 8
	RatePrecision              int32 = 3
	// USDBalancePrecision applies to derived USD figures, which are never stored.
	USDBalancePrecision int32 = 8
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// FitsPrecision reports whether d has no more than places fractional digits.
func FitsPrecision(d decimal.Decimal, places int32) bool {
	return d.Equal(d.Truncate(places))
}
