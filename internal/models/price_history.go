package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistory stores one observed price event for a product variant.
// Note: Price uses a precise decimal type so comparisons are exact.
type PriceHistory struct {
	PriceHistoryID string          `json:"priceHistoryID"` // Primary Key (UUID)
	VariantID      string          `json:"variantID"`      // Opaque platform variant id, no FK enforced here
	Price          decimal.Decimal `json:"price"`
	CurrencyCode   string          `json:"currencyCode"`
	RecordedAt     time.Time       `json:"recordedAt"` // Logical observation time
	DeletedAt      *time.Time      `json:"deletedAt,omitempty"`
	AuditFields
}
