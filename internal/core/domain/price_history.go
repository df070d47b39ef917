package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PriceHistoryRecord is one observed price event for a product variant.
// Records are immutable once created, except for the soft-delete marker;
// multiple records per variant form an append-only log ordered by RecordedAt.
type PriceHistoryRecord struct {
	ID           string          `json:"id"` // Primary key (UUID), never reused
	VariantID    string          `json:"variant_id"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currency_code"`
	RecordedAt   time.Time       `json:"recorded_at"` // Logical observation time, not insertion time
	DeletedAt    *time.Time      `json:"-"`           // Soft-delete marker; set rows are invisible to reads
	AuditFields
}
