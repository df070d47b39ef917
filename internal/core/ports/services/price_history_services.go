package services

import (
	"context"

	"github.com/omnibuskit/price_history_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceHistoryReaderSvc defines read operations over recorded price history
type PriceHistoryReaderSvc interface {
	// GetLowestPriceInPeriod returns the record with the minimum price for the
	// variant within the trailing window of the given number of days.
	// Returns nil when the variant has no qualifying records; absence is not an error.
	GetLowestPriceInPeriod(ctx context.Context, variantID string, days int) (*domain.PriceHistoryRecord, error)

	// GetLowestPricesForVariants applies GetLowestPriceInPeriod per variant.
	// Variants without a qualifying record are absent from the result map.
	GetLowestPricesForVariants(ctx context.Context, variantIDs []string, days int) (map[string]domain.PriceHistoryRecord, error)
}

// PriceHistoryWriterSvc defines mutating operations over recorded price history
type PriceHistoryWriterSvc interface {
	// RecordPriceChange persists a new observation for a variant's price.
	RecordPriceChange(ctx context.Context, variantID string, price decimal.Decimal, currencyCode string) (*domain.PriceHistoryRecord, error)

	// CleanupOldRecords hard-deletes records observed strictly before
	// now minus olderThanDays. Returns the number removed.
	CleanupOldRecords(ctx context.Context, olderThanDays int) (int64, error)

	// DeleteForVariants hard-deletes all records for the given variants.
	// Returns the number removed; a repeat call returns 0.
	DeleteForVariants(ctx context.Context, variantIDs []string) (int64, error)
}

// PriceHistorySvcFacade combines all price-history service interfaces
type PriceHistorySvcFacade interface {
	PriceHistoryReaderSvc
	PriceHistoryWriterSvc
}
