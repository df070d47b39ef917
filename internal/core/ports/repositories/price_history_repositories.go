package repositories

import (
	"context"
	"time"

	"github.com/omnibuskit/price_history_app/internal/core/domain"
)

// PriceHistoryReader defines read operations for price history data
type PriceHistoryReader interface {
	// FindLowestPriceSince retrieves the non-deleted record with the minimum
	// price for a variant among records observed at or after the cutoff.
	// Returns nil (no error) when no record qualifies.
	FindLowestPriceSince(ctx context.Context, variantID string, cutoff time.Time) (*domain.PriceHistoryRecord, error)
}

// PriceHistoryWriter defines write operations for price history data
type PriceHistoryWriter interface {
	// SavePriceHistory persists a new price history record.
	SavePriceHistory(ctx context.Context, record domain.PriceHistoryRecord) error

	// DeleteRecordedBefore hard-deletes every non-deleted record observed
	// strictly before the cutoff, across all variants. Returns rows removed.
	DeleteRecordedBefore(ctx context.Context, cutoff time.Time) (int64, error)

	// DeleteByVariantIDs hard-deletes every non-deleted record belonging to
	// the given variants, regardless of age. Returns rows removed.
	DeleteByVariantIDs(ctx context.Context, variantIDs []string) (int64, error)
}

// PriceHistoryRepositoryFacade combines all price-history repository interfaces
type PriceHistoryRepositoryFacade interface {
	PriceHistoryReader
	PriceHistoryWriter
}
