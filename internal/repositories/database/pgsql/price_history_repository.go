package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/omnibuskit/price_history_app/internal/apperrors"
	"github.com/omnibuskit/price_history_app/internal/core/domain"
	"github.com/omnibuskit/price_history_app/internal/models"
	"github.com/omnibuskit/price_history_app/internal/utils/mapping"
)

// PgxPriceHistoryRepository implements the price-history repository port using pgxpool.
type PgxPriceHistoryRepository struct {
	BaseRepository
}

const (
	savePriceHistorySQL = `
		INSERT INTO price_history (
			price_history_id, variant_id, price, currency_code, recorded_at,
			created_at, updated_at, deleted_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	// Window reads are inclusive: a record observed exactly at the cutoff counts.
	findLowestPriceSinceSQL = `
		SELECT
			price_history_id, variant_id, price, currency_code, recorded_at,
			created_at, updated_at, deleted_at
		FROM price_history
		WHERE variant_id = $1
		  AND deleted_at IS NULL
		  AND recorded_at >= $2
		ORDER BY price ASC, recorded_at ASC, price_history_id ASC
		LIMIT 1`

	// Retention is strict: a record observed exactly at the cutoff survives.
	deleteRecordedBeforeSQL = `
		DELETE FROM price_history
		WHERE deleted_at IS NULL
		  AND recorded_at < $1`

	deleteByVariantIDsSQL = `
		DELETE FROM price_history
		WHERE deleted_at IS NULL
		  AND variant_id = ANY($1)`
)

// NewPgxPriceHistoryRepository creates a new PgxPriceHistoryRepository.
func NewPgxPriceHistoryRepository(db *pgxpool.Pool) *PgxPriceHistoryRepository {
	return &PgxPriceHistoryRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// SavePriceHistory inserts a new price history record. Rows are append-only;
// there is no update path besides the soft-delete marker.
func (r *PgxPriceHistoryRepository) SavePriceHistory(ctx context.Context, record domain.PriceHistoryRecord) error {
	modelRecord := mapping.ToModelPriceHistory(record)

	_, err := r.Pool.Exec(ctx, savePriceHistorySQL,
		modelRecord.PriceHistoryID, modelRecord.VariantID, modelRecord.Price,
		modelRecord.CurrencyCode, modelRecord.RecordedAt,
		modelRecord.CreatedAt, modelRecord.UpdatedAt, modelRecord.DeletedAt,
	)
	if err != nil {
		return apperrors.NewPersistenceError("failed to save price history record", err)
	}
	return nil
}

// FindLowestPriceSince retrieves the cheapest non-deleted record for a variant
// observed at or after the cutoff. The secondary sort keys only make the
// result deterministic when prices tie; callers must not depend on which
// tied record comes back.
func (r *PgxPriceHistoryRepository) FindLowestPriceSince(ctx context.Context, variantID string, cutoff time.Time) (*domain.PriceHistoryRecord, error) {
	var modelRecord models.PriceHistory
	err := r.Pool.QueryRow(ctx, findLowestPriceSinceSQL, variantID, cutoff).Scan(
		&modelRecord.PriceHistoryID, &modelRecord.VariantID, &modelRecord.Price,
		&modelRecord.CurrencyCode, &modelRecord.RecordedAt,
		&modelRecord.CreatedAt, &modelRecord.UpdatedAt, &modelRecord.DeletedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// No history in the window is a normal state, not an error.
			return nil, nil
		}
		return nil, apperrors.NewPersistenceError("failed to find lowest price", err)
	}

	domainRecord := mapping.ToDomainPriceHistory(modelRecord)
	return &domainRecord, nil
}

// DeleteRecordedBefore hard-deletes non-deleted records observed strictly
// before the cutoff. The comparison is strict: rows exactly at the cutoff stay.
func (r *PgxPriceHistoryRepository) DeleteRecordedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.Pool.Exec(ctx, deleteRecordedBeforeSQL, cutoff)
	if err != nil {
		return 0, apperrors.NewPersistenceError("failed to delete old price history records", err)
	}
	return tag.RowsAffected(), nil
}

// DeleteByVariantIDs hard-deletes all non-deleted records for the given variants.
func (r *PgxPriceHistoryRepository) DeleteByVariantIDs(ctx context.Context, variantIDs []string) (int64, error) {
	tag, err := r.Pool.Exec(ctx, deleteByVariantIDsSQL, variantIDs)
	if err != nil {
		return 0, apperrors.NewPersistenceError("failed to delete price history for variants", err)
	}
	return tag.RowsAffected(), nil
}
