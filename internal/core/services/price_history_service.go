package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/omnibuskit/price_history_app/internal/apperrors"
	"github.com/omnibuskit/price_history_app/internal/core/domain"
	portsrepo "github.com/omnibuskit/price_history_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// maxConcurrentVariantQueries bounds the fan-out of the batch lowest-price query.
const maxConcurrentVariantQueries = 8

// PriceHistoryService implements all price-history data operations on top of
// the repository port. It owns validation and window/cutoff arithmetic; the
// repository owns the SQL.
type PriceHistoryService struct {
	repo portsrepo.PriceHistoryRepositoryFacade
	now  func() time.Time
}

// NewPriceHistoryService creates a new PriceHistoryService.
func NewPriceHistoryService(repo portsrepo.PriceHistoryRepositoryFacade) *PriceHistoryService {
	return &PriceHistoryService{repo: repo, now: time.Now}
}

// RecordPriceChange creates one new record per call; identical observations are
// never deduplicated.
func (s *PriceHistoryService) RecordPriceChange(ctx context.Context, variantID string, price decimal.Decimal, currencyCode string) (*domain.PriceHistoryRecord, error) {
	if variantID == "" {
		return nil, apperrors.NewValidationError("variant id must not be empty")
	}
	if price.IsNegative() {
		return nil, apperrors.NewValidationError("price must not be negative")
	}
	if currencyCode == "" {
		return nil, apperrors.NewValidationError("currency code must not be empty")
	}

	now := s.now()
	record := domain.PriceHistoryRecord{
		ID:           uuid.NewString(),
		VariantID:    variantID,
		Price:        price,
		CurrencyCode: currencyCode,
		RecordedAt:   now,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	if err := s.repo.SavePriceHistory(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to record price change: %w", err)
	}

	return &record, nil
}

// GetLowestPriceInPeriod returns the cheapest observation for the variant in
// the trailing window, or nil when the variant has no history there.
func (s *PriceHistoryService) GetLowestPriceInPeriod(ctx context.Context, variantID string, days int) (*domain.PriceHistoryRecord, error) {
	if variantID == "" {
		return nil, apperrors.NewValidationError("variant id must not be empty")
	}
	if days <= 0 {
		return nil, apperrors.NewValidationError("days must be positive")
	}

	cutoff := s.now().AddDate(0, 0, -days)
	record, err := s.repo.FindLowestPriceSince(ctx, variantID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to get lowest price for variant %s: %w", variantID, err)
	}
	return record, nil
}

// GetLowestPricesForVariants queries each variant independently. Duplicate ids
// in the input are processed once; variants with no qualifying record are
// simply absent from the result. Queries are read-only and independent, so
// they run concurrently with a bounded fan-out.
func (s *PriceHistoryService) GetLowestPricesForVariants(ctx context.Context, variantIDs []string, days int) (map[string]domain.PriceHistoryRecord, error) {
	if days <= 0 {
		return nil, apperrors.NewValidationError("days must be positive")
	}

	unique := make([]string, 0, len(variantIDs))
	seen := make(map[string]struct{}, len(variantIDs))
	for _, id := range variantIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}

	result := make(map[string]domain.PriceHistoryRecord, len(unique))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentVariantQueries)
	for _, variantID := range unique {
		g.Go(func() error {
			lowest, err := s.GetLowestPriceInPeriod(gctx, variantID, days)
			if err != nil {
				return err
			}
			if lowest == nil {
				return nil
			}
			mu.Lock()
			result[variantID] = *lowest
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to get lowest prices for variants: %w", err)
	}

	return result, nil
}

// CleanupOldRecords removes records observed strictly before now minus
// olderThanDays. Records exactly at the cutoff are retained.
func (s *PriceHistoryService) CleanupOldRecords(ctx context.Context, olderThanDays int) (int64, error) {
	if olderThanDays <= 0 {
		return 0, apperrors.NewValidationError("olderThanDays must be positive")
	}

	cutoff := s.now().AddDate(0, 0, -olderThanDays)
	count, err := s.repo.DeleteRecordedBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to clean up old price history: %w", err)
	}
	return count, nil
}

// DeleteForVariants removes all history for the given variants regardless of
// age. Idempotent: deleting already-deleted history returns 0.
func (s *PriceHistoryService) DeleteForVariants(ctx context.Context, variantIDs []string) (int64, error) {
	ids := make([]string, 0, len(variantIDs))
	for _, id := range variantIDs {
		if id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	count, err := s.repo.DeleteByVariantIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to delete price history for variants: %w", err)
	}
	return count, nil
}
