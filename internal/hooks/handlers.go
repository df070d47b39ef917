package hooks

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/omnibuskit/price_history_app/internal/apperrors"
	"github.com/omnibuskit/price_history_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceRecorder is the narrow slice of the price-history service the write
// path needs.
type PriceRecorder interface {
	RecordPriceChange(ctx context.Context, variantID string, price decimal.Decimal, currencyCode string) (*domain.PriceHistoryRecord, error)
}

// ItemFailure identifies one price entry that could not be recorded.
type ItemFailure struct {
	VariantID    string
	CurrencyCode string
	Err          error
}

// BatchResult is the outcome of processing one lifecycle event. Recording is
// best-effort: a failed entry never aborts the rest of the batch, so both
// counts are meaningful.
type BatchResult struct {
	Recorded int
	Failures []ItemFailure
}

// Hooks holds the lifecycle-event handlers that feed the price-history write path.
type Hooks struct {
	recorder PriceRecorder
	logger   *slog.Logger
}

// NewHooks creates the lifecycle hook handlers.
func NewHooks(recorder PriceRecorder, logger *slog.Logger) *Hooks {
	return &Hooks{recorder: recorder, logger: logger}
}

// Register subscribes the three named handlers on the host's dispatcher.
func Register(d Dispatcher, recorder PriceRecorder, logger *slog.Logger) *Hooks {
	h := NewHooks(recorder, logger)
	d.Subscribe(EventProductsCreated, h.HandleProductsCreated)
	d.Subscribe(EventVariantsCreated, h.HandleVariantsCreated)
	d.Subscribe(EventVariantPricesUpdated, h.HandleVariantPricesUpdated)
	return h
}

// HandleProductsCreated records the initial price set of every variant of
// every created product.
func (h *Hooks) HandleProductsCreated(ctx context.Context, payload json.RawMessage) (BatchResult, error) {
	var body ProductsCreatedPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return BatchResult{}, apperrors.NewValidationError("malformed product.created payload: " + err.Error())
	}

	var variants []VariantPayload
	for _, product := range body.Products {
		variants = append(variants, product.Variants...)
	}
	return h.recordAll(ctx, variants), nil
}

// HandleVariantsCreated records the initial price set of newly created variants.
func (h *Hooks) HandleVariantsCreated(ctx context.Context, payload json.RawMessage) (BatchResult, error) {
	var body VariantsPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return BatchResult{}, apperrors.NewValidationError("malformed product-variant.created payload: " + err.Error())
	}
	return h.recordAll(ctx, body.ProductVariants), nil
}

// HandleVariantPricesUpdated records the full price set of updated variants.
func (h *Hooks) HandleVariantPricesUpdated(ctx context.Context, payload json.RawMessage) (BatchResult, error) {
	var body VariantsPayload
	if err := json.Unmarshal(payload, &body); err != nil {
		return BatchResult{}, apperrors.NewValidationError("malformed product-variant.updated payload: " + err.Error())
	}
	return h.recordAll(ctx, body.ProductVariants), nil
}

// recordAll folds over every price entry of every variant, accumulating
// successes and collecting per-item failures. The compliance log favors
// capturing as many price points as possible over all-or-nothing atomicity.
func (h *Hooks) recordAll(ctx context.Context, variants []VariantPayload) BatchResult {
	var result BatchResult
	for _, variant := range variants {
		if variant.PriceSet == nil {
			continue
		}
		for _, price := range variant.PriceSet.Prices {
			_, err := h.recorder.RecordPriceChange(ctx, variant.ID, price.Amount, price.CurrencyCode)
			if err != nil {
				h.logger.Error("Failed to record price for variant",
					slog.String("variant_id", variant.ID),
					slog.String("currency_code", price.CurrencyCode),
					slog.String("error", err.Error()),
				)
				result.Failures = append(result.Failures, ItemFailure{
					VariantID:    variant.ID,
					CurrencyCode: price.CurrencyCode,
					Err:          err,
				})
				continue
			}
			h.logger.Info("Recorded price for variant",
				slog.String("variant_id", variant.ID),
				slog.String("price", price.Amount.String()),
				slog.String("currency_code", price.CurrencyCode),
			)
			result.Recorded++
		}
	}
	if len(result.Failures) > 0 {
		h.logger.Warn(fmt.Sprintf("Recorded %d price entries, %d failed", result.Recorded, len(result.Failures)))
	}
	return result
}
