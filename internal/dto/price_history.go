package dto

import (
	"encoding/json"
	"time"

	"github.com/omnibuskit/price_history_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceHistoryResponse defines the data returned for a single price observation.
type PriceHistoryResponse struct {
	ID           string          `json:"id"`
	VariantID    string          `json:"variant_id"`
	Price        decimal.Decimal `json:"price"`
	CurrencyCode string          `json:"currency_code"`
	RecordedAt   time.Time       `json:"recorded_at"`
}

// LowestPricesResponse is the body of the storefront price-history read.
// Variants with no history in the window are absent from the map.
type LowestPricesResponse struct {
	LowestPrices map[string]PriceHistoryResponse `json:"lowestPrices"`
}

// DeletePriceHistoryResponse is the body of the admin reset operation.
type DeletePriceHistoryResponse struct {
	Success      bool   `json:"success"`
	DeletedCount int64  `json:"deleted_count"`
	Message      string `json:"message"`
}

// WebhookEnvelope is the lifecycle-event envelope posted by the host platform.
type WebhookEnvelope struct {
	Event string          `json:"event" binding:"required"`
	Data  json.RawMessage `json:"data" binding:"required"`
}

// WebhookResponse reports the batch outcome of one delivered event.
type WebhookResponse struct {
	Recorded int `json:"recorded"`
	Failed   int `json:"failed"`
}

// ToPriceHistoryResponse converts a domain record to its response DTO
func ToPriceHistoryResponse(record domain.PriceHistoryRecord) PriceHistoryResponse {
	return PriceHistoryResponse{
		ID:           record.ID,
		VariantID:    record.VariantID,
		Price:        record.Price,
		CurrencyCode: record.CurrencyCode,
		RecordedAt:   record.RecordedAt,
	}
}

// ToLowestPricesResponse converts the service's batch result to the response DTO
func ToLowestPricesResponse(records map[string]domain.PriceHistoryRecord) LowestPricesResponse {
	resp := LowestPricesResponse{LowestPrices: make(map[string]PriceHistoryResponse, len(records))}
	for variantID, record := range records {
		resp.LowestPrices[variantID] = ToPriceHistoryResponse(record)
	}
	return resp
}
