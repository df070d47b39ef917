package mapping

import (
	"github.com/omnibuskit/price_history_app/internal/core/domain"
	"github.com/omnibuskit/price_history_app/internal/models"
)

// ToModelPriceHistory converts a domain PriceHistoryRecord to a model PriceHistory
func ToModelPriceHistory(d domain.PriceHistoryRecord) models.PriceHistory {
	return models.PriceHistory{
		PriceHistoryID: d.ID,
		VariantID:      d.VariantID,
		Price:          d.Price,
		CurrencyCode:   d.CurrencyCode,
		RecordedAt:     d.RecordedAt,
		DeletedAt:      d.DeletedAt,
		AuditFields: models.AuditFields{
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		},
	}
}

// ToDomainPriceHistory converts a model PriceHistory to a domain PriceHistoryRecord
func ToDomainPriceHistory(m models.PriceHistory) domain.PriceHistoryRecord {
	return domain.PriceHistoryRecord{
		ID:           m.PriceHistoryID,
		VariantID:    m.VariantID,
		Price:        m.Price,
		CurrencyCode: m.CurrencyCode,
		RecordedAt:   m.RecordedAt,
		DeletedAt:    m.DeletedAt,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
