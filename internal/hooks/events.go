package hooks

import "github.com/shopspring/decimal"

// Event names as delivered by the host platform's lifecycle workflows.
const (
	EventProductsCreated      = "product.created"
	EventVariantsCreated      = "product-variant.created"
	EventVariantPricesUpdated = "product-variant.updated"
)

// PriceEntry is one price in a variant's price set.
type PriceEntry struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
}

// PriceSet groups the prices attached to a variant.
type PriceSet struct {
	ID     string       `json:"id"`
	Prices []PriceEntry `json:"prices"`
}

// VariantPayload is a variant as carried by lifecycle events. PriceSet may be
// absent when the variant was created without prices.
type VariantPayload struct {
	ID       string    `json:"id"`
	PriceSet *PriceSet `json:"price_set"`
}

// ProductPayload is a product as carried by the product-created event.
type ProductPayload struct {
	ID       string           `json:"id"`
	Variants []VariantPayload `json:"variants"`
}

// ProductsCreatedPayload is the body of a product.created event.
type ProductsCreatedPayload struct {
	Products []ProductPayload `json:"products"`
}

// VariantsPayload is the body of the variant created/updated events.
type VariantsPayload struct {
	ProductVariants []VariantPayload `json:"product_variants"`
}
