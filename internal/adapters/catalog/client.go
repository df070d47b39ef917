package catalog

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/omnibuskit/price_history_app/internal/apperrors"
)

// Client resolves product variants from the host platform's admin API.
// It implements the ProductCatalog port.
type Client struct {
	http *resty.Client
}

type productEnvelope struct {
	Product struct {
		ID       string `json:"id"`
		Variants []struct {
			ID string `json:"id"`
		} `json:"variants"`
	} `json:"product"`
}

// NewClient creates a catalog client for the given platform base URL.
// apiToken may be empty when the platform endpoint is unauthenticated.
func NewClient(baseURL, apiToken string) *Client {
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(10 * time.Second).
		SetHeader("Accept", "application/json")
	if apiToken != "" {
		httpClient.SetAuthToken(apiToken)
	}
	return &Client{http: httpClient}
}

// ListVariantIDs returns the variant ids of a product. A product without
// variants yields an empty slice.
func (c *Client) ListVariantIDs(ctx context.Context, productID string) ([]string, error) {
	if productID == "" {
		return nil, apperrors.NewValidationError("product id must not be empty")
	}

	var envelope productEnvelope
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&envelope).
		SetPathParam("productID", productID).
		SetQueryParam("fields", "id,variants.id").
		Get("/admin/products/{productID}")
	if err != nil {
		return nil, apperrors.NewPersistenceError("failed to reach product catalog", err)
	}

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return nil, apperrors.NewNotFoundError("product " + productID + " not found")
	case resp.IsError():
		return nil, apperrors.NewPersistenceError(
			fmt.Sprintf("product catalog returned status %d", resp.StatusCode()), nil)
	}

	variantIDs := make([]string, 0, len(envelope.Product.Variants))
	for _, variant := range envelope.Product.Variants {
		variantIDs = append(variantIDs, variant.ID)
	}
	return variantIDs, nil
}
