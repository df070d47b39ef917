package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omnibuskit/price_history_app/internal/apperrors"
	portssvc "github.com/omnibuskit/price_history_app/internal/core/ports/services"
	"github.com/omnibuskit/price_history_app/internal/dto"
	"github.com/omnibuskit/price_history_app/internal/middleware"
)

// priceHistoryHandler handles HTTP requests for lowest-price reads and
// admin price-history resets.
type priceHistoryHandler struct {
	priceHistoryService portssvc.PriceHistorySvcFacade
	catalog             portssvc.ProductCatalog
	windowDays          int
}

// newPriceHistoryHandler creates a new priceHistoryHandler.
func newPriceHistoryHandler(phs portssvc.PriceHistorySvcFacade, catalog portssvc.ProductCatalog, windowDays int) *priceHistoryHandler {
	return &priceHistoryHandler{
		priceHistoryService: phs,
		catalog:             catalog,
		windowDays:          windowDays,
	}
}

// RegisterStorePriceHistoryRoutes registers the storefront read route.
func RegisterStorePriceHistoryRoutes(rg *gin.RouterGroup, phs portssvc.PriceHistorySvcFacade, catalog portssvc.ProductCatalog, windowDays int) {
	h := newPriceHistoryHandler(phs, catalog, windowDays)
	rg.GET("/products/:productID/price-history", h.getLowestPrices)
}

// RegisterAdminPriceHistoryRoutes registers the admin reset route.
func RegisterAdminPriceHistoryRoutes(rg *gin.RouterGroup, phs portssvc.PriceHistorySvcFacade, catalog portssvc.ProductCatalog, windowDays int) {
	h := newPriceHistoryHandler(phs, catalog, windowDays)
	rg.DELETE("/products/:productID/price-history", h.deletePriceHistory)
}

// getLowestPrices godoc
// @Summary Get lowest prices for a product's variants
// @Description Returns the lowest recorded price per variant over the trailing 30-day window (Omnibus Directive display)
// @Tags price-history
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.LowestPricesResponse
// @Failure 404 {object} map[string]string "Product not found"
// @Failure 500 {object} map[string]string "Failed to retrieve price history"
// @Router /store/products/{productID}/price-history [get]
func (h *priceHistoryHandler) getLowestPrices(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")
	logger = logger.With(slog.String("product_id", productID))

	variantIDs, err := h.catalog.ListVariantIDs(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found in catalog")
			c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
			return
		}
		logger.Error("Failed to resolve product variants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve price history"})
		return
	}

	if len(variantIDs) == 0 {
		c.JSON(http.StatusOK, dto.LowestPricesResponse{LowestPrices: map[string]dto.PriceHistoryResponse{}})
		return
	}

	lowestPrices, err := h.priceHistoryService.GetLowestPricesForVariants(c.Request.Context(), variantIDs, h.windowDays)
	if err != nil {
		logger.Error("Failed to get lowest prices", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve price history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLowestPricesResponse(lowestPrices))
}

// deletePriceHistory godoc
// @Summary Delete all price history for a product
// @Description Hard-deletes the price history of every variant of the product (compliance reset)
// @Tags price-history
// @Produce json
// @Param productID path string true "Product ID"
// @Success 200 {object} dto.DeletePriceHistoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} dto.DeletePriceHistoryResponse "Product not found"
// @Failure 500 {object} dto.DeletePriceHistoryResponse "Failed to delete price history"
// @Security BearerAuth
// @Router /admin/products/{productID}/price-history [delete]
func (h *priceHistoryHandler) deletePriceHistory(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	productID := c.Param("productID")
	logger = logger.With(slog.String("product_id", productID))

	variantIDs, err := h.catalog.ListVariantIDs(c.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Product not found in catalog")
			c.JSON(http.StatusNotFound, dto.DeletePriceHistoryResponse{
				Success: false,
				Message: "Product not found",
			})
			return
		}
		logger.Error("Failed to resolve product variants", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.DeletePriceHistoryResponse{
			Success: false,
			Message: "Failed to delete price history",
		})
		return
	}

	if len(variantIDs) == 0 {
		c.JSON(http.StatusOK, dto.DeletePriceHistoryResponse{
			Success:      true,
			DeletedCount: 0,
			Message:      "No variants found for this product",
		})
		return
	}

	deletedCount, err := h.priceHistoryService.DeleteForVariants(c.Request.Context(), variantIDs)
	if err != nil {
		logger.Error("Failed to delete price history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.DeletePriceHistoryResponse{
			Success: false,
			Message: "Failed to delete price history",
		})
		return
	}

	logger.Info("Deleted price history for product", slog.Int64("deleted_count", deletedCount))
	c.JSON(http.StatusOK, dto.DeletePriceHistoryResponse{
		Success:      true,
		DeletedCount: deletedCount,
		Message:      fmt.Sprintf("Deleted %d price history records", deletedCount),
	})
}
