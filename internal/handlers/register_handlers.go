package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/omnibuskit/price_history_app/cmd/docs"
	portssvc "github.com/omnibuskit/price_history_app/internal/core/ports/services"
	"github.com/omnibuskit/price_history_app/internal/hooks"
	"github.com/omnibuskit/price_history_app/internal/middleware"
	"github.com/omnibuskit/price_history_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	dispatcher *hooks.MuxDispatcher,
	storeLimiter *limiter.Limiter,
) {
	// Health check route
	r.GET("/health", getHealth)

	// Storefront read surface: public, rate limited
	store := r.Group("/store", middleware.RateLimit(storeLimiter))
	RegisterStorePriceHistoryRoutes(store, services.PriceHistory, services.Catalog, cfg.LowestPriceWindowDays)

	// Admin reset surface: JWT protected
	admin := r.Group("/admin", middleware.AdminAuthMiddleware(cfg.JWTSecret))
	RegisterAdminPriceHistoryRoutes(admin, services.PriceHistory, services.Catalog, cfg.LowestPriceWindowDays)

	// Platform lifecycle webhook (shared-secret protected inside the handler)
	hooksGroup := r.Group("/hooks")
	RegisterHookRoutes(hooksGroup, dispatcher, cfg.WebhookSecret)

	setupSwaggerRoutes(r, cfg)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
