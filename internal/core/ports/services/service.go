package services

// ServiceContainer aggregates the service interfaces the HTTP layer consumes.
type ServiceContainer struct {
	PriceHistory PriceHistorySvcFacade
	Catalog      ProductCatalog
}
