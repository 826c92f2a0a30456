package routes

import (
	"interior_estimator/internal/adapter/http/handlers"
	"interior_estimator/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

const (
	PathPricing   = "/pricing"
	PathEstimates = "/estimates"
)

func addPricingRoutes(rg *gin.RouterGroup, h *handlers.PricingHandler) {
	pricing := rg.Group(PathPricing)
	{
		for _, table := range entities.PriceTables {
			pricing.GET("/"+string(table), h.GetTable(table))
		}
		pricing.GET("/catalog", h.GetCatalog)
		pricing.GET("/accessories/:room_type", h.ListAccessories)
	}
}

// Stateless estimates return the itemized breakdown, so they sit behind the
// same login as the wizard breakdown.
func addEstimateRoutes(rg *gin.RouterGroup, h *handlers.EstimateHandler, auth gin.HandlerFunc) {
	estimates := rg.Group(PathEstimates, auth)
	{
		estimates.POST("", h.Calculate)
		estimates.POST("/commercial", h.QuoteCommercial)
	}
}
