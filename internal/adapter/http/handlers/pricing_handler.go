package handlers

import (
	"net/http"
	"strconv"

	response "interior_estimator/internal/adapter/http/dto/response"
	"interior_estimator/internal/domain/entities"
	"interior_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PricingHandler serves the price tables and the normalized catalog.
type PricingHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewPricingHandler(uc usecase.ICatalogUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// GetTable returns a handler serving one raw price table.
func (h *PricingHandler) GetTable(table entities.PriceTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := h.usecase.Table(c.Request.Context(), table)
		if err != nil {
			appErr := mapCatalogError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}

		c.JSON(http.StatusOK, response.PriceTableResponse{Table: string(table), Records: records})
	}
}

func (h *PricingHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.usecase.Load(c.Request.Context())
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCatalog(catalog))
}

// ListAccessories returns the accessory names offered for a room type.
// ?kids=true adds the kids' range for bedrooms.
func (h *PricingHandler) ListAccessories(c *gin.Context) {
	roomType := c.Param("room_type")
	kids, _ := strconv.ParseBool(c.DefaultQuery("kids", "false"))

	names, err := h.usecase.ListAccessoriesFor(c.Request.Context(), roomType, kids)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.AccessoriesResponse{
		RoomType:    string(entities.NormalizeRoomType(roomType)),
		KidsRoom:    kids,
		Accessories: names,
	})
}
