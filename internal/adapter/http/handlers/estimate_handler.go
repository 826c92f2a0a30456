package handlers

import (
	"net/http"

	request "interior_estimator/internal/adapter/http/dto/request"
	response "interior_estimator/internal/adapter/http/dto/response"
	"interior_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

// EstimateHandler prices configurations outside of a wizard session.
type EstimateHandler struct {
	usecase usecase.IEstimateUseCase
}

func NewEstimateHandler(uc usecase.IEstimateUseCase) *EstimateHandler {
	return &EstimateHandler{usecase: uc}
}

func (h *EstimateHandler) Calculate(c *gin.Context) {
	var payload request.CalculateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	rooms, err := payload.ToRoomConfiguration()
	if err != nil {
		appErr := errInvalidPayload.WithDetails(err.Error())
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.usecase.Calculate(c.Request.Context(), rooms, payload.Package)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateResult(result))
}

func (h *EstimateHandler) QuoteCommercial(c *gin.Context) {
	var payload request.CommercialQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPayload.HTTPStatus, errInvalidPayload.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCommercialEstimate(h.usecase.CalculateCommercial(payload.ToForm())))
}
