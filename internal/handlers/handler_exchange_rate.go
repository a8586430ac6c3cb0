package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/SscSPs/bizhub_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := &exchangeRateHandler{exchangeRateService: exchangeRateService}

	rates := rg.Group("/exchange-rates")
	{
		rates.POST("", h.createExchangeRate)
		rates.GET("", h.listExchangeRates)
		rates.GET("/resolve", h.resolveRate)
		rates.GET("/:rateID", h.getExchangeRate)
		rates.DELETE("/:rateID", h.deleteExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Adds a directed rate: one unit of the source currency buys Rate units of the target. The reverse pair is not implied.
// @Tags exchange-rates
// @Accept  json
// @Produce  json
// @Param   exchangeRate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 409 {object} ErrorResponse "Pair already has a rate"
// @Failure 500 {object} ErrorResponse "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create exchange rate request")
		return
	}

	creatorUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	created, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "create exchange rate")
		return
	}

	logger.Info("Exchange rate created",
		slog.String("exchange_rate_id", created.ExchangeRateID),
		slog.String("from", created.FromCurrencyID),
		slog.String("to", created.ToCurrencyID),
		slog.String("rate", created.Rate.String()),
	)
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(created))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Tags exchange-rates
// @Produce  json
// @Param   from query string false "Source currency ID"
// @Param   to query string false "Target currency ID"
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "exchange rate filters")
		return
	}

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// resolveRate godoc
// @Summary Resolve the rate between two currencies
// @Description Returns the factor pricing would apply. Identical currencies always resolve to 1; a missing pair returns found=false and rate 0.
// @Tags exchange-rates
// @Produce  json
// @Param   from query string true "Source currency ID"
// @Param   to query string true "Target currency ID"
// @Success 200 {object} dto.ResolveRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates/resolve [get]
func (h *exchangeRateHandler) resolveRate(c *gin.Context) {
	var params dto.ResolveRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "resolve rate parameters")
		return
	}

	resolved, err := h.exchangeRateService.ResolveRate(c.Request.Context(), params.FromCurrencyID, params.ToCurrencyID)
	if err != nil {
		respondError(c, err, "resolve exchange rate")
		return
	}
	c.JSON(http.StatusOK, resolved)
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Tags exchange-rates
// @Produce  json
// @Param   rateID path string true "Exchange rate ID"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates/{rateID} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	rateID, ok := pathID(c, "rateID")
	if !ok {
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRateByID(c.Request.Context(), rateID)
	if err != nil {
		respondError(c, err, "retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// deleteExchangeRate godoc
// @Summary Delete an exchange rate
// @Tags exchange-rates
// @Param   rateID path string true "Exchange rate ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates/{rateID} [delete]
func (h *exchangeRateHandler) deleteExchangeRate(c *gin.Context) {
	rateID, ok := pathID(c, "rateID")
	if !ok {
		return
	}

	if err := h.exchangeRateService.DeleteExchangeRate(c.Request.Context(), rateID); err != nil {
		respondError(c, err, "delete exchange rate")
		return
	}
	c.Status(http.StatusNoContent)
}
