package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/SscSPs/bizhub_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pricingHandler exposes conversions and quotes without persisting anything.
type pricingHandler struct {
	pricingService portssvc.PricingSvc
}

// SnapshotResponse summarises a freshly loaded pricing snapshot.
type SnapshotResponse struct {
	Currencies int       `json:"currencies"`
	Rates      int       `json:"rates"`
	LoadedAt   time.Time `json:"loadedAt"`
}

func registerPricingRoutes(rg *gin.RouterGroup, pricingService portssvc.PricingSvc) {
	h := &pricingHandler{pricingService: pricingService}

	pricing := rg.Group("/pricing")
	{
		pricing.POST("/convert", h.convert)
		pricing.POST("/quote", h.quote)
		pricing.POST("/snapshot/refresh", h.refreshSnapshot)
	}
}

// convert godoc
// @Summary Convert an amount between currencies
// @Description Applies the directed rate from -> to at full precision. A missing rate returns the amount unchanged with degraded=true and a warning; it is not an error.
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.ConvertPriceRequest true "Amount and currencies"
// @Success 200 {object} dto.ConvertPriceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown currency"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing/convert [post]
func (h *pricingHandler) convert(c *gin.Context) {
	var req dto.ConvertPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "convert request")
		return
	}

	resp, err := h.pricingService.Convert(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "convert price")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// quote godoc
// @Summary Price a set of lines
// @Description Catalog lines are projected from the home currency into the document currency; custom lines are taken as given. Lines without a rate stay unconverted and are reported in warnings.
// @Tags pricing
// @Accept  json
// @Produce  json
// @Param   request body dto.QuoteRequest true "Document currency and lines"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing/quote [post]
func (h *pricingHandler) quote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "quote request")
		return
	}

	q, err := h.pricingService.Quote(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "price quote")
		return
	}

	resp := dto.ToQuoteResponse(q)
	logger.Debug("Quote priced",
		slog.Int("lines", len(resp.Lines)),
		slog.String("total", resp.Total.String()),
		slog.Bool("degraded", resp.Degraded),
	)
	c.JSON(http.StatusOK, resp)
}

// refreshSnapshot godoc
// @Summary Reload currencies and rates
// @Description Reloads the pricing snapshot from the database and repopulates the cache.
// @Tags pricing
// @Produce  json
// @Success 200 {object} SnapshotResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pricing/snapshot/refresh [post]
func (h *pricingHandler) refreshSnapshot(c *gin.Context) {
	snapshot, err := h.pricingService.RefreshSnapshot(c.Request.Context())
	if err != nil {
		respondError(c, err, "refresh pricing snapshot")
		return
	}
	c.JSON(http.StatusOK, SnapshotResponse{
		Currencies: len(snapshot.Currencies),
		Rates:      len(snapshot.Rates),
		LoadedAt:   snapshot.LoadedAt,
	})
}
