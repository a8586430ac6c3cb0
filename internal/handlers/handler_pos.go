package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/SscSPs/bizhub_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

type posHandler struct {
	posService portssvc.PosSvcFacade
}

func registerPosRoutes(rg *gin.RouterGroup, posService portssvc.PosSvcFacade) {
	h := &posHandler{posService: posService}

	orders := rg.Group("/pos/orders")
	{
		orders.POST("", h.createPosOrder)
		orders.GET("/:orderID", h.getPosOrder)
	}
}

// createPosOrder godoc
// @Summary Check out a point-of-sale cart
// @Description Prices the cart in the document currency with the same rules as invoices and stores the order.
// @Tags pos
// @Accept  json
// @Produce  json
// @Param   order body dto.CreatePosOrderRequest true "Cart"
// @Success 201 {object} dto.PosOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/orders [post]
func (h *posHandler) createPosOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePosOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create pos order request")
		return
	}
	creatorUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	order, warnings, err := h.posService.CreatePosOrder(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "create pos order")
		return
	}

	logger.Info("POS order created",
		slog.String("pos_order_id", order.PosOrderID),
		slog.String("total", order.Total.String()),
		slog.Bool("degraded", order.Degraded),
	)
	resp := dto.ToPosOrderResponse(order)
	resp.Warnings = dto.ToWarningResponses(warnings)
	c.JSON(http.StatusCreated, resp)
}

// getPosOrder godoc
// @Summary Get a POS order with its lines
// @Tags pos
// @Produce  json
// @Param   orderID path string true "POS order ID"
// @Success 200 {object} dto.PosOrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /pos/orders/{orderID} [get]
func (h *posHandler) getPosOrder(c *gin.Context) {
	orderID, ok := pathID(c, "orderID")
	if !ok {
		return
	}

	order, err := h.posService.GetPosOrderByID(c.Request.Context(), orderID)
	if err != nil {
		respondError(c, err, "retrieve pos order")
		return
	}
	c.JSON(http.StatusOK, dto.ToPosOrderResponse(order))
}
