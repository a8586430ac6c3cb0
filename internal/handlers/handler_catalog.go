package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bizhub_pricing/internal/core/ports/services"
	"github.com/SscSPs/bizhub_pricing/internal/dto"
	"github.com/SscSPs/bizhub_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// catalogHandler handles HTTP requests related to products and services.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := &catalogHandler{catalogService: catalogService}

	items := rg.Group("/catalog-items")
	{
		items.POST("", h.createCatalogItem)
		items.GET("", h.listCatalogItems)
		items.GET("/:itemID", h.getCatalogItem)
		items.PUT("/:itemID", h.updateCatalogItem)
		items.DELETE("/:itemID", h.deactivateCatalogItem)
	}
}

// createCatalogItem godoc
// @Summary Create a catalog item
// @Description Adds a product or service. The unit price is in the home currency.
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   item body dto.CreateCatalogItemRequest true "Catalog item"
// @Success 201 {object} dto.CatalogItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalog-items [post]
func (h *catalogHandler) createCatalogItem(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "create catalog item request")
		return
	}
	creatorUserID, ok := currentUserID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.CreateCatalogItem(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err, "create catalog item")
		return
	}

	logger.Info("Catalog item created", slog.String("catalog_item_id", item.CatalogItemID), slog.String("kind", string(item.Kind)))
	c.JSON(http.StatusCreated, dto.ToCatalogItemResponse(item))
}

// listCatalogItems godoc
// @Summary List catalog items
// @Tags catalog
// @Produce  json
// @Param   kind query string false "PRODUCT or SERVICE"
// @Param   includeInactive query bool false "Include deactivated items"
// @Success 200 {array} dto.CatalogItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalog-items [get]
func (h *catalogHandler) listCatalogItems(c *gin.Context) {
	var params dto.ListCatalogItemsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err, "catalog filters")
		return
	}

	items, err := h.catalogService.ListCatalogItems(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "list catalog items")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCatalogItemResponse(items))
}

// getCatalogItem godoc
// @Summary Get a catalog item
// @Tags catalog
// @Produce  json
// @Param   itemID path string true "Catalog item ID"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalog-items/{itemID} [get]
func (h *catalogHandler) getCatalogItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}

	item, err := h.catalogService.GetCatalogItemByID(c.Request.Context(), itemID)
	if err != nil {
		respondError(c, err, "retrieve catalog item")
		return
	}
	c.JSON(http.StatusOK, dto.ToCatalogItemResponse(item))
}

// updateCatalogItem godoc
// @Summary Update a catalog item
// @Description Price changes apply to new documents only; stored invoice and order lines keep their prices.
// @Tags catalog
// @Accept  json
// @Produce  json
// @Param   itemID path string true "Catalog item ID"
// @Param   item body dto.UpdateCatalogItemRequest true "Fields to update"
// @Success 200 {object} dto.CatalogItemResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalog-items/{itemID} [put]
func (h *catalogHandler) updateCatalogItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	var req dto.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err, "update catalog item request")
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	item, err := h.catalogService.UpdateCatalogItem(c.Request.Context(), itemID, req, userID)
	if err != nil {
		respondError(c, err, "update catalog item")
		return
	}
	c.JSON(http.StatusOK, dto.ToCatalogItemResponse(item))
}

// deactivateCatalogItem godoc
// @Summary Deactivate a catalog item
// @Description Hides the item from new documents. Existing lines are untouched.
// @Tags catalog
// @Param   itemID path string true "Catalog item ID"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /catalog-items/{itemID} [delete]
func (h *catalogHandler) deactivateCatalogItem(c *gin.Context) {
	itemID, ok := pathID(c, "itemID")
	if !ok {
		return
	}
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeactivateCatalogItem(c.Request.Context(), itemID, userID); err != nil {
		respondError(c, err, "deactivate catalog item")
		return
	}
	c.Status(http.StatusNoContent)
}
