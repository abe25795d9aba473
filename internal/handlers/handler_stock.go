package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
	"github.com/milassets/asset_command_app/internal/middleware"
)

// stockHandler handles HTTP requests related to stock balances.
type stockHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

// newStockHandler creates a new stockHandler.
func newStockHandler(is portssvc.InventorySvcFacade) *stockHandler {
	return &stockHandler{inventoryService: is}
}

// registerStockRoutes registers routes related to stock balances.
func registerStockRoutes(rg *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newStockHandler(inventoryService)

	stock := rg.Group("/stock")
	{
		stock.GET("/:baseID", h.getBaseHoldings)
		stock.GET("/:baseID/:assetTypeID", h.getBalance)
	}
}

// getBalance godoc
// @Summary Get a balance
// @Description Computes the current balance for a base and asset type by replaying the movement ledger.
// @Tags stock
// @Produce json
// @Param baseID path string true "Base ID"
// @Param assetTypeID path string true "Asset type ID"
// @Success 200 {object} dto.StockResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Stock belongs to another base"
// @Failure 500 {object} ErrorResponse "Failed to compute balance"
// @Security BearerAuth
// @Router /stock/{baseID}/{assetTypeID} [get]
func (h *stockHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseID := c.Param("baseID")
	assetTypeID := c.Param("assetTypeID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	stock, err := h.inventoryService.GetBalance(c.Request.Context(), actor, baseID, assetTypeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to compute balance")
		return
	}

	c.JSON(http.StatusOK, dto.ToStockResponse(stock))
}

// getBaseHoldings godoc
// @Summary List a base's holdings
// @Description Retrieves the asset types with a positive net quantity at a base.
// @Tags stock
// @Produce json
// @Param baseID path string true "Base ID"
// @Success 200 {object} dto.BaseStockResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Stock belongs to another base"
// @Failure 500 {object} ErrorResponse "Failed to query base holdings"
// @Security BearerAuth
// @Router /stock/{baseID} [get]
func (h *stockHandler) getBaseHoldings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseID := c.Param("baseID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	holdings, err := h.inventoryService.GetBaseHoldings(c.Request.Context(), actor, baseID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to query base holdings")
		return
	}

	logger.Info("Base holdings retrieved", slog.String("base_id", baseID), slog.Int("count", len(holdings)))
	c.JSON(http.StatusOK, dto.ToBaseStockResponse(baseID, holdings))
}
