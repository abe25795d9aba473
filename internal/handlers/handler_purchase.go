package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
	"github.com/milassets/asset_command_app/internal/middleware"
)

// purchaseHandler handles HTTP requests related to purchases.
type purchaseHandler struct {
	movementService portssvc.MovementSvcFacade
}

// newPurchaseHandler creates a new purchaseHandler.
func newPurchaseHandler(ms portssvc.MovementSvcFacade) *purchaseHandler {
	return &purchaseHandler{movementService: ms}
}

// registerPurchaseRoutes registers routes related to purchases.
func registerPurchaseRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newPurchaseHandler(movementService)

	purchases := rg.Group("/purchases")
	{
		purchases.POST("", h.createPurchase)
		purchases.GET("", h.listPurchases)
	}
}

// createPurchase godoc
// @Summary Record a purchase
// @Description Records a purchase of assets for a base, crediting its stock.
// @Tags purchases
// @Accept json
// @Produce json
// @Param purchase body dto.CreatePurchaseRequest true "Purchase details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} ErrorResponse "Invalid input or unknown base/asset type"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not record purchases"
// @Failure 500 {object} ErrorResponse "Failed to record purchase"
// @Security BearerAuth
// @Router /purchases [post]
func (h *purchaseHandler) createPurchase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePurchase", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	event, err := h.movementService.RecordPurchase(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to record purchase")
		return
	}

	logger.Info("Purchase recorded", slog.String("event_id", event.EventID))
	c.JSON(http.StatusCreated, dto.ToMovementResponse(event))
}

// listPurchases godoc
// @Summary List purchases
// @Description Retrieves a paginated, role-scoped listing of purchase events.
// @Tags purchases
// @Produce json
// @Param baseID query string false "Filter by base (admin only; others are pinned to their own base)"
// @Param assetTypeID query string false "Filter by asset type"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Personnel may not query the ledger"
// @Failure 500 {object} ErrorResponse "Failed to list purchases"
// @Security BearerAuth
// @Router /purchases [get]
func (h *purchaseHandler) listPurchases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for ListPurchases", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.movementService.ListPurchases(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list purchases")
		return
	}

	c.JSON(http.StatusOK, resp)
}
