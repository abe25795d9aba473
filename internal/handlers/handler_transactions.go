package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
	"github.com/milassets/asset_command_app/internal/middleware"
)

// transactionHandler exposes the detailed movement ledger query.
type transactionHandler struct {
	movementService portssvc.MovementSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ms portssvc.MovementSvcFacade) *transactionHandler {
	return &transactionHandler{movementService: ms}
}

// registerTransactionRoutes registers routes for the movement ledger.
func registerTransactionRoutes(rg *gin.RouterGroup, movementService portssvc.MovementSvcFacade) {
	h := newTransactionHandler(movementService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.GET("/:eventID", h.getTransaction)
	}
}

// listTransactions godoc
// @Summary Query the movement ledger
// @Description Retrieves movement events of any kind, newest first, with the transfer or assignment each event belongs to resolved for display.
// @Tags transactions
// @Produce json
// @Param type query string false "Movement kind (purchase, transfer-in, transfer-out, assignment, expenditure)"
// @Param baseID query string false "Filter by base (admin only)"
// @Param assetTypeID query string false "Filter by asset type"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters or unknown movement kind"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Personnel may not query the ledger"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	resp, err := h.movementService.ListMovements(c.Request.Context(), actor, params)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getTransaction godoc
// @Summary Get a movement event by ID
// @Description Retrieves a single movement event within the actor's base scope, with the transfer or assignment it belongs to resolved for display.
// @Tags transactions
// @Produce json
// @Param eventID path string true "Movement event ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Movement belongs to another base"
// @Failure 404 {object} ErrorResponse "Movement not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve movement"
// @Security BearerAuth
// @Router /transactions/{eventID} [get]
func (h *transactionHandler) getTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	eventID := c.Param("eventID")

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	movement, err := h.movementService.GetMovementByID(c.Request.Context(), actor, eventID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve movement")
		return
	}

	c.JSON(http.StatusOK, movement)
}
