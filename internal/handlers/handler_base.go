package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
	"github.com/milassets/asset_command_app/internal/middleware"
)

// baseHandler handles HTTP requests related to base reference data.
type baseHandler struct {
	baseService portssvc.BaseSvcFacade
}

// newBaseHandler creates a new baseHandler.
func newBaseHandler(bs portssvc.BaseSvcFacade) *baseHandler {
	return &baseHandler{baseService: bs}
}

// registerBaseRoutes registers routes related to bases.
func registerBaseRoutes(rg *gin.RouterGroup, baseService portssvc.BaseSvcFacade) {
	h := newBaseHandler(baseService)

	bases := rg.Group("/bases")
	{
		bases.POST("", h.createBase)
		bases.GET("", h.listBases)
		bases.GET("/:baseID", h.getBase)
		bases.PUT("/:baseID", h.updateBase)
	}
}

// createBase godoc
// @Summary Register a base
// @Description Registers a new base. Admin only.
// @Tags bases
// @Accept json
// @Produce json
// @Param base body dto.CreateBaseRequest true "Base details"
// @Success 201 {object} dto.BaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Only admins may register bases"
// @Failure 409 {object} ErrorResponse "Base name already registered"
// @Failure 500 {object} ErrorResponse "Failed to register base"
// @Security BearerAuth
// @Router /bases [post]
func (h *baseHandler) createBase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	base, err := h.baseService.CreateBase(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register base")
		return
	}

	logger.Info("Base registered", slog.String("base_id", base.BaseID))
	c.JSON(http.StatusCreated, dto.ToBaseResponse(base))
}

// listBases godoc
// @Summary List bases
// @Description Retrieves all registered bases.
// @Tags bases
// @Produce json
// @Success 200 {object} dto.ListBasesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list bases"
// @Security BearerAuth
// @Router /bases [get]
func (h *baseHandler) listBases(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	bases, err := h.baseService.ListBases(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list bases")
		return
	}

	c.JSON(http.StatusOK, dto.ToListBasesResponse(bases))
}

// getBase godoc
// @Summary Get a base by ID
// @Description Retrieves details for a specific base.
// @Tags bases
// @Produce json
// @Param baseID path string true "Base ID"
// @Success 200 {object} dto.BaseResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Base not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve base"
// @Security BearerAuth
// @Router /bases/{baseID} [get]
func (h *baseHandler) getBase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseID := c.Param("baseID")

	base, err := h.baseService.GetBaseByID(c.Request.Context(), baseID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve base")
		return
	}

	c.JSON(http.StatusOK, dto.ToBaseResponse(base))
}

// updateBase godoc
// @Summary Update a base
// @Description Updates a base's details or deactivates it. Admin only.
// @Tags bases
// @Accept json
// @Produce json
// @Param baseID path string true "Base ID"
// @Param base body dto.UpdateBaseRequest true "Base details to update"
// @Success 200 {object} dto.BaseResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Only admins may update bases"
// @Failure 404 {object} ErrorResponse "Base not found"
// @Failure 500 {object} ErrorResponse "Failed to update base"
// @Security BearerAuth
// @Router /bases/{baseID} [put]
func (h *baseHandler) updateBase(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	baseID := c.Param("baseID")

	var req dto.UpdateBaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	actor, ok := middleware.GetActorFromContext(c)
	if !ok {
		logger.Error("Actor not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	base, err := h.baseService.UpdateBase(c.Request.Context(), actor, baseID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update base")
		return
	}

	logger.Info("Base updated", slog.String("base_id", baseID))
	c.JSON(http.StatusOK, dto.ToBaseResponse(base))
}
