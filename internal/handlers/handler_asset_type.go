package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/milassets/asset_command_app/internal/core/ports/services"
	"github.com/milassets/asset_command_app/internal/dto"
	"github.com/milassets/asset_command_app/internal/middleware"
)

// assetTypeHandler handles HTTP requests related to asset type reference data.
type assetTypeHandler struct {
	assetTypeService portssvc.AssetTypeSvcFacade
}

// newAssetTypeHandler creates a new assetTypeHandler.
func newAssetTypeHandler(ats portssvc.AssetTypeSvcFacade) *assetTypeHandler {
	return &assetTypeHandler{assetTypeService: ats}
}

// registerAssetTypeRoutes registers routes related to asset types.
func registerAssetTypeRoutes(rg *gin.RouterGroup, assetTypeService portssvc.AssetTypeSvcFacade) {
	h := newAssetTypeHandler(assetTypeService)

	assetTypes := rg.Group("/asset-types")
	{
		assetTypes.POST("", h.createAssetType)
		assetTypes.GET("", h.listAssetTypes)
		assetTypes.GET("/:assetTypeID", h.getAssetType)
		assetTypes.PUT("/:assetTypeID", h.updateAssetType)
	}
}

// createAssetType godoc
// @Summary Register an asset type
// @Description Registers a new asset type. Admin or logistics officer.
// @Tags asset-types
// @Accept json
// @Produce json
// @Param assetType body dto.CreateAssetTypeRequest true "Asset type details"
// @Success 201 {object} dto.AssetTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not manage asset types"
// @Failure 409 {object} ErrorResponse "Asset type name already registered"
// @Failure 500 {object} ErrorResponse "Failed to register asset type"
// @Security BearerAuth
// @Router /asset-types [post]
func (h *assetTypeHandler) createAssetType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateAssetTypeRequest
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

	assetType, err := h.assetTypeService.CreateAssetType(c.Request.Context(), actor, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to register asset type")
		return
	}

	logger.Info("Asset type registered", slog.String("asset_type_id", assetType.AssetTypeID))
	c.JSON(http.StatusCreated, dto.ToAssetTypeResponse(assetType))
}

// listAssetTypes godoc
// @Summary List asset types
// @Description Retrieves all registered asset types.
// @Tags asset-types
// @Produce json
// @Success 200 {object} dto.ListAssetTypesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list asset types"
// @Security BearerAuth
// @Router /asset-types [get]
func (h *assetTypeHandler) listAssetTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	assetTypes, err := h.assetTypeService.ListAssetTypes(c.Request.Context())
	if err != nil {
		respondServiceError(c, logger, err, "Failed to list asset types")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAssetTypesResponse(assetTypes))
}

// getAssetType godoc
// @Summary Get an asset type by ID
// @Description Retrieves details for a specific asset type.
// @Tags asset-types
// @Produce json
// @Param assetTypeID path string true "Asset type ID"
// @Success 200 {object} dto.AssetTypeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Asset type not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve asset type"
// @Security BearerAuth
// @Router /asset-types/{assetTypeID} [get]
func (h *assetTypeHandler) getAssetType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetTypeID := c.Param("assetTypeID")

	assetType, err := h.assetTypeService.GetAssetTypeByID(c.Request.Context(), assetTypeID)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to retrieve asset type")
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetTypeResponse(assetType))
}

// updateAssetType godoc
// @Summary Update an asset type
// @Description Updates an asset type's name or unit. The category is immutable.
// @Tags asset-types
// @Accept json
// @Produce json
// @Param assetTypeID path string true "Asset type ID"
// @Param assetType body dto.UpdateAssetTypeRequest true "Asset type details to update"
// @Success 200 {object} dto.AssetTypeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Role may not manage asset types"
// @Failure 404 {object} ErrorResponse "Asset type not found"
// @Failure 500 {object} ErrorResponse "Failed to update asset type"
// @Security BearerAuth
// @Router /asset-types/{assetTypeID} [put]
func (h *assetTypeHandler) updateAssetType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	assetTypeID := c.Param("assetTypeID")

	var req dto.UpdateAssetTypeRequest
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

	assetType, err := h.assetTypeService.UpdateAssetType(c.Request.Context(), actor, assetTypeID, req)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to update asset type")
		return
	}

	logger.Info("Asset type updated", slog.String("asset_type_id", assetTypeID))
	c.JSON(http.StatusOK, dto.ToAssetTypeResponse(assetType))
}
