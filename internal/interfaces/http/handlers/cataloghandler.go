package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/fleet/usecases"
	"rentora/internal/domain/fleet"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

// catalogKinds maps the URL segment to the catalog behind it.
var catalogKinds = map[string]fleet.CatalogKind{
	"vehicle-types": fleet.CatalogVehicleType,
	"brands":        fleet.CatalogBrand,
	"models":        fleet.CatalogModel,
	"fuel-types":    fleet.CatalogFuelType,
}

type CatalogHandler struct {
	manageUC *usecases.ManageCatalogUseCase
	logger   logger.Interface
}

func NewCatalogHandler(manageUC *usecases.ManageCatalogUseCase) *CatalogHandler {
	return &CatalogHandler{manageUC: manageUC, logger: logger.NewLogger()}
}

type CreateCatalogItemRequest struct {
	TenantID    uint   `json:"tenant_id"`
	Description string `json:"description" binding:"required"`
	BrandID     uint   `json:"brand_id"`
}

func (h *CatalogHandler) kindFromPath(c *gin.Context) (fleet.CatalogKind, bool) {
	kind, ok := catalogKinds[c.Param("kind")]
	if !ok {
		utils.ErrorResponse(c, http.StatusNotFound, "unknown catalog")
		return "", false
	}
	return kind, true
}

func (h *CatalogHandler) Create(c *gin.Context) {
	kind, ok := h.kindFromPath(c)
	if !ok {
		return
	}
	principal, _, ok := requestScope(c)
	if !ok {
		return
	}

	var req CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "description is required")
		return
	}

	tenantID, ok := writeTenant(c, principal, req.TenantID)
	if !ok {
		return
	}

	result, err := h.manageUC.Create(c.Request.Context(), usecases.CreateCatalogItemCommand{
		TenantID:    tenantID,
		Kind:        kind,
		Description: req.Description,
		BrandID:     req.BrandID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "registro agregado")
}

func (h *CatalogHandler) List(c *gin.Context) {
	kind, ok := h.kindFromPath(c)
	if !ok {
		return
	}
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}

	result, err := h.manageUC.List(c.Request.Context(), kind, tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *CatalogHandler) Delete(c *gin.Context) {
	kind, ok := h.kindFromPath(c)
	if !ok {
		return
	}
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "catalog item")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.manageUC.Delete(c.Request.Context(), kind, id, tenantID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "registro eliminado", nil)
}
