package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	inspdto "rentora/internal/application/inspection/dto"
	"rentora/internal/application/inspection/usecases"
	"rentora/internal/domain/inspection"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type InspectionHandler struct {
	createUC *usecases.CreateInspectionUseCase
	listUC   *usecases.ListInspectionsUseCase
	getUC    *usecases.GetInspectionUseCase
	deleteUC *usecases.DeleteInspectionUseCase
	logger   logger.Interface
}

func NewInspectionHandler(
	createUC *usecases.CreateInspectionUseCase,
	listUC *usecases.ListInspectionsUseCase,
	getUC *usecases.GetInspectionUseCase,
	deleteUC *usecases.DeleteInspectionUseCase,
) *InspectionHandler {
	return &InspectionHandler{
		createUC: createUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateInspectionRequest struct {
	TenantID       uint                 `json:"tenant_id"`
	VehicleID      uint                 `json:"vehicle_id" binding:"required"`
	ClientID       uint                 `json:"client_id" binding:"required"`
	EmployeeID     uint                 `json:"employee_id" binding:"required"`
	HasScratches   bool                 `json:"has_scratches"`
	FuelLevel      string               `json:"fuel_level" binding:"required"`
	HasSpareTire   bool                 `json:"has_spare_tire"`
	HasJack        bool                 `json:"has_jack"`
	HasGlassDamage bool                 `json:"has_glass_damage"`
	Tires          inspdto.TireStateDTO `json:"tires"`
	Notes          string               `json:"notes"`
	InspectedAt    string               `json:"inspected_at"`
}

func (h *InspectionHandler) Create(c *gin.Context) {
	principal, _, ok := requestScope(c)
	if !ok {
		return
	}

	var req CreateInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "vehicle, client, employee and fuel level are required")
		return
	}

	tenantID, ok := writeTenant(c, principal, req.TenantID)
	if !ok {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateInspectionCommand{
		TenantID:       tenantID,
		VehicleID:      req.VehicleID,
		ClientID:       req.ClientID,
		EmployeeID:     req.EmployeeID,
		HasScratches:   req.HasScratches,
		FuelLevel:      req.FuelLevel,
		HasSpareTire:   req.HasSpareTire,
		HasJack:        req.HasJack,
		HasGlassDamage: req.HasGlassDamage,
		Tires:          req.Tires,
		Notes:          req.Notes,
		InspectedAt:    req.InspectedAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "inspección registrada")
}

func (h *InspectionHandler) List(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}

	filter := inspection.Filter{TenantID: tenantID}
	if raw := c.Query("vehicle_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid vehicle_id")
			return
		}
		filter.VehicleID = uint(parsed)
	}

	result, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *InspectionHandler) Get(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "inspection")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id, tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *InspectionHandler) Delete(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "inspection")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, tenantID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "inspección eliminada", nil)
}
