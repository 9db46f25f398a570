package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/fleet/usecases"
	"rentora/internal/domain/fleet"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type VehicleHandler struct {
	createUC *usecases.CreateVehicleUseCase
	updateUC *usecases.UpdateVehicleUseCase
	listUC   *usecases.ListVehiclesUseCase
	getUC    *usecases.GetVehicleUseCase
	deleteUC *usecases.DeleteVehicleUseCase
	logger   logger.Interface
}

func NewVehicleHandler(
	createUC *usecases.CreateVehicleUseCase,
	updateUC *usecases.UpdateVehicleUseCase,
	listUC *usecases.ListVehiclesUseCase,
	getUC *usecases.GetVehicleUseCase,
	deleteUC *usecases.DeleteVehicleUseCase,
) *VehicleHandler {
	return &VehicleHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateVehicleRequest struct {
	TenantID         uint   `json:"tenant_id"`
	Description      string `json:"description" binding:"required"`
	ChassisNumber    string `json:"chassis_number" binding:"required"`
	EngineNumber     string `json:"engine_number"`
	PlateNumber      string `json:"plate_number" binding:"required"`
	VehicleTypeID    uint   `json:"vehicle_type_id" binding:"required"`
	BrandID          uint   `json:"brand_id" binding:"required"`
	ModelID          uint   `json:"model_id" binding:"required"`
	FuelTypeID       uint   `json:"fuel_type_id" binding:"required"`
	PricePerDayCents int64  `json:"price_per_day_cents" binding:"required,gt=0"`
	ImageURL         string `json:"image_url"`
}

type UpdateVehicleRequest struct {
	Description      *string `json:"description"`
	ChassisNumber    *string `json:"chassis_number"`
	EngineNumber     *string `json:"engine_number"`
	PlateNumber      *string `json:"plate_number"`
	VehicleTypeID    *uint   `json:"vehicle_type_id"`
	BrandID          *uint   `json:"brand_id"`
	ModelID          *uint   `json:"model_id"`
	FuelTypeID       *uint   `json:"fuel_type_id"`
	PricePerDayCents *int64  `json:"price_per_day_cents"`
	ImageURL         *string `json:"image_url"`
}

func (h *VehicleHandler) Create(c *gin.Context) {
	principal, _, ok := requestScope(c)
	if !ok {
		return
	}

	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "description, plate, chassis, catalog references and a positive daily price are required")
		return
	}

	tenantID, ok := writeTenant(c, principal, req.TenantID)
	if !ok {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateVehicleCommand{
		Principal:        principal,
		TenantID:         tenantID,
		Description:      req.Description,
		ChassisNumber:    req.ChassisNumber,
		EngineNumber:     req.EngineNumber,
		PlateNumber:      req.PlateNumber,
		VehicleTypeID:    req.VehicleTypeID,
		BrandID:          req.BrandID,
		ModelID:          req.ModelID,
		FuelTypeID:       req.FuelTypeID,
		PricePerDayCents: req.PricePerDayCents,
		ImageURL:         req.ImageURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "vehículo registrado")
}

func (h *VehicleHandler) Update(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "vehicle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateVehicleCommand{
		ID:               id,
		TenantID:         tenantID,
		Description:      req.Description,
		ChassisNumber:    req.ChassisNumber,
		EngineNumber:     req.EngineNumber,
		PlateNumber:      req.PlateNumber,
		VehicleTypeID:    req.VehicleTypeID,
		BrandID:          req.BrandID,
		ModelID:          req.ModelID,
		FuelTypeID:       req.FuelTypeID,
		PricePerDayCents: req.PricePerDayCents,
		ImageURL:         req.ImageURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *VehicleHandler) List(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), fleet.VehicleFilter{
		TenantID:      tenantID,
		AvailableOnly: c.Query("available") == "true",
		Search:        c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *VehicleHandler) Get(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "vehicle")
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

func (h *VehicleHandler) Delete(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "vehicle")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, tenantID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "vehículo eliminado", nil)
}
