package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/subscription/usecases"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type PlanHandler struct {
	createUC *usecases.CreatePlanUseCase
	updateUC *usecases.UpdatePlanUseCase
	listUC   *usecases.ListPlansUseCase
	logger   logger.Interface
}

func NewPlanHandler(
	createUC *usecases.CreatePlanUseCase,
	updateUC *usecases.UpdatePlanUseCase,
	listUC *usecases.ListPlansUseCase,
) *PlanHandler {
	return &PlanHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		logger:   logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	PriceUSDCents int64    `json:"price_usd_cents" binding:"min=0"`
	PriceDOPCents int64    `json:"price_dop_cents" binding:"min=0"`
	VehicleLimit  *int     `json:"vehicle_limit"`
	ClientLimit   *int     `json:"client_limit"`
	EmployeeLimit *int     `json:"employee_limit"`
	Features      []string `json:"features"`
}

type UpdatePlanRequest struct {
	Name          *string  `json:"name"`
	Description   *string  `json:"description"`
	PriceUSDCents *int64   `json:"price_usd_cents"`
	PriceDOPCents *int64   `json:"price_dop_cents"`
	VehicleLimit  *int     `json:"vehicle_limit"`
	ClientLimit   *int     `json:"client_limit"`
	EmployeeLimit *int     `json:"employee_limit"`
	LimitsSet     bool     `json:"limits_set"`
	Features      []string `json:"features"`
	IsActive      *bool    `json:"is_active"`
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "plan name is required and prices cannot be negative")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:          req.Name,
		Description:   req.Description,
		PriceUSDCents: req.PriceUSDCents,
		PriceDOPCents: req.PriceDOPCents,
		VehicleLimit:  req.VehicleLimit,
		ClientLimit:   req.ClientLimit,
		EmployeeLimit: req.EmployeeLimit,
		Features:      req.Features,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "plan creado")
}

func (h *PlanHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "plan")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		ID:            id,
		Name:          req.Name,
		Description:   req.Description,
		PriceUSDCents: req.PriceUSDCents,
		PriceDOPCents: req.PriceDOPCents,
		VehicleLimit:  req.VehicleLimit,
		ClientLimit:   req.ClientLimit,
		EmployeeLimit: req.EmployeeLimit,
		LimitsSet:     req.LimitsSet,
		Features:      req.Features,
		IsActive:      req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *PlanHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	result, err := h.listUC.Execute(c.Request.Context(), activeOnly)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
