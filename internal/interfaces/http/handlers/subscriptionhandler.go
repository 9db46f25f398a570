package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/subscription/usecases"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type SubscriptionHandler struct {
	assignUC *usecases.AssignPlanUseCase
	getUC    *usecases.GetSubscriptionUseCase
	usageUC  *usecases.GetUsageUseCase
	logger   logger.Interface
}

func NewSubscriptionHandler(
	assignUC *usecases.AssignPlanUseCase,
	getUC *usecases.GetSubscriptionUseCase,
	usageUC *usecases.GetUsageUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		assignUC: assignUC,
		getUC:    getUC,
		usageUC:  usageUC,
		logger:   logger.NewLogger(),
	}
}

type AssignPlanRequest struct {
	TenantID  uint       `json:"tenant_id" binding:"required"`
	PlanID    uint       `json:"plan_id" binding:"required"`
	EndsAt    *time.Time `json:"ends_at"`
	AutoRenew bool       `json:"auto_renew"`
}

func (h *SubscriptionHandler) Assign(c *gin.Context) {
	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "tenant_id and plan_id are required")
		return
	}

	result, err := h.assignUC.Execute(c.Request.Context(), usecases.AssignPlanCommand{
		TenantID:  req.TenantID,
		PlanID:    req.PlanID,
		EndsAt:    req.EndsAt,
		AutoRenew: req.AutoRenew,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "plan asignado")
}

// Get returns the caller's active subscription; the superadmin names a
// tenant with the tenant_id query parameter.
func (h *SubscriptionHandler) Get(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	if tenantID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "tenant_id is required")
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *SubscriptionHandler) Usage(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	if tenantID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "tenant_id is required")
		return
	}

	result, err := h.usageUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
