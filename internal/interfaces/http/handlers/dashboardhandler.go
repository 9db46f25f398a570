package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/dashboard/usecases"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type DashboardHandler struct {
	tenantStatsUC    *usecases.GetTenantStatsUseCase
	financialStatsUC *usecases.GetFinancialStatsUseCase
	adminStatsUC     *usecases.GetAdminStatsUseCase
	logger           logger.Interface
}

func NewDashboardHandler(
	tenantStatsUC *usecases.GetTenantStatsUseCase,
	financialStatsUC *usecases.GetFinancialStatsUseCase,
	adminStatsUC *usecases.GetAdminStatsUseCase,
) *DashboardHandler {
	return &DashboardHandler{
		tenantStatsUC:    tenantStatsUC,
		financialStatsUC: financialStatsUC,
		adminStatsUC:     adminStatsUC,
		logger:           logger.NewLogger(),
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	if tenantID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "tenant_id is required")
		return
	}

	result, err := h.tenantStatsUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *DashboardHandler) Financial(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	if tenantID == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "tenant_id is required")
		return
	}

	result, err := h.financialStatsUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *DashboardHandler) AdminStats(c *gin.Context) {
	result, err := h.adminStatsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}
