package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/tenant/usecases"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type TenantHandler struct {
	listUC       *usecases.ListTenantsUseCase
	getUC        *usecases.GetTenantUseCase
	updateUC     *usecases.UpdateTenantUseCase
	deleteUC     *usecases.DeleteTenantUseCase
	inviteUC     *usecases.InviteUserUseCase
	membersUC    *usecases.ListMembersUseCase
	changeRoleUC *usecases.ChangeMemberRoleUseCase
	logger       logger.Interface
}

func NewTenantHandler(
	listUC *usecases.ListTenantsUseCase,
	getUC *usecases.GetTenantUseCase,
	updateUC *usecases.UpdateTenantUseCase,
	deleteUC *usecases.DeleteTenantUseCase,
	inviteUC *usecases.InviteUserUseCase,
	membersUC *usecases.ListMembersUseCase,
	changeRoleUC *usecases.ChangeMemberRoleUseCase,
) *TenantHandler {
	return &TenantHandler{
		listUC:       listUC,
		getUC:        getUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		inviteUC:     inviteUC,
		membersUC:    membersUC,
		changeRoleUC: changeRoleUC,
		logger:       logger.NewLogger(),
	}
}

type UpdateTenantRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	LogoURL  *string `json:"logo_url"`
	IsActive *bool   `json:"is_active"`
}

type InviteUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`
}

type ChangeMemberRoleRequest struct {
	Role       string `json:"role"`
	Deactivate bool   `json:"deactivate"`
}

func (h *TenantHandler) List(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *TenantHandler) Get(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *TenantHandler) Update(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateTenantCommand{
		ID:       id,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Address:  req.Address,
		LogoURL:  req.LogoURL,
		IsActive: req.IsActive,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// Delete removes the tenant permanently; the database cascades every
// tenant-owned row.
func (h *TenantHandler) Delete(c *gin.Context) {
	id, err := utils.ParseIDParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "empresa eliminada", nil)
}

func (h *TenantHandler) InviteUser(c *gin.Context) {
	tenantID, err := utils.ParseIDParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req InviteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "email, name, role and a password of at least 8 characters are required")
		return
	}

	result, err := h.inviteUC.Execute(c.Request.Context(), usecases.InviteUserCommand{
		TenantID: tenantID,
		Email:    req.Email,
		Name:     req.Name,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "usuario agregado")
}

func (h *TenantHandler) ListMembers(c *gin.Context) {
	tenantID, err := utils.ParseIDParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.membersUC.Execute(c.Request.Context(), tenantID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *TenantHandler) ChangeMemberRole(c *gin.Context) {
	tenantID, err := utils.ParseIDParam(c, "id", "tenant")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	membershipID, err := utils.ParseIDParam(c, "memberId", "membership")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err = h.changeRoleUC.Execute(c.Request.Context(), usecases.ChangeMemberRoleCommand{
		TenantID:     tenantID,
		MembershipID: membershipID,
		Role:         req.Role,
		Deactivate:   req.Deactivate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "membresía actualizada", nil)
}
