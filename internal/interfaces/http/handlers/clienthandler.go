package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/client/usecases"
	"rentora/internal/domain/client"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type ClientHandler struct {
	createUC *usecases.CreateClientUseCase
	updateUC *usecases.UpdateClientUseCase
	listUC   *usecases.ListClientsUseCase
	getUC    *usecases.GetClientUseCase
	deleteUC *usecases.DeleteClientUseCase
	logger   logger.Interface
}

func NewClientHandler(
	createUC *usecases.CreateClientUseCase,
	updateUC *usecases.UpdateClientUseCase,
	listUC *usecases.ListClientsUseCase,
	getUC *usecases.GetClientUseCase,
	deleteUC *usecases.DeleteClientUseCase,
) *ClientHandler {
	return &ClientHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateClientRequest struct {
	TenantID         uint   `json:"tenant_id"`
	Name             string `json:"name" binding:"required"`
	Cedula           string `json:"cedula" binding:"required"`
	CreditCardNumber string `json:"credit_card_number"`
	CreditLimitCents int64  `json:"credit_limit_cents" binding:"min=0"`
	PersonType       string `json:"person_type" binding:"required"`
	Phone            string `json:"phone"`
	Address          string `json:"address"`
}

type UpdateClientRequest struct {
	Name             *string `json:"name"`
	Cedula           *string `json:"cedula"`
	CreditCardNumber *string `json:"credit_card_number"`
	CreditLimitCents *int64  `json:"credit_limit_cents"`
	PersonType       *string `json:"person_type"`
	Phone            *string `json:"phone"`
	Address          *string `json:"address"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	principal, _, ok := requestScope(c)
	if !ok {
		return
	}

	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, cedula and person type are required")
		return
	}

	tenantID, ok := writeTenant(c, principal, req.TenantID)
	if !ok {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		Principal:        principal,
		TenantID:         tenantID,
		Name:             req.Name,
		Cedula:           req.Cedula,
		CreditCardNumber: req.CreditCardNumber,
		CreditLimitCents: req.CreditLimitCents,
		PersonType:       req.PersonType,
		Phone:            req.Phone,
		Address:          req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "cliente registrado")
}

func (h *ClientHandler) Update(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		ID:               id,
		TenantID:         tenantID,
		Name:             req.Name,
		Cedula:           req.Cedula,
		CreditCardNumber: req.CreditCardNumber,
		CreditLimitCents: req.CreditLimitCents,
		PersonType:       req.PersonType,
		Phone:            req.Phone,
		Address:          req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ClientHandler) List(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), client.Filter{
		TenantID: tenantID,
		Search:   c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *ClientHandler) Get(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "client")
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

func (h *ClientHandler) Delete(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "client")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, tenantID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "cliente eliminado", nil)
}
