package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/employee/usecases"
	"rentora/internal/domain/employee"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type EmployeeHandler struct {
	createUC *usecases.CreateEmployeeUseCase
	updateUC *usecases.UpdateEmployeeUseCase
	listUC   *usecases.ListEmployeesUseCase
	getUC    *usecases.GetEmployeeUseCase
	deleteUC *usecases.DeleteEmployeeUseCase
	logger   logger.Interface
}

func NewEmployeeHandler(
	createUC *usecases.CreateEmployeeUseCase,
	updateUC *usecases.UpdateEmployeeUseCase,
	listUC *usecases.ListEmployeesUseCase,
	getUC *usecases.GetEmployeeUseCase,
	deleteUC *usecases.DeleteEmployeeUseCase,
) *EmployeeHandler {
	return &EmployeeHandler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		getUC:    getUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateEmployeeRequest struct {
	TenantID          uint    `json:"tenant_id"`
	Name              string  `json:"name" binding:"required"`
	Cedula            string  `json:"cedula" binding:"required"`
	WorkShift         string  `json:"work_shift" binding:"required"`
	CommissionPercent float64 `json:"commission_percent" binding:"min=0,max=100"`
	HireDate          string  `json:"hire_date"`
	Phone             string  `json:"phone"`
	Address           string  `json:"address"`
}

type UpdateEmployeeRequest struct {
	Name              *string  `json:"name"`
	Cedula            *string  `json:"cedula"`
	WorkShift         *string  `json:"work_shift"`
	CommissionPercent *float64 `json:"commission_percent"`
	HireDate          *string  `json:"hire_date"`
	Phone             *string  `json:"phone"`
	Address           *string  `json:"address"`
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	principal, _, ok := requestScope(c)
	if !ok {
		return
	}

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "name, cedula and work shift are required; commission must be 0-100")
		return
	}

	tenantID, ok := writeTenant(c, principal, req.TenantID)
	if !ok {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateEmployeeCommand{
		Principal:         principal,
		TenantID:          tenantID,
		Name:              req.Name,
		Cedula:            req.Cedula,
		WorkShift:         req.WorkShift,
		CommissionPercent: req.CommissionPercent,
		HireDate:          req.HireDate,
		Phone:             req.Phone,
		Address:           req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "empleado registrado")
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateEmployeeCommand{
		ID:                id,
		TenantID:          tenantID,
		Name:              req.Name,
		Cedula:            req.Cedula,
		WorkShift:         req.WorkShift,
		CommissionPercent: req.CommissionPercent,
		HireDate:          req.HireDate,
		Phone:             req.Phone,
		Address:           req.Address,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *EmployeeHandler) List(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), employee.Filter{
		TenantID: tenantID,
		Search:   c.Query("search"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *EmployeeHandler) Get(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "employee")
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

func (h *EmployeeHandler) Delete(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "employee")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id, tenantID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "empleado eliminado", nil)
}
