package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/rental/usecases"
	"rentora/internal/domain/rental"
	"rentora/internal/shared/biztime"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type RentalHandler struct {
	createUC *usecases.CreateRentalUseCase
	returnUC *usecases.ReturnRentalUseCase
	listUC   *usecases.ListRentalsUseCase
	getUC    *usecases.GetRentalUseCase
	logger   logger.Interface
}

func NewRentalHandler(
	createUC *usecases.CreateRentalUseCase,
	returnUC *usecases.ReturnRentalUseCase,
	listUC *usecases.ListRentalsUseCase,
	getUC *usecases.GetRentalUseCase,
) *RentalHandler {
	return &RentalHandler{
		createUC: createUC,
		returnUC: returnUC,
		listUC:   listUC,
		getUC:    getUC,
		logger:   logger.NewLogger(),
	}
}

type CreateRentalRequest struct {
	TenantID     uint   `json:"tenant_id"`
	EmployeeID   uint   `json:"employee_id" binding:"required"`
	VehicleID    uint   `json:"vehicle_id" binding:"required"`
	ClientID     uint   `json:"client_id" binding:"required"`
	InspectionID *uint  `json:"inspection_id"`
	RentalDate   string `json:"rental_date"`
	DayCount     int    `json:"day_count" binding:"required,min=1"`
	Comment      string `json:"comment"`
}

type ReturnRentalRequest struct {
	ReturnDate string `json:"return_date"`
}

func (h *RentalHandler) Create(c *gin.Context) {
	principal, _, ok := requestScope(c)
	if !ok {
		return
	}

	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "employee, vehicle, client and a day count of at least 1 are required")
		return
	}

	tenantID, ok := writeTenant(c, principal, req.TenantID)
	if !ok {
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateRentalCommand{
		TenantID:     tenantID,
		EmployeeID:   req.EmployeeID,
		VehicleID:    req.VehicleID,
		ClientID:     req.ClientID,
		InspectionID: req.InspectionID,
		RentalDate:   req.RentalDate,
		DayCount:     req.DayCount,
		Comment:      req.Comment,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.CreatedResponse(c, result, "renta registrada")
}

func (h *RentalHandler) Return(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "rental")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	// The body is optional; an empty one returns the vehicle today.
	var req ReturnRentalRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.returnUC.Execute(c.Request.Context(), usecases.ReturnRentalCommand{
		ID:         id,
		TenantID:   tenantID,
		ReturnDate: req.ReturnDate,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *RentalHandler) List(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}

	filter := rental.Filter{
		TenantID: tenantID,
		Status:   rental.Status(c.Query("status")),
		Search:   c.Query("search"),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid rental status")
		return
	}
	if raw := c.Query("client_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid client_id")
			return
		}
		filter.ClientID = uint(parsed)
	}
	if raw := c.Query("employee_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid employee_id")
			return
		}
		filter.EmployeeID = uint(parsed)
	}
	if raw := c.Query("from"); raw != "" {
		from, err := biztime.ParseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid from date, use YYYY-MM-DD")
			return
		}
		filter.From = from
	}
	if raw := c.Query("to"); raw != "" {
		to, err := biztime.ParseDate(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid to date, use YYYY-MM-DD")
			return
		}
		filter.To = to
	}

	result, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

func (h *RentalHandler) Get(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	id, err := utils.ParseIDParam(c, "id", "rental")
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
