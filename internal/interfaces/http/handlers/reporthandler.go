package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rentora/internal/application/report/usecases"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/utils"
)

type ReportHandler struct {
	generateUC *usecases.GenerateRentalReportUseCase
	exportUC   *usecases.ExportRentalReportCSVUseCase
	printUC    *usecases.PrintRentalReportUseCase
	logger     logger.Interface
}

func NewReportHandler(
	generateUC *usecases.GenerateRentalReportUseCase,
	exportUC *usecases.ExportRentalReportCSVUseCase,
	printUC *usecases.PrintRentalReportUseCase,
) *ReportHandler {
	return &ReportHandler{
		generateUC: generateUC,
		exportUC:   exportUC,
		printUC:    printUC,
		logger:     logger.NewLogger(),
	}
}

type GenerateReportRequest struct {
	Start         string `json:"start" binding:"required"`
	End           string `json:"end" binding:"required"`
	Status        string `json:"status"`
	ClientID      uint   `json:"client_id"`
	EmployeeID    uint   `json:"employee_id"`
	VehicleTypeID uint   `json:"vehicle_type_id"`
}

func (h *ReportHandler) Generate(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}

	var req GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "start and end dates are required")
		return
	}

	result, err := h.generateUC.Execute(c.Request.Context(), usecases.GenerateRentalReportCommand{
		TenantID:      tenantID,
		Start:         req.Start,
		End:           req.End,
		Status:        req.Status,
		ClientID:      req.ClientID,
		EmployeeID:    req.EmployeeID,
		VehicleTypeID: req.VehicleTypeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// queryCommand builds the report command from query parameters for the
// two download endpoints.
func (h *ReportHandler) queryCommand(c *gin.Context, tenantID uint) (usecases.GenerateRentalReportCommand, bool) {
	cmd := usecases.GenerateRentalReportCommand{
		TenantID: tenantID,
		Start:    c.Query("start"),
		End:      c.Query("end"),
		Status:   c.Query("status"),
	}
	for query, dest := range map[string]*uint{
		"client_id":       &cmd.ClientID,
		"employee_id":     &cmd.EmployeeID,
		"vehicle_type_id": &cmd.VehicleTypeID,
	} {
		raw := c.Query(query)
		if raw == "" {
			continue
		}
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid "+query)
			return cmd, false
		}
		*dest = uint(parsed)
	}
	return cmd, true
}

func (h *ReportHandler) ExportCSV(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	cmd, ok := h.queryCommand(c, tenantID)
	if !ok {
		return
	}

	payload, err := h.exportUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filename := "reporte-rentas-" + cmd.Start + "-" + cmd.End + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", payload)
}

func (h *ReportHandler) Print(c *gin.Context) {
	_, tenantID, ok := requestScope(c)
	if !ok {
		return
	}
	cmd, ok := h.queryCommand(c, tenantID)
	if !ok {
		return
	}

	payload, err := h.printUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", payload)
}
