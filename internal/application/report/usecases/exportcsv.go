package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"rentora/internal/application/report/dto"
	"rentora/internal/shared/logger"
)

// utf8BOM lets Excel pick up the accented Spanish headers correctly.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ExportRentalReportCSVUseCase renders a generated report as CSV: the row
// list, a blank line, then the summary block.
type ExportRentalReportCSVUseCase struct {
	generate *GenerateRentalReportUseCase
	logger   logger.Interface
}

func NewExportRentalReportCSVUseCase(generate *GenerateRentalReportUseCase, logger logger.Interface) *ExportRentalReportCSVUseCase {
	return &ExportRentalReportCSVUseCase{generate: generate, logger: logger}
}

func (uc *ExportRentalReportCSVUseCase) Execute(ctx context.Context, cmd GenerateRentalReportCommand) ([]byte, error) {
	report, err := uc.generate.Execute(ctx, cmd)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Write(utf8BOM)

	w := csv.NewWriter(&buf)
	records := [][]string{
		{"Número", "Fecha", "Vehículo", "Cliente", "Empleado", "Días", "Monto por Día", "Monto Total", "Estado", "Comentario"},
	}
	for _, row := range report.Rows {
		records = append(records, []string{
			row.Number,
			row.RentalDate,
			row.Vehicle,
			row.Client,
			row.Employee,
			strconv.Itoa(row.DayCount),
			row.PricePerDay,
			row.Total,
			row.Status,
			row.Comment,
		})
	}

	records = append(records,
		[]string{},
		[]string{"Resumen", fmt.Sprintf("%s a %s", report.Start, report.End)},
		[]string{"Total de rentas", strconv.Itoa(report.TotalRentals)},
		[]string{"Ingreso total", report.TotalRevenue},
	)
	records = append(records, leaderRecords(report)...)

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write report CSV: %w", err)
	}
	return buf.Bytes(), nil
}

func leaderRecords(report *dto.RentalReportDTO) [][]string {
	var records [][]string
	if report.TopVehicle != nil {
		records = append(records, []string{"Vehículo más rentado", report.TopVehicle.Name, strconv.Itoa(report.TopVehicle.Count), report.TopVehicle.Revenue})
	}
	if report.TopClient != nil {
		records = append(records, []string{"Mejor cliente", report.TopClient.Name, strconv.Itoa(report.TopClient.Count), report.TopClient.Revenue})
	}
	if report.TopEmployee != nil {
		records = append(records, []string{"Mejor empleado", report.TopEmployee.Name, strconv.Itoa(report.TopEmployee.Count), report.TopEmployee.Revenue})
	}
	return records
}
