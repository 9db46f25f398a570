package usecases

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"rentora/internal/application/report/dto"
	"rentora/internal/shared/logger"
	"rentora/internal/shared/services/markdown"
)

const printTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Reporte de Rentas {{.Start}} a {{.End}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 4px 8px; text-align: left; }
th { background: #f0f0f0; }
.summary { margin-top: 1.5rem; }
.comment { color: #555; }
@media print { body { margin: 0; } }
</style>
</head>
<body>
<h1>Reporte de Rentas</h1>
<p>Período: {{.Start}} a {{.End}}</p>
<table>
<thead>
<tr><th>Número</th><th>Fecha</th><th>Vehículo</th><th>Cliente</th><th>Empleado</th><th>Días</th><th>Monto Total</th><th>Estado</th><th>Comentario</th></tr>
</thead>
<tbody>
{{range .Rows}}<tr>
<td>{{.Number}}</td>
<td>{{.RentalDate}}</td>
<td>{{.Vehicle}}</td>
<td>{{.Client}}</td>
<td>{{.Employee}}</td>
<td>{{.DayCount}}</td>
<td>{{.Total}}</td>
<td>{{.Status}}</td>
<td class="comment">{{.CommentHTML}}</td>
</tr>
{{end}}</tbody>
</table>
<div class="summary">
<h2>Resumen</h2>
<p>Total de rentas: {{.TotalRentals}}</p>
<p>Ingreso total: {{.TotalRevenue}}</p>
{{with .TopVehicle}}<p>Vehículo más rentado: {{.Name}} ({{.Count}} rentas, {{.Revenue}})</p>{{end}}
{{with .TopClient}}<p>Mejor cliente: {{.Name}} ({{.Count}} rentas, {{.Revenue}})</p>{{end}}
{{with .TopEmployee}}<p>Mejor empleado: {{.Name}} ({{.Count}} rentas, {{.Revenue}})</p>{{end}}
</div>
</body>
</html>
`

type printRow struct {
	dto.ReportRowDTO
	CommentHTML template.HTML
}

type printData struct {
	*dto.RentalReportDTO
	Rows []printRow
}

// PrintRentalReportUseCase renders a generated report as a standalone HTML
// document. Comments are markdown-rendered and sanitized before they reach
// the template.
type PrintRentalReportUseCase struct {
	generate *GenerateRentalReportUseCase
	markdown markdown.Service
	logger   logger.Interface
	tmpl     *template.Template
}

func NewPrintRentalReportUseCase(generate *GenerateRentalReportUseCase, md markdown.Service, logger logger.Interface) *PrintRentalReportUseCase {
	return &PrintRentalReportUseCase{
		generate: generate,
		markdown: md,
		logger:   logger,
		tmpl:     template.Must(template.New("rental-report").Parse(printTemplate)),
	}
}

func (uc *PrintRentalReportUseCase) Execute(ctx context.Context, cmd GenerateRentalReportCommand) ([]byte, error) {
	report, err := uc.generate.Execute(ctx, cmd)
	if err != nil {
		return nil, err
	}

	data := printData{RentalReportDTO: report}
	for _, row := range report.Rows {
		rendered, err := uc.markdown.ToHTMLSanitized(row.Comment)
		if err != nil {
			uc.logger.Errorw("failed to render rental comment", "rental_id", row.RentalID, "error", err)
			rendered = template.HTMLEscapeString(row.Comment)
		}
		data.Rows = append(data.Rows, printRow{ReportRowDTO: row, CommentHTML: template.HTML(rendered)})
	}

	var buf bytes.Buffer
	if err := uc.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render report HTML: %w", err)
	}
	return buf.Bytes(), nil
}
