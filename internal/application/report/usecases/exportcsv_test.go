package usecases

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentora/internal/domain/client"
	"rentora/internal/domain/employee"
	"rentora/internal/domain/fleet"
	"rentora/internal/domain/rental"
	"rentora/internal/shared/logger"
)

func TestExportCSVStartsWithBOM(t *testing.T) {
	uc := NewExportRentalReportCSVUseCase(newReportUseCase(nil, nil, nil, nil), logger.NewLogger())

	payload, err := uc.Execute(context.Background(), GenerateRentalReportCommand{
		TenantID: 1, Start: "2024-06-01", End: "2024-06-30",
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(payload, []byte{0xEF, 0xBB, 0xBF}))
}

func TestExportCSVRowsAndSummary(t *testing.T) {
	r := makeReportRental(1, 10, 20, 30, 10000)
	r.Comment = `devuelto con "rayones", revisar`

	vehicles := []*fleet.Vehicle{{ID: 10, Description: "Corolla", VehicleTypeID: 1}}
	clients := []*client.Client{{ID: 20, Name: "Ana"}}
	employees := []*employee.Employee{{ID: 30, Name: "Pedro"}}

	uc := NewExportRentalReportCSVUseCase(
		newReportUseCase([]*rental.Rental{r}, vehicles, clients, employees),
		logger.NewLogger(),
	)

	payload, err := uc.Execute(context.Background(), GenerateRentalReportCommand{
		TenantID: 1, Start: "2024-06-01", End: "2024-06-30",
	})
	require.NoError(t, err)

	raw := string(bytes.TrimPrefix(payload, []byte{0xEF, 0xBB, 0xBF}))

	// Quotes are doubled and the comma-bearing comment stays one field.
	assert.Contains(t, raw, `"devuelto con ""rayones"", revisar"`)

	reader := csv.NewReader(bytes.NewReader([]byte(raw)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	require.GreaterOrEqual(t, len(records), 6)
	assert.Equal(t, []string{"Número", "Fecha", "Vehículo", "Cliente", "Empleado", "Días", "Monto por Día", "Monto Total", "Estado", "Comentario"}, records[0])

	row := records[1]
	assert.Equal(t, "R-000001", row[0])
	assert.Equal(t, "2024-06-10", row[1])
	assert.Equal(t, "Corolla", row[2])
	assert.Equal(t, "Ana", row[3])
	assert.Equal(t, "Pedro", row[4])
	assert.Equal(t, "2", row[5])
	assert.Equal(t, "100.00", row[7])
	assert.Equal(t, `devuelto con "rayones", revisar`, row[9])

	// Summary block after the separator line.
	assert.Equal(t, []string{"Resumen", "2024-06-01 a 2024-06-30"}, records[2])
	assert.Equal(t, []string{"Total de rentas", "1"}, records[3])
	assert.Equal(t, []string{"Ingreso total", "100.00"}, records[4])
	assert.Equal(t, []string{"Vehículo más rentado", "Corolla", "1", "100.00"}, records[5])
}
