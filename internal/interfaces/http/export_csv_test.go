package http

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sistema-bodega/bodega-api/internal/domain/prestamo"
)

func filasDeEjemplo() []prestamo.FilaHistorial {
	return []prestamo.FilaHistorial{
		{
			MovimientoID:        1,
			Articulo:            "Notebook - Modelo: ThinkPad T14 - Marca: Lenovo",
			Nombre:              "Juan Pérez",
			CorreoInstitucional: "juan@minvu.cl",
			Seccion:             "Informática",
			TipoMovimiento:      "Prestamo",
			Cantidad:            1,
			FechaPrestamo:       "10-03-2024 09:00",
			FechaRegreso:        "10-03-2024 10:30",
			Duracion:            "1 hora(s)",
		},
		{
			MovimientoID:        2,
			Articulo:            "Proyector",
			Nombre:              "Sin Nombre",
			CorreoInstitucional: "Sin Correo",
			Seccion:             "Sin Sección",
			TipoMovimiento:      "Prestamo",
			Cantidad:            2,
			FechaPrestamo:       "11-03-2024 15:00",
			FechaRegreso:        "-",
			Duracion:            "Aún no se ha regresado",
		},
	}
}

func TestEscribirHistorialCSV_CabeceraYFilas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, escribirHistorialCSV(&buf, filasDeEjemplo()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3, "cabecera + una fila por movimiento")

	assert.Equal(t, csvCabeceraHistorial, records[0])
	assert.Equal(t, []string{
		"1", "Notebook - Modelo: ThinkPad T14 - Marca: Lenovo", "Juan Pérez",
		"juan@minvu.cl", "Informática", "Prestamo", "1",
		"10-03-2024 09:00", "10-03-2024 10:30", "1 hora(s)",
	}, records[1])
	assert.Equal(t, "Aún no se ha regresado", records[2][9],
		"los centinelas de presentación se exportan tal cual")
}

func TestEscribirHistorialCSV_UsaCRLF(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, escribirHistorialCSV(&buf, filasDeEjemplo()))

	assert.True(t, strings.HasSuffix(buf.String(), "\r\n"),
		"las líneas terminan en CRLF para Excel")
	assert.Equal(t, 3, strings.Count(buf.String(), "\r\n"))
}

func TestEscribirHistorialCSV_SinFilas(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, escribirHistorialCSV(&buf, nil))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1, "solo la cabecera")
}

func TestEscribirHistorialCSV_MuchasFilas(t *testing.T) {
	filas := make([]prestamo.FilaHistorial, 0, csvFlushEvery*2+7)
	for i := 0; i < cap(filas); i++ {
		filas = append(filas, filasDeEjemplo()[0])
	}

	var buf bytes.Buffer
	require.NoError(t, escribirHistorialCSV(&buf, filas))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, len(filas)+1, "el flush intermedio no pierde ni duplica filas")
}
