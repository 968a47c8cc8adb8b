package http

import (
	"bufio"
	"encoding/csv"
	"io"
	"strconv"

	"github.com/sistema-bodega/bodega-api/internal/domain/prestamo"
)

const (
	csvFlushEvery = 200
	csvBufferSize = 32 * 1024
)

var csvCabeceraHistorial = []string{
	"id", "articulo", "persona", "correo_institucional", "seccion",
	"tipo_movimiento", "cantidad", "fecha_prestamo", "fecha_regreso", "duracion",
}

// escribirHistorialCSV vuelca el historial conciliado como CSV (CRLF, con
// cabecera), haciendo flush cada csvFlushEvery filas.
func escribirHistorialCSV(w io.Writer, filas []prestamo.FilaHistorial) error {
	buf := bufio.NewWriterSize(w, csvBufferSize)
	cw := csv.NewWriter(buf)
	cw.UseCRLF = true

	if err := cw.Write(csvCabeceraHistorial); err != nil {
		return err
	}
	pendientes := 0
	for _, f := range filas {
		row := []string{
			strconv.FormatInt(f.MovimientoID, 10),
			f.Articulo,
			f.Nombre,
			f.CorreoInstitucional,
			f.Seccion,
			f.TipoMovimiento,
			strconv.Itoa(f.Cantidad),
			f.FechaPrestamo,
			f.FechaRegreso,
			f.Duracion,
		}
		if err := cw.Write(row); err != nil {
			return err
		}
		pendientes++
		if pendientes >= csvFlushEvery {
			cw.Flush()
			if err := cw.Error(); err != nil {
				return err
			}
			pendientes = 0
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return buf.Flush()
}
