package prestamo

import (
	"sort"

	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
)

// ArticuloPrestado es la cantidad neta que una persona mantiene prestada de
// un artículo. Alimenta el selector "qué puede devolver esta persona".
type ArticuloPrestado struct {
	ArticuloID       int64 `json:"articulo_id"`
	CantidadPrestada int   `json:"cantidad_prestada"`
}

// ArticulosPrestados calcula, por suma neta sobre el flujo crudo, lo que una
// persona mantiene prestado por artículo: +cantidad por cada "Prestamo",
// -cantidad por cada "Regresado", exponiendo solo los netos positivos.
//
// Es deliberadamente independiente del emparejamiento de Conciliar: la
// aritmética neta tolera devoluciones sin préstamo (que el libro marca como
// no encontradas), por lo que ante datos anómalos ambas vistas pueden
// discrepar. Se mantienen separadas a propósito.
func ArticulosPrestados(movs []*entity.Movimiento, personalID int64) []ArticuloPrestado {
	netos := make(map[int64]int)
	for _, m := range movs {
		if m == nil || m.PersonalID != personalID {
			continue
		}
		switch m.TipoMovimiento {
		case entity.MovimientoPrestamo:
			netos[m.ArticuloID] += m.Cantidad
		case entity.MovimientoRegresado:
			netos[m.ArticuloID] -= m.Cantidad
		}
	}

	prestados := make([]ArticuloPrestado, 0, len(netos))
	for articuloID, neto := range netos {
		if neto > 0 {
			prestados = append(prestados, ArticuloPrestado{
				ArticuloID:       articuloID,
				CantidadPrestada: neto,
			})
		}
	}
	sort.Slice(prestados, func(i, j int) bool {
		return prestados[i].ArticuloID < prestados[j].ArticuloID
	})
	return prestados
}

// CantidadPrestada devuelve el neto prestado de un artículo puntual, 0 si la
// persona no lo tiene prestado.
func CantidadPrestada(movs []*entity.Movimiento, personalID, articuloID int64) int {
	for _, p := range ArticulosPrestados(movs, personalID) {
		if p.ArticuloID == articuloID {
			return p.CantidadPrestada
		}
	}
	return 0
}
