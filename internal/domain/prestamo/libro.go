// Package prestamo implementa el libro de préstamos y devoluciones: a partir
// del flujo plano de movimientos "Prestamo"/"Regresado" reconstruye qué
// préstamo cierra cada devolución, calcula duraciones y deriva las cantidades
// que cada persona mantiene prestadas por artículo.
package prestamo

import (
	"sort"
	"time"

	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
)

// Clave identifica una cola de préstamos abiertos: un artículo en manos de
// una persona.
type Clave struct {
	ArticuloID int64
	PersonalID int64
}

// PrestamoAbierto es una entrada de la cola: el movimiento "Prestamo" que la
// originó y cuánta cantidad queda sin devolver. CantidadRestante nunca baja
// de cero; una entrada en cero queda cerrada pero permanece para el historial.
type PrestamoAbierto struct {
	MovimientoID     int64
	CantidadRestante int
	PrestadoEn       time.Time
}

// FilaHistorial es una fila de la tabla de historial, una por movimiento.
// Para un préstamo, FechaRegreso y Duracion se completan cuando una
// devolución posterior lo cierra; para una devolución sin préstamo elegible,
// Duracion queda en PrestamoNoEncontrado.
type FilaHistorial struct {
	MovimientoID        int64     `json:"id"`
	ArticuloID          int64     `json:"articulo_id"`
	Articulo            string    `json:"articulo"`
	PersonalID          int64     `json:"personal_id"`
	CorreoInstitucional string    `json:"correo_institucional"`
	Nombre              string    `json:"nombre"`
	Seccion             string    `json:"seccion"`
	TipoMovimiento      string    `json:"tipo_movimiento"`
	Cantidad            int       `json:"cantidad"`
	FechaPrestamo       string    `json:"fecha_prestamo"`
	FechaRegreso        string    `json:"fecha_regreso"`
	Duracion            string    `json:"duracion"`
	FechaMovimiento     time.Time `json:"fecha_movimiento"`
}

// Resultado es la proyección derivada completa del libro. Se reconstruye
// desde cero en cada carga de datos; nunca se persiste.
type Resultado struct {
	Historial []FilaHistorial
	Abiertos  map[Clave][]PrestamoAbierto
}

// Conciliar procesa el flujo de movimientos en orden cronológico ascendente y
// produce el historial emparejado más el índice de préstamos abiertos.
//
// Regla por movimiento:
//   - "Prestamo": se encola una entrada abierta con toda su cantidad y se
//     emite su fila con regreso pendiente.
//   - "Regresado": se busca en la cola (articulo, personal) la primera
//     entrada, en orden de inserción, cuya cantidad restante alcance para
//     absorber la devolución (first-fit, no FIFO exacto). Si existe, se
//     descuenta, se parcha la fila del préstamo ya emitida y se emite la fila
//     de la devolución con la misma duración. Si no existe, la devolución se
//     emite marcada como préstamo no encontrado: es una inconsistencia de
//     datos, no un error.
//
// El parcheo de filas ya emitidas se hace por índice movimiento→posición,
// nunca mutando durante la iteración sobre el propio historial.
func Conciliar(movs []*entity.Movimiento, refs Referencias) *Resultado {
	ordenados := make([]*entity.Movimiento, 0, len(movs))
	for _, m := range movs {
		if m != nil && m.EsPrestamoORegreso() {
			ordenados = append(ordenados, m)
		}
	}
	sort.SliceStable(ordenados, func(i, j int) bool {
		if ordenados[i].Fecha.Equal(ordenados[j].Fecha) {
			return ordenados[i].ID < ordenados[j].ID
		}
		return ordenados[i].Fecha.Before(ordenados[j].Fecha)
	})

	res := &Resultado{
		Historial: make([]FilaHistorial, 0, len(ordenados)),
		Abiertos:  make(map[Clave][]PrestamoAbierto),
	}
	// Posición de la fila de cada préstamo emitido, para el parcheo.
	posPorMovimiento := make(map[int64]int, len(ordenados))

	for _, mov := range ordenados {
		datos := normalizar(mov, refs)
		clave := Clave{ArticuloID: mov.ArticuloID, PersonalID: mov.PersonalID}
		fila := FilaHistorial{
			MovimientoID:        mov.ID,
			ArticuloID:          mov.ArticuloID,
			Articulo:            datos.Articulo,
			PersonalID:          mov.PersonalID,
			CorreoInstitucional: datos.CorreoInstitucional,
			Nombre:              datos.Nombre,
			Seccion:             datos.Seccion,
			TipoMovimiento:      mov.TipoMovimiento,
			Cantidad:            mov.Cantidad,
			FechaMovimiento:     mov.Fecha,
		}

		switch mov.TipoMovimiento {
		case entity.MovimientoPrestamo:
			res.Abiertos[clave] = append(res.Abiertos[clave], PrestamoAbierto{
				MovimientoID:     mov.ID,
				CantidadRestante: mov.Cantidad,
				PrestadoEn:       mov.Fecha,
			})
			fila.FechaPrestamo = FormatearFecha(mov.Fecha)
			fila.FechaRegreso = SinFecha
			fila.Duracion = AunNoRegresado
			posPorMovimiento[mov.ID] = len(res.Historial)
			res.Historial = append(res.Historial, fila)

		case entity.MovimientoRegresado:
			abierto := primerCalce(res.Abiertos[clave], mov.Cantidad)
			if abierto == nil {
				fila.FechaPrestamo = SinFecha
				fila.FechaRegreso = FormatearFecha(mov.Fecha)
				fila.Duracion = PrestamoNoEncontrado
				res.Historial = append(res.Historial, fila)
				continue
			}
			abierto.CantidadRestante -= mov.Cantidad
			duracion := FormatearDuracion(mov.Fecha.Sub(abierto.PrestadoEn))

			if pos, ok := posPorMovimiento[abierto.MovimientoID]; ok {
				res.Historial[pos].FechaRegreso = FormatearFecha(mov.Fecha)
				res.Historial[pos].Duracion = duracion
			}

			fila.FechaPrestamo = FormatearFecha(abierto.PrestadoEn)
			fila.FechaRegreso = FormatearFecha(mov.Fecha)
			fila.Duracion = duracion
			res.Historial = append(res.Historial, fila)
		}
	}
	return res
}

// primerCalce devuelve la primera entrada de la cola, en orden de inserción,
// con cantidad restante suficiente para absorber la devolución.
func primerCalce(cola []PrestamoAbierto, cantidad int) *PrestamoAbierto {
	for i := range cola {
		if cola[i].CantidadRestante >= cantidad {
			return &cola[i]
		}
	}
	return nil
}
