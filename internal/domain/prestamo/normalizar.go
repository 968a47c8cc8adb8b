package prestamo

import (
	"fmt"

	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
)

// Centinelas de presentación: los campos ausentes nunca llegan vacíos a la
// tabla de historial, siempre degradan a uno de estos textos.
const (
	ArticuloNoEncontrado = "Artículo no encontrado"
	SinCorreo            = "Sin Correo"
	SinNombre            = "Sin Nombre"
	SinSeccion           = "Sin Sección"
	SinModelo            = "Sin Modelo"
	SinMarca             = "Sin Marca"

	SinFecha             = "-"
	AunNoRegresado       = "Aún no se ha regresado"
	PrestamoNoEncontrado = "No se encontró el Préstamo"
)

// Referencias son las tablas de consulta que el normalizador usa para
// resolver etiquetas. Marcas y Modelos mapean id a nombre.
type Referencias struct {
	Articulos map[int64]*entity.Articulo
	Personal  map[int64]*entity.Personal
	Marcas    map[int64]string
	Modelos   map[int64]string
}

// datosPresentacion son los campos denormalizados que comparten todas las
// filas del historial de un mismo movimiento.
type datosPresentacion struct {
	Articulo            string
	CorreoInstitucional string
	Nombre              string
	Seccion             string
}

// EtiquetaArticulo construye la etiqueta de un artículo tal como la muestra
// el selector de préstamos: nombre, más modelo y marca si se resuelven.
func EtiquetaArticulo(a *entity.Articulo, modelos, marcas map[int64]string) string {
	etiqueta := a.Nombre
	if etiqueta == "" {
		etiqueta = SinNombre
	}
	if nombre, ok := modelos[a.ModeloID]; ok && nombre != "" {
		etiqueta += fmt.Sprintf(" - Modelo: %s", nombre)
	}
	if nombre, ok := marcas[a.MarcaID]; ok && nombre != "" {
		etiqueta += fmt.Sprintf(" - Marca: %s", nombre)
	}
	return etiqueta
}

// normalizar resuelve las etiquetas de un movimiento contra las tablas de
// referencia. Nunca falla: toda referencia ausente degrada a su centinela.
func normalizar(mov *entity.Movimiento, refs Referencias) datosPresentacion {
	d := datosPresentacion{
		Articulo:            ArticuloNoEncontrado,
		CorreoInstitucional: SinCorreo,
		Nombre:              SinNombre,
		Seccion:             SinSeccion,
	}
	if a, ok := refs.Articulos[mov.ArticuloID]; ok && a != nil {
		d.Articulo = EtiquetaArticulo(a, refs.Modelos, refs.Marcas)
	}
	if p, ok := refs.Personal[mov.PersonalID]; ok && p != nil {
		if p.CorreoInstitucional != "" {
			d.CorreoInstitucional = p.CorreoInstitucional
		}
		if p.Nombre != "" {
			d.Nombre = p.Nombre
		}
		if p.Seccion != "" {
			d.Seccion = p.Seccion
		}
	}
	return d
}
