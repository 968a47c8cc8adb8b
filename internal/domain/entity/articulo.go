package entity

import "time"

// Articulo representa un artículo inventariable de la bodega.
// StockActual es lo disponible en bodega; StockPrestado lo que está en manos
// del personal. Un préstamo mueve cantidad de StockActual a StockPrestado y
// un regreso la devuelve.
type Articulo struct {
	ID            int64
	Nombre        string
	Descripcion   string
	CategoriaID   int64
	MarcaID       int64
	ModeloID      int64
	UbicacionID   int64
	EstadoID      int64
	NumeroSerie   string
	CodigoMinvu   string
	CodigoInterno string
	MAC           string
	StockActual   int
	StockMinimo   int
	StockPrestado int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
