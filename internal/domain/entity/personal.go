package entity

import "time"

// Personal representa a una persona de la institución que puede recibir
// artículos en préstamo. Solo el correo institucional es obligatorio;
// nombre y sección pueden venir vacíos y la capa de presentación los
// degrada a centinelas ("Sin Nombre", "Sin Sección").
type Personal struct {
	ID                  int64
	CorreoInstitucional string
	Nombre              string
	Seccion             string
	CreatedAt           time.Time
}
