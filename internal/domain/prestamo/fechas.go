package prestamo

import (
	"fmt"
	"time"
)

// zonaChile es la zona horaria de presentación de todas las fechas del
// historial. Si la base de datos de zonas no está disponible se cae a UTC.
var zonaChile = func() *time.Location {
	loc, err := time.LoadLocation("America/Santiago")
	if err != nil {
		return time.UTC
	}
	return loc
}()

// FormatearDuracion convierte una duración en el bucket humano que muestra la
// columna "Duración": minutos bajo la hora, horas bajo el día, días después.
// Siempre trunca hacia abajo. Duraciones negativas (error del caller) se
// presentan como "0 minuto(s)".
func FormatearDuracion(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutos := int64(d / time.Minute)
	horas := int64(d / time.Hour)
	dias := int64(d / (24 * time.Hour))
	if minutos < 60 {
		return fmt.Sprintf("%d minuto(s)", minutos)
	}
	if horas < 24 {
		return fmt.Sprintf("%d hora(s)", horas)
	}
	return fmt.Sprintf("%d día(s)", dias)
}

// FormatearFecha presenta un timestamp en hora de Chile con el formato
// dd-mm-yyyy hh:mm. El tiempo cero se presenta como "-".
func FormatearFecha(t time.Time) string {
	if t.IsZero() {
		return SinFecha
	}
	return t.In(zonaChile).Format("02-01-2006 15:04")
}
