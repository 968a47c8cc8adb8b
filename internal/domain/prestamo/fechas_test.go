package prestamo_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sistema-bodega/bodega-api/internal/domain/prestamo"
)

// FormatearDuracion trabaja por buckets con truncamiento hacia abajo:
// minutos hasta la hora, horas hasta el día, días en adelante.
func TestFormatearDuracion_Buckets(t *testing.T) {
	casos := []struct {
		nombre   string
		duracion time.Duration
		esperado string
	}{
		{"cero", 0, "0 minuto(s)"},
		{"menos de un minuto", 59 * time.Second, "0 minuto(s)"},
		{"un minuto", time.Minute, "1 minuto(s)"},
		{"límite superior de minutos", 59 * time.Minute, "59 minuto(s)"},
		{"una hora exacta", 60 * time.Minute, "1 hora(s)"},
		{"noventa minutos truncan a una hora", 90 * time.Minute, "1 hora(s)"},
		{"límite superior de horas", 23*time.Hour + 59*time.Minute, "23 hora(s)"},
		{"un día exacto", 24 * time.Hour, "1 día(s)"},
		{"dos días y medio truncan a dos días", 60 * time.Hour, "2 día(s)"},
	}
	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			assert.Equal(t, c.esperado, prestamo.FormatearDuracion(c.duracion))
		})
	}
}

// Una duración negativa es un error del caller: se presenta como cero, nunca
// como un bucket negativo.
func TestFormatearDuracion_NegativaSePresentaComoCero(t *testing.T) {
	assert.Equal(t, "0 minuto(s)", prestamo.FormatearDuracion(-3*time.Hour))
}

func TestFormatearFecha_TiempoCero(t *testing.T) {
	assert.Equal(t, "-", prestamo.FormatearFecha(time.Time{}))
}

func TestFormatearFecha_FormatoChileno(t *testing.T) {
	// 2024-06-15 18:30 UTC es 14:30 en Chile (invierno austral, UTC-4).
	f := time.Date(2024, 6, 15, 18, 30, 0, 0, time.UTC)
	assert.Equal(t, "15-06-2024 14:30", prestamo.FormatearFecha(f))
}
