package entity

import "time"

// Roles de usuario de la aplicación.
const (
	RolAdmin     = "admin"
	RolBodeguero = "bodeguero"
	RolConsulta  = "consulta"
)

// Usuario representa una cuenta de acceso al sistema.
type Usuario struct {
	ID           int64
	Email        string
	Nombre       string
	PasswordHash string
	Rol          string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
