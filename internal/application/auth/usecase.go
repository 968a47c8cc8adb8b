package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/sistema-bodega/bodega-api/internal/application/dto"
	"github.com/sistema-bodega/bodega-api/internal/domain"
	"github.com/sistema-bodega/bodega-api/internal/domain/entity"
	"github.com/sistema-bodega/bodega-api/internal/domain/repository"
	pkgjwt "github.com/sistema-bodega/bodega-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase registro y login de usuarios con emisión de JWT.
type AuthUseCase struct {
	usuarios repository.UsuarioRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(usuarios repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarios: usuarios, jwtCfg: jwtCfg}
}

// Register crea un usuario con contraseña hasheada (bcrypt) y emite un token.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	existente, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	rol := in.Rol
	if rol == "" {
		rol = entity.RolConsulta
	}
	now := time.Now()
	usuario := &entity.Usuario{
		Email:        email,
		Nombre:       in.Nombre,
		PasswordHash: string(hash),
		Rol:          rol,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarios.Create(usuario); err != nil {
		return nil, err
	}
	return uc.respuestaConToken(usuario)
}

// Login valida credenciales y emite un token. Credenciales malas devuelven
// ErrUnauthorized sin distinguir si el email existe.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	usuario, err := uc.usuarios.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.respuestaConToken(usuario)
}

func (uc *AuthUseCase) respuestaConToken(usuario *entity.Usuario) (*dto.AuthResponse, error) {
	token, err := pkgjwt.Generate(uc.jwtCfg.Secret, usuario.ID, usuario.Rol, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token: token,
		User: dto.UserResponse{
			ID:     usuario.ID,
			Email:  usuario.Email,
			Nombre: usuario.Nombre,
			Rol:    usuario.Rol,
		},
	}, nil
}
