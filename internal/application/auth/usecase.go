package auth

import (
	"context"

	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/internal/domain"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
	"github.com/jhoicas/shop-admin-api/internal/domain/repository"
	"github.com/jhoicas/shop-admin-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación del panel: login y resolución
// del administrador a partir de los claims del token.
type AuthUseCase struct {
	adminRepo repository.AdminRepository
	jwtCfg    JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(adminRepo repository.AdminRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{adminRepo: adminRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password contra la tabla admins, genera JWT con rol "admin"
// y retorna token + administrador. Cualquier fallo de credenciales es ErrUnauthorized.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	admin, err := uc.adminRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, admin.ID, admin.Email, entity.RoleAdmin, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		Admin: *toAdminResponse(admin),
	}, nil
}

// AdminFromClaims resuelve el registro persistente del administrador a partir
// del email del token ya verificado. Un claim sin fila en admins (cuenta borrada
// después de emitir el token) se rechaza como ErrStaleClaim, que envuelve
// ErrUnauthorized: hacia el cliente sigue siendo un 401 genérico.
func (uc *AuthUseCase) AdminFromClaims(ctx context.Context, email string) (*entity.Admin, error) {
	if email == "" {
		return nil, domain.ErrStaleClaim
	}
	admin, err := uc.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, domain.ErrStaleClaim
	}
	return admin, nil
}

// Me devuelve el administrador del token como DTO.
func (uc *AuthUseCase) Me(ctx context.Context, email string) (*dto.AdminResponse, error) {
	admin, err := uc.AdminFromClaims(ctx, email)
	if err != nil {
		return nil, err
	}
	return toAdminResponse(admin), nil
}

func toAdminResponse(a *entity.Admin) *dto.AdminResponse {
	if a == nil {
		return nil
	}
	return &dto.AdminResponse{
		ID:        a.ID,
		Email:     a.Email,
		Name:      a.Name,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}
