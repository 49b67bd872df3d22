package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/shop-admin-api/internal/application/auth"
	"github.com/jhoicas/shop-admin-api/internal/application/dto"
	"github.com/jhoicas/shop-admin-api/internal/domain"
	"github.com/jhoicas/shop-admin-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/shop-admin-api/pkg/jwt"
)

// fakeAdminRepo repo en memoria indexado por email.
type fakeAdminRepo struct {
	byEmail map[string]*entity.Admin
}

func (r *fakeAdminRepo) Create(_ context.Context, a *entity.Admin) error {
	r.byEmail[a.Email] = a
	return nil
}

func (r *fakeAdminRepo) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	for _, a := range r.byEmail {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*entity.Admin, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	return a, nil
}

func (r *fakeAdminRepo) Update(_ context.Context, a *entity.Admin) error {
	r.byEmail[a.Email] = a
	return nil
}

func (r *fakeAdminRepo) List(_ context.Context, limit, offset int) ([]*entity.Admin, error) {
	out := []*entity.Admin{}
	for _, a := range r.byEmail {
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeAdminRepo) Delete(_ context.Context, id string) error {
	for email, a := range r.byEmail {
		if a.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testPassword = "correcthorse"
	testAdminEml = "admin@tienda.test"
)

func buildAuthUseCase(t *testing.T) (*auth.AuthUseCase, *fakeAdminRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeAdminRepo{byEmail: map[string]*entity.Admin{
		testAdminEml: {
			ID:           "00000000-0000-0000-0000-000000000001",
			Email:        testAdminEml,
			PasswordHash: string(hash),
			Name:         "Admin",
		},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		ExpMinutes: 60,
		Issuer:     "shop-admin-test",
	})
	return uc, repo
}

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _ := buildAuthUseCase(t)

	resp, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    testAdminEml,
		Password: testPassword,
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, testAdminEml, resp.Admin.Email)

	// El token emitido carga rol admin y el email del administrador.
	claims, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.Equal(t, testAdminEml, claims.Email)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := buildAuthUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    testAdminEml,
		Password: "otra-cosa",
	})
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestLogin_EmailDesconocido(t *testing.T) {
	uc, _ := buildAuthUseCase(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@tienda.test",
		Password: testPassword,
	})
	// Misma respuesta que password incorrecto: no se filtra si el email existe.
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

// Un token puede seguir vigente después de borrar la cuenta. El claim sin fila
// se rechaza como ErrStaleClaim, que envuelve ErrUnauthorized (401 genérico),
// no como ErrNotFound (404).
func TestAdminFromClaims_CuentaBorrada(t *testing.T) {
	uc, repo := buildAuthUseCase(t)
	delete(repo.byEmail, testAdminEml)

	_, err := uc.AdminFromClaims(context.Background(), testAdminEml)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStaleClaim))
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
	assert.False(t, errors.Is(err, domain.ErrNotFound))
}

func TestAdminFromClaims_EmailVacio(t *testing.T) {
	uc, _ := buildAuthUseCase(t)

	_, err := uc.AdminFromClaims(context.Background(), "")
	assert.True(t, errors.Is(err, domain.ErrUnauthorized))
}

func TestMe_DevuelveAdminSinHash(t *testing.T) {
	uc, _ := buildAuthUseCase(t)

	resp, err := uc.Me(context.Background(), testAdminEml)
	require.NoError(t, err)
	assert.Equal(t, testAdminEml, resp.Email)
	assert.Equal(t, "Admin", resp.Name)
}
