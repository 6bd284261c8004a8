package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/application/auth"
	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/application/usecase"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/erp-pyme/pkg/jwt"
)

const testSecret = "secret-de-pruebas-auth"

func newAuthFixture(t *testing.T) (*auth.AuthUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	now := time.Now()
	require.NoError(t, store.Roles().Create(&entity.Role{
		ID: "role-1", Name: "Vendedor", PermissionKeys: []string{"sales"},
		CreatedAt: now, UpdatedAt: now,
	}))
	userUC := usecase.NewUserUseCase(store.Users(), store.Roles())
	uc := auth.NewAuthUseCase(store.Users(), userUC, auth.JWTConfig{
		Secret: testSecret, ExpMinutes: 60, Issuer: "erp-pyme-test",
	})
	return uc, store
}

func register(t *testing.T, uc *auth.AuthUseCase) *dto.UserResponse {
	t.Helper()
	user, err := uc.RegisterUser(dto.RegisterRequest{
		Name: "Ana", Email: "ana@test.local", Password: "clave-segura-1", RoleID: "role-1",
	})
	require.NoError(t, err)
	return user
}

func TestRegister_YLoginOK(t *testing.T) {
	uc, _ := newAuthFixture(t)
	user := register(t, uc)
	assert.Equal(t, entity.UserStatusActive, user.Status)

	resp, err := uc.Login(dto.LoginRequest{Email: "ana@test.local", Password: "clave-segura-1"})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, user.ID, resp.User.ID)

	// El token acredita identidad: user_id y role_id, nada más.
	userID, roleID, err := pkgjwt.Parse(testSecret, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "role-1", roleID)
}

func TestRegister_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthFixture(t)
	register(t, uc)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "ana@test.local", Password: "otra-clave-123", RoleID: "role-1",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestRegister_RolInexistente(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "otro@test.local", Password: "clave-segura-1", RoleID: "role-fantasma",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_PasswordIncorrecto(t *testing.T) {
	uc, _ := newAuthFixture(t)
	register(t, uc)

	_, err := uc.Login(dto.LoginRequest{Email: "ana@test.local", Password: "clave-mala"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _ := newAuthFixture(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@test.local", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_UsuarioInactivo(t *testing.T) {
	uc, store := newAuthFixture(t)
	user := register(t, uc)

	stored, err := store.Users().GetByID(user.ID)
	require.NoError(t, err)
	stored.Status = entity.UserStatusInactive
	require.NoError(t, store.Users().Update(stored))

	_, err = uc.Login(dto.LoginRequest{Email: "ana@test.local", Password: "clave-segura-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden, "usuario inactivo no inicia sesión")
}
