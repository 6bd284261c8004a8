package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/application/usecase"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/authz"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/memory"
)

// seedSystemPermissions siembra un permiso de sistema por cada módulo del
// catálogo, como hace cmd/seed en el aprovisionamiento.
func seedSystemPermissions(t *testing.T, store *memory.Store) {
	t.Helper()
	now := time.Now()
	i := 0
	for _, g := range authz.Catalog() {
		for _, m := range g.Modules {
			i++
			require.NoError(t, store.Permissions().Create(&entity.Permission{
				ID: m.Key + "-perm", Key: m.Key, Name: m.Name, Module: m.Key,
				Category: m.Category, IsSystem: true,
				CreatedAt: now, UpdatedAt: now,
			}))
		}
	}
	require.Greater(t, i, 0)
}

func newRoleFixture(t *testing.T) (*usecase.RoleUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	seedSystemPermissions(t, store)
	return usecase.NewRoleUseCase(store.Roles(), store.Permissions()), store
}

func TestRoleCreate_OK(t *testing.T) {
	uc, _ := newRoleFixture(t)

	resp, err := uc.Create(dto.CreateRoleRequest{
		Name:          "Supervisor",
		Description:   "Supervisa ventas",
		PermissionIDs: []string{authz.ModuleSales, authz.ModuleCommissions, authz.ModuleSales},
	})
	require.NoError(t, err)

	assert.False(t, resp.IsSystem)
	assert.Equal(t, 0, resp.UsersCount)
	assert.Len(t, resp.PermissionIDs, 2, "las claves repetidas se deduplican")
}

func TestRoleCreate_ClaveDePermisoInexistente(t *testing.T) {
	uc, _ := newRoleFixture(t)

	_, err := uc.Create(dto.CreateRoleRequest{
		Name:          "Supervisor",
		PermissionIDs: []string{authz.ModuleSales, "ventes"}, // error de tipeo
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"una clave inexistente no debe crear un permiso inalcanzable")
}

func TestRoleCreate_SinPermisos(t *testing.T) {
	uc, _ := newRoleFixture(t)

	_, err := uc.Create(dto.CreateRoleRequest{Name: "Vacío"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el conjunto de permisos nunca es vacío")
}

func TestRoleCreate_NombreDuplicado(t *testing.T) {
	uc, _ := newRoleFixture(t)

	_, err := uc.Create(dto.CreateRoleRequest{
		Name: "Supervisor", PermissionIDs: []string{authz.ModuleSales},
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreateRoleRequest{
		Name: "Supervisor", PermissionIDs: []string{authz.ModuleClients},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestRoleUpdate_RolDeSistemaNoSeEdita(t *testing.T) {
	uc, store := newRoleFixture(t)
	now := time.Now()
	require.NoError(t, store.Roles().Create(&entity.Role{
		ID: "role-admin", Name: entity.RoleAdministrador,
		PermissionKeys: []string{authz.ModuleDashboard}, IsSystem: true,
		CreatedAt: now, UpdatedAt: now,
	}))

	_, err := uc.Update("role-admin", dto.UpdateRoleRequest{
		Name: "Admin Renombrado", PermissionIDs: []string{authz.ModuleDashboard},
	})
	assert.ErrorIs(t, err, domain.ErrSystemEntity)
}

func TestRoleDelete_ConUsuariosAsignados(t *testing.T) {
	uc, store := newRoleFixture(t)

	created, err := uc.Create(dto.CreateRoleRequest{
		Name: "Supervisor", PermissionIDs: []string{authz.ModuleSales},
	})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, store.Users().Create(&entity.User{
		ID: "user-1", Name: "Usuario", Email: "u@test.local",
		RoleID: created.ID, Status: entity.UserStatusActive,
		CreatedAt: now, UpdatedAt: now,
	}))

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrHasReferences,
		"un rol con usuarios no se elimina")
}

func TestRoleDelete_SistemaYLibre(t *testing.T) {
	uc, store := newRoleFixture(t)
	now := time.Now()
	require.NoError(t, store.Roles().Create(&entity.Role{
		ID: "role-admin", Name: entity.RoleAdministrador,
		PermissionKeys: []string{authz.ModuleDashboard}, IsSystem: true,
		CreatedAt: now, UpdatedAt: now,
	}))

	assert.ErrorIs(t, uc.Delete("role-admin"), domain.ErrSystemEntity)

	created, err := uc.Create(dto.CreateRoleRequest{
		Name: "Temporal", PermissionIDs: []string{authz.ModuleSales},
	})
	require.NoError(t, err)
	require.NoError(t, uc.Delete(created.ID))

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
