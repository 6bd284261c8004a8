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

func newPermissionFixture(t *testing.T) (*usecase.PermissionUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	return usecase.NewPermissionUseCase(store.Permissions()), store
}

func TestPermissionCreate_OK(t *testing.T) {
	uc, _ := newPermissionFixture(t)

	resp, err := uc.Create(dto.CreatePermissionRequest{
		Key: "reportes-avanzados", Name: "Reportes avanzados",
		Module: authz.ModuleReports, Category: entity.CategoryFinance,
	})
	require.NoError(t, err)

	assert.False(t, resp.IsSystem)
	assert.Equal(t, "reportes-avanzados", resp.Key)
	assert.Equal(t, 0, resp.RolesCount)
}

func TestPermissionCreate_ModuloDesconocido(t *testing.T) {
	uc, _ := newPermissionFixture(t)

	_, err := uc.Create(dto.CreatePermissionRequest{
		Key: "x", Name: "X", Module: "modulo-inventado", Category: entity.CategoryCore,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"un módulo fuera del catálogo crearía un permiso inalcanzable")
}

func TestPermissionCreate_CategoriaInvalida(t *testing.T) {
	uc, _ := newPermissionFixture(t)

	_, err := uc.Create(dto.CreatePermissionRequest{
		Key: "x", Name: "X", Module: authz.ModuleSales, Category: "otra",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPermissionCreate_ClaveDuplicada(t *testing.T) {
	uc, _ := newPermissionFixture(t)

	_, err := uc.Create(dto.CreatePermissionRequest{
		Key: "ventas-extra", Name: "Ventas extra",
		Module: authz.ModuleSales, Category: entity.CategorySales,
	})
	require.NoError(t, err)

	_, err = uc.Create(dto.CreatePermissionRequest{
		Key: "ventas-extra", Name: "Otro nombre",
		Module: authz.ModuleSales, Category: entity.CategorySales,
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestPermissionUpdate_SistemaInmutable(t *testing.T) {
	uc, store := newPermissionFixture(t)
	now := time.Now()
	require.NoError(t, store.Permissions().Create(&entity.Permission{
		ID: "perm-sales", Key: authz.ModuleSales, Name: "Ventas",
		Module: authz.ModuleSales, Category: entity.CategorySales, IsSystem: true,
		CreatedAt: now, UpdatedAt: now,
	}))

	name := "Ventas 2"
	_, err := uc.Update("perm-sales", dto.UpdatePermissionRequest{Name: &name})
	assert.ErrorIs(t, err, domain.ErrSystemEntity)

	assert.ErrorIs(t, uc.Delete("perm-sales"), domain.ErrSystemEntity)
}

func TestPermissionUpdate_LaClaveNoCambia(t *testing.T) {
	uc, _ := newPermissionFixture(t)

	created, err := uc.Create(dto.CreatePermissionRequest{
		Key: "clave-original", Name: "Permiso",
		Module: authz.ModuleSales, Category: entity.CategorySales,
	})
	require.NoError(t, err)

	name := "Permiso renombrado"
	updated, err := uc.Update(created.ID, dto.UpdatePermissionRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, "clave-original", updated.Key, "la clave es inmutable")
	assert.Equal(t, "Permiso renombrado", updated.Name)
}

func TestPermissionDelete_ReferenciadoPorUnRol(t *testing.T) {
	uc, store := newPermissionFixture(t)

	created, err := uc.Create(dto.CreatePermissionRequest{
		Key: "caja-especial", Name: "Caja especial",
		Module: authz.ModuleCash, Category: entity.CategoryFinance,
	})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, store.Roles().Create(&entity.Role{
		ID: "role-1", Name: "Cajero Senior",
		PermissionKeys: []string{"caja-especial"},
		CreatedAt:      now, UpdatedAt: now,
	}))

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrHasReferences,
		"un permiso usado por un rol no se elimina")
}

// Cuando los roles dejan de usar la clave, el mismo Delete que antes estaba
// bloqueado pasa: el conteo de referencias se lee al momento, no se congela.
func TestPermissionDelete_TrasLiberarReferencias(t *testing.T) {
	uc, store := newPermissionFixture(t)

	created, err := uc.Create(dto.CreatePermissionRequest{
		Key: "descuentos-mayoristas", Name: "Descuentos mayoristas",
		Module: authz.ModuleSales, Category: entity.CategorySales,
	})
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, store.Roles().Create(&entity.Role{
		ID: "role-1", Name: "Vendedor Senior",
		PermissionKeys: []string{authz.ModuleSales, "descuentos-mayoristas"},
		CreatedAt:      now, UpdatedAt: now,
	}))
	require.NoError(t, store.Roles().Create(&entity.Role{
		ID: "role-2", Name: "Supervisor",
		PermissionKeys: []string{"descuentos-mayoristas"},
		CreatedAt:      now, UpdatedAt: now,
	}))

	assert.ErrorIs(t, uc.Delete(created.ID), domain.ErrHasReferences,
		"con dos roles referenciando la clave el borrado se bloquea")

	// Ambos roles sueltan la clave.
	for _, id := range []string{"role-1", "role-2"} {
		role, err := store.Roles().GetByID(id)
		require.NoError(t, err)
		keys := make([]string, 0, len(role.PermissionKeys))
		for _, k := range role.PermissionKeys {
			if k != "descuentos-mayoristas" {
				keys = append(keys, k)
			}
		}
		role.PermissionKeys = keys
		require.NoError(t, store.Roles().Update(role))
	}

	require.NoError(t, uc.Delete(created.ID), "sin referencias el borrado procede")

	gone, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)
}
