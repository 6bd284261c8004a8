package usecase_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/application/usecase"
	"github.com/jhoicas/erp-pyme/internal/domain/authz"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/infrastructure/memory"
)

func newAccessFixture(t *testing.T) (*usecase.AccessService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	seedSystemPermissions(t, store)
	return usecase.NewAccessService(store.Roles(), store.Permissions()), store
}

func seedRole(t *testing.T, store *memory.Store, id string, keys ...string) {
	t.Helper()
	now := time.Now()
	require.NoError(t, store.Roles().Create(&entity.Role{
		ID: id, Name: "Rol " + id, PermissionKeys: keys,
		CreatedAt: now, UpdatedAt: now,
	}))
}

func TestModuleSet_ResuelveModulosDelRol(t *testing.T) {
	svc, store := newAccessFixture(t)
	seedRole(t, store, "role-1", authz.ModuleSales, authz.ModuleClients)

	set, err := svc.ModuleSet("role-1")
	require.NoError(t, err)

	assert.True(t, set.IsAllowed(authz.ModuleSales))
	assert.True(t, set.IsAllowed(authz.ModuleClients))
	assert.False(t, set.IsAllowed(authz.ModuleRoles))
}

func TestModuleSet_RolVacioODesconocido(t *testing.T) {
	svc, _ := newAccessFixture(t)

	set, err := svc.ModuleSet("")
	require.NoError(t, err, "sin rol no es un error, es cero permisos")
	assert.False(t, set.IsAllowed(authz.ModuleDashboard))

	set, err = svc.ModuleSet("role-borrado")
	require.NoError(t, err)
	assert.False(t, set.IsAllowed(authz.ModuleDashboard))
}

// Una edición del rol se refleja en la siguiente consulta: no hay caché.
func TestModuleSet_SinCacheObsoleta(t *testing.T) {
	svc, store := newAccessFixture(t)
	seedRole(t, store, "role-1", authz.ModuleSales)

	set, err := svc.ModuleSet("role-1")
	require.NoError(t, err)
	assert.True(t, set.IsAllowed(authz.ModuleSales))

	role, err := store.Roles().GetByID("role-1")
	require.NoError(t, err)
	role.PermissionKeys = []string{authz.ModuleClients}
	require.NoError(t, store.Roles().Update(role))

	set, err = svc.ModuleSet("role-1")
	require.NoError(t, err)
	assert.False(t, set.IsAllowed(authz.ModuleSales), "el permiso retirado deja de aplicar de inmediato")
	assert.True(t, set.IsAllowed(authz.ModuleClients))
}

// Un permiso personalizado habilita el módulo al que apunta, no su clave.
func TestModuleSet_PermisoPersonalizadoApuntaASuModulo(t *testing.T) {
	svc, store := newAccessFixture(t)
	now := time.Now()
	require.NoError(t, store.Permissions().Create(&entity.Permission{
		ID: "perm-custom", Key: "reportes-avanzados", Name: "Reportes avanzados",
		Module: authz.ModuleReports, Category: entity.CategoryFinance,
		CreatedAt: now, UpdatedAt: now,
	}))
	seedRole(t, store, "role-1", "reportes-avanzados")

	set, err := svc.ModuleSet("role-1")
	require.NoError(t, err)
	assert.True(t, set.IsAllowed(authz.ModuleReports))
	assert.False(t, set.IsAllowed("reportes-avanzados"), "la clave del permiso no es un módulo")
}

func TestNavigation_GruposEnOrdenFijo(t *testing.T) {
	svc, store := newAccessFixture(t)
	seedRole(t, store, "role-1",
		authz.ModuleUsers, authz.ModuleDashboard, authz.ModuleSales)

	nav, err := svc.Navigation("role-1")
	require.NoError(t, err)
	require.Len(t, nav.Groups, 3)

	// Orden del catálogo aunque el rol liste las claves en otro orden.
	assert.Equal(t, "Principal", nav.Groups[0].Name)
	assert.Equal(t, "Ventas", nav.Groups[1].Name)
	assert.Equal(t, "Administración", nav.Groups[2].Name)
}

func TestNavigation_SinRol(t *testing.T) {
	svc, _ := newAccessFixture(t)

	nav, err := svc.Navigation("")
	require.NoError(t, err)
	assert.Empty(t, nav.Groups)
}
