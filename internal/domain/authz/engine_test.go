package authz_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-pyme/internal/domain/authz"
)

func TestIsAllowed(t *testing.T) {
	set := authz.NewPermissionSet(authz.ModuleSales, authz.ModuleClients)

	assert.True(t, set.IsAllowed(authz.ModuleSales))
	assert.True(t, set.IsAllowed(authz.ModuleClients))
	assert.False(t, set.IsAllowed(authz.ModuleRoles), "módulo fuera del conjunto")
	assert.False(t, set.IsAllowed("modulo-desconocido"), "clave desconocida degrada a false")
	assert.False(t, set.IsAllowed(""), "clave vacía degrada a false")
}

func TestIsAllowed_SinSesion(t *testing.T) {
	// nil representa "sin sesión": cero permisos, nunca error.
	var set authz.PermissionSet
	assert.False(t, set.IsAllowed(authz.ModuleDashboard))

	empty := authz.NewPermissionSet()
	assert.False(t, empty.IsAllowed(authz.ModuleDashboard))
}

func TestVisibleModules_FiltraYConservaOrden(t *testing.T) {
	set := authz.NewPermissionSet(
		authz.ModuleDashboard, authz.ModuleSales, authz.ModuleUsers,
	)

	groups := authz.VisibleModules(set)
	require.Len(t, groups, 3, "solo grupos con al menos un módulo visible")

	// El orden de grupos es el del catálogo, no alfabético.
	assert.Equal(t, "Principal", groups[0].Name)
	assert.Equal(t, "Ventas", groups[1].Name)
	assert.Equal(t, "Administración", groups[2].Name)

	require.Len(t, groups[1].Modules, 1)
	assert.Equal(t, authz.ModuleSales, groups[1].Modules[0].Key)
}

func TestVisibleModules_SinPermisos(t *testing.T) {
	assert.Empty(t, authz.VisibleModules(nil))
}

func TestKnownModule(t *testing.T) {
	assert.True(t, authz.KnownModule(authz.ModuleQuotations))
	assert.True(t, authz.KnownModule(authz.ModuleCash))
	assert.False(t, authz.KnownModule("facturacion"))
	assert.False(t, authz.KnownModule(""))
}
