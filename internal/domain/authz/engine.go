// Package authz implementa el motor de decisión de acceso por módulos.
// El motor es puro: recibe el conjunto de permisos como parámetro en vez de
// leerlo de estado global, no tiene efectos y es total (clave desconocida o
// sesión ausente degradan a false, nunca a un error).
package authz

// PermissionSet conjunto de claves de módulo que un rol habilita.
// El set nil representa "sin sesión" y equivale a cero permisos.
type PermissionSet map[string]struct{}

// NewPermissionSet construye el conjunto a partir de claves de permiso.
func NewPermissionSet(keys ...string) PermissionSet {
	s := make(PermissionSet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// IsAllowed informa si el conjunto habilita el módulo. Total: nunca falla;
// módulo desconocido o conjunto vacío/nil devuelven false, de modo que la
// navegación y los guards degradan a "oculto" en lugar de romperse.
func (s PermissionSet) IsAllowed(moduleKey string) bool {
	if len(s) == 0 || moduleKey == "" {
		return false
	}
	_, ok := s[moduleKey]
	return ok
}

// VisibleModules filtra el catálogo dejando solo los módulos permitidos.
// Conserva el orden fijo de grupos y módulos; los grupos vacíos se omiten.
func VisibleModules(s PermissionSet) []ModuleGroup {
	var out []ModuleGroup
	for _, g := range Catalog() {
		var mods []Module
		for _, m := range g.Modules {
			if s.IsAllowed(m.Key) {
				mods = append(mods, m)
			}
		}
		if len(mods) > 0 {
			out = append(out, ModuleGroup{Name: g.Name, Modules: mods})
		}
	}
	return out
}
