package authz

// Claves de módulo de la aplicación: la unidad de control de acceso.
// Cada página/ruta de la UI corresponde a una de estas claves.
const (
	ModuleDashboard   = "dashboard"
	ModuleClients     = "clients"
	ModuleQuotations  = "quotations"
	ModuleSales       = "sales"
	ModuleCommissions = "commissions"
	ModuleInventory   = "inventory"
	ModulePurchases   = "purchases"
	ModuleSuppliers   = "suppliers"
	ModuleExpenses    = "expenses"
	ModuleCash        = "cash"
	ModuleReports     = "reports"
	ModuleUsers       = "users"
	ModuleRoles       = "roles"
	ModuleSettings    = "settings"
)

// Module descripción de un módulo para navegación y sembrado de permisos.
type Module struct {
	Key      string
	Name     string
	Category string // core, sales, inventory, finance, admin
}

// ModuleGroup grupo de navegación con orden fijo por configuración.
type ModuleGroup struct {
	Name    string
	Modules []Module
}

// Catalog devuelve los grupos de módulos en el orden fijo de la aplicación.
// El orden lo define esta configuración, no es alfabético ni depende del rol.
func Catalog() []ModuleGroup {
	return []ModuleGroup{
		{Name: "Principal", Modules: []Module{
			{Key: ModuleDashboard, Name: "Dashboard", Category: "core"},
		}},
		{Name: "Ventas", Modules: []Module{
			{Key: ModuleClients, Name: "Clientes", Category: "sales"},
			{Key: ModuleQuotations, Name: "Cotizaciones", Category: "sales"},
			{Key: ModuleSales, Name: "Ventas", Category: "sales"},
			{Key: ModuleCommissions, Name: "Comisiones", Category: "sales"},
		}},
		{Name: "Inventario", Modules: []Module{
			{Key: ModuleInventory, Name: "Inventario", Category: "inventory"},
			{Key: ModulePurchases, Name: "Compras", Category: "inventory"},
			{Key: ModuleSuppliers, Name: "Proveedores", Category: "inventory"},
		}},
		{Name: "Finanzas", Modules: []Module{
			{Key: ModuleExpenses, Name: "Gastos", Category: "finance"},
			{Key: ModuleCash, Name: "Caja", Category: "finance"},
			{Key: ModuleReports, Name: "Reportes", Category: "finance"},
		}},
		{Name: "Administración", Modules: []Module{
			{Key: ModuleUsers, Name: "Usuarios", Category: "admin"},
			{Key: ModuleRoles, Name: "Roles y permisos", Category: "admin"},
			{Key: ModuleSettings, Name: "Configuración", Category: "admin"},
		}},
	}
}

// KnownModule informa si la clave existe en el catálogo. Se usa en el borde
// (alta de permisos) para rechazar claves con errores de tipeo que crearían
// permisos inalcanzables.
func KnownModule(key string) bool {
	for _, g := range Catalog() {
		for _, m := range g.Modules {
			if m.Key == key {
				return true
			}
		}
	}
	return false
}
