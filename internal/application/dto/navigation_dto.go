package dto

// NavigationModule módulo visible para el rol del usuario autenticado.
type NavigationModule struct {
	Key  string `json:"key"`
	Name string `json:"name"`
}

// NavigationGroup grupo de navegación con sus módulos visibles.
type NavigationGroup struct {
	Name    string             `json:"name"`
	Modules []NavigationModule `json:"modules"`
}

// NavigationResponse grupos de navegación filtrados por permisos, en el
// orden fijo del catálogo.
type NavigationResponse struct {
	Groups []NavigationGroup `json:"groups"`
}
