package usecase

import (
	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/domain/authz"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// AccessService resuelve el conjunto de módulos que el rol de un usuario
// habilita. Lee rol y permisos del repositorio en cada consulta: una edición
// administrativa del rol se refleja en la siguiente petición, sin ventana de
// caché obsoleta. La decisión en sí la toma el motor puro de authz.
type AccessService struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
}

// NewAccessService construye el servicio.
func NewAccessService(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository) *AccessService {
	return &AccessService{roleRepo: roleRepo, permRepo: permRepo}
}

// ModuleSet devuelve el conjunto de módulos permitidos para el rol.
// Rol vacío o desconocido produce el conjunto vacío (equivale a "sin
// sesión"), nunca un error de autorización: el motor degrada a false.
// Devuelve error solo ante fallos de infraestructura.
func (s *AccessService) ModuleSet(roleID string) (authz.PermissionSet, error) {
	if roleID == "" {
		return nil, nil
	}
	role, err := s.roleRepo.GetByID(roleID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	perms, err := s.permRepo.List()
	if err != nil {
		return nil, err
	}
	moduleByKey := make(map[string]string, len(perms))
	for _, p := range perms {
		moduleByKey[p.Key] = p.Module
	}
	set := make(authz.PermissionSet, len(role.PermissionKeys))
	for _, key := range role.PermissionKeys {
		if module, ok := moduleByKey[key]; ok {
			set[module] = struct{}{}
		}
	}
	return set, nil
}

// Navigation devuelve los grupos de módulos visibles para el rol, en el
// orden fijo del catálogo y sin grupos vacíos.
func (s *AccessService) Navigation(roleID string) (*dto.NavigationResponse, error) {
	set, err := s.ModuleSet(roleID)
	if err != nil {
		return nil, err
	}
	groups := authz.VisibleModules(set)
	out := &dto.NavigationResponse{Groups: make([]dto.NavigationGroup, 0, len(groups))}
	for _, g := range groups {
		ng := dto.NavigationGroup{Name: g.Name, Modules: make([]dto.NavigationModule, 0, len(g.Modules))}
		for _, m := range g.Modules {
			ng.Modules = append(ng.Modules, dto.NavigationModule{Key: m.Key, Name: m.Name})
		}
		out.Groups = append(out.Groups, ng)
	}
	return out, nil
}
