package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// RoleUseCase administra el registro de roles. Las mutaciones se reflejan de
// inmediato en las decisiones de acceso porque el guard lee el rol desde el
// repositorio en cada petición (sin caché intermedia).
type RoleUseCase struct {
	roleRepo repository.RoleRepository
	permRepo repository.PermissionRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(roleRepo repository.RoleRepository, permRepo repository.PermissionRepository) *RoleUseCase {
	return &RoleUseCase{roleRepo: roleRepo, permRepo: permRepo}
}

// Create crea un rol personalizado (IsSystem false, cero usuarios).
// Falla con ErrInvalidInput si el nombre es vacío, el conjunto de permisos
// es vacío o alguna clave no existe en el registro de permisos.
func (uc *RoleUseCase) Create(in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	if in.Name == "" || len(in.PermissionIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkPermissionKeys(in.PermissionIDs); err != nil {
		return nil, err
	}
	existing, _ := uc.roleRepo.GetByName(in.Name)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	role := &entity.Role{
		ID:             uuid.New().String(),
		Name:           in.Name,
		Description:    in.Description,
		PermissionKeys: dedupe(in.PermissionIDs),
		IsSystem:       false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.roleRepo.Create(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Update reemplaza nombre, descripción y conjunto de permisos. La identidad
// y el flag de sistema no cambian; un rol de sistema no se edita.
func (uc *RoleUseCase) Update(id string, in dto.UpdateRoleRequest) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, domain.ErrNotFound
	}
	if role.IsSystem {
		return nil, domain.ErrSystemEntity
	}
	if in.Name == "" || len(in.PermissionIDs) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.checkPermissionKeys(in.PermissionIDs); err != nil {
		return nil, err
	}
	if other, _ := uc.roleRepo.GetByName(in.Name); other != nil && other.ID != role.ID {
		return nil, domain.ErrDuplicate
	}
	role.Name = in.Name
	role.Description = in.Description
	role.PermissionKeys = dedupe(in.PermissionIDs)
	role.UpdatedAt = time.Now()
	if err := uc.roleRepo.Update(role); err != nil {
		return nil, err
	}
	return toRoleResponse(role), nil
}

// Delete elimina un rol. Un rol de sistema no se elimina; un rol con
// usuarios asignados tampoco (el conteo se lee en el momento, no de caché).
func (uc *RoleUseCase) Delete(id string) error {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if role == nil {
		return domain.ErrNotFound
	}
	if role.IsSystem {
		return domain.ErrSystemEntity
	}
	count, err := uc.roleRepo.UsersCount(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasReferences
	}
	return uc.roleRepo.Delete(id)
}

// GetByID obtiene un rol con su conteo de usuarios.
func (uc *RoleUseCase) GetByID(id string) (*dto.RoleResponse, error) {
	role, err := uc.roleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return toRoleResponse(role), nil
}

// List lista todos los roles.
func (uc *RoleUseCase) List() (*dto.RoleListResponse, error) {
	roles, err := uc.roleRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		items = append(items, *toRoleResponse(r))
	}
	return &dto.RoleListResponse{Items: items}, nil
}

// checkPermissionKeys rechaza claves que no existen en el registro, para que
// un error de tipeo no cree un permiso inalcanzable dentro de un rol.
func (uc *RoleUseCase) checkPermissionKeys(keys []string) error {
	for _, k := range keys {
		perm, err := uc.permRepo.GetByKey(k)
		if err != nil {
			return err
		}
		if perm == nil {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func dedupe(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

func toRoleResponse(r *entity.Role) *dto.RoleResponse {
	if r == nil {
		return nil
	}
	return &dto.RoleResponse{
		ID:            r.ID,
		Name:          r.Name,
		Description:   r.Description,
		PermissionIDs: r.PermissionKeys,
		IsSystem:      r.IsSystem,
		UsersCount:    r.UsersCount,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}
