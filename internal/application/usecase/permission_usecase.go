package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/authz"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// PermissionUseCase administra el catálogo de permisos. Los permisos de
// sistema se siembran una vez y nunca se editan ni eliminan; los
// personalizados se pueden crear, editar (salvo la clave) y eliminar
// mientras ningún rol los use.
type PermissionUseCase struct {
	permRepo repository.PermissionRepository
}

// NewPermissionUseCase construye el caso de uso.
func NewPermissionUseCase(permRepo repository.PermissionRepository) *PermissionUseCase {
	return &PermissionUseCase{permRepo: permRepo}
}

// Create crea un permiso personalizado. La clave de módulo debe existir en
// el catálogo: una clave desconocida se rechaza en el borde en lugar de
// crear un permiso inalcanzable.
func (uc *PermissionUseCase) Create(in dto.CreatePermissionRequest) (*dto.PermissionResponse, error) {
	if in.Key == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidCategory(in.Category) {
		return nil, domain.ErrInvalidInput
	}
	if !authz.KnownModule(in.Module) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.permRepo.GetByKey(in.Key)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	perm := &entity.Permission{
		ID:          uuid.New().String(),
		Key:         in.Key,
		Name:        in.Name,
		Module:      in.Module,
		Description: in.Description,
		Category:    in.Category,
		IsSystem:    false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.permRepo.Create(perm); err != nil {
		return nil, err
	}
	return toPermissionResponse(perm), nil
}

// Update edita nombre, descripción o categoría. La clave es inmutable y un
// permiso de sistema no se edita.
func (uc *PermissionUseCase) Update(id string, in dto.UpdatePermissionRequest) (*dto.PermissionResponse, error) {
	perm, err := uc.permRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, domain.ErrNotFound
	}
	if perm.IsSystem {
		return nil, domain.ErrSystemEntity
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		perm.Name = *in.Name
	}
	if in.Description != nil {
		perm.Description = *in.Description
	}
	if in.Category != nil {
		if !entity.ValidCategory(*in.Category) {
			return nil, domain.ErrInvalidInput
		}
		perm.Category = *in.Category
	}
	perm.UpdatedAt = time.Now()
	if err := uc.permRepo.Update(perm); err != nil {
		return nil, err
	}
	return toPermissionResponse(perm), nil
}

// Delete elimina un permiso personalizado sin roles que lo referencien.
func (uc *PermissionUseCase) Delete(id string) error {
	perm, err := uc.permRepo.GetByID(id)
	if err != nil {
		return err
	}
	if perm == nil {
		return domain.ErrNotFound
	}
	if perm.IsSystem {
		return domain.ErrSystemEntity
	}
	count, err := uc.permRepo.RolesCount(perm.Key)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrHasReferences
	}
	return uc.permRepo.Delete(id)
}

// GetByID obtiene un permiso con su conteo de roles.
func (uc *PermissionUseCase) GetByID(id string) (*dto.PermissionResponse, error) {
	perm, err := uc.permRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if perm == nil {
		return nil, nil
	}
	return toPermissionResponse(perm), nil
}

// List lista todos los permisos del catálogo.
func (uc *PermissionUseCase) List() (*dto.PermissionListResponse, error) {
	perms, err := uc.permRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		items = append(items, *toPermissionResponse(p))
	}
	return &dto.PermissionListResponse{Items: items}, nil
}

func toPermissionResponse(p *entity.Permission) *dto.PermissionResponse {
	if p == nil {
		return nil
	}
	return &dto.PermissionResponse{
		ID:          p.ID,
		Key:         p.Key,
		Name:        p.Name,
		Module:      p.Module,
		Description: p.Description,
		Category:    p.Category,
		IsSystem:    p.IsSystem,
		RolesCount:  p.RolesCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
