package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

var _ repository.PermissionRepository = (*PermissionRepo)(nil)

// PermissionRepo implementación de PermissionRepository sobre PostgreSQL
// (usable con pool o tx).
type PermissionRepo struct {
	q Querier
}

// NewPermissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPermissionRepository(q Querier) *PermissionRepo {
	return &PermissionRepo{q: q}
}

// Create persiste un permiso. La clave es única.
func (r *PermissionRepo) Create(p *entity.Permission) error {
	query := `
		INSERT INTO permissions (id, key, name, module, description, category, is_system, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Key, p.Name, p.Module, nullIfEmpty(p.Description), p.Category, p.IsSystem,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert permission: %w", err)
	}
	return nil
}

// GetByID obtiene un permiso por ID, con su conteo de roles.
func (r *PermissionRepo) GetByID(id string) (*entity.Permission, error) {
	return r.getBy("id", id)
}

// GetByKey obtiene un permiso por su clave estable.
func (r *PermissionRepo) GetByKey(key string) (*entity.Permission, error) {
	return r.getBy("key", key)
}

func (r *PermissionRepo) getBy(column, value string) (*entity.Permission, error) {
	query := fmt.Sprintf(`
		SELECT p.id, p.key, p.name, p.module, COALESCE(p.description, ''), p.category, p.is_system,
		       (SELECT COUNT(DISTINCT rp.role_id) FROM role_permissions rp WHERE rp.permission_key = p.key),
		       p.created_at, p.updated_at
		FROM permissions p WHERE p.%s = $1`, column)
	var p entity.Permission
	err := r.q.QueryRow(context.Background(), query, value).Scan(
		&p.ID, &p.Key, &p.Name, &p.Module, &p.Description, &p.Category, &p.IsSystem,
		&p.RolesCount, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get permission: %w", err)
	}
	return &p, nil
}

// List devuelve todos los permisos con su conteo de roles.
func (r *PermissionRepo) List() ([]*entity.Permission, error) {
	query := `
		SELECT p.id, p.key, p.name, p.module, COALESCE(p.description, ''), p.category, p.is_system,
		       (SELECT COUNT(DISTINCT rp.role_id) FROM role_permissions rp WHERE rp.permission_key = p.key),
		       p.created_at, p.updated_at
		FROM permissions p ORDER BY p.key`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list permissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Permission
	for rows.Next() {
		var p entity.Permission
		if err := rows.Scan(
			&p.ID, &p.Key, &p.Name, &p.Module, &p.Description, &p.Category, &p.IsSystem,
			&p.RolesCount, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan permission: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Update actualiza los campos editables (la clave nunca cambia).
func (r *PermissionRepo) Update(p *entity.Permission) error {
	query := `
		UPDATE permissions
		SET name = $2, description = $3, category = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Name, nullIfEmpty(p.Description), p.Category, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update permission: %w", err)
	}
	return nil
}

// Delete elimina un permiso.
func (r *PermissionRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM permissions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete permission: %w", err)
	}
	return nil
}

// RolesCount cuenta los roles que referencian la clave.
func (r *PermissionRepo) RolesCount(key string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(DISTINCT role_id) FROM role_permissions WHERE permission_key = $1`, key,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count roles by permission: %w", err)
	}
	return n, nil
}
