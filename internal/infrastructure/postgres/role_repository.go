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

var _ repository.RoleRepository = (*RoleRepo)(nil)

// RoleRepo implementación de RoleRepository sobre PostgreSQL. Las claves de
// permiso del rol viven en la tabla role_permissions; Create y Update
// reescriben el conjunto completo.
type RoleRepo struct {
	q Querier
}

// NewRoleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewRoleRepository(q Querier) *RoleRepo {
	return &RoleRepo{q: q}
}

// Create persiste el rol y sus claves de permiso en una sola transacción.
func (r *RoleRepo) Create(role *entity.Role) error {
	ctx := context.Background()
	return inTx(ctx, r.q, func(q Querier) error {
		query := `
			INSERT INTO roles (id, name, description, is_system, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := q.Exec(ctx, query,
			role.ID, role.Name, nullIfEmpty(role.Description), role.IsSystem,
			role.CreatedAt, role.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("insert role: %w", err)
		}
		return replacePermissions(ctx, q, role.ID, role.PermissionKeys)
	})
}

// GetByID obtiene un rol con sus claves y conteo de usuarios.
func (r *RoleRepo) GetByID(id string) (*entity.Role, error) {
	return r.getBy("id", id)
}

// GetByName obtiene un rol por nombre (único).
func (r *RoleRepo) GetByName(name string) (*entity.Role, error) {
	return r.getBy("name", name)
}

func (r *RoleRepo) getBy(column, value string) (*entity.Role, error) {
	ctx := context.Background()
	query := fmt.Sprintf(`
		SELECT r.id, r.name, COALESCE(r.description, ''), r.is_system,
		       (SELECT COUNT(*) FROM users u WHERE u.role_id = r.id),
		       r.created_at, r.updated_at
		FROM roles r WHERE r.%s = $1`, column)
	var role entity.Role
	err := r.q.QueryRow(ctx, query, value).Scan(
		&role.ID, &role.Name, &role.Description, &role.IsSystem,
		&role.UsersCount, &role.CreatedAt, &role.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get role: %w", err)
	}
	keys, err := r.permissionKeys(ctx, role.ID)
	if err != nil {
		return nil, err
	}
	role.PermissionKeys = keys
	return &role, nil
}

// List devuelve todos los roles con sus claves.
func (r *RoleRepo) List() ([]*entity.Role, error) {
	ctx := context.Background()
	query := `
		SELECT r.id, r.name, COALESCE(r.description, ''), r.is_system,
		       (SELECT COUNT(*) FROM users u WHERE u.role_id = r.id),
		       r.created_at, r.updated_at
		FROM roles r ORDER BY r.name`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	defer rows.Close()
	var list []*entity.Role
	for rows.Next() {
		var role entity.Role
		if err := rows.Scan(
			&role.ID, &role.Name, &role.Description, &role.IsSystem,
			&role.UsersCount, &role.CreatedAt, &role.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan role: %w", err)
		}
		list = append(list, &role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, role := range list {
		keys, err := r.permissionKeys(ctx, role.ID)
		if err != nil {
			return nil, err
		}
		role.PermissionKeys = keys
	}
	return list, nil
}

// Update actualiza el rol y reescribe su conjunto de claves en una sola
// transacción: el conjunto anterior no desaparece si falla un insert.
func (r *RoleRepo) Update(role *entity.Role) error {
	ctx := context.Background()
	return inTx(ctx, r.q, func(q Querier) error {
		query := `
			UPDATE roles SET name = $2, description = $3, updated_at = $4
			WHERE id = $1`
		_, err := q.Exec(ctx, query,
			role.ID, role.Name, nullIfEmpty(role.Description), role.UpdatedAt,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return domain.ErrDuplicate
			}
			return fmt.Errorf("update role: %w", err)
		}
		return replacePermissions(ctx, q, role.ID, role.PermissionKeys)
	})
}

// Delete elimina el rol y sus claves (cascade en role_permissions).
func (r *RoleRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM roles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete role: %w", err)
	}
	return nil
}

// UsersCount cuenta los usuarios asignados al rol.
func (r *RoleRepo) UsersCount(roleID string) (int, error) {
	var n int
	err := r.q.QueryRow(context.Background(),
		`SELECT COUNT(*) FROM users WHERE role_id = $1`, roleID,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count users by role: %w", err)
	}
	return n, nil
}

func (r *RoleRepo) permissionKeys(ctx context.Context, roleID string) ([]string, error) {
	rows, err := r.q.Query(ctx,
		`SELECT permission_key FROM role_permissions WHERE role_id = $1 ORDER BY permission_key`, roleID)
	if err != nil {
		return nil, fmt.Errorf("list role permissions: %w", err)
	}
	defer rows.Close()
	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan permission key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func replacePermissions(ctx context.Context, q Querier, roleID string, keys []string) error {
	if _, err := q.Exec(ctx, `DELETE FROM role_permissions WHERE role_id = $1`, roleID); err != nil {
		return fmt.Errorf("clear role permissions: %w", err)
	}
	for _, key := range keys {
		_, err := q.Exec(ctx,
			`INSERT INTO role_permissions (role_id, permission_key) VALUES ($1, $2)`, roleID, key)
		if err != nil {
			return fmt.Errorf("insert role permission: %w", err)
		}
	}
	return nil
}
