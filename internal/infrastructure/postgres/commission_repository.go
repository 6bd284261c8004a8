package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

var _ repository.CommissionRepository = (*CommissionRepo)(nil)

// CommissionRepo implementación de CommissionRepository sobre PostgreSQL
// (usable con pool o tx).
type CommissionRepo struct {
	q Querier
}

// NewCommissionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCommissionRepository(q Querier) *CommissionRepo {
	return &CommissionRepo{q: q}
}

const commissionColumns = `id, seller_id, sale_id, amount, percentage, date, status, created_at, updated_at`

// Create persiste una comisión.
func (r *CommissionRepo) Create(c *entity.Commission) error {
	query := `
		INSERT INTO commissions (` + commissionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		c.ID, c.SellerID, c.SaleID, c.Amount, c.Percentage, c.Date, c.Status,
		c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert commission: %w", err)
	}
	return nil
}

// GetByID obtiene una comisión por ID.
func (r *CommissionRepo) GetByID(id string) (*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1`
	var c entity.Commission
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.SellerID, &c.SaleID, &c.Amount, &c.Percentage, &c.Date, &c.Status,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get commission: %w", err)
	}
	return &c, nil
}

// List devuelve comisiones, opcionalmente filtradas por estado.
func (r *CommissionRepo) List(status string, limit, offset int) ([]*entity.Commission, error) {
	query := `SELECT ` + commissionColumns + ` FROM commissions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY date DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list commissions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Commission
	for rows.Next() {
		var c entity.Commission
		if err := rows.Scan(
			&c.ID, &c.SellerID, &c.SaleID, &c.Amount, &c.Percentage, &c.Date, &c.Status,
			&c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan commission: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Update actualiza el estado de una comisión.
func (r *CommissionRepo) Update(c *entity.Commission) error {
	query := `UPDATE commissions SET status = $2, updated_at = $3 WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, c.ID, c.Status, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update commission: %w", err)
	}
	return nil
}
