package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

var _ repository.QuotationRepository = (*QuotationRepo)(nil)

// QuotationRepo implementación de QuotationRepository sobre PostgreSQL
// (usable con pool o tx). GetForUpdate bloquea la cabecera para serializar
// conversiones concurrentes.
type QuotationRepo struct {
	q Querier
}

// NewQuotationRepository construye el adaptador. Pasar pool o tx (Querier).
func NewQuotationRepository(q Querier) *QuotationRepo {
	return &QuotationRepo{q: q}
}

const quotationColumns = `id, date, client_id, seller_id, subtotal, tax, discount, total, valid_until, status, COALESCE(converted_to_sale_id, ''), created_at, updated_at`

// Create persiste la cotización y sus líneas en una sola transacción.
func (r *QuotationRepo) Create(q *entity.Quotation) error {
	ctx := context.Background()
	return inTx(ctx, r.q, func(tx Querier) error {
		query := `
			INSERT INTO quotations (id, date, client_id, seller_id, subtotal, tax, discount, total, valid_until, status, converted_to_sale_id, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
		_, err := tx.Exec(ctx, query,
			q.ID, q.Date, q.ClientID, q.SellerID, q.Subtotal, q.Tax, q.Discount, q.Total,
			q.ValidUntil, q.Status, nullIfEmpty(q.ConvertedToSaleID), q.CreatedAt, q.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert quotation: %w", err)
		}
		for _, item := range q.Items {
			_, err := tx.Exec(ctx, `
				INSERT INTO quotation_items (id, quotation_id, product_id, quantity, unit_price, subtotal)
				VALUES ($1, $2, $3, $4, $5, $6)`,
				item.ID, item.QuotationID, item.ProductID, item.Quantity, item.UnitPrice, item.Subtotal,
			)
			if err != nil {
				return fmt.Errorf("insert quotation item: %w", err)
			}
		}
		return nil
	})
}

// GetByID obtiene una cotización con sus líneas.
func (r *QuotationRepo) GetByID(id string) (*entity.Quotation, error) {
	return r.get(id, false)
}

// GetForUpdate obtiene la cotización bloqueando su cabecera (SELECT FOR
// UPDATE). Solo tiene sentido dentro de una transacción.
func (r *QuotationRepo) GetForUpdate(id string) (*entity.Quotation, error) {
	return r.get(id, true)
}

func (r *QuotationRepo) get(id string, forUpdate bool) (*entity.Quotation, error) {
	ctx := context.Background()
	query := `SELECT ` + quotationColumns + ` FROM quotations WHERE id = $1`
	if forUpdate {
		query += ` FOR UPDATE`
	}
	var q entity.Quotation
	err := r.q.QueryRow(ctx, query, id).Scan(
		&q.ID, &q.Date, &q.ClientID, &q.SellerID, &q.Subtotal, &q.Tax, &q.Discount,
		&q.Total, &q.ValidUntil, &q.Status, &q.ConvertedToSaleID, &q.CreatedAt, &q.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quotation: %w", err)
	}
	items, err := r.items(ctx, q.ID)
	if err != nil {
		return nil, err
	}
	q.Items = items
	return &q, nil
}

// List devuelve cotizaciones (con líneas), opcionalmente filtradas por estado.
func (r *QuotationRepo) List(status string, limit, offset int) ([]*entity.Quotation, error) {
	ctx := context.Background()
	query := `SELECT ` + quotationColumns + ` FROM quotations`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1 ORDER BY date DESC LIMIT $2 OFFSET $3`
		args = append(args, status, limit, offset)
	} else {
		query += ` ORDER BY date DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list quotations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Quotation
	for rows.Next() {
		var q entity.Quotation
		if err := rows.Scan(
			&q.ID, &q.Date, &q.ClientID, &q.SellerID, &q.Subtotal, &q.Tax, &q.Discount,
			&q.Total, &q.ValidUntil, &q.Status, &q.ConvertedToSaleID, &q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan quotation: %w", err)
		}
		list = append(list, &q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for _, q := range list {
		items, err := r.items(ctx, q.ID)
		if err != nil {
			return nil, err
		}
		q.Items = items
	}
	return list, nil
}

// Update actualiza la cabecera (estado, referencia de conversión). Las
// líneas no cambian después de creadas.
func (r *QuotationRepo) Update(q *entity.Quotation) error {
	query := `
		UPDATE quotations
		SET status = $2, converted_to_sale_id = $3, valid_until = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		q.ID, q.Status, nullIfEmpty(q.ConvertedToSaleID), q.ValidUntil, q.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update quotation: %w", err)
	}
	return nil
}

func (r *QuotationRepo) items(ctx context.Context, quotationID string) ([]entity.QuotationItem, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id, quotation_id, product_id, quantity, unit_price, subtotal
		FROM quotation_items WHERE quotation_id = $1 ORDER BY id`, quotationID)
	if err != nil {
		return nil, fmt.Errorf("list quotation items: %w", err)
	}
	defer rows.Close()
	var items []entity.QuotationItem
	for rows.Next() {
		var it entity.QuotationItem
		if err := rows.Scan(&it.ID, &it.QuotationID, &it.ProductID, &it.Quantity, &it.UnitPrice, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan quotation item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
