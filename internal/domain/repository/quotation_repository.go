package repository

import "github.com/jhoicas/erp-pyme/internal/domain/entity"

// QuotationRepository define el puerto de persistencia para Quotation.
// Create y GetByID incluyen las líneas. GetForUpdate bloquea la fila de la
// cotización para serializar conversiones concurrentes.
type QuotationRepository interface {
	Create(q *entity.Quotation) error
	GetByID(id string) (*entity.Quotation, error)
	GetForUpdate(id string) (*entity.Quotation, error)
	List(status string, limit, offset int) ([]*entity.Quotation, error)
	Update(q *entity.Quotation) error
}
