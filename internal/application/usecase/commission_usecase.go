package usecase

import (
	"time"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// CommissionUseCase liquidación de comisiones. La creación no ocurre aquí:
// cada comisión nace junto con su venta, dentro de la misma transacción.
type CommissionUseCase struct {
	commissionRepo repository.CommissionRepository
}

// NewCommissionUseCase construye el caso de uso.
func NewCommissionUseCase(commissionRepo repository.CommissionRepository) *CommissionUseCase {
	return &CommissionUseCase{commissionRepo: commissionRepo}
}

// MarkPaid marca la comisión como pagada. La transición
// pendiente→completada es de una sola vía: una comisión ya pagada produce
// ErrInvalidState y ningún reintento la revierte.
func (uc *CommissionUseCase) MarkPaid(id string) (*dto.CommissionResponse, error) {
	c, err := uc.commissionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if c.Status == entity.CommissionStatusCompletada {
		return nil, domain.ErrInvalidState
	}
	c.Status = entity.CommissionStatusCompletada
	c.UpdatedAt = time.Now()
	if err := uc.commissionRepo.Update(c); err != nil {
		return nil, err
	}
	return toCommissionResponse(c), nil
}

// GetByID obtiene una comisión por ID.
func (uc *CommissionUseCase) GetByID(id string) (*dto.CommissionResponse, error) {
	c, err := uc.commissionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, nil
	}
	return toCommissionResponse(c), nil
}

// List lista comisiones, opcionalmente filtradas por estado.
func (uc *CommissionUseCase) List(status string, limit, offset int) (*dto.CommissionListResponse, error) {
	list, err := uc.commissionRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CommissionResponse, 0, len(list))
	for _, c := range list {
		items = append(items, *toCommissionResponse(c))
	}
	return &dto.CommissionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toCommissionResponse(c *entity.Commission) *dto.CommissionResponse {
	if c == nil {
		return nil
	}
	return &dto.CommissionResponse{
		ID:         c.ID,
		SellerID:   c.SellerID,
		SaleID:     c.SaleID,
		Amount:     c.Amount,
		Percentage: c.Percentage,
		Date:       c.Date,
		Status:     c.Status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}
