package purchases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// UseCase registra compras a proveedores. Recibir una compra incrementa el
// stock de cada producto en la misma transacción que la inserción.
type UseCase struct {
	txRunner     TxRunner
	supplierRepo repository.SupplierRepository
	productRepo  repository.ProductRepository
	purchaseRepo repository.PurchaseRepository
}

// NewUseCase construye el caso de uso de compras.
func NewUseCase(
	txRunner TxRunner,
	supplierRepo repository.SupplierRepository,
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) *UseCase {
	return &UseCase{
		txRunner:     txRunner,
		supplierRepo: supplierRepo,
		productRepo:  productRepo,
		purchaseRepo: purchaseRepo,
	}
}

// Create registra una compra recibida e incrementa stock línea a línea.
func (uc *UseCase) Create(ctx context.Context, userID string, in dto.CreatePurchaseRequest) (*dto.PurchaseResponse, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	supplier, err := uc.supplierRepo.GetByID(in.SupplierID)
	if err != nil {
		return nil, err
	}
	if supplier == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	purchaseID := uuid.New().String()
	items := make([]entity.PurchaseItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, it := range in.Items {
		if it.ProductID == "" || !it.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		cost := it.UnitCost
		if cost.IsZero() {
			product, err := uc.productRepo.GetByID(it.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrNotFound
			}
			cost = product.PurchasePrice
		}
		if cost.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lineSubtotal := it.Quantity.Mul(cost)
		items = append(items, entity.PurchaseItem{
			ID:         uuid.New().String(),
			PurchaseID: purchaseID,
			ProductID:  it.ProductID,
			Quantity:   it.Quantity,
			UnitCost:   cost,
			Subtotal:   lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	purchase := &entity.Purchase{
		ID:         purchaseID,
		Date:       now,
		SupplierID: in.SupplierID,
		UserID:     userID,
		Items:      items,
		Subtotal:   subtotal,
		Tax:        in.Tax,
		Total:      subtotal.Add(in.Tax),
		Status:     entity.PurchaseStatusRecibida,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = uc.txRunner.RunPurchase(ctx, func(
		productRepo repository.ProductRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		for _, item := range purchase.Items {
			product, err := productRepo.GetForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				return domain.ErrNotFound
			}
			if err := productRepo.UpdateStock(item.ProductID, product.Stock.Add(item.Quantity)); err != nil {
				return err
			}
		}
		return purchaseRepo.Create(purchase)
	})
	if err != nil {
		return nil, err
	}
	return toPurchaseResponse(purchase), nil
}

// GetByID obtiene una compra con sus líneas.
func (uc *UseCase) GetByID(id string) (*dto.PurchaseResponse, error) {
	purchase, err := uc.purchaseRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, nil
	}
	return toPurchaseResponse(purchase), nil
}

// List lista compras con paginación.
func (uc *UseCase) List(limit, offset int) (*dto.PurchaseListResponse, error) {
	list, err := uc.purchaseRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.PurchaseResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toPurchaseResponse(p))
	}
	return &dto.PurchaseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toPurchaseResponse(p *entity.Purchase) *dto.PurchaseResponse {
	if p == nil {
		return nil
	}
	resp := &dto.PurchaseResponse{
		ID:         p.ID,
		Date:       p.Date,
		SupplierID: p.SupplierID,
		UserID:     p.UserID,
		Items:      make([]dto.PurchaseItemResponse, 0, len(p.Items)),
		Subtotal:   p.Subtotal,
		Tax:        p.Tax,
		Total:      p.Total,
		Status:     p.Status,
		CreatedAt:  p.CreatedAt,
	}
	for _, it := range p.Items {
		resp.Items = append(resp.Items, dto.PurchaseItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitCost:  it.UnitCost,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
