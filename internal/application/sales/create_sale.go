package sales

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

// CreateSaleUseCase crea ventas directas (sin cotización). Crear una venta
// descuenta stock de cada producto y genera la comisión del vendedor, todo
// en una sola transacción.
type CreateSaleUseCase struct {
	txRunner    TxRunner
	clientRepo  repository.ClientRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	saleRepo    repository.SaleRepository
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
) *CreateSaleUseCase {
	return &CreateSaleUseCase{
		txRunner:    txRunner,
		clientRepo:  clientRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		saleRepo:    saleRepo,
	}
}

// CreateSale valida entradas fuera de la transacción (solo lectura) y
// ejecuta venta + stock + comisión dentro de ella.
func (uc *CreateSaleUseCase) CreateSale(ctx context.Context, sellerID string, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	client, err := uc.clientRepo.GetByID(in.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, domain.ErrNotFound
	}
	seller, err := uc.userRepo.GetByID(sellerID)
	if err != nil {
		return nil, err
	}
	if seller == nil {
		return nil, domain.ErrNotFound
	}

	now := time.Now()
	saleID := uuid.New().String()
	items := make([]entity.SaleItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for _, it := range in.Items {
		if it.ProductID == "" || !it.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		price := it.UnitPrice
		if price.IsZero() {
			product, err := uc.productRepo.GetByID(it.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				return nil, domain.ErrNotFound
			}
			price = product.SalePrice
		}
		if price.LessThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
		lineSubtotal := it.Quantity.Mul(price)
		items = append(items, entity.SaleItem{
			ID:        uuid.New().String(),
			SaleID:    saleID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: price,
			Subtotal:  lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	sale := &entity.Sale{
		ID:            saleID,
		Date:          now,
		ClientID:      in.ClientID,
		SellerID:      sellerID,
		Items:         items,
		Subtotal:      subtotal,
		Tax:           in.Tax,
		Discount:      in.Discount,
		Total:         subtotal.Add(in.Tax).Sub(in.Discount),
		PaymentMethod: in.PaymentMethod,
		Status:        entity.SaleStatusCompletada,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.txRunner.RunSale(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		commissionRepo repository.CommissionRepository,
	) error {
		return CreateInTx(productRepo, saleRepo, commissionRepo, sale, seller, now)
	})
	if err != nil {
		return nil, err
	}
	return toSaleResponse(sale), nil
}

// CreateInTx crea la venta usando los repositorios de la transacción del
// caller: bloquea cada producto (SELECT FOR UPDATE), verifica stock,
// descuenta, persiste la venta con sus líneas y crea la comisión pendiente
// del vendedor. Lo usa también la conversión de cotizaciones.
func CreateInTx(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	commissionRepo repository.CommissionRepository,
	sale *entity.Sale,
	seller *entity.User,
	now time.Time,
) error {
	for _, item := range sale.Items {
		product, err := productRepo.GetForUpdate(item.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		if product.Stock.LessThan(item.Quantity) {
			return domain.ErrInsufficientStock
		}
		if err := productRepo.UpdateStock(item.ProductID, product.Stock.Sub(item.Quantity)); err != nil {
			return err
		}
	}
	if err := saleRepo.Create(sale); err != nil {
		return err
	}
	// Una comisión por venta, creada junto con ella (no derivada después).
	commission := &entity.Commission{
		ID:         uuid.New().String(),
		SellerID:   sale.SellerID,
		SaleID:     sale.ID,
		Amount:     sale.Total.Mul(seller.CommissionPct).Div(decimal.NewFromInt(100)).Round(2),
		Percentage: seller.CommissionPct,
		Date:       now,
		Status:     entity.CommissionStatusPendiente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return commissionRepo.Create(commission)
}

// GetSale obtiene una venta con sus líneas.
func (uc *CreateSaleUseCase) GetSale(id string) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, nil
	}
	return toSaleResponse(sale), nil
}

// ListSales lista ventas con paginación.
func (uc *CreateSaleUseCase) ListSales(limit, offset int) (*dto.SaleListResponse, error) {
	list, err := uc.saleRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SaleResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSaleResponse(s))
	}
	return &dto.SaleListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	resp := &dto.SaleResponse{
		ID:            s.ID,
		Date:          s.Date,
		ClientID:      s.ClientID,
		SellerID:      s.SellerID,
		Items:         make([]dto.SaleItemResponse, 0, len(s.Items)),
		Subtotal:      s.Subtotal,
		Tax:           s.Tax,
		Discount:      s.Discount,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Status:        s.Status,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
	for _, it := range s.Items {
		resp.Items = append(resp.Items, dto.SaleItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
