package quotation

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-pyme/internal/application/dto"
	"github.com/jhoicas/erp-pyme/internal/application/sales"
	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// Vigencia por defecto cuando la cotización no trae valid_until.
const defaultValidityDays = 15

// UseCase ciclo de vida de cotizaciones: creación, aprobación/rechazo y
// conversión en venta. Una cotización nunca toca stock; solo la conversión
// (aprobada→convertida) descuenta stock, y lo hace en una sola transacción
// junto con la venta y la comisión.
type UseCase struct {
	txRunner      TxRunner
	quotationRepo repository.QuotationRepository
	clientRepo    repository.ClientRepository
	productRepo   repository.ProductRepository
	userRepo      repository.UserRepository
}

// NewUseCase construye el caso de uso de cotizaciones.
func NewUseCase(
	txRunner TxRunner,
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *UseCase {
	return &UseCase{
		txRunner:      txRunner,
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		userRepo:      userRepo,
	}
}

// Create crea una cotización en estado pendiente. No verifica ni reserva
// stock: el stock se valida recién al convertir.
func (uc *UseCase) Create(sellerID string, in dto.CreateQuotationRequest) (*dto.QuotationResponse, error) {
	if in.ClientID == "" || len(in.Items) == 0 {
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
	quotationID := uuid.New().String()
	items := make([]entity.QuotationItem, 0, len(in.Items))
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
		items = append(items, entity.QuotationItem{
			ID:          uuid.New().String(),
			QuotationID: quotationID,
			ProductID:   it.ProductID,
			Quantity:    it.Quantity,
			UnitPrice:   price,
			Subtotal:    lineSubtotal,
		})
		subtotal = subtotal.Add(lineSubtotal)
	}

	validUntil := in.ValidUntil
	if validUntil.IsZero() {
		validUntil = now.AddDate(0, 0, defaultValidityDays)
	}
	q := &entity.Quotation{
		ID:         quotationID,
		Date:       now,
		ClientID:   in.ClientID,
		SellerID:   sellerID,
		Items:      items,
		Subtotal:   subtotal,
		Tax:        in.Tax,
		Discount:   in.Discount,
		Total:      subtotal.Add(in.Tax).Sub(in.Discount),
		ValidUntil: validUntil,
		Status:     entity.QuotationStatusPendiente,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.quotationRepo.Create(q); err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// Approve pasa una cotización de pendiente a aprobada.
func (uc *UseCase) Approve(id string) (*dto.QuotationResponse, error) {
	return uc.transition(id, entity.QuotationStatusAprobada)
}

// Reject pasa una cotización de pendiente a rechazada (terminal).
func (uc *UseCase) Reject(id string) (*dto.QuotationResponse, error) {
	return uc.transition(id, entity.QuotationStatusRechazada)
}

func (uc *UseCase) transition(id, next string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if !q.CanTransitionTo(next) {
		return nil, domain.ErrInvalidState
	}
	q.Status = next
	q.UpdatedAt = time.Now()
	if err := uc.quotationRepo.Update(q); err != nil {
		return nil, err
	}
	return toQuotationResponse(q), nil
}

// Convert convierte una cotización aprobada en venta. En una sola
// transacción: bloquea la cotización, crea la venta (completada, pago
// efectivo por defecto), descuenta stock línea a línea, crea la comisión
// del vendedor y marca la cotización como convertida con la referencia a
// la venta. Cualquier fallo (stock insuficiente incluido) revierte todo y
// la cotización queda aprobada.
func (uc *UseCase) Convert(ctx context.Context, id string) (*dto.ConvertQuotationResponse, error) {
	var saleID string
	err := uc.txRunner.RunConversion(ctx, func(
		quotationRepo repository.QuotationRepository,
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
		commissionRepo repository.CommissionRepository,
	) error {
		q, err := quotationRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if q == nil {
			return domain.ErrNotFound
		}
		// El lock serializa conversiones concurrentes: la que pierde la
		// carrera ve convertida aquí y falla sin crear segunda venta.
		if q.Status != entity.QuotationStatusAprobada {
			return domain.ErrInvalidState
		}
		seller, err := uc.userRepo.GetByID(q.SellerID)
		if err != nil {
			return err
		}
		if seller == nil {
			return domain.ErrNotFound
		}

		now := time.Now()
		saleID = uuid.New().String()
		saleItems := make([]entity.SaleItem, 0, len(q.Items))
		for _, it := range q.Items {
			saleItems = append(saleItems, entity.SaleItem{
				ID:        uuid.New().String(),
				SaleID:    saleID,
				ProductID: it.ProductID,
				Quantity:  it.Quantity,
				UnitPrice: it.UnitPrice,
				Subtotal:  it.Subtotal,
			})
		}
		sale := &entity.Sale{
			ID:            saleID,
			Date:          now,
			ClientID:      q.ClientID,
			SellerID:      q.SellerID,
			Items:         saleItems,
			Subtotal:      q.Subtotal,
			Tax:           q.Tax,
			Discount:      q.Discount,
			Total:         q.Total,
			PaymentMethod: entity.PaymentEfectivo,
			Status:        entity.SaleStatusCompletada,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := sales.CreateInTx(productRepo, saleRepo, commissionRepo, sale, seller, now); err != nil {
			return err
		}

		q.Status = entity.QuotationStatusConvertida
		q.ConvertedToSaleID = saleID
		q.UpdatedAt = now
		return quotationRepo.Update(q)
	})
	if err != nil {
		return nil, err
	}
	return &dto.ConvertQuotationResponse{QuotationID: id, SaleID: saleID}, nil
}

// GetByID obtiene una cotización con sus líneas.
func (uc *UseCase) GetByID(id string) (*dto.QuotationResponse, error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, nil
	}
	return toQuotationResponse(q), nil
}

// List lista cotizaciones, opcionalmente filtradas por estado.
func (uc *UseCase) List(status string, limit, offset int) (*dto.QuotationListResponse, error) {
	list, err := uc.quotationRepo.List(status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.QuotationResponse, 0, len(list))
	for _, q := range list {
		items = append(items, *toQuotationResponse(q))
	}
	return &dto.QuotationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toQuotationResponse(q *entity.Quotation) *dto.QuotationResponse {
	if q == nil {
		return nil
	}
	resp := &dto.QuotationResponse{
		ID:                q.ID,
		Date:              q.Date,
		ClientID:          q.ClientID,
		SellerID:          q.SellerID,
		Items:             make([]dto.QuotationItemResponse, 0, len(q.Items)),
		Subtotal:          q.Subtotal,
		Tax:               q.Tax,
		Discount:          q.Discount,
		Total:             q.Total,
		ValidUntil:        q.ValidUntil,
		Status:            q.Status,
		ConvertedToSaleID: q.ConvertedToSaleID,
		CreatedAt:         q.CreatedAt,
		UpdatedAt:         q.UpdatedAt,
	}
	for _, it := range q.Items {
		resp.Items = append(resp.Items, dto.QuotationItemResponse{
			ID:        it.ID,
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			Subtotal:  it.Subtotal,
		})
	}
	return resp
}
