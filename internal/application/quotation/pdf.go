package quotation

import (
	"context"
	"fmt"

	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

// LineForPDF línea de cotización enriquecida con el nombre del producto.
type LineForPDF struct {
	entity.QuotationItem
	ProductName string
}

// PDFGenerator genera el documento imprimible de una cotización.
type PDFGenerator interface {
	GenerateQuotationPDF(
		ctx context.Context,
		q *entity.Quotation,
		client *entity.Client,
		seller *entity.User,
		lines []LineForPDF,
	) ([]byte, error)
}

// PDFUseCase arma los datos y genera el PDF de una cotización.
type PDFUseCase struct {
	quotationRepo repository.QuotationRepository
	clientRepo    repository.ClientRepository
	userRepo      repository.UserRepository
	productRepo   repository.ProductRepository
	generator     PDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	quotationRepo repository.QuotationRepository,
	clientRepo repository.ClientRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	generator PDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		userRepo:      userRepo,
		productRepo:   productRepo,
		generator:     generator,
	}
}

// DownloadQuotationPDF carga la cotización con cliente, vendedor y nombres
// de producto, y genera el documento. Cualquier estado es imprimible.
func (uc *PDFUseCase) DownloadQuotationPDF(ctx context.Context, id string) (pdfBytes []byte, filename string, err error) {
	q, err := uc.quotationRepo.GetByID(id)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener cotización: %w", err)
	}
	if q == nil {
		return nil, "", domain.ErrNotFound
	}

	client, err := uc.clientRepo.GetByID(q.ClientID)
	if err != nil || client == nil {
		return nil, "", fmt.Errorf("pdf: obtener cliente: %w", err)
	}
	seller, err := uc.userRepo.GetByID(q.SellerID)
	if err != nil || seller == nil {
		return nil, "", fmt.Errorf("pdf: obtener vendedor: %w", err)
	}

	lines := make([]LineForPDF, 0, len(q.Items))
	for _, it := range q.Items {
		name := "Producto " + it.ProductID // fallback
		if product, pErr := uc.productRepo.GetByID(it.ProductID); pErr == nil && product != nil {
			name = product.Name
		}
		lines = append(lines, LineForPDF{QuotationItem: it, ProductName: name})
	}

	pdfBytes, err = uc.generator.GenerateQuotationPDF(ctx, q, client, seller, lines)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}
	filename = fmt.Sprintf("cotizacion_%s.pdf", q.ID)
	return pdfBytes, filename, nil
}
