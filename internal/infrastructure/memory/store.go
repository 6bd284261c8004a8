// Package memory implementa los puertos de persistencia sobre mapas en
// memoria, con un TxRunner que simula commit/rollback vía snapshot. Lo usan
// las pruebas de los casos de uso y el modo demo sin PostgreSQL.
package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/erp-pyme/internal/application/purchases"
	"github.com/jhoicas/erp-pyme/internal/application/quotation"
	"github.com/jhoicas/erp-pyme/internal/application/sales"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
	"github.com/jhoicas/erp-pyme/internal/domain/repository"
)

var _ sales.TxRunner = (*Store)(nil)
var _ quotation.TxRunner = (*Store)(nil)
var _ purchases.TxRunner = (*Store)(nil)

// Store contiene todas las colecciones. Un mutex único serializa lectores y
// escritores; suficiente para pruebas y demos.
type Store struct {
	mu sync.Mutex

	permissions map[string]*entity.Permission
	roles       map[string]*entity.Role
	users       map[string]*entity.User
	clients     map[string]*entity.Client
	suppliers   map[string]*entity.Supplier
	products    map[string]*entity.Product
	quotations  map[string]*entity.Quotation
	sales       map[string]*entity.Sale
	commissions map[string]*entity.Commission
	purchases   map[string]*entity.Purchase
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		permissions: map[string]*entity.Permission{},
		roles:       map[string]*entity.Role{},
		users:       map[string]*entity.User{},
		clients:     map[string]*entity.Client{},
		suppliers:   map[string]*entity.Supplier{},
		products:    map[string]*entity.Product{},
		quotations:  map[string]*entity.Quotation{},
		sales:       map[string]*entity.Sale{},
		commissions: map[string]*entity.Commission{},
		purchases:   map[string]*entity.Purchase{},
	}
}

// Repositorios sobre el store. Comparten el mismo estado.

func (s *Store) Permissions() repository.PermissionRepository { return &permissionRepo{s: s} }
func (s *Store) Roles() repository.RoleRepository             { return &roleRepo{s: s} }
func (s *Store) Users() repository.UserRepository             { return &userRepo{s: s} }
func (s *Store) Clients() repository.ClientRepository         { return &clientRepo{s: s} }
func (s *Store) Suppliers() repository.SupplierRepository     { return &supplierRepo{s: s} }
func (s *Store) Products() repository.ProductRepository       { return &productRepo{s: s} }
func (s *Store) Quotations() repository.QuotationRepository   { return &quotationRepo{s: s} }
func (s *Store) Sales() repository.SaleRepository             { return &saleRepo{s: s} }
func (s *Store) Commissions() repository.CommissionRepository { return &commissionRepo{s: s} }
func (s *Store) Purchases() repository.PurchaseRepository     { return &purchaseRepo{s: s} }

// snapshot copia las colecciones mutadas por las transacciones. Las
// entidades se clonan al escribir y al leer, así que basta copiar los mapas.
type snapshot struct {
	products    map[string]*entity.Product
	quotations  map[string]*entity.Quotation
	sales       map[string]*entity.Sale
	commissions map[string]*entity.Commission
	purchases   map[string]*entity.Purchase
}

func (s *Store) take() snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot{
		products:    cloneMap(s.products, cloneProduct),
		quotations:  cloneMap(s.quotations, cloneQuotation),
		sales:       cloneMap(s.sales, cloneSale),
		commissions: cloneMap(s.commissions, cloneCommission),
		purchases:   cloneMap(s.purchases, clonePurchase),
	}
}

func (s *Store) restore(snap snapshot) {
	s.products = snap.products
	s.quotations = snap.quotations
	s.sales = snap.sales
	s.commissions = snap.commissions
	s.purchases = snap.purchases
}

// RunSale ejecuta fn y revierte todo efecto si devuelve error.
func (s *Store) RunSale(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	commissionRepo repository.CommissionRepository,
) error) error {
	snap := s.take()
	if err := fn(s.Products(), s.Sales(), s.Commissions()); err != nil {
		s.mu.Lock()
		s.restore(snap)
		s.mu.Unlock()
		return err
	}
	return nil
}

// RunConversion ejecuta fn y revierte todo efecto si devuelve error.
func (s *Store) RunConversion(ctx context.Context, fn func(
	quotationRepo repository.QuotationRepository,
	productRepo repository.ProductRepository,
	saleRepo repository.SaleRepository,
	commissionRepo repository.CommissionRepository,
) error) error {
	snap := s.take()
	if err := fn(s.Quotations(), s.Products(), s.Sales(), s.Commissions()); err != nil {
		s.mu.Lock()
		s.restore(snap)
		s.mu.Unlock()
		return err
	}
	return nil
}

// RunPurchase ejecuta fn y revierte todo efecto si devuelve error.
func (s *Store) RunPurchase(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	purchaseRepo repository.PurchaseRepository,
) error) error {
	snap := s.take()
	if err := fn(s.Products(), s.Purchases()); err != nil {
		s.mu.Lock()
		s.restore(snap)
		s.mu.Unlock()
		return err
	}
	return nil
}

func cloneMap[T any](src map[string]*T, clone func(*T) *T) map[string]*T {
	dst := make(map[string]*T, len(src))
	for k, v := range src {
		dst[k] = clone(v)
	}
	return dst
}

func clonePermission(p *entity.Permission) *entity.Permission {
	cp := *p
	return &cp
}

func cloneRole(r *entity.Role) *entity.Role {
	cp := *r
	cp.PermissionKeys = append([]string(nil), r.PermissionKeys...)
	return &cp
}

func cloneUser(u *entity.User) *entity.User {
	cp := *u
	return &cp
}

func cloneClient(c *entity.Client) *entity.Client {
	cp := *c
	return &cp
}

func cloneSupplier(s *entity.Supplier) *entity.Supplier {
	cp := *s
	return &cp
}

func cloneProduct(p *entity.Product) *entity.Product {
	cp := *p
	return &cp
}

func cloneQuotation(q *entity.Quotation) *entity.Quotation {
	cp := *q
	cp.Items = append([]entity.QuotationItem(nil), q.Items...)
	return &cp
}

func cloneSale(s *entity.Sale) *entity.Sale {
	cp := *s
	cp.Items = append([]entity.SaleItem(nil), s.Items...)
	return &cp
}

func cloneCommission(c *entity.Commission) *entity.Commission {
	cp := *c
	return &cp
}

func clonePurchase(p *entity.Purchase) *entity.Purchase {
	cp := *p
	cp.Items = append([]entity.PurchaseItem(nil), p.Items...)
	return &cp
}
