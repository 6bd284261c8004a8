package memory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/erp-pyme/internal/domain"
	"github.com/jhoicas/erp-pyme/internal/domain/entity"
)

type productRepo struct{ s *Store }

func (r *productRepo) Create(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, existing := range r.s.products {
		if existing.Code == product.Code {
			return domain.ErrDuplicate
		}
	}
	r.s.products[product.ID] = cloneProduct(product)
	return nil
}

func (r *productRepo) GetByID(id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return nil, nil
	}
	return cloneProduct(p), nil
}

func (r *productRepo) GetByCode(code string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.Code == code {
			return cloneProduct(p), nil
		}
	}
	return nil, nil
}

// GetForUpdate no bloquea filas: el mutex del store serializa todo.
func (r *productRepo) GetForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *productRepo) List(limit, offset int) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		list = append(list, cloneProduct(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })
	return paginate(list, limit, offset), nil
}

func (r *productRepo) Update(product *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	current, ok := r.s.products[product.ID]
	if !ok {
		return domain.ErrNotFound
	}
	cp := cloneProduct(product)
	cp.Stock = current.Stock // el stock solo lo muta UpdateStock
	r.s.products[product.ID] = cp
	return nil
}

func (r *productRepo) UpdateStock(productID string, stock decimal.Decimal) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[productID]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *productRepo) Delete(id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.products, id)
	return nil
}

func (r *productRepo) HasTransactions(productID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, s := range r.s.sales {
		for _, it := range s.Items {
			if it.ProductID == productID {
				return true, nil
			}
		}
	}
	for _, q := range r.s.quotations {
		for _, it := range q.Items {
			if it.ProductID == productID {
				return true, nil
			}
		}
	}
	for _, p := range r.s.purchases {
		for _, it := range p.Items {
			if it.ProductID == productID {
				return true, nil
			}
		}
	}
	return false, nil
}

type quotationRepo struct{ s *Store }

func (r *quotationRepo) Create(q *entity.Quotation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.quotations[q.ID] = cloneQuotation(q)
	return nil
}

func (r *quotationRepo) GetByID(id string) (*entity.Quotation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	q, ok := r.s.quotations[id]
	if !ok {
		return nil, nil
	}
	return cloneQuotation(q), nil
}

// GetForUpdate no bloquea filas: el mutex del store serializa todo.
func (r *quotationRepo) GetForUpdate(id string) (*entity.Quotation, error) {
	return r.GetByID(id)
}

func (r *quotationRepo) List(status string, limit, offset int) ([]*entity.Quotation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Quotation, 0, len(r.s.quotations))
	for _, q := range r.s.quotations {
		if status != "" && q.Status != status {
			continue
		}
		list = append(list, cloneQuotation(q))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return paginate(list, limit, offset), nil
}

func (r *quotationRepo) Update(q *entity.Quotation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.quotations[q.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.quotations[q.ID] = cloneQuotation(q)
	return nil
}

type saleRepo struct{ s *Store }

func (r *saleRepo) Create(sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sales[sale.ID] = cloneSale(sale)
	return nil
}

func (r *saleRepo) GetByID(id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	s, ok := r.s.sales[id]
	if !ok {
		return nil, nil
	}
	return cloneSale(s), nil
}

func (r *saleRepo) List(limit, offset int) ([]*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Sale, 0, len(r.s.sales))
	for _, s := range r.s.sales {
		list = append(list, cloneSale(s))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return paginate(list, limit, offset), nil
}

type commissionRepo struct{ s *Store }

func (r *commissionRepo) Create(c *entity.Commission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.commissions[c.ID] = cloneCommission(c)
	return nil
}

func (r *commissionRepo) GetByID(id string) (*entity.Commission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.commissions[id]
	if !ok {
		return nil, nil
	}
	return cloneCommission(c), nil
}

func (r *commissionRepo) List(status string, limit, offset int) ([]*entity.Commission, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Commission, 0, len(r.s.commissions))
	for _, c := range r.s.commissions {
		if status != "" && c.Status != status {
			continue
		}
		list = append(list, cloneCommission(c))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return paginate(list, limit, offset), nil
}

func (r *commissionRepo) Update(c *entity.Commission) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.commissions[c.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.commissions[c.ID] = cloneCommission(c)
	return nil
}

type purchaseRepo struct{ s *Store }

func (r *purchaseRepo) Create(p *entity.Purchase) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.purchases[p.ID] = clonePurchase(p)
	return nil
}

func (r *purchaseRepo) GetByID(id string) (*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.purchases[id]
	if !ok {
		return nil, nil
	}
	return clonePurchase(p), nil
}

func (r *purchaseRepo) List(limit, offset int) ([]*entity.Purchase, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	list := make([]*entity.Purchase, 0, len(r.s.purchases))
	for _, p := range r.s.purchases {
		list = append(list, clonePurchase(p))
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Date.After(list[j].Date) })
	return paginate(list, limit, offset), nil
}
