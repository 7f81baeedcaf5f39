package store

import (
	"slices"
	"sync"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

// ProductStore owns the product catalog with soft-delete semantics.
type ProductStore struct {
	mu       sync.RWMutex
	seed     []model.Product
	products []model.Product
	opts     Options
}

// NewProductStore creates a store initialised from seed.
func NewProductStore(seed []model.Product, opts Options) *ProductStore {
	s := &ProductStore{seed: seed, opts: opts.withDefaults()}
	s.Reset()
	return s
}

// Reset restores the seed collection.
func (s *ProductStore) Reset() {
	products := make([]model.Product, 0, len(s.seed))
	for _, p := range s.seed {
		p = p.Clone()
		if p.StockStatus == "" {
			p.StockStatus = model.DeriveStockStatus(p.Stock)
		}
		products = append(products, p)
	}

	s.mu.Lock()
	s.products = products
	s.mu.Unlock()
}

// List returns products that are not soft-deleted.
func (s *ProductStore) List() []model.Product {
	return s.collect(false)
}

// ListAll returns every product including soft-deleted ones.
func (s *ProductStore) ListAll() []model.Product {
	return s.collect(true)
}

func (s *ProductStore) collect(withDeleted bool) []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		if p.DeletedAt != nil && !withDeleted {
			continue
		}
		result = append(result, p.Clone())
	}
	return result
}

// GetByID returns a visible product.
func (s *ProductStore) GetByID(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 || s.products[i].DeletedAt != nil {
		return model.Product{}, false
	}
	return s.products[i].Clone(), true
}

// Add stores a new product. Stock status is derived unless overridden.
func (s *ProductStore) Add(in model.ProductInput) model.Product {
	now := s.opts.Now()
	p := model.Product{
		ID:          s.opts.NewID(),
		Name:        in.Name,
		Brand:       in.Brand,
		Category:    in.Category,
		Description: in.Description,
		Price:       in.Price,
		SalePrice:   in.SalePrice,
		Stock:       in.Stock,
		StockStatus: in.StockStatus,
		Status:      in.Status,
		Images:      in.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.StockStatus == "" {
		p.StockStatus = model.DeriveStockStatus(p.Stock)
	}
	if p.Status == "" {
		p.Status = model.CatalogStatusActive
	}
	p = p.Clone()

	s.mu.Lock()
	s.products = append(s.products, p)
	s.opts.record(model.JournalStreamCatalog, p.ID, "product_created", map[string]any{"name": p.Name, "price": p.Price})
	s.mu.Unlock()
	return p.Clone()
}

// Update merges patch into a visible product. When stock changes without an
// explicit status override the stock status is derived again.
func (s *ProductStore) Update(id string, patch model.ProductPatch) bool {
	return s.replace(id, "updated", false, func(p *model.Product) {
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Brand != nil {
			p.Brand = *patch.Brand
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Description != nil {
			p.Description = *patch.Description
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.SalePrice != nil {
			p.SalePrice = *patch.SalePrice
		}
		if patch.Status != nil {
			p.Status = *patch.Status
		}
		if patch.Images != nil {
			p.Images = *patch.Images
		}
		if patch.Stock != nil {
			p.Stock = *patch.Stock
		}
		switch {
		case patch.StockStatus != nil:
			p.StockStatus = *patch.StockStatus
		case patch.Stock != nil:
			p.StockStatus = model.DeriveStockStatus(p.Stock)
		}
	})
}

// SoftDelete hides a visible product from listings.
func (s *ProductStore) SoftDelete(id string) bool {
	return s.replace(id, "soft_deleted", false, func(p *model.Product) {
		now := s.opts.Now()
		p.DeletedAt = &now
	})
}

// Restore makes a soft-deleted product visible again.
func (s *ProductStore) Restore(id string) bool {
	return s.replace(id, "restored", true, func(p *model.Product) {
		p.DeletedAt = nil
	})
}

// replace mutates a product whose deleted state equals deleted.
func (s *ProductStore) replace(id, kind string, deleted bool, mutate func(*model.Product)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 || (s.products[i].DeletedAt != nil) != deleted {
		return false
	}
	next := s.products[i].Clone()
	mutate(&next)
	next = next.Clone()
	next.UpdatedAt = s.opts.touch(next.UpdatedAt)
	s.products[i] = next
	s.opts.record(model.JournalStreamCatalog, id, "product_"+kind, nil)
	return true
}

func (s *ProductStore) indexOf(id string) int {
	return slices.IndexFunc(s.products, func(p model.Product) bool { return p.ID == id })
}
