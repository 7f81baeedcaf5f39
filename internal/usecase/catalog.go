package usecase

import (
	"strings"

	domainErrors "github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/errors"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/repository"
)

// CatalogUseCase manages products and services.
type CatalogUseCase struct {
	products repository.ProductRepository
	services repository.ServiceRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(products repository.ProductRepository, services repository.ServiceRepository) *CatalogUseCase {
	return &CatalogUseCase{products: products, services: services}
}

// Products lists products, including soft-deleted ones when withDeleted is set.
func (u *CatalogUseCase) Products(withDeleted bool) []model.Product {
	if withDeleted {
		return u.products.ListAll()
	}
	return u.products.List()
}

// Product returns a visible product or ErrNotFound.
func (u *CatalogUseCase) Product(id string) (model.Product, error) {
	p, ok := u.products.GetByID(id)
	if !ok {
		return model.Product{}, domainErrors.ErrNotFound
	}
	return p, nil
}

// CreateProduct validates and stores a product.
func (u *CatalogUseCase) CreateProduct(in model.ProductInput) (model.Product, error) {
	errs := FieldErrors{}
	checkName(errs, in.Name)
	checkPrice(errs, in.Price)
	checkSalePrice(errs, in.SalePrice, in.Price)
	if in.Stock < 0 {
		errs["stock"] = "Stock cannot be negative"
	}
	if in.StockStatus != "" && !in.StockStatus.Valid() {
		errs["stockStatus"] = "Unknown stock status"
	}
	checkCatalogStatus(errs, in.Status)
	if len(errs) > 0 {
		return model.Product{}, &ValidationError{Fields: errs}
	}
	return u.products.Add(in), nil
}

// UpdateProduct applies patch to a visible product.
func (u *CatalogUseCase) UpdateProduct(id string, patch model.ProductPatch) (model.Product, error) {
	errs := FieldErrors{}
	if patch.Name != nil {
		checkName(errs, *patch.Name)
	}
	if patch.Price != nil {
		checkPrice(errs, *patch.Price)
	}
	if patch.Price != nil || patch.SalePrice != nil {
		current, ok := u.products.GetByID(id)
		if !ok {
			return model.Product{}, domainErrors.ErrNotFound
		}
		price, sale := current.Price, current.SalePrice
		if patch.Price != nil {
			price = *patch.Price
		}
		if patch.SalePrice != nil {
			sale = *patch.SalePrice
		}
		checkSalePrice(errs, sale, price)
	}
	if patch.Stock != nil && *patch.Stock < 0 {
		errs["stock"] = "Stock cannot be negative"
	}
	if patch.StockStatus != nil && !patch.StockStatus.Valid() {
		errs["stockStatus"] = "Unknown stock status"
	}
	if patch.Status != nil {
		checkCatalogStatus(errs, *patch.Status)
	}
	if len(errs) > 0 {
		return model.Product{}, &ValidationError{Fields: errs}
	}
	if !u.products.Update(id, patch) {
		return model.Product{}, domainErrors.ErrNotFound
	}
	return u.Product(id)
}

// DeleteProduct soft-deletes a product.
func (u *CatalogUseCase) DeleteProduct(id string) error {
	if !u.products.SoftDelete(id) {
		return domainErrors.ErrNotFound
	}
	return nil
}

// RestoreProduct undoes a soft delete.
func (u *CatalogUseCase) RestoreProduct(id string) (model.Product, error) {
	if !u.products.Restore(id) {
		return model.Product{}, domainErrors.ErrNotFound
	}
	return u.Product(id)
}

// Services lists services, including soft-deleted ones when withDeleted is set.
func (u *CatalogUseCase) Services(withDeleted bool) []model.Service {
	if withDeleted {
		return u.services.ListAll()
	}
	return u.services.List()
}

// Service returns a visible service or ErrNotFound.
func (u *CatalogUseCase) Service(id string) (model.Service, error) {
	s, ok := u.services.GetByID(id)
	if !ok {
		return model.Service{}, domainErrors.ErrNotFound
	}
	return s, nil
}

// CreateService validates and stores a service.
func (u *CatalogUseCase) CreateService(in model.ServiceInput) (model.Service, error) {
	errs := FieldErrors{}
	checkName(errs, in.Name)
	checkPrice(errs, in.Price)
	if in.DurationMinutes <= 0 {
		errs["durationMinutes"] = "Duration must be positive"
	}
	checkCatalogStatus(errs, in.Status)
	if len(errs) > 0 {
		return model.Service{}, &ValidationError{Fields: errs}
	}
	return u.services.Add(in), nil
}

// UpdateService applies patch to a visible service.
func (u *CatalogUseCase) UpdateService(id string, patch model.ServicePatch) (model.Service, error) {
	errs := FieldErrors{}
	if patch.Name != nil {
		checkName(errs, *patch.Name)
	}
	if patch.Price != nil {
		checkPrice(errs, *patch.Price)
	}
	if patch.DurationMinutes != nil && *patch.DurationMinutes <= 0 {
		errs["durationMinutes"] = "Duration must be positive"
	}
	if patch.Status != nil {
		checkCatalogStatus(errs, *patch.Status)
	}
	if len(errs) > 0 {
		return model.Service{}, &ValidationError{Fields: errs}
	}
	if !u.services.Update(id, patch) {
		return model.Service{}, domainErrors.ErrNotFound
	}
	return u.Service(id)
}

// DeleteService soft-deletes a service.
func (u *CatalogUseCase) DeleteService(id string) error {
	if !u.services.SoftDelete(id) {
		return domainErrors.ErrNotFound
	}
	return nil
}

// RestoreService undoes a soft delete.
func (u *CatalogUseCase) RestoreService(id string) (model.Service, error) {
	if !u.services.Restore(id) {
		return model.Service{}, domainErrors.ErrNotFound
	}
	return u.Service(id)
}

func checkName(errs FieldErrors, name string) {
	if strings.TrimSpace(name) == "" {
		errs["name"] = "Name is required"
	}
}

func checkPrice(errs FieldErrors, price float64) {
	if price < 0 {
		errs["price"] = "Price cannot be negative"
	}
}

func checkCatalogStatus(errs FieldErrors, status model.CatalogStatus) {
	if status != "" && !status.Valid() {
		errs["status"] = "Status must be active or inactive"
	}
}

// checkSalePrice requires a sale price, when set, to lie within [0, price].
func checkSalePrice(errs FieldErrors, sale *float64, price float64) {
	if sale != nil && (*sale < 0 || *sale > price) {
		errs["salePrice"] = "Sale price must be between 0 and the price"
	}
}
