package model

import "time"

// StockStatus is a three-tier label derived from numeric stock.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// LowStockThreshold is the first stock count considered fully in stock.
const LowStockThreshold = 15

// DeriveStockStatus maps stock count to its status tier.
func DeriveStockStatus(stock int) StockStatus {
	switch {
	case stock <= 0:
		return StockStatusOutOfStock
	case stock < LowStockThreshold:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// CatalogStatus controls storefront visibility of catalog entries.
type CatalogStatus string

const (
	CatalogStatusActive   CatalogStatus = "active"
	CatalogStatusInactive CatalogStatus = "inactive"
)

// Product is a sellable item. DeletedAt marks a soft-deleted record.
type Product struct {
	ID          string        `json:"id" yaml:"id"`
	Name        string        `json:"name" yaml:"name"`
	Brand       string        `json:"brand,omitempty" yaml:"brand"`
	Category    string        `json:"category" yaml:"category"`
	Description string        `json:"description,omitempty" yaml:"description"`
	Price       float64       `json:"price" yaml:"price"`
	SalePrice   *float64      `json:"salePrice,omitempty" yaml:"salePrice"`
	Stock       int           `json:"stock" yaml:"stock"`
	StockStatus StockStatus   `json:"stockStatus" yaml:"stockStatus"`
	Status      CatalogStatus `json:"status" yaml:"status"`
	Images      []string      `json:"images" yaml:"images"`
	CreatedAt   time.Time     `json:"createdAt" yaml:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt" yaml:"updatedAt"`
	DeletedAt   *time.Time    `json:"deletedAt,omitempty" yaml:"deletedAt"`
}

// ProductInput carries form values for a new product. StockStatus
// overrides the derived tier when set.
type ProductInput struct {
	Name        string
	Brand       string
	Category    string
	Description string
	Price       float64
	SalePrice   *float64
	Stock       int
	StockStatus StockStatus
	Status      CatalogStatus
	Images      []string
}

// ProductPatch holds partial product changes.
type ProductPatch struct {
	Name        *string
	Brand       *string
	Category    *string
	Description *string
	Price       *float64
	SalePrice   **float64
	Stock       *int
	StockStatus *StockStatus
	Status      *CatalogStatus
	Images      *[]string
}

// Clone returns a deep copy of the product.
func (p Product) Clone() Product {
	if p.SalePrice != nil {
		v := *p.SalePrice
		p.SalePrice = &v
	}
	p.Images = append([]string{}, p.Images...)
	p.DeletedAt = cloneTime(p.DeletedAt)
	return p
}

// Service is a bookable beauty service. DeletedAt marks a soft-deleted record.
type Service struct {
	ID              string        `json:"id" yaml:"id"`
	Name            string        `json:"name" yaml:"name"`
	Category        string        `json:"category" yaml:"category"`
	Description     string        `json:"description,omitempty" yaml:"description"`
	Price           float64       `json:"price" yaml:"price"`
	DurationMinutes int           `json:"durationMinutes" yaml:"durationMinutes"`
	Status          CatalogStatus `json:"status" yaml:"status"`
	Image           string        `json:"image,omitempty" yaml:"image"`
	CreatedAt       time.Time     `json:"createdAt" yaml:"createdAt"`
	UpdatedAt       time.Time     `json:"updatedAt" yaml:"updatedAt"`
	DeletedAt       *time.Time    `json:"deletedAt,omitempty" yaml:"deletedAt"`
}

// ServiceInput carries form values for a new service.
type ServiceInput struct {
	Name            string
	Category        string
	Description     string
	Price           float64
	DurationMinutes int
	Status          CatalogStatus
	Image           string
}

// ServicePatch holds partial service changes.
type ServicePatch struct {
	Name            *string
	Category        *string
	Description     *string
	Price           *float64
	DurationMinutes *int
	Status          *CatalogStatus
	Image           *string
}

// Clone returns a copy of the service.
func (s Service) Clone() Service {
	s.DeletedAt = cloneTime(s.DeletedAt)
	return s
}
