package dto

import (
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/view"
)

// ProductRequest is the product form; PATCH applies present keys only.
type ProductRequest struct {
	Name        *string           `json:"name"`
	Brand       *string           `json:"brand"`
	Category    *string           `json:"category"`
	Description *string           `json:"description"`
	Price       *float64          `json:"price"`
	SalePrice   Optional[float64] `json:"salePrice"`
	Stock       *int              `json:"stock"`
	StockStatus *string           `json:"stockStatus"`
	Status      *string           `json:"status"`
	Images      *[]string         `json:"images"`
}

// ToInput converts the form for creation.
func (r ProductRequest) ToInput() model.ProductInput {
	in := model.ProductInput{
		Name:        deref(r.Name),
		Brand:       deref(r.Brand),
		Category:    deref(r.Category),
		Description: deref(r.Description),
		Price:       deref(r.Price),
		SalePrice:   r.SalePrice.Value,
		Stock:       deref(r.Stock),
		StockStatus: model.StockStatus(deref(r.StockStatus)),
		Status:      model.CatalogStatus(deref(r.Status)),
	}
	if r.Images != nil {
		in.Images = *r.Images
	}
	return in
}

// ToPatch converts the form into a partial update.
func (r ProductRequest) ToPatch() model.ProductPatch {
	return model.ProductPatch{
		Name:        r.Name,
		Brand:       r.Brand,
		Category:    r.Category,
		Description: r.Description,
		Price:       r.Price,
		SalePrice:   r.SalePrice.patch(),
		Stock:       r.Stock,
		StockStatus: convert[string, model.StockStatus](r.StockStatus),
		Status:      convert[string, model.CatalogStatus](r.Status),
		Images:      r.Images,
	}
}

// ProductResponse is a product with display helpers.
type ProductResponse struct {
	model.Product
	PriceDisplay string           `json:"priceDisplay"`
	StockBadge   view.StatusBadge `json:"stockBadge"`
}

// NewProductResponses decorates every product.
func NewProductResponses(products []model.Product) []ProductResponse {
	resp := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, NewProductResponse(p))
	}
	return resp
}

// NewProductResponse decorates p for display.
func NewProductResponse(p model.Product) ProductResponse {
	return ProductResponse{
		Product:      p,
		PriceDisplay: view.FormatCurrency(p.Price),
		StockBadge:   view.Badge(p.StockStatus),
	}
}

// ServiceRequest is the service form; PATCH applies present keys only.
type ServiceRequest struct {
	Name            *string  `json:"name"`
	Category        *string  `json:"category"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price"`
	DurationMinutes *int     `json:"durationMinutes"`
	Status          *string  `json:"status"`
	Image           *string  `json:"image"`
}

// ToInput converts the form for creation.
func (r ServiceRequest) ToInput() model.ServiceInput {
	return model.ServiceInput{
		Name:            deref(r.Name),
		Category:        deref(r.Category),
		Description:     deref(r.Description),
		Price:           deref(r.Price),
		DurationMinutes: deref(r.DurationMinutes),
		Status:          model.CatalogStatus(deref(r.Status)),
		Image:           deref(r.Image),
	}
}

// ToPatch converts the form into a partial update.
func (r ServiceRequest) ToPatch() model.ServicePatch {
	return model.ServicePatch{
		Name:            r.Name,
		Category:        r.Category,
		Description:     r.Description,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		Status:          convert[string, model.CatalogStatus](r.Status),
		Image:           r.Image,
	}
}
