package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/server/http/dto"
)

// CatalogHandler manages products and services. Soft-deleted entries are
// listed only with ?deleted=true.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Products handles GET /products.
func (h *CatalogHandler) Products(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewProductResponses(h.facade.Products(withDeleted(c))))
}

// Product handles GET /products/:id.
func (h *CatalogHandler) Product(c *gin.Context) {
	h.replyProduct(c, http.StatusOK)(h.facade.Product(c.Param("id")))
}

// CreateProduct handles POST /products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	h.replyProduct(c, http.StatusCreated)(h.facade.CreateProduct(req.ToInput()))
}

// UpdateProduct handles PATCH /products/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if !bindJSON(c, &req) {
		return
	}
	h.replyProduct(c, http.StatusOK)(h.facade.UpdateProduct(c.Param("id"), req.ToPatch()))
}

// DeleteProduct handles DELETE /products/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	noContent(c, h.facade.DeleteProduct(c.Param("id")))
}

// RestoreProduct handles POST /products/:id/restore.
func (h *CatalogHandler) RestoreProduct(c *gin.Context) {
	h.replyProduct(c, http.StatusOK)(h.facade.RestoreProduct(c.Param("id")))
}

// Services handles GET /services.
func (h *CatalogHandler) Services(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.Services(withDeleted(c)))
}

// Service handles GET /services/:id.
func (h *CatalogHandler) Service(c *gin.Context) {
	h.replyService(c, http.StatusOK)(h.facade.Service(c.Param("id")))
}

// CreateService handles POST /services.
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	h.replyService(c, http.StatusCreated)(h.facade.CreateService(req.ToInput()))
}

// UpdateService handles PATCH /services/:id.
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var req dto.ServiceRequest
	if !bindJSON(c, &req) {
		return
	}
	h.replyService(c, http.StatusOK)(h.facade.UpdateService(c.Param("id"), req.ToPatch()))
}

// DeleteService handles DELETE /services/:id.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	noContent(c, h.facade.DeleteService(c.Param("id")))
}

// RestoreService handles POST /services/:id/restore.
func (h *CatalogHandler) RestoreService(c *gin.Context) {
	h.replyService(c, http.StatusOK)(h.facade.RestoreService(c.Param("id")))
}

func (h *CatalogHandler) replyProduct(c *gin.Context, status int) func(model.Product, error) {
	return func(p model.Product, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(status, dto.NewProductResponse(p))
	}
}

func (h *CatalogHandler) replyService(c *gin.Context, status int) func(model.Service, error) {
	return func(s model.Service, err error) {
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(status, s)
	}
}

func withDeleted(c *gin.Context) bool {
	return c.Query("deleted") == "true"
}

func noContent(c *gin.Context, err error) {
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
